package game

import (
	"fmt"
	"log"
	"math/rand/v2"

	"github.com/gonewx/schotter/pkg/config"
)

// Controls 持有增益、停留概率和静态模式种子
//
// 只在模拟线程上、两帧之间被修改，因此不需要加锁。
type Controls struct {
	adj    Adjustment
	motion float64
	seed   uint64

	gainStep   float64
	motionStep float64
	seedRange  uint64
	rng        *rand.Rand
}

// NewControls 根据配置创建控制器
//
// 参数：
//   - cfg: 已校验的草图配置
//   - rng: 用于重新采样种子的随机源
//
// 返回：
//   - error: 初始增益为负或 motion 超出 [0,1] 时返回 config.ErrInvalidConfig
func NewControls(cfg *config.SketchConfig, rng *rand.Rand) (*Controls, error) {
	if cfg.Initial.DisplacementGain < 0 || cfg.Initial.RotationGain < 0 {
		return nil, fmt.Errorf("%w: gains must be >= 0", config.ErrInvalidConfig)
	}
	if err := config.ValidateMotion(cfg.Initial.Motion); err != nil {
		return nil, err
	}
	if cfg.Controls.SeedRange == 0 {
		return nil, fmt.Errorf("%w: controls.seedRange must be positive", config.ErrInvalidConfig)
	}

	c := &Controls{
		adj: Adjustment{
			Displacement: cfg.Initial.DisplacementGain,
			Rotation:     cfg.Initial.RotationGain,
		},
		motion:     cfg.Initial.Motion,
		gainStep:   cfg.Controls.GainStep,
		motionStep: cfg.Controls.MotionStep,
		seedRange:  cfg.Controls.SeedRange,
		rng:        rng,
	}

	if cfg.Initial.Seed != nil {
		c.seed = *cfg.Initial.Seed
	} else {
		c.seed = c.sampleSeed()
	}

	return c, nil
}

// Adjustment 返回当前增益快照
func (c *Controls) Adjustment() Adjustment {
	return c.adj
}

// Motion 返回当前停留概率
func (c *Controls) Motion() float64 {
	return c.motion
}

// MotionStep 返回停留概率的调节步长
func (c *Controls) MotionStep() float64 {
	return c.motionStep
}

// Seed 返回静态模式种子
func (c *Controls) Seed() uint64 {
	return c.seed
}

func (c *Controls) sampleSeed() uint64 {
	return c.rng.Uint64N(c.seedRange)
}

// Apply 应用一条输入命令
func (c *Controls) Apply(cmd Command) Effect {
	before := *c

	switch cmd.Kind {
	case CmdIncreaseDisplacement:
		c.adj.Displacement = stepGain(c.adj.Displacement, c.gainStep)
	case CmdDecreaseDisplacement:
		c.adj.Displacement = stepGain(c.adj.Displacement, -c.gainStep)
	case CmdIncreaseRotation:
		c.adj.Rotation = stepGain(c.adj.Rotation, c.gainStep)
	case CmdDecreaseRotation:
		c.adj.Rotation = stepGain(c.adj.Rotation, -c.gainStep)
	case CmdReseed:
		c.seed = c.sampleSeed()
		log.Printf("[Controls] New seed: %d", c.seed)
	case CmdSetMotion:
		c.motion = clampUnit(cmd.Value)
	case CmdCaptureFrame:
		return Effect{Capture: true}
	default:
		log.Printf("[Controls] Warning: ignoring unknown command %v", cmd)
		return Effect{}
	}

	return Effect{Changed: c.adj != before.adj || c.motion != before.motion || c.seed != before.seed}
}

// ApplyAll 依次应用命令并合并结果
func (c *Controls) ApplyAll(cmds []Command) Effect {
	var effect Effect
	for _, cmd := range cmds {
		effect = effect.Merge(c.Apply(cmd))
	}
	return effect
}
