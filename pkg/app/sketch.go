package app

import (
	"fmt"
	"log"
	"math/rand/v2"

	"github.com/gonewx/schotter/pkg/components"
	"github.com/gonewx/schotter/pkg/config"
	"github.com/gonewx/schotter/pkg/ecs"
	"github.com/gonewx/schotter/pkg/game"
	"github.com/gonewx/schotter/pkg/systems"
)

// Sketch 组装网格、控制器和当前模式的模拟系统
//
// 不依赖窗口，窗口外壳（App）和命令行导出共用。
type Sketch struct {
	mode          config.Mode
	entityManager *ecs.EntityManager
	grid          *systems.Grid
	controls      *game.Controls

	animation *systems.StoneAnimationSystem
	static    *systems.StaticLayoutSystem
	ticks     uint64
}

// NewSketch 创建草图
//
// 参数：
//   - cfg: 已校验的配置
//   - rng: 动画与重新采样种子使用的随机源，为 nil 时使用随机种子
func NewSketch(cfg *config.SketchConfig, rng *rand.Rand) (*Sketch, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	em := ecs.NewEntityManager()
	grid, err := systems.GenerateGrid(em, cfg.Grid.Rows, cfg.Grid.Cols)
	if err != nil {
		return nil, fmt.Errorf("failed to generate grid: %w", err)
	}

	controls, err := game.NewControls(cfg, rng)
	if err != nil {
		return nil, err
	}

	s := &Sketch{
		mode:          cfg.Mode,
		entityManager: em,
		grid:          grid,
		controls:      controls,
	}

	switch cfg.Mode {
	case config.ModeStatic:
		s.static = systems.NewStaticLayoutSystem(em, grid, cfg.Sampling)
	default:
		s.animation = systems.NewStoneAnimationSystem(em, grid, cfg.Sampling, rng)
	}

	log.Printf("[Sketch] Mode=%s seed=%d motion=%.2f", cfg.Mode, controls.Seed(), controls.Motion())
	return s, nil
}

// Mode 返回运行模式
func (s *Sketch) Mode() config.Mode {
	return s.mode
}

// Controls 返回控制器
func (s *Sketch) Controls() *game.Controls {
	return s.controls
}

// Ticks 返回已执行的帧数
func (s *Sketch) Ticks() uint64 {
	return s.ticks
}

// Apply 在两帧之间应用输入命令
func (s *Sketch) Apply(cmds []game.Command) game.Effect {
	effect := s.controls.ApplyAll(cmds)
	for _, cmd := range cmds {
		log.Printf("[Sketch] Applied %v", cmd)
	}
	return effect
}

// Tick 执行一帧：静态模式按当前种子重算，动画模式推进状态机
func (s *Sketch) Tick() {
	adj := s.controls.Adjustment()
	if s.static != nil {
		s.static.Apply(s.controls.Seed(), adj)
	} else {
		s.animation.Advance(adj, s.controls.Motion())
	}
	s.ticks++
}

// Poses 返回当前所有石块的姿态（行优先）
func (s *Sketch) Poses() []components.StonePose {
	return s.grid.Poses(s.entityManager)
}
