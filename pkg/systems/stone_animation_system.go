package systems

import (
	"math/rand/v2"

	"github.com/gonewx/schotter/pkg/components"
	"github.com/gonewx/schotter/pkg/config"
	"github.com/gonewx/schotter/pkg/ecs"
	"github.com/gonewx/schotter/pkg/game"
)

// StoneAnimationSystem 动画模式下推进每个石块的状态机
//
// 随机源在整个运行期间连续前进，从不按帧重新播种。
type StoneAnimationSystem struct {
	entityManager *ecs.EntityManager
	grid          *Grid
	rng           *rand.Rand

	bound         float64
	rotationBound float64
	minCycles     int
	maxCycles     int
}

// NewStoneAnimationSystem 创建动画系统
//
// 参数：
//   - em: 实体管理器
//   - grid: GenerateGrid 的结果
//   - sampling: 采样范围（使用 AnimatedBound）
//   - rng: 随机源，由调用方持有种子
func NewStoneAnimationSystem(em *ecs.EntityManager, grid *Grid, sampling config.SamplingConfig, rng *rand.Rand) *StoneAnimationSystem {
	return &StoneAnimationSystem{
		entityManager: em,
		grid:          grid,
		rng:           rng,
		bound:         sampling.DisplacementBound(config.ModeAnimated),
		rotationBound: sampling.RotationBound(),
		minCycles:     sampling.MinCycles,
		maxCycles:     sampling.MaxCycles,
	}
}

// Advance 将所有石块推进一帧
//
// adj 与 motion 是本帧的只读快照；motion 为到达阶段边界时进入停留的概率。
func (s *StoneAnimationSystem) Advance(adj game.Adjustment, motion float64) {
	for _, id := range stoneEntities(s.entityManager) {
		stone, ok := ecs.GetComponent[*components.StoneComponent](s.entityManager, id)
		if !ok {
			continue
		}
		cell, ok := ecs.GetComponent[*components.CellComponent](s.entityManager, id)
		if !ok {
			continue
		}
		s.step(stone, cell.Row, adj, motion)
	}
}

// step 单个石块的一帧：要么选择新阶段，要么沿当前阶段前进一步
func (s *StoneAnimationSystem) step(stone *components.StoneComponent, row int, adj game.Adjustment, motion float64) {
	if stone.RemainingCycles > 0 {
		stone.Offset = stone.Offset.Add(stone.Velocity)
		stone.Rotation += stone.RotationVelocity
		stone.RemainingCycles--
		return
	}

	if s.rng.Float64() < motion {
		s.dwell(stone)
		return
	}
	s.transition(stone, row, adj)
}

// dwell 进入停留：速度清零，偏移保持在当前值（过渡中途也原地冻结）
func (s *StoneAnimationSystem) dwell(stone *components.StoneComponent) {
	stone.Velocity = components.Vec2{}
	stone.RotationVelocity = 0
	stone.RemainingCycles = sampleCycles(s.rng, s.minCycles, s.maxCycles)
	stone.Phase = components.PhaseDwell
}

// transition 采样新目标，并把差值均分到 duration 帧
func (s *StoneAnimationSystem) transition(stone *components.StoneComponent, row int, adj game.Adjustment) {
	target := SampleTransitionTarget(s.rng, row, s.grid.Rows, adj, s.bound, s.rotationBound)
	duration := sampleCycles(s.rng, s.minCycles, s.maxCycles)

	stone.Velocity = target.Offset.Sub(stone.Offset).Scale(1 / float64(duration))
	stone.RotationVelocity = (target.Rotation - stone.Rotation) / float64(duration)
	stone.RemainingCycles = duration
	stone.Phase = components.PhaseTransition
}
