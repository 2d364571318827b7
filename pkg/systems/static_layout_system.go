package systems

import (
	"math/rand/v2"

	"github.com/gonewx/schotter/pkg/components"
	"github.com/gonewx/schotter/pkg/config"
	"github.com/gonewx/schotter/pkg/ecs"
	"github.com/gonewx/schotter/pkg/game"
)

// StaticLayoutSystem 静态模式：每次渲染用种子重新计算全部石块
//
// 不保留速度和阶段状态，结果只取决于 (seed, adj)。
type StaticLayoutSystem struct {
	entityManager *ecs.EntityManager
	grid          *Grid

	bound         float64
	rotationBound float64
}

// NewStaticLayoutSystem 创建静态布局系统（使用 StaticBound）
func NewStaticLayoutSystem(em *ecs.EntityManager, grid *Grid, sampling config.SamplingConfig) *StaticLayoutSystem {
	return &StaticLayoutSystem{
		entityManager: em,
		grid:          grid,
		bound:         sampling.DisplacementBound(config.ModeStatic),
		rotationBound: sampling.RotationBound(),
	}
}

// seededRand 由种子构造确定性的随机源
func seededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Apply 重新播种并按行优先顺序覆盖所有石块的偏移与旋转
func (s *StaticLayoutSystem) Apply(seed uint64, adj game.Adjustment) {
	rng := seededRand(seed)

	for _, id := range stoneEntities(s.entityManager) {
		stone, ok := ecs.GetComponent[*components.StoneComponent](s.entityManager, id)
		if !ok {
			continue
		}
		cell, ok := ecs.GetComponent[*components.CellComponent](s.entityManager, id)
		if !ok {
			continue
		}

		target := SampleTransitionTarget(rng, cell.Row, s.grid.Rows, adj, s.bound, s.rotationBound)
		*stone = components.StoneComponent{
			Offset:   target.Offset,
			Rotation: target.Rotation,
		}
	}
}
