package systems

import (
	"fmt"
	"log"

	"github.com/gonewx/schotter/pkg/components"
	"github.com/gonewx/schotter/pkg/config"
	"github.com/gonewx/schotter/pkg/ecs"
)

// Grid 网格尺寸，石块实体本身保存在 EntityManager 中
type Grid struct {
	Rows int
	Cols int
}

// stoneEntities 查询所有石块实体
//
// 实体按行优先顺序创建，查询结果按ID升序，因此返回顺序即行优先顺序。
func stoneEntities(em *ecs.EntityManager) []ecs.EntityID {
	return ecs.GetEntitiesWith2[*components.CellComponent, *components.StoneComponent](em)
}

// GenerateGrid 生成 rows×cols 个网格单元
//
// 每个实体挂载 CellComponent 与初始为零的 StoneComponent（RemainingCycles = 0）。
//
// 返回：
//   - error: rows 或 cols 不为正时返回 config.ErrInvalidConfig
func GenerateGrid(em *ecs.EntityManager, rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: grid must be at least 1x1, got rows=%d cols=%d",
			config.ErrInvalidConfig, rows, cols)
	}

	grid := &Grid{Rows: rows, Cols: cols}

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			id := em.CreateEntity()
			em.AddComponent(id, &components.CellComponent{Col: col, Row: row})
			em.AddComponent(id, &components.StoneComponent{})
		}
	}

	log.Printf("[Grid] Generated %d stones (%d rows x %d cols)", rows*cols, rows, cols)
	return grid, nil
}

// Poses 按行优先顺序返回所有石块的当前姿态
func (g *Grid) Poses(em *ecs.EntityManager) []components.StonePose {
	ids := stoneEntities(em)
	poses := make([]components.StonePose, 0, len(ids))
	for _, id := range ids {
		cell, ok := ecs.GetComponent[*components.CellComponent](em, id)
		if !ok {
			continue
		}
		stone, ok := ecs.GetComponent[*components.StoneComponent](em, id)
		if !ok {
			continue
		}
		poses = append(poses, stone.Pose(cell))
	}
	return poses
}
