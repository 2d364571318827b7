package systems

import (
	"math/rand/v2"
	"testing"

	"github.com/gonewx/schotter/pkg/components"
	"github.com/gonewx/schotter/pkg/config"
	"github.com/gonewx/schotter/pkg/ecs"
)

// newTestGrid 创建测试用网格
func newTestGrid(t *testing.T, rows, cols int) (*ecs.EntityManager, *Grid) {
	t.Helper()
	em := ecs.NewEntityManager()
	grid, err := GenerateGrid(em, rows, cols)
	if err != nil {
		t.Fatalf("GenerateGrid(%d, %d) error: %v", rows, cols, err)
	}
	return em, grid
}

// newTestRand 返回固定种子的随机源
func newTestRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed+1))
}

// defaultSampling 返回默认采样配置
func defaultSampling() config.SamplingConfig {
	return config.DefaultSketchConfig().Sampling
}

// stoneOf 获取石块组件，不存在时终止测试
func stoneOf(t *testing.T, em *ecs.EntityManager, id ecs.EntityID) *components.StoneComponent {
	t.Helper()
	stone, ok := ecs.GetComponent[*components.StoneComponent](em, id)
	if !ok {
		t.Fatalf("entity %d has no StoneComponent", id)
	}
	return stone
}
