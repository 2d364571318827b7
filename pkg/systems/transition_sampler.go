package systems

import (
	"math/rand/v2"

	"github.com/gonewx/schotter/pkg/components"
	"github.com/gonewx/schotter/pkg/game"
)

// Target 一次采样得到的目标偏移与旋转
type Target struct {
	Offset   components.Vec2
	Rotation float64
}

// RowFactor 返回第 row 行的随机强度 row/rows
// 第 0 行为 0，越往下越大（"越往下越乱"）
func RowFactor(row, rows int) float64 {
	return float64(row) / float64(rows)
}

// uniform 返回 [lo, hi) 上的均匀分布样本
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// sampleCycles 返回 [min, max) 上的整数阶段时长
func sampleCycles(rng *rand.Rand, min, max int) int {
	return min + rng.IntN(max-min)
}

// SampleTransitionTarget 为第 row 行的石块采样目标
//
// x、y 分别独立取 factor*adj.Displacement*U(-bound, bound)，
// 旋转取 factor*adj.Rotation*U(-rotationBound, rotationBound)。
// 三个分量依次从 rng 抽取（x、y、旋转），静态模式依赖这一顺序保证可复现。
func SampleTransitionTarget(rng *rand.Rand, row, rows int, adj game.Adjustment, bound, rotationBound float64) Target {
	factor := RowFactor(row, rows)
	dispFactor := factor * adj.Displacement
	rotFactor := factor * adj.Rotation

	x := dispFactor * uniform(rng, -bound, bound)
	y := dispFactor * uniform(rng, -bound, bound)
	rot := rotFactor * uniform(rng, -rotationBound, rotationBound)

	return Target{
		Offset:   components.Vec2{X: x, Y: y},
		Rotation: rot,
	}
}
