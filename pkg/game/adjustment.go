package game

// Adjustment 位移与旋转的增益
//
// 两个增益都非负，分别乘到每行的随机位移/旋转强度上。
// 由输入层在两帧之间修改，模拟过程中只读。
type Adjustment struct {
	Displacement float64
	Rotation     float64
}

// DefaultAdjustment 返回初始增益 {1.0, 1.0}
func DefaultAdjustment() Adjustment {
	return Adjustment{Displacement: 1.0, Rotation: 1.0}
}

// stepGain 按步长调整增益，下限为 0
func stepGain(gain, delta float64) float64 {
	gain += delta
	if gain < 0 {
		return 0
	}
	return gain
}

// clampUnit 将值限制在 [0, 1]
func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
