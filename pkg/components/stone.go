package components

// Vec2 二维向量（单位：格）
type Vec2 struct {
	X, Y float64
}

// Add 返回 v + o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub 返回 v - o
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale 返回 v * s
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// StonePhase 石块当前所处的阶段
type StonePhase int

const (
	// PhaseIdle 尚未到达第一个阶段边界
	PhaseIdle StonePhase = iota
	// PhaseDwell 停留：偏移与旋转保持不变
	PhaseDwell
	// PhaseTransition 过渡：每帧按速度线性逼近目标
	PhaseTransition
)

// StoneComponent 石块的可变动画状态
//
// RemainingCycles == 0 表示到达阶段边界，本帧必须选择新阶段；
// RemainingCycles > 0 时每帧按 Velocity/RotationVelocity 前进一步并减一。
// 停留阶段的速度恒为零。
type StoneComponent struct {
	Offset           Vec2    // 相对网格名义位置的位移
	Rotation         float64 // 绕格子中心的旋转（弧度）
	Velocity         Vec2    // 过渡阶段每帧位移
	RotationVelocity float64 // 过渡阶段每帧旋转
	RemainingCycles  int
	Phase            StonePhase
}

// Pose 返回渲染所需的只读快照
func (s *StoneComponent) Pose(cell *CellComponent) StonePose {
	return StonePose{
		Col:      cell.Col,
		Row:      cell.Row,
		OffsetX:  s.Offset.X,
		OffsetY:  s.Offset.Y,
		Rotation: s.Rotation,
	}
}

// StonePose 每帧输出给渲染层的石块姿态
type StonePose struct {
	Col, Row         int
	OffsetX, OffsetY float64
	Rotation         float64
}
