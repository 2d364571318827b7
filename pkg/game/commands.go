package game

import "fmt"

// CommandKind 输入命令类型
type CommandKind int

const (
	CmdIncreaseDisplacement CommandKind = iota
	CmdDecreaseDisplacement
	CmdIncreaseRotation
	CmdDecreaseRotation
	CmdReseed
	CmdCaptureFrame
	CmdSetMotion
)

// Command 一次离散输入事件（按键、滑块、按钮）
// Value 仅对 CmdSetMotion 有意义
type Command struct {
	Kind  CommandKind
	Value float64
}

func IncreaseDisplacement() Command { return Command{Kind: CmdIncreaseDisplacement} }
func DecreaseDisplacement() Command { return Command{Kind: CmdDecreaseDisplacement} }
func IncreaseRotation() Command     { return Command{Kind: CmdIncreaseRotation} }
func DecreaseRotation() Command     { return Command{Kind: CmdDecreaseRotation} }
func Reseed() Command               { return Command{Kind: CmdReseed} }
func CaptureFrame() Command         { return Command{Kind: CmdCaptureFrame} }

// SetMotion 设置停留概率，超出 [0,1] 的值在应用时被截断
func SetMotion(value float64) Command { return Command{Kind: CmdSetMotion, Value: value} }

// String 返回命令的可读形式，用于日志
func (c Command) String() string {
	switch c.Kind {
	case CmdIncreaseDisplacement:
		return "IncreaseDisplacement"
	case CmdDecreaseDisplacement:
		return "DecreaseDisplacement"
	case CmdIncreaseRotation:
		return "IncreaseRotation"
	case CmdDecreaseRotation:
		return "DecreaseRotation"
	case CmdReseed:
		return "Reseed"
	case CmdCaptureFrame:
		return "CaptureFrame"
	case CmdSetMotion:
		return fmt.Sprintf("SetMotion(%.2f)", c.Value)
	default:
		return fmt.Sprintf("Command(%d)", int(c.Kind))
	}
}

// Effect 命令应用后的结果
type Effect struct {
	// Changed 调节参数或种子发生了变化
	Changed bool
	// Capture 需要外壳保存当前画面
	Capture bool
}

// Merge 合并多个命令的结果
func (e Effect) Merge(o Effect) Effect {
	return Effect{
		Changed: e.Changed || o.Changed,
		Capture: e.Capture || o.Capture,
	}
}
