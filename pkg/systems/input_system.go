package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/gonewx/schotter/pkg/game"
	"github.com/gonewx/schotter/pkg/utils"
)

// KeySource 按键与指针状态来源，测试中可替换
type KeySource interface {
	IsKeyJustPressed(key ebiten.Key) bool
	// IsPointerJustPressed 本帧是否刚发生点击或触摸
	IsPointerJustPressed() bool
}

type ebitenKeySource struct{}

func (ebitenKeySource) IsKeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

func (ebitenKeySource) IsPointerJustPressed() bool {
	return utils.IsJustTouchedOrClicked()
}

// keyBinding 一组按键对应的命令构造
type keyBinding struct {
	keys []ebiten.Key
	// pointer 点击或触摸也触发该绑定
	pointer bool
	command func(c *game.Controls) game.Command
}

// 方向键与 vim 风格 hjkl 同时可用
// ] 提高停留概率（画面更静止），[ 降低停留概率（画面更活跃）
var defaultBindings = []keyBinding{
	{keys: []ebiten.Key{ebiten.KeyR}, pointer: true, command: func(*game.Controls) game.Command { return game.Reseed() }},
	{keys: []ebiten.Key{ebiten.KeyS}, command: func(*game.Controls) game.Command { return game.CaptureFrame() }},
	{keys: []ebiten.Key{ebiten.KeyUp, ebiten.KeyK}, command: func(*game.Controls) game.Command { return game.IncreaseDisplacement() }},
	{keys: []ebiten.Key{ebiten.KeyDown, ebiten.KeyJ}, command: func(*game.Controls) game.Command { return game.DecreaseDisplacement() }},
	{keys: []ebiten.Key{ebiten.KeyRight, ebiten.KeyL}, command: func(*game.Controls) game.Command { return game.IncreaseRotation() }},
	{keys: []ebiten.Key{ebiten.KeyLeft, ebiten.KeyH}, command: func(*game.Controls) game.Command { return game.DecreaseRotation() }},
	{keys: []ebiten.Key{ebiten.KeyBracketRight}, command: func(c *game.Controls) game.Command {
		return game.SetMotion(c.Motion() + c.MotionStep())
	}},
	{keys: []ebiten.Key{ebiten.KeyBracketLeft}, command: func(c *game.Controls) game.Command {
		return game.SetMotion(c.Motion() - c.MotionStep())
	}},
}

// InputSystem 把本帧按下的键翻译成输入命令
type InputSystem struct {
	keys     KeySource
	controls *game.Controls
}

// NewInputSystem 创建读取 ebiten 键盘状态的输入系统
func NewInputSystem(controls *game.Controls) *InputSystem {
	return NewInputSystemWithSource(controls, ebitenKeySource{})
}

// NewInputSystemWithSource 使用自定义按键来源创建输入系统
func NewInputSystemWithSource(controls *game.Controls, keys KeySource) *InputSystem {
	return &InputSystem{keys: keys, controls: controls}
}

// Poll 返回本帧产生的命令（同一绑定的多个键只产生一条命令）
//
// 点击或触摸画面等同于 R 键，移动端没有键盘时靠它重新采样。
func (s *InputSystem) Poll() []game.Command {
	var cmds []game.Command
	pointer := s.keys.IsPointerJustPressed()
	for _, b := range defaultBindings {
		if b.pointer && pointer {
			cmds = append(cmds, b.command(s.controls))
			continue
		}
		for _, key := range b.keys {
			if s.keys.IsKeyJustPressed(key) {
				cmds = append(cmds, b.command(s.controls))
				break
			}
		}
	}
	return cmds
}
