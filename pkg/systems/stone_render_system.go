package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gonewx/schotter/pkg/components"
	"github.com/gonewx/schotter/pkg/config"
	"github.com/gonewx/schotter/pkg/game"
	"github.com/gonewx/schotter/pkg/utils"
)

// StoneRenderSystem 在 ebiten 画面上绘制石块轮廓
type StoneRenderSystem struct {
	layout     utils.GridLayout
	background color.Color
	stroke     color.Color
	showHUD    bool
}

// NewStoneRenderSystem 创建渲染系统
func NewStoneRenderSystem(canvas config.CanvasConfig) (*StoneRenderSystem, error) {
	palette, err := canvas.Palette()
	if err != nil {
		return nil, fmt.Errorf("failed to build render palette: %w", err)
	}

	return &StoneRenderSystem{
		layout:     utils.NewGridLayout(canvas),
		background: palette.Background,
		stroke:     palette.Stroke,
		showHUD:    canvas.HUD,
	}, nil
}

// Draw 清屏并绘制所有石块
func (s *StoneRenderSystem) Draw(screen *ebiten.Image, poses []components.StonePose) {
	screen.Fill(s.background)

	width := float32(s.layout.StrokeWidth())
	for _, pose := range poses {
		corners := s.layout.StoneCorners(pose)
		for i := range corners {
			a := corners[i]
			b := corners[(i+1)%len(corners)]
			vector.StrokeLine(screen, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), width, s.stroke, true)
		}
	}
}

// DrawHUD 在左上角打印当前参数
func (s *StoneRenderSystem) DrawHUD(screen *ebiten.Image, mode config.Mode, controls *game.Controls) {
	if !s.showHUD {
		return
	}
	adj := controls.Adjustment()
	msg := fmt.Sprintf("%s  disp %.1f  rot %.1f  motion %.2f  seed %d",
		mode, adj.Displacement, adj.Rotation, controls.Motion(), controls.Seed())
	ebitenutil.DebugPrintAt(screen, msg, 4, 4)
}
