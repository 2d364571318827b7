// Package raster 离屏绘制石块网格
//
// 与窗口渲染共用 utils.GridLayout 的几何，用于命令行导出和窗口截图，
// 不依赖 GPU 或窗口。
package raster

import (
	"bytes"
	"fmt"
	"image"
	"io"

	"github.com/fogleman/gg"

	"github.com/gonewx/schotter/pkg/components"
	"github.com/gonewx/schotter/pkg/config"
	"github.com/gonewx/schotter/pkg/utils"
)

// Canvas 离屏画布参数
type Canvas struct {
	Width, Height int
	Layout        utils.GridLayout
	Palette       config.Palette
}

// NewCanvas 根据草图配置构造画布
func NewCanvas(cfg *config.SketchConfig) (Canvas, error) {
	palette, err := cfg.Canvas.Palette()
	if err != nil {
		return Canvas{}, err
	}
	w, h := cfg.WindowSize()
	return Canvas{
		Width:   w,
		Height:  h,
		Layout:  utils.NewGridLayout(cfg.Canvas),
		Palette: palette,
	}, nil
}

// Render 绘制所有石块并返回图像
func Render(poses []components.StonePose, canvas Canvas) image.Image {
	return draw(poses, canvas).Image()
}

// draw 在新的 gg 上下文中绘制所有石块
func draw(poses []components.StonePose, canvas Canvas) *gg.Context {
	dc := gg.NewContext(canvas.Width, canvas.Height)
	dc.SetColor(canvas.Palette.Background)
	dc.Clear()

	dc.SetColor(canvas.Palette.Stroke)
	dc.SetLineWidth(canvas.Layout.StrokeWidth())
	dc.SetLineJoin(gg.LineJoinRound)

	for _, pose := range poses {
		corners := canvas.Layout.StoneCorners(pose)
		dc.MoveTo(corners[0].X, corners[0].Y)
		for _, c := range corners[1:] {
			dc.LineTo(c.X, c.Y)
		}
		dc.ClosePath()
	}
	dc.Stroke()

	return dc
}

// EncodePNG 绘制并以 PNG 写出
func EncodePNG(w io.Writer, poses []components.StonePose, canvas Canvas) error {
	if err := draw(poses, canvas).EncodePNG(w); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

// PNGBytes 绘制并返回 PNG 数据
func PNGBytes(poses []components.StonePose, canvas Canvas) ([]byte, error) {
	var buf bytes.Buffer
	if err := EncodePNG(&buf, poses, canvas); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
