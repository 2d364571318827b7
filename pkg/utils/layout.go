// Package utils 提供网格坐标与像素坐标之间的转换
//
// # 坐标系统
//
//   - 网格坐标：(col, row)，以格为单位，row 向下增长
//   - 石块局部坐标：相对格子中心的偏移（单位：格），即 StoneComponent.Offset
//   - 像素坐标：相对画布左上角，y 向下
//
// # 转换公式
//
//	centerX = margin + (col + 0.5 + offsetX) * cellSize
//	centerY = margin + (row + 0.5 + offsetY) * cellSize
//
// 四个角点为中心加上旋转后的 (±0.5, ±0.5) * cellSize。
// 窗口渲染（ebiten）与离屏渲染（gg）共用这套几何，保证截图与窗口一致。
package utils

import (
	"math"

	"github.com/gonewx/schotter/pkg/components"
	"github.com/gonewx/schotter/pkg/config"
)

// Point 像素坐标
type Point struct {
	X, Y float64
}

// GridLayout 网格到画布的映射参数
type GridLayout struct {
	CellSize  float64 // 每格像素
	Margin    float64 // 留白像素
	LineWidth float64 // 描边宽度（单位：格）
}

// NewGridLayout 从画布配置构造
func NewGridLayout(canvas config.CanvasConfig) GridLayout {
	return GridLayout{
		CellSize:  float64(canvas.CellSize),
		Margin:    float64(canvas.Margin),
		LineWidth: canvas.LineWidth,
	}
}

// CellCenter 返回格子名义中心的像素坐标
func (l GridLayout) CellCenter(col, row int) Point {
	return Point{
		X: l.Margin + (float64(col)+0.5)*l.CellSize,
		Y: l.Margin + (float64(row)+0.5)*l.CellSize,
	}
}

// StrokeWidth 返回描边宽度（像素）
func (l GridLayout) StrokeWidth() float64 {
	return l.LineWidth * l.CellSize
}

// StoneCenter 返回石块位移后的中心
func (l GridLayout) StoneCenter(pose components.StonePose) Point {
	c := l.CellCenter(pose.Col, pose.Row)
	return Point{
		X: c.X + pose.OffsetX*l.CellSize,
		Y: c.Y + pose.OffsetY*l.CellSize,
	}
}

// unitCorners 单位正方形的四个角，顺时针（屏幕坐标下）
var unitCorners = [4]Point{
	{X: -0.5, Y: -0.5},
	{X: 0.5, Y: -0.5},
	{X: 0.5, Y: 0.5},
	{X: -0.5, Y: 0.5},
}

// StoneCorners 返回石块四个角的像素坐标
func (l GridLayout) StoneCorners(pose components.StonePose) [4]Point {
	center := l.StoneCenter(pose)
	sin, cos := math.Sincos(pose.Rotation)

	var corners [4]Point
	for i, u := range unitCorners {
		x := u.X * l.CellSize
		y := u.Y * l.CellSize
		corners[i] = Point{
			X: center.X + x*cos - y*sin,
			Y: center.Y + x*sin + y*cos,
		}
	}
	return corners
}
