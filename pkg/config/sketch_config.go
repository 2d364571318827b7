// Package config 定义 Schotter 草图的可调参数及其校验规则
//
// 配置以 YAML 形式存放（默认值见 data/schotter.yaml），命令行参数可覆盖其中的字段。
package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig 所有配置校验失败都包装此错误，调用方可用 errors.Is 判断
var ErrInvalidConfig = errors.New("invalid sketch config")

// 采样常量
//
// 静态模式与动画模式的位移上限不同（0.5 与 5.5），两者都保留为独立的可调常量。
const (
	// StaticDisplacementBound 静态模式下位移采样范围 [-0.5, 0.5)（单位：格）
	StaticDisplacementBound = 0.5
	// AnimatedDisplacementBound 动画模式下目标位移采样范围 [-5.5, 5.5)（单位：格）
	AnimatedDisplacementBound = 5.5
	// DefaultRotationBoundDeg 旋转采样范围 ±45°（即 ±π/4）
	DefaultRotationBoundDeg = 45.0
	// DefaultMinCycles 阶段时长下限（含）
	DefaultMinCycles = 50
	// DefaultMaxCycles 阶段时长上限（不含）
	DefaultMaxCycles = 300
)

// Mode 运行模式
type Mode string

const (
	// ModeStatic 每次渲染用固定种子重新计算全部偏移
	ModeStatic Mode = "static"
	// ModeAnimated 石块在停留与过渡阶段之间循环
	ModeAnimated Mode = "animated"
)

// LoopMode 帧驱动方式
type LoopMode string

const (
	// LoopRefresh 按显示刷新率持续运行
	LoopRefresh LoopMode = "refresh"
	// LoopWait 仅在有输入时推进一次
	LoopWait LoopMode = "wait"
)

// SnapshotStorage 截图存储后端
type SnapshotStorage string

const (
	SnapshotStorageFile  SnapshotStorage = "file"
	SnapshotStorageGdata SnapshotStorage = "gdata"
)

// SketchConfig 草图完整配置
type SketchConfig struct {
	Mode     Mode           `yaml:"mode"`
	Loop     LoopMode       `yaml:"loop"`
	Grid     GridConfig     `yaml:"grid"`
	Canvas   CanvasConfig   `yaml:"canvas"`
	Sampling SamplingConfig `yaml:"sampling"`
	Initial  InitialConfig  `yaml:"initial"`
	Controls ControlsConfig `yaml:"controls"`
	Snapshot SnapshotConfig `yaml:"snapshot"`
}

// GridConfig 网格尺寸
type GridConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// CanvasConfig 画布与描边样式
type CanvasConfig struct {
	CellSize   int     `yaml:"cellSize"`   // 每格像素
	Margin     int     `yaml:"margin"`     // 四周留白（像素）
	LineWidth  float64 `yaml:"lineWidth"`  // 描边宽度（单位：格）
	Background string  `yaml:"background"` // 十六进制颜色，如 "#fffafa"
	Stroke     string  `yaml:"stroke"`
	HUD        bool    `yaml:"hud"` // 是否在窗口左上角显示当前参数
}

// SamplingConfig 随机采样范围
type SamplingConfig struct {
	StaticBound      float64 `yaml:"staticBound"`
	AnimatedBound    float64 `yaml:"animatedBound"`
	RotationBoundDeg float64 `yaml:"rotationBoundDeg"`
	MinCycles        int     `yaml:"minCycles"`
	MaxCycles        int     `yaml:"maxCycles"`
}

// InitialConfig 启动时的调节参数
type InitialConfig struct {
	DisplacementGain float64 `yaml:"displacementGain"`
	RotationGain     float64 `yaml:"rotationGain"`
	// Motion 石块到达阶段边界时进入停留的概率
	Motion float64 `yaml:"motion"`
	// Seed 静态模式的初始种子，为空时启动时随机采样
	Seed *uint64 `yaml:"seed,omitempty"`
}

// ControlsConfig 输入事件的步长
type ControlsConfig struct {
	GainStep   float64 `yaml:"gainStep"`
	MotionStep float64 `yaml:"motionStep"`
	SeedRange  uint64  `yaml:"seedRange"` // 重新采样种子的范围 [0, SeedRange)
}

// SnapshotConfig 截图输出
type SnapshotConfig struct {
	Storage SnapshotStorage `yaml:"storage"`
	Dir     string          `yaml:"dir"`     // file 后端的输出目录
	Name    string          `yaml:"name"`    // 文件名（不含扩展名）
	AppName string          `yaml:"appName"` // gdata 后端的应用名
}

// DefaultSketchConfig 返回默认配置（22 行 × 12 列）
func DefaultSketchConfig() *SketchConfig {
	return &SketchConfig{
		Mode: ModeAnimated,
		Loop: LoopRefresh,
		Grid: GridConfig{
			Rows: 22,
			Cols: 12,
		},
		Canvas: CanvasConfig{
			CellSize:   30,
			Margin:     35,
			LineWidth:  0.06,
			Background: "#fffafa",
			Stroke:     "#000000",
		},
		Sampling: SamplingConfig{
			StaticBound:      StaticDisplacementBound,
			AnimatedBound:    AnimatedDisplacementBound,
			RotationBoundDeg: DefaultRotationBoundDeg,
			MinCycles:        DefaultMinCycles,
			MaxCycles:        DefaultMaxCycles,
		},
		Initial: InitialConfig{
			DisplacementGain: 1.0,
			RotationGain:     1.0,
			Motion:           0.5,
		},
		Controls: ControlsConfig{
			GainStep:   0.1,
			MotionStep: 0.1,
			SeedRange:  1_000_000,
		},
		Snapshot: SnapshotConfig{
			Storage: SnapshotStorageFile,
			Dir:     ".",
			Name:    "schotter",
			AppName: "schotter",
		},
	}
}

// LoadSketchConfig 从 YAML 文件加载配置
//
// 文件中缺省的字段保留默认值。
//
// 参数:
//   - path: 配置文件路径
//
// 返回:
//   - *SketchConfig: 已通过校验的配置
//   - error: 读取、解析或校验失败
func LoadSketchConfig(path string) (*SketchConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sketch config: %w", err)
	}
	return ParseSketchConfig(data)
}

// ParseSketchConfig 解析 YAML 数据，未出现的字段使用默认值
func ParseSketchConfig(data []byte) (*SketchConfig, error) {
	cfg := DefaultSketchConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse sketch config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate 校验配置
//
// 网格尺寸为 0、motion 超出 [0,1]、阶段时长区间为空等情况都在启动时拒绝，
// 避免生成退化的画面。
func (c *SketchConfig) Validate() error {
	switch c.Mode {
	case ModeStatic, ModeAnimated:
	default:
		return fmt.Errorf("%w: mode must be %q or %q, got %q", ErrInvalidConfig, ModeStatic, ModeAnimated, c.Mode)
	}

	switch c.Loop {
	case LoopRefresh, LoopWait:
	default:
		return fmt.Errorf("%w: loop must be %q or %q, got %q", ErrInvalidConfig, LoopRefresh, LoopWait, c.Loop)
	}

	if c.Grid.Rows <= 0 || c.Grid.Cols <= 0 {
		return fmt.Errorf("%w: grid must be at least 1x1, got rows=%d cols=%d",
			ErrInvalidConfig, c.Grid.Rows, c.Grid.Cols)
	}

	if c.Canvas.CellSize <= 0 {
		return fmt.Errorf("%w: canvas.cellSize must be positive, got %d", ErrInvalidConfig, c.Canvas.CellSize)
	}
	if c.Canvas.Margin < 0 {
		return fmt.Errorf("%w: canvas.margin must be >= 0, got %d", ErrInvalidConfig, c.Canvas.Margin)
	}
	if c.Canvas.LineWidth <= 0 {
		return fmt.Errorf("%w: canvas.lineWidth must be positive, got %.3f", ErrInvalidConfig, c.Canvas.LineWidth)
	}
	if _, err := ParseColor(c.Canvas.Background); err != nil {
		return fmt.Errorf("%w: canvas.background: %v", ErrInvalidConfig, err)
	}
	if _, err := ParseColor(c.Canvas.Stroke); err != nil {
		return fmt.Errorf("%w: canvas.stroke: %v", ErrInvalidConfig, err)
	}

	if c.Sampling.StaticBound < 0 || c.Sampling.AnimatedBound < 0 || c.Sampling.RotationBoundDeg < 0 {
		return fmt.Errorf("%w: sampling bounds must be >= 0", ErrInvalidConfig)
	}
	if c.Sampling.MinCycles < 1 {
		return fmt.Errorf("%w: sampling.minCycles must be >= 1, got %d", ErrInvalidConfig, c.Sampling.MinCycles)
	}
	if c.Sampling.MaxCycles <= c.Sampling.MinCycles {
		return fmt.Errorf("%w: sampling cycle range [%d, %d) is empty",
			ErrInvalidConfig, c.Sampling.MinCycles, c.Sampling.MaxCycles)
	}

	if c.Initial.DisplacementGain < 0 || c.Initial.RotationGain < 0 {
		return fmt.Errorf("%w: initial gains must be >= 0, got displacement=%.2f rotation=%.2f",
			ErrInvalidConfig, c.Initial.DisplacementGain, c.Initial.RotationGain)
	}
	if err := ValidateMotion(c.Initial.Motion); err != nil {
		return err
	}

	if c.Controls.GainStep <= 0 || c.Controls.MotionStep <= 0 {
		return fmt.Errorf("%w: control steps must be positive", ErrInvalidConfig)
	}
	if c.Controls.SeedRange == 0 {
		return fmt.Errorf("%w: controls.seedRange must be positive", ErrInvalidConfig)
	}

	switch c.Snapshot.Storage {
	case SnapshotStorageFile, SnapshotStorageGdata:
	default:
		return fmt.Errorf("%w: snapshot.storage must be %q or %q, got %q",
			ErrInvalidConfig, SnapshotStorageFile, SnapshotStorageGdata, c.Snapshot.Storage)
	}
	if c.Snapshot.Name == "" {
		return fmt.Errorf("%w: snapshot.name must not be empty", ErrInvalidConfig)
	}

	return nil
}

// ValidateMotion 检查 motion 是否位于 [0, 1]
func ValidateMotion(motion float64) error {
	if math.IsNaN(motion) || motion < 0 || motion > 1 {
		return fmt.Errorf("%w: motion must be within [0, 1], got %v", ErrInvalidConfig, motion)
	}
	return nil
}

// WindowSize 返回窗口像素尺寸：列数×格宽 + 两侧留白
func (c *SketchConfig) WindowSize() (width, height int) {
	width = c.Grid.Cols*c.Canvas.CellSize + 2*c.Canvas.Margin
	height = c.Grid.Rows*c.Canvas.CellSize + 2*c.Canvas.Margin
	return width, height
}

// RotationBound 返回旋转采样上限（弧度）
func (s SamplingConfig) RotationBound() float64 {
	return s.RotationBoundDeg * math.Pi / 180
}

// DisplacementBound 返回指定模式使用的位移采样上限
func (s SamplingConfig) DisplacementBound(mode Mode) float64 {
	if mode == ModeStatic {
		return s.StaticBound
	}
	return s.AnimatedBound
}
