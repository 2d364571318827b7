// Package app 提供草图窗口外壳
//
// App 实现 ebiten.Game：每帧先把按键翻译成命令并应用，再推进一帧模拟，
// 最后由渲染系统绘制。所有状态都在 ebiten 的单一更新线程上修改。
package app

import (
	"fmt"
	"io"
	"log"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/schotter/internal/raster"
	"github.com/gonewx/schotter/pkg/config"
	"github.com/gonewx/schotter/pkg/game"
	"github.com/gonewx/schotter/pkg/systems"
)

// Options 启动选项
type Options struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Title 窗口标题
	Title string
	// RNG 模拟使用的随机源，为 nil 时随机播种
	RNG *rand.Rand
	// Snapshots 截图存储，为 nil 时按配置打开
	Snapshots *game.SnapshotStore
}

// App 是草图的窗口外壳，实现 ebiten.Game 接口
type App struct {
	cfg    *config.SketchConfig
	title  string
	sketch *Sketch

	input     *systems.InputSystem
	renderer  *systems.StoneRenderSystem
	canvas    raster.Canvas
	snapshots *game.SnapshotStore

	started bool
	redraw  bool
}

// NewApp 创建并初始化应用
func NewApp(cfg *config.SketchConfig, opts Options) (*App, error) {
	// 配置日志输出
	if !opts.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	sketch, err := NewSketch(cfg, opts.RNG)
	if err != nil {
		return nil, err
	}

	renderer, err := systems.NewStoneRenderSystem(cfg.Canvas)
	if err != nil {
		return nil, err
	}

	canvas, err := raster.NewCanvas(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build snapshot canvas: %w", err)
	}

	snapshots := opts.Snapshots
	if snapshots == nil {
		snapshots = game.OpenSnapshotStore(cfg.Snapshot)
	}

	title := opts.Title
	if title == "" {
		title = "schotter"
	}

	return &App{
		cfg:       cfg,
		title:     title,
		sketch:    sketch,
		input:     systems.NewInputSystem(sketch.Controls()),
		renderer:  renderer,
		canvas:    canvas,
		snapshots: snapshots,
	}, nil
}

// Sketch 返回模拟部分
func (a *App) Sketch() *Sketch {
	return a.sketch
}

// Update 每个 tick 调用一次
func (a *App) Update() error {
	a.Step(a.input.Poll())
	return nil
}

// Step 应用本帧命令并推进模拟
//
// wait 模式下只有首帧和有命令的帧才推进。redraw 只在推进时置位、在 Draw 之后清除，
// ebiten 在一次 Draw 之前连续调用多次 Update 时也不会丢失待绘制的帧。
func (a *App) Step(cmds []game.Command) {
	effect := a.sketch.Apply(cmds)
	if effect.Capture {
		if _, err := a.Capture(); err != nil {
			log.Printf("[App] Warning: snapshot failed: %v", err)
		}
	}

	if a.cfg.Loop == config.LoopWait && a.started && len(cmds) == 0 {
		return
	}

	a.sketch.Tick()
	a.started = true
	a.redraw = true
}

// NeedsRedraw 自上次 Draw 以来模拟是否推进过
func (a *App) NeedsRedraw() bool {
	return a.redraw
}

// Capture 离屏绘制当前姿态并保存
func (a *App) Capture() (string, error) {
	data, err := raster.PNGBytes(a.sketch.Poses(), a.canvas)
	if err != nil {
		return "", err
	}
	return a.snapshots.Save(a.cfg.Snapshot.Name, data)
}

// Draw 绘制画面
//
// wait 模式下屏幕不会每帧清空，没有推进时保留上一帧画面；refresh 模式每帧都重绘。
func (a *App) Draw(screen *ebiten.Image) {
	if a.cfg.Loop == config.LoopWait && !a.redraw {
		return
	}
	a.renderer.Draw(screen, a.sketch.Poses())
	a.renderer.DrawHUD(screen, a.sketch.Mode(), a.sketch.Controls())
	a.redraw = false
}

// Layout 返回逻辑屏幕尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.cfg.WindowSize()
}

// Run 打开窗口并进入主循环，直到窗口关闭
func (a *App) Run() error {
	w, h := a.cfg.WindowSize()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(a.title)

	// wait 模式下不推进的帧需要保留上一帧画面
	ebiten.SetScreenClearedEveryFrame(a.cfg.Loop == config.LoopRefresh)
	ebiten.SetVsyncEnabled(true)

	log.Printf("[App] Starting %s (%dx%d, loop=%s)", a.title, w, h, a.cfg.Loop)
	if err := ebiten.RunGame(a); err != nil {
		return fmt.Errorf("game loop stopped: %w", err)
	}
	return nil
}
