package app

import (
	"bytes"
	"image/png"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gonewx/schotter/pkg/config"
	"github.com/gonewx/schotter/pkg/game"
)

// newTestApp 创建截图写入临时目录的应用
func newTestApp(t *testing.T, mutate func(cfg *config.SketchConfig)) (*App, string) {
	t.Helper()
	dir := t.TempDir()

	cfg := config.DefaultSketchConfig()
	cfg.Snapshot.Storage = config.SnapshotStorageFile
	cfg.Snapshot.Dir = dir
	if mutate != nil {
		mutate(cfg)
	}

	app, err := NewApp(cfg, Options{
		RNG:       rand.New(rand.NewPCG(10, 11)),
		Snapshots: game.NewSnapshotStore(cfg.Snapshot, nil),
	})
	if err != nil {
		t.Fatalf("NewApp() error: %v", err)
	}
	return app, dir
}

// TestStepRefreshLoop 测试 refresh 模式每帧都推进
func TestStepRefreshLoop(t *testing.T) {
	app, _ := newTestApp(t, nil)

	for i := 0; i < 5; i++ {
		app.Step(nil)
		if !app.NeedsRedraw() {
			t.Fatalf("frame %d: refresh loop should always redraw", i)
		}
	}
	if got := app.Sketch().Ticks(); got != 5 {
		t.Errorf("Ticks() = %d, want 5", got)
	}
}

// TestStepWaitLoop 测试 wait 模式只在首帧和有命令时推进
func TestStepWaitLoop(t *testing.T) {
	app, _ := newTestApp(t, func(cfg *config.SketchConfig) { cfg.Loop = config.LoopWait })
	w, h := app.Layout(0, 0)
	screen := ebiten.NewImage(w, h)

	app.Step(nil)
	if !app.NeedsRedraw() || app.Sketch().Ticks() != 1 {
		t.Fatalf("first frame should tick and redraw (ticks=%d)", app.Sketch().Ticks())
	}
	app.Draw(screen)
	if app.NeedsRedraw() {
		t.Fatal("redraw flag should be cleared after Draw")
	}

	app.Step(nil)
	app.Step(nil)
	if app.NeedsRedraw() || app.Sketch().Ticks() != 1 {
		t.Fatalf("idle frames should not tick (ticks=%d, redraw=%v)", app.Sketch().Ticks(), app.NeedsRedraw())
	}

	app.Step([]game.Command{game.IncreaseRotation()})
	if !app.NeedsRedraw() || app.Sketch().Ticks() != 2 {
		t.Errorf("frame with input should tick (ticks=%d)", app.Sketch().Ticks())
	}
}

// TestStepWaitLoopKeepsPendingRedraw 测试一次 Draw 之前连续多次 Update 时不丢失重绘
func TestStepWaitLoopKeepsPendingRedraw(t *testing.T) {
	app, _ := newTestApp(t, func(cfg *config.SketchConfig) { cfg.Loop = config.LoopWait })
	w, h := app.Layout(0, 0)
	screen := ebiten.NewImage(w, h)

	app.Step(nil)
	app.Draw(screen)

	// 有输入的 Update 之后紧跟一次无输入的追帧 Update
	app.Step([]game.Command{game.IncreaseDisplacement()})
	app.Step(nil)

	if !app.NeedsRedraw() {
		t.Fatal("changed state must still be pending until Draw runs")
	}
	if got := app.Sketch().Ticks(); got != 2 {
		t.Errorf("Ticks() = %d, want 2", got)
	}

	app.Draw(screen)
	if app.NeedsRedraw() {
		t.Error("redraw flag should be cleared after Draw")
	}
}

// TestStepAppliesCommandsBeforeTick 测试命令在推进前生效
func TestStepAppliesCommandsBeforeTick(t *testing.T) {
	app, _ := newTestApp(t, nil)

	app.Step([]game.Command{game.SetMotion(1)})
	if got := app.Sketch().Controls().Motion(); got != 1 {
		t.Fatalf("Motion() = %v, want 1", got)
	}

	// motion=1 时首个阶段边界全部进入停留，石块保持原位
	for _, p := range app.Sketch().Poses() {
		if p.OffsetX != 0 || p.OffsetY != 0 || p.Rotation != 0 {
			t.Fatalf("stone moved although every stone should dwell: %+v", p)
		}
	}
}

// TestStepCapture 测试截图命令写出 PNG
func TestStepCapture(t *testing.T) {
	app, dir := newTestApp(t, func(cfg *config.SketchConfig) { cfg.Snapshot.Name = "frame" })

	app.Step(nil)
	app.Step([]game.Command{game.CaptureFrame()})

	data, err := os.ReadFile(filepath.Join(dir, "frame.png"))
	if err != nil {
		t.Fatalf("snapshot not written: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("snapshot is not a valid PNG: %v", err)
	}
	w, h := app.Layout(0, 0)
	if img.Bounds().Dx() != w || img.Bounds().Dy() != h {
		t.Errorf("snapshot size = %v, want %dx%d", img.Bounds().Size(), w, h)
	}
}

// TestLayout 测试逻辑屏幕尺寸
func TestLayout(t *testing.T) {
	app, _ := newTestApp(t, nil)
	w, h := app.Layout(1920, 1080)
	if w != 12*30+2*35 || h != 22*30+2*35 {
		t.Errorf("Layout() = %dx%d, want 430x730", w, h)
	}
}
