package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gonewx/schotter/internal/raster"
	"github.com/gonewx/schotter/pkg/app"
	"github.com/gonewx/schotter/pkg/config"
	"github.com/gonewx/schotter/pkg/embedded"
)

// TestExportCommand 测试离屏导出命令
func TestExportCommand(t *testing.T) {
	embedded.Init(dataFS)

	tests := []struct {
		name string
		args []string
	}{
		{"静态模式", []string{"--mode", "static", "--seed", "7"}},
		{"动画模式", []string{"--mode", "animated", "--motion", "0", "--ticks", "120"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := filepath.Join(t.TempDir(), "frame.png")

			root := newRootCommand()
			root.SetArgs(append([]string{"export", "--out", out}, tt.args...))
			if err := root.Execute(); err != nil {
				t.Fatalf("export failed: %v", err)
			}

			f, err := os.Open(out)
			if err != nil {
				t.Fatalf("output not written: %v", err)
			}
			defer f.Close()

			img, err := png.Decode(f)
			if err != nil {
				t.Fatalf("output is not a PNG: %v", err)
			}
			if img.Bounds().Dx() != 430 || img.Bounds().Dy() != 730 {
				t.Errorf("image size = %v, want 430x730", img.Bounds())
			}
		})
	}
}

// TestExportRejectsBadFlags 测试非法参数在启动时被拒绝
func TestExportRejectsBadFlags(t *testing.T) {
	embedded.Init(dataFS)

	tests := [][]string{
		{"--motion", "1.5"},
		{"--mode", "spinning"},
		{"--ticks", "0"},
	}

	for _, args := range tests {
		root := newRootCommand()
		root.SetArgs(append([]string{"export", "--out", filepath.Join(t.TempDir(), "x.png")}, args...))
		if err := root.Execute(); err == nil {
			t.Errorf("export %v should fail", args)
		}
	}
}

// TestMotionFlagFreezes 测试 --motion 1 表示全部停留：动画模式导出规整网格
func TestMotionFlagFreezes(t *testing.T) {
	embedded.Init(dataFS)

	root := newRootCommand()
	usage := root.PersistentFlags().Lookup("motion").Usage
	if !strings.Contains(usage, "1 freezes the grid") {
		t.Errorf("--motion help should state the dwell direction, got %q", usage)
	}

	out := filepath.Join(t.TempDir(), "frozen.png")
	root.SetArgs([]string{"export", "--out", out, "--mode", "animated", "--motion", "1", "--ticks", "400"})
	if err := root.Execute(); err != nil {
		t.Fatalf("export failed: %v", err)
	}
	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}

	// 未推进的草图所有石块都在名义位置
	cfg := config.DefaultSketchConfig()
	sketch, err := app.NewSketch(cfg, nil)
	if err != nil {
		t.Fatalf("NewSketch() error: %v", err)
	}
	canvas, err := raster.NewCanvas(cfg)
	if err != nil {
		t.Fatalf("NewCanvas() error: %v", err)
	}
	want, err := raster.PNGBytes(sketch.Poses(), canvas)
	if err != nil {
		t.Fatalf("PNGBytes() error: %v", err)
	}

	if !bytes.Equal(got, want) {
		t.Error("motion=1 should keep every stone at its nominal position")
	}
}
