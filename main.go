// Package main 是 Schotter 草图的命令行入口
//
// Usage:
//
//	schotter [flags]                 打开窗口
//	schotter export --out a.png      离屏导出一帧
//
// Controls:
//
//	R / 点击      重新采样种子（静态模式）
//	S             保存截图
//	Up/K, Down/J  位移增益 ±0.1（下限 0）
//	Right/L, Left/H 旋转增益 ±0.1（下限 0）
//	] / [         停留概率 motion ±0.1（越大越静止：0 从不停留，1 全部冻结；
//	              与以"运动量"为滑块含义的做法方向相反）
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gonewx/schotter/internal/raster"
	"github.com/gonewx/schotter/pkg/app"
	"github.com/gonewx/schotter/pkg/config"
	"github.com/gonewx/schotter/pkg/embedded"
)

// cliFlags 命令行覆盖项
type cliFlags struct {
	configPath string
	mode       string
	loop       string
	seed       uint64
	motion     float64
	hud        bool
	verbose    bool
}

func main() {
	embedded.Init(dataFS)

	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	flags := &cliFlags{}

	root := &cobra.Command{
		Use:           "schotter",
		Short:         "Georg Nees style gravel grid, static or animated",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}

			a, err := app.NewApp(cfg, app.Options{
				Verbose: flags.verbose,
				Title:   filepath.Base(os.Args[0]),
			})
			if err != nil {
				return err
			}
			return a.Run()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "path to a YAML sketch config (default: embedded data/schotter.yaml)")
	pf.StringVar(&flags.mode, "mode", "", "operating mode: static or animated")
	pf.StringVar(&flags.loop, "loop", "", "frame loop: refresh or wait")
	pf.Uint64Var(&flags.seed, "seed", 0, "initial seed for static mode")
	pf.Float64Var(&flags.motion, "motion", 0, "dwell probability in [0,1] at each phase boundary: 0 keeps every stone moving, 1 freezes the grid (higher means calmer, the inverse of a movement slider)")
	pf.BoolVar(&flags.hud, "hud", false, "print gains, motion and seed in the window")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newExportCommand(flags))
	return root
}

func newExportCommand(flags *cliFlags) *cobra.Command {
	var (
		out   string
		ticks int
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render one frame to a PNG file without opening a window",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !flags.verbose {
				log.SetOutput(io.Discard)
			}
			if ticks < 1 {
				return fmt.Errorf("--ticks must be >= 1, got %d", ticks)
			}

			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}
			return exportPNG(cfg, out, ticks)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "schotter.png", "output PNG path")
	cmd.Flags().IntVar(&ticks, "ticks", 1, "number of ticks to simulate before rendering (animated mode)")
	return cmd
}

// loadConfig 读取配置文件（或内置默认值）并应用命令行覆盖
func loadConfig(cmd *cobra.Command, flags *cliFlags) (*config.SketchConfig, error) {
	var (
		cfg *config.SketchConfig
		err error
	)

	if flags.configPath != "" {
		cfg, err = config.LoadSketchConfig(flags.configPath)
	} else {
		var data []byte
		data, err = embedded.ReadFile(embedded.DefaultConfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read embedded config: %w", err)
		}
		cfg, err = config.ParseSketchConfig(data)
	}
	if err != nil {
		return nil, err
	}

	changed := cmd.Flags().Changed
	if changed("mode") {
		cfg.Mode = config.Mode(flags.mode)
	}
	if changed("loop") {
		cfg.Loop = config.LoopMode(flags.loop)
	}
	if changed("seed") {
		seed := flags.seed
		cfg.Initial.Seed = &seed
	}
	if changed("motion") {
		cfg.Initial.Motion = flags.motion
	}
	if changed("hud") {
		cfg.Canvas.HUD = flags.hud
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	log.Printf("[Config] Loaded sketch config: mode=%s grid=%dx%d", cfg.Mode, cfg.Grid.Rows, cfg.Grid.Cols)
	return cfg, nil
}

// exportPNG 离屏模拟 ticks 帧后写出 PNG
func exportPNG(cfg *config.SketchConfig, out string, ticks int) error {
	sketch, err := app.NewSketch(cfg, nil)
	if err != nil {
		return err
	}

	// 静态模式每帧结果相同，只需计算一次
	if cfg.Mode == config.ModeStatic {
		ticks = 1
	}
	for i := 0; i < ticks; i++ {
		sketch.Tick()
	}

	canvas, err := raster.NewCanvas(cfg)
	if err != nil {
		return err
	}

	f, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", out, err)
	}
	defer f.Close()

	if err := raster.EncodePNG(f, sketch.Poses(), canvas); err != nil {
		return err
	}
	log.Printf("[Export] Wrote %s (seed=%d, ticks=%d)", out, sketch.Controls().Seed(), sketch.Ticks())
	return f.Close()
}
