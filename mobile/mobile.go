//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此文件仅在使用 -tags mobile 构建时编译：
//
//	# Android
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.gonewx.schotter -o build/android/schotter.aar ./mobile
//
//	# iOS (仅 macOS)
//	ebitenmobile bind -target ios -tags mobile -o build/ios/Schotter.xcframework ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/gonewx/schotter/pkg/app"
	"github.com/gonewx/schotter/pkg/config"
)

func init() {
	// 移动端没有配置文件，使用内置默认值；截图写入应用数据目录
	cfg := config.DefaultSketchConfig()
	cfg.Canvas.HUD = true
	cfg.Snapshot.Storage = config.SnapshotStorageGdata

	sketchApp, err := app.NewApp(cfg, app.Options{Verbose: true, Title: "schotter"})
	if err != nil {
		log.Fatalf("草图初始化失败: %v", err)
	}

	mobile.SetGame(sketchApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
