package game

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/quasilyte/gdata/v2"

	"github.com/gonewx/schotter/pkg/config"
)

// createTestGdataManager 创建测试用 gdata Manager，数据目录位于临时 HOME 下
func createTestGdataManager(t *testing.T) *gdata.Manager {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", "")

	appName := fmt.Sprintf("schotter_test_%d", time.Now().UnixNano())
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil
	}
	return manager
}

// TestSnapshotStoreFile 测试文件后端写入 <dir>/<name>.png
func TestSnapshotStoreFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	store := NewSnapshotStore(config.SnapshotConfig{
		Storage: config.SnapshotStorageFile,
		Dir:     dir,
	}, nil)

	payload := []byte("\x89PNG fake")
	location, err := store.Save("schotter", payload)
	if err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	want := filepath.Join(dir, "schotter.png")
	if location != want {
		t.Errorf("location = %q, want %q", location, want)
	}

	onDisk, err := os.ReadFile(want)
	if err != nil {
		t.Fatalf("failed to read snapshot: %v", err)
	}
	if !bytes.Equal(onDisk, payload) {
		t.Error("snapshot content mismatch")
	}

	// 重复截图覆盖同名文件
	if _, err := store.Save("schotter", []byte("second")); err != nil {
		t.Fatalf("second Save() error: %v", err)
	}
	loaded, err := os.ReadFile(want)
	if err != nil {
		t.Fatalf("failed to read snapshot: %v", err)
	}
	if string(loaded) != "second" {
		t.Errorf("snapshot = %q, want overwritten content", loaded)
	}
}

// TestSnapshotStoreRejectsEmptyName 测试空名称
func TestSnapshotStoreRejectsEmptyName(t *testing.T) {
	store := NewSnapshotStore(config.SnapshotConfig{Storage: config.SnapshotStorageFile, Dir: t.TempDir()}, nil)
	if _, err := store.Save("", []byte("x")); err == nil {
		t.Error("expected error for empty snapshot name")
	}
}

// TestSnapshotStoreDegradesWithoutGdata 测试 gdata 不可用时降级为文件
func TestSnapshotStoreDegradesWithoutGdata(t *testing.T) {
	dir := t.TempDir()
	store := NewSnapshotStore(config.SnapshotConfig{
		Storage: config.SnapshotStorageGdata,
		Dir:     dir,
	}, nil)

	if store.Storage() != config.SnapshotStorageFile {
		t.Fatalf("Storage() = %q, want file", store.Storage())
	}
	location, err := store.Save("frame", []byte("data"))
	if err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if location != filepath.Join(dir, "frame.png") {
		t.Errorf("location = %q", location)
	}
}

// TestSnapshotStoreDefaultDir 测试未配置目录时使用当前目录
func TestSnapshotStoreDefaultDir(t *testing.T) {
	store := NewSnapshotStore(config.SnapshotConfig{Storage: config.SnapshotStorageFile}, nil)
	if store.dir != "." {
		t.Errorf("dir = %q, want \".\"", store.dir)
	}
}

// TestSnapshotStoreGdata 测试 gdata 后端的保存与读取
func TestSnapshotStoreGdata(t *testing.T) {
	manager := createTestGdataManager(t)
	if manager == nil {
		t.Skip("Cannot create gdata manager for testing")
	}

	store := NewSnapshotStore(config.SnapshotConfig{Storage: config.SnapshotStorageGdata}, manager)
	if store.Storage() != config.SnapshotStorageGdata {
		t.Fatalf("Storage() = %q, want gdata", store.Storage())
	}

	payload := []byte{0x89, 'P', 'N', 'G', 1, 2, 3}
	location, err := store.Save("schotter", payload)
	if err != nil {
		t.Fatalf("Save() error: %v", err)
	}
	if location != "gdata:snapshots/schotter.png" {
		t.Errorf("location = %q", location)
	}

	// 属性名与文件后端一致带 .png 后缀
	if !manager.ObjectPropExists("snapshots", "schotter.png") {
		t.Fatal("snapshot should be stored under property schotter.png")
	}
	if manager.ObjectPropExists("snapshots", "schotter") {
		t.Error("snapshot should not be stored under the bare name")
	}
	loaded, err := manager.LoadObjectProp("snapshots", "schotter.png")
	if err != nil {
		t.Fatalf("LoadObjectProp() error: %v", err)
	}
	if !bytes.Equal(loaded, payload) {
		t.Error("gdata snapshot content mismatch")
	}
}
