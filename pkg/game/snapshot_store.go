package game

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/quasilyte/gdata/v2"

	"github.com/gonewx/schotter/pkg/config"
)

// 存储路径常量
const snapshotObject = "snapshots"

// SnapshotStore 保存截图 PNG
//
// file 后端写入 <dir>/<name>.png，重复截图会覆盖；
// gdata 后端写入用户数据目录下 snapshots 对象的 <name>.png 属性。
// gdata 不可用时降级为 file 后端。
type SnapshotStore struct {
	storage      config.SnapshotStorage
	dir          string
	gdataManager *gdata.Manager // 可为 nil（降级模式）
}

// NewSnapshotStore 创建截图存储
//
// 参数：
//   - cfg: 截图配置
//   - gdataManager: gdata 存储管理器，仅 gdata 后端使用，可为 nil
func NewSnapshotStore(cfg config.SnapshotConfig, gdataManager *gdata.Manager) *SnapshotStore {
	storage := cfg.Storage
	if storage == config.SnapshotStorageGdata && gdataManager == nil {
		log.Printf("[Snapshot] Warning: gdata unavailable, falling back to file storage in %q", cfg.Dir)
		storage = config.SnapshotStorageFile
	}

	dir := cfg.Dir
	if dir == "" {
		dir = "."
	}

	return &SnapshotStore{
		storage:      storage,
		dir:          dir,
		gdataManager: gdataManager,
	}
}

// OpenSnapshotStore 按配置打开截图存储，gdata 初始化失败不是致命错误
func OpenSnapshotStore(cfg config.SnapshotConfig) *SnapshotStore {
	if cfg.Storage != config.SnapshotStorageGdata {
		return NewSnapshotStore(cfg, nil)
	}

	manager, err := gdata.Open(gdata.Config{AppName: cfg.AppName})
	if err != nil {
		log.Printf("[Snapshot] Warning: failed to open gdata for %q: %v", cfg.AppName, err)
		return NewSnapshotStore(cfg, nil)
	}
	return NewSnapshotStore(cfg, manager)
}

// Storage 返回实际使用的后端
func (s *SnapshotStore) Storage() config.SnapshotStorage {
	return s.storage
}

// Save 保存 PNG 数据
//
// 返回：
//   - string: 保存位置（文件路径或 "gdata:snapshots/<name>.png"）
//   - error: 写入失败
func (s *SnapshotStore) Save(name string, png []byte) (string, error) {
	if name == "" {
		return "", fmt.Errorf("snapshot name must not be empty")
	}

	file := name + ".png"

	if s.storage == config.SnapshotStorageGdata {
		if err := s.gdataManager.SaveObjectProp(snapshotObject, file, png); err != nil {
			return "", fmt.Errorf("failed to save snapshot %q: %w", file, err)
		}
		location := "gdata:" + snapshotObject + "/" + file
		log.Printf("[Snapshot] Saved %d bytes to %s", len(png), location)
		return location, nil
	}

	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create snapshot dir %s: %w", s.dir, err)
	}
	path := filepath.Join(s.dir, file)
	if err := os.WriteFile(path, png, 0644); err != nil {
		return "", fmt.Errorf("failed to write snapshot %s: %w", path, err)
	}
	log.Printf("[Snapshot] Saved %d bytes to %s", len(png), path)
	return path, nil
}
