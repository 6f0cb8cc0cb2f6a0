package upload

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// 商品画像の保存先。保存名はUUID＋元の拡張子にして衝突を避ける。
type FileStore struct {
	dir string
}

func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Save はファイルを書き込んで保存名を返す。
func (s *FileStore) Save(originalName string, data []byte) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", err
	}

	ext := filepath.Ext(originalName)
	savedName := uuid.NewString() + ext

	if err := os.WriteFile(filepath.Join(s.dir, savedName), data, 0o644); err != nil {
		return "", err
	}

	return savedName, nil
}

// Delete は保存済みファイルを削除する。無ければ何もしない。
func (s *FileStore) Delete(savedName string) error {
	err := os.Remove(filepath.Join(s.dir, savedName))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
