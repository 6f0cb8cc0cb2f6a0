package upload_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"shop/internal/upload"

	"github.com/stretchr/testify/assert"
)

func TestFileStore_Save(t *testing.T) {
	dir := t.TempDir()
	store := upload.NewFileStore(dir)

	savedName, err := store.Save("front.png", []byte("image-bytes"))

	assert.NoError(t, err)
	//保存名はUUIDベース（元の名前は使わない）＋元の拡張子
	assert.NotEqual(t, "front.png", savedName)
	assert.True(t, strings.HasSuffix(savedName, ".png"))

	data, err := os.ReadFile(filepath.Join(dir, savedName))
	assert.NoError(t, err)
	assert.Equal(t, []byte("image-bytes"), data)
}

func TestFileStore_Save_NoCollision(t *testing.T) {
	store := upload.NewFileStore(t.TempDir())

	a, err := store.Save("same.png", []byte("a"))
	assert.NoError(t, err)
	b, err := store.Save("same.png", []byte("b"))
	assert.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestFileStore_Delete(t *testing.T) {
	dir := t.TempDir()
	store := upload.NewFileStore(dir)

	savedName, err := store.Save("front.png", []byte("x"))
	assert.NoError(t, err)

	assert.NoError(t, store.Delete(savedName))

	_, err = os.Stat(filepath.Join(dir, savedName))
	assert.True(t, os.IsNotExist(err))
}

func TestFileStore_Delete_MissingFile(t *testing.T) {
	store := upload.NewFileStore(t.TempDir())

	//無いファイルの削除はエラーにしない
	assert.NoError(t, store.Delete("no-such-file.png"))
}
