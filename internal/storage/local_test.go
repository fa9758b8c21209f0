package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) (*LocalStorage, string) {
	t.Helper()
	dir := t.TempDir()
	st, err := NewLocalStorage(Config{BasePath: dir, BaseURL: "/uploads"})
	require.NoError(t, err)
	return st, dir
}

func TestSaveCreatesParentDirectories(t *testing.T) {
	st, dir := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, st.Save(ctx, "ads/7/image.jpg", strings.NewReader("bytes")))

	content, err := os.ReadFile(filepath.Join(dir, "ads", "7", "image.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "bytes", string(content))

	exists, err := st.Exists(ctx, "ads/7/image.jpg")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestDeleteToleratesMissingFile(t *testing.T) {
	st, _ := newTestStorage(t)

	assert.NoError(t, st.Delete(context.Background(), "ads/404/image.jpg"))
}

func TestDeleteDirIsBestEffort(t *testing.T) {
	st, dir := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, st.Save(ctx, "ads/7/image.jpg", strings.NewReader("bytes")))

	// A missing directory must not panic or error.
	st.DeleteDir(ctx, "ads/404")

	st.DeleteDir(ctx, "ads/7")
	_, err := os.Stat(filepath.Join(dir, "ads", "7"))
	assert.True(t, os.IsNotExist(err))
}

func TestURL(t *testing.T) {
	st, _ := newTestStorage(t)

	assert.Equal(t, "/uploads/ads/7/image.jpg", st.URL("ads/7/image.jpg"))
}
