package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLocalMediaStore_SaveAndDelete(t *testing.T) {
	root := t.TempDir()
	store, err := NewLocalMediaStore(root, "/media")
	require.NoError(t, err)
	ctx := context.Background()

	src, err := store.Save(ctx, "avatars", "me.PNG", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(src, "/media/avatars/"))
	require.True(t, strings.HasSuffix(src, ".png"))

	path := filepath.Join(root, "avatars", filepath.Base(src))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "png-bytes", string(data))

	require.NoError(t, store.Delete(ctx, src))
	_, err = os.Stat(path)
	require.True(t, os.IsNotExist(err))

	// 重複刪除與外部路徑都不報錯
	require.NoError(t, store.Delete(ctx, src))
	require.NoError(t, store.Delete(ctx, "https://cdn.example.com/x.png"))
}

func TestLocalMediaStore_RejectsExtension(t *testing.T) {
	store, err := NewLocalMediaStore(t.TempDir(), "/media/")
	require.NoError(t, err)

	_, err = store.Save(context.Background(), "avatars", "evil.exe", strings.NewReader("x"))
	require.ErrorIs(t, err, ErrUnsupportedMedia)
}

func TestLocalMediaStore_DirTraversal(t *testing.T) {
	root := t.TempDir()
	store, err := NewLocalMediaStore(root, "/media/")
	require.NoError(t, err)

	src, err := store.Save(context.Background(), "../../etc", "a.jpg", strings.NewReader("x"))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(src, "/media/etc/"))
	_, err = os.Stat(filepath.Join(root, "etc", filepath.Base(src)))
	require.NoError(t, err)
}
