package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var ErrUnsupportedMedia = errors.New("unsupported media type")

var allowedExt = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
	".svg":  true,
}

// MediaStore 上傳檔案的存放處, 回傳可直接給前端的 src
type MediaStore interface {
	Save(ctx context.Context, dir string, filename string, r io.Reader) (string, error)
	Delete(ctx context.Context, src string) error
}

// LocalMediaStore 檔案寫在 root 之下, src 以 baseURL 為前綴
type LocalMediaStore struct {
	root    string
	baseURL string
}

func NewLocalMediaStore(root, baseURL string) (*LocalMediaStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create media root %s: %w", root, err)
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	return &LocalMediaStore{root: root, baseURL: baseURL}, nil
}

func (s *LocalMediaStore) Root() string {
	return s.root
}

// Save 檔名一律換成 uuid, 只保留副檔名
func (s *LocalMediaStore) Save(ctx context.Context, dir string, filename string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedExt[ext] {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedMedia, ext)
	}
	dir = path.Clean("/" + dir)[1:]

	if err := os.MkdirAll(filepath.Join(s.root, filepath.FromSlash(dir)), 0o755); err != nil {
		return "", fmt.Errorf("failed to create media dir: %w", err)
	}

	name := uuid.NewString() + ext
	rel := path.Join(dir, name)
	f, err := os.Create(filepath.Join(s.root, filepath.FromSlash(rel)))
	if err != nil {
		return "", fmt.Errorf("failed to create media file: %w", err)
	}
	if _, err := io.Copy(f, &ctxReader{ctx: ctx, r: r}); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to write media file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return s.baseURL + rel, nil
}

// Delete 只刪除本 store 產生的檔案, 不存在視為成功
func (s *LocalMediaStore) Delete(_ context.Context, src string) error {
	rel, ok := strings.CutPrefix(src, s.baseURL)
	if !ok || rel == "" {
		return nil
	}
	rel = path.Clean("/" + rel)[1:]
	err := os.Remove(filepath.Join(s.root, filepath.FromSlash(rel)))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete media %s: %w", src, err)
	}
	return nil
}

type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}

var _ MediaStore = (*LocalMediaStore)(nil)
