package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// DiskStorage writes uploads under dir/YYYY-MM/ with uuid-prefixed
// filenames and serves them back at baseURL/uploads/....
type DiskStorage struct {
	dir     string
	baseURL string
}

func NewDiskStorage(dir, baseURL string) *DiskStorage {
	return &DiskStorage{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}
}

func (d *DiskStorage) Save(_ context.Context, filename, _ string, r io.Reader, _ int64) (*SavedObject, error) {
	monthDir := time.Now().Format("2006-01")
	dirPath := filepath.Join(d.dir, monthDir)
	if err := os.MkdirAll(dirPath, 0o755); err != nil {
		return nil, err
	}

	ext := filepath.Ext(filename)
	base := strings.TrimSuffix(filepath.Base(filename), ext)
	if base == "" {
		base = "image"
	}
	name := unsafeChars.ReplaceAllString(fmt.Sprintf("%s-%s%s", uuid.New().String(), base, ext), "_")

	out, err := os.Create(filepath.Join(dirPath, name))
	if err != nil {
		return nil, err
	}
	defer out.Close()

	if _, err := io.Copy(out, r); err != nil {
		return nil, err
	}

	relPath := monthDir + "/" + name
	return &SavedObject{
		URL: fmt.Sprintf("%s/uploads/%s", d.baseURL, relPath),
		Key: relPath,
	}, nil
}

func (d *DiskStorage) Remove(_ context.Context, key string) error {
	if key == "" {
		return nil
	}
	err := os.Remove(filepath.Join(d.dir, filepath.FromSlash(key)))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
