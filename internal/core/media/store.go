// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Store persists uploaded objects by key.
type Store interface {
	// Save writes content under key and returns the number of bytes written.
	Save(ctx context.Context, key string, content io.Reader) (int64, error)
	Delete(ctx context.Context, key string) error
}

// DiskStore keeps objects as flat files in one directory.
type DiskStore struct {
	dir string
}

// NewDiskStore creates dir when missing.
func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("media: create upload dir: %w", err)
	}
	return &DiskStore{dir: dir}, nil
}

func (store *DiskStore) path(key string) string {
	return filepath.Join(store.dir, filepath.Base(key))
}

func (store *DiskStore) Save(ctx context.Context, key string, content io.Reader) (int64, error) {
	file, err := os.OpenFile(store.path(key), os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return 0, fmt.Errorf("media: create %s: %w", key, err)
	}

	written, copyErr := io.Copy(file, content)
	closeErr := file.Close()
	if err := errors.Join(copyErr, closeErr); err != nil {
		_ = os.Remove(file.Name())
		return written, fmt.Errorf("media: write %s: %w", key, err)
	}
	return written, nil
}

func (store *DiskStore) Delete(ctx context.Context, key string) error {
	if err := os.Remove(store.path(key)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("media: delete %s: %w", key, err)
	}
	return nil
}
