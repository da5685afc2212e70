// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package media

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ptd0409/portfolio/internal/platform/apperr"
	"github.com/ptd0409/portfolio/internal/testutil"
)

var (
	pngHeader  = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")
	gifHeader  = []byte("GIF89a\x01\x00\x01\x00\x80\x00\x00")
	jpegHeader = []byte("\xff\xd8\xff\xe0\x00\x10JFIF\x00\x01\x01\x00\x00\x01\x00\x01\x00\x00")
)

func newTestService(t *testing.T, maxBytes int64) (*Service, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := NewDiskStore(dir)
	require.NoError(t, err)
	return NewService(store, maxBytes, testutil.Logger()), dir
}

func TestService_Upload(t *testing.T) {
	tests := []struct {
		name      string
		content   []byte
		mime      string
		extension string
	}{
		{"png", pngHeader, "image/png", ".png"},
		{"gif", gifHeader, "image/gif", ".gif"},
		{"jpeg", jpegHeader, "image/jpeg", ".jpg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, dir := newTestService(t, 1<<20)

			upload, err := service.Upload(context.Background(), bytes.NewReader(tt.content))
			require.NoError(t, err)

			assert.Equal(t, tt.mime, upload.MIME)
			assert.True(t, strings.HasSuffix(upload.Key, tt.extension))
			assert.Equal(t, "/uploads/"+upload.Key, upload.URL)
			assert.Equal(t, int64(len(tt.content)), upload.Size)

			stored, err := os.ReadFile(filepath.Join(dir, upload.Key))
			require.NoError(t, err)
			assert.Equal(t, tt.content, stored)
		})
	}
}

func TestService_Upload_LargerThanSniffWindow(t *testing.T) {
	service, dir := newTestService(t, 1<<20)
	content := append(append([]byte{}, pngHeader...), bytes.Repeat([]byte{0x42}, 10_000)...)

	upload, err := service.Upload(context.Background(), bytes.NewReader(content))
	require.NoError(t, err)

	stored, err := os.ReadFile(filepath.Join(dir, upload.Key))
	require.NoError(t, err)
	assert.Equal(t, content, stored)
}

func TestService_Upload_Rejects(t *testing.T) {
	service, dir := newTestService(t, 64)

	_, err := service.Upload(context.Background(), strings.NewReader("just some text"))
	assert.True(t, apperr.HasCode(err, apperr.CodeUnsupportedMediaType))

	_, err = service.Upload(context.Background(), bytes.NewReader(nil))
	assert.True(t, apperr.HasCode(err, apperr.CodeValidation))

	oversized := append(append([]byte{}, pngHeader...), bytes.Repeat([]byte{0}, 100)...)
	_, err = service.Upload(context.Background(), bytes.NewReader(oversized))
	assert.True(t, apperr.HasCode(err, apperr.CodePayloadTooLarge))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "rejected uploads leave nothing on disk")
}

func TestDiskStore_Delete_Missing(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	require.NoError(t, err)
	assert.NoError(t, store.Delete(context.Background(), "missing.png"))
}
