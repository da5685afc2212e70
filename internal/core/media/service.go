// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package media

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/gabriel-vasile/mimetype"

	"github.com/ptd0409/portfolio/internal/platform/apperr"
	"github.com/ptd0409/portfolio/internal/platform/metrics"
	"github.com/ptd0409/portfolio/pkg/uuid"
)

// sniffLen is how much of the upload is buffered for type detection.
const sniffLen = 3072

type Service struct {
	store    Store
	maxBytes int64
	logger   *slog.Logger
}

func NewService(store Store, maxBytes int64, logger *slog.Logger) *Service {
	return &Service{store: store, maxBytes: maxBytes, logger: logger}
}

/*
Upload stores one image.

Description: The type is detected from the first bytes. Content larger than
the configured limit is removed again and rejected.

Returns:
  - *Upload: The stored object's key, public URL, type and size
  - error: VALIDATION_ERROR (empty), UNSUPPORTED_MEDIA_TYPE, PAYLOAD_TOO_LARGE
*/
func (service *Service) Upload(ctx context.Context, content io.Reader) (*Upload, error) {
	upload, err := service.upload(ctx, content)
	metrics.RecordMutation(entity, "upload", metrics.ResultOf(err))
	return upload, err
}

func (service *Service) upload(ctx context.Context, content io.Reader) (*Upload, error) {
	// ── 1. Sniff ──────────────────────────────────────────────────────────
	head := make([]byte, sniffLen)
	read, err := io.ReadFull(content, head)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, err
	}
	if read == 0 {
		return nil, apperr.ValidationError("Validation failed", apperr.FieldError{Field: "file", Message: "File is empty"})
	}
	head = head[:read]

	detected := mimetype.Detect(head)
	var mime, extension string
	for candidate, candidateExtension := range allowedTypes {
		if detected.Is(candidate) {
			mime, extension = candidate, candidateExtension
			break
		}
	}
	if mime == "" {
		return nil, apperr.UnsupportedMediaType(detected.String())
	}

	// ── 2. Store ──────────────────────────────────────────────────────────
	key := uuid.New() + extension
	limited := io.LimitReader(io.MultiReader(bytes.NewReader(head), content), service.maxBytes+1)

	size, err := service.store.Save(ctx, key, limited)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if size > service.maxBytes {
		if err := service.store.Delete(ctx, key); err != nil {
			service.logger.ErrorContext(ctx, "media_cleanup_failed", slog.String("key", key), slog.Any("error", err))
		}
		return nil, apperr.PayloadTooLarge(service.maxBytes)
	}

	service.logger.InfoContext(ctx, "media_uploaded",
		slog.String("key", key),
		slog.String("mime", mime),
		slog.Int64("size", size),
	)
	return &Upload{Key: key, URL: PublicPrefix + key, MIME: mime, Size: size}, nil
}
