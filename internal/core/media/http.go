// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package media

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ptd0409/portfolio/internal/platform/apperr"
	"github.com/ptd0409/portfolio/internal/platform/middleware"
	"github.com/ptd0409/portfolio/internal/platform/respond"
)

// multipartOverhead leaves room for boundaries and part headers on top of the file limit.
const multipartOverhead = 64 << 10

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts POST /upload behind the admin check.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.With(middleware.RequireAdmin).Post("/upload", handler.upload)
}

// upload handles a multipart/form-data request carrying the image in "file".
func (handler *Handler) upload(writer http.ResponseWriter, request *http.Request) {
	request.Body = http.MaxBytesReader(writer, request.Body, handler.service.maxBytes+multipartOverhead)

	reader, err := request.MultipartReader()
	if err != nil {
		respond.Error(writer, request, missingFile())
		return
	}

	for {
		part, err := reader.NextPart()
		if errors.Is(err, io.EOF) {
			respond.Error(writer, request, missingFile())
			return
		}
		if err != nil {
			respond.Error(writer, request, bodyError(err, handler.service.maxBytes))
			return
		}
		if part.FormName() != "file" {
			continue
		}

		upload, err := handler.service.Upload(request.Context(), part)
		_ = part.Close()
		if err != nil {
			respond.Error(writer, request, bodyError(err, handler.service.maxBytes))
			return
		}
		respond.Created(writer, upload)
		return
	}
}

func missingFile() error {
	return apperr.ValidationError("Validation failed", apperr.FieldError{
		Field:   "file",
		Message: "A multipart field named 'file' is required",
	})
}

// bodyError turns a body that outgrew the request limit into PAYLOAD_TOO_LARGE.
func bodyError(err error, maxBytes int64) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return apperr.PayloadTooLarge(maxBytes)
	}
	if apperr.IsAppError(err) {
		return err
	}
	return apperr.ValidationError("Malformed multipart body")
}
