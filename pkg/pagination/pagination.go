// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pagination provides shared types and helpers for API list endpoints.
//
// # Overview
//
// It standardizes how page-based navigation is requested via query parameters
// and how the resulting metadata is delivered in the API response envelope.
package pagination

import (
	"net/http"

	"github.com/ptd0409/portfolio/pkg/convert"
)

const (
	// DefaultPageSize is the number of items per page if not specified.
	DefaultPageSize = 10
	// MaxPageSize is the upper bound for items per page.
	MaxPageSize = 100
	// DefaultPage is the starting page (1-indexed).
	DefaultPage = 1
)

// Params holds the requested page and page size.
type Params struct {
	Page     int
	PageSize int
}

// Normalize clamps page to at least 1 and page size into [1, MaxPageSize].
func Normalize(page, pageSize int) Params {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 1
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return Params{Page: page, PageSize: pageSize}
}

// Offset returns the SQL OFFSET value derived from [Page] and [PageSize].
func (p Params) Offset() int {
	if p.Page <= 1 {
		return 0
	}
	return (p.Page - 1) * p.PageSize
}

// Meta is the pagination metadata included in API list responses.
//
// TotalPages is 0 exactly when TotalItems is 0.
type Meta struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}

// NewMeta constructs pagination metadata for a response.
//
// It automatically calculates the TotalPages based on the total count and page size.
func NewMeta(page, pageSize, total int) Meta {
	totalPages := 0
	if pageSize > 0 && total > 0 {
		totalPages = (total + pageSize - 1) / pageSize
	}

	return Meta{
		Page:       page,
		PageSize:   pageSize,
		TotalItems: total,
		TotalPages: totalPages,
	}
}

// OutOfRange reports whether the requested page lies past the last page of a non-empty result.
func (m Meta) OutOfRange() bool {
	return m.TotalPages > 0 && m.Page > m.TotalPages
}

// Page is one page of results together with its metadata.
type Page[T any] struct {
	Items []T `json:"items"`
	Meta  Meta `json:"meta"`
}

// Empty returns a page with no items and the given metadata.
func Empty[T any](meta Meta) *Page[T] {
	return &Page[T]{Items: []T{}, Meta: meta}
}

// FromRequest parses "page" and "page_size" query parameters from an HTTP request.
//
// Missing or unparsable values fall back to [DefaultPage] and [DefaultPageSize];
// range clamping is left to [Normalize] so the core sees the caller's intent.
func FromRequest(r *http.Request) Params {
	query := r.URL.Query()
	return Params{
		Page:     convert.ToIntD(query.Get("page"), DefaultPage),
		PageSize: convert.ToIntD(query.Get("page_size"), DefaultPageSize),
	}
}
