// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"strings"

	"github.com/ptd0409/portfolio/pkg/pagination"
	"github.com/ptd0409/portfolio/pkg/slice"
)

// ItemFilter selects one page of items in one language.
//
// A nil Status lists every status. TagIDs match items carrying at least one
// of the given tags.
type ItemFilter struct {
	Lang     string
	Page     int
	PageSize int
	Status   *string
	Query    string
	TagIDs   []int64
}

// Normalize clamps paging, trims the search text and status, and deduplicates
// TagIDs keeping first occurrences. Non-positive ids are dropped.
func (filter ItemFilter) Normalize() ItemFilter {
	params := pagination.Normalize(filter.Page, filter.PageSize)
	filter.Page, filter.PageSize = params.Page, params.PageSize
	filter.Query = strings.TrimSpace(filter.Query)

	if filter.Status != nil {
		status := strings.TrimSpace(*filter.Status)
		if status == "" {
			filter.Status = nil
		} else {
			filter.Status = &status
		}
	}

	filter.TagIDs = slice.Unique(slice.Filter(filter.TagIDs, func(id int64) bool { return id > 0 }))
	return filter
}

// Params returns the normalized page request.
func (filter ItemFilter) Params() pagination.Params {
	return pagination.Params{Page: filter.Page, PageSize: filter.PageSize}
}

// TagFilter selects one page of tags resolved in one language.
type TagFilter struct {
	Lang     string
	Page     int
	PageSize int
	Query    string
}

// Normalize clamps paging and trims the search text.
func (filter TagFilter) Normalize() TagFilter {
	params := pagination.Normalize(filter.Page, filter.PageSize)
	filter.Page, filter.PageSize = params.Page, params.PageSize
	filter.Query = strings.TrimSpace(filter.Query)
	return filter
}

// Params returns the normalized page request.
func (filter TagFilter) Params() pagination.Params {
	return pagination.Params{Page: filter.Page, PageSize: filter.PageSize}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ContainsPattern turns text into an ILIKE pattern matching it as a literal
// substring. Use with ESCAPE '\'.
func ContainsPattern(text string) string {
	return "%" + likeEscaper.Replace(text) + "%"
}
