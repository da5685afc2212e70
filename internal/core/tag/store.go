// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tag

import (
	"context"

	"github.com/ptd0409/portfolio/internal/core/catalog"
	"github.com/ptd0409/portfolio/pkg/pagination"
)

// Repository defines the persistence contract for tags.
type Repository interface {
	// List returns one page of tags ordered by id, named in filter.Lang.
	List(ctx context.Context, filter catalog.TagFilter) (*pagination.Page[catalog.TagRef], error)

	// FindBySlug returns the tag named in lang.
	FindBySlug(ctx context.Context, slug, lang string) (*catalog.TagRef, error)

	Create(ctx context.Context, input catalog.CreateTagInput) (*catalog.TagRead, error)

	// Update renames the tag and upserts the supplied translations.
	Update(ctx context.Context, slug string, input catalog.UpdateTagInput) (*catalog.TagRead, error)

	// Delete removes the tag, its translations and every item association.
	// It reports whether the tag existed.
	Delete(ctx context.Context, slug string) (bool, error)
}
