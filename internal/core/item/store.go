// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package item

import (
	"context"

	"github.com/ptd0409/portfolio/internal/core/catalog"
	"github.com/ptd0409/portfolio/pkg/pagination"
)

// Repository defines the persistence contract for catalog items.
//
// Inputs reach the repository already validated and canonicalized by [Service];
// the repository still owns every check that needs the database (slug
// uniqueness, tag existence) and runs them inside the write transaction.
type Repository interface {
	// List returns one page of items resolved in filter.Lang.
	List(ctx context.Context, filter catalog.ItemFilter) (*pagination.Page[catalog.ItemSummary], error)

	// FindBySlug returns the item resolved in lang. A nil status matches any status.
	FindBySlug(ctx context.Context, slug, lang string, status *string) (*catalog.ItemDetail, error)

	// Create inserts the item, its translations and its tag associations.
	Create(ctx context.Context, input catalog.CreateItemInput) (*catalog.ItemRead, error)

	// Update applies a partial update to the item identified by slug.
	Update(ctx context.Context, slug string, input catalog.UpdateItemInput) (*catalog.ItemRead, error)

	// Delete removes the item with its translations and associations.
	// It reports whether the item existed.
	Delete(ctx context.Context, slug string) (bool, error)
}
