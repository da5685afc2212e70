// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package item

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ptd0409/portfolio/internal/core/catalog"
	"github.com/ptd0409/portfolio/internal/core/language"
	"github.com/ptd0409/portfolio/internal/platform/apperr"
	"github.com/ptd0409/portfolio/internal/testutil"
	"github.com/ptd0409/portfolio/pkg/pagination"
)

// fakeRepository records what the service hands to storage.
type fakeRepository struct {
	listFilter   catalog.ItemFilter
	findArgs     []any
	created      *catalog.CreateItemInput
	updatedSlug  string
	updated      *catalog.UpdateItemInput
	deletedSlug  string
	existing     map[string]bool
	err          error
	createCalled int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{existing: map[string]bool{"portfolio": true}}
}

func (repository *fakeRepository) List(ctx context.Context, filter catalog.ItemFilter) (*pagination.Page[catalog.ItemSummary], error) {
	repository.listFilter = filter
	if repository.err != nil {
		return nil, repository.err
	}
	meta := pagination.NewMeta(filter.Page, filter.PageSize, 1)
	return &pagination.Page[catalog.ItemSummary]{
		Items: []catalog.ItemSummary{{ID: 1, Slug: "portfolio", Title: "Portfolio", Tags: []catalog.TagRef{}}},
		Meta:  meta,
	}, nil
}

func (repository *fakeRepository) FindBySlug(ctx context.Context, slug, lang string, status *string) (*catalog.ItemDetail, error) {
	repository.findArgs = []any{slug, lang, status}
	if !repository.existing[slug] {
		return nil, apperr.NotFound("Item")
	}
	return &catalog.ItemDetail{ItemSummary: catalog.ItemSummary{ID: 1, Slug: slug}}, nil
}

func (repository *fakeRepository) Create(ctx context.Context, input catalog.CreateItemInput) (*catalog.ItemRead, error) {
	repository.createCalled++
	repository.created = &input
	if repository.err != nil {
		return nil, repository.err
	}
	if repository.existing[input.Slug] {
		return nil, catalog.SlugConflict()
	}
	repository.existing[input.Slug] = true

	read := &catalog.ItemRead{Item: catalog.Item{ID: 7, Slug: input.Slug, Status: catalog.DefaultStatus}}
	for index, translation := range input.Translations {
		read.Translations = append(read.Translations, catalog.ItemTranslation{
			ID: int64(index + 1), Lang: translation.Lang, Title: translation.Title,
		})
	}
	for _, id := range input.TagIDs {
		read.Tags = append(read.Tags, catalog.TagRef{ID: id})
	}
	return read, nil
}

func (repository *fakeRepository) Update(ctx context.Context, slug string, input catalog.UpdateItemInput) (*catalog.ItemRead, error) {
	repository.updatedSlug = slug
	repository.updated = &input
	if !repository.existing[slug] {
		return nil, apperr.NotFound("Item")
	}
	return &catalog.ItemRead{Item: catalog.Item{ID: 1, Slug: slug}}, nil
}

func (repository *fakeRepository) Delete(ctx context.Context, slug string) (bool, error) {
	repository.deletedSlug = slug
	existed := repository.existing[slug]
	delete(repository.existing, slug)
	return existed, nil
}

func newTestService(t *testing.T, repository Repository) *Service {
	t.Helper()
	registry, err := language.NewRegistry([]string{"en", "vi"}, "vi")
	require.NoError(t, err)
	return NewService(repository, registry, testutil.Logger())
}
