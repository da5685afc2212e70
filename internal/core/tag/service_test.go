// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tag

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ptd0409/portfolio/internal/core/catalog"
	"github.com/ptd0409/portfolio/internal/core/language"
	"github.com/ptd0409/portfolio/internal/platform/apperr"
	"github.com/ptd0409/portfolio/internal/testutil"
	"github.com/ptd0409/portfolio/pkg/pagination"
	"github.com/ptd0409/portfolio/pkg/pointer"
)

type fakeRepository struct {
	listFilter catalog.TagFilter
	findLang   string
	created    *catalog.CreateTagInput
	updated    *catalog.UpdateTagInput
	existing   map[string]bool
	err        error
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{existing: map[string]bool{"go": true}}
}

func (repository *fakeRepository) List(ctx context.Context, filter catalog.TagFilter) (*pagination.Page[catalog.TagRef], error) {
	repository.listFilter = filter
	if repository.err != nil {
		return nil, repository.err
	}
	return &pagination.Page[catalog.TagRef]{
		Items: []catalog.TagRef{{ID: 1, Slug: "go", Name: "go"}},
		Meta:  pagination.NewMeta(filter.Page, filter.PageSize, 1),
	}, nil
}

func (repository *fakeRepository) FindBySlug(ctx context.Context, slug, lang string) (*catalog.TagRef, error) {
	repository.findLang = lang
	if !repository.existing[slug] {
		return nil, apperr.NotFound("Tag")
	}
	return &catalog.TagRef{ID: 1, Slug: slug, Name: slug}, nil
}

func (repository *fakeRepository) Create(ctx context.Context, input catalog.CreateTagInput) (*catalog.TagRead, error) {
	repository.created = &input
	if repository.err != nil {
		return nil, repository.err
	}
	if repository.existing[input.Slug] {
		return nil, catalog.SlugConflict()
	}
	repository.existing[input.Slug] = true
	return &catalog.TagRead{Tag: catalog.Tag{ID: 2, Slug: input.Slug}}, nil
}

func (repository *fakeRepository) Update(ctx context.Context, slug string, input catalog.UpdateTagInput) (*catalog.TagRead, error) {
	repository.updated = &input
	if !repository.existing[slug] {
		return nil, apperr.NotFound("Tag")
	}
	return &catalog.TagRead{Tag: catalog.Tag{ID: 1, Slug: slug}}, nil
}

func (repository *fakeRepository) Delete(ctx context.Context, slug string) (bool, error) {
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

func firstField(t *testing.T, err error) string {
	t.Helper()
	appError := apperr.As(err)
	require.NotNil(t, appError)
	require.Equal(t, apperr.CodeValidation, appError.Code)
	require.NotEmpty(t, appError.Details)
	return appError.Details[0].Field
}

func TestService_ListTags(t *testing.T) {
	repository := newFakeRepository()
	service := newTestService(t, repository)

	_, err := service.ListTags(context.Background(), catalog.TagFilter{Lang: "EN", Page: 0, PageSize: 500, Query: "  go "})
	require.NoError(t, err)

	assert.Equal(t, catalog.TagFilter{Lang: "en", Page: 1, PageSize: 100, Query: "go"}, repository.listFilter)

	_, err = service.ListTags(context.Background(), catalog.TagFilter{})
	require.NoError(t, err)
	assert.Equal(t, "vi", repository.listFilter.Lang)

	_, err = service.ListTags(context.Background(), catalog.TagFilter{Lang: "de"})
	assert.Equal(t, "lang", firstField(t, err))
}

func TestService_GetTag(t *testing.T) {
	repository := newFakeRepository()
	service := newTestService(t, repository)

	tag, err := service.GetTag(context.Background(), " go ", "")
	require.NoError(t, err)
	assert.Equal(t, "go", tag.Slug)
	assert.Equal(t, "vi", repository.findLang)

	_, err = service.GetTag(context.Background(), "  ", "en")
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
}

func TestService_CreateTag(t *testing.T) {
	repository := newFakeRepository()
	service := newTestService(t, repository)

	read, err := service.CreateTag(context.Background(), catalog.CreateTagInput{
		Slug:         "  fastapi ",
		Translations: []catalog.TagTranslationInput{{Lang: " EN ", Name: " FastAPI "}},
	})
	require.NoError(t, err)
	assert.Equal(t, "fastapi", read.Slug)
	assert.Equal(t, []catalog.TagTranslationInput{{Lang: "en", Name: "FastAPI"}}, repository.created.Translations)

	_, err = service.CreateTag(context.Background(), catalog.CreateTagInput{Slug: "go"})
	assert.True(t, apperr.HasCode(err, apperr.CodeConflict))
}

func TestService_CreateTag_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		input catalog.CreateTagInput
		field string
	}{
		{"blank slug", catalog.CreateTagInput{Slug: " "}, "slug"},
		{"blank name", catalog.CreateTagInput{Slug: "x", Translations: []catalog.TagTranslationInput{{Lang: "en", Name: " "}}}, "translations[0].name"},
		{"duplicate language", catalog.CreateTagInput{Slug: "x", Translations: []catalog.TagTranslationInput{
			{Lang: "vi", Name: "A"}, {Lang: "VI", Name: "B"},
		}}, "translations[1].lang"},
		{"unsupported language", catalog.CreateTagInput{Slug: "x", Translations: []catalog.TagTranslationInput{{Lang: "xx", Name: "A"}}}, "translations[0].lang"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repository := newFakeRepository()
			service := newTestService(t, repository)

			_, err := service.CreateTag(context.Background(), tt.input)
			assert.Equal(t, tt.field, firstField(t, err))
			assert.Nil(t, repository.created, "invalid payloads never reach storage")
		})
	}
}

func TestService_CreateTag_StorageError(t *testing.T) {
	repository := newFakeRepository()
	repository.err = apperr.Internal(errors.New("connection reset"))
	service := newTestService(t, repository)

	_, err := service.CreateTag(context.Background(), catalog.CreateTagInput{Slug: "x"})
	assert.True(t, apperr.HasCode(err, apperr.CodeInternal))
}

func TestService_UpdateTag(t *testing.T) {
	repository := newFakeRepository()
	service := newTestService(t, repository)

	_, err := service.UpdateTag(context.Background(), "go", catalog.UpdateTagInput{
		Slug:         pointer.To(" golang "),
		Translations: []catalog.TagTranslationInput{{Lang: "en", Name: "Go"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "golang", *repository.updated.Slug)

	_, err = service.UpdateTag(context.Background(), "go", catalog.UpdateTagInput{Slug: pointer.To("  ")})
	assert.Equal(t, "slug", firstField(t, err))

	_, err = service.UpdateTag(context.Background(), "missing", catalog.UpdateTagInput{})
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
}

func TestService_DeleteTag(t *testing.T) {
	service := newTestService(t, newFakeRepository())

	existed, err := service.DeleteTag(context.Background(), "go")
	require.NoError(t, err)
	assert.True(t, existed)

	existed, err = service.DeleteTag(context.Background(), "go")
	require.NoError(t, err)
	assert.False(t, existed)
}
