// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package item

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/ptd0409/portfolio/internal/core/catalog"
	"github.com/ptd0409/portfolio/internal/platform/apperr"
	"github.com/ptd0409/portfolio/internal/platform/metrics"
	"github.com/ptd0409/portfolio/internal/platform/validate"
	"github.com/ptd0409/portfolio/pkg/pagination"
	"github.com/ptd0409/portfolio/pkg/pointer"
	"github.com/ptd0409/portfolio/pkg/slice"
)

// Languages canonicalizes language codes. [*language.Registry] satisfies it.
type Languages interface {
	Resolve(field, raw string) (string, error)
	Canonical(raw string) (string, bool)
}

// Service applies input normalization and domain rules before delegating to
// the [Repository]. Every rule that can be checked without the database runs
// here, ahead of any transaction.
type Service struct {
	repo      Repository
	languages Languages
	logger    *slog.Logger
}

func NewService(repo Repository, languages Languages, logger *slog.Logger) *Service {
	return &Service{
		repo:      repo,
		languages: languages,
		logger:    logger,
	}
}

// ListItems resolves the language (blank = default), normalizes paging and
// returns one page of items.
func (service *Service) ListItems(ctx context.Context, filter catalog.ItemFilter) (*pagination.Page[catalog.ItemSummary], error) {
	lang, err := service.languages.Resolve("lang", filter.Lang)
	if err != nil {
		return nil, err
	}
	filter.Lang = lang

	return service.repo.List(ctx, filter.Normalize())
}

// GetItem returns one item in lang. A nil status matches every status.
func (service *Service) GetItem(ctx context.Context, slug, lang string, status *string) (*catalog.ItemDetail, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, apperr.NotFound("Item")
	}

	lang, err := service.languages.Resolve("lang", lang)
	if err != nil {
		return nil, err
	}

	return service.repo.FindBySlug(ctx, slug, lang, pointer.TrimmedOrNil(status))
}

/*
CreateItem validates and stores a new item.

Description: Rejects an empty slug, an empty translation list, unsupported or
repeated languages and blank titles before the repository opens its
transaction.

Returns:
  - *catalog.ItemRead: The stored item
  - error: VALIDATION_ERROR, CONFLICT, or storage failures
*/
func (service *Service) CreateItem(ctx context.Context, input catalog.CreateItemInput) (*catalog.ItemRead, error) {
	input.Slug = strings.TrimSpace(input.Slug)
	input.Status = pointer.TrimmedOrNil(input.Status)
	input.CoverImageURL = pointer.TrimmedOrNil(input.CoverImageURL)
	input.RepoURL = pointer.TrimmedOrNil(input.RepoURL)
	input.DemoURL = pointer.TrimmedOrNil(input.DemoURL)
	input.Translations = trimTranslations(input.Translations)

	if err := service.check(input, input.Translations); err != nil {
		metrics.RecordMutation(entity, "create", metrics.ResultOf(err))
		return nil, err
	}

	read, err := service.repo.Create(ctx, input)
	metrics.RecordMutation(entity, "create", metrics.ResultOf(err))
	if err != nil {
		return nil, err
	}

	service.logger.InfoContext(ctx, "item_created",
		slog.Int64("item_id", read.ID),
		slog.String("slug", read.Slug),
		slog.Int("translations", len(read.Translations)),
		slog.Int("tags", len(read.Tags)),
	)
	return read, nil
}

/*
UpdateItem validates and applies a partial update.

Description: A supplied slug or status must not be blank. Supplied links are
trimmed; a blank link clears the stored value.
*/
func (service *Service) UpdateItem(ctx context.Context, slug string, input catalog.UpdateItemInput) (*catalog.ItemRead, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, apperr.NotFound("Item")
	}

	input.Slug = trimmed(input.Slug)
	input.Status = trimmed(input.Status)
	input.CoverImageURL = trimmed(input.CoverImageURL)
	input.RepoURL = trimmed(input.RepoURL)
	input.DemoURL = trimmed(input.DemoURL)
	input.Translations = trimTranslations(input.Translations)

	checker := &validate.Validator{}
	if input.Slug != nil {
		checker.Required("slug", *input.Slug)
	}
	if input.Status != nil {
		checker.Required("status", *input.Status)
	}
	if err := checker.Err(); err != nil {
		metrics.RecordMutation(entity, "update", metrics.ResultOf(err))
		return nil, err
	}

	if err := service.check(input, input.Translations); err != nil {
		metrics.RecordMutation(entity, "update", metrics.ResultOf(err))
		return nil, err
	}

	read, err := service.repo.Update(ctx, slug, input)
	metrics.RecordMutation(entity, "update", metrics.ResultOf(err))
	if err != nil {
		return nil, err
	}

	service.logger.InfoContext(ctx, "item_updated",
		slog.Int64("item_id", read.ID),
		slog.String("slug", read.Slug),
		slog.Bool("tags_replaced", input.TagIDs != nil),
	)
	return read, nil
}

// DeleteItem removes the item and reports whether it existed.
func (service *Service) DeleteItem(ctx context.Context, slug string) (bool, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return false, nil
	}

	existed, err := service.repo.Delete(ctx, slug)
	metrics.RecordMutation(entity, "delete", metrics.ResultOf(err))
	if err != nil {
		return false, err
	}

	if existed {
		service.logger.InfoContext(ctx, "item_deleted", slog.String("slug", slug))
	}
	return existed, nil
}

// check runs the struct tags on payload, then canonicalizes translation
// languages in place.
func (service *Service) check(payload any, translations []catalog.TranslationInput) error {
	if err := validate.Struct(payload); err != nil {
		return err
	}

	codes, err := catalog.CanonicalLanguages(service.languages, slice.Map(translations, func(translation catalog.TranslationInput) string {
		return translation.Lang
	}))
	if err != nil {
		return err
	}
	for index := range translations {
		translations[index].Lang = codes[index]
	}
	return nil
}

// trimTranslations returns a trimmed copy so the caller's payload is never mutated.
func trimTranslations(translations []catalog.TranslationInput) []catalog.TranslationInput {
	if translations == nil {
		return nil
	}

	result := slices.Clone(translations)
	for index := range result {
		result[index].Lang = strings.TrimSpace(result[index].Lang)
		result[index].Title = strings.TrimSpace(result[index].Title)
	}
	return result
}

// trimmed trims a supplied value but keeps it present even when blank.
func trimmed(value *string) *string {
	if value == nil {
		return nil
	}
	return pointer.To(strings.TrimSpace(*value))
}
