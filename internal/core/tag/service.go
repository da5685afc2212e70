// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tag

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
	"github.com/ptd0409/portfolio/pkg/slice"
)

// Languages canonicalizes language codes. [*language.Registry] satisfies it.
type Languages interface {
	Resolve(field, raw string) (string, error)
	Canonical(raw string) (string, bool)
}

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

func (service *Service) ListTags(ctx context.Context, filter catalog.TagFilter) (*pagination.Page[catalog.TagRef], error) {
	lang, err := service.languages.Resolve("lang", filter.Lang)
	if err != nil {
		return nil, err
	}
	filter.Lang = lang

	return service.repo.List(ctx, filter.Normalize())
}

func (service *Service) GetTag(ctx context.Context, slug, lang string) (*catalog.TagRef, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, apperr.NotFound("Tag")
	}

	lang, err := service.languages.Resolve("lang", lang)
	if err != nil {
		return nil, err
	}

	return service.repo.FindBySlug(ctx, slug, lang)
}

/*
CreateTag validates and stores a new tag.

Description: The slug must not be blank, every translation needs a supported,
unique language and a name.
*/
func (service *Service) CreateTag(ctx context.Context, input catalog.CreateTagInput) (*catalog.TagRead, error) {
	input.Slug = strings.TrimSpace(input.Slug)
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

	service.logger.InfoContext(ctx, "tag_created",
		slog.Int64("tag_id", read.ID),
		slog.String("slug", read.Slug),
	)
	return read, nil
}

// UpdateTag renames a tag and merges translations. A supplied slug must not be blank.
func (service *Service) UpdateTag(ctx context.Context, slug string, input catalog.UpdateTagInput) (*catalog.TagRead, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, apperr.NotFound("Tag")
	}

	if input.Slug != nil {
		trimmed := strings.TrimSpace(*input.Slug)
		input.Slug = &trimmed

		if err := (&validate.Validator{}).Required("slug", trimmed).Err(); err != nil {
			metrics.RecordMutation(entity, "update", metrics.ResultOf(err))
			return nil, err
		}
	}
	input.Translations = trimTranslations(input.Translations)

	if err := service.check(input, input.Translations); err != nil {
		metrics.RecordMutation(entity, "update", metrics.ResultOf(err))
		return nil, err
	}

	read, err := service.repo.Update(ctx, slug, input)
	metrics.RecordMutation(entity, "update", metrics.ResultOf(err))
	if err != nil {
		return nil, err
	}

	service.logger.InfoContext(ctx, "tag_updated",
		slog.Int64("tag_id", read.ID),
		slog.String("slug", read.Slug),
	)
	return read, nil
}

// DeleteTag removes the tag and reports whether it existed.
func (service *Service) DeleteTag(ctx context.Context, slug string) (bool, error) {
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
		service.logger.InfoContext(ctx, "tag_deleted", slog.String("slug", slug))
	}
	return existed, nil
}

func (service *Service) check(payload any, translations []catalog.TagTranslationInput) error {
	if err := validate.Struct(payload); err != nil {
		return err
	}

	codes, err := catalog.CanonicalLanguages(service.languages, slice.Map(translations, func(translation catalog.TagTranslationInput) string {
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

func trimTranslations(translations []catalog.TagTranslationInput) []catalog.TagTranslationInput {
	if translations == nil {
		return nil
	}

	result := slices.Clone(translations)
	for index := range result {
		result[index].Lang = strings.TrimSpace(result[index].Lang)
		result[index].Name = strings.TrimSpace(result[index].Name)
	}
	return result
}
