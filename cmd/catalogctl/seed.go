// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ptd0409/portfolio/internal/core/catalog"
	"github.com/ptd0409/portfolio/internal/core/item"
	"github.com/ptd0409/portfolio/internal/core/language"
	"github.com/ptd0409/portfolio/internal/core/tag"
	"github.com/ptd0409/portfolio/internal/platform/apperr"
	"github.com/ptd0409/portfolio/internal/platform/config"
	"github.com/ptd0409/portfolio/internal/platform/postgres"
	"github.com/ptd0409/portfolio/pkg/pointer"
	"github.com/ptd0409/portfolio/pkg/slug"
)

type tagCatalog interface {
	GetTag(ctx context.Context, slug, lang string) (*catalog.TagRef, error)
	CreateTag(ctx context.Context, input catalog.CreateTagInput) (*catalog.TagRead, error)
}

type itemCatalog interface {
	GetItem(ctx context.Context, slug, lang string, status *string) (*catalog.ItemDetail, error)
	CreateItem(ctx context.Context, input catalog.CreateItemInput) (*catalog.ItemRead, error)
}

func newSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert the demo tag and item unless they already exist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := newLogger()

			cfg, err := config.LoadTool()
			if err != nil {
				return err
			}

			registry, err := language.NewRegistry(cfg.SupportedLanguages, cfg.DefaultLanguage)
			if err != nil {
				return err
			}

			pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, logger)
			if err != nil {
				return err
			}
			defer pool.Close()

			seeder := &seeder{
				tags:  tag.NewService(tag.NewPostgresRepository(pool), registry, logger),
				items: item.NewService(item.NewPostgresRepository(pool), registry, logger),
				lang:  registry.Default(),
				out:   cmd.OutOrStdout(),
			}
			return seeder.run(ctx)
		},
	}
}

// seeder creates the demo catalog. Every step checks for the row first,
// so running it twice changes nothing.
type seeder struct {
	tags  tagCatalog
	items itemCatalog
	lang  string
	out   io.Writer
}

func demoTag() catalog.CreateTagInput {
	return catalog.CreateTagInput{
		Slug: "fastapi",
		Translations: []catalog.TagTranslationInput{
			{Lang: "en", Name: "FastAPI"},
			{Lang: "vi", Name: "FastAPI"},
		},
	}
}

func demoItem(tagID int64) catalog.CreateItemInput {
	summary := "FastAPI + PostgreSQL"
	return catalog.CreateItemInput{
		Slug:    slug.From("Portfolio project"),
		Status:  pointer.To("published"),
		RepoURL: pointer.To("https://github.com/ptd0409"),
		Translations: []catalog.TranslationInput{
			{
				Lang:            "vi",
				Title:           "Dự án portfolio",
				Summary:         &summary,
				ContentMarkdown: pointer.To("# Xin chào\n\nĐây là bài viết Markdown tiếng Việt."),
			},
			{
				Lang:            "en",
				Title:           "Portfolio project",
				Summary:         &summary,
				ContentMarkdown: pointer.To("# Hello\n\nThis is the English Markdown post."),
			},
		},
		TagIDs: []int64{tagID},
	}
}

func (seeder *seeder) run(ctx context.Context) error {
	// ── 1. Tag ────────────────────────────────────────────────────────────
	tagInput := demoTag()
	tagID, err := seeder.ensureTag(ctx, tagInput)
	if err != nil {
		return fmt.Errorf("seed: tag %q: %w", tagInput.Slug, err)
	}

	// ── 2. Item ───────────────────────────────────────────────────────────
	itemInput := demoItem(tagID)
	existing, err := seeder.items.GetItem(ctx, itemInput.Slug, seeder.lang, nil)
	switch {
	case err == nil:
		seeder.report("item", existing.Slug, "exists")
		return nil
	case !apperr.HasCode(err, apperr.CodeNotFound):
		return fmt.Errorf("seed: item %q: %w", itemInput.Slug, err)
	}

	created, err := seeder.items.CreateItem(ctx, itemInput)
	if err != nil {
		return fmt.Errorf("seed: item %q: %w", itemInput.Slug, err)
	}
	seeder.report("item", created.Slug, "created")
	return nil
}

func (seeder *seeder) ensureTag(ctx context.Context, input catalog.CreateTagInput) (int64, error) {
	existing, err := seeder.tags.GetTag(ctx, input.Slug, seeder.lang)
	if err == nil {
		seeder.report("tag", existing.Slug, "exists")
		return existing.ID, nil
	}
	if !apperr.HasCode(err, apperr.CodeNotFound) {
		return 0, err
	}

	created, err := seeder.tags.CreateTag(ctx, input)
	if err != nil {
		return 0, err
	}
	seeder.report("tag", created.Slug, "created")
	return created.ID, nil
}

func (seeder *seeder) report(entity, slug, outcome string) {
	_, _ = fmt.Fprintf(seeder.out, "%-5s %-20s %s\n", entity, slug, outcome)
}
