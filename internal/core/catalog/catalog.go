// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package catalog defines the localized catalog's entities, read views and mutation
payloads, together with the pure logic shared by the item and tag stores.

# Translation Policy

Items and tags resolve their localized attributes differently:
  - An item is only visible in a language it has a translation for.
  - A tag always renders; a missing translation falls back to its slug.

# Aggregation

Listing queries join items with translations and tags, which fans out into one
row per associated tag. [Aggregator] folds that stream back into one entity per
id without depending on the query layer.
*/
package catalog

import "time"

// DefaultStatus is assigned to items created without an explicit status.
const DefaultStatus = "draft"

// # Entities

// Item is the base row of a catalog entry (a portfolio project).
//
// Status is free-form and opaque to the catalog: "draft" and "published" are
// conventions, no transition rules are enforced.
type Item struct {
	ID            int64      `json:"id"`
	Slug          string     `json:"slug"`
	Status        string     `json:"status"`
	CoverImageURL *string    `json:"cover_image_url"`
	RepoURL       *string    `json:"repo_url"`
	DemoURL       *string    `json:"demo_url"`
	PublishedAt   *time.Time `json:"published_at"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// ItemTranslation is the per-language content of an item. At most one exists per (item, lang).
type ItemTranslation struct {
	ID              int64   `json:"id"`
	Lang            string  `json:"lang"`
	Title           string  `json:"title"`
	Summary         *string `json:"summary"`
	ContentMarkdown *string `json:"content_markdown"`
}

// Tag is a classification label attachable to many items.
type Tag struct {
	ID        int64     `json:"id"`
	Slug      string    `json:"slug"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TagTranslation is the display name of a tag in one language.
type TagTranslation struct {
	ID   int64  `json:"id"`
	Lang string `json:"lang"`
	Name string `json:"name"`
}

// # Read Views

// TagRef is a tag resolved for display: Name is the translated name or the slug.
type TagRef struct {
	ID   int64  `json:"id"`
	Slug string `json:"slug"`
	Name string `json:"name"`
}

// ItemSummary is an item resolved for one language, as returned by listings.
type ItemSummary struct {
	ID            int64      `json:"id"`
	Slug          string     `json:"slug"`
	Status        string     `json:"status"`
	CoverImageURL *string    `json:"cover_image_url"`
	RepoURL       *string    `json:"repo_url"`
	DemoURL       *string    `json:"demo_url"`
	PublishedAt   *time.Time `json:"published_at"`
	Title         string     `json:"title"`
	Summary       *string    `json:"summary"`
	Tags          []TagRef   `json:"tags"`
}

// ItemDetail extends [ItemSummary] with the long-form markdown body.
type ItemDetail struct {
	ItemSummary
	ContentMarkdown *string `json:"content_markdown"`
}

// ItemRead is the administrative view returned by mutations: every
// translation and the raw tag references.
type ItemRead struct {
	Item
	Translations []ItemTranslation `json:"translations"`
	Tags         []TagRef          `json:"tags"`
}

// TagRead is the administrative view of a tag with all of its translations.
type TagRead struct {
	Tag
	Translations []TagTranslation `json:"translations"`
}

// # Mutation Payloads

// TranslationInput is one language of an item create/update payload.
type TranslationInput struct {
	Lang            string  `json:"lang" validate:"required"`
	Title           string  `json:"title" validate:"required,max=300"`
	Summary         *string `json:"summary" validate:"omitempty,max=2000"`
	ContentMarkdown *string `json:"content_markdown"`
}

// CreateItemInput is the payload for creating an item.
type CreateItemInput struct {
	Slug          string             `json:"slug" validate:"required,max=200"`
	Status        *string            `json:"status" validate:"omitempty,max=50"`
	CoverImageURL *string            `json:"cover_image_url" validate:"omitempty,max=2048"`
	RepoURL       *string            `json:"repo_url" validate:"omitempty,max=2048"`
	DemoURL       *string            `json:"demo_url" validate:"omitempty,max=2048"`
	PublishedAt   *time.Time         `json:"published_at"`
	Translations  []TranslationInput `json:"translations" validate:"required,min=1,dive"`
	TagIDs        []int64            `json:"tag_ids" validate:"dive,gt=0"`
}

// UpdateItemInput is a partial update: nil fields are left untouched.
//
// Translations are merged per language. TagIDs, when non-nil, replace the
// whole association set; an empty slice clears it.
type UpdateItemInput struct {
	Slug          *string            `json:"slug" validate:"omitempty,max=200"`
	Status        *string            `json:"status" validate:"omitempty,max=50"`
	CoverImageURL *string            `json:"cover_image_url" validate:"omitempty,max=2048"`
	RepoURL       *string            `json:"repo_url" validate:"omitempty,max=2048"`
	DemoURL       *string            `json:"demo_url" validate:"omitempty,max=2048"`
	PublishedAt   *time.Time         `json:"published_at"`
	Translations  []TranslationInput `json:"translations" validate:"omitempty,dive"`
	TagIDs        []int64            `json:"tag_ids" validate:"omitempty,dive,gt=0"`
}

// TagTranslationInput is one language of a tag create/update payload.
type TagTranslationInput struct {
	Lang string `json:"lang" validate:"required"`
	Name string `json:"name" validate:"required,max=100"`
}

// CreateTagInput is the payload for creating a tag.
type CreateTagInput struct {
	Slug         string                `json:"slug" validate:"required,max=100"`
	Translations []TagTranslationInput `json:"translations" validate:"dive"`
}

// UpdateTagInput is a partial tag update; translations are upserted per language.
type UpdateTagInput struct {
	Slug         *string               `json:"slug" validate:"omitempty,max=100"`
	Translations []TagTranslationInput `json:"translations" validate:"omitempty,dive"`
}
