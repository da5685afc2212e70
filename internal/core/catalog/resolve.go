// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import "strings"

// ResolveItem builds the view of item in lang from its translations keyed by
// language. ok is false when lang has no translation: items are never shown
// through another language's content.
func ResolveItem(item Item, translations map[string]ItemTranslation, lang string) (ItemDetail, bool) {
	translation, found := translations[lang]
	if !found {
		return ItemDetail{}, false
	}

	return ItemDetail{
		ItemSummary: ItemSummary{
			ID:            item.ID,
			Slug:          item.Slug,
			Status:        item.Status,
			CoverImageURL: item.CoverImageURL,
			RepoURL:       item.RepoURL,
			DemoURL:       item.DemoURL,
			PublishedAt:   item.PublishedAt,
			Title:         translation.Title,
			Summary:       translation.Summary,
			Tags:          []TagRef{},
		},
		ContentMarkdown: translation.ContentMarkdown,
	}, true
}

// ResolveTagName returns the translated name, or the slug when the tag has no
// (non-blank) translation in the requested language.
func ResolveTagName(slug string, name *string) string {
	if name == nil || strings.TrimSpace(*name) == "" {
		return slug
	}
	return *name
}

// ResolveTag builds a [TagRef] with the slug fallback applied.
func ResolveTag(id int64, slug string, name *string) TagRef {
	return TagRef{ID: id, Slug: slug, Name: ResolveTagName(slug, name)}
}
