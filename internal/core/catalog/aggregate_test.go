// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ptd0409/portfolio/pkg/pointer"
)

func row(itemID int64, lang string, tagID int64, tagSlug string, tagName *string) ItemRow {
	result := ItemRow{
		Item:        Item{ID: itemID, Slug: "item", Status: "published"},
		Translation: ItemTranslation{ID: itemID * 10, Lang: lang, Title: "title"},
	}
	if tagID > 0 {
		result.TagID = pointer.To(tagID)
		result.TagSlug = pointer.To(tagSlug)
		result.TagName = tagName
	}
	return result
}

/*
TestAggregateItems_FanOut verifies one entity per id, first-seen order and
first-occurrence tag order with duplicates collapsed.
*/
func TestAggregateItems_FanOut(t *testing.T) {
	rows := []ItemRow{
		row(2, "en", 9, "go", pointer.To("Go")),
		row(2, "en", 3, "sql", nil),
		row(1, "en", 0, "", nil),
		row(2, "en", 9, "go", pointer.To("Go")),
		row(3, "en", 1, "api", pointer.To("API")),
	}

	items := AggregateItems(rows, "en")

	require.Len(t, items, 3)
	assert.Equal(t, []int64{2, 1, 3}, []int64{items[0].ID, items[1].ID, items[2].ID})
	assert.Equal(t, []TagRef{{ID: 9, Slug: "go", Name: "Go"}, {ID: 3, Slug: "sql", Name: "sql"}}, items[0].Tags)
	assert.NotNil(t, items[1].Tags)
	assert.Empty(t, items[1].Tags)
	assert.Equal(t, "API", items[2].Tags[0].Name)
}

func TestAggregateItems_DropsUntranslated(t *testing.T) {
	rows := []ItemRow{
		row(1, "vi", 4, "x", nil),
		row(2, "en", 0, "", nil),
		row(1, "vi", 5, "y", nil),
	}

	items := AggregateItems(rows, "en")

	require.Len(t, items, 1)
	assert.Equal(t, int64(2), items[0].ID)
}

func TestAggregator_BuildsParentOnce(t *testing.T) {
	aggregator := NewAggregator[string, int64]()
	builds := 0
	build := func() (string, bool) {
		builds++
		return "parent", true
	}

	for _, child := range []int64{1, 2, 1, 3} {
		aggregator.Add(7, build, pointer.To(child), func() int64 { return child })
	}

	groups := aggregator.Groups()
	assert.Equal(t, 1, builds)
	require.Len(t, groups, 1)
	assert.Equal(t, []int64{1, 2, 3}, groups[0].Children)
}

func TestAggregator_ExcludedParentStaysExcluded(t *testing.T) {
	aggregator := NewAggregator[string, int64]()
	calls := 0
	build := func() (string, bool) {
		calls++
		return "", false
	}

	aggregator.Add(1, build, nil, nil)
	aggregator.Add(1, build, pointer.To(int64(5)), func() int64 { return 5 })

	assert.Equal(t, 1, calls)
	assert.Empty(t, aggregator.Groups())
}
