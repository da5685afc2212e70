// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

/*
Aggregator folds a fan-out join stream into one parent per id.

Description: Rows are grouped by parent id in first-seen order. The parent is
built from the first row of its group only; a builder returning false excludes
that parent for the remainder of the stream. Children are appended in
first-occurrence order and deduplicated through a per-parent set, so the whole
fold is O(rows).

Aggregator is not safe for concurrent use.
*/
type Aggregator[P, C any] struct {
	order    []int64
	groups   map[int64]*Group[P, C]
	seen     map[int64]map[int64]struct{}
	excluded map[int64]struct{}
}

// Group is one aggregated parent with its deduplicated children.
type Group[P, C any] struct {
	Parent   P
	Children []C
}

// NewAggregator creates an empty aggregator.
func NewAggregator[P, C any]() *Aggregator[P, C] {
	return &Aggregator[P, C]{
		groups:   make(map[int64]*Group[P, C]),
		seen:     make(map[int64]map[int64]struct{}),
		excluded: make(map[int64]struct{}),
	}
}

/*
Add folds one row into the aggregate.

Parameters:
  - parentID: int64
  - build: func() (P, bool) (called once per parent, false excludes it)
  - childID: *int64 (nil when the row carries no child, e.g. an outer join miss)
  - child: func() C (called only for children not seen yet under parentID)
*/
func (aggregator *Aggregator[P, C]) Add(parentID int64, build func() (P, bool), childID *int64, child func() C) {
	if _, skip := aggregator.excluded[parentID]; skip {
		return
	}

	group, found := aggregator.groups[parentID]
	if !found {
		parent, ok := build()
		if !ok {
			aggregator.excluded[parentID] = struct{}{}
			return
		}
		group = &Group[P, C]{Parent: parent, Children: []C{}}
		aggregator.groups[parentID] = group
		aggregator.seen[parentID] = make(map[int64]struct{})
		aggregator.order = append(aggregator.order, parentID)
	}

	if childID == nil {
		return
	}

	seen := aggregator.seen[parentID]
	if _, dup := seen[*childID]; dup {
		return
	}
	seen[*childID] = struct{}{}
	group.Children = append(group.Children, child())
}

// Groups returns the aggregated parents in first-seen order.
func (aggregator *Aggregator[P, C]) Groups() []Group[P, C] {
	result := make([]Group[P, C], 0, len(aggregator.order))
	for _, id := range aggregator.order {
		result = append(result, *aggregator.groups[id])
	}
	return result
}

// # Item Rows

// ItemRow is one row of the item × translation × tag × tag-translation join.
// The tag columns are nil when the item has no tags.
type ItemRow struct {
	Item        Item
	Translation ItemTranslation
	TagID       *int64
	TagSlug     *string
	TagName     *string
}

// AggregateItems collapses joined rows into one resolved item per id, in
// first-seen order. Items lacking a translation in lang are dropped; tag order
// follows the row stream.
func AggregateItems(rows []ItemRow, lang string) []ItemDetail {
	aggregator := NewAggregator[ItemDetail, TagRef]()

	for _, row := range rows {
		aggregator.Add(row.Item.ID,
			func() (ItemDetail, bool) {
				translations := map[string]ItemTranslation{row.Translation.Lang: row.Translation}
				return ResolveItem(row.Item, translations, lang)
			},
			row.TagID,
			func() TagRef {
				var slug string
				if row.TagSlug != nil {
					slug = *row.TagSlug
				}
				return ResolveTag(*row.TagID, slug, row.TagName)
			},
		)
	}

	groups := aggregator.Groups()
	items := make([]ItemDetail, 0, len(groups))
	for _, group := range groups {
		item := group.Parent
		item.Tags = group.Children
		items = append(items, item)
	}
	return items
}
