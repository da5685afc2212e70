// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package item

import (
	"fmt"
	"strings"

	"github.com/ptd0409/portfolio/internal/core/catalog"
	"github.com/ptd0409/portfolio/internal/platform/database/schema"
)

// Table aliases shared by every item query.
const (
	aliasItem           = "i"
	aliasTranslation    = "tr"
	aliasItemTag        = "it"
	aliasTag            = "t"
	aliasTagTranslation = "ttr"
)

/*
listPlan is the SQL for one paginated listing.

Description: The FROM/WHERE fragment is built once and shared by the count and
id phases, so both always see the same filter set. $1 is always the
requested language.
*/
type listPlan struct {
	filter catalog.ItemFilter
	from   string
	args   []any
	nextID int
}

// planItemList normalizes filter and builds the shared filtered FROM clause.
func planItemList(filter catalog.ItemFilter) listPlan {
	filter = filter.Normalize()

	var queryBuilder strings.Builder
	args := []any{filter.Lang}
	argID := 2

	queryBuilder.WriteString(fmt.Sprintf(`
		FROM %s %s
		JOIN %s %s ON %s.%s = %s.%s AND %s.%s = $1
		WHERE TRUE`,
		schema.CatalogItem.Table, aliasItem,
		schema.CatalogItemTranslation.Table, aliasTranslation,
		aliasTranslation, schema.CatalogItemTranslation.ItemID, aliasItem, schema.CatalogItem.ID,
		aliasTranslation, schema.CatalogItemTranslation.Lang,
	))

	// Status (absent = every status)
	if filter.Status != nil {
		queryBuilder.WriteString(fmt.Sprintf(" AND %s.%s = $%d", aliasItem, schema.CatalogItem.Status, argID))
		args = append(args, *filter.Status)
		argID++
	}

	// Literal substring over slug, translated title and summary
	if filter.Query != "" {
		queryBuilder.WriteString(fmt.Sprintf(
			` AND (%s.%s ILIKE $%d ESCAPE '\' OR %s.%s ILIKE $%d ESCAPE '\' OR %s.%s ILIKE $%d ESCAPE '\')`,
			aliasItem, schema.CatalogItem.Slug, argID,
			aliasTranslation, schema.CatalogItemTranslation.Title, argID,
			aliasTranslation, schema.CatalogItemTranslation.Summary, argID,
		))
		args = append(args, catalog.ContainsPattern(filter.Query))
		argID++
	}

	// Any of the given tags
	if len(filter.TagIDs) > 0 {
		queryBuilder.WriteString(fmt.Sprintf(
			` AND EXISTS (SELECT 1 FROM %s f WHERE f.%s = %s.%s AND f.%s = ANY($%d))`,
			schema.CatalogItemTag.Table, schema.CatalogItemTag.ItemID, aliasItem, schema.CatalogItem.ID,
			schema.CatalogItemTag.TagID, argID,
		))
		args = append(args, filter.TagIDs)
		argID++
	}

	return listPlan{filter: filter, from: queryBuilder.String(), args: args, nextID: argID}
}

// countQuery counts distinct matching items.
func (plan listPlan) countQuery() (string, []any) {
	query := fmt.Sprintf("SELECT COUNT(DISTINCT %s.%s)%s", aliasItem, schema.CatalogItem.ID, plan.from)
	return query, plan.args
}

// idQuery selects one page of item ids. The id tie-break keeps pages stable
// when publish timestamps collide or are NULL.
func (plan listPlan) idQuery() (string, []any) {
	query := fmt.Sprintf(
		"SELECT DISTINCT %s.%s, %s.%s%s ORDER BY %s.%s DESC NULLS LAST, %s.%s DESC LIMIT $%d OFFSET $%d",
		aliasItem, schema.CatalogItem.ID, aliasItem, schema.CatalogItem.PublishedAt,
		plan.from,
		aliasItem, schema.CatalogItem.PublishedAt, aliasItem, schema.CatalogItem.ID,
		plan.nextID, plan.nextID+1,
	)

	args := append(append(make([]any, 0, len(plan.args)+2), plan.args...), plan.filter.PageSize, plan.filter.Params().Offset())
	return query, args
}

/*
detailQuery builds the fan-out join used to hydrate items.

Parameters:
  - predicate: string (extra WHERE condition on alias "i"; may reference $2 onwards)
  - withBody: bool (false selects NULL for content_markdown, as listings do)

Returns:
  - string: SQL whose rows scan into [catalog.ItemRow] via scanItemRow, $1 = lang
*/
func detailQuery(predicate string, withBody bool) string {
	body := "NULL::text"
	if withBody {
		body = fmt.Sprintf("%s.%s", aliasTranslation, schema.CatalogItemTranslation.ContentMarkdown)
	}

	return fmt.Sprintf(`
		SELECT
			%s.%s, %s.%s, %s.%s, %s.%s, %s.%s, %s.%s, %s.%s, %s.%s, %s.%s,
			%s.%s, %s.%s, %s.%s, %s.%s, %s,
			%s.%s, %s.%s, %s.%s
		FROM %s %s
		JOIN %s %s ON %s.%s = %s.%s AND %s.%s = $1
		LEFT JOIN %s %s ON %s.%s = %s.%s
		LEFT JOIN %s %s ON %s.%s = %s.%s
		LEFT JOIN %s %s ON %s.%s = %s.%s AND %s.%s = $1
		WHERE %s
		ORDER BY %s.%s, %s.%s`,
		aliasItem, schema.CatalogItem.ID,
		aliasItem, schema.CatalogItem.Slug,
		aliasItem, schema.CatalogItem.Status,
		aliasItem, schema.CatalogItem.CoverImageURL,
		aliasItem, schema.CatalogItem.RepoURL,
		aliasItem, schema.CatalogItem.DemoURL,
		aliasItem, schema.CatalogItem.PublishedAt,
		aliasItem, schema.CatalogItem.CreatedAt,
		aliasItem, schema.CatalogItem.UpdatedAt,
		aliasTranslation, schema.CatalogItemTranslation.ID,
		aliasTranslation, schema.CatalogItemTranslation.Lang,
		aliasTranslation, schema.CatalogItemTranslation.Title,
		aliasTranslation, schema.CatalogItemTranslation.Summary,
		body,
		aliasTag, schema.CatalogTag.ID,
		aliasTag, schema.CatalogTag.Slug,
		aliasTagTranslation, schema.CatalogTagTranslation.Name,
		schema.CatalogItem.Table, aliasItem,
		schema.CatalogItemTranslation.Table, aliasTranslation,
		aliasTranslation, schema.CatalogItemTranslation.ItemID, aliasItem, schema.CatalogItem.ID,
		aliasTranslation, schema.CatalogItemTranslation.Lang,
		schema.CatalogItemTag.Table, aliasItemTag,
		aliasItemTag, schema.CatalogItemTag.ItemID, aliasItem, schema.CatalogItem.ID,
		schema.CatalogTag.Table, aliasTag,
		aliasTag, schema.CatalogTag.ID, aliasItemTag, schema.CatalogItemTag.TagID,
		schema.CatalogTagTranslation.Table, aliasTagTranslation,
		aliasTagTranslation, schema.CatalogTagTranslation.TagID, aliasTag, schema.CatalogTag.ID,
		aliasTagTranslation, schema.CatalogTagTranslation.Lang,
		predicate,
		aliasItem, schema.CatalogItem.ID, aliasTag, schema.CatalogTag.ID,
	)
}

// idsPredicate restricts detailQuery to the ids bound at $2.
func idsPredicate() string {
	return fmt.Sprintf("%s.%s = ANY($2)", aliasItem, schema.CatalogItem.ID)
}

// slugPredicate restricts detailQuery to the slug bound at $2 and, optionally, the status at $3.
func slugPredicate(withStatus bool) string {
	predicate := fmt.Sprintf("%s.%s = $2", aliasItem, schema.CatalogItem.Slug)
	if withStatus {
		predicate += fmt.Sprintf(" AND %s.%s = $3", aliasItem, schema.CatalogItem.Status)
	}
	return predicate
}

// reorder arranges items to follow ids. Ids without a matching item are skipped.
func reorder(items []catalog.ItemDetail, ids []int64) []catalog.ItemDetail {
	byID := make(map[int64]catalog.ItemDetail, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	ordered := make([]catalog.ItemDetail, 0, len(ids))
	for _, id := range ids {
		if item, ok := byID[id]; ok {
			ordered = append(ordered, item)
		}
	}
	return ordered
}
