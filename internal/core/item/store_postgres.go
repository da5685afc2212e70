// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package item

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ptd0409/portfolio/internal/core/catalog"
	"github.com/ptd0409/portfolio/internal/platform/apperr"
	"github.com/ptd0409/portfolio/internal/platform/dberr"
	"github.com/ptd0409/portfolio/pkg/pagination"
	"github.com/ptd0409/portfolio/pkg/slice"
)

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed item store.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

/*
List returns one page of items resolved in the requested language.

Description: Runs the count, id and detail phases described in the package
documentation. Empty results and pages past the end short-circuit after the
count with accurate metadata.

Parameters:
  - ctx: context.Context
  - filter: catalog.ItemFilter (normalized again here)

Returns:
  - *pagination.Page[catalog.ItemSummary]: Items in (published_at DESC NULLS LAST, id DESC) order
  - error: Storage failures as INTERNAL_ERROR
*/
func (repository *PostgresRepository) List(ctx context.Context, filter catalog.ItemFilter) (*pagination.Page[catalog.ItemSummary], error) {
	plan := planItemList(filter)

	// ── 1. Count ──────────────────────────────────────────────────────────
	var total int
	countQuery, countArgs := plan.countQuery()
	if err := repository.pool.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, dberr.Wrap(err, "count_items")
	}

	meta := pagination.NewMeta(plan.filter.Page, plan.filter.PageSize, total)
	if total == 0 || meta.OutOfRange() {
		return pagination.Empty[catalog.ItemSummary](meta), nil
	}

	// ── 2. Page of ids ────────────────────────────────────────────────────
	ids, err := repository.pageIDs(ctx, plan)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return pagination.Empty[catalog.ItemSummary](meta), nil
	}

	// ── 3. Hydrate, aggregate, restore order ──────────────────────────────
	rows, err := repository.pool.Query(ctx, detailQuery(idsPredicate(), false), plan.filter.Lang, ids)
	if err != nil {
		return nil, dberr.Wrap(err, "list_item_details")
	}

	itemRows, err := collectItemRows(rows)
	if err != nil {
		return nil, dberr.Wrap(err, "scan_item_detail")
	}

	details := reorder(catalog.AggregateItems(itemRows, plan.filter.Lang), ids)
	items := slice.Map(details, func(detail catalog.ItemDetail) catalog.ItemSummary {
		return detail.ItemSummary
	})

	return &pagination.Page[catalog.ItemSummary]{Items: items, Meta: meta}, nil
}

func (repository *PostgresRepository) pageIDs(ctx context.Context, plan listPlan) ([]int64, error) {
	query, args := plan.idQuery()

	rows, err := repository.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_item_ids")
	}
	defer rows.Close()

	ids := make([]int64, 0, plan.filter.PageSize)
	for rows.Next() {
		var id int64
		var publishedAt *time.Time
		if err := rows.Scan(&id, &publishedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_item_id")
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, dberr.Wrap(err, "list_item_ids")
	}

	return ids, nil
}

/*
FindBySlug retrieves one item with its body and tags resolved in lang.

Returns:
  - *catalog.ItemDetail: The resolved item
  - error: apperr.NotFound when the slug is unknown, the status does not match,
    or the item has no translation in lang
*/
func (repository *PostgresRepository) FindBySlug(ctx context.Context, slug, lang string, status *string) (*catalog.ItemDetail, error) {
	args := []any{lang, slug}
	if status != nil {
		args = append(args, *status)
	}

	rows, err := repository.pool.Query(ctx, detailQuery(slugPredicate(status != nil), true), args...)
	if err != nil {
		return nil, dberr.Wrap(err, "find_item_by_slug")
	}

	itemRows, err := collectItemRows(rows)
	if err != nil {
		return nil, dberr.Wrap(err, "scan_item_detail")
	}

	items := catalog.AggregateItems(itemRows, lang)
	if len(items) == 0 {
		return nil, apperr.NotFound("Item")
	}

	return &items[0], nil
}

// collectItemRows scans detailQuery rows and closes them.
func collectItemRows(rows pgx.Rows) ([]catalog.ItemRow, error) {
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (catalog.ItemRow, error) {
		var itemRow catalog.ItemRow
		err := row.Scan(
			&itemRow.Item.ID,
			&itemRow.Item.Slug,
			&itemRow.Item.Status,
			&itemRow.Item.CoverImageURL,
			&itemRow.Item.RepoURL,
			&itemRow.Item.DemoURL,
			&itemRow.Item.PublishedAt,
			&itemRow.Item.CreatedAt,
			&itemRow.Item.UpdatedAt,
			&itemRow.Translation.ID,
			&itemRow.Translation.Lang,
			&itemRow.Translation.Title,
			&itemRow.Translation.Summary,
			&itemRow.Translation.ContentMarkdown,
			&itemRow.TagID,
			&itemRow.TagSlug,
			&itemRow.TagName,
		)
		if err != nil {
			return catalog.ItemRow{}, fmt.Errorf("scan item row: %w", err)
		}
		return itemRow, nil
	})
}
