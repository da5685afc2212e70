// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package item

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/ptd0409/portfolio/internal/core/catalog"
	"github.com/ptd0409/portfolio/internal/platform/apperr"
	"github.com/ptd0409/portfolio/internal/platform/database/schema"
	"github.com/ptd0409/portfolio/internal/platform/dberr"
	"github.com/ptd0409/portfolio/internal/platform/postgres"
	"github.com/ptd0409/portfolio/pkg/slice"
)

/*
Create inserts an item with its translations and tag associations.

Description: Everything runs in one transaction. The slug and the referenced
tags are checked before the first insert; a unique violation raised by a
concurrent writer is mapped back onto the same CONFLICT.

Parameters:
  - ctx: context.Context
  - input: catalog.CreateItemInput (validated, duplicate-free languages)

Returns:
  - *catalog.ItemRead: Tags in caller order, translations in insertion order
  - error: CONFLICT on slug reuse, VALIDATION_ERROR on unknown tags
*/
func (repository *PostgresRepository) Create(ctx context.Context, input catalog.CreateItemInput) (*catalog.ItemRead, error) {
	tagIDs := slice.Unique(input.TagIDs)

	status := catalog.DefaultStatus
	if input.Status != nil && *input.Status != "" {
		status = *input.Status
	}

	var itemID int64
	err := postgres.InTx(ctx, repository.pool, func(tx pgx.Tx) error {

		// 1. Pre-checks (no writes yet)
		if err := ensureSlugAvailable(ctx, tx, input.Slug, 0); err != nil {
			return err
		}
		if err := ensureTagsExist(ctx, tx, tagIDs); err != nil {
			return err
		}

		// 2. Item row
		query := fmt.Sprintf(`
			INSERT INTO %s (%s, %s, %s, %s, %s, %s)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING %s`,
			schema.CatalogItem.Table,
			schema.CatalogItem.Slug, schema.CatalogItem.Status, schema.CatalogItem.CoverImageURL,
			schema.CatalogItem.RepoURL, schema.CatalogItem.DemoURL, schema.CatalogItem.PublishedAt,
			schema.CatalogItem.ID,
		)
		err := tx.QueryRow(ctx, query,
			input.Slug, status, input.CoverImageURL, input.RepoURL, input.DemoURL, input.PublishedAt,
		).Scan(&itemID)
		if err != nil {
			return fmt.Errorf("insert item: %w", err)
		}

		// 3. Translations, then associations
		if err := writeTranslations(ctx, tx, itemID, input.Translations, false); err != nil {
			return err
		}
		return replaceTags(ctx, tx, itemID, tagIDs, false)
	})
	if err != nil {
		return nil, catalog.WriteError(err, "create_item")
	}

	return repository.read(ctx, itemID, tagIDs)
}

/*
Update applies a partial update to the item identified by slug.

Description: Scalar fields change only when supplied. Translations are
upserted per language and unmentioned languages stay as they are. A non-nil
TagIDs replaces the association set entirely: existing rows are deleted and
the new set inserted, so an empty slice removes every tag. All validation
happens before the first write.

Returns:
  - *catalog.ItemRead: Tags in payload order when TagIDs was supplied, otherwise by id
  - error: NOT_FOUND, CONFLICT or VALIDATION_ERROR; nothing is written on failure
*/
func (repository *PostgresRepository) Update(ctx context.Context, slug string, input catalog.UpdateItemInput) (*catalog.ItemRead, error) {
	tagIDs := slice.Unique(input.TagIDs)

	var itemID int64
	err := postgres.InTx(ctx, repository.pool, func(tx pgx.Tx) error {

		// 1. Locate
		query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1",
			schema.CatalogItem.ID, schema.CatalogItem.Table, schema.CatalogItem.Slug)
		if err := tx.QueryRow(ctx, query, slug).Scan(&itemID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperr.NotFound("Item")
			}
			return fmt.Errorf("find item: %w", err)
		}

		// 2. Pre-checks
		if input.Slug != nil && *input.Slug != slug {
			if err := ensureSlugAvailable(ctx, tx, *input.Slug, itemID); err != nil {
				return err
			}
		}
		if tagIDs != nil {
			if err := ensureTagsExist(ctx, tx, tagIDs); err != nil {
				return err
			}
		}

		// 3. Writes
		if err := updateItemRow(ctx, tx, itemID, input); err != nil {
			return err
		}
		if len(input.Translations) > 0 {
			if err := writeTranslations(ctx, tx, itemID, input.Translations, true); err != nil {
				return err
			}
		}
		if tagIDs != nil {
			return replaceTags(ctx, tx, itemID, tagIDs, true)
		}
		return nil
	})
	if err != nil {
		return nil, catalog.WriteError(err, "update_item")
	}

	return repository.read(ctx, itemID, tagIDs)
}

/*
Delete removes an item, its associations and its translations in one transaction.

Returns:
  - bool: false when no item has the slug
  - error: Storage failures
*/
func (repository *PostgresRepository) Delete(ctx context.Context, slug string) (bool, error) {
	existed := false

	err := postgres.InTx(ctx, repository.pool, func(tx pgx.Tx) error {
		var itemID int64
		query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1",
			schema.CatalogItem.ID, schema.CatalogItem.Table, schema.CatalogItem.Slug)
		if err := tx.QueryRow(ctx, query, slug).Scan(&itemID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil
			}
			return fmt.Errorf("find item: %w", err)
		}

		// Children first so no association or translation outlives its item.
		statements := []string{
			fmt.Sprintf("DELETE FROM %s WHERE %s = $1", schema.CatalogItemTag.Table, schema.CatalogItemTag.ItemID),
			fmt.Sprintf("DELETE FROM %s WHERE %s = $1", schema.CatalogItemTranslation.Table, schema.CatalogItemTranslation.ItemID),
			fmt.Sprintf("DELETE FROM %s WHERE %s = $1", schema.CatalogItem.Table, schema.CatalogItem.ID),
		}
		for _, statement := range statements {
			if _, err := tx.Exec(ctx, statement, itemID); err != nil {
				return fmt.Errorf("delete item: %w", err)
			}
		}

		existed = true
		return nil
	})
	if err != nil {
		return false, dberr.Wrap(err, "delete_item")
	}

	return existed, nil
}

// # Transaction Helpers

// ensureSlugAvailable fails with CONFLICT when another item (id != excludeID) owns slug.
func ensureSlugAvailable(ctx context.Context, tx pgx.Tx, slug string, excludeID int64) error {
	query := fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1 AND %s <> $2)",
		schema.CatalogItem.Table, schema.CatalogItem.Slug, schema.CatalogItem.ID)

	var taken bool
	if err := tx.QueryRow(ctx, query, slug, excludeID).Scan(&taken); err != nil {
		return fmt.Errorf("check slug: %w", err)
	}
	if taken {
		return catalog.SlugConflict()
	}
	return nil
}

// ensureTagsExist compares the number of matching tag rows with the
// (deduplicated) ids supplied.
func ensureTagsExist(ctx context.Context, tx pgx.Tx, tagIDs []int64) error {
	if len(tagIDs) == 0 {
		return nil
	}

	query := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s = ANY($1)", schema.CatalogTag.Table, schema.CatalogTag.ID)

	var matched int
	if err := tx.QueryRow(ctx, query, tagIDs).Scan(&matched); err != nil {
		return fmt.Errorf("check tags: %w", err)
	}
	if matched != len(tagIDs) {
		return catalog.UnknownTags()
	}
	return nil
}

// updateItemRow writes the supplied scalar fields and always bumps updated_at.
func updateItemRow(ctx context.Context, tx pgx.Tx, itemID int64, input catalog.UpdateItemInput) error {
	var queryBuilder strings.Builder
	var args []any
	argID := 1

	queryBuilder.WriteString(fmt.Sprintf("UPDATE %s SET %s = NOW()", schema.CatalogItem.Table, schema.CatalogItem.UpdatedAt))

	set := func(column string, value any) {
		queryBuilder.WriteString(fmt.Sprintf(", %s = $%d", column, argID))
		args = append(args, value)
		argID++
	}

	if input.Slug != nil {
		set(schema.CatalogItem.Slug, *input.Slug)
	}
	if input.Status != nil {
		set(schema.CatalogItem.Status, *input.Status)
	}
	// Blank links were normalized to "" by the service and clear the column.
	if input.CoverImageURL != nil {
		set(schema.CatalogItem.CoverImageURL, nullIfEmpty(*input.CoverImageURL))
	}
	if input.RepoURL != nil {
		set(schema.CatalogItem.RepoURL, nullIfEmpty(*input.RepoURL))
	}
	if input.DemoURL != nil {
		set(schema.CatalogItem.DemoURL, nullIfEmpty(*input.DemoURL))
	}
	if input.PublishedAt != nil {
		set(schema.CatalogItem.PublishedAt, *input.PublishedAt)
	}

	queryBuilder.WriteString(fmt.Sprintf(" WHERE %s = $%d", schema.CatalogItem.ID, argID))
	args = append(args, itemID)

	if _, err := tx.Exec(ctx, queryBuilder.String(), args...); err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	return nil
}

/*
writeTranslations queues one statement per language on a single batch.

Description: With upsert, an existing (item, lang) row is updated in place
and keeps its id; otherwise a plain INSERT lets a duplicate surface as a
unique violation.
*/
func writeTranslations(ctx context.Context, tx pgx.Tx, itemID int64, translations []catalog.TranslationInput, upsert bool) error {
	query := fmt.Sprintf("INSERT INTO %s (%s, %s, %s, %s, %s) VALUES ($1, $2, $3, $4, $5)",
		schema.CatalogItemTranslation.Table,
		schema.CatalogItemTranslation.ItemID, schema.CatalogItemTranslation.Lang, schema.CatalogItemTranslation.Title,
		schema.CatalogItemTranslation.Summary, schema.CatalogItemTranslation.ContentMarkdown,
	)
	if upsert {
		query += fmt.Sprintf(" ON CONFLICT (%s, %s) DO UPDATE SET %s = EXCLUDED.%s, %s = EXCLUDED.%s, %s = EXCLUDED.%s",
			schema.CatalogItemTranslation.ItemID, schema.CatalogItemTranslation.Lang,
			schema.CatalogItemTranslation.Title, schema.CatalogItemTranslation.Title,
			schema.CatalogItemTranslation.Summary, schema.CatalogItemTranslation.Summary,
			schema.CatalogItemTranslation.ContentMarkdown, schema.CatalogItemTranslation.ContentMarkdown,
		)
	}

	batch := &pgx.Batch{}
	for _, translation := range translations {
		batch.Queue(query, itemID, translation.Lang, translation.Title, translation.Summary, translation.ContentMarkdown)
	}

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("write translations: %w", err)
	}
	return nil
}

// replaceTags clears (optionally) and re-inserts the item's associations.
func replaceTags(ctx context.Context, tx pgx.Tx, itemID int64, tagIDs []int64, clear bool) error {
	if clear {
		query := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", schema.CatalogItemTag.Table, schema.CatalogItemTag.ItemID)
		if _, err := tx.Exec(ctx, query, itemID); err != nil {
			return fmt.Errorf("clear item tags: %w", err)
		}
	}

	if len(tagIDs) == 0 {
		return nil
	}

	query := fmt.Sprintf("INSERT INTO %s (%s, %s) VALUES ($1, $2)",
		schema.CatalogItemTag.Table, schema.CatalogItemTag.ItemID, schema.CatalogItemTag.TagID)

	batch := &pgx.Batch{}
	for _, tagID := range tagIDs {
		batch.Queue(query, itemID, tagID)
	}

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("insert item tags: %w", err)
	}
	return nil
}

// # Read-back

/*
read loads the administrative view of an item in one batch round-trip.

Parameters:
  - itemID: int64
  - tagOrder: []int64 (when non-nil, tags follow this order; otherwise tag id order)
*/
func (repository *PostgresRepository) read(ctx context.Context, itemID int64, tagOrder []int64) (*catalog.ItemRead, error) {
	batch := &pgx.Batch{}
	batch.Queue(fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1",
		strings.Join(schema.CatalogItem.Columns(), ", "), schema.CatalogItem.Table, schema.CatalogItem.ID), itemID)
	batch.Queue(fmt.Sprintf("SELECT %s, %s, %s, %s, %s FROM %s WHERE %s = $1 ORDER BY %s",
		schema.CatalogItemTranslation.ID, schema.CatalogItemTranslation.Lang, schema.CatalogItemTranslation.Title,
		schema.CatalogItemTranslation.Summary, schema.CatalogItemTranslation.ContentMarkdown,
		schema.CatalogItemTranslation.Table, schema.CatalogItemTranslation.ItemID, schema.CatalogItemTranslation.ID), itemID)
	batch.Queue(fmt.Sprintf("SELECT t.%s, t.%s FROM %s t JOIN %s it ON it.%s = t.%s WHERE it.%s = $1 ORDER BY t.%s",
		schema.CatalogTag.ID, schema.CatalogTag.Slug,
		schema.CatalogTag.Table, schema.CatalogItemTag.Table,
		schema.CatalogItemTag.TagID, schema.CatalogTag.ID,
		schema.CatalogItemTag.ItemID, schema.CatalogTag.ID), itemID)

	results := repository.pool.SendBatch(ctx, batch)
	defer results.Close()

	read := &catalog.ItemRead{}
	err := results.QueryRow().Scan(
		&read.ID, &read.Slug, &read.Status, &read.CoverImageURL, &read.RepoURL, &read.DemoURL,
		&read.PublishedAt, &read.CreatedAt, &read.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "read_item")
	}

	translationRows, err := results.Query()
	if err != nil {
		return nil, dberr.Wrap(err, "read_item_translations")
	}
	read.Translations, err = pgx.CollectRows(translationRows, func(row pgx.CollectableRow) (catalog.ItemTranslation, error) {
		var translation catalog.ItemTranslation
		err := row.Scan(&translation.ID, &translation.Lang, &translation.Title, &translation.Summary, &translation.ContentMarkdown)
		return translation, err
	})
	if err != nil {
		return nil, dberr.Wrap(err, "scan_item_translation")
	}

	tagRows, err := results.Query()
	if err != nil {
		return nil, dberr.Wrap(err, "read_item_tags")
	}
	read.Tags, err = pgx.CollectRows(tagRows, func(row pgx.CollectableRow) (catalog.TagRef, error) {
		var id int64
		var slug string
		err := row.Scan(&id, &slug)
		return catalog.ResolveTag(id, slug, nil), err
	})
	if err != nil {
		return nil, dberr.Wrap(err, "scan_item_tag")
	}

	sortTags(read.Tags, tagOrder)
	return read, nil
}

// sortTags orders tags by their position in order; a nil order keeps them as is.
func sortTags(tags []catalog.TagRef, order []int64) {
	if order == nil {
		return
	}

	position := make(map[int64]int, len(order))
	for index, id := range order {
		position[id] = index
	}

	slices.SortStableFunc(tags, func(a, b catalog.TagRef) int {
		return position[a.ID] - position[b.ID]
	})
}

func nullIfEmpty(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
