// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tag

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ptd0409/portfolio/internal/core/catalog"
	"github.com/ptd0409/portfolio/internal/platform/apperr"
	"github.com/ptd0409/portfolio/internal/platform/database/schema"
	"github.com/ptd0409/portfolio/internal/platform/dberr"
	"github.com/ptd0409/portfolio/internal/platform/postgres"
	"github.com/ptd0409/portfolio/pkg/pagination"
)

type PostgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// tagFrom is the tag table left-joined with its translation in $1.
func tagFrom() string {
	return fmt.Sprintf("FROM %s t LEFT JOIN %s ttr ON ttr.%s = t.%s AND ttr.%s = $1",
		schema.CatalogTag.Table, schema.CatalogTagTranslation.Table,
		schema.CatalogTagTranslation.TagID, schema.CatalogTag.ID, schema.CatalogTagTranslation.Lang)
}

/*
List returns one page of tags named in filter.Lang.

Description: Tags without a translation in the language are still listed and
fall back to their slug. The optional search matches the slug or the
translated name, case-insensitively and literally.

Returns:
  - *pagination.Page[catalog.TagRef]: Tags in id order
  - error: Storage failures
*/
func (repository *PostgresRepository) List(ctx context.Context, filter catalog.TagFilter) (*pagination.Page[catalog.TagRef], error) {
	filter = filter.Normalize()

	var whereBuilder strings.Builder
	args := []any{filter.Lang}
	argID := 2

	if filter.Query != "" {
		whereBuilder.WriteString(fmt.Sprintf(` WHERE (t.%s ILIKE $%d ESCAPE '\' OR ttr.%s ILIKE $%d ESCAPE '\')`,
			schema.CatalogTag.Slug, argID, schema.CatalogTagTranslation.Name, argID))
		args = append(args, catalog.ContainsPattern(filter.Query))
		argID++
	}

	// 1. Count
	var total int
	countQuery := fmt.Sprintf("SELECT COUNT(DISTINCT t.%s) %s%s", schema.CatalogTag.ID, tagFrom(), whereBuilder.String())
	if err := repository.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, dberr.Wrap(err, "count_tags")
	}

	meta := pagination.NewMeta(filter.Page, filter.PageSize, total)
	if total == 0 || meta.OutOfRange() {
		return pagination.Empty[catalog.TagRef](meta), nil
	}

	// 2. Page
	params := filter.Params()
	pageQuery := fmt.Sprintf("SELECT t.%s, t.%s, ttr.%s %s%s ORDER BY t.%s ASC LIMIT $%d OFFSET $%d",
		schema.CatalogTag.ID, schema.CatalogTag.Slug, schema.CatalogTagTranslation.Name,
		tagFrom(), whereBuilder.String(), schema.CatalogTag.ID, argID, argID+1)
	args = append(args, params.PageSize, params.Offset())

	rows, err := repository.pool.Query(ctx, pageQuery, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_tags")
	}

	tags, err := pgx.CollectRows(rows, scanTagRef)
	if err != nil {
		return nil, dberr.Wrap(err, "scan_tag")
	}

	return &pagination.Page[catalog.TagRef]{Items: tags, Meta: meta}, nil
}

// FindBySlug returns the tag named in lang, or NOT_FOUND.
func (repository *PostgresRepository) FindBySlug(ctx context.Context, slug, lang string) (*catalog.TagRef, error) {
	query := fmt.Sprintf("SELECT t.%s, t.%s, ttr.%s %s WHERE t.%s = $2",
		schema.CatalogTag.ID, schema.CatalogTag.Slug, schema.CatalogTagTranslation.Name,
		tagFrom(), schema.CatalogTag.Slug)

	rows, err := repository.pool.Query(ctx, query, lang, slug)
	if err != nil {
		return nil, dberr.Wrap(err, "find_tag_by_slug")
	}

	tag, err := pgx.CollectExactlyOneRow(rows, scanTagRef)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Tag")
		}
		return nil, dberr.Wrap(err, "find_tag_by_slug")
	}
	return &tag, nil
}

func scanTagRef(row pgx.CollectableRow) (catalog.TagRef, error) {
	var id int64
	var slug string
	var name *string
	err := row.Scan(&id, &slug, &name)
	return catalog.ResolveTag(id, slug, name), err
}

/*
Create inserts a tag with its translations in one transaction.

Returns:
  - *catalog.TagRead: The stored tag with translations in insertion order
  - error: CONFLICT when the slug is taken
*/
func (repository *PostgresRepository) Create(ctx context.Context, input catalog.CreateTagInput) (*catalog.TagRead, error) {
	var tagID int64
	err := postgres.InTx(ctx, repository.pool, func(tx pgx.Tx) error {
		if err := ensureSlugAvailable(ctx, tx, input.Slug, 0); err != nil {
			return err
		}

		query := fmt.Sprintf("INSERT INTO %s (%s) VALUES ($1) RETURNING %s",
			schema.CatalogTag.Table, schema.CatalogTag.Slug, schema.CatalogTag.ID)
		if err := tx.QueryRow(ctx, query, input.Slug).Scan(&tagID); err != nil {
			return fmt.Errorf("insert tag: %w", err)
		}

		return writeTranslations(ctx, tx, tagID, input.Translations, false)
	})
	if err != nil {
		return nil, catalog.WriteError(err, "create_tag")
	}

	return repository.read(ctx, tagID)
}

/*
Update renames a tag and upserts translations per language.

Description: Languages not mentioned keep their translation. updated_at is
always bumped.

Returns:
  - *catalog.TagRead: The stored tag
  - error: NOT_FOUND or CONFLICT; nothing is written on failure
*/
func (repository *PostgresRepository) Update(ctx context.Context, slug string, input catalog.UpdateTagInput) (*catalog.TagRead, error) {
	var tagID int64
	err := postgres.InTx(ctx, repository.pool, func(tx pgx.Tx) error {
		var err error
		if tagID, err = locate(ctx, tx, slug); err != nil {
			return err
		}

		if input.Slug != nil && *input.Slug != slug {
			if err := ensureSlugAvailable(ctx, tx, *input.Slug, tagID); err != nil {
				return err
			}
		}

		args := []any{tagID}
		query := fmt.Sprintf("UPDATE %s SET %s = NOW()", schema.CatalogTag.Table, schema.CatalogTag.UpdatedAt)
		if input.Slug != nil {
			query += fmt.Sprintf(", %s = $2", schema.CatalogTag.Slug)
			args = append(args, *input.Slug)
		}
		query += fmt.Sprintf(" WHERE %s = $1", schema.CatalogTag.ID)

		if _, err := tx.Exec(ctx, query, args...); err != nil {
			return fmt.Errorf("update tag: %w", err)
		}

		if len(input.Translations) == 0 {
			return nil
		}
		return writeTranslations(ctx, tx, tagID, input.Translations, true)
	})
	if err != nil {
		return nil, catalog.WriteError(err, "update_tag")
	}

	return repository.read(ctx, tagID)
}

/*
Delete removes the tag after detaching it from every item.

Returns:
  - bool: false when no tag has the slug
  - error: Storage failures
*/
func (repository *PostgresRepository) Delete(ctx context.Context, slug string) (bool, error) {
	existed := false

	err := postgres.InTx(ctx, repository.pool, func(tx pgx.Tx) error {
		tagID, err := locate(ctx, tx, slug)
		if err != nil {
			if apperr.HasCode(err, apperr.CodeNotFound) {
				return nil
			}
			return err
		}

		statements := []string{
			fmt.Sprintf("DELETE FROM %s WHERE %s = $1", schema.CatalogItemTag.Table, schema.CatalogItemTag.TagID),
			fmt.Sprintf("DELETE FROM %s WHERE %s = $1", schema.CatalogTagTranslation.Table, schema.CatalogTagTranslation.TagID),
			fmt.Sprintf("DELETE FROM %s WHERE %s = $1", schema.CatalogTag.Table, schema.CatalogTag.ID),
		}
		for _, statement := range statements {
			if _, err := tx.Exec(ctx, statement, tagID); err != nil {
				return fmt.Errorf("delete tag: %w", err)
			}
		}

		existed = true
		return nil
	})
	if err != nil {
		return false, dberr.Wrap(err, "delete_tag")
	}

	return existed, nil
}

// # Transaction Helpers

func locate(ctx context.Context, tx pgx.Tx, slug string) (int64, error) {
	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1",
		schema.CatalogTag.ID, schema.CatalogTag.Table, schema.CatalogTag.Slug)

	var tagID int64
	if err := tx.QueryRow(ctx, query, slug).Scan(&tagID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperr.NotFound("Tag")
		}
		return 0, fmt.Errorf("find tag: %w", err)
	}
	return tagID, nil
}

func ensureSlugAvailable(ctx context.Context, tx pgx.Tx, slug string, excludeID int64) error {
	query := fmt.Sprintf("SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1 AND %s <> $2)",
		schema.CatalogTag.Table, schema.CatalogTag.Slug, schema.CatalogTag.ID)

	var taken bool
	if err := tx.QueryRow(ctx, query, slug, excludeID).Scan(&taken); err != nil {
		return fmt.Errorf("check tag slug: %w", err)
	}
	if taken {
		return catalog.SlugConflict()
	}
	return nil
}

// writeTranslations queues one insert (or upsert) per language on a single batch.
func writeTranslations(ctx context.Context, tx pgx.Tx, tagID int64, translations []catalog.TagTranslationInput, upsert bool) error {
	if len(translations) == 0 {
		return nil
	}

	query := fmt.Sprintf("INSERT INTO %s (%s, %s, %s) VALUES ($1, $2, $3)",
		schema.CatalogTagTranslation.Table,
		schema.CatalogTagTranslation.TagID, schema.CatalogTagTranslation.Lang, schema.CatalogTagTranslation.Name)
	if upsert {
		query += fmt.Sprintf(" ON CONFLICT (%s, %s) DO UPDATE SET %s = EXCLUDED.%s",
			schema.CatalogTagTranslation.TagID, schema.CatalogTagTranslation.Lang,
			schema.CatalogTagTranslation.Name, schema.CatalogTagTranslation.Name)
	}

	batch := &pgx.Batch{}
	for _, translation := range translations {
		batch.Queue(query, tagID, translation.Lang, translation.Name)
	}

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("write tag translations: %w", err)
	}
	return nil
}

// read loads the administrative view of a tag in one batch round-trip.
func (repository *PostgresRepository) read(ctx context.Context, tagID int64) (*catalog.TagRead, error) {
	batch := &pgx.Batch{}
	batch.Queue(fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1",
		strings.Join(schema.CatalogTag.Columns(), ", "), schema.CatalogTag.Table, schema.CatalogTag.ID), tagID)
	batch.Queue(fmt.Sprintf("SELECT %s, %s, %s FROM %s WHERE %s = $1 ORDER BY %s",
		schema.CatalogTagTranslation.ID, schema.CatalogTagTranslation.Lang, schema.CatalogTagTranslation.Name,
		schema.CatalogTagTranslation.Table, schema.CatalogTagTranslation.TagID, schema.CatalogTagTranslation.ID), tagID)

	results := repository.pool.SendBatch(ctx, batch)
	defer results.Close()

	read := &catalog.TagRead{}
	if err := results.QueryRow().Scan(&read.ID, &read.Slug, &read.CreatedAt, &read.UpdatedAt); err != nil {
		return nil, dberr.Wrap(err, "read_tag")
	}

	rows, err := results.Query()
	if err != nil {
		return nil, dberr.Wrap(err, "read_tag_translations")
	}
	read.Translations, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (catalog.TagTranslation, error) {
		var translation catalog.TagTranslation
		err := row.Scan(&translation.ID, &translation.Lang, &translation.Name)
		return translation, err
	})
	if err != nil {
		return nil, dberr.Wrap(err, "scan_tag_translation")
	}

	return read, nil
}
