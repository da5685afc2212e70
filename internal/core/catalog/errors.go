// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"github.com/ptd0409/portfolio/internal/platform/apperr"
	"github.com/ptd0409/portfolio/internal/platform/database/schema"
	"github.com/ptd0409/portfolio/internal/platform/dberr"
)

// SlugConflict is returned when a slug is already taken by another row.
func SlugConflict() *apperr.AppError {
	return apperr.Conflict("slug already exists")
}

// UnknownTags is returned when a payload references tag ids that do not exist.
func UnknownTags() *apperr.AppError {
	return apperr.ValidationError("some tag_ids do not exist", apperr.FieldError{
		Field:   "tag_ids",
		Message: "Contains ids that do not exist",
	})
}

/*
WriteError classifies a failed catalog write.

Description: Constraint violations that slip past the pre-checks (two
concurrent writers racing on one slug, a tag deleted between validation and
insert) are mapped onto the same errors the pre-checks produce. Everything
else goes through [dberr.Wrap].
*/
func WriteError(err error, action string) error {
	if err == nil {
		return nil
	}

	if constraint, ok := dberr.UniqueViolation(err); ok {
		switch constraint {
		case schema.CatalogItemTranslation.ItemLangKey, schema.CatalogTagTranslation.TagLangKey:
			return apperr.Conflict("translation already exists")
		default:
			return SlugConflict()
		}
	}

	if _, ok := dberr.ForeignKeyViolation(err); ok {
		return UnknownTags()
	}

	return dberr.Wrap(err, action)
}
