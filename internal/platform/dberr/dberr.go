// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
package dberr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ptd0409/portfolio/internal/platform/apperr"
)

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error type.
//
// Application errors raised inside a transaction pass through untouched.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	// 1. Already classified
	if apperr.IsAppError(err) {
		return err
	}

	// 2. Not Found mapping
	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound("Resource")
	}

	// 3. Unknown query errors become Internal Server Errors
	return apperr.Internal(fmt.Errorf("postgres: %s: %w", action, err))
}

// UniqueViolation reports whether err is a Postgres unique-constraint violation (SQLSTATE 23505)
// and returns the name of the violated constraint.
func UniqueViolation(err error) (constraint string, ok bool) {
	return classify(err, pgerrcode.UniqueViolation)
}

// ForeignKeyViolation reports whether err is a Postgres foreign-key violation (SQLSTATE 23503)
// and returns the name of the violated constraint.
func ForeignKeyViolation(err error) (constraint string, ok bool) {
	return classify(err, pgerrcode.ForeignKeyViolation)
}

func classify(err error, code string) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == code {
		return pgErr.ConstraintName, true
	}
	return "", false
}
