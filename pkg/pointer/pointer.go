// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package pointer provides generic helpers for optional values.

Key Functions:
  - To: Creates a pointer from a value literal.
  - TrimmedOrNil: Normalizes optional text so blank means absent.
*/
package pointer

import "strings"

// To returns a pointer to the provided value (e.g. pointer.To("published")).
func To[T any](v T) *T {
	return &v
}

// TrimmedOrNil trims the pointed-to string and returns nil when the result is empty.
func TrimmedOrNil(p *string) *string {
	if p == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*p)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
