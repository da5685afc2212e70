// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package slug derives ASCII URL slugs from titles in any supported language,
// e.g. "Trang cá nhân Đẹp" → "trang-ca-nhan-dep".
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	// nonAlphanumeric matches any run of characters outside [a-z0-9].
	nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

	// strokes replaces letters that NFD does not decompose into base + mark.
	strokes = strings.NewReplacer("đ", "d", "Đ", "d", "ø", "o", "Ø", "o", "ł", "l", "Ł", "l")
)

// From converts s into a lowercase, hyphen-separated ASCII slug.
//
// Accents are stripped (NFD, then non-spacing marks removed), every other run
// of non-alphanumeric characters becomes a single hyphen, and leading or
// trailing hyphens are trimmed. The result may be empty.
func From(s string) string {
	chain := transform.Chain(norm.NFD, transform.RemoveFunc(isMn), norm.NFC)
	result, _, _ := transform.String(chain, strokes.Replace(s))

	result = strings.ToLower(result)
	result = nonAlphanumeric.ReplaceAllString(result, "-")
	return strings.Trim(result, "-")
}

// isMn reports whether r is a Unicode non-spacing mark (e.g., accents).
func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}
