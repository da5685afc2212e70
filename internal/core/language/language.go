// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package language owns the set of content languages the catalog accepts.

The set comes from configuration rather than a table: every translation row
and every "lang" query parameter is canonicalized against it, so "EN",
"en-US" and "en" all address the same translations.
*/
package language

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"

	"github.com/ptd0409/portfolio/internal/platform/apperr"
)

// Language describes one supported content language.
type Language struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	NativeName string `json:"native_name"`
	IsDefault  bool   `json:"is_default"`
}

// Registry is the immutable set of supported languages. It is safe for concurrent use.
type Registry struct {
	languages   []Language
	codes       map[string]struct{}
	defaultCode string
}

/*
NewRegistry builds the registry from configured language codes.

Parameters:
  - supported: []string (BCP 47 codes, e.g. "en", "vi")
  - defaultCode: string (must canonicalize to one of supported)

Returns:
  - *Registry: The registry in configuration order
  - error: Unparsable codes or a default outside the set
*/
func NewRegistry(supported []string, defaultCode string) (*Registry, error) {
	registry := &Registry{codes: make(map[string]struct{}, len(supported))}

	for _, raw := range supported {
		tag, err := language.Parse(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("language: invalid code %q: %w", raw, err)
		}

		code := tag.String()
		if _, dup := registry.codes[code]; dup {
			continue
		}
		registry.codes[code] = struct{}{}
		registry.languages = append(registry.languages, Language{
			Code:       code,
			Name:       display.English.Tags().Name(tag),
			NativeName: display.Self.Name(tag),
		})
	}

	if len(registry.languages) == 0 {
		return nil, fmt.Errorf("language: no supported languages configured")
	}

	canonical, ok := registry.Canonical(defaultCode)
	if !ok {
		return nil, fmt.Errorf("language: default %q is not supported", defaultCode)
	}
	registry.defaultCode = canonical

	for index := range registry.languages {
		registry.languages[index].IsDefault = registry.languages[index].Code == canonical
	}

	return registry, nil
}

// Canonical maps raw onto a supported code. A region-qualified code falls
// back to its base language ("en-US" → "en") when only the base is supported.
func (registry *Registry) Canonical(raw string) (string, bool) {
	tag, err := language.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", false
	}

	if _, ok := registry.codes[tag.String()]; ok {
		return tag.String(), true
	}

	base, _ := tag.Base()
	if _, ok := registry.codes[base.String()]; ok {
		return base.String(), true
	}

	return "", false
}

// Resolve canonicalizes a request language. Blank input selects the default;
// anything unsupported is a VALIDATION_ERROR on field.
func (registry *Registry) Resolve(field, raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return registry.defaultCode, nil
	}

	code, ok := registry.Canonical(raw)
	if !ok {
		return "", apperr.ValidationError("Validation failed", apperr.FieldError{
			Field:   field,
			Message: fmt.Sprintf("Unsupported language %q (supported: %s)", raw, strings.Join(registry.Codes(), ", ")),
		})
	}
	return code, nil
}

// Default returns the canonical default language code.
func (registry *Registry) Default() string {
	return registry.defaultCode
}

// Codes returns the supported codes in configuration order.
func (registry *Registry) Codes() []string {
	codes := make([]string, 0, len(registry.languages))
	for _, lang := range registry.languages {
		codes = append(codes, lang.Code)
	}
	return codes
}

// List returns a copy of the supported languages in configuration order.
func (registry *Registry) List() []Language {
	return append([]Language(nil), registry.languages...)
}

// Get returns the language for code, or NOT_FOUND.
func (registry *Registry) Get(code string) (Language, error) {
	canonical, ok := registry.Canonical(code)
	if ok {
		for _, lang := range registry.languages {
			if lang.Code == canonical {
				return lang, nil
			}
		}
	}
	return Language{}, apperr.NotFound("Language")
}
