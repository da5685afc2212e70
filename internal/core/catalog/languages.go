// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"fmt"

	"github.com/ptd0409/portfolio/internal/platform/validate"
)

// Canonicalizer maps a raw language code onto its supported canonical form.
type Canonicalizer interface {
	Canonical(raw string) (string, bool)
}

/*
CanonicalLanguages canonicalizes the languages of a translation list.

Description: Every code must be supported and appear once after
canonicalization ("EN" and "en" collide). Failures are reported per entry as
"translations[i].lang".

Returns:
  - []string: Canonical codes, index-aligned with codes
  - error: VALIDATION_ERROR listing every offending entry
*/
func CanonicalLanguages(languages Canonicalizer, codes []string) ([]string, error) {
	checker := &validate.Validator{}
	canonical := make([]string, len(codes))
	seen := make(map[string]struct{}, len(codes))

	for index, raw := range codes {
		field := fmt.Sprintf("translations[%d].lang", index)

		code, ok := languages.Canonical(raw)
		if !ok {
			checker.Custom(field, true, fmt.Sprintf("Unsupported language %q", raw))
			continue
		}
		canonical[index] = code

		_, duplicate := seen[code]
		checker.Custom(field, duplicate, fmt.Sprintf("Duplicate translation language %q", code))
		seen[code] = struct{}{}
	}

	if err := checker.Err(); err != nil {
		return nil, err
	}
	return canonical, nil
}
