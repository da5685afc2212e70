// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ptd0409/portfolio/internal/platform/apperr"
	"github.com/ptd0409/portfolio/internal/platform/validate"
)

/*
TestValidator_Required tests the mandatory field validation logic.
*/
func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		value    string
		hasError bool
	}{
		{"valid_string", "slug", "go-cli", false},
		{"empty_string", "slug", "", true},
		{"whitespace_only", "slug", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Required(tt.field, tt.value)

			if tt.hasError {
				err := v.Err()
				require.NotNil(t, err)

				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, "VALIDATION_ERROR", ae.Code)
				assert.Equal(t, tt.field, ae.Details[0].Field)
			} else {
				assert.Nil(t, v.Err())
			}
		})
	}
}

/*
TestValidator_Chain_Failure tests error accumulation in the chain.
*/
func TestValidator_Chain_Failure(t *testing.T) {
	v := &validate.Validator{}

	validate.NotEmpty(v, "translations", []string{})
	err := v.
		Required("slug", "").                         // Fails
		Required("title", " ").                       // Fails
		Custom("translations", true, "Duplicate en"). // Fails
		Err()

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)

	assert.Len(t, ae.Details, 4)
}

type translationPayload struct {
	Language string `json:"lang" validate:"required"`
	Title    string `json:"title" validate:"required,max=200"`
}

type itemPayload struct {
	Slug         string               `json:"slug" validate:"required"`
	RepoURL      *string              `json:"repo_url" validate:"omitempty,url"`
	Translations []translationPayload `json:"translations" validate:"min=1,dive"`
}

/*
TestStruct maps validator/v10 failures to JSON field paths.
*/
func TestStruct(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		payload := itemPayload{
			Slug:         "x",
			Translations: []translationPayload{{Language: "en", Title: "T"}},
		}
		assert.NoError(t, validate.Struct(payload))
	})

	t.Run("invalid", func(t *testing.T) {
		badURL := "not a url"
		payload := itemPayload{
			RepoURL:      &badURL,
			Translations: []translationPayload{{Language: "en"}},
		}

		err := validate.Struct(payload)
		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, apperr.CodeValidation, ae.Code)

		fields := make([]string, 0, len(ae.Details))
		for _, detail := range ae.Details {
			fields = append(fields, detail.Field)
		}
		assert.ElementsMatch(t, []string{"slug", "repo_url", "translations[0].title"}, fields)
	})

	t.Run("empty_translations", func(t *testing.T) {
		err := validate.Struct(itemPayload{Slug: "x"})
		ae := apperr.As(err)
		require.NotNil(t, ae)
		require.Len(t, ae.Details, 1)
		assert.Equal(t, "translations", ae.Details[0].Field)
	})
}
