// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package language

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ptd0409/portfolio/internal/platform/apperr"
)

func newRegistry(t *testing.T) *Registry {
	t.Helper()
	registry, err := NewRegistry([]string{"en", "VI", "en"}, "vi")
	require.NoError(t, err)
	return registry
}

func TestNewRegistry(t *testing.T) {
	registry := newRegistry(t)

	assert.Equal(t, []string{"en", "vi"}, registry.Codes())
	assert.Equal(t, "vi", registry.Default())

	languages := registry.List()
	require.Len(t, languages, 2)
	assert.Equal(t, "English", languages[0].Name)
	assert.Equal(t, "Vietnamese", languages[1].Name)
	assert.NotEmpty(t, languages[1].NativeName)
	assert.True(t, languages[1].IsDefault)
	assert.False(t, languages[0].IsDefault)
}

func TestNewRegistry_Errors(t *testing.T) {
	_, err := NewRegistry([]string{"en"}, "vi")
	assert.Error(t, err)

	_, err = NewRegistry([]string{"not a language!"}, "en")
	assert.Error(t, err)

	_, err = NewRegistry(nil, "en")
	assert.Error(t, err)
}

func TestCanonical(t *testing.T) {
	registry := newRegistry(t)

	tests := []struct {
		raw  string
		want string
		ok   bool
	}{
		{"en", "en", true},
		{" EN ", "en", true},
		{"en-US", "en", true},
		{"vi-VN", "vi", true},
		{"fr", "", false},
		{"", "", false},
		{"%%", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := registry.Canonical(tt.raw)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve(t *testing.T) {
	registry := newRegistry(t)

	code, err := registry.Resolve("lang", "")
	require.NoError(t, err)
	assert.Equal(t, "vi", code)

	code, err = registry.Resolve("lang", "EN")
	require.NoError(t, err)
	assert.Equal(t, "en", code)

	_, err = registry.Resolve("lang", "de")
	require.Error(t, err)
	appError := apperr.As(err)
	require.NotNil(t, appError)
	assert.Equal(t, apperr.CodeValidation, appError.Code)
	assert.Equal(t, "lang", appError.Details[0].Field)
}

func TestHandler(t *testing.T) {
	router := chi.NewRouter()
	router.Route("/languages", NewHandler(newRegistry(t)).RegisterRoutes)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/languages", nil))
	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Data []Language `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Len(t, body.Data, 2)

	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/languages/de", nil))
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
