// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package tag

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ptd0409/portfolio/internal/platform/middleware"
	"github.com/ptd0409/portfolio/internal/platform/sec"
)

func newTestRouter(t *testing.T) (chi.Router, *fakeRepository, string) {
	t.Helper()

	tokens, err := sec.NewTokenService("test-secret", "portfolio-test")
	require.NoError(t, err)
	token, err := tokens.GenerateAccessToken("admin", sec.RoleAdmin, time.Minute)
	require.NoError(t, err)

	repository := newFakeRepository()
	router := chi.NewRouter()
	router.Use(middleware.Authenticate(tokens))
	router.Route("/tags", NewHandler(newTestService(t, repository)).RegisterRoutes)
	return router, repository, token
}

func serve(router http.Handler, method, target, token, body string) *httptest.ResponseRecorder {
	request := httptest.NewRequest(method, target, strings.NewReader(body))
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

func TestHandler_Reads(t *testing.T) {
	router, repository, _ := newTestRouter(t)

	recorder := serve(router, http.MethodGet, "/tags?lang=en&page=2&page_size=5&q=go", "", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, 2, repository.listFilter.Page)
	assert.Equal(t, 5, repository.listFilter.PageSize)
	assert.Equal(t, "go", repository.listFilter.Query)
	assert.Contains(t, recorder.Body.String(), `"total_items":1`)

	assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/tags/go", "", "").Code)
	assert.Equal(t, http.StatusNotFound, serve(router, http.MethodGet, "/tags/rust", "", "").Code)
}

func TestHandler_Mutations(t *testing.T) {
	router, _, token := newTestRouter(t)

	assert.Equal(t, http.StatusUnauthorized, serve(router, http.MethodPost, "/tags", "", `{"slug":"rust"}`).Code)

	recorder := serve(router, http.MethodPost, "/tags", token, `{"slug":"rust","translations":[{"lang":"en","name":"Rust"}]}`)
	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"slug":"rust"`)

	assert.Equal(t, http.StatusConflict, serve(router, http.MethodPost, "/tags", token, `{"slug":"go"}`).Code)
	assert.Equal(t, http.StatusOK, serve(router, http.MethodPatch, "/tags/go", token, `{"translations":[{"lang":"vi","name":"Go"}]}`).Code)
	assert.Equal(t, http.StatusNoContent, serve(router, http.MethodDelete, "/tags/go", token, "").Code)
	assert.Equal(t, http.StatusNotFound, serve(router, http.MethodDelete, "/tags/go", token, "").Code)
}
