// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package item

import (
	"encoding/json"
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

type testServer struct {
	router     chi.Router
	repository *fakeRepository
	adminToken string
	guestToken string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	tokens, err := sec.NewTokenService("test-secret", "portfolio-test")
	require.NoError(t, err)

	adminToken, err := tokens.GenerateAccessToken("admin", sec.RoleAdmin, time.Minute)
	require.NoError(t, err)
	guestToken, err := tokens.GenerateAccessToken("visitor", sec.RoleGuest, time.Minute)
	require.NoError(t, err)

	repository := newFakeRepository()
	router := chi.NewRouter()
	router.Use(middleware.Authenticate(tokens))
	router.Route("/items", NewHandler(newTestService(t, repository)).RegisterRoutes)

	return &testServer{router: router, repository: repository, adminToken: adminToken, guestToken: guestToken}
}

func (server *testServer) do(method, target, token, body string) *httptest.ResponseRecorder {
	request := httptest.NewRequest(method, target, strings.NewReader(body))
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}
	recorder := httptest.NewRecorder()
	server.router.ServeHTTP(recorder, request)
	return recorder
}

func TestHandler_ListItems_ParsesQuery(t *testing.T) {
	server := newTestServer(t)

	recorder := server.do(http.MethodGet, "/items?lang=en&page=2&page_size=abc&status=published&q=go&tag_ids=3,1&tag_ids=3&tag_ids=x", "", "")
	require.Equal(t, http.StatusOK, recorder.Code)

	filter := server.repository.listFilter
	assert.Equal(t, "en", filter.Lang)
	assert.Equal(t, 2, filter.Page)
	assert.Equal(t, 10, filter.PageSize, "unparsable page_size falls back to the default")
	assert.Equal(t, "published", *filter.Status)
	assert.Equal(t, "go", filter.Query)
	assert.Equal(t, []int64{3, 1}, filter.TagIDs)

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			Items []map[string]any `json:"items"`
			Meta  map[string]int   `json:"meta"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Len(t, body.Data.Items, 1)
	assert.Equal(t, 1, body.Data.Meta["total_items"])
}

func TestHandler_ListItems_NoStatusMeansAll(t *testing.T) {
	server := newTestServer(t)

	recorder := server.do(http.MethodGet, "/items", "", "")
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Nil(t, server.repository.listFilter.Status)
	assert.Equal(t, "vi", server.repository.listFilter.Lang)
}

func TestHandler_GetItem(t *testing.T) {
	server := newTestServer(t)

	assert.Equal(t, http.StatusOK, server.do(http.MethodGet, "/items/portfolio?lang=vi", "", "").Code)

	recorder := server.do(http.MethodGet, "/items/missing", "", "")
	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"error_code":"NOT_FOUND"`)

	assert.Equal(t, http.StatusBadRequest, server.do(http.MethodGet, "/items/portfolio?lang=jp", "", "").Code)
}

func TestHandler_Mutations_RequireAdmin(t *testing.T) {
	server := newTestServer(t)
	payload := `{"slug":"x","translations":[{"lang":"en","title":"T"}]}`

	assert.Equal(t, http.StatusUnauthorized, server.do(http.MethodPost, "/items", "", payload).Code)
	assert.Equal(t, http.StatusForbidden, server.do(http.MethodPost, "/items", server.guestToken, payload).Code)
	assert.Equal(t, http.StatusUnauthorized, server.do(http.MethodDelete, "/items/portfolio", "", "").Code)
	assert.Zero(t, server.repository.createCalled)
}

func TestHandler_CreateItem(t *testing.T) {
	server := newTestServer(t)

	recorder := server.do(http.MethodPost, "/items", server.adminToken,
		`{"slug":"x","translations":[{"lang":"en","title":"T"}],"tag_ids":[1,2]}`)
	require.Equal(t, http.StatusCreated, recorder.Code)

	var body struct {
		Data struct {
			Slug string `json:"slug"`
			Tags []struct {
				ID int64 `json:"id"`
			} `json:"tags"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "x", body.Data.Slug)
	require.Len(t, body.Data.Tags, 2)
	assert.Equal(t, int64(1), body.Data.Tags[0].ID)

	recorder = server.do(http.MethodPost, "/items", server.adminToken, `{"slug":"portfolio","translations":[{"lang":"en","title":"T"}]}`)
	assert.Equal(t, http.StatusConflict, recorder.Code)
}

func TestHandler_CreateItem_BadPayload(t *testing.T) {
	server := newTestServer(t)

	assert.Equal(t, http.StatusBadRequest, server.do(http.MethodPost, "/items", server.adminToken, `{"slug":`).Code)
	assert.Equal(t, http.StatusBadRequest, server.do(http.MethodPost, "/items", server.adminToken, `{"slug":"x"} {}`).Code)

	recorder := server.do(http.MethodPost, "/items", server.adminToken,
		`{"slug":"x","translations":[{"lang":"en","title":"A"},{"lang":"en","title":"B"}]}`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "translations[1].lang")
}

func TestHandler_UpdateItem(t *testing.T) {
	server := newTestServer(t)

	recorder := server.do(http.MethodPatch, "/items/portfolio", server.adminToken, `{"tag_ids":[3]}`)
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, []int64{3}, server.repository.updated.TagIDs)
	assert.Nil(t, server.repository.updated.Translations)

	assert.Equal(t, http.StatusNotFound, server.do(http.MethodPatch, "/items/missing", server.adminToken, `{}`).Code)
}

func TestHandler_DeleteItem(t *testing.T) {
	server := newTestServer(t)

	assert.Equal(t, http.StatusNoContent, server.do(http.MethodDelete, "/items/portfolio", server.adminToken, "").Code)
	assert.Equal(t, http.StatusNotFound, server.do(http.MethodDelete, "/items/portfolio", server.adminToken, "").Code)
}
