// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandler_Login(t *testing.T) {
	throttle := newMemoryThrottle(5)
	service, _ := newTestService(t, throttle)

	router := chi.NewRouter()
	router.Route("/auth", NewHandler(service).RegisterRoutes)

	post := func(body, forwardedFor string) *httptest.ResponseRecorder {
		request := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
		request.Header.Set("X-Forwarded-For", forwardedFor)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)
		return recorder
	}

	recorder := post(`{"username":"admin","password":"correct horse"}`, "203.0.113.7")
	require.Equal(t, http.StatusOK, recorder.Code)

	var body struct {
		Data Token `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Data.AccessToken)
	assert.Equal(t, "bearer", body.Data.TokenType)

	assert.Equal(t, http.StatusUnauthorized, post(`{"username":"admin","password":"nope"}`, "203.0.113.8, 10.0.0.1").Code)
	assert.Equal(t, 1, throttle.failures["203.0.113.8"], "failures are keyed by the forwarded client address")

	assert.Equal(t, http.StatusBadRequest, post(`not json`, "203.0.113.7").Code)
}
