// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/ptd0409/portfolio/internal/platform/apperr"
)

/*
TestMiddleware_UsesRoutePattern verifies that requests are labelled by pattern, not raw path.
*/
func TestMiddleware_UsesRoutePattern(t *testing.T) {
	router := chi.NewRouter()
	router.Use(Middleware)
	router.Get("/items/{slug}", func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusTeapot)
	})

	before := testutil.ToFloat64(httpRequests.WithLabelValues(http.MethodGet, "/items/{slug}", "418"))

	for _, slug := range []string{"a", "b"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/items/"+slug, nil))
	}

	after := testutil.ToFloat64(httpRequests.WithLabelValues(http.MethodGet, "/items/{slug}", "418"))
	assert.Equal(t, before+2, after)
}

func TestRecordMutation(t *testing.T) {
	counter := catalogMutations.WithLabelValues("item", "create", ResultOK)
	before := testutil.ToFloat64(counter)

	RecordMutation("item", "create", ResultOK)

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestHandler_ExposesCollectors(t *testing.T) {
	RecordMutation("tag", "delete", ResultRejected)

	recorder := httptest.NewRecorder()
	Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "portfolio_catalog_mutations_total")
}

func TestResultOf(t *testing.T) {
	assert.Equal(t, ResultOK, ResultOf(nil))
	assert.Equal(t, ResultRejected, ResultOf(apperr.Conflict("slug already exists")))
	assert.Equal(t, ResultError, ResultOf(apperr.Internal(errors.New("boom"))))
	assert.Equal(t, ResultError, ResultOf(errors.New("boom")))
}
