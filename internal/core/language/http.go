// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package language

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/ptd0409/portfolio/internal/platform/request"
	"github.com/ptd0409/portfolio/internal/platform/respond"
)

// Handler serves the read-only language endpoints.
type Handler struct {
	registry *Registry
}

func NewHandler(registry *Registry) *Handler {
	return &Handler{registry: registry}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listLanguages)
	router.Get("/{code}", handler.getLanguage)
}

func (handler *Handler) listLanguages(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, handler.registry.List())
}

func (handler *Handler) getLanguage(writer http.ResponseWriter, request *http.Request) {
	lang, err := handler.registry.Get(requestutil.Param(request, "code"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, lang)
}
