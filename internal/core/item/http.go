// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package item

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ptd0409/portfolio/internal/core/catalog"
	"github.com/ptd0409/portfolio/internal/platform/apperr"
	"github.com/ptd0409/portfolio/internal/platform/middleware"
	requestutil "github.com/ptd0409/portfolio/internal/platform/request"
	"github.com/ptd0409/portfolio/internal/platform/respond"
	"github.com/ptd0409/portfolio/pkg/pagination"
	"github.com/ptd0409/portfolio/pkg/query"
)

// Handler exposes items over HTTP. Reads are public; writes require an admin token.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (handler *Handler) RegisterRoutes(router chi.Router) {
	router.Get("/", handler.listItems)
	router.Get("/{slug}", handler.getItem)

	router.Group(func(admin chi.Router) {
		admin.Use(middleware.RequireAdmin)
		admin.Post("/", handler.createItem)
		admin.Patch("/{slug}", handler.updateItem)
		admin.Delete("/{slug}", handler.deleteItem)
	})
}

// listItems handles GET /items?lang&page&page_size&status&q&tag_ids.
func (handler *Handler) listItems(writer http.ResponseWriter, request *http.Request) {
	params := pagination.FromRequest(request)

	filter := catalog.ItemFilter{
		Lang:     requestutil.Query(request, "lang"),
		Page:     params.Page,
		PageSize: params.PageSize,
		Status:   requestutil.OptionalQuery(request, "status"),
		Query:    requestutil.Query(request, "q"),
		TagIDs:   query.IDs(request.URL.Query()["tag_ids"]),
	}

	page, err := handler.service.ListItems(request.Context(), filter)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, page)
}

// getItem handles GET /items/{slug}?lang&status.
func (handler *Handler) getItem(writer http.ResponseWriter, request *http.Request) {
	item, err := handler.service.GetItem(request.Context(),
		requestutil.Param(request, "slug"),
		requestutil.Query(request, "lang"),
		requestutil.OptionalQuery(request, "status"),
	)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, item)
}

func (handler *Handler) createItem(writer http.ResponseWriter, request *http.Request) {
	var input catalog.CreateItemInput
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	item, err := handler.service.CreateItem(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, item)
}

func (handler *Handler) updateItem(writer http.ResponseWriter, request *http.Request) {
	var input catalog.UpdateItemInput
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	item, err := handler.service.UpdateItem(request.Context(), requestutil.Param(request, "slug"), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, item)
}

func (handler *Handler) deleteItem(writer http.ResponseWriter, request *http.Request) {
	existed, err := handler.service.DeleteItem(request.Context(), requestutil.Param(request, "slug"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	if !existed {
		respond.Error(writer, request, apperr.NotFound("Item"))
		return
	}
	respond.NoContent(writer)
}
