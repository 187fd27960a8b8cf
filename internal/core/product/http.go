// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package product

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/skumaster/internal/platform/ctxutil"
	requestutil "github.com/taibuivan/skumaster/internal/platform/request"
	"github.com/taibuivan/skumaster/internal/platform/respond"
	"github.com/taibuivan/skumaster/pkg/pagination"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// # Handler Implementation

// Handler implements the HTTP layer for products.
type Handler struct {
	service *Service
}

// NewHandler constructs a new product [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] mounted at /products.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list)
	router.Post("/", handler.create)
	router.Get("/export", handler.export)
	router.Get("/{id}", handler.get)
	router.Put("/{id}", handler.update)
	router.Delete("/{id}", handler.delete)

	return router
}

/*
GET /api/v1/products.

Request:
  - Query: q (free text), page, limit

Response:
  - 200: []Details: Paginated products, newest first
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	paginationParams := pagination.FromRequest(request)
	filter := Filter{Query: requestutil.Query(request, "q")}

	products, total, err := handler.service.List(request.Context(), filter, paginationParams.Limit, paginationParams.Offset())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Paginated(writer, products, pagination.NewMeta(paginationParams.Page, paginationParams.Limit, total))
}

// GET /api/v1/products/{id}.
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	product, err := handler.service.Get(request.Context(), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, product)
}

/*
POST /api/v1/products.

Request:
  - Body: Input

Response:
  - 201: Details: Stored product with derived codes
  - 400: Validation failure
  - 422: One or more referenced attributes do not exist
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input Input
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	product, err := handler.service.Create(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, product)
}

// PUT /api/v1/products/{id}.
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	var input Input
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	product, err := handler.service.Update(request.Context(), requestutil.ID(request, "id"), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, product)
}

// DELETE /api/v1/products/{id}.
func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	if err := handler.service.Delete(request.Context(), requestutil.ID(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.NoContent(writer)
}

/*
GET /api/v1/products/export.

Response:
  - 200: XLSX workbook attachment
*/
func (handler *Handler) export(writer http.ResponseWriter, request *http.Request) {
	file, filename, err := handler.service.Export(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	defer file.Close()

	respond.Attachment(writer, xlsxContentType, filename)

	// Headers are already sent once the body starts, so failures can only be logged
	if err := file.Write(writer); err != nil {
		ctxutil.GetLogger(request.Context()).ErrorContext(request.Context(), "product_export_write_failed", "error", err)
	}
}
