// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package decoder

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/skumaster/internal/platform/request"
	"github.com/taibuivan/skumaster/internal/platform/respond"
)

// Handler implements the HTTP layer for SKU decoding.
type Handler struct {
	service *Service
}

// NewHandler constructs a new decoder [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] mounted at /sku.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/decode", handler.decode)
	router.Post("/preview", handler.preview)

	return router
}

/*
POST /api/v1/sku/decode.

Request:
  - Body: DecodeRequest {"sku": "...", "mode": "text|segmented|compact|auto"}

Response:
  - 200: skucode.Result
  - 400: Empty SKU, unknown mode, or fewer than twelve components
*/
func (handler *Handler) decode(writer http.ResponseWriter, request *http.Request) {
	var body DecodeRequest
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.Decode(request.Context(), body)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, result)
}

/*
POST /api/v1/sku/preview.

Request:
  - Body: PreviewInput

Response:
  - 200: Preview
  - 422: One or more codes do not exist
*/
func (handler *Handler) preview(writer http.ResponseWriter, request *http.Request) {
	var input PreviewInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	preview, err := handler.service.Preview(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, preview)
}
