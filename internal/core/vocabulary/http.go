/*
Package vocabulary provides the HTTP interface for the eleven vocabularies.

Every vocabulary is served under its own collection path
("/seasons", "/print-types", ...) with the same five endpoints, so the
catalogue editor can treat them uniformly.
*/
package vocabulary

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/skumaster/internal/platform/request"
	"github.com/taibuivan/skumaster/internal/platform/respond"
)

// Handler implements the HTTP layer for vocabulary rows.
type Handler struct {
	service *Service
}

// NewHandler constructs a new vocabulary [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts one collection per kind on router.
func (handler *Handler) RegisterRoutes(router chi.Router) {
	for _, kind := range Kinds {
		router.Mount("/"+kind.Path(), handler.Routes(kind))
	}
}

// Routes returns a [chi.Router] configured with the endpoints of a single vocabulary.
func (handler *Handler) Routes(kind Kind) chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.list(kind))
	router.Post("/", handler.create(kind))
	router.Get("/{id}", handler.get(kind))
	router.Put("/{id}", handler.update(kind))
	router.Delete("/{id}", handler.delete(kind))

	return router
}

/*
GET /api/v1/{kind}.

Response:
  - 200: []Attribute: Rows ordered by numeric code
*/
func (handler *Handler) list(kind Kind) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		attributes, err := handler.service.List(request.Context(), kind)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}
		respond.OK(writer, attributes)
	}
}

/*
GET /api/v1/{kind}/{id}.

Response:
  - 200: Attribute
  - 404: Row not found
*/
func (handler *Handler) get(kind Kind) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		attribute, err := handler.service.Get(request.Context(), kind, requestutil.ID(request, "id"))
		if err != nil {
			respond.Error(writer, request, err)
			return
		}
		respond.OK(writer, attribute)
	}
}

/*
POST /api/v1/{kind}.

Request:
  - Body: Input

Response:
  - 201: Attribute: Created row with its allocated numeric code
  - 400: Validation failure
  - 409: Duplicate code, or numeric code capacity exhausted
*/
func (handler *Handler) create(kind Kind) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		var input Input
		if err := requestutil.DecodeJSON(request, &input); err != nil {
			respond.Error(writer, request, err)
			return
		}

		attribute, err := handler.service.Create(request.Context(), kind, input)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}
		respond.Created(writer, attribute)
	}
}

/*
PUT /api/v1/{kind}/{id}.

Description: Any numeric code in the body is ignored.

Response:
  - 200: Attribute
  - 404: Row not found
*/
func (handler *Handler) update(kind Kind) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		var input Input
		if err := requestutil.DecodeJSON(request, &input); err != nil {
			respond.Error(writer, request, err)
			return
		}

		attribute, err := handler.service.Update(request.Context(), kind, requestutil.ID(request, "id"), input)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}
		respond.OK(writer, attribute)
	}
}

/*
DELETE /api/v1/{kind}/{id}.

Response:
  - 204: Removed
  - 404: Row not found
*/
func (handler *Handler) delete(kind Kind) http.HandlerFunc {
	return func(writer http.ResponseWriter, request *http.Request) {
		if err := handler.service.Delete(request.Context(), kind, requestutil.ID(request, "id")); err != nil {
			respond.Error(writer, request, err)
			return
		}
		respond.NoContent(writer)
	}
}
