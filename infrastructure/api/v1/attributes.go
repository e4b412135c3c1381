// Package v1 provides the v1 API routes.
package v1

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/helixml/catalog"
	"github.com/helixml/catalog/infrastructure/api/jsonapi"
	"github.com/helixml/catalog/infrastructure/api/middleware"
)

// AttributesRouter serves attribute definitions and their values.
type AttributesRouter struct {
	client *catalog.Client
	logger *slog.Logger
}

// NewAttributesRouter creates a new AttributesRouter.
func NewAttributesRouter(client *catalog.Client) *AttributesRouter {
	return &AttributesRouter{
		client: client,
		logger: client.Logger(),
	}
}

// Routes returns the chi router for attribute endpoints.
func (r *AttributesRouter) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", r.List)
	router.Get("/{id}", r.Get)
	router.Get("/{id}/values", r.ListValues)

	return router
}

// List handles GET /api/v1/attributes.
func (r *AttributesRouter) List(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	pagination := ParsePagination(req)

	attrs, err := r.client.Attributes.Find(ctx, pagination.Options("id")...)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	total, err := r.client.Attributes.Count(ctx)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	resources := make([]*jsonapi.Resource, len(attrs))
	for i, a := range attrs {
		resources[i] = jsonapi.AttributeResource(a)
	}

	doc := jsonapi.NewListResponse(resources)
	doc.Meta = PaginationMeta(pagination, total)
	doc.Links = PaginationLinks(req, pagination, total)
	middleware.WriteJSON(w, http.StatusOK, doc)
}

// Get handles GET /api/v1/attributes/{id}.
func (r *AttributesRouter) Get(w http.ResponseWriter, req *http.Request) {
	id, err := idParam(req, "id")
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	attr, err := r.client.Attributes.Get(req.Context(), id)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	middleware.WriteJSON(w, http.StatusOK, jsonapi.NewSingleResponse(jsonapi.AttributeResource(attr)))
}

// ListValues handles GET /api/v1/attributes/{id}/values.
// Values are returned in the attribute's own order.
func (r *AttributesRouter) ListValues(w http.ResponseWriter, req *http.Request) {
	ctx := req.Context()
	id, err := idParam(req, "id")
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	if _, err := r.client.Attributes.Get(ctx, id); err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	values, err := r.client.Attributes.Values(ctx, id)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	resources := make([]*jsonapi.Resource, len(values))
	for i, v := range values {
		resources[i] = jsonapi.ValueResource(v)
	}
	middleware.WriteJSON(w, http.StatusOK, jsonapi.NewListResponse(resources))
}
