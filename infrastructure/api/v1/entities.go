package v1

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/helixml/catalog"
	"github.com/helixml/catalog/domain/attribute"
	"github.com/helixml/catalog/infrastructure/api/jsonapi"
	"github.com/helixml/catalog/infrastructure/api/middleware"
	"github.com/helixml/catalog/infrastructure/api/v1/dto"
)

// EntitiesRouter serves attribute assignments of catalog entities.
type EntitiesRouter struct {
	client *catalog.Client
	logger *slog.Logger
}

// NewEntitiesRouter creates a new EntitiesRouter.
func NewEntitiesRouter(client *catalog.Client) *EntitiesRouter {
	return &EntitiesRouter{
		client: client,
		logger: client.Logger(),
	}
}

// Routes returns the chi router for entity endpoints.
func (r *EntitiesRouter) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/{kind}/{id}/attributes/{attributeID}", r.GetAssignment)
	router.Put("/{kind}/{id}/attributes/{attributeID}", r.PutAssignment)

	return router
}

type assignmentTarget struct {
	kind        attribute.Kind
	entityID    int64
	attributeID int64
}

func parseAssignmentTarget(req *http.Request) (assignmentTarget, error) {
	kind, err := attribute.ParseKind(chi.URLParam(req, "kind"))
	if err != nil {
		return assignmentTarget{}, err
	}
	entityID, err := idParam(req, "id")
	if err != nil {
		return assignmentTarget{}, err
	}
	attributeID, err := idParam(req, "attributeID")
	if err != nil {
		return assignmentTarget{}, err
	}
	return assignmentTarget{kind: kind, entityID: entityID, attributeID: attributeID}, nil
}

// GetAssignment handles GET /api/v1/entities/{kind}/{id}/attributes/{attributeID}.
func (r *EntitiesRouter) GetAssignment(w http.ResponseWriter, req *http.Request) {
	target, err := parseAssignmentTarget(req)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	assignment, err := r.client.Assigned(req.Context(), target.kind, target.entityID, target.attributeID)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	r.writeAssignment(w, req, http.StatusOK, assignment, target.attributeID)
}

// PutAssignment handles PUT /api/v1/entities/{kind}/{id}/attributes/{attributeID}.
// The body lists value ids in display order and replaces the current set.
func (r *EntitiesRouter) PutAssignment(w http.ResponseWriter, req *http.Request) {
	target, err := parseAssignmentTarget(req)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	var body dto.AssignmentRequest
	if err := json.NewDecoder(req.Body).Decode(&body); err != nil {
		middleware.WriteError(w, req, middleware.BadRequest("decode body: %v", err), r.logger)
		return
	}
	if body.ValueIDs == nil {
		middleware.WriteError(w, req, middleware.BadRequest("value_ids is required"), r.logger)
		return
	}

	assignment, err := r.client.Associate(req.Context(), target.kind, target.entityID, target.attributeID, *body.ValueIDs)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}

	r.writeAssignment(w, req, http.StatusOK, assignment, target.attributeID)
}

func (r *EntitiesRouter) writeAssignment(w http.ResponseWriter, req *http.Request, status int, a attribute.Assignment, attributeID int64) {
	values, err := r.client.Attributes.Values(req.Context(), attributeID)
	if err != nil {
		middleware.WriteError(w, req, err, r.logger)
		return
	}
	middleware.WriteJSON(w, status, jsonapi.AssignmentDocument(a, attributeID, values))
}
