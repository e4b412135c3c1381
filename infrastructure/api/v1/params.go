package v1

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/helixml/catalog/infrastructure/api/middleware"
)

func idParam(req *http.Request, name string) (int64, error) {
	raw := chi.URLParam(req, name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, middleware.BadRequest("invalid %s %q", name, raw)
	}
	return id, nil
}
