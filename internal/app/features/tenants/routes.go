// internal/app/features/tenants/routes.go
package tenants

import (
	"github.com/avasuite/ava/internal/app/system/auth"
	"github.com/avasuite/ava/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler, gate *auth.Gate) chi.Router {
	r := chi.NewRouter()
	r.Use(gate.Require(auth.Policy{Role: models.RoleAdmin, Refresh: true}))

	r.Post("/", h.Create)
	r.Get("/", h.List)

	return r
}
