// internal/app/features/notices/routes.go
package notices

import (
	"github.com/avasuite/ava/internal/app/system/auth"
	"github.com/avasuite/ava/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler, gate *auth.Gate) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(gate.Require(auth.Policy{Role: models.RoleAdmin, Refresh: true}))
		pr.Post("/", h.Create)
		pr.Get("/admin", h.ListForAdmins)
	})

	r.Group(func(pr chi.Router) {
		pr.Use(gate.Require(auth.Policy{Role: models.RoleTenant, Refresh: true}))
		pr.Get("/tenant", h.ListForTenants)
	})

	return r
}
