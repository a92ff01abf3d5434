// internal/app/features/tenantauth/routes.go
package tenantauth

import (
	"github.com/avasuite/ava/internal/app/system/auth"
	"github.com/avasuite/ava/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler, gate *auth.Gate) chi.Router {
	r := chi.NewRouter()

	r.Post("/login", h.Login)

	r.Group(func(pr chi.Router) {
		pr.Use(gate.Require(auth.Policy{Role: models.RoleTenant, Refresh: true}))
		pr.Get("/profile", h.Profile)
	})

	return r
}
