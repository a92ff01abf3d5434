// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	adminauthfeature "github.com/avasuite/ava/internal/app/features/adminauth"
	healthfeature "github.com/avasuite/ava/internal/app/features/health"
	noticesfeature "github.com/avasuite/ava/internal/app/features/notices"
	societiesfeature "github.com/avasuite/ava/internal/app/features/societies"
	tenantauthfeature "github.com/avasuite/ava/internal/app/features/tenantauth"
	tenantsfeature "github.com/avasuite/ava/internal/app/features/tenants"
	userstore "github.com/avasuite/ava/internal/app/store/users"
	"github.com/avasuite/ava/internal/app/system/auth"
	"github.com/avasuite/ava/internal/app/system/requestid"
	"github.com/avasuite/ava/internal/app/system/tokens"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. AVA builds the token service from the
// configured signing secret, wires the auth gate with a store-backed
// identity fetcher so role and society changes take effect immediately,
// and mounts the JSON API feature routers.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	tok, err := tokens.New(signingSecret(appCfg), appCfg.JWTExpiry)
	if err != nil {
		logger.Error("token service init failed", zap.Error(err))
		return nil, err
	}

	// Deep verification fetches fresh user data on each gated request.
	gate := auth.NewGate(tok, userstore.NewFetcher(deps.AVAMongoDatabase), logger)

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: appCfg.CORSOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.AVAMongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Admin signup/login/profile
	adminAuthHandler := adminauthfeature.NewHandler(deps.AVAMongoDatabase, tok, logger)
	r.Mount("/api/admin", adminauthfeature.Routes(adminAuthHandler, gate))

	// Society lifecycle (admin-only)
	societiesHandler := societiesfeature.NewHandler(deps.AVAMongoDatabase, logger)
	r.Mount("/api/admin/society", societiesfeature.Routes(societiesHandler, gate))

	// Tenant account management (admin-only)
	tenantsHandler := tenantsfeature.NewHandler(deps.AVAMongoDatabase, logger)
	r.Mount("/api/admin/tenants", tenantsfeature.Routes(tenantsHandler, gate))

	// Notice board
	noticesHandler := noticesfeature.NewHandler(deps.AVAMongoDatabase, logger)
	r.Mount("/api/notices", noticesfeature.Routes(noticesHandler, gate))

	// Tenant login/profile
	tenantAuthHandler := tenantauthfeature.NewHandler(deps.AVAMongoDatabase, tok, logger)
	r.Mount("/api/tenant", tenantauthfeature.Routes(tenantAuthHandler, gate))

	return r, nil
}
