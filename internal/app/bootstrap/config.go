// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"strings"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"

	"github.com/avasuite/ava/internal/app/system/tokens"
)

// appConfigKeys defines the configuration keys for AVA.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, jwt_secret, etc.
//   - Environment variables: AVA_MONGO_URI, AVA_JWT_SECRET, etc.
//   - Command-line flags: --mongo_uri, --jwt_secret, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "ava", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size"},

	// Token signing
	{Name: "jwt_secret", Default: "", Desc: "Secret for signing bearer tokens (required)"},
	{Name: "jwt_expiry", Default: "168h", Desc: "Bearer token lifetime (e.g., 168h, 24h)"},

	// CORS
	{Name: "cors_origins", Default: "*", Desc: "Comma-separated list of allowed browser origins"},

	// Base URL
	{Name: "base_url", Default: "http://localhost:8080", Desc: "Base URL the service is reachable at"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have
// access to configuration before any backends or handlers are built.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "AVA", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		JWTSecret: appValues.String("jwt_secret"),
		JWTExpiry: appValues.Duration("jwt_expiry", tokens.DefaultTTL),

		CORSOrigins: splitOrigins(appValues.String("cors_origins")),

		BaseURL: appValues.String("base_url"),
	}

	return coreCfg, appCfg, nil
}

func splitOrigins(raw string) []string {
	var out []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// AVA validates the MongoDB URI format and requires a signing secret so
// configuration errors surface before any connection is attempted. In
// non-production environments a missing secret falls back to a dev-only
// value so local runs work out of the box.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	if appCfg.JWTSecret == "" {
		if coreCfg.Env == "prod" {
			return fmt.Errorf("jwt_secret is required in production")
		}
		logger.Warn("jwt_secret not set; using dev-only default")
	}

	if appCfg.JWTExpiry <= 0 {
		return fmt.Errorf("jwt_expiry must be a positive duration")
	}

	return nil
}

// signingSecret returns the effective token secret for the environment.
func signingSecret(appCfg AppConfig) string {
	if appCfg.JWTSecret != "" {
		return appCfg.JWTSecret
	}
	return "dev-only-change-me-please-0123456789ABCDEF"
}
