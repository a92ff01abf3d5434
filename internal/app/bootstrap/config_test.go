package bootstrap

import (
	"testing"
	"time"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

func testLogger() *zap.Logger {
	return zap.NewNop()
}

func TestValidateConfig_RejectsBadMongoURI(t *testing.T) {
	appCfg := AppConfig{MongoURI: "not-a-mongo-uri", JWTSecret: "s", JWTExpiry: time.Hour}
	if err := ValidateConfig(&config.CoreConfig{Env: "dev"}, appCfg, testLogger()); err == nil {
		t.Error("expected an error for a malformed Mongo URI")
	}
}

func TestValidateConfig_RequiresSecretInProd(t *testing.T) {
	appCfg := AppConfig{MongoURI: "mongodb://localhost:27017", JWTExpiry: time.Hour}

	if err := ValidateConfig(&config.CoreConfig{Env: "prod"}, appCfg, testLogger()); err == nil {
		t.Error("expected an error for a missing jwt_secret in prod")
	}
	if err := ValidateConfig(&config.CoreConfig{Env: "dev"}, appCfg, testLogger()); err != nil {
		t.Errorf("dev should fall back to the dev-only secret, got error: %v", err)
	}
}

func TestValidateConfig_RejectsNonPositiveExpiry(t *testing.T) {
	appCfg := AppConfig{MongoURI: "mongodb://localhost:27017", JWTSecret: "s", JWTExpiry: 0}
	if err := ValidateConfig(&config.CoreConfig{Env: "dev"}, appCfg, testLogger()); err == nil {
		t.Error("expected an error for a non-positive jwt_expiry")
	}
}

func TestSigningSecret(t *testing.T) {
	if got := signingSecret(AppConfig{JWTSecret: "configured"}); got != "configured" {
		t.Errorf("got %q, want the configured secret", got)
	}
	if got := signingSecret(AppConfig{}); got == "" {
		t.Error("expected a non-empty dev fallback secret")
	}
}

func TestSplitOrigins(t *testing.T) {
	cases := []struct {
		raw  string
		want []string
	}{
		{"*", []string{"*"}},
		{"https://a.com, https://b.com", []string{"https://a.com", "https://b.com"}},
		{" , ", nil},
	}
	for _, tc := range cases {
		got := splitOrigins(tc.raw)
		if len(got) != len(tc.want) {
			t.Errorf("splitOrigins(%q): got %v, want %v", tc.raw, got, tc.want)
			continue
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Errorf("splitOrigins(%q)[%d]: got %q, want %q", tc.raw, i, got[i], tc.want[i])
			}
		}
	}
}
