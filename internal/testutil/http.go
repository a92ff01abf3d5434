package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/avasuite/ava/internal/app/system/auth"
	"github.com/avasuite/ava/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AdminIdentity builds an auth.Identity for an admin, optionally with a
// society.
func AdminIdentity(id primitive.ObjectID, societyID string) *auth.Identity {
	return &auth.Identity{
		ID:        id.Hex(),
		Role:      models.RoleAdmin,
		SocietyID: societyID,
		Name:      "Test Admin",
		Email:     "admin@test.com",
	}
}

// TenantIdentity builds an auth.Identity for a tenant in a society.
func TenantIdentity(id, societyID primitive.ObjectID) *auth.Identity {
	return &auth.Identity{
		ID:        id.Hex(),
		Role:      models.RoleTenant,
		SocietyID: societyID.Hex(),
		Name:      "Test Tenant",
		Email:     "tenant@test.com",
	}
}

// NewJSONRequest creates a request with body marshaled as JSON.
func NewJSONRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encoding request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// NewAuthenticatedJSONRequest creates a JSON request with the identity
// already in context, bypassing the bearer middleware.
func NewAuthenticatedJSONRequest(t *testing.T, method, target string, body any, id *auth.Identity) *http.Request {
	t.Helper()
	return auth.WithTestIdentity(NewJSONRequest(t, method, target, body), id)
}

// DecodeJSON unmarshals a recorder body into dst, failing the test on error.
func DecodeJSON(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), dst); err != nil {
		t.Fatalf("response is not valid JSON (%v): %s", err, rec.Body.String())
	}
}
