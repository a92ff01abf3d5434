package tenants_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/avasuite/ava/internal/app/features/tenants"
	"github.com/avasuite/ava/internal/domain/models"
	"github.com/avasuite/ava/internal/testutil"
	"go.uber.org/zap"
)

func newHandler(t *testing.T) (*tenants.Handler, *testutil.Fixtures) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	return tenants.NewHandler(db, zap.NewNop()), testutil.NewFixtures(t, db)
}

func TestCreate_Succeeds(t *testing.T) {
	h, fx := newHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	admin := fx.CreateAdmin(ctx, "Ada", "ada@example.com", "pw123456")
	soc := fx.CreateSociety(ctx, "Oak Towers", admin.ID)

	req := testutil.NewAuthenticatedJSONRequest(t, "POST", "/api/admin/tenants", map[string]any{
		"email":    "tom@example.com",
		"password": "pw123456",
		"name":     "Tom Tenant",
		"unit":     "4B",
	}, testutil.AdminIdentity(admin.ID, soc.ID.Hex()))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status: got %d, want %d (%s)", rec.Code, http.StatusCreated, rec.Body.String())
	}
	var tenant models.User
	testutil.DecodeJSON(t, rec, &tenant)
	if tenant.Role != models.RoleTenant {
		t.Errorf("role: got %q, want %q", tenant.Role, models.RoleTenant)
	}
	if tenant.SocietyID == nil || *tenant.SocietyID != soc.ID {
		t.Error("tenant not bound to the admin's society")
	}
	if tenant.Unit != "4B" {
		t.Errorf("unit: got %q, want %q", tenant.Unit, "4B")
	}
	if body := rec.Body.String(); strings.Contains(body, "password_hash") || strings.Contains(body, "$2a$") {
		t.Errorf("response leaks password hash: %s", body)
	}
}

func TestCreate_RequiresSociety(t *testing.T) {
	h, fx := newHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	admin := fx.CreateAdmin(ctx, "Ada", "ada@example.com", "pw123456")

	req := testutil.NewAuthenticatedJSONRequest(t, "POST", "/api/admin/tenants", map[string]any{
		"email":    "tom@example.com",
		"password": "pw123456",
		"name":     "Tom",
		"unit":     "4B",
	}, testutil.AdminIdentity(admin.ID, ""))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestCreate_RejectsDuplicateEmail(t *testing.T) {
	h, fx := newHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	admin := fx.CreateAdmin(ctx, "Ada", "ada@example.com", "pw123456")
	soc := fx.CreateSociety(ctx, "Oak Towers", admin.ID)
	fx.CreateTenant(ctx, "Tom", "tom@example.com", "pw123456", soc.ID, "4B")

	req := testutil.NewAuthenticatedJSONRequest(t, "POST", "/api/admin/tenants", map[string]any{
		"email":    "tom@example.com",
		"password": "pw123456",
		"name":     "Tom Again",
		"unit":     "5C",
	}, testutil.AdminIdentity(admin.ID, soc.ID.Hex()))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want %d (%s)", rec.Code, http.StatusBadRequest, rec.Body.String())
	}
}

func TestList_ReturnsScopedTenantsWithoutHashes(t *testing.T) {
	h, fx := newHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	admin := fx.CreateAdmin(ctx, "Ada", "ada@example.com", "pw123456")
	soc := fx.CreateSociety(ctx, "Oak Towers", admin.ID)
	fx.CreateTenant(ctx, "Tom", "tom@example.com", "pw123456", soc.ID, "4B")
	fx.CreateTenant(ctx, "Tess", "tess@example.com", "pw123456", soc.ID, "2A")

	other := fx.CreateAdmin(ctx, "Bob", "bob@example.com", "pw123456")
	otherSoc := fx.CreateSociety(ctx, "Elm Court", other.ID)
	fx.CreateTenant(ctx, "Eve", "eve@example.com", "pw123456", otherSoc.ID, "1A")

	req := testutil.NewAuthenticatedJSONRequest(t, "GET", "/api/admin/tenants", nil,
		testutil.AdminIdentity(admin.ID, soc.ID.Hex()))
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want %d (%s)", rec.Code, http.StatusOK, rec.Body.String())
	}
	var list []models.User
	testutil.DecodeJSON(t, rec, &list)
	if len(list) != 2 {
		t.Fatalf("tenant count: got %d, want 2", len(list))
	}
	for _, u := range list {
		if u.SocietyID == nil || *u.SocietyID != soc.ID {
			t.Errorf("tenant %s not scoped to the caller's society", u.Email)
		}
	}
	if body := rec.Body.String(); strings.Contains(body, "password_hash") || strings.Contains(body, "$2a$") {
		t.Errorf("response leaks password hashes: %s", body)
	}
}

func TestList_RequiresSociety(t *testing.T) {
	h, fx := newHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	admin := fx.CreateAdmin(ctx, "Ada", "ada@example.com", "pw123456")

	req := testutil.NewAuthenticatedJSONRequest(t, "GET", "/api/admin/tenants", nil,
		testutil.AdminIdentity(admin.ID, ""))
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want %d", rec.Code, http.StatusBadRequest)
	}
}
