package userstore_test

import (
	"testing"

	userstore "github.com/avasuite/ava/internal/app/store/users"
	"github.com/avasuite/ava/internal/app/system/indexes"
	"github.com/avasuite/ava/internal/domain/models"
	"github.com/avasuite/ava/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestStore_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.User{
		FullName:     "  Ada Admin  ",
		Email:        "ADA@Example.COM",
		PasswordHash: "$2a$10$fakehash",
		Role:         "admin",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.ID == primitive.NilObjectID {
		t.Error("expected ID to be assigned")
	}
	if created.FullName != "Ada Admin" {
		t.Errorf("FullName = %q, want trimmed", created.FullName)
	}
	if created.Email != "ada@example.com" {
		t.Errorf("Email = %q, want lowercased", created.Email)
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be set")
	}
}

func TestStore_Create_BadRole(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.Create(ctx, models.User{
		FullName: "X",
		Email:    "x@example.com",
		Role:     "superuser",
	})
	if err == nil {
		t.Fatal("expected error for invalid role")
	}
}

func TestStore_Create_TenantNeedsSociety(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	_, err := store.Create(ctx, models.User{
		FullName: "T",
		Email:    "t@example.com",
		Role:     "tenant",
	})
	if err == nil {
		t.Fatal("expected error for tenant without society")
	}
}

func TestStore_Create_DuplicateEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	// The unique index is what turns the second insert into a dup error.
	if err := indexes.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}

	store := userstore.New(db)
	u := models.User{FullName: "A", Email: "dup@example.com", Role: "admin"}

	if _, err := store.Create(ctx, u); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}
	if _, err := store.Create(ctx, u); err != userstore.ErrDuplicateEmail {
		t.Errorf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestStore_GetByEmail_CaseInsensitive(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures.CreateAdmin(ctx, "Ada", "ada@example.com", "pw123456")

	got, err := store.GetByEmail(ctx, "  ADA@EXAMPLE.COM ")
	if err != nil {
		t.Fatalf("GetByEmail failed: %v", err)
	}
	if got.Email != "ada@example.com" {
		t.Errorf("Email = %q", got.Email)
	}
}

func TestStore_GetByEmail_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.GetByEmail(ctx, "ghost@example.com"); err != mongo.ErrNoDocuments {
		t.Errorf("expected ErrNoDocuments, got %v", err)
	}
}

func TestStore_ListTenantsBySociety(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	admin := fixtures.CreateAdmin(ctx, "Ada", "ada@example.com", "pw123456")
	soc := fixtures.CreateSociety(ctx, "Oak Towers", admin.ID)
	other := fixtures.CreateAdmin(ctx, "Bob", "bob@example.com", "pw123456")
	otherSoc := fixtures.CreateSociety(ctx, "Pine Court", other.ID)

	fixtures.CreateTenant(ctx, "T One", "t1@example.com", "pw123456", soc.ID, "1A")
	fixtures.CreateTenant(ctx, "T Two", "t2@example.com", "pw123456", soc.ID, "2B")
	fixtures.CreateTenant(ctx, "T Other", "t3@example.com", "pw123456", otherSoc.ID, "3C")

	tenants, err := store.ListTenantsBySociety(ctx, soc.ID)
	if err != nil {
		t.Fatalf("ListTenantsBySociety failed: %v", err)
	}
	if len(tenants) != 2 {
		t.Fatalf("expected 2 tenants, got %d", len(tenants))
	}
	for _, tn := range tenants {
		if tn.SocietyID == nil || *tn.SocietyID != soc.ID {
			t.Errorf("tenant %s has wrong society", tn.Email)
		}
		// Projection must have excluded the hash.
		if tn.PasswordHash != "" {
			t.Errorf("tenant %s leaked a password hash", tn.Email)
		}
	}
}

func TestStore_SetSocietyID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := userstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	admin := fixtures.CreateAdmin(ctx, "Ada", "ada@example.com", "pw123456")
	socID := primitive.NewObjectID()

	if err := store.SetSocietyID(ctx, admin.ID, socID); err != nil {
		t.Fatalf("SetSocietyID failed: %v", err)
	}

	got, err := store.GetByID(ctx, admin.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.SocietyID == nil || *got.SocietyID != socID {
		t.Error("expected society reference to be recorded")
	}
}
