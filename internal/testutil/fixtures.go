package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/avasuite/ava/internal/app/system/authutil"
	"github.com/avasuite/ava/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateAdmin creates an admin user with the given name, email, and
// password (stored hashed, exactly as the signup path does).
func (f *Fixtures) CreateAdmin(ctx context.Context, fullName, email, password string) models.User {
	f.t.Helper()
	return f.createUser(ctx, fullName, email, password, models.RoleAdmin, nil, "")
}

// CreateTenant creates a tenant user in the given society.
func (f *Fixtures) CreateTenant(ctx context.Context, fullName, email, password string, societyID primitive.ObjectID, unit string) models.User {
	f.t.Helper()
	return f.createUser(ctx, fullName, email, password, models.RoleTenant, &societyID, unit)
}

func (f *Fixtures) createUser(ctx context.Context, fullName, email, password, role string, societyID *primitive.ObjectID, unit string) models.User {
	f.t.Helper()

	hash, err := authutil.HashPassword(password)
	if err != nil {
		f.t.Fatalf("failed to hash test password: %v", err)
	}

	now := time.Now().UTC()
	user := models.User{
		ID:           primitive.NewObjectID(),
		FullName:     fullName,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		SocietyID:    societyID,
		Unit:         unit,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := f.db.Collection("users").InsertOne(ctx, user); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateSociety creates a society owned by adminID and sets the admin's
// back-reference, mirroring the production create path.
func (f *Fixtures) CreateSociety(ctx context.Context, name string, adminID primitive.ObjectID) models.Society {
	f.t.Helper()

	now := time.Now().UTC()
	soc := models.Society{
		ID:         primitive.NewObjectID(),
		Name:       name,
		Address:    "1 Test Rd",
		TotalUnits: 10,
		AdminID:    adminID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if _, err := f.db.Collection("societies").InsertOne(ctx, soc); err != nil {
		f.t.Fatalf("failed to create test society: %v", err)
	}
	if _, err := f.db.Collection("users").UpdateOne(ctx,
		map[string]any{"_id": adminID},
		map[string]any{"$set": map[string]any{"society_id": soc.ID}},
	); err != nil {
		f.t.Fatalf("failed to set admin society reference: %v", err)
	}
	return soc
}

// CreateNotice creates a notice in the given society.
func (f *Fixtures) CreateNotice(ctx context.Context, title, targetRole string, societyID, authorID primitive.ObjectID) models.Notice {
	f.t.Helper()

	n := models.Notice{
		ID:         primitive.NewObjectID(),
		Title:      title,
		Body:       "Test notice body",
		TargetRole: targetRole,
		SocietyID:  societyID,
		AuthorID:   authorID,
		CreatedAt:  time.Now().UTC(),
	}

	if _, err := f.db.Collection("notices").InsertOne(ctx, n); err != nil {
		f.t.Fatalf("failed to create test notice: %v", err)
	}
	return n
}
