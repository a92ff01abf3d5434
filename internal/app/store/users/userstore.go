package userstore

import (
	"context"
	"errors"
	"time"

	"github.com/avasuite/ava/internal/app/system/normalize"
	"github.com/avasuite/ava/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("users")}
}

var (
	// ErrDuplicateEmail is returned when attempting to create a user with
	// an email that already exists. Backed by the unique email index, so
	// it holds under concurrent creates too.
	ErrDuplicateEmail = errors.New("a user with this email already exists")
	errBadRole        = errors.New(`role must be "admin"|"tenant"`)
	errScopeNeeded    = errors.New("tenant must have society_id")
)

// GetByID loads a user by ObjectID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByEmail looks up a user by case-insensitive email.
// Returns mongo.ErrNoDocuments if not found.
func (s *Store) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"email": normalize.Email(email)}).Decode(&u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Create inserts a new user after normalizing & validating fields.
// The caller supplies an already-hashed password.
func (s *Store) Create(ctx context.Context, u models.User) (models.User, error) {
	u.ID = primitive.NewObjectID()
	u.FullName = normalize.Name(u.FullName)
	u.Email = normalize.Email(u.Email)
	u.Role = normalize.Role(u.Role)
	u.Unit = normalize.Unit(u.Unit)

	if !models.IsValidRole(u.Role) {
		return models.User{}, errBadRole
	}
	if u.Role == models.RoleTenant && u.SocietyID == nil {
		return models.User{}, errScopeNeeded
	}

	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, u); err != nil {
		if wafflemongo.IsDup(err) {
			return models.User{}, ErrDuplicateEmail
		}
		return models.User{}, err
	}
	return u, nil
}

// EmailExists reports whether any user already has this email. This is
// the friendly fast path; the unique index is what actually guarantees
// uniqueness under concurrency.
func (s *Store) EmailExists(ctx context.Context, email string) (bool, error) {
	err := s.c.FindOne(ctx, bson.M{"email": normalize.Email(email)}).Err()
	if err == nil {
		return true, nil
	}
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	return false, err
}

// SetSocietyID records the society an admin now owns.
func (s *Store) SetSocietyID(ctx context.Context, userID, societyID primitive.ObjectID) error {
	_, err := s.c.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$set": bson.M{"society_id": societyID, "updated_at": time.Now().UTC()}},
	)
	return err
}

// ListTenantsBySociety returns all tenant records in the given society,
// with the password hash excluded by projection so it can never reach a
// response body.
func (s *Store) ListTenantsBySociety(ctx context.Context, societyID primitive.ObjectID) ([]models.User, error) {
	proj := options.Find().
		SetProjection(bson.M{"password_hash": 0}).
		SetSort(bson.D{{Key: "full_name", Value: 1}})

	cur, err := s.c.Find(ctx, bson.M{"society_id": societyID, "role": models.RoleTenant}, proj)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	tenants := []models.User{}
	if err := cur.All(ctx, &tenants); err != nil {
		return nil, err
	}
	return tenants, nil
}
