package userstore

import (
	"context"

	"github.com/avasuite/ava/internal/app/system/auth"
	"github.com/avasuite/ava/internal/app/system/timeouts"
	"github.com/avasuite/ava/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Fetcher implements auth.Fetcher so the gate can rebuild the caller's
// identity from the current database record on every request. This is
// what makes a role change or a just-created society visible without a
// token reissue.
type Fetcher struct {
	users *mongo.Collection
}

// NewFetcher creates an identity fetcher over the given database.
func NewFetcher(db *mongo.Database) *Fetcher {
	return &Fetcher{users: db.Collection("users")}
}

// FetchIdentity retrieves a user by id and returns nil if the user is
// not found or any error occurs. Nil makes the gate fail closed.
func (f *Fetcher) FetchIdentity(ctx context.Context, userID string) *auth.Identity {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, timeouts.Short())
	defer cancel()

	var u models.User
	proj := options.FindOne().SetProjection(bson.M{
		"_id":        1,
		"full_name":  1,
		"email":      1,
		"role":       1,
		"society_id": 1,
	})
	if err := f.users.FindOne(ctx, bson.M{"_id": oid}, proj).Decode(&u); err != nil {
		return nil
	}

	id := &auth.Identity{
		ID:    u.ID.Hex(),
		Role:  u.Role,
		Name:  u.FullName,
		Email: u.Email,
	}
	if u.SocietyID != nil {
		id.SocietyID = u.SocietyID.Hex()
	}
	return id
}
