package societystore

import (
	"context"
	"errors"
	"time"

	userstore "github.com/avasuite/ava/internal/app/store/users"
	"github.com/avasuite/ava/internal/app/system/normalize"
	"github.com/avasuite/ava/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store struct {
	c     *mongo.Collection
	users *userstore.Store
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("societies"), users: userstore.New(db)}
}

var (
	// ErrSocietyExists is returned when the admin already owns a society.
	// Backed by the unique admin_id index, so concurrent double-submits
	// cannot both succeed.
	ErrSocietyExists = errors.New("this admin already has a society")
	// ErrNotFound is returned when the caller owns no society.
	ErrNotFound = errors.New("society not found")
)

// Create inserts a society owned by adminID and records the
// back-reference on the admin's user document. The two writes are not
// one transaction; if the back-reference update fails, the inserted
// society is deleted so no orphan survives the error return.
func (s *Store) Create(ctx context.Context, soc models.Society, adminID primitive.ObjectID) (models.Society, error) {
	soc.ID = primitive.NewObjectID()
	soc.Name = normalize.Name(soc.Name)
	soc.Address = normalize.Name(soc.Address)
	soc.AdminID = adminID

	now := time.Now().UTC()
	soc.CreatedAt = now
	soc.UpdatedAt = now

	if _, err := s.c.InsertOne(ctx, soc); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Society{}, ErrSocietyExists
		}
		return models.Society{}, err
	}

	if err := s.users.SetSocietyID(ctx, adminID, soc.ID); err != nil {
		// Compensate: drop the society rather than leave an orphan.
		_, _ = s.c.DeleteOne(ctx, bson.M{"_id": soc.ID})
		return models.Society{}, err
	}

	return soc, nil
}

// GetByAdminID returns the society owned by adminID, or ErrNotFound.
func (s *Store) GetByAdminID(ctx context.Context, adminID primitive.ObjectID) (*models.Society, error) {
	var soc models.Society
	if err := s.c.FindOne(ctx, bson.M{"admin_id": adminID}).Decode(&soc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &soc, nil
}

// GetByID loads a society by ObjectID, or ErrNotFound.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Society, error) {
	var soc models.Society
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&soc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &soc, nil
}

// ExistsForAdmin is the fast-path precondition check for Create.
func (s *Store) ExistsForAdmin(ctx context.Context, adminID primitive.ObjectID) (bool, error) {
	err := s.c.FindOne(ctx, bson.M{"admin_id": adminID}).Err()
	if err == nil {
		return true, nil
	}
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	return false, err
}
