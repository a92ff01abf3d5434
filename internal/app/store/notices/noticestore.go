package noticestore

import (
	"context"
	"time"

	"github.com/avasuite/ava/internal/app/system/htmlsanitize"
	"github.com/avasuite/ava/internal/app/system/normalize"
	"github.com/avasuite/ava/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("notices")}
}

// Create inserts a notice. The body is sanitized here so no unsafe
// markup ever reaches storage; titles are stripped to plain text.
// Notices have no update path.
func (s *Store) Create(ctx context.Context, n models.Notice) (models.Notice, error) {
	n.ID = primitive.NewObjectID()
	n.Title = htmlsanitize.PlainText(normalize.Name(n.Title))
	n.Body = htmlsanitize.Sanitize(n.Body)
	n.TargetRole = normalize.Role(n.TargetRole)
	n.CreatedAt = time.Now().UTC()

	if _, err := s.c.InsertOne(ctx, n); err != nil {
		return models.Notice{}, err
	}
	return n, nil
}

// ListBySocietyAndAudience returns notices for one society and audience
// role, newest first, with the author reference expanded to a display
// name via $lookup.
func (s *Store) ListBySocietyAndAudience(ctx context.Context, societyID primitive.ObjectID, targetRole string) ([]models.NoticeWithAuthor, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"society_id":  societyID,
			"target_role": normalize.Role(targetRole),
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "author_id",
			"foreignField": "_id",
			"as":           "author",
		}}},
		{{Key: "$addFields", Value: bson.M{
			"author_name": bson.M{"$ifNull": bson.A{
				bson.M{"$arrayElemAt": bson.A{"$author.full_name", 0}},
				"",
			}},
		}}},
		{{Key: "$project", Value: bson.M{"author": 0}}},
	}

	cur, err := s.c.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	notices := []models.NoticeWithAuthor{}
	if err := cur.All(ctx, &notices); err != nil {
		return nil, err
	}
	return notices, nil
}
