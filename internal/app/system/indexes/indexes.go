// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

/*
EnsureAll is called at startup. Each ensure* function is idempotent
(CreateMany is a no-op for an index that already exists with the same
spec). We aggregate errors so any problem is visible and startup can
fail fast.

The two unique indexes are load-bearing: they are what closes the
check-then-insert races on duplicate emails and on one-society-per-admin.
*/
func EnsureAll(ctx context.Context, db *mongo.Database) error {
	var problems []string

	if err := ensureUsers(ctx, db); err != nil {
		problems = append(problems, "users: "+err.Error())
	}
	if err := ensureSocieties(ctx, db); err != nil {
		problems = append(problems, "societies: "+err.Error())
	}
	if err := ensureNotices(ctx, db); err != nil {
		problems = append(problems, "notices: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

func ensureUsers(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("users").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_email"),
		},
		{
			// Tenant listings filter by society and role.
			Keys:    bson.D{{Key: "society_id", Value: 1}, {Key: "role", Value: 1}},
			Options: options.Index().SetName("society_role"),
		},
	})
	return err
}

func ensureSocieties(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("societies").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "admin_id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_admin"),
		},
	})
	return err
}

func ensureNotices(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection("notices").Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			// Audience listings: society + target role, newest first.
			Keys: bson.D{
				{Key: "society_id", Value: 1},
				{Key: "target_role", Value: 1},
				{Key: "created_at", Value: -1},
			},
			Options: options.Index().SetName("society_audience_recent"),
		},
	})
	return err
}
