// internal/domain/models/notice.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notice is a message an admin publishes to one audience role within
// their society. Notices are immutable once created; there is no update
// path anywhere in the API.
type Notice struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title      string             `bson:"title" json:"title"`
	Body       string             `bson:"body" json:"description"`
	TargetRole string             `bson:"target_role" json:"targetRole"` // admin | tenant
	SocietyID  primitive.ObjectID `bson:"society_id" json:"society_id"`
	AuthorID   primitive.ObjectID `bson:"author_id" json:"author_id"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
}

// NoticeWithAuthor is a notice joined with the author's display name,
// produced by the list aggregation.
type NoticeWithAuthor struct {
	Notice     `bson:",inline"`
	AuthorName string `bson:"author_name" json:"author_name"`
}
