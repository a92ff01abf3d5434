// internal/domain/models/society.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Society is the tenancy boundary: one admin owns it, tenants and
// notices live inside it. AdminID carries a unique index so an admin
// can never end up owning two societies, even under concurrent creates.
type Society struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name       string             `bson:"name" json:"name"`
	Address    string             `bson:"address" json:"address"`
	TotalUnits int                `bson:"total_units" json:"totalUnits"`
	AdminID    primitive.ObjectID `bson:"admin_id" json:"admin_id"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at" json:"updated_at"`
}
