// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Roles a user can hold. Admins own a society; tenants belong to one.
const (
	RoleAdmin  = "admin"
	RoleTenant = "tenant"
)

// IsValidRole reports whether role is one of the two enumerated values.
func IsValidRole(role string) bool {
	return role == RoleAdmin || role == RoleTenant
}

// User represents admins and tenants.
//
// NOTE:
//   - PasswordHash is never serialized to JSON and is excluded by
//     projection from tenant listings.
//   - Tenants always carry SocietyID and Unit; admins gain SocietyID
//     once they create their society.
type User struct {
	ID           primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	FullName     string              `bson:"full_name" json:"name"`
	Email        string              `bson:"email" json:"email"`
	PasswordHash string              `bson:"password_hash,omitempty" json:"-"`
	Role         string              `bson:"role" json:"role"` // admin | tenant
	SocietyID    *primitive.ObjectID `bson:"society_id,omitempty" json:"society_id,omitempty"`
	Unit         string              `bson:"unit,omitempty" json:"unit,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
