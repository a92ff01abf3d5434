// internal/app/system/authz/authz.go
package authz

import (
	"net/http"

	"github.com/avasuite/ava/internal/app/system/auth"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserCtx returns the caller's role, display name, and ObjectID, plus a
// found flag. If no identity is present or the id is malformed, it
// returns ok=false so callers can trust ok=true means a valid,
// authenticated principal. The gate middleware should make the
// malformed case impossible; this fails closed anyway.
func UserCtx(r *http.Request) (role string, name string, userID primitive.ObjectID, ok bool) {
	id, ok := auth.CurrentIdentity(r)
	if !ok {
		return "", "", primitive.NilObjectID, false
	}
	oid, err := primitive.ObjectIDFromHex(id.ID)
	if err != nil {
		return "", "", primitive.NilObjectID, false
	}
	return id.Role, id.Name, oid, true
}

// SocietyID returns the caller's society ObjectID, or NilObjectID when
// the caller has none (admin before creating a society) or is absent.
func SocietyID(r *http.Request) primitive.ObjectID {
	id, ok := auth.CurrentIdentity(r)
	if !ok || id.SocietyID == "" {
		return primitive.NilObjectID
	}
	oid, err := primitive.ObjectIDFromHex(id.SocietyID)
	if err != nil {
		return primitive.NilObjectID
	}
	return oid
}

// HasSociety reports whether the caller is bound to a society.
func HasSociety(r *http.Request) bool {
	return SocietyID(r) != primitive.NilObjectID
}
