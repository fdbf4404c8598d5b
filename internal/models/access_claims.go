package models

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AccessClaims are the claims of a verified bearer token. The subject is the owner id.
type AccessClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
}

// OwnerID parses the subject claim as the owner's id
func (c *AccessClaims) OwnerID() (uuid.UUID, error) {
	return uuid.Parse(c.Subject)
}
