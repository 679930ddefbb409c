package reqctx

import (
	"context"

	"github.com/google/uuid"
)

// Role is the caller's role as asserted by the upstream auth gateway.
type Role string

const (
	RolePatient Role = "patient"
	RoleDoctor  Role = "doctor"
	RoleAdmin   Role = "admin"
	RoleLab     Role = "lab"
)

func (r Role) Valid() bool {
	switch r {
	case RolePatient, RoleDoctor, RoleAdmin, RoleLab:
		return true
	}
	return false
}

// Identity is the authenticated caller. Authentication itself happens at
// the edge; this service only consumes the asserted identity headers.
type Identity struct {
	UserID uuid.UUID
	Role   Role
}

// WithIdentity stores the caller identity in the context.
func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, keyIdentity, id)
}

// IdentityFromContext retrieves the caller identity from the context.
// Returns nil if the request is not authenticated.
func IdentityFromContext(ctx context.Context) *Identity {
	v := ctx.Value(keyIdentity)
	if v == nil {
		return nil
	}
	id, ok := v.(*Identity)
	if !ok {
		return nil
	}
	return id
}

// MustIdentity retrieves the identity from the context.
// Panics if not present.
func MustIdentity(ctx context.Context) *Identity {
	id := IdentityFromContext(ctx)
	if id == nil {
		panic("reqctx: identity not found in context")
	}
	return id
}

// IsAuthenticated returns true if a valid identity exists in the context.
func IsAuthenticated(ctx context.Context) bool {
	id := IdentityFromContext(ctx)
	return id != nil && id.UserID != uuid.Nil
}

// UserIDFromContext extracts the user ID from the identity.
// Returns uuid.Nil and false if not authenticated.
func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id := IdentityFromContext(ctx)
	if id == nil {
		return uuid.Nil, false
	}
	return id.UserID, true
}
