package middleware

import (
	"context"

	"github.com/neuroseid11-ship-it/PetMatch-sub000/internal/entity"
)

// ContextKey is a private key type so context values cannot collide with
// other packages.
type ContextKey string

const (
	ActorIDCtxKey    = ContextKey("actor_id")
	ActorEmailCtxKey = ContextKey("actor_email")
	ActorRoleCtxKey  = ContextKey("actor_role")
)

func ActorIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ActorIDCtxKey).(string)
	return id, ok && id != ""
}

func ActorEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(ActorEmailCtxKey).(string)
	return email, ok && email != ""
}

func ActorRoleFromContext(ctx context.Context) (entity.ActorRole, bool) {
	role, ok := ctx.Value(ActorRoleCtxKey).(entity.ActorRole)
	return role, ok
}

func IsAdminContext(ctx context.Context) bool {
	role, ok := ActorRoleFromContext(ctx)
	return ok && role == entity.RoleAdmin
}
