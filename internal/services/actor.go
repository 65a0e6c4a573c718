package services

import "context"

type actorCtxKey struct{}

// WithActor marks ctx as acting on behalf of the given user. Project
// operations run under such a context refuse to touch projects owned
// by somebody else.
func WithActor(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, actorCtxKey{}, userID)
}

func ActorFromContext(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(actorCtxKey{}).(string)
	return userID, ok && userID != ""
}

func checkOwner(ctx context.Context, ownerID string) error {
	actorID, ok := ActorFromContext(ctx)
	if ok && actorID != ownerID {
		return ErrForbidden
	}
	return nil
}
