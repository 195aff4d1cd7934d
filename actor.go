/*
 * Copyright © 2025 Yardimhane Bilisim, All rights reserved.
 */

package casestore

import "context"

type actorContextKey struct{}

// WithActor attaches the authenticated user's ID to the context. Create and
// update operations record it as created_by / updated_by on the record.
func WithActor(ctx context.Context, actorID string) context.Context {
	return context.WithValue(ctx, actorContextKey{}, actorID)
}

// ActorFrom extracts the actor ID attached with WithActor, if any.
func ActorFrom(ctx context.Context) (string, bool) {
	actorID, ok := ctx.Value(actorContextKey{}).(string)
	if !ok || actorID == "" {
		return "", false
	}
	return actorID, true
}
