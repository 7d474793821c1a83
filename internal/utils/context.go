// Package utils holds small helpers shared by the server and the CLI:
// request scoped context values, JSON responses, the REST client and JWT
// handling.
package utils

import (
	"context"
)

type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// AnonymousActor is recorded when a request carries no identity.
const AnonymousActor = "anonymous"

var (
	// ActorCtxKey holds the authenticated caller (the JWT subject).
	ActorCtxKey = contextKey("actor")
	// TraceIDCtxKey holds the request trace id.
	TraceIDCtxKey = contextKey("traceID")
)

// WithActor returns a copy of ctx carrying actor.
func WithActor(ctx context.Context, actor string) context.Context {
	return context.WithValue(ctx, ActorCtxKey, actor)
}

// GetActorFromContext returns the caller stored by the auth middleware, or
// AnonymousActor when there is none.
func GetActorFromContext(ctx context.Context) string {
	actor, ok := ctx.Value(ActorCtxKey).(string)
	if !ok || actor == "" {
		return AnonymousActor
	}
	return actor
}

// WithTraceID returns a copy of ctx carrying traceID.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDCtxKey, traceID)
}

// GetTraceIDFromContext returns the trace id, or "" when there is none.
func GetTraceIDFromContext(ctx context.Context) string {
	traceID, _ := ctx.Value(TraceIDCtxKey).(string)
	return traceID
}
