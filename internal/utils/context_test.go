// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestActorCtxKey(t *testing.T) {
	if ActorCtxKey.String() != "actor" {
		t.Errorf("expected 'actor', got '%s'", ActorCtxKey.String())
	}
}

func TestGetActorFromContext_Success(t *testing.T) {
	ctx := WithActor(context.Background(), "alice")

	if actor := GetActorFromContext(ctx); actor != "alice" {
		t.Errorf("expected actor=alice, got %s", actor)
	}
}

func TestGetActorFromContext_Missing(t *testing.T) {
	if actor := GetActorFromContext(context.Background()); actor != AnonymousActor {
		t.Errorf("expected %s, got %s", AnonymousActor, actor)
	}
}

func TestGetActorFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), ActorCtxKey, 42)

	if actor := GetActorFromContext(ctx); actor != AnonymousActor {
		t.Errorf("expected %s for wrong type, got %s", AnonymousActor, actor)
	}
}

func TestGetActorFromContext_Empty(t *testing.T) {
	ctx := WithActor(context.Background(), "")

	if actor := GetActorFromContext(ctx); actor != AnonymousActor {
		t.Errorf("expected %s for empty actor, got %s", AnonymousActor, actor)
	}
}

func TestTraceID_RoundTrip(t *testing.T) {
	ctx := WithTraceID(context.Background(), "trace-1")

	if got := GetTraceIDFromContext(ctx); got != "trace-1" {
		t.Errorf("expected trace-1, got %s", got)
	}
	if got := GetTraceIDFromContext(context.Background()); got != "" {
		t.Errorf("expected empty trace id, got %s", got)
	}
}
