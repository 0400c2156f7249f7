// Package authtest provides session helpers for tests that call authenticated RPCs.
package authtest

import (
	"context"
	"testing"
	"time"

	"google.golang.org/grpc/metadata"

	"taskPlanner/internal/auth"
)

// GenerateSessionToken signs a one-hour session token with auth.SignSession.
func GenerateSessionToken(t *testing.T, secret, openID, name string) string {
	t.Helper()
	s, err := auth.SignSession(secret, auth.Principal{OpenID: openID, Name: name}, time.Hour)
	if err != nil {
		t.Fatalf("sign session: %v", err)
	}
	return s
}

// CtxWithBearer returns a context carrying an incoming authorization header with the token.
func CtxWithBearer(ctx context.Context, token string) context.Context {
	md := metadata.Pairs("authorization", "Bearer "+token)
	return metadata.NewIncomingContext(ctx, md)
}

// CtxWithCookie returns a context carrying an incoming cookie header with the session token.
func CtxWithCookie(ctx context.Context, cookieName, token string) context.Context {
	md := metadata.Pairs("cookie", "theme=dark; "+cookieName+"="+token)
	return metadata.NewIncomingContext(ctx, md)
}
