package auth_test

import (
	"context"
	"testing"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"taskPlanner/internal/auth"
	"taskPlanner/internal/auth/authtest"
)

const testSecret = "test-secret"

func TestParseFromMD_ValidBearer(t *testing.T) {
	tok := authtest.GenerateSessionToken(t, testSecret, "open-alice", "Alice")
	ctx := authtest.CtxWithBearer(context.Background(), tok)
	p, err := auth.ParseFromMD(ctx, testSecret, "")
	if err != nil {
		t.Fatalf("ParseFromMD: %v", err)
	}
	if p.OpenID != "open-alice" || p.Name != "Alice" {
		t.Fatalf("principal mismatch: %+v", p)
	}
}

func TestParseFromMD_SessionCookie(t *testing.T) {
	tok := authtest.GenerateSessionToken(t, testSecret, "open-bob", "Bob")
	ctx := authtest.CtxWithCookie(context.Background(), auth.DefaultCookieName, tok)
	p, err := auth.ParseFromMD(ctx, testSecret, auth.DefaultCookieName)
	if err != nil {
		t.Fatalf("ParseFromMD cookie: %v", err)
	}
	if p.OpenID != "open-bob" {
		t.Fatalf("principal mismatch: %+v", p)
	}

	// A different cookie name does not match.
	if _, err := auth.ParseFromMD(ctx, testSecret, "other_session"); err == nil {
		t.Fatalf("expected error for unknown cookie name")
	}
}

func TestParseFromMD_MissingHeader(t *testing.T) {
	if _, err := auth.ParseFromMD(context.Background(), testSecret, ""); err == nil {
		t.Fatalf("expected error for missing metadata")
	}
}

func TestParseJWT_WrongSecretAndClaims(t *testing.T) {
	tok := authtest.GenerateSessionToken(t, testSecret, "open-carol", "Carol")
	if _, err := auth.ParseJWT(tok, "wrong"); err == nil {
		t.Fatalf("expected error for wrong secret")
	}

	// A correctly signed token without identity claims is rejected.
	empty, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := auth.ParseJWT(empty, testSecret); err == nil {
		t.Fatalf("expected invalid claims error")
	}

	hs384, err := jwt.NewWithClaims(jwt.SigningMethodHS384, jwt.MapClaims{
		"openId": "open-carol", "name": "Carol", "exp": time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign hs384: %v", err)
	}
	if _, err := auth.ParseJWT(hs384, testSecret); err == nil {
		t.Fatalf("expected error for unexpected signing method")
	}
}

func TestSignSession_RoundTrip(t *testing.T) {
	tok, err := auth.SignSession(testSecret, auth.Principal{OpenID: "open-dan", Name: "Dan", Email: "dan@example.com", LoginMethod: "github"}, time.Hour)
	if err != nil {
		t.Fatalf("SignSession: %v", err)
	}
	p, err := auth.ParseJWT(tok, testSecret)
	if err != nil {
		t.Fatalf("parseJWT: %v", err)
	}
	if p.Email != "dan@example.com" || p.LoginMethod != "github" {
		t.Fatalf("claims not carried: %+v", p)
	}

	expired, err := auth.SignSession(testSecret, auth.Principal{OpenID: "open-dan", Name: "Dan"}, -time.Minute)
	if err != nil {
		t.Fatalf("SignSession expired: %v", err)
	}
	if _, err := auth.ParseJWT(expired, testSecret); err == nil {
		t.Fatalf("expected error for expired token")
	}
	if _, err := auth.SignSession("", auth.Principal{OpenID: "x", Name: "y"}, time.Hour); err == nil {
		t.Fatalf("expected error for empty secret")
	}
	if _, err := auth.SignSession(testSecret, auth.Principal{OpenID: "x"}, time.Hour); err == nil {
		t.Fatalf("expected error for missing name")
	}
}
