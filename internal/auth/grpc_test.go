package auth_test

import (
	"context"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"taskPlanner/internal/auth"
	"taskPlanner/internal/auth/authtest"
	"taskPlanner/internal/testutil"
	"taskPlanner/models"
	"taskPlanner/repository"
)

func TestUnaryAuthInterceptor(t *testing.T) {
	d := testutil.OpenInMemoryDB(t, "authinterceptor")
	users := repository.NewUserRepository(d, "open-owner")
	interceptor := auth.NewUnaryAuthInterceptor(auth.InterceptorConfig{
		Secret:        testSecret,
		Identities:    users,
		PublicMethods: []string{"/planner.v1.AuthService/Me"},
	})

	// Public method without a token runs anonymously.
	called := false
	_, err := interceptor(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: "/planner.v1.AuthService/Me"}, func(ctx context.Context, req any) (any, error) {
		called = true
		if _, ok := auth.UserFromContext(ctx); ok {
			t.Fatalf("expected no user on anonymous public call")
		}
		return nil, nil
	})
	if err != nil || !called {
		t.Fatalf("public handler err=%v called=%v", err, called)
	}

	// Protected method without a token is rejected before the handler runs.
	_, err = interceptor(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: "/planner.v1.TaskService/List"}, func(ctx context.Context, req any) (any, error) {
		t.Fatalf("handler must not run")
		return nil, nil
	})
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", err)
	}

	// Valid token: identity upserted and injected.
	tok := authtest.GenerateSessionToken(t, testSecret, "open-owner", "Owner")
	ctx := authtest.CtxWithBearer(context.Background(), tok)
	_, err = interceptor(ctx, nil, &grpc.UnaryServerInfo{FullMethod: "/planner.v1.TaskService/List"}, func(ctx context.Context, req any) (any, error) {
		u, err := auth.RequireUser(ctx)
		if err != nil {
			t.Fatalf("RequireUser: %v", err)
		}
		if u.OpenID != "open-owner" || u.Role != models.RoleAdmin || u.Name == nil || *u.Name != "Owner" {
			t.Fatalf("unexpected user: %+v", u)
		}
		if p, ok := auth.FromContext(ctx); !ok || p.Name != "Owner" {
			t.Fatalf("principal not injected: %+v", p)
		}
		return nil, nil
	})
	if err != nil {
		t.Fatalf("authenticated call: %v", err)
	}
	stored, err := users.GetByOpenID(context.Background(), "open-owner")
	if err != nil || stored == nil {
		t.Fatalf("identity not stored: %v", err)
	}
}

func TestUnaryAuthInterceptor_StoreUnavailable(t *testing.T) {
	interceptor := auth.NewUnaryAuthInterceptor(auth.InterceptorConfig{
		Secret:        testSecret,
		Identities:    repository.NewUserRepository(nil, ""),
		PublicMethods: []string{"/public"},
	})
	tok := authtest.GenerateSessionToken(t, testSecret, "open-x", "X")
	ctx := authtest.CtxWithBearer(context.Background(), tok)

	// A valid session reaches the handler with its principal, but RequireUser reports
	// Unavailable so read-only handlers can answer empty.
	called := false
	_, err := interceptor(ctx, nil, &grpc.UnaryServerInfo{FullMethod: "/private"}, func(ctx context.Context, req any) (any, error) {
		called = true
		if p, ok := auth.FromContext(ctx); !ok || p.OpenID != "open-x" {
			t.Fatalf("principal not injected: %+v", p)
		}
		if _, err := auth.RequireUser(ctx); status.Code(err) != codes.Unavailable {
			t.Fatalf("expected Unavailable from RequireUser, got %v", err)
		}
		return nil, nil
	})
	if err != nil || !called {
		t.Fatalf("private handler err=%v called=%v", err, called)
	}

	// Without a token the store outage does not matter.
	_, err = interceptor(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: "/private"}, func(ctx context.Context, req any) (any, error) {
		t.Fatalf("handler must not run")
		return nil, nil
	})
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", err)
	}

	_, err = interceptor(ctx, nil, &grpc.UnaryServerInfo{FullMethod: "/public"}, func(ctx context.Context, req any) (any, error) {
		if _, ok := auth.UserFromContext(ctx); ok {
			t.Fatalf("expected no user when store unavailable")
		}
		return nil, nil
	})
	if err != nil {
		t.Fatalf("public call in degraded mode: %v", err)
	}
}

func TestRequireUser(t *testing.T) {
	if _, err := auth.RequireUser(context.Background()); status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", err)
	}
	// A principal alone, without the outage flag, is still unauthenticated.
	ctx := auth.WithPrincipal(context.Background(), &auth.Principal{OpenID: "open-y", Name: "Y"})
	if _, err := auth.RequireUser(ctx); status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", err)
	}
	u := &models.User{ID: 7, OpenID: "open-y"}
	got, err := auth.RequireUser(auth.WithUser(ctx, u))
	if err != nil || got != u {
		t.Fatalf("RequireUser with user: %v %+v", err, got)
	}
}
