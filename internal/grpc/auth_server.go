package grpcserver

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	plannerv1 "taskPlanner/api/planner/v1"
	"taskPlanner/internal/auth"
)

// AuthServer implements AuthService. Both methods are public.
type AuthServer struct {
	plannerv1.UnimplementedAuthServiceServer
	CookieName string
}

// Me returns the caller, or an empty response for anonymous callers.
func (s *AuthServer) Me(ctx context.Context, _ *plannerv1.MeRequest) (*plannerv1.MeResponse, error) {
	u, ok := auth.UserFromContext(ctx)
	if !ok {
		return &plannerv1.MeResponse{}, nil
	}
	return &plannerv1.MeResponse{User: toProtoUser(u)}, nil
}

// Logout clears the session cookie on the caller's side.
func (s *AuthServer) Logout(ctx context.Context, _ *plannerv1.LogoutRequest) (*plannerv1.LogoutResponse, error) {
	if err := grpc.SetHeader(ctx, metadata.Pairs("set-cookie", clearCookie(s.CookieName))); err != nil {
		// Outside a server stream (direct calls) there is no header to set.
		log.Ctx(ctx).Debug().Err(err).Msg("logout: set-cookie header not sent")
	}
	return &plannerv1.LogoutResponse{Success: true}, nil
}

func clearCookie(name string) string {
	if name == "" {
		name = auth.DefaultCookieName
	}
	c := &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	}
	return c.String()
}
