package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"taskPlanner/models"
	"taskPlanner/repository"
)

// IdentityStore records a signed-in identity and returns the stored user.
type IdentityStore interface {
	Upsert(ctx context.Context, p repository.UpsertUserParams) (*models.User, error)
}

// InterceptorConfig configures NewUnaryAuthInterceptor.
type InterceptorConfig struct {
	Secret     string
	CookieName string
	Identities IdentityStore
	// PublicMethods run with optional authentication: a valid token still resolves the
	// user, a missing or invalid one is not an error.
	PublicMethods []string
	Now           func() time.Time
}

// NewUnaryAuthInterceptor returns a gRPC unary interceptor that validates the session token,
// upserts the identity (advancing lastSignedIn) and injects both the Principal and the
// resolved *models.User into the context.
func NewUnaryAuthInterceptor(cfg InterceptorConfig) grpc.UnaryServerInterceptor {
	public := make(map[string]struct{}, len(cfg.PublicMethods))
	for _, m := range cfg.PublicMethods {
		public[strings.TrimSpace(m)] = struct{}{}
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		_, optional := public[info.FullMethod]
		p, err := ParseFromMD(ctx, cfg.Secret, cfg.CookieName)
		if err != nil {
			if optional {
				return handler(ctx, req)
			}
			return nil, status.Errorf(codes.Unauthenticated, "auth error: %v", err)
		}
		u, err := resolveUser(ctx, cfg.Identities, p, now())
		if err != nil {
			if status.Code(err) == codes.Unavailable {
				// The token is valid but no user row can be loaded; RequireUser reports
				// Unavailable so handlers can fall back.
				return handler(context.WithValue(WithPrincipal(ctx, p), identityUnavailableKey{}, true), req)
			}
			return nil, err
		}
		return handler(WithUser(WithPrincipal(ctx, p), u), req)
	}
}

func resolveUser(ctx context.Context, ids IdentityStore, p *Principal, at time.Time) (*models.User, error) {
	if ids == nil {
		return nil, status.Error(codes.Internal, "identity store not configured")
	}
	params := repository.UpsertUserParams{OpenID: p.OpenID, LastSignedIn: &at}
	if p.Name != "" {
		params.Name = &p.Name
	}
	if p.Email != "" {
		params.Email = &p.Email
	}
	if p.LoginMethod != "" {
		params.LoginMethod = &p.LoginMethod
	}
	u, err := ids.Upsert(ctx, params)
	if err != nil {
		if errors.Is(err, repository.ErrStoreUnavailable) {
			log.Ctx(ctx).Warn().Str("open_id", p.OpenID).Msg("identity upsert skipped: store unavailable")
			return nil, status.Error(codes.Unavailable, "identity store unavailable")
		}
		log.Ctx(ctx).Error().Err(err).Str("open_id", p.OpenID).Msg("identity upsert failed")
		return nil, status.Errorf(codes.Internal, "upsert user: %v", err)
	}
	return u, nil
}

type identityUnavailableKey struct{}

// RequireUser ensures an authenticated, stored user is present in context. A caller with a
// valid session whose identity could not be loaded gets codes.Unavailable.
func RequireUser(ctx context.Context) (*models.User, error) {
	u, ok := UserFromContext(ctx)
	if ok {
		return u, nil
	}
	if _, signedIn := FromContext(ctx); signedIn {
		if down, _ := ctx.Value(identityUnavailableKey{}).(bool); down {
			return nil, status.Error(codes.Unavailable, "identity store unavailable")
		}
	}
	return nil, status.Error(codes.Unauthenticated, "please login")
}
