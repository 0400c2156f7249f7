package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"google.golang.org/grpc/metadata"

	"taskPlanner/models"
)

// DefaultCookieName is the session cookie set by the login flow.
const DefaultCookieName = "app_session_id"

// Principal represents the caller identified by a session token.
type Principal struct {
	OpenID      string
	Name        string
	Email       string
	LoginMethod string
}

type principalKey struct{}
type userKey struct{}

// WithPrincipal stores the principal in context.
func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// FromContext retrieves the principal from context (if any).
func FromContext(ctx context.Context) (*Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(*Principal)
	return p, ok && p != nil
}

// WithUser stores the resolved user in context.
func WithUser(ctx context.Context, u *models.User) context.Context {
	return context.WithValue(ctx, userKey{}, u)
}

// UserFromContext retrieves the resolved user from context (if any).
func UserFromContext(ctx context.Context) (*models.User, bool) {
	u, ok := ctx.Value(userKey{}).(*models.User)
	return u, ok && u != nil
}

type sessionClaims struct {
	OpenID      string `json:"openId"`
	Name        string `json:"name"`
	Email       string `json:"email,omitempty"`
	LoginMethod string `json:"loginMethod,omitempty"`
	jwt.RegisteredClaims
}

// SignSession issues an HS256 session token for the principal, valid for ttl.
func SignSession(secret string, p Principal, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", errors.New("jwt secret is empty")
	}
	if strings.TrimSpace(p.OpenID) == "" || strings.TrimSpace(p.Name) == "" {
		return "", errors.New("openId and name are required")
	}
	now := time.Now()
	c := sessionClaims{
		OpenID:      p.OpenID,
		Name:        p.Name,
		Email:       p.Email,
		LoginMethod: p.LoginMethod,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString([]byte(secret))
}

// ParseFromMD extracts and validates the session token from gRPC metadata. A Bearer
// authorization header takes precedence over the session cookie.
func ParseFromMD(ctx context.Context, secret, cookieName string) (*Principal, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return nil, errors.New("missing metadata")
	}
	if vals := md.Get("authorization"); len(vals) > 0 {
		parts := strings.SplitN(vals[0], " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return nil, errors.New("invalid authorization header")
		}
		return parseJWT(strings.TrimSpace(parts[1]), secret)
	}
	if tok := sessionCookie(md.Get("cookie"), cookieName); tok != "" {
		return parseJWT(tok, secret)
	}
	return nil, errors.New("missing session token")
}

func sessionCookie(headers []string, name string) string {
	if len(headers) == 0 {
		return ""
	}
	if name == "" {
		name = DefaultCookieName
	}
	req := http.Request{Header: http.Header{"Cookie": headers}}
	c, err := req.Cookie(name)
	if err != nil {
		return ""
	}
	return c.Value
}

// parseJWT validates and extracts claims from a session token.
func parseJWT(tokenStr string, secret string) (*Principal, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is empty")
	}
	if tokenStr == "" {
		return nil, errors.New("empty session token")
	}
	tok, err := jwt.ParseWithClaims(tokenStr, &sessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !tok.Valid {
		if err == nil {
			err = errors.New("invalid token")
		}
		return nil, err
	}
	c, _ := tok.Claims.(*sessionClaims)
	if c == nil || strings.TrimSpace(c.OpenID) == "" || strings.TrimSpace(c.Name) == "" {
		return nil, errors.New("invalid claims")
	}
	return &Principal{OpenID: c.OpenID, Name: c.Name, Email: c.Email, LoginMethod: c.LoginMethod}, nil
}
