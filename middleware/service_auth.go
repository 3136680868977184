// ABOUTME: Verifies HS256 service tokens on internal endpoints
// ABOUTME: Accepts "Authorization: Bearer <jwt>" or the X-Service-Token header
package middleware

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"discussion-fetcher/config"
)

const serviceTokenHeader = "X-Service-Token"

type serviceContextKey struct{}

var (
	errMissingToken = errors.New("missing service token")
	errInvalidToken = errors.New("invalid service token")
)

// ServiceClaims are the claims carried by a service token. Subject names the caller.
type ServiceClaims struct {
	jwt.RegisteredClaims
}

// ServiceAuth validates service tokens issued for this service.
type ServiceAuth struct {
	secret []byte
	parser *jwt.Parser
	logger *slog.Logger
}

func NewServiceAuth(cfg config.AuthConfig, logger *slog.Logger) *ServiceAuth {
	if cfg.Secret == "" {
		logger.Warn("SERVICE_TOKEN_SECRET not set, service auth will deny all requests")
	}
	return &ServiceAuth{
		secret: []byte(cfg.Secret),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithIssuer(cfg.Issuer),
			jwt.WithAudience(cfg.Audience),
			jwt.WithExpirationRequired(),
		),
		logger: logger,
	}
}

// Require rejects requests without a valid service token with 401.
func (a *ServiceAuth) Require() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := a.verify(c.Request())
			if err != nil {
				a.logger.WarnContext(c.Request().Context(), "service token rejected",
					"path", c.Request().URL.Path,
					"error", err)
				if errors.Is(err, errMissingToken) {
					return echo.NewHTTPError(http.StatusUnauthorized, "missing service token")
				}
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid service token")
			}

			ctx := context.WithValue(c.Request().Context(), serviceContextKey{}, claims.Subject)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

func (a *ServiceAuth) verify(r *http.Request) (*ServiceClaims, error) {
	raw := bearerToken(r.Header.Get(echo.HeaderAuthorization))
	if raw == "" {
		raw = strings.TrimSpace(r.Header.Get(serviceTokenHeader))
	}
	if raw == "" {
		return nil, errMissingToken
	}
	if len(a.secret) == 0 {
		return nil, fmt.Errorf("%w: secret not configured", errInvalidToken)
	}

	claims := &ServiceClaims{}
	token, err := a.parser.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return a.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidToken, err)
	}
	if !token.Valid {
		return nil, errInvalidToken
	}
	return claims, nil
}

func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

// CallerFrom returns the subject of the verified service token, if any.
func CallerFrom(ctx context.Context) string {
	s, _ := ctx.Value(serviceContextKey{}).(string)
	return s
}
