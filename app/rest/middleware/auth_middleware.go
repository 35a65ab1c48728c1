package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"identity-service/app/domain"
	"identity-service/app/port"
)

// Context keys set by the middleware for downstream handlers.
const (
	ContextKeyClaims  = "token_claims"
	ContextKeySession = "session_identity"
	SessionHeader     = "X-Session"
)

// AuthMiddleware provides bearer-token and session authentication
// middleware.
type AuthMiddleware struct {
	verifier port.TokenVerifier
	sessions port.SessionUsecase
	logger   *slog.Logger
}

// NewAuthMiddleware creates a new auth middleware
func NewAuthMiddleware(verifier port.TokenVerifier, sessions port.SessionUsecase, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
		sessions: sessions,
		logger:   logger,
	}
}

// RequireToken verifies the Authorization bearer token and stores its
// claims in the request context. Every failure is a bare 401.
func (m *AuthMiddleware) RequireToken() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := m.verifier.VerifyBearer(c.Request().Header.Get(echo.HeaderAuthorization))
			if err != nil {
				m.logger.Debug("token verification failed", "error", err)
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			c.Set(ContextKeyClaims, claims)
			return next(c)
		}
	}
}

// RequireAnyRole gates a route on the token holding at least one of
// the required roles. It must run after RequireToken.
func (m *AuthMiddleware) RequireAnyRole(required ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := ClaimsFrom(c)
			if claims == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			if err := claims.RequireAnyRole(required...); err != nil {
				m.logger.Warn("role gate rejected request",
					"identity_id", claims.IdentityID,
					"path", c.Request().URL.Path)
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			return next(c)
		}
	}
}

// RequireAdmin gates a route on the token's admin claim. It must run
// after RequireToken.
func (m *AuthMiddleware) RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims := ClaimsFrom(c)
			if claims == nil || !claims.Admin {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			return next(c)
		}
	}
}

// RequireSession resolves the X-Session header to its identity and
// stores it in the request context. Expired sessions are
// indistinguishable from missing ones.
func (m *AuthMiddleware) RequireSession() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sessionID := c.Request().Header.Get(SessionHeader)
			if sessionID == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			identity, err := m.sessions.Resolve(c.Request().Context(), sessionID)
			if err != nil {
				if !errors.Is(err, domain.ErrNotFound) && !errors.Is(err, domain.ErrExpired) {
					m.logger.Error("session resolution failed", "error", err)
				}
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			c.Set(ContextKeySession, identity)
			return next(c)
		}
	}
}

// ClaimsFrom returns the verified token claims stored by
// RequireToken, or nil.
func ClaimsFrom(c echo.Context) *domain.TokenClaims {
	claims, _ := c.Get(ContextKeyClaims).(*domain.TokenClaims)
	return claims
}

// SessionFrom returns the session identity stored by RequireSession,
// or nil.
func SessionFrom(c echo.Context) *domain.SessionIdentity {
	identity, _ := c.Get(ContextKeySession).(*domain.SessionIdentity)
	return identity
}
