package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"identity-service/app/domain"
	"identity-service/app/port"
	custommw "identity-service/app/rest/middleware"
)

// AuthHandler handles login, logout and session introspection.
type AuthHandler struct {
	authUsecase port.AuthUsecase
	sessions    port.SessionUsecase
	roles       port.RoleUsecase
	logger      *slog.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUsecase port.AuthUsecase, sessions port.SessionUsecase, roles port.RoleUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		sessions:    sessions,
		roles:       roles,
		logger:      logger,
	}
}

type loginRequest struct {
	Username string  `json:"username" validate:"required,username"`
	Password string  `json:"password" validate:"required,min=1,max=256"`
	TOTPCode *string `json:"totp_code,omitempty" validate:"omitempty,totp"`
	Admin    bool    `json:"admin,omitempty"`
}

type loginResponse struct {
	Token   string          `json:"token"`
	Session *domain.Session `json:"session"`
}

// Login opens a session for verified credentials. The session id is
// returned in the X-Session response header as well as the body; the
// signed authorization token only in the body. Rejections are a bare
// 401 so callers cannot probe which part of the credential was wrong.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	session, token, err := h.authUsecase.Login(c.Request().Context(), req.Username, req.Password, req.TOTPCode, req.Admin)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTOTPRequired):
			return c.JSON(http.StatusUnauthorized, DetailedErrorResponse{
				Error: "authentication failed",
				Code:  "TOTP_REQUIRED",
			})
		case errors.Is(err, domain.ErrAuthFailed):
			return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication failed"})
		default:
			h.logger.Error("login failed", "error", err)
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
		}
	}

	c.Response().Header().Set(custommw.SessionHeader, session.ID)
	return c.JSON(http.StatusOK, loginResponse{
		Token:   token,
		Session: session,
	})
}

// Logout deletes the session named in the path. Session ids are
// unforgeable, so possession of the id is the authorization.
func (h *AuthHandler) Logout(c echo.Context) error {
	sessionID := c.Param("id")
	if !domain.ValidID(sessionID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid session id"})
	}

	if err := h.sessions.Logout(c.Request().Context(), sessionID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "session not found"})
		}
		h.logger.Error("logout failed", "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}

	return c.NoContent(http.StatusNoContent)
}

type whoAmIResponse struct {
	IdentityID string                `json:"identity_id"`
	Username   string                `json:"username"`
	Admin      bool                  `json:"admin"`
	Roles      []domain.AccountRoles `json:"roles"`
}

// WhoAmI resolves the caller's session back to its identity and role
// grants.
func (h *AuthHandler) WhoAmI(c echo.Context) error {
	identity := custommw.SessionFrom(c)
	if identity == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	grants, err := h.roles.ResolveAll(c.Request().Context(), identity.IdentityID)
	if err != nil {
		h.logger.Error("failed to resolve role grants", "identity_id", identity.IdentityID, "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}

	return c.JSON(http.StatusOK, whoAmIResponse{
		IdentityID: identity.IdentityID,
		Username:   identity.Username,
		Admin:      identity.Admin,
		Roles:      grants,
	})
}

// ErrorResponse is the generic error body.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// DetailedErrorResponse carries a machine-readable code.
type DetailedErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}
