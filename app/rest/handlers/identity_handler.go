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

// IdentityHandler handles signup, password changes, temp passwords
// and TOTP enrollment.
type IdentityHandler struct {
	identityUsecase port.IdentityUsecase
	logger          *slog.Logger
}

// NewIdentityHandler creates a new identity handler
func NewIdentityHandler(identityUsecase port.IdentityUsecase, logger *slog.Logger) *IdentityHandler {
	return &IdentityHandler{
		identityUsecase: identityUsecase,
		logger:          logger,
	}
}

type signupRequest struct {
	Username string `json:"username" validate:"required,username"`
	Password string `json:"password" validate:"required,min=8,max=256"`
}

type signupResponse struct {
	IdentityID string `json:"identity_id"`
	Username   string `json:"username"`
}

// Signup creates an identity, provisions its account downstream and
// opens a first session, returned in the X-Session header.
func (h *IdentityHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	identity, session, err := h.identityUsecase.Signup(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return c.JSON(http.StatusConflict, ErrorResponse{Error: "username already taken"})
		}
		h.logger.Error("signup failed", "username", req.Username, "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}

	c.Response().Header().Set(custommw.SessionHeader, session.ID)
	return c.JSON(http.StatusCreated, signupResponse{
		IdentityID: identity.ID,
		Username:   identity.Username,
	})
}

type changePasswordRequest struct {
	Username    string  `json:"username" validate:"required,username"`
	OldPassword string  `json:"old_password" validate:"required,min=1,max=256"`
	NewPassword string  `json:"new_password" validate:"required,min=8,max=256"`
	TOTPCode    *string `json:"totp_code,omitempty" validate:"omitempty,totp"`
}

// ChangePassword rotates the password after a full re-authentication.
// Every session for the identity dies with the old password.
func (h *IdentityHandler) ChangePassword(c echo.Context) error {
	var req changePasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	err := h.identityUsecase.ChangePassword(c.Request().Context(), req.Username, req.OldPassword, req.NewPassword, req.TOTPCode)
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
			h.logger.Error("password change failed", "error", err)
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
		}
	}

	return c.NoContent(http.StatusNoContent)
}

type tempPasswordRequest struct {
	TempPassword string `json:"temp_password" validate:"required,min=8,max=256"`
}

// IssueTempPassword stores a short-lived one-time secondary
// credential for the identity in the path. Admin identities are
// excluded by policy.
func (h *IdentityHandler) IssueTempPassword(c echo.Context) error {
	identityID := c.Param("id")
	if !domain.ValidID(identityID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid identity id"})
	}

	var req tempPasswordRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	err := h.identityUsecase.IssueTempPassword(c.Request().Context(), identityID, req.TempPassword)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "identity not found"})
		case errors.Is(err, domain.ErrForbidden):
			return c.JSON(http.StatusForbidden, ErrorResponse{Error: "temp passwords are not issued for this identity"})
		default:
			h.logger.Error("temp password issue failed", "identity_id", identityID, "error", err)
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
		}
	}

	return c.NoContent(http.StatusNoContent)
}

type enrollTOTPResponse struct {
	Secret string `json:"secret"`
}

// EnrollTOTP generates a fresh TOTP secret for the caller's identity.
// Enforcement stays off until the secret is confirmed.
func (h *IdentityHandler) EnrollTOTP(c echo.Context) error {
	identity := custommw.SessionFrom(c)
	if identity == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	secret, err := h.identityUsecase.EnrollTOTP(c.Request().Context(), identity.IdentityID, identity.Username)
	if err != nil {
		h.logger.Error("totp enrollment failed", "identity_id", identity.IdentityID, "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}

	return c.JSON(http.StatusOK, enrollTOTPResponse{Secret: secret})
}

type activateTOTPRequest struct {
	Code string `json:"code" validate:"required,totp"`
}

// ActivateTOTP turns enforcement on for the caller's identity once a
// valid code proves the authenticator holds the enrolled secret.
func (h *IdentityHandler) ActivateTOTP(c echo.Context) error {
	identity := custommw.SessionFrom(c)
	if identity == nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	var req activateTOTPRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	err := h.identityUsecase.ActivateTOTP(c.Request().Context(), identity.IdentityID, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAuthFailed):
			return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication failed"})
		case errors.Is(err, domain.ErrNotFound):
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "no enrolled secret"})
		default:
			h.logger.Error("totp activation failed", "identity_id", identity.IdentityID, "error", err)
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
		}
	}

	return c.NoContent(http.StatusNoContent)
}
