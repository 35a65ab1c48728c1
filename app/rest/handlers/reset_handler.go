package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"identity-service/app/domain"
	"identity-service/app/port"
)

// ResetHandler handles the password-reset flow.
type ResetHandler struct {
	resetUsecase port.ResetUsecase
	logger       *slog.Logger
}

// NewResetHandler creates a new reset handler
func NewResetHandler(resetUsecase port.ResetUsecase, logger *slog.Logger) *ResetHandler {
	return &ResetHandler{
		resetUsecase: resetUsecase,
		logger:       logger,
	}
}

type requestResetRequest struct {
	Username string `json:"username" validate:"required,username"`
}

// RequestReset issues a reset token for the username. The response is
// 202 whether or not the username exists so the endpoint cannot be
// used to enumerate identities; the token travels out of band.
func (h *ResetHandler) RequestReset(c echo.Context) error {
	var req requestResetRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	email, err := h.resetUsecase.RequestReset(c.Request().Context(), req.Username)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrForbidden):
			// Swallowed. The caller learns nothing.
		default:
			h.logger.Error("reset request failed", "error", err)
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
		}
	} else {
		h.logger.Info("reset token ready for delivery", "email", email)
	}

	return c.NoContent(http.StatusAccepted)
}

type redeemResetRequest struct {
	ResetToken  string `json:"reset_token" validate:"required,identifier"`
	NewPassword string `json:"new_password" validate:"required,min=8,max=256"`
}

// RedeemReset consumes a reset token and sets the new password. An
// unknown and an expired token are both a bare 401; either way the
// token is dead afterwards.
func (h *ResetHandler) RedeemReset(c echo.Context) error {
	var req redeemResetRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	err := h.resetUsecase.Redeem(c.Request().Context(), req.ResetToken, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrExpired):
			return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "authentication failed"})
		default:
			h.logger.Error("reset redemption failed", "error", err)
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
		}
	}

	return c.NoContent(http.StatusNoContent)
}
