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

// RoleHandler handles role grants and lookups.
type RoleHandler struct {
	roleUsecase port.RoleUsecase
	logger      *slog.Logger
}

// NewRoleHandler creates a new role handler
func NewRoleHandler(roleUsecase port.RoleUsecase, logger *slog.Logger) *RoleHandler {
	return &RoleHandler{
		roleUsecase: roleUsecase,
		logger:      logger,
	}
}

type grantRoleRequest struct {
	AccountID string `json:"account_id" validate:"required,identifier"`
	RoleID    uint   `json:"role_id" validate:"required"`
}

// GrantRole adds a role for the identity in the path under an
// account. Wildcard-account grants are refused for non-admin
// identities by the store.
func (h *RoleHandler) GrantRole(c echo.Context) error {
	identityID := c.Param("id")
	if !domain.ValidID(identityID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid identity id"})
	}

	var req grantRoleRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	err := h.roleUsecase.Grant(c.Request().Context(), identityID, req.AccountID, req.RoleID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrForbidden):
			return c.JSON(http.StatusForbidden, ErrorResponse{Error: "wildcard grants require an admin identity"})
		case errors.Is(err, domain.ErrNotFound):
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "identity or role not found"})
		default:
			h.logger.Error("role grant failed", "identity_id", identityID, "error", err)
			return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
		}
	}

	return c.NoContent(http.StatusNoContent)
}

type listRolesResponse struct {
	IdentityID string                `json:"identity_id"`
	Roles      []domain.AccountRoles `json:"roles"`
}

// ListRoles returns every grant the identity in the path holds. A
// non-admin token may only inspect its own identity.
func (h *RoleHandler) ListRoles(c echo.Context) error {
	identityID := c.Param("id")
	if !domain.ValidID(identityID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid identity id"})
	}

	claims := custommw.ClaimsFrom(c)
	if claims == nil || (!claims.Admin && claims.IdentityID != identityID) {
		return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
	}

	grants, err := h.roleUsecase.ResolveAll(c.Request().Context(), identityID)
	if err != nil {
		h.logger.Error("role lookup failed", "identity_id", identityID, "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}

	return c.JSON(http.StatusOK, listRolesResponse{
		IdentityID: identityID,
		Roles:      grants,
	})
}
