package rest

import (
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"identity-service/app/port"
	"identity-service/app/rest/handlers"
	custommw "identity-service/app/rest/middleware"
	"identity-service/app/utils/validator"
)

// RouterConfig holds router configuration
type RouterConfig struct {
	Logger          *slog.Logger
	AuthUsecase     port.AuthUsecase
	IdentityUsecase port.IdentityUsecase
	SessionUsecase  port.SessionUsecase
	ResetUsecase    port.ResetUsecase
	RoleUsecase     port.RoleUsecase
	TokenVerifier   port.TokenVerifier
	Database        handlers.Pinger
	Accounts        handlers.Pinger
	RateLimitRPS    float64
	RateLimitBurst  int
}

// echoValidator adapts the service validator to echo's interface.
type echoValidator struct {
	validator *validator.Validator
}

func (v *echoValidator) Validate(i interface{}) error {
	return v.validator.Validate(i)
}

// NewRouter creates and configures the Echo router
func NewRouter(config RouterConfig) *echo.Echo {
	e := echo.New()

	e.HideBanner = true
	e.Validator = &echoValidator{validator: validator.New()}

	// Create handlers
	authHandler := handlers.NewAuthHandler(config.AuthUsecase, config.SessionUsecase, config.RoleUsecase, config.Logger)
	identityHandler := handlers.NewIdentityHandler(config.IdentityUsecase, config.Logger)
	resetHandler := handlers.NewResetHandler(config.ResetUsecase, config.Logger)
	roleHandler := handlers.NewRoleHandler(config.RoleUsecase, config.Logger)
	healthHandler := handlers.NewHealthHandler(config.Database, config.Accounts, config.Logger)

	// Create middleware
	authMiddleware := custommw.NewAuthMiddleware(config.TokenVerifier, config.SessionUsecase, config.Logger)
	rateLimiter := custommw.NewRateLimiter(config.RateLimitRPS, config.RateLimitBurst)

	// Global middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(rateLimiter.RateLimit())

	// Health endpoints (no auth required)
	e.GET("/health", healthHandler.HealthCheck)

	v1 := e.Group("/v1")
	v1.GET("/ready", healthHandler.ReadinessCheck)
	v1.GET("/live", healthHandler.LivenessCheck)

	// Authentication endpoints
	auth := v1.Group("/auth")

	// Public: signup, login, logout, password reset, password change
	auth.POST("/identities", identityHandler.Signup)
	auth.POST("/sessions", authHandler.Login)
	auth.DELETE("/sessions/:id", authHandler.Logout)
	auth.POST("/reset", resetHandler.RequestReset)
	auth.PUT("/reset", resetHandler.RedeemReset)
	auth.PUT("/password", identityHandler.ChangePassword)

	// Session-bound: introspection and TOTP enrollment
	auth.GET("/whoami", authHandler.WhoAmI, authMiddleware.RequireSession())
	auth.POST("/totp", identityHandler.EnrollTOTP, authMiddleware.RequireSession())
	auth.PUT("/totp", identityHandler.ActivateTOTP, authMiddleware.RequireSession())

	// Token-bound: identity administration
	identities := v1.Group("/identities")
	identities.Use(authMiddleware.RequireToken())
	identities.GET("/:id/roles", roleHandler.ListRoles)
	identities.POST("/:id/roles", roleHandler.GrantRole, authMiddleware.RequireAdmin())
	identities.POST("/:id/temp-password", identityHandler.IssueTempPassword, authMiddleware.RequireAdmin())

	return e
}
