package di

import (
	"fmt"
	"log/slog"

	"github.com/labstack/echo/v4"

	"identity-service/app/config"
	"identity-service/app/driver/accounts"
	"identity-service/app/driver/postgres"
	"identity-service/app/gateway"
	"identity-service/app/port"
	"identity-service/app/rest"
	"identity-service/app/token"
	"identity-service/app/usecase"
	"identity-service/app/utils/security"
)

// Container holds all dependencies for the application
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Drivers
	DB             *postgres.DB
	AccountsClient *accounts.Client

	// Gateways
	AccountGateway port.AccountGateway

	// Token handling
	TokenIssuer   port.TokenIssuer
	TokenVerifier port.TokenVerifier

	// Usecases
	AuthUsecase     port.AuthUsecase
	IdentityUsecase port.IdentityUsecase
	SessionUsecase  port.SessionUsecase
	ResetUsecase    port.ResetUsecase
	RoleUsecase     port.RoleUsecase
}

// NewContainer creates and initializes a new dependency injection container
func NewContainer(cfg *config.Config, logger *slog.Logger) (*Container, error) {
	container := &Container{
		Config: cfg,
		Logger: logger,
	}

	// Initialize database connection
	var err error
	container.DB, err = postgres.NewConnection(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Initialize accounts service client
	container.AccountsClient = accounts.NewClient(cfg.AccountsServiceURL, logger)
	container.AccountGateway = gateway.NewAccountGateway(container.AccountsClient, logger)

	// Initialize token issuer and verifier
	tokenConfig := token.Config{
		KeyFile:   cfg.TokenKeyFile,
		Algorithm: cfg.TokenAlgorithm,
		Issuer:    cfg.TokenIssuer,
		Audience:  cfg.TokenAudience,
		TTL:       cfg.TokenTTL,
		ClockSkew: cfg.TokenClockSkew,
	}
	container.TokenIssuer = token.NewIssuer(tokenConfig, logger)
	container.TokenVerifier = token.NewVerifier(tokenConfig, logger)

	// Initialize repositories
	identityRepository := postgres.NewIdentityRepository(container.DB.Pool(), logger)
	sessionRepository := postgres.NewSessionRepository(container.DB.Pool(), logger)
	roleRepository := postgres.NewRoleRepository(container.DB.Pool(), logger)

	// Initialize security components
	hasher, err := security.NewBcryptHasher(cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize password hasher: %w", err)
	}
	totpVerifier := security.NewTOTPVerifier(cfg.TOTPSkew)

	// Initialize usecases
	container.SessionUsecase = usecase.NewSessionUsecase(sessionRepository, cfg.TempSessionTTL, logger)
	container.AuthUsecase = usecase.NewAuthUsecase(
		identityRepository,
		roleRepository,
		container.SessionUsecase,
		hasher,
		totpVerifier,
		container.TokenIssuer,
		logger,
	)
	container.IdentityUsecase = usecase.NewIdentityUsecase(
		identityRepository,
		roleRepository,
		container.AccountGateway,
		container.SessionUsecase,
		container.AuthUsecase,
		hasher,
		totpVerifier,
		totpVerifier,
		container.TokenIssuer,
		logger,
	)
	container.ResetUsecase = usecase.NewResetUsecase(identityRepository, hasher, logger)
	container.RoleUsecase = usecase.NewRoleUsecase(roleRepository, logger)

	logger.Info("container initialized with full dependency stack")

	return container, nil
}

// CreateRouter creates and returns a fully configured Echo router
func (c *Container) CreateRouter() *echo.Echo {
	routerConfig := rest.RouterConfig{
		Logger:          c.Logger,
		AuthUsecase:     c.AuthUsecase,
		IdentityUsecase: c.IdentityUsecase,
		SessionUsecase:  c.SessionUsecase,
		ResetUsecase:    c.ResetUsecase,
		RoleUsecase:     c.RoleUsecase,
		TokenVerifier:   c.TokenVerifier,
		Database:        c.DB,
		Accounts:        c.AccountsClient,
		RateLimitRPS:    c.Config.RateLimitRPS,
		RateLimitBurst:  c.Config.RateLimitBurst,
	}

	return rest.NewRouter(routerConfig)
}

// Close closes all resources
func (c *Container) Close() error {
	if c.DB != nil {
		c.DB.Close()
	}

	c.Logger.Info("container closed")
	return nil
}
