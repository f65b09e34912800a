package cmd

import (
	"log/slog"
	"time"

	"blip/internal/adapters/out/password"
	"blip/internal/adapters/out/postgres"
	"blip/internal/adapters/out/postgres/userrepo"
	"blip/internal/adapters/out/token"
	"blip/internal/core/application/usecases/commands"
	"blip/internal/core/application/usecases/queries"
	"blip/internal/core/ports"
	"blip/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires every component of the application from the database
// connection and the immutable configuration. Handlers are built on demand;
// the token service is shared because the HTTP middleware and the login
// handler must agree on the signing secret.
type CompositionRoot struct {
	config       Config
	gormDB       *gorm.DB
	uowFactory   *postgres.GormUnitOfWorkFactory
	tokenService *token.JWTTokenService
}

// NewCompositionRoot creates the composition root from the loaded
// configuration and an open database connection.
func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		config:       config,
		gormDB:       gormDB,
		uowFactory:   postgres.NewGormUnitOfWorkFactory(gormDB),
		tokenService: token.NewJWTTokenService(config.JWTSecret, config.JWTExpiresIn),
	}
}

// TokenService returns the shared token signer/verifier.
func (c *CompositionRoot) TokenService() ports.TokenService {
	return c.tokenService
}

// CreateLoginCommandHandler builds the credential-verification handler.
func (c *CompositionRoot) CreateLoginCommandHandler() commands.LoginCommandHandler {
	return commands.NewLoginCommandHandler(
		userrepo.NewGormUserRepository(c.gormDB),
		password.NewBcryptVerifier(),
		c.tokenService,
	)
}

// CreateCreateOrderCommandHandler builds the order-creation handler.
func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

// CreateChangeOrderStatusCommandHandler builds the status-transition handler.
func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f)
}

// CreateGetAllOrdersQueryHandler builds the order listing query handler.
func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

// CreateJobManager builds the background job manager.
func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	maxAge := c.config.StalePendingMaxAge
	if maxAge <= 0 {
		maxAge = time.Hour
	}
	return jobs.NewJobManager(
		queries.NewCountStalePendingOrdersQueryHandler(c.gormDB),
		maxAge,
		logger,
	)
}

// FuncOrderUoWFactory adapts a closure to the OrderUoWFactory interface.
type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
