package container

import (
	"context"
	"fmt"
	"time"

	"gobasket/adapters/excel"
	"gobasket/adapters/mining/engine"
	"gobasket/adapters/postgres"
	"gobasket/app"
	"gobasket/internal"
	"gobasket/internal/config"
	"gobasket/ports"

	"github.com/jmoiron/sqlx"
)

// Container holds all application dependencies and manages their lifecycle
type Container struct {
	Config *config.Config
	Logger *internal.Logger

	// Infrastructure
	DB *sqlx.DB

	// Repositories (data access layer)
	UserRepo        ports.UserRepository
	ItemRepo        ports.ItemRepository
	TransactionRepo ports.TransactionRepository
	ResultRepo      ports.MiningResultRepository

	// Mining core
	BasketSource ports.BasketSource
	Registry     ports.MinerRegistry
	Rules        ports.RuleGenerator

	// Application services
	MiningService     *app.MiningService
	ComparisonService *app.ComparisonService
	BenchmarkService  *app.BenchmarkService
	ImportService     *app.ImportService
}

// New creates a new dependency injection container
func New(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	return &Container{
		Config: cfg,
		Logger: internal.NewDefaultLogger(),
	}, nil
}

// InitWithDatabase initializes components that require database access
func (c *Container) InitWithDatabase(db *sqlx.DB) error {
	if db == nil {
		return fmt.Errorf("database connection cannot be nil")
	}
	c.DB = db

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}

	db.SetMaxOpenConns(c.Config.Database.MaxOpenConns)
	db.SetMaxIdleConns(c.Config.Database.MaxIdleConns)
	db.SetConnMaxLifetime(c.Config.Database.ConnMaxLifetime)

	// Repositories
	c.UserRepo = postgres.NewUserRepository(db)
	c.ItemRepo = postgres.NewItemRepository(db)
	c.TransactionRepo = postgres.NewTransactionRepository(db)
	c.ResultRepo = postgres.NewMiningResultRepository(db)
	c.BasketSource = postgres.NewBasketSource(c.TransactionRepo)

	// Mining core
	c.Registry = engine.NewRegistry(c.Config.Mining.MaxItemsetSize)
	c.Rules = engine.NewRuleGenerator()

	// Services
	c.MiningService = app.NewMiningService(c.Registry, c.Rules, c.BasketSource, c.ResultRepo, c.Logger)
	c.MiningService.RunTimeout = c.Config.Mining.RunTimeout
	c.MiningService.MaxBaskets = c.Config.Mining.MaxBaskets
	c.ComparisonService = app.NewComparisonService(c.MiningService, c.BasketSource, c.Logger)
	c.BenchmarkService = app.NewBenchmarkService(c.Registry, c.Rules, c.BasketSource, c.Logger)
	c.BenchmarkService.Rounds = c.Config.Mining.BenchmarkRounds

	reader := excel.NewTransactionReader(c.Config.Import.MaxRows)
	c.ImportService = app.NewImportService(reader, c.TransactionRepo, c.Logger)

	return nil
}

// Close releases held resources
func (c *Container) Close() error {
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}
