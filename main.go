package main

import (
	"context"
	"log"

	"gobasket/internal/config"
	"gobasket/internal/container"
	"gobasket/internal/errors"
	"gobasket/internal/migration"
	"gobasket/ui"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

// initDatabase connects to PostgreSQL and brings the schema current
func initDatabase(cfg *config.Config) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", cfg.Database.URL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to database")
	}

	migrator := migration.NewRunner()
	if err := migrator.Run(context.Background(), db); err != nil {
		return nil, errors.Wrap(err, "database migration failed")
	}

	return db, nil
}

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := initDatabase(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	appContainer, err := container.New(cfg)
	if err != nil {
		log.Fatalf("Failed to create application container: %v", err)
	}
	defer appContainer.Close()

	if err := appContainer.InitWithDatabase(db); err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}

	// Bootstrap the default user so imports and runs have an owner
	if _, err := appContainer.UserRepo.GetOrCreateDefaultUser(context.Background()); err != nil {
		log.Fatalf("Failed to ensure default user exists: %v", err)
	}

	if cfg.Ops.Enabled {
		ops := ui.NewApp(db, appContainer.Logger, cfg.Ops.Port)
		go func() {
			if err := ops.Run(); err != nil {
				appContainer.Logger.Error("ops server stopped: %v", err)
			}
		}()
	}

	server := ui.NewServer(appContainer)
	if err := server.Run(); err != nil {
		log.Fatalf("API server stopped: %v", err)
	}
}
