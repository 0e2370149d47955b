package main

import (
	"context"
	"flag"
	"log"
	"os"

	"gobasket/adapters/postgres"
	"gobasket/internal/migration"
	"gobasket/internal/testkit"
	"gobasket/models"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

// seed loads a deterministic synthetic transaction set so mining has data
// to chew on straight after first boot
func main() {
	count := flag.Int("count", 200, "number of transactions to generate")
	seed := flag.Int64("seed", 42, "generator seed")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	db, err := sqlx.Connect("postgres", databaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	if err := migration.NewRunner().Run(ctx, db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	userRepo := postgres.NewUserRepository(db)
	txRepo := postgres.NewTransactionRepository(db)

	user, err := userRepo.GetOrCreateDefaultUser(ctx)
	if err != nil {
		log.Fatalf("Failed to get/create default user: %v", err)
	}

	cfg := testkit.DefaultBasketConfig()
	cfg.BasketCount = *count
	cfg.Seed = *seed
	generator := testkit.NewBasketGenerator(cfg)

	records := generator.GenerateRecords()
	txs := make([]*models.Transaction, 0, len(records))
	for _, record := range records {
		tx := &models.Transaction{
			ExternalID: record.ExternalID,
			CreatedBy:  user.ID,
		}
		for _, line := range record.Items {
			tx.Items = append(tx.Items, models.TransactionItem{
				ItemName: line.ItemName,
				Quantity: line.Quantity,
			})
		}
		txs = append(txs, tx)
	}

	if err := txRepo.CreateBatch(ctx, txs); err != nil {
		log.Fatalf("Failed to insert transactions: %v", err)
	}
	log.Printf("Seeded %d transactions for user %s", len(txs), user.ID)
}
