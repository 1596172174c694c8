package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Deveshkumar24/HygienaX-E-commerce-store/routes"
	"github.com/Deveshkumar24/HygienaX-E-commerce-store/seed"
	"github.com/Deveshkumar24/HygienaX-E-commerce-store/store"
)

func main() {
	log.Println("✅ Starting HygienaX storefront...")

	// Load environment variables
	_ = godotenv.Load()

	st := initStore()

	// One-shot catalog seeding: `hygienax seed`
	if len(os.Args) > 1 && os.Args[1] == "seed" {
		created, err := seed.Run(st)
		if err != nil {
			log.Fatalf("❌ Seeding failed: %v", err)
		}
		if created == 0 {
			log.Println("Database already contains products.")
		} else {
			log.Printf("✅ Seeded %d products", created)
		}
		return
	}

	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		secret = "change_this_secret"
		log.Println("⚠️ SESSION_SECRET not set, using an insecure default")
	}

	r := routes.New(st, []byte(secret), "templates/*.html")

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initStore connects to Postgres when one is configured and falls back to the
// in-memory store (pre-seeded, since it starts empty) for local runs.
func initStore() store.Store {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" && os.Getenv("DB_HOST") != "" {
		dsn = fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			os.Getenv("DB_HOST"), os.Getenv("DB_USER"), os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_NAME"), os.Getenv("DB_PORT"),
		)
	}

	if dsn == "" {
		log.Println("⚠️ No database configured, using the in-memory store")
		mem := store.NewMemory()
		if _, err := seed.Run(mem); err != nil {
			log.Fatalf("❌ Seeding in-memory store failed: %v", err)
		}
		return mem
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("❌ DB connection failed: %v", err)
	}

	gs := store.NewGorm(db)
	if err := gs.Migrate(); err != nil {
		log.Fatalf("❌ AutoMigrate failed: %v", err)
	}
	return gs
}
