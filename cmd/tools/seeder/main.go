package main

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	dbfs "github.com/noah-isme/backend-kasir/db"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	runMigrations(dbURL)

	db, err := sql.Open("postgres", dbURL)
	if err != nil {
		log.Fatalf("Failed to open DB: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping DB: %v", err)
	}

	seedProducts(db)
	seedOffers(db)

	log.Println("Seeding completed successfully!")
}

func runMigrations(dbURL string) {
	source, err := iofs.New(dbfs.MigrationsFS, "migrations")
	if err != nil {
		log.Fatalf("Failed to load migrations: %v", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", source, dbURL)
	if err != nil {
		log.Fatalf("Failed to initialise migrations: %v", err)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Fatalf("Failed to apply migrations: %v", err)
	}
	log.Println("Migrations applied")
}

func seedProducts(db *sql.DB) {
	products := []struct {
		Name  string
		Unit  string
		Price float64
	}{
		{"toothbrush", "each", 0.99},
		{"toothpaste", "each", 1.79},
		{"rice", "each", 2.49},
		{"apples", "kilo", 1.99},
		{"tomatoes", "kilo", 0.69},
		{"cherry tomatoes", "each", 0.69},
		{"bananas", "kilo", 1.49},
		{"milk", "each", 1.19},
		{"bread", "each", 1.39},
		{"eggs", "each", 2.29},
	}

	fmt.Println("Seeding Products...")
	for _, p := range products {
		_, err := db.Exec(`
			INSERT INTO products (name, unit, price)
			VALUES ($1, $2, $3)
			ON CONFLICT (name, unit) DO UPDATE SET price = EXCLUDED.price, updated_at = now();
		`, p.Name, p.Unit, p.Price)
		if err != nil {
			log.Printf("Failed to seed product %s: %v", p.Name, err)
		}
	}
}

func seedOffers(db *sql.DB) {
	offers := []struct {
		ProductName string
		ProductUnit string
		OfferType   string
		Argument    float64
	}{
		{"toothbrush", "each", "three_for_two", 0},
		{"cherry tomatoes", "each", "two_for_amount", 0.99},
		{"toothpaste", "each", "five_for_amount", 7.49},
		{"rice", "each", "percent_off", 10},
		{"apples", "kilo", "percent_off", 20},
	}

	fmt.Println("Seeding Offers...")
	for _, o := range offers {
		_, err := db.Exec(`
			INSERT INTO offers (product_name, product_unit, offer_type, argument)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (product_name, product_unit) DO UPDATE SET offer_type = EXCLUDED.offer_type, argument = EXCLUDED.argument;
		`, o.ProductName, o.ProductUnit, o.OfferType, o.Argument)
		if err != nil {
			log.Printf("Failed to seed offer for %s: %v", o.ProductName, err)
		}
	}
}
