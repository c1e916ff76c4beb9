package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Applies the SQL migrations in migrations/ to the configured database.
//
//	go run ./cmd/migrate --migrations-path migrations
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("WARNING: Could not find or load .env file. Relying on system environment variables.")
	}

	migrationsPath := pflag.StringP("migrations-path", "m", "migrations", "path to migration files")
	pflag.Parse()

	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Println("DB_DSN environment variable is not set")
		os.Exit(2)
	}

	m, err := migrate.New(
		fmt.Sprintf("file://%s", *migrationsPath),
		fmt.Sprintf("mysql://%s", dsn),
	)
	if err != nil {
		log.Printf("failed to create migrator: %v", err)
		os.Exit(2)
	}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Println("no migrations to apply")
			return
		}
		log.Printf("failed to migrate: %v", err)
		os.Exit(2)
	}
	log.Println("migrations applied")
}
