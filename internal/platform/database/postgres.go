package database

import (
	"database/sql"
	"fmt"
	"log"
	"time"
)

type Config struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

func NewPostgresDB(cfg Config) (*sql.DB, error) {
	connStr := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.DBName)

	var db *sql.DB
	var err error
	maxRetries := 10

	for i := 1; i <= maxRetries; i++ {
		log.Printf("Connecting to database (Attempt %d/%d)...", i, maxRetries)
		db, err = sql.Open("postgres", connStr)
		if err == nil {
			err = db.Ping()
		}

		if err == nil {
			log.Println("Database connected successfully!")
			return db, nil
		}

		log.Printf("Database not ready yet. Waiting 2 seconds...")
		time.Sleep(2 * time.Second)
	}

	return nil, fmt.Errorf("failed to connect to database: %v", err)
}

// EnsureSchema creates the three store tables when they do not exist yet.
func EnsureSchema(db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS accounts (
			username TEXT PRIMARY KEY,
			password TEXT NOT NULL,
			role TEXT NOT NULL,
			email TEXT NOT NULL DEFAULT '',
			age TEXT NOT NULL DEFAULT '',
			status TEXT NOT NULL,
			name TEXT NOT NULL DEFAULT '',
			gender TEXT NOT NULL DEFAULT '',
			phone_number TEXT NOT NULL DEFAULT '',
			loyalty_points DOUBLE PRECISION NOT NULL DEFAULT 0,
			history JSONB NOT NULL DEFAULT '[]'
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id TEXT PRIMARY KEY,
			customer TEXT NOT NULL,
			ticket TEXT NOT NULL,
			quantity INT NOT NULL,
			total_price DOUBLE PRECISION NOT NULL,
			amount_paid DOUBLE PRECISION NOT NULL,
			payment_type TEXT NOT NULL,
			order_date TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS sales (
			day TEXT NOT NULL,
			ticket TEXT NOT NULL,
			quantity INT NOT NULL,
			PRIMARY KEY (day, ticket)
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}

	return nil
}
