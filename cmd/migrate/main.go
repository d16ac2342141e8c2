package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/lib/pq"

	"github.com/Skar710/CID/internal/config"
	"github.com/Skar710/CID/internal/database/migrations"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		log.Fatal("failed to connect:", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("failed to close connection: %v", err)
		}
	}()

	if err := db.Ping(); err != nil {
		log.Fatal("failed to ping database:", err)
	}

	sqlBytes, err := migrations.Files.ReadFile("schema.sql")
	if err != nil {
		log.Fatal("failed to read embedded SQL:", err)
	}

	fmt.Println("Running migration...")
	if _, err := db.Exec(string(sqlBytes)); err != nil {
		log.Fatal("migration failed:", err)
	}
	fmt.Println("Migration applied.")

	// List the record tables so a broken run is obvious.
	rows, err := db.Query(`
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = 'public'
		  AND table_name IN ('users', 'crimes', 'criminals', 'evidence',
		                     'forensic_reports', 'teams', 'intelligence_reports')
		ORDER BY table_name
	`)
	if err != nil {
		log.Fatal("failed to verify tables:", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Printf("failed to close rows: %v", err)
		}
	}()

	fmt.Println("Tables:")
	for rows.Next() {
		var table string
		if err := rows.Scan(&table); err != nil {
			log.Printf("failed to scan table name: %v", err)
			continue
		}
		fmt.Printf("  %s\n", table)
	}
	if err := rows.Err(); err != nil {
		log.Fatal("failed to read tables:", err)
	}
}
