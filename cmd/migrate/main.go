// Package main provides a CLI tool for running database migrations.
// Usage: migrate up | down | version | force <version>
package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		fmt.Println("Error: DATABASE_URL environment variable is required")
		os.Exit(1)
	}

	migrationsPath := os.Getenv("MIGRATIONS_PATH")
	if migrationsPath == "" {
		migrationsPath = "migrations"
	}

	m, err := migrate.New("file://"+migrationsPath, dbURL)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	defer m.Close()

	command := "up"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	switch command {
	case "up":
		err = m.Up()
	case "down":
		err = m.Steps(-1)
	case "version":
		version, dirty, verr := m.Version()
		if verr != nil {
			if errors.Is(verr, migrate.ErrNilVersion) {
				fmt.Println("No migrations applied")
				return
			}
			fmt.Printf("Error: %v\n", verr)
			os.Exit(1)
		}
		fmt.Printf("Version: %d (dirty: %v)\n", version, dirty)
		return
	case "force":
		if len(os.Args) < 3 {
			fmt.Println("Error: force requires a version argument")
			os.Exit(1)
		}
		var version int
		version, err = strconv.Atoi(os.Args[2])
		if err != nil {
			fmt.Printf("Error: invalid version %q\n", os.Args[2])
			os.Exit(1)
		}
		err = m.Force(version)
	case "help", "--help", "-h":
		printUsage()
		return
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			fmt.Println("Database is up to date")
			return
		}
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Done")
}

func printUsage() {
	fmt.Println(`Stockyard Migration CLI

Usage:
  migrate <command>

Commands:
  up       Apply all pending migrations (default)
  down     Roll back the most recent migration
  version  Print the current migration version
  force    Set the migration version without running migrations
  help     Show this help

Environment Variables:
  DATABASE_URL     PostgreSQL connection string (required)
  MIGRATIONS_PATH  Directory with migration files (default: migrations)`)
}
