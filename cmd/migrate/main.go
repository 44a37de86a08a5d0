package main

import (
	"context"
	"log"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/ayursetu/ayur-hub/internal/config"
	"github.com/ayursetu/ayur-hub/internal/dbmigrate"
)

var commands = map[string]bool{"up": true, "status": true, "down": true}

func main() {
	if len(os.Args) < 2 || !commands[os.Args[1]] {
		log.Fatalf("usage: go run ./cmd/migrate [up|status|down]")
	}
	command := os.Args[1]

	sel, err := dbmigrate.SelectDatabaseURL(config.Load(), false)
	if err != nil {
		log.Fatal(err)
	}
	if sel.Warning != "" {
		log.Printf("WARN migrate: %s", sel.Warning)
	}

	log.Printf("migrate: command=%s using=%s", command, sel.Source)
	if err := dbmigrate.Run(context.Background(), command, sel.URL, dbmigrate.DefaultMigrationsDir); err != nil {
		log.Fatal(err)
	}
	log.Printf("migrate: %s completed successfully", command)
}
