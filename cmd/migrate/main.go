package main

import (
	"flag"
	"log"

	"github.com/joho/godotenv"
	"github.com/safecity/backend/internal/database"
)

func main() {
	rebuild := flag.Bool("rebuild", false, "drop every table and recreate the schema (destructive)")
	wipe := flag.Bool("wipe", false, "delete all rows except roles, keep the schema")
	flag.Parse()

	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	database.Connect()

	switch {
	case *rebuild:
		log.Println("Rebuilding schema (all data will be lost)...")
		if err := database.Rebuild(database.DB); err != nil {
			log.Fatalf("Rebuild failed: %v", err)
		}
	case *wipe:
		log.Println("Wiping data (roles are preserved)...")
		if err := database.Wipe(database.DB); err != nil {
			log.Fatalf("Wipe failed: %v", err)
		}
	default:
		log.Println("Running database migrations...")
		if err := database.Migrate(database.DB); err != nil {
			log.Fatalf("Migration failed: %v", err)
		}
	}

	log.Println("Done")
}
