package main

import (
	"errors"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/safecity/backend/internal/database"
	"github.com/safecity/backend/internal/models"
	"github.com/safecity/backend/internal/stores"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	database.Connect()

	// Migrations seed the role and category reference rows
	log.Println("Running database migrations...")
	if err := database.Migrate(database.DB); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	if err := seedAdmin(); err != nil {
		log.Fatalf("Error seeding admin account: %v", err)
	}

	log.Println("Database seeding completed")
}

// seedAdmin creates the administrator account from ADMIN_EMAIL and
// ADMIN_PASSWORD. Idempotent: an already registered email is left alone.
func seedAdmin() error {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin account")
		return nil
	}

	userStore := stores.NewUserStore(database.DB)
	referenceStore := stores.NewReferenceStore(database.DB)

	role, err := referenceStore.RoleByName(models.RoleAdmin)
	if err != nil {
		return err
	}

	admin := models.User{
		Name:   "Administrateur",
		Email:  email,
		RoleID: role.ID,
	}
	if err := userStore.Create(&admin, password); err != nil {
		if errors.Is(err, stores.ErrEmailTaken) {
			log.Printf("Admin account %s already exists", email)
			return nil
		}
		return err
	}

	log.Printf("Admin account %s created", email)
	return nil
}
