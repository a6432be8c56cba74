package stores

import (
	"path/filepath"
	"testing"

	"github.com/safecity/backend/internal/database"
	"github.com/safecity/backend/internal/models"
	"gorm.io/gorm"
)

// setupTestDB opens a throwaway SQLite file with the full schema and
// reference rows in place.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Open(filepath.Join(t.TempDir(), "safecity_test.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	role, err := NewReferenceStore(db).RoleByName(models.RoleCitizen)
	if err != nil {
		t.Fatalf("Citizen role not seeded: %v", err)
	}

	user := &models.User{Name: "Testeur", Email: email, RoleID: role.ID}
	if err := NewUserStore(db).Create(user, "secret123"); err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	return user
}

func firstCategoryID(t *testing.T, db *gorm.DB) uint {
	t.Helper()

	categories, err := NewReferenceStore(db).Categories()
	if err != nil || len(categories) == 0 {
		t.Fatalf("Categories not seeded: %v", err)
	}
	return categories[0].ID
}

func strPtr(s string) *string { return &s }

func uintPtr(v uint) *uint { return &v }
