package stores

import (
	"errors"
	"testing"

	"github.com/safecity/backend/internal/database"
	"github.com/safecity/backend/internal/models"
)

func TestRolesSeeded(t *testing.T) {
	db := setupTestDB(t)
	store := NewReferenceStore(db)

	roles, err := store.Roles()
	if err != nil {
		t.Fatalf("Roles failed: %v", err)
	}
	if len(roles) != len(models.DefaultRoles) {
		t.Fatalf("Expected %d roles, got %d", len(models.DefaultRoles), len(roles))
	}
	// Seeding order is id order
	for i, name := range models.DefaultRoles {
		if roles[i].Name != name {
			t.Errorf("Expected role %q at position %d, got %q", name, i, roles[i].Name)
		}
	}
}

func TestCategoriesSeededAndOrdered(t *testing.T) {
	db := setupTestDB(t)
	store := NewReferenceStore(db)

	categories, err := store.Categories()
	if err != nil {
		t.Fatalf("Categories failed: %v", err)
	}
	if len(categories) != len(models.DefaultCategories) {
		t.Fatalf("Expected %d categories, got %d", len(models.DefaultCategories), len(categories))
	}
	// Listing is ordered by name
	for i := 1; i < len(categories); i++ {
		if categories[i-1].Name > categories[i].Name {
			t.Errorf("Categories not ordered by name: %q before %q", categories[i-1].Name, categories[i].Name)
		}
	}
}

func TestSeedingIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	store := NewReferenceStore(db)

	// setupTestDB already migrated once; a second run must not duplicate rows
	if err := database.Migrate(db); err != nil {
		t.Fatalf("Second migration failed: %v", err)
	}

	roles, err := store.Roles()
	if err != nil {
		t.Fatalf("Roles failed: %v", err)
	}
	categories, err := store.Categories()
	if err != nil {
		t.Fatalf("Categories failed: %v", err)
	}

	if len(roles) != len(models.DefaultRoles) || len(categories) != len(models.DefaultCategories) {
		t.Errorf("Reference rows duplicated: %d roles, %d categories", len(roles), len(categories))
	}
}

func TestRoleLookups(t *testing.T) {
	db := setupTestDB(t)
	store := NewReferenceStore(db)

	role, err := store.RoleByName(models.RoleCitizen)
	if err != nil {
		t.Fatalf("RoleByName failed: %v", err)
	}

	byID, err := store.RoleByID(role.ID)
	if err != nil {
		t.Fatalf("RoleByID failed: %v", err)
	}
	if byID.Name != models.RoleCitizen {
		t.Errorf("Expected %q, got %q", models.RoleCitizen, byID.Name)
	}

	if _, err := store.RoleByID(9999); !errors.Is(err, ErrRoleNotFound) {
		t.Errorf("Expected ErrRoleNotFound, got %v", err)
	}
	if _, err := store.CategoryByID(9999); !errors.Is(err, ErrCategoryNotFound) {
		t.Errorf("Expected ErrCategoryNotFound, got %v", err)
	}
}
