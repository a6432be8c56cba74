package database

import (
	"path/filepath"
	"testing"

	"github.com/safecity/backend/internal/models"
	"gorm.io/gorm"
)

func openMigrated(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "safecity_test.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("Migrate failed: %v", err)
	}
	return db
}

func TestMigrateCreatesTables(t *testing.T) {
	db := openMigrated(t)

	for _, table := range []string{"roles", "users", "categories", "incidents", "notifications"} {
		if !db.Migrator().HasTable(table) {
			t.Errorf("Expected table %q to exist", table)
		}
	}

	var roleCount, categoryCount int64
	db.Model(&models.Role{}).Count(&roleCount)
	db.Model(&models.Category{}).Count(&categoryCount)
	if roleCount != int64(len(models.DefaultRoles)) {
		t.Errorf("Expected %d seeded roles, got %d", len(models.DefaultRoles), roleCount)
	}
	if categoryCount != int64(len(models.DefaultCategories)) {
		t.Errorf("Expected %d seeded categories, got %d", len(models.DefaultCategories), categoryCount)
	}
}

func TestForeignKeysEnforced(t *testing.T) {
	db := openMigrated(t)

	// No user 9999 exists; the insert must be rejected at the engine level
	err := db.Create(&models.Incident{UserID: 9999, Status: models.StatusNew}).Error
	if err == nil {
		t.Error("Expected foreign key violation for orphan incident")
	}
}

func TestRebuildIsDestructive(t *testing.T) {
	db := openMigrated(t)

	role := models.Role{}
	if err := db.First(&role).Error; err != nil {
		t.Fatalf("Seeded role missing: %v", err)
	}
	user := models.User{Name: "Testeur", Email: "citizen@safecity.test", Password: "x", RoleID: role.ID}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("User create failed: %v", err)
	}

	if err := Rebuild(db); err != nil {
		t.Fatalf("Rebuild failed: %v", err)
	}

	var userCount int64
	db.Model(&models.User{}).Count(&userCount)
	if userCount != 0 {
		t.Errorf("Expected rebuild to drop user rows, got %d", userCount)
	}

	// The schema and reference rows come back
	var roleCount int64
	db.Model(&models.Role{}).Count(&roleCount)
	if roleCount != int64(len(models.DefaultRoles)) {
		t.Errorf("Expected reseeded roles after rebuild, got %d", roleCount)
	}
}

func TestWipePreservesRoles(t *testing.T) {
	db := openMigrated(t)

	role := models.Role{}
	if err := db.First(&role).Error; err != nil {
		t.Fatalf("Seeded role missing: %v", err)
	}
	user := models.User{Name: "Testeur", Email: "citizen@safecity.test", Password: "x", RoleID: role.ID}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("User create failed: %v", err)
	}

	if err := Wipe(db); err != nil {
		t.Fatalf("Wipe failed: %v", err)
	}

	var userCount, categoryCount, roleCount int64
	db.Model(&models.User{}).Count(&userCount)
	db.Model(&models.Category{}).Count(&categoryCount)
	db.Model(&models.Role{}).Count(&roleCount)

	if userCount != 0 || categoryCount != 0 {
		t.Errorf("Expected users and categories wiped, got %d users, %d categories", userCount, categoryCount)
	}
	if roleCount != int64(len(models.DefaultRoles)) {
		t.Errorf("Expected roles preserved, got %d", roleCount)
	}
}
