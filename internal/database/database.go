package database

import (
	"os"

	"github.com/safecity/backend/internal/logger"
	"github.com/safecity/backend/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var DB *gorm.DB

// migrationOrder lists the tables in dependency order. Creation walks it
// forward, destructive rebuilds walk it backward.
var migrationOrder = []interface{}{
	&models.Role{},
	&models.User{},
	&models.Category{},
	&models.Incident{},
	&models.Notification{},
}

// Connect opens the SQLite database named by SAFECITY_DB and stores the
// handle in DB. The process exits if the file cannot be opened.
func Connect() {
	path := os.Getenv("SAFECITY_DB")
	if path == "" {
		path = "safecity.db"
	}

	db, err := Open(path)
	if err != nil {
		logger.Fatal("Failed to connect to database", map[string]interface{}{
			"path":  path,
			"error": err.Error(),
		})
	}

	DB = db
	logger.Info("Database connected", map[string]interface{}{"path": path})
}

// Open opens or creates a SQLite database at path. Foreign-key enforcement
// is switched on through the DSN so it is active on every connection before
// any other statement runs.
func Open(path string) (*gorm.DB, error) {
	dsn := path + "?_foreign_keys=on&_busy_timeout=5000"

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Error),
	})
	if err != nil {
		return nil, err
	}

	// SQLite supports a single writer; limit the pool so concurrent
	// callers queue instead of hitting SQLITE_BUSY.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	return db, nil
}

// Migrate creates the five tables in dependency order and seeds the
// reference rows. A failing statement is logged and migration moves on to
// the next table, so a failure can leave a partially created schema behind.
func Migrate(db *gorm.DB) error {
	var firstErr error
	for _, model := range migrationOrder {
		if err := db.AutoMigrate(model); err != nil {
			logger.WithError(err, "database").Error("Table migration failed")
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	if err := seedReferenceData(db); err != nil {
		logger.WithError(err, "database").Error("Reference data seeding failed")
		if firstErr == nil {
			firstErr = err
		}
	}

	return firstErr
}

// Rebuild drops all five tables in reverse dependency order and recreates
// them. Destructive: no data migration is attempted.
func Rebuild(db *gorm.DB) error {
	for i := len(migrationOrder) - 1; i >= 0; i-- {
		if err := db.Migrator().DropTable(migrationOrder[i]); err != nil {
			logger.WithError(err, "database").Error("Table drop failed")
			return err
		}
	}
	return Migrate(db)
}

// Wipe deletes every row from notifications, incidents, users and
// categories. Role rows are preserved. Used only for full resets.
func Wipe(db *gorm.DB) error {
	tables := []string{"notifications", "incidents", "users", "categories"}
	for _, table := range tables {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			logger.WithError(err, "database").Error("Table wipe failed")
			return err
		}
	}
	return nil
}

func seedReferenceData(db *gorm.DB) error {
	for _, name := range models.DefaultRoles {
		role := models.Role{Name: name}
		if err := db.Where("nom_role = ?", name).FirstOrCreate(&role).Error; err != nil {
			return err
		}
	}
	for _, name := range models.DefaultCategories {
		category := models.Category{Name: name}
		if err := db.Where("nom_categorie = ?", name).FirstOrCreate(&category).Error; err != nil {
			return err
		}
	}
	return nil
}
