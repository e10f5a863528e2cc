package database

import (
	"flashdeck.app/configs/configslog"
	"flashdeck.app/database/migrations"
	"flashdeck.app/database/seeders"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Initialize runs migrations and/or seeders inside one transaction. Either
// both steps land or neither does.
func Initialize(db *gorm.DB, migrate bool, seed bool) {
	if !migrate && !seed {
		configslog.SLog.Info("Neither migrate nor seed requested, skipping database initialization.")
		return
	}

	tx := db.Begin()
	if tx.Error != nil {
		configslog.Log.Fatal("Database transaction could not be started", zap.Error(tx.Error))
		return
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			configslog.Log.Fatal("Database initialization panicked", zap.Any("panic_info", r))
		}
	}()

	configslog.SLog.Info("Database initialization starting...")

	if migrate {
		if err := RunMigrationsInOrder(tx); err != nil {
			configslog.Log.Error("Migration failed, rolling back", zap.Error(err))
			tx.Rollback()
			return
		}
	}

	if seed {
		if err := RunSeeders(tx); err != nil {
			configslog.Log.Error("Seeding failed, rolling back", zap.Error(err))
			tx.Rollback()
			return
		}
	}

	if err := tx.Commit().Error; err != nil {
		configslog.Log.Error("Database initialization commit failed", zap.Error(err))
		return
	}
	configslog.SLog.Info("Database initialization completed successfully")
}

// RunMigrationsInOrder migrates the tables respecting their FK order:
// users before categories, categories before cards.
func RunMigrationsInOrder(db *gorm.DB) error {
	if err := migrations.MigrateUsersTable(db); err != nil {
		return err
	}
	if err := migrations.MigrateCategoriesTable(db); err != nil {
		return err
	}
	if err := migrations.MigrateCardsTable(db); err != nil {
		return err
	}
	configslog.SLog.Info("All migrations ran successfully")
	return nil
}

// RunSeeders runs every idempotent seeder.
func RunSeeders(db *gorm.DB) error {
	if err := seeders.SeedStarterCategories(db); err != nil {
		return err
	}
	configslog.SLog.Info("All seeders ran successfully")
	return nil
}
