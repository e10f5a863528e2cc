package migrations

import (
	"flashdeck.app/configs/configslog"
	"flashdeck.app/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateCategoriesTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating categories table...")
	if err := db.AutoMigrate(&models.Category{}); err != nil {
		configslog.Log.Error("Failed to migrate categories table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Categories table migrated successfully")
	return nil
}
