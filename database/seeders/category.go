package seeders

import (
	"errors"

	"flashdeck.app/configs/configslog"
	"flashdeck.app/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

var starterCategories = []string{"General"}

// SeedStarterCategories inserts the starter categories once. Names that
// already exist are left untouched, so reseeding is safe.
func SeedStarterCategories(db *gorm.DB) error {
	for _, name := range starterCategories {
		var existing models.Category
		err := db.Where("name = ?", name).First(&existing).Error
		if err == nil {
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			configslog.Log.Error("Starter category lookup failed", zap.String("name", name), zap.Error(err))
			return err
		}
		if err := db.Create(&models.Category{Name: name}).Error; err != nil {
			configslog.Log.Error("Starter category could not be created", zap.String("name", name), zap.Error(err))
			return err
		}
		configslog.SLog.Infof("Starter category seeded: %s", name)
	}
	return nil
}
