package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"flashdeck.app/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// One in-memory sqlite database per connection; pin the pool to a
	// single connection so every query sees the same database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Category{}, &models.Card{}))
	return db
}

func createTestCategory(t *testing.T, db *gorm.DB, name string) *models.Category {
	t.Helper()
	category := models.Category{Name: name}
	require.NoError(t, db.Create(&category).Error)
	return &category
}

func createTestCard(t *testing.T, db *gorm.DB, front, back string, categoryID uint) *models.Card {
	t.Helper()
	card := models.Card{Front: front, Back: back, CategoryID: categoryID}
	require.NoError(t, db.Create(&card).Error)
	return &card
}
