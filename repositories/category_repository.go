package repositories

import (
	"context"
	"errors"

	"flashdeck.app/configs/configslog"
	"flashdeck.app/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ICategoryRepository covers category persistence.
type ICategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	FindByID(ctx context.Context, id uint) (*models.Category, error)
	FindAll(ctx context.Context) ([]models.Category, error)
	FindAllByUserID(ctx context.Context, userID uint) ([]models.Category, error)
	Delete(ctx context.Context, id uint) error
}

// CategoryRepository implements ICategoryRepository on gorm.
type CategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a CategoryRepository. Passing a transaction
// handle scopes every call to that transaction.
func NewCategoryRepository(db *gorm.DB) ICategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) getDB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

// Create inserts a category. Constraint violations (duplicate name) surface
// as the driver error; the caller decides how to report them.
func (r *CategoryRepository) Create(ctx context.Context, category *models.Category) error {
	if category == nil {
		return errors.New("category to create cannot be nil")
	}
	return r.getDB(ctx).Create(category).Error
}

func (r *CategoryRepository) FindByID(ctx context.Context, id uint) (*models.Category, error) {
	if id == 0 {
		return nil, ErrNotFound
	}
	var category models.Category
	err := r.getDB(ctx).First(&category, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("CategoryRepository.FindByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) FindAll(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := r.getDB(ctx).Find(&categories).Error; err != nil {
		configslog.Log.Error("CategoryRepository.FindAll: DB error", zap.Error(err))
		return nil, err
	}
	return categories, nil
}

func (r *CategoryRepository) FindAllByUserID(ctx context.Context, userID uint) ([]models.Category, error) {
	var categories []models.Category
	err := r.getDB(ctx).Where("user_id = ?", userID).Find(&categories).Error
	if err != nil {
		configslog.Log.Error("CategoryRepository.FindAllByUserID: DB error", zap.Uint("user_id", userID), zap.Error(err))
		return nil, err
	}
	return categories, nil
}

// Delete removes the category row. ErrNotFound when no row matched.
func (r *CategoryRepository) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return ErrNotFound
	}
	result := r.getDB(ctx).Delete(&models.Category{}, id)
	if result.Error != nil {
		configslog.Log.Error("CategoryRepository.Delete: DB error", zap.Uint("id", id), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

var _ ICategoryRepository = (*CategoryRepository)(nil)
