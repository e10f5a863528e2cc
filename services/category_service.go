package services

import (
	"context"
	"errors"
	"strings"

	"flashdeck.app/configs/configslog"
	"flashdeck.app/models"
	"flashdeck.app/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CategoryServiceError carries category service failures.
type CategoryServiceError string

func (e CategoryServiceError) Error() string { return string(e) }

const (
	ErrCategoryNotFound       CategoryServiceError = "category not found"
	ErrCategoryNameRequired   CategoryServiceError = "category name is required"
	ErrCategoryCreationFailed CategoryServiceError = "category creation failed"
	ErrCategoryDeletionFailed CategoryServiceError = "category deletion failed"
)

// ICategoryService covers category operations.
type ICategoryService interface {
	CreateCategory(ctx context.Context, name string, userID *uint) (*models.Category, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	DeleteCategory(ctx context.Context, id uint) error
}

// CategoryService implements ICategoryService.
type CategoryService struct {
	repo repositories.ICategoryRepository
	db   *gorm.DB
}

// NewCategoryService creates a CategoryService bound to db.
func NewCategoryService(db *gorm.DB) ICategoryService {
	return &CategoryService{
		repo: repositories.NewCategoryRepository(db),
		db:   db,
	}
}

// CreateCategory inserts a category. Any constraint violation, including a
// duplicate name, is reported as ErrCategoryCreationFailed; the failed insert
// is rolled back by its implicit transaction.
func (s *CategoryService) CreateCategory(ctx context.Context, name string, userID *uint) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrCategoryNameRequired
	}

	category := models.Category{Name: name, UserID: userID}
	if err := s.repo.Create(ctx, &category); err != nil {
		configslog.Log.Error("CategoryService.CreateCategory: insert failed", zap.String("name", name), zap.Error(err))
		return nil, ErrCategoryCreationFailed
	}
	configslog.SLog.Infof("Category created: ID %d, name %s", category.ID, category.Name)
	return &category, nil
}

// ListCategories returns every category in the store's natural order.
func (s *CategoryService) ListCategories(ctx context.Context) ([]models.Category, error) {
	return s.repo.FindAll(ctx)
}

// DeleteCategory removes the category and its cards in one transaction, so
// cards can never be orphaned by a category delete.
func (s *CategoryService) DeleteCategory(ctx context.Context, id uint) error {
	var removedCards int64
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		categoryRepo := repositories.NewCategoryRepository(tx)
		cardRepo := repositories.NewCardRepository(tx)

		if _, err := categoryRepo.FindByID(ctx, id); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrCategoryNotFound
			}
			return err
		}

		count, err := cardRepo.DeleteByCategoryID(ctx, id)
		if err != nil {
			return ErrCategoryDeletionFailed
		}
		removedCards = count

		if err := categoryRepo.Delete(ctx, id); err != nil {
			if errors.Is(err, repositories.ErrNotFound) {
				return ErrCategoryNotFound
			}
			return ErrCategoryDeletionFailed
		}
		return nil
	})

	if txErr != nil {
		return txErr
	}
	configslog.SLog.Infof("Category deleted: ID %d (%d cards removed with it)", id, removedCards)
	return nil
}

var _ ICategoryService = (*CategoryService)(nil)
