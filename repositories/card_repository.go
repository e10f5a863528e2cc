package repositories

import (
	"context"
	"errors"
	"strings"

	"flashdeck.app/configs/configslog"
	"flashdeck.app/models"
	"flashdeck.app/pkg/queryparams"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ICardRepository covers card persistence, including the paginated listings.
// Every paginated method orders by descending id (newest first) and returns
// the total row count alongside the page.
type ICardRepository interface {
	Create(ctx context.Context, card *models.Card) error
	FindByID(ctx context.Context, id uint) (*models.Card, error)
	FindAllWithCategory(ctx context.Context) ([]models.Card, error)
	FindAllByUserID(ctx context.Context, userID uint) ([]models.Card, error)
	FindPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Card, int64, error)
	FindByCategoryPaginated(ctx context.Context, categoryID uint, params queryparams.ListParams) ([]models.Card, int64, error)
	SearchPaginated(ctx context.Context, term string, params queryparams.ListParams) ([]models.Card, int64, error)
	Delete(ctx context.Context, id uint) error
	DeleteByCategoryID(ctx context.Context, categoryID uint) (int64, error)
}

// CardRepository implements ICardRepository on gorm.
type CardRepository struct {
	db *gorm.DB
}

// NewCardRepository creates a CardRepository. Passing a transaction handle
// scopes every call to that transaction.
func NewCardRepository(db *gorm.DB) ICardRepository {
	return &CardRepository{db: db}
}

func (r *CardRepository) getDB(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

func (r *CardRepository) Create(ctx context.Context, card *models.Card) error {
	if card == nil {
		return errors.New("card to create cannot be nil")
	}
	return r.getDB(ctx).Create(card).Error
}

func (r *CardRepository) FindByID(ctx context.Context, id uint) (*models.Card, error) {
	if id == 0 {
		return nil, ErrNotFound
	}
	var card models.Card
	err := r.getDB(ctx).Preload("Category").First(&card, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("CardRepository.FindByID: DB error", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return &card, nil
}

func (r *CardRepository) FindAllWithCategory(ctx context.Context) ([]models.Card, error) {
	var cards []models.Card
	if err := r.getDB(ctx).Preload("Category").Find(&cards).Error; err != nil {
		configslog.Log.Error("CardRepository.FindAllWithCategory: DB error", zap.Error(err))
		return nil, err
	}
	return cards, nil
}

func (r *CardRepository) FindAllByUserID(ctx context.Context, userID uint) ([]models.Card, error) {
	var cards []models.Card
	err := r.getDB(ctx).Where("user_id = ?", userID).Find(&cards).Error
	if err != nil {
		configslog.Log.Error("CardRepository.FindAllByUserID: DB error", zap.Uint("user_id", userID), zap.Error(err))
		return nil, err
	}
	return cards, nil
}

func (r *CardRepository) FindPaginated(ctx context.Context, params queryparams.ListParams) ([]models.Card, int64, error) {
	return r.paginate(ctx, r.getDB(ctx).Model(&models.Card{}), params)
}

func (r *CardRepository) FindByCategoryPaginated(ctx context.Context, categoryID uint, params queryparams.ListParams) ([]models.Card, int64, error) {
	query := r.getDB(ctx).Model(&models.Card{}).Where("category_id = ?", categoryID)
	return r.paginate(ctx, query, params)
}

// SearchPaginated matches term as a case-insensitive substring of front or
// back. lower(...) LIKE keeps the query portable across postgres and sqlite.
func (r *CardRepository) SearchPaginated(ctx context.Context, term string, params queryparams.ListParams) ([]models.Card, int64, error) {
	pattern := "%" + strings.ToLower(term) + "%"
	query := r.getDB(ctx).Model(&models.Card{}).
		Where("lower(front) LIKE ? OR lower(back) LIKE ?", pattern, pattern)
	return r.paginate(ctx, query, params)
}

// paginate counts the filtered set, then fetches one page ordered by
// descending id with the category preloaded. A page past the end is empty.
func (r *CardRepository) paginate(ctx context.Context, query *gorm.DB, params queryparams.ListParams) ([]models.Card, int64, error) {
	var totalCount int64
	if err := query.Count(&totalCount).Error; err != nil {
		configslog.Log.Error("CardRepository.paginate: count error", zap.Error(err))
		return nil, 0, err
	}

	var cards []models.Card
	err := query.
		Preload("Category").
		Order("id DESC").
		Offset(params.Offset()).
		Limit(params.PageSize).
		Find(&cards).Error
	if err != nil {
		configslog.Log.Error("CardRepository.paginate: find error", zap.Error(err))
		return nil, 0, err
	}
	return cards, totalCount, nil
}

// Delete removes the card row. ErrNotFound when no row matched.
func (r *CardRepository) Delete(ctx context.Context, id uint) error {
	if id == 0 {
		return ErrNotFound
	}
	result := r.getDB(ctx).Delete(&models.Card{}, id)
	if result.Error != nil {
		configslog.Log.Error("CardRepository.Delete: DB error", zap.Uint("id", id), zap.Error(result.Error))
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteByCategoryID removes every card of a category and reports how many
// rows went away. Used by the category cascade delete.
func (r *CardRepository) DeleteByCategoryID(ctx context.Context, categoryID uint) (int64, error) {
	result := r.getDB(ctx).Where("category_id = ?", categoryID).Delete(&models.Card{})
	if result.Error != nil {
		configslog.Log.Error("CardRepository.DeleteByCategoryID: DB error",
			zap.Uint("category_id", categoryID), zap.Error(result.Error))
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

var _ ICardRepository = (*CardRepository)(nil)
