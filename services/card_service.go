package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"flashdeck.app/configs/configslog"
	"flashdeck.app/models"
	"flashdeck.app/pkg/queryparams"
	"flashdeck.app/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CardServiceError carries card service failures.
type CardServiceError string

func (e CardServiceError) Error() string { return string(e) }

const (
	ErrCardNotFound         CardServiceError = "card not found"
	ErrCardCategoryNotFound CardServiceError = "category not found"
	ErrCardCreationFailed   CardServiceError = "card creation failed"
	ErrCardInvalidInput     CardServiceError = "invalid card input"
	ErrSearchTermRequired   CardServiceError = "search term is required"
)

// CreateCardInput is the service-level payload for a new card.
type CreateCardInput struct {
	Front      string
	Back       string
	CategoryID uint
	UserID     *uint
}

// ICardService covers card operations. The paginated methods return the page
// plus the total count of the filtered set.
type ICardService interface {
	CreateCard(ctx context.Context, input CreateCardInput) (*models.Card, error)
	ListAllCards(ctx context.Context) ([]models.Card, error)
	ListCardsPaged(ctx context.Context, params queryparams.ListParams) ([]models.Card, int64, error)
	ListCardsByCategory(ctx context.Context, categoryID uint, params queryparams.ListParams) ([]models.Card, int64, error)
	SearchCards(ctx context.Context, term string, params queryparams.ListParams) ([]models.Card, int64, error)
	DeleteCard(ctx context.Context, id uint) error
}

// CardService implements ICardService.
type CardService struct {
	repo         repositories.ICardRepository
	categoryRepo repositories.ICategoryRepository
}

// NewCardService creates a CardService bound to db.
func NewCardService(db *gorm.DB) ICardService {
	return &CardService{
		repo:         repositories.NewCardRepository(db),
		categoryRepo: repositories.NewCategoryRepository(db),
	}
}

// CreateCard inserts a card after resolving its category. The returned card
// carries the resolved category.
func (s *CardService) CreateCard(ctx context.Context, input CreateCardInput) (*models.Card, error) {
	if strings.TrimSpace(input.Front) == "" || strings.TrimSpace(input.Back) == "" {
		return nil, fmt.Errorf("%w: front and back are required", ErrCardInvalidInput)
	}

	category, err := s.categoryRepo.FindByID(ctx, input.CategoryID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCardCategoryNotFound
		}
		return nil, err
	}

	card := models.Card{
		Front:      input.Front,
		Back:       input.Back,
		CategoryID: input.CategoryID,
		UserID:     input.UserID,
	}
	if err := s.repo.Create(ctx, &card); err != nil {
		configslog.Log.Error("CardService.CreateCard: insert failed",
			zap.Uint("category_id", input.CategoryID), zap.Error(err))
		return nil, ErrCardCreationFailed
	}

	card.Category = *category
	configslog.SLog.Infof("Card created: ID %d, category %d", card.ID, card.CategoryID)
	return &card, nil
}

// ListAllCards returns every card with its category, unordered.
func (s *CardService) ListAllCards(ctx context.Context) ([]models.Card, error) {
	return s.repo.FindAllWithCategory(ctx)
}

// ListCardsPaged returns one page of cards, newest first, plus the total count.
func (s *CardService) ListCardsPaged(ctx context.Context, params queryparams.ListParams) ([]models.Card, int64, error) {
	if err := params.Validate(); err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrCardInvalidInput, err)
	}
	return s.repo.FindPaginated(ctx, params)
}

// ListCardsByCategory returns one page of the category's cards plus the count
// scoped to that category.
func (s *CardService) ListCardsByCategory(ctx context.Context, categoryID uint, params queryparams.ListParams) ([]models.Card, int64, error) {
	if err := params.Validate(); err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrCardInvalidInput, err)
	}
	if _, err := s.categoryRepo.FindByID(ctx, categoryID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, 0, ErrCardCategoryNotFound
		}
		return nil, 0, err
	}
	return s.repo.FindByCategoryPaginated(ctx, categoryID, params)
}

// SearchCards returns one page of cards whose front or back contains term as
// a case-insensitive substring, plus the match count.
func (s *CardService) SearchCards(ctx context.Context, term string, params queryparams.ListParams) ([]models.Card, int64, error) {
	if strings.TrimSpace(term) == "" {
		return nil, 0, ErrSearchTermRequired
	}
	if err := params.Validate(); err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrCardInvalidInput, err)
	}
	return s.repo.SearchPaginated(ctx, term, params)
}

// DeleteCard removes the card. Deleting an absent or already-deleted id fails.
func (s *CardService) DeleteCard(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrCardNotFound
		}
		return err
	}
	configslog.SLog.Infof("Card deleted: ID %d", id)
	return nil
}

var _ ICardService = (*CardService)(nil)
