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

// UserServiceError carries user service failures.
type UserServiceError string

func (e UserServiceError) Error() string { return string(e) }

const (
	ErrUserNotFound       UserServiceError = "user not found"
	ErrUserEmailRequired  UserServiceError = "user email is required"
	ErrUserCreationFailed UserServiceError = "user could not be created"
)

// IUserService covers user operations.
type IUserService interface {
	CreateUser(ctx context.Context, email string) (*models.User, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUserCategories(ctx context.Context, userID uint) ([]models.Category, error)
	GetUserCards(ctx context.Context, userID uint) ([]models.Card, error)
}

// UserService implements IUserService.
type UserService struct {
	repo         repositories.IUserRepository
	categoryRepo repositories.ICategoryRepository
	cardRepo     repositories.ICardRepository
}

// NewUserService creates a UserService bound to db.
func NewUserService(db *gorm.DB) IUserService {
	return &UserService{
		repo:         repositories.NewUserRepository(db),
		categoryRepo: repositories.NewCategoryRepository(db),
		cardRepo:     repositories.NewCardRepository(db),
	}
}

// CreateUser returns the existing user for a known email instead of erroring;
// a duplicate email is not a failure, it is a lookup.
func (s *UserService) CreateUser(ctx context.Context, email string) (*models.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, ErrUserEmailRequired
	}

	existing, err := s.repo.FindByEmail(ctx, email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	user := models.User{Email: email}
	if err := s.repo.Create(ctx, &user); err != nil {
		configslog.Log.Error("UserService.CreateUser: insert failed", zap.String("email", email), zap.Error(err))
		return nil, ErrUserCreationFailed
	}
	configslog.SLog.Infof("User created: ID %d, email %s", user.ID, user.Email)
	return &user, nil
}

// ListUsers returns every user in the store's natural order.
func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.repo.FindAll(ctx)
}

// GetUserCategories lists the categories owned by the user.
func (s *UserService) GetUserCategories(ctx context.Context, userID uint) ([]models.Category, error) {
	if _, err := s.repo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return s.categoryRepo.FindAllByUserID(ctx, userID)
}

// GetUserCards lists the cards owned by the user.
func (s *UserService) GetUserCards(ctx context.Context, userID uint) ([]models.Card, error) {
	if _, err := s.repo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return s.cardRepo.FindAllByUserID(ctx, userID)
}

var _ IUserService = (*UserService)(nil)
