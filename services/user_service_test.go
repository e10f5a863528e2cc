package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flashdeck.app/models"
)

func TestCreateUserIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)
	ctx := context.Background()

	first, err := svc.CreateUser(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.NotZero(t, first.ID)

	second, err := svc.CreateUser(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestCreateUserRequiresEmail(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)

	_, err := svc.CreateUser(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrUserEmailRequired)
}

func TestListUsers(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)
	ctx := context.Background()

	_, err := svc.CreateUser(ctx, "a@example.com")
	require.NoError(t, err)
	_, err = svc.CreateUser(ctx, "b@example.com")
	require.NoError(t, err)

	users, err := svc.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestGetUserCategoriesUnknownUser(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)

	_, err := svc.GetUserCategories(context.Background(), 42)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetUserCardsScopedToOwner(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(db)
	ctx := context.Background()

	owner, err := svc.CreateUser(ctx, "owner@example.com")
	require.NoError(t, err)
	other, err := svc.CreateUser(ctx, "other@example.com")
	require.NoError(t, err)

	category := createTestCategory(t, db, "Spanish")
	ownedCategory := models.Category{Name: "Owned", UserID: &owner.ID}
	require.NoError(t, db.Create(&ownedCategory).Error)

	owned := models.Card{Front: "hola", Back: "hello", CategoryID: category.ID, UserID: &owner.ID}
	require.NoError(t, db.Create(&owned).Error)
	unowned := models.Card{Front: "adios", Back: "bye", CategoryID: category.ID, UserID: &other.ID}
	require.NoError(t, db.Create(&unowned).Error)

	cards, err := svc.GetUserCards(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, cards, 1)
	assert.Equal(t, owned.ID, cards[0].ID)

	categories, err := svc.GetUserCategories(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, ownedCategory.ID, categories[0].ID)

	_, err = svc.GetUserCards(ctx, 999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
