package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flashdeck.app/pkg/queryparams"
)

func TestCreateCardResolvesCategory(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCardService(db)
	category := createTestCategory(t, db, "Spanish")

	card, err := svc.CreateCard(context.Background(), CreateCardInput{
		Front:      "hola",
		Back:       "hello",
		CategoryID: category.ID,
	})
	require.NoError(t, err)
	assert.NotZero(t, card.ID)
	assert.Equal(t, category.ID, card.CategoryID)
	assert.Equal(t, "Spanish", card.Category.Name)
}

func TestCreateCardUnknownCategory(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCardService(db)

	_, err := svc.CreateCard(context.Background(), CreateCardInput{
		Front:      "hola",
		Back:       "hello",
		CategoryID: 42,
	})
	assert.ErrorIs(t, err, ErrCardCategoryNotFound)
}

func TestCreateCardAppearsExactlyOnce(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCardService(db)
	ctx := context.Background()
	category := createTestCategory(t, db, "Spanish")

	created, err := svc.CreateCard(ctx, CreateCardInput{Front: "hola", Back: "hello", CategoryID: category.ID})
	require.NoError(t, err)

	cards, err := svc.ListAllCards(ctx)
	require.NoError(t, err)

	matches := 0
	for _, card := range cards {
		if card.Front == "hola" && card.Back == "hello" && card.CategoryID == category.ID {
			matches++
			assert.Equal(t, created.ID, card.ID)
			assert.Equal(t, "Spanish", card.Category.Name)
		}
	}
	assert.Equal(t, 1, matches)
}

func TestListCardsPagedInvariants(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCardService(db)
	ctx := context.Background()
	category := createTestCategory(t, db, "Spanish")

	const total = 25
	for i := 0; i < total; i++ {
		createTestCard(t, db, fmt.Sprintf("front-%d", i), fmt.Sprintf("back-%d", i), category.ID)
	}

	for _, page := range []int{0, 1, 2, 3} {
		cards, totalCount, err := svc.ListCardsPaged(ctx, queryparams.ListParams{Page: page, PageSize: 10})
		require.NoError(t, err)
		assert.EqualValues(t, total, totalCount, "total count holds on every page")
		assert.LessOrEqual(t, len(cards), 10)

		// Newest first: ids strictly descend within a page.
		for i := 1; i < len(cards); i++ {
			assert.Greater(t, cards[i-1].ID, cards[i].ID)
		}
	}

	cards, totalCount, err := svc.ListCardsPaged(ctx, queryparams.ListParams{Page: 0, PageSize: 10})
	require.NoError(t, err)
	assert.Len(t, cards, 10)
	assert.EqualValues(t, total, totalCount)

	// Last partial page, then one past the end.
	cards, _, err = svc.ListCardsPaged(ctx, queryparams.ListParams{Page: 2, PageSize: 10})
	require.NoError(t, err)
	assert.Len(t, cards, 5)

	cards, totalCount, err = svc.ListCardsPaged(ctx, queryparams.ListParams{Page: 3, PageSize: 10})
	require.NoError(t, err)
	assert.Empty(t, cards)
	assert.EqualValues(t, total, totalCount)
}

func TestListCardsPagedRejectsInvalidParams(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCardService(db)
	ctx := context.Background()

	_, _, err := svc.ListCardsPaged(ctx, queryparams.ListParams{Page: -1, PageSize: 10})
	assert.ErrorIs(t, err, ErrCardInvalidInput)

	_, _, err = svc.ListCardsPaged(ctx, queryparams.ListParams{Page: 0, PageSize: 0})
	assert.ErrorIs(t, err, ErrCardInvalidInput)

	_, _, err = svc.ListCardsPaged(ctx, queryparams.ListParams{Page: 0, PageSize: 101})
	assert.ErrorIs(t, err, ErrCardInvalidInput)
}

func TestListCardsByCategory(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCardService(db)
	ctx := context.Background()
	spanish := createTestCategory(t, db, "Spanish")
	french := createTestCategory(t, db, "French")

	createTestCard(t, db, "hola", "hello", spanish.ID)
	createTestCard(t, db, "adios", "bye", spanish.ID)
	createTestCard(t, db, "bonjour", "hello", french.ID)

	cards, totalCount, err := svc.ListCardsByCategory(ctx, spanish.ID, queryparams.DefaultListParams())
	require.NoError(t, err)
	assert.EqualValues(t, 2, totalCount)
	require.Len(t, cards, 2)
	for _, card := range cards {
		assert.Equal(t, spanish.ID, card.CategoryID)
		assert.Equal(t, "Spanish", card.Category.Name)
	}

	_, _, err = svc.ListCardsByCategory(ctx, 999, queryparams.DefaultListParams())
	assert.ErrorIs(t, err, ErrCardCategoryNotFound)
}

func TestSearchCardsCaseInsensitiveSubstring(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCardService(db)
	ctx := context.Background()
	category := createTestCategory(t, db, "Animals")

	catFront := createTestCard(t, db, "cat", "gato", category.ID)
	catUpper := createTestCard(t, db, "CAT food", "comida", category.ID)
	catBack := createTestCard(t, db, "feline", "the Cat", category.ID)
	createTestCard(t, db, "dog", "perro", category.ID)

	cards, totalCount, err := svc.SearchCards(ctx, "cat", queryparams.DefaultListParams())
	require.NoError(t, err)
	assert.EqualValues(t, 3, totalCount)

	found := map[uint]bool{}
	for _, card := range cards {
		found[card.ID] = true
	}
	assert.True(t, found[catFront.ID])
	assert.True(t, found[catUpper.ID])
	assert.True(t, found[catBack.ID])
}

func TestSearchCardsEmptyTerm(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCardService(db)

	_, _, err := svc.SearchCards(context.Background(), "  ", queryparams.DefaultListParams())
	assert.ErrorIs(t, err, ErrSearchTermRequired)
}

func TestDeleteCardNotIdempotent(t *testing.T) {
	db := setupTestDB(t)
	svc := NewCardService(db)
	ctx := context.Background()
	category := createTestCategory(t, db, "Spanish")
	card := createTestCard(t, db, "hola", "hello", category.ID)

	require.NoError(t, svc.DeleteCard(ctx, card.ID))

	cards, err := svc.ListAllCards(ctx)
	require.NoError(t, err)
	assert.Empty(t, cards)

	assert.ErrorIs(t, svc.DeleteCard(ctx, card.ID), ErrCardNotFound)
}
