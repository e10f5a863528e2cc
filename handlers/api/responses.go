package api

import "flashdeck.app/models"

// UserResponse is the wire shape of a user.
type UserResponse struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
}

// CategoryResponse is the wire shape of a category. UserID only appears for
// owned categories.
type CategoryResponse struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	UserID *uint  `json:"user_id,omitempty"`
}

// CardResponse is the wire shape of a card. Category is embedded when the
// query resolved it.
type CardResponse struct {
	ID         uint              `json:"id"`
	Front      string            `json:"front"`
	Back       string            `json:"back"`
	CategoryID uint              `json:"category_id"`
	UserID     *uint             `json:"user_id,omitempty"`
	Category   *CategoryResponse `json:"category,omitempty"`
}

// PaginatedCardsResponse is the shape of the paginated card listings.
// CategoryID is 0 for the unscoped listing.
type PaginatedCardsResponse struct {
	Cards       []CardResponse `json:"cards"`
	TotalCount  int64          `json:"total_count"`
	CurrentPage int            `json:"current_page"`
	CategoryID  uint           `json:"category_id"`
}

// SearchCardsResponse is the shape of the search listing.
type SearchCardsResponse struct {
	Cards       []CardResponse `json:"cards"`
	TotalCount  int64          `json:"total_count"`
	CurrentPage int            `json:"current_page"`
	SearchTerm  string         `json:"search_term"`
}

func newUserResponse(user models.User) UserResponse {
	return UserResponse{ID: user.ID, Email: user.Email}
}

func newUserResponses(users []models.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, user := range users {
		out = append(out, newUserResponse(user))
	}
	return out
}

func newCategoryResponse(category models.Category) CategoryResponse {
	return CategoryResponse{ID: category.ID, Name: category.Name, UserID: category.UserID}
}

func newCategoryResponses(categories []models.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(categories))
	for _, category := range categories {
		out = append(out, newCategoryResponse(category))
	}
	return out
}

func newCardResponse(card models.Card) CardResponse {
	resp := CardResponse{
		ID:         card.ID,
		Front:      card.Front,
		Back:       card.Back,
		CategoryID: card.CategoryID,
		UserID:     card.UserID,
	}
	if card.Category.ID != 0 {
		category := newCategoryResponse(card.Category)
		resp.Category = &category
	}
	return resp
}

func newCardResponses(cards []models.Card) []CardResponse {
	out := make([]CardResponse, 0, len(cards))
	for _, card := range cards {
		out = append(out, newCardResponse(card))
	}
	return out
}
