package api

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"flashdeck.app/pkg/queryparams"
)

var validate = validator.New()

// CreateUserRequest is the POST /users/ body.
type CreateUserRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// CreateCategoryRequest is the POST /categories/ body. UserID is optional.
type CreateCategoryRequest struct {
	Name   string `json:"name" validate:"required,min=1"`
	UserID *uint  `json:"user_id" validate:"omitempty,gt=0"`
}

// CreateCardRequest is the POST /cards body. UserID is optional.
type CreateCardRequest struct {
	Front      string `json:"front" validate:"required,min=1"`
	Back       string `json:"back" validate:"required,min=1"`
	CategoryID uint   `json:"category_id" validate:"required,gt=0"`
	UserID     *uint  `json:"user_id" validate:"omitempty,gt=0"`
}

// parseBody decodes and validates a JSON request body.
// Malformed bodies and failed validations both answer 400.
func parseBody(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(out); err != nil {
		return respondError(c, fiber.StatusBadRequest, err.Error())
	}
	return nil
}

// parseListParams reads page/page_size on top of the defaults.
// Out-of-range values answer 422, mirroring query-parameter validation.
func parseListParams(c *fiber.Ctx) (queryparams.ListParams, error) {
	params := queryparams.DefaultListParams()
	if err := c.QueryParser(&params); err != nil {
		return params, respondError(c, fiber.StatusUnprocessableEntity, "Invalid pagination parameters")
	}
	if err := params.Validate(); err != nil {
		return params, respondError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	return params, nil
}

// parseIDParam reads a positive integer path parameter.
func parseIDParam(c *fiber.Ctx, name string) (uint, error) {
	id, err := c.ParamsInt(name)
	if err != nil || id <= 0 {
		return 0, respondError(c, fiber.StatusBadRequest, "Invalid "+name+" parameter")
	}
	return uint(id), nil
}

func respondError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}
