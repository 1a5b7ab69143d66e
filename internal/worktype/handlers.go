package worktype

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"bizapi/internal/apperr"
)

// ListWorkTypes lists every work type with its attribute definitions.
func ListWorkTypes(repo Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		workTypes, err := repo.List(c.UserContext())
		if err != nil {
			return err
		}
		return c.JSON(workTypes)
	}
}

// CreateWorkType creates a work type and its attributes from a JSON body.
// An unknown data_type token in the body fails with a validation error.
func CreateWorkType(repo Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req CreateRequest
		if err := c.BodyParser(&req); err != nil {
			return requestBodyError(err)
		}

		created, err := repo.Create(c.UserContext(), req)
		if err != nil {
			return err
		}
		return c.Status(fiber.StatusCreated).JSON(created)
	}
}

func requestBodyError(err error) error {
	var e *apperr.Error
	if errors.As(err, &e) {
		return e
	}
	return apperr.Validation("invalid request body")
}
