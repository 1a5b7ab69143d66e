package company

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"bizapi/internal/apperr"
)

// Handlers are thin: parse, delegate to the bound repository, serialize.
// Failures propagate to the global error handler, which owns status mapping.

// ListCompanies lists companies with an optional ?name= substring filter.
func ListCompanies(repo Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		companies, err := repo.List(c.UserContext(), c.Query("name"))
		if err != nil {
			return err
		}
		return c.JSON(companies)
	}
}

// CreateCompany creates a company from a JSON request body.
func CreateCompany(repo Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req Request
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

// GetCompany fetches one company by id.
func GetCompany(repo Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		found, err := repo.Get(c.UserContext(), c.Params("id"))
		if err != nil {
			return err
		}
		if found == nil {
			return apperr.NotFound("company not found")
		}
		return c.JSON(found)
	}
}

// UpdateCompany applies a partial update: absent body fields keep their
// stored values.
func UpdateCompany(repo Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req Request
		if err := c.BodyParser(&req); err != nil {
			return requestBodyError(err)
		}

		updated, err := repo.Update(c.UserContext(), c.Params("id"), req)
		if err != nil {
			return err
		}
		if updated == nil {
			return apperr.NotFound("company not found")
		}
		return c.JSON(updated)
	}
}

// DuplicateCompany copies a company under a fresh identity.
func DuplicateCompany(repo Repository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		dup, err := repo.Duplicate(c.UserContext(), c.Params("id"))
		if err != nil {
			return err
		}
		if dup == nil {
			return apperr.NotFound("company not found")
		}
		return c.Status(fiber.StatusCreated).JSON(dup)
	}
}

// requestBodyError keeps validation errors raised while decoding (unknown
// enum tokens and the like) and downgrades everything else to a generic
// malformed-body failure.
func requestBodyError(err error) error {
	var e *apperr.Error
	if errors.As(err, &e) {
		return e
	}
	return apperr.Validation("invalid request body")
}
