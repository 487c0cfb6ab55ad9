package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lolirock238/vitual-backend/repository"
)

type categoryBody struct {
	Name string `json:"name"`
}

// CategoryCreate creates a new category
func (h *Handler) CategoryCreate(c *fiber.Ctx) error {
	var body categoryBody
	if err := c.BodyParser(&body); err != nil {
		return repository.NewError(repository.KindInvalidPayload, "invalid request body: %v", err)
	}
	category, err := h.repo.CreateCategory(body.Name)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

// CategoryList returns all categories
func (h *Handler) CategoryList(c *fiber.Ctx) error {
	categories, err := h.repo.ListCategories()
	if err != nil {
		return err
	}
	return c.JSON(categories)
}

// CategoryUpdate renames a category
func (h *Handler) CategoryUpdate(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var body categoryBody
	if err := c.BodyParser(&body); err != nil {
		return repository.NewError(repository.KindInvalidPayload, "invalid request body: %v", err)
	}
	category, err := h.repo.UpdateCategory(id, body.Name)
	if err != nil {
		return err
	}
	return c.JSON(category)
}

// CategoryDelete removes a category
func (h *Handler) CategoryDelete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.repo.DeleteCategory(id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Category deleted"})
}
