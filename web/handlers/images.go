package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lolirock238/vitual-backend/repository"
)

type itemImageBody struct {
	ItemID   uint   `json:"item_id"`
	ImageURL string `json:"image_url"`
}

// ItemImageCreate records an image reference for an item
func (h *Handler) ItemImageCreate(c *fiber.Ctx) error {
	var body itemImageBody
	if err := c.BodyParser(&body); err != nil {
		return repository.NewError(repository.KindInvalidPayload, "invalid request body: %v", err)
	}
	image, err := h.repo.AddItemImage(body.ItemID, body.ImageURL)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(image)
}

// ItemImageList returns all item image references
func (h *Handler) ItemImageList(c *fiber.Ctx) error {
	images, err := h.repo.ListItemImages()
	if err != nil {
		return err
	}
	return c.JSON(images)
}
