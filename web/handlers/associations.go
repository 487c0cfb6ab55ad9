package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lolirock238/vitual-backend/repository"
)

type outfitItemBody struct {
	OutfitID uint `json:"outfit_id"`
	ItemID   uint `json:"item_id"`
}

// OutfitItemCreate links an item to an outfit directly
func (h *Handler) OutfitItemCreate(c *fiber.Ctx) error {
	var body outfitItemBody
	if err := c.BodyParser(&body); err != nil {
		return repository.NewError(repository.KindInvalidPayload, "invalid request body: %v", err)
	}
	association, err := h.repo.AddOutfitItem(body.OutfitID, body.ItemID)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(association)
}

// OutfitItemList returns all outfit-item associations
func (h *Handler) OutfitItemList(c *fiber.Ctx) error {
	associations, err := h.repo.ListOutfitItems()
	if err != nil {
		return err
	}
	return c.JSON(associations)
}
