package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/lolirock238/vitual-backend/models"
	"github.com/lolirock238/vitual-backend/repository"
	"github.com/lolirock238/vitual-backend/service"
)

type outfitBody struct {
	Name     string  `json:"name"`
	Occasion *string `json:"occasion"`
}

// OutfitCreate creates a new outfit. A JSON body creates a bare outfit; a
// multipart form runs the composition path with an item list and an
// optional image.
func (h *Handler) OutfitCreate(c *fiber.Ctx) error {
	if isMultipart(c) {
		return h.outfitCompose(c)
	}

	var body outfitBody
	if err := c.BodyParser(&body); err != nil {
		return repository.NewError(repository.KindInvalidPayload, "invalid request body: %v", err)
	}
	outfit := &models.Outfit{Name: body.Name, Occasion: body.Occasion}
	if err := h.repo.CreateOutfit(outfit); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(outfit)
}

func (h *Handler) outfitCompose(c *fiber.Ctx) error {
	in := service.ComposeInput{
		Name:      c.FormValue("name"),
		Occasion:  c.FormValue("occasion"),
		ItemsJSON: c.FormValue("items"),
	}
	if file, err := c.FormFile("image"); err == nil {
		src, err := file.Open()
		if err != nil {
			return repository.NewError(repository.KindStorageWrite, "failed to read upload: %v", err)
		}
		defer src.Close()
		in.Image = &service.ImagePayload{Filename: file.Filename, Reader: src}
	}

	outfit, err := h.outfits.Compose(in)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(outfit)
}

// OutfitList returns all outfits with their item ids
func (h *Handler) OutfitList(c *fiber.Ctx) error {
	outfits, err := h.repo.ListOutfits()
	if err != nil {
		return err
	}
	return c.JSON(outfits)
}

// OutfitGet returns one outfit
func (h *Handler) OutfitGet(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	outfit, err := h.repo.GetOutfit(id)
	if err != nil {
		return err
	}
	return c.JSON(outfit)
}

// OutfitUpdate applies a partial update to an outfit
func (h *Handler) OutfitUpdate(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var patch repository.OutfitPatch
	if err := c.BodyParser(&patch); err != nil {
		return repository.NewError(repository.KindInvalidPayload, "invalid request body: %v", err)
	}
	outfit, err := h.repo.UpdateOutfit(id, patch)
	if err != nil {
		return err
	}
	return c.JSON(outfit)
}

// OutfitDelete removes an outfit and its associations
func (h *Handler) OutfitDelete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.repo.DeleteOutfit(id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Outfit deleted"})
}
