package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/lolirock238/vitual-backend/models"
	"github.com/lolirock238/vitual-backend/repository"
)

type itemBody struct {
	Name       *string `json:"name"`
	CategoryID uint    `json:"category_id"`
}

// ItemCreate creates a new item. A JSON body carries name and category_id;
// a multipart form additionally carries the image file, which is stored and
// linked before the response is assembled.
func (h *Handler) ItemCreate(c *fiber.Ctx) error {
	if isMultipart(c) {
		return h.itemCreateWithImage(c)
	}

	var body itemBody
	if err := c.BodyParser(&body); err != nil {
		return repository.NewError(repository.KindInvalidPayload, "invalid request body: %v", err)
	}
	item := &models.Item{Name: body.Name, CategoryID: body.CategoryID}
	if err := h.repo.CreateItem(item); err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

func (h *Handler) itemCreateWithImage(c *fiber.Ctx) error {
	categoryID, err := strconv.ParseUint(c.FormValue("category_id"), 10, 32)
	if err != nil || categoryID == 0 {
		return repository.NewError(repository.KindValidation, "category_id is required")
	}
	file, err := c.FormFile("image")
	if err != nil {
		return repository.NewError(repository.KindValidation, "image file is required")
	}

	item := &models.Item{CategoryID: uint(categoryID)}
	if name := c.FormValue("name"); name != "" {
		item.Name = &name
	}
	if err := h.repo.CreateItem(item); err != nil {
		return err
	}

	src, err := file.Open()
	if err != nil {
		return repository.NewError(repository.KindStorageWrite, "failed to read upload: %v", err)
	}
	defer src.Close()

	// Asset bytes go to disk before the row referencing them is written
	ref, err := h.assets.SaveItemImage(item.ID, file.Filename, src)
	if err != nil {
		return err
	}
	if _, err := h.repo.AddItemImage(item.ID, ref); err != nil {
		if rmErr := h.assets.Remove(ref); rmErr != nil {
			h.log.WithError(rmErr).WithField("ref", ref).
				Warn("could not remove orphaned item image")
		}
		return err
	}
	item.ImageURL = &ref

	return c.Status(fiber.StatusCreated).JSON(item)
}

// ItemList returns all items
func (h *Handler) ItemList(c *fiber.Ctx) error {
	items, err := h.repo.ListItems()
	if err != nil {
		return err
	}
	return c.JSON(items)
}

// ItemGet returns one item
func (h *Handler) ItemGet(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	item, err := h.repo.GetItem(id)
	if err != nil {
		return err
	}
	return c.JSON(item)
}

// ItemUpdate applies a partial update to an item
func (h *Handler) ItemUpdate(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var patch repository.ItemPatch
	if err := c.BodyParser(&patch); err != nil {
		return repository.NewError(repository.KindInvalidPayload, "invalid request body: %v", err)
	}
	item, err := h.repo.UpdateItem(id, patch)
	if err != nil {
		return err
	}
	return c.JSON(item)
}

// ItemDelete removes an item along with its images and associations
func (h *Handler) ItemDelete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := h.repo.DeleteItem(id); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Item deleted"})
}
