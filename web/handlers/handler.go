package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/lolirock238/vitual-backend/repository"
	"github.com/lolirock238/vitual-backend/service"
	"github.com/lolirock238/vitual-backend/storage"
)

// Handler holds the dependencies of all HTTP handlers
type Handler struct {
	repo    *repository.Repository
	outfits *service.OutfitService
	assets  *storage.Store
	log     *logrus.Logger
}

// New creates the handler set
func New(repo *repository.Repository, outfits *service.OutfitService, assets *storage.Store, log *logrus.Logger) *Handler {
	return &Handler{repo: repo, outfits: outfits, assets: assets, log: log}
}

// parseID reads the :id path parameter
func parseID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return 0, repository.NewError(repository.KindInvalidPayload, "invalid id %q", c.Params("id"))
	}
	return uint(id), nil
}

// isMultipart reports whether the request carries a multipart form
func isMultipart(c *fiber.Ctx) bool {
	return strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm)
}
