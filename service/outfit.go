package service

import (
	"encoding/json"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/lolirock238/vitual-backend/models"
	"github.com/lolirock238/vitual-backend/repository"
	"github.com/lolirock238/vitual-backend/storage"
)

// ImagePayload is an uploaded image ready to be stored
type ImagePayload struct {
	Filename string
	Reader   io.Reader
}

// ComposeInput is the outfit composition request. ItemsJSON is the raw
// "items" form field, a JSON array of item ids.
type ComposeInput struct {
	Name      string
	Occasion  string
	ItemsJSON string
	Image     *ImagePayload
}

// OutfitService runs the multi-step outfit composition write path
type OutfitService struct {
	repo   *repository.Repository
	assets *storage.Store
	log    *logrus.Logger
}

// NewOutfitService creates the composition service
func NewOutfitService(repo *repository.Repository, assets *storage.Store, log *logrus.Logger) *OutfitService {
	return &OutfitService{repo: repo, assets: assets, log: log}
}

// Compose validates the request, stores the optional image, creates the
// outfit and links every referenced item. The database work is one
// transaction; a failure at any step leaves no outfit row, no associations
// and no stored asset behind.
func (s *OutfitService) Compose(in ComposeInput) (*models.Outfit, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, repository.NewError(repository.KindValidation, "name is required")
	}
	itemIDs, err := parseItemIDs(in.ItemsJSON)
	if err != nil {
		return nil, err
	}

	outfit := &models.Outfit{Name: in.Name}
	if in.Occasion != "" {
		occasion := in.Occasion
		outfit.Occasion = &occasion
	}

	// The image is written inside the transaction, once the outfit row
	// (and its id) exists but before anything commits. If a later step
	// fails, the transaction rolls back and the file is removed again.
	var storedRef string
	var attach repository.AttachImageFunc
	if in.Image != nil {
		attach = func(outfitID uint) (string, error) {
			ref, err := s.assets.SaveOutfitImage(outfitID, in.Image.Filename, in.Image.Reader)
			if err != nil {
				return "", err
			}
			storedRef = ref
			return ref, nil
		}
	}

	if err := s.repo.CreateOutfitWithItems(outfit, itemIDs, attach); err != nil {
		if storedRef != "" {
			if rmErr := s.assets.Remove(storedRef); rmErr != nil {
				s.log.WithError(rmErr).WithField("ref", storedRef).
					Warn("could not remove orphaned outfit image")
			}
		}
		return nil, err
	}
	return outfit, nil
}

// parseItemIDs decodes the items field. An empty field means no items; a
// value that is not a JSON list of non-negative integers is rejected.
// The array check comes first because Unmarshal quietly accepts "null".
func parseItemIDs(raw string) ([]uint, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, nil
	}
	if !strings.HasPrefix(trimmed, "[") {
		return nil, repository.NewError(repository.KindInvalidPayload,
			"items must be a JSON list of item ids")
	}
	var ids []uint
	if err := json.Unmarshal([]byte(trimmed), &ids); err != nil {
		return nil, repository.NewError(repository.KindInvalidPayload,
			"items must be a JSON list of item ids")
	}
	return ids, nil
}
