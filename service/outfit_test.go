package service

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lolirock238/vitual-backend/config"
	"github.com/lolirock238/vitual-backend/database"
	"github.com/lolirock238/vitual-backend/models"
	"github.com/lolirock238/vitual-backend/repository"
	"github.com/lolirock238/vitual-backend/storage"
)

type fixture struct {
	svc   *OutfitService
	repo  *repository.Repository
	store *storage.Store
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)

	db, err := database.Connect(&config.DatabaseConfig{Driver: "sqlite", Path: ":memory:"}, log)
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))
	t.Cleanup(func() { database.Close(db) })

	store, err := storage.New(t.TempDir(), "/uploads")
	require.NoError(t, err)

	repo := repository.New(db)
	return &fixture{
		svc:   NewOutfitService(repo, store, log),
		repo:  repo,
		store: store,
	}
}

func (f *fixture) seedItems(t *testing.T, names ...string) []uint {
	t.Helper()
	category, err := f.repo.CreateCategory("Shirts")
	require.NoError(t, err)
	ids := make([]uint, 0, len(names))
	for _, name := range names {
		item := &models.Item{Name: &name, CategoryID: category.ID}
		require.NoError(t, f.repo.CreateItem(item))
		ids = append(ids, item.ID)
	}
	return ids
}

func uploadedFiles(t *testing.T, store *storage.Store) []string {
	t.Helper()
	entries, err := os.ReadDir(store.Dir())
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestComposeHappyPath(t *testing.T) {
	f := newFixture(t)
	ids := f.seedItems(t, "Blue Shirt", "White Shirt")

	outfit, err := f.svc.Compose(ComposeInput{
		Name:      "Casual",
		Occasion:  "weekend",
		ItemsJSON: `[1, 2]`,
	})
	require.NoError(t, err)
	assert.NotZero(t, outfit.ID)
	assert.ElementsMatch(t, ids, outfit.ItemIDs)
	require.NotNil(t, outfit.Occasion)
	assert.Equal(t, "weekend", *outfit.Occasion)
	assert.Nil(t, outfit.ImageURL)

	persisted, err := f.repo.GetOutfit(outfit.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, ids, persisted.ItemIDs)
}

func TestComposeWithoutItems(t *testing.T) {
	f := newFixture(t)

	outfit, err := f.svc.Compose(ComposeInput{Name: "Formal"})
	require.NoError(t, err)
	assert.Equal(t, []uint{}, outfit.ItemIDs)
	assert.Nil(t, outfit.Occasion)
}

func TestComposeMissingName(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Compose(ComposeInput{Name: "  "})
	assert.Equal(t, repository.KindValidation, repository.KindOf(err))
}

func TestComposeMalformedItems(t *testing.T) {
	f := newFixture(t)
	f.seedItems(t, "Blue Shirt")

	for _, raw := range []string{`{`, `"abc"`, `{"a":1}`, `[1,"a"]`, `[-1]`, `123`, `null`, `true`} {
		_, err := f.svc.Compose(ComposeInput{Name: "Casual", ItemsJSON: raw})
		assert.Equalf(t, repository.KindInvalidPayload, repository.KindOf(err), "payload %q", raw)
	}

	outfits, err := f.repo.ListOutfits()
	require.NoError(t, err)
	assert.Empty(t, outfits)
}

func TestComposeUnknownItem(t *testing.T) {
	f := newFixture(t)
	f.seedItems(t, "Blue Shirt")

	_, err := f.svc.Compose(ComposeInput{Name: "Casual", ItemsJSON: `[1, 99]`})
	require.Error(t, err)
	assert.True(t, repository.IsNotFound(err))
	assert.Contains(t, err.Error(), "99")

	outfits, err := f.repo.ListOutfits()
	require.NoError(t, err)
	assert.Empty(t, outfits)
}

func TestComposeWithImage(t *testing.T) {
	f := newFixture(t)
	f.seedItems(t, "Blue Shirt")

	payload := []byte("image bytes")
	outfit, err := f.svc.Compose(ComposeInput{
		Name:      "Casual",
		ItemsJSON: `[1]`,
		Image:     &ImagePayload{Filename: "look.png", Reader: bytes.NewReader(payload)},
	})
	require.NoError(t, err)
	require.NotNil(t, outfit.ImageURL)
	assert.Equal(t, "/uploads/outfit_1_look.png", *outfit.ImageURL)

	written, err := os.ReadFile(filepath.Join(f.store.Dir(), "outfit_1_look.png"))
	require.NoError(t, err)
	assert.Equal(t, payload, written)
}

func TestComposeUnknownItemCleansUpImage(t *testing.T) {
	f := newFixture(t)
	f.seedItems(t, "Blue Shirt")

	_, err := f.svc.Compose(ComposeInput{
		Name:      "Casual",
		ItemsJSON: `[99]`,
		Image:     &ImagePayload{Filename: "look.png", Reader: bytes.NewReader([]byte("x"))},
	})
	require.Error(t, err)
	assert.True(t, repository.IsNotFound(err))

	// No outfit row and no orphaned file
	outfits, err := f.repo.ListOutfits()
	require.NoError(t, err)
	assert.Empty(t, outfits)
	assert.Empty(t, uploadedFiles(t, f.store))
}
