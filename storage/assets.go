package storage

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/lolirock238/vitual-backend/repository"
)

// Store persists uploaded images on local disk and hands out the public
// reference paths under which the web layer serves them.
type Store struct {
	dir          string
	publicPrefix string
}

// New creates a store rooted at dir, serving files under publicPrefix
func New(dir, publicPrefix string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory %s: %w", dir, err)
	}
	return &Store{
		dir:          dir,
		publicPrefix: strings.TrimRight(publicPrefix, "/"),
	}, nil
}

// Dir returns the directory assets are written to
func (s *Store) Dir() string {
	return s.dir
}

// PublicPrefix returns the URL prefix assets are served under
func (s *Store) PublicPrefix() string {
	return s.publicPrefix
}

// SaveItemImage stores an item image as "<itemID>_<filename>" and returns
// its public reference. A second upload with the same id and filename
// overwrites the first.
func (s *Store) SaveItemImage(itemID uint, filename string, r io.Reader) (string, error) {
	return s.save(fmt.Sprintf("%d_%s", itemID, sanitize(filename)), r)
}

// SaveOutfitImage stores an outfit image as "outfit_<outfitID>_<filename>".
// The prefix keeps outfit uploads from colliding with item uploads.
func (s *Store) SaveOutfitImage(outfitID uint, filename string, r io.Reader) (string, error) {
	return s.save(fmt.Sprintf("outfit_%d_%s", outfitID, sanitize(filename)), r)
}

// Remove deletes a previously stored asset by its public reference.
// Removing an asset that does not exist is not an error.
func (s *Store) Remove(ref string) error {
	name := path.Base(ref)
	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *Store) save(name string, r io.Reader) (string, error) {
	target := filepath.Join(s.dir, name)
	f, err := os.Create(target)
	if err != nil {
		return "", repository.NewError(repository.KindStorageWrite, "failed to write asset %s: %v", name, err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(target)
		return "", repository.NewError(repository.KindStorageWrite, "failed to write asset %s: %v", name, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(target)
		return "", repository.NewError(repository.KindStorageWrite, "failed to write asset %s: %v", name, err)
	}
	return s.publicPrefix + "/" + name, nil
}

// sanitize strips any client-supplied directory components
func sanitize(filename string) string {
	return filepath.Base(filepath.Clean(strings.ReplaceAll(filename, "\\", "/")))
}
