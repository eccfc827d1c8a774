// Package assets resolves cover image references to bitmaps.
//
// A reference is looked up in the configured cover directory first
// (<ref>.png, .jpg, .jpeg, .gif or .webp); anything missing falls back to a
// generated placeholder cover so the compiled-in catalog always resolves.
package assets

import (
	"fmt"
	"image"
	_ "image/gif"  // register decoder
	_ "image/jpeg" // register decoder
	_ "image/png"  // register decoder
	"os"
	"sync"

	_ "golang.org/x/image/webp" // register decoder

	"github.com/justyntemme/folderlike/internal/catalog"
	"github.com/justyntemme/folderlike/internal/debug"
)

// Resolver looks up a cover by reference.
type Resolver interface {
	Lookup(ref string) (image.Image, bool)
}

// Default placeholder size, matching the detail card's cover height.
const (
	PlaceholderWidth  = 240
	PlaceholderHeight = 360
)

// Store resolves references against a cover directory and the catalog.
type Store struct {
	mu    sync.RWMutex
	dir   string
	files map[string]string       // ref -> file path
	books map[string]catalog.Book // ref -> book, for placeholder text
}

// NewStore indexes dir (which may be empty) and remembers books so their
// placeholders can carry the title and author.
func NewStore(dir string, books []catalog.Book) (*Store, error) {
	s := &Store{
		dir:   dir,
		files: map[string]string{},
		books: make(map[string]catalog.Book, len(books)),
	}
	for _, b := range books {
		s.books[b.ImageRef] = b
	}
	if dir == "" {
		return s, nil
	}
	if err := s.Reindex(); err != nil {
		return s, err
	}
	return s, nil
}

// Reindex rescans the cover directory.
func (s *Store) Reindex() error {
	files, err := indexDir(s.dir)
	if err != nil {
		return fmt.Errorf("index covers in %s: %w", s.dir, err)
	}
	s.mu.Lock()
	s.files = files
	s.mu.Unlock()
	debug.Log(debug.ASSETS, "indexed %d covers in %s", len(files), s.dir)
	return nil
}

// Path returns the file backing ref, if the cover directory has one.
func (s *Store) Path(ref string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.files[ref]
	return p, ok
}

// Lookup decodes the cover for ref, falling back to a placeholder for books
// in the catalog. Unknown refs with no file report false.
func (s *Store) Lookup(ref string) (image.Image, bool) {
	if path, ok := s.Path(ref); ok {
		img, err := decodeFile(path)
		if err == nil {
			return img, true
		}
		debug.Log(debug.ASSETS, "decode %s: %v", path, err)
	}

	s.mu.RLock()
	b, ok := s.books[ref]
	s.mu.RUnlock()
	if !ok {
		return nil, false
	}
	return RenderPlaceholder(b, PlaceholderWidth, PlaceholderHeight), true
}

// File decodes the file backing ref with no placeholder fallback.
func (s *Store) File(ref string) (image.Image, error) {
	path, ok := s.Path(ref)
	if !ok {
		return nil, fmt.Errorf("no cover file for %q", ref)
	}
	img, err := decodeFile(path)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	return img, err
}
