package catalog

import (
	"errors"
	"fmt"

	"github.com/justyntemme/folderlike/internal/debug"
)

var (
	ErrEmpty          = errors.New("catalog is empty")
	ErrDuplicateTitle = errors.New("duplicate title")
	ErrDuplicateID    = errors.New("duplicate id")
	ErrNegativePrice  = errors.New("negative price")
	ErrMissingField   = errors.New("missing required field")
)

// Catalog is an ordered, validated, read-only list of books.
// It always holds at least one book.
type Catalog struct {
	books []Book
	byID  map[string]int
}

// New validates books and builds a catalog. Empty IDs are derived from the
// title with Slug.
func New(books ...Book) (*Catalog, error) {
	if len(books) == 0 {
		return nil, ErrEmpty
	}

	c := &Catalog{
		books: make([]Book, len(books)),
		byID:  make(map[string]int, len(books)),
	}
	titles := make(map[string]bool, len(books))

	for i, b := range books {
		if b.Title == "" {
			return nil, fmt.Errorf("book %d: title: %w", i, ErrMissingField)
		}
		if b.ImageRef == "" {
			return nil, fmt.Errorf("book %q: image ref: %w", b.Title, ErrMissingField)
		}
		if b.Price < 0 {
			return nil, fmt.Errorf("book %q: %w", b.Title, ErrNegativePrice)
		}
		if titles[b.Title] {
			return nil, fmt.Errorf("book %q: %w", b.Title, ErrDuplicateTitle)
		}
		titles[b.Title] = true

		if b.ID == "" {
			b.ID = Slug(b.Title)
		}
		if _, ok := c.byID[b.ID]; ok {
			return nil, fmt.Errorf("book %q: id %q: %w", b.Title, b.ID, ErrDuplicateID)
		}
		c.byID[b.ID] = i
		c.books[i] = b
	}

	debug.Log(debug.CATALOG, "catalog built with %d books", len(c.books))
	return c, nil
}

// MustNew is like New but panics on an invalid catalog. Only use it for
// compiled-in data.
func MustNew(books ...Book) *Catalog {
	c, err := New(books...)
	if err != nil {
		panic(fmt.Sprintf("catalog: %v", err))
	}
	return c
}

// Len returns the number of books.
func (c *Catalog) Len() int { return len(c.books) }

// First returns the first book. A catalog is never empty.
func (c *Catalog) First() Book { return c.books[0] }

// At returns the book at index i.
func (c *Catalog) At(i int) Book { return c.books[i] }

// All returns a copy of the books in catalog order.
func (c *Catalog) All() []Book {
	out := make([]Book, len(c.books))
	copy(out, c.books)
	return out
}

// ByID looks a book up by its identifier.
func (c *Catalog) ByID(id string) (Book, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Book{}, false
	}
	return c.books[i], true
}

// ByTitle looks a book up by its display title.
func (c *Catalog) ByTitle(title string) (Book, bool) {
	for _, b := range c.books {
		if b.Title == title {
			return b, true
		}
	}
	return Book{}, false
}

// Index returns the position of the book with the given id, or -1.
func (c *Catalog) Index(id string) int {
	if i, ok := c.byID[id]; ok {
		return i
	}
	return -1
}
