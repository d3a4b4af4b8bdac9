package library

import (
	"iter"
	"sort"
)

// Catalog holds books ordered by ID. IDs come from the catalog's own
// allocator and only grow, so appending keeps the slice sorted.
type Catalog struct {
	books []Book
	ids   idAllocator
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog { return &Catalog{} }

// Add stores candidate. When an equal book already exists its quantity is
// increased by candidate.Quantity and the merged entry is returned; otherwise
// candidate gets the next ID and is appended. A negative quantity counts as 0.
func (c *Catalog) Add(candidate Book) (Book, bool) {
	candidate.Quantity = max(candidate.Quantity, 0)
	for i, b := range c.books {
		if b.Equal(candidate) {
			c.books[i].Quantity += candidate.Quantity
			return c.books[i], true
		}
	}
	candidate.ID = c.ids.next()
	c.books = append(c.books, candidate)
	return candidate, false
}

// Get finds a book by ID with a binary search.
func (c *Catalog) Get(id int) (Book, bool) {
	i, ok := c.index(id)
	if !ok {
		return Book{}, false
	}
	return c.books[i], true
}

func (c *Catalog) index(id int) (int, bool) {
	i := sort.Search(len(c.books), func(i int) bool { return c.books[i].ID >= id })
	if i < len(c.books) && c.books[i].ID == id {
		return i, true
	}
	return 0, false
}

// Replace overwrites the stored book with the same ID.
func (c *Catalog) Replace(b Book) bool {
	i, ok := c.index(b.ID)
	if !ok {
		return false
	}
	c.books[i] = b
	return true
}

// Search runs q against the catalog. An ID lookup that hits returns just
// that book. Otherwise every book is checked against the title and the
// author substrings separately, so a book matching both appears twice.
func (c *Catalog) Search(q BookQuery) []Book {
	found := []Book{}
	if q.Empty() {
		return found
	}
	if q.ID != nil && *q.ID >= 0 {
		if b, ok := c.Get(*q.ID); ok {
			return append(found, b)
		}
	}
	for _, b := range c.books {
		if q.Title != "" && containsFold(b.Title, q.Title) {
			found = append(found, b)
		}
		if q.Author != "" && containsFold(b.Author, q.Author) {
			found = append(found, b)
		}
	}
	return found
}

// All yields books in ID order. A non-empty genre keeps only books whose
// genre contains it, ignoring case.
func (c *Catalog) All(genre string) iter.Seq[Book] {
	return func(yield func(Book) bool) {
		for _, b := range c.books {
			if genre != "" && !containsFold(b.Genre, genre) {
				continue
			}
			if !yield(b) {
				return
			}
		}
	}
}

// Len returns the number of distinct catalog entries.
func (c *Catalog) Len() int { return len(c.books) }
