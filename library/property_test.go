package library

import (
	"fmt"
	"testing"
	"time"

	"pgregory.net/rapid"
)

func genBook() *rapid.Generator[Book] {
	return rapid.Custom(func(t *rapid.T) Book {
		return Book{
			ISBN:     rapid.StringMatching(`978-[0-9]{2}-[0-9]`).Draw(t, "isbn"),
			Title:    rapid.SampledFrom([]string{"Dune", "Emma", "Ulysses", "Beloved"}).Draw(t, "title"),
			Author:   rapid.SampledFrom([]string{"Herbert", "Austen", "Joyce", "Morrison"}).Draw(t, "author"),
			Year:     rapid.IntRange(1800, 2024).Draw(t, "year"),
			Genre:    rapid.SampledFrom([]string{"Novel", "SF"}).Draw(t, "genre"),
			Quantity: rapid.IntRange(0, 20).Draw(t, "quantity"),
		}
	})
}

func TestPropertyEqualBooksMergeQuantities(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		b1 := genBook().Draw(t, "b1")
		b2 := b1
		b2.ISBN = rapid.String().Draw(t, "isbn2")
		b2.Quantity = rapid.IntRange(0, 20).Draw(t, "q2")

		c := NewCatalog()
		c.Add(b1)
		merged, _ := c.Add(b2)

		if c.Len() != 1 {
			t.Fatalf("want 1 entry, got %d", c.Len())
		}
		if merged.Quantity != b1.Quantity+b2.Quantity {
			t.Fatalf("quantity = %d, want %d", merged.Quantity, b1.Quantity+b2.Quantity)
		}
	})
}

func TestPropertyGetFindsEveryStoredBook(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		books := rapid.SliceOfN(genBook(), 0, 30).Draw(t, "books")

		c := NewCatalog()
		stored := map[int]Book{}
		for _, b := range books {
			got, _ := c.Add(b)
			stored[got.ID] = got
		}

		probe := rapid.IntRange(-5, len(books)+5).Draw(t, "probe")
		_, ok := c.Get(probe)
		if _, want := stored[probe]; want != ok {
			t.Fatalf("Get(%d) found=%v, want %v", probe, ok, want)
		}
		for id := range stored {
			got, ok := c.Get(id)
			if !ok || got.ID != id {
				t.Fatalf("Get(%d) = %v, %v", id, got, ok)
			}
		}
	})
}

func TestPropertyBorrowReturnConservesQuantity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		lm := NewLibraryManager(WithClock(func() time.Time {
			return time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC)
		}))
		quantity := rapid.IntRange(0, 5).Draw(t, "quantity")
		b := lm.AddBook("", "Dune", "Herbert", 1965, "SF", quantity)

		n := rapid.IntRange(1, 6).Draw(t, "members")
		var ids []int
		for i := range n {
			m, _ := lm.AddMember(fmt.Sprintf("member-%d", i))
			ids = append(ids, m.ID)
		}

		var borrowed []int
		for _, id := range ids {
			before, _ := lm.GetBook(b.ID)
			_, err := lm.BorrowBook(b.ID, id)
			after, _ := lm.GetBook(b.ID)
			switch {
			case err == nil:
				if after.Quantity != before.Quantity-1 {
					t.Fatalf("borrow moved quantity %d -> %d", before.Quantity, after.Quantity)
				}
				borrowed = append(borrowed, id)
			case before.Quantity != 0:
				t.Fatalf("borrow failed with stock %d: %v", before.Quantity, err)
			}
		}
		if len(borrowed) != min(n, quantity) {
			t.Fatalf("%d loans, want %d", len(borrowed), min(n, quantity))
		}

		for _, id := range borrowed {
			if err := lm.ReturnBook(b.ID, id); err != nil {
				t.Fatalf("return: %v", err)
			}
		}
		final, _ := lm.GetBook(b.ID)
		if final.Quantity != quantity {
			t.Fatalf("quantity %d after round trip, want %d", final.Quantity, quantity)
		}
		for _, r := range lm.Records() {
			if !r.Returned {
				t.Fatalf("record still open: %v", r)
			}
		}
	})
}
