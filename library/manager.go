package library

import (
	"fmt"
	"io"
	"iter"
	"log/slog"
	"slices"
	"time"
)

// LibraryManager owns the catalog, the roster and the ledger and runs the
// borrow/return workflow across them. It is not safe for concurrent use.
type LibraryManager struct {
	catalog *Catalog
	members *Members
	ledger  *Ledger

	defaultMemberID int
	now             func() time.Time
	log             *slog.Logger
}

// Option configures a LibraryManager.
type Option func(*LibraryManager)

// WithLogger sets the logger used for workflow events. A nil logger keeps
// the default, which discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(lm *LibraryManager) {
		if l != nil {
			lm.log = l
		}
	}
}

// WithClock replaces time.Now as the source of loan dates.
func WithClock(now func() time.Time) Option {
	return func(lm *LibraryManager) { lm.now = now }
}

// NewLibraryManager returns a manager with empty stores.
func NewLibraryManager(opts ...Option) *LibraryManager {
	lm := &LibraryManager{
		catalog: NewCatalog(),
		members: NewMembers(),
		ledger:  NewLedger(),
		now:     time.Now,
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(lm)
	}
	return lm
}

// ------------------ Book helpers ------------------

// AddBook adds copies to the catalog, merging into an existing entry with
// the same title, author, year and genre.
func (lm *LibraryManager) AddBook(isbn, title, author string, year int, genre string, quantity int) Book {
	b, merged := lm.catalog.Add(Book{
		ISBN:     isbn,
		Title:    title,
		Author:   author,
		Year:     year,
		Genre:    genre,
		Quantity: quantity,
	})
	if merged {
		lm.log.Info("book already exists, quantity updated", "book_id", b.ID, "quantity", b.Quantity)
	} else {
		lm.log.Info("book added", "book_id", b.ID, "title", b.Title)
	}
	return b
}

func (lm *LibraryManager) GetBook(id int) (Book, bool)           { return lm.catalog.Get(id) }
func (lm *LibraryManager) ListBooks(genre string) iter.Seq[Book] { return lm.catalog.All(genre) }

// SearchBooks runs q against the catalog.
func (lm *LibraryManager) SearchBooks(q BookQuery) []Book {
	if q.Empty() {
		lm.log.Debug("no search query specified")
	}
	return lm.catalog.Search(q)
}

// ------------------ Member helpers ------------------

// AddMember registers name. It reports false and returns the existing
// member when the name is taken.
func (lm *LibraryManager) AddMember(name string) (Member, bool) {
	m, added := lm.members.Add(Member{Name: name})
	if !added {
		lm.log.Info("member already registered", "member_id", m.ID, "name", name)
		return m, false
	}
	lm.log.Info("member added", "member_id", m.ID, "name", name)
	return m, true
}

func (lm *LibraryManager) GetMember(id int) (Member, bool)       { return lm.members.Get(id) }
func (lm *LibraryManager) FindMember(name string) (Member, bool) { return lm.members.FindByName(name) }
func (lm *LibraryManager) GetAllMembers() []Member               { return lm.members.All() }

// SetDefaultMember marks the member the shell acts as when none is chosen.
func (lm *LibraryManager) SetDefaultMember(id int) error {
	if _, ok := lm.members.Get(id); !ok {
		return fmt.Errorf("member %d: %w", id, ErrMemberNotFound)
	}
	lm.defaultMemberID = id
	return nil
}

// DefaultMember returns the member set by SetDefaultMember.
func (lm *LibraryManager) DefaultMember() (Member, bool) {
	return lm.members.Get(lm.defaultMemberID)
}

// ------------------ Circulation ------------------

// BorrowBook lends one copy of a book to a member and returns the new
// record. When the same loan was already logged today the existing record
// is returned with ErrAlreadyBorrowed and nothing changes.
func (lm *LibraryManager) BorrowBook(bookID, memberID int) (BorrowingRecord, error) {
	book, ok := lm.catalog.Get(bookID)
	if !ok {
		return BorrowingRecord{}, fmt.Errorf("book %d: %w", bookID, ErrBookNotFound)
	}
	member, ok := lm.members.Get(memberID)
	if !ok {
		return BorrowingRecord{}, fmt.Errorf("member %d: %w", memberID, ErrMemberNotFound)
	}
	if book.Quantity <= 0 {
		return BorrowingRecord{}, fmt.Errorf("book %d: %w", bookID, ErrUnavailable)
	}

	record, added := lm.ledger.Add(newBorrowingRecord(book.ID, member.ID, lm.now()))
	if !added {
		lm.log.Info("duplicate borrow ignored", "book_id", book.ID, "member_id", member.ID)
		return record, fmt.Errorf("book %d, member %d: %w", book.ID, member.ID, ErrAlreadyBorrowed)
	}

	book.Quantity--
	lm.catalog.Replace(book)
	member.Borrowed = append(member.Borrowed, book)
	lm.members.Replace(member)

	lm.log.Info("book borrowed", "book_id", book.ID, "member_id", member.ID, "due", record.DueDate.Format(dateLayout))
	return record, nil
}

// ReturnBook closes the member's open loan of a book and puts the copy back
// into stock.
func (lm *LibraryManager) ReturnBook(bookID, memberID int) error {
	book, ok := lm.catalog.Get(bookID)
	if !ok {
		return fmt.Errorf("book %d: %w", bookID, ErrBookNotFound)
	}
	member, ok := lm.members.Get(memberID)
	if !ok {
		return fmt.Errorf("member %d: %w", memberID, ErrMemberNotFound)
	}
	idx, _, ok := lm.ledger.FindOpen(book.ID, member.ID)
	if !ok {
		return fmt.Errorf("book %d, member %d: %w", book.ID, member.ID, ErrRecordNotFound)
	}

	book.Quantity++
	lm.catalog.Replace(book)
	if i := slices.IndexFunc(member.Borrowed, func(b Book) bool { return b.ID == book.ID }); i >= 0 {
		member.Borrowed = slices.Delete(member.Borrowed, i, i+1)
	}
	lm.members.Replace(member)
	lm.ledger.MarkReturned(idx)

	lm.log.Info("book returned", "book_id", book.ID, "member_id", member.ID)
	return nil
}

// BorrowedBooks lists what a member currently holds together with each
// loan's due date. Copies of the same book pair up with its open records in
// the order they were lent.
func (lm *LibraryManager) BorrowedBooks(memberID int) ([]Loan, error) {
	member, ok := lm.members.Get(memberID)
	if !ok {
		return nil, fmt.Errorf("member %d: %w", memberID, ErrMemberNotFound)
	}
	open := make(map[int][]BorrowingRecord)
	for _, r := range lm.ledger.Records() {
		if r.MemberID == member.ID && r.Open() {
			open[r.BookID] = append(open[r.BookID], r)
		}
	}
	loans := make([]Loan, 0, len(member.Borrowed))
	for _, b := range member.Borrowed {
		loan := Loan{Book: b}
		if recs := open[b.ID]; len(recs) > 0 {
			loan.DueDate = recs[0].DueDate
			open[b.ID] = recs[1:]
		}
		loans = append(loans, loan)
	}
	return loans, nil
}

// Records returns every borrowing record logged so far.
func (lm *LibraryManager) Records() []BorrowingRecord { return lm.ledger.Records() }
