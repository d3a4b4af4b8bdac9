package library

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// loanDays is how long a member may keep a borrowed book.
const loanDays = 14

// dateLayout renders record dates as dd/MM/yyyy.
const dateLayout = "02/01/2006"

// Book represents a catalog entry and its available stock.
type Book struct {
	ID       int    `json:"id"`
	ISBN     string `json:"isbn"`
	Title    string `json:"title"`
	Author   string `json:"author"`
	Year     int    `json:"year"`
	Genre    string `json:"genre"`
	Quantity int    `json:"quantity"`
}

// Equal reports whether b and o describe the same title. ISBN, ID and
// Quantity are not part of the comparison.
func (b Book) Equal(o Book) bool {
	return b.Title == o.Title &&
		b.Author == o.Author &&
		b.Year == o.Year &&
		b.Genre == o.Genre
}

func (b Book) String() string {
	return fmt.Sprintf("ID: %d, ISBN: %s, Title: %s, Author: %s, Year: %d, Genre: %s, Quantity: %d",
		b.ID, b.ISBN, b.Title, b.Author, b.Year, b.Genre, b.Quantity)
}

// Member represents a registered library member and the books they hold.
type Member struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Borrowed []Book `json:"borrowed"`
}

// Equal compares members by name.
func (m Member) Equal(o Member) bool { return m.Name == o.Name }

func (m Member) String() string {
	ids := make([]string, 0, len(m.Borrowed))
	for _, b := range m.Borrowed {
		ids = append(ids, fmt.Sprint(b.ID))
	}
	return fmt.Sprintf("ID: %d, Name: %s, Books Borrowed: %s", m.ID, m.Name, strings.Join(ids, ", "))
}

// clone detaches the borrowed list so callers can't mutate stored state.
func (m Member) clone() Member {
	m.Borrowed = slices.Clone(m.Borrowed)
	return m
}

// BorrowingRecord logs one loan of a book to a member.
type BorrowingRecord struct {
	BookID   int       `json:"book_id"`
	MemberID int       `json:"member_id"`
	Date     time.Time `json:"date"`
	DueDate  time.Time `json:"due_date"`
	Returned bool      `json:"returned"`
}

// newBorrowingRecord builds an open record dated on the calendar day of now.
func newBorrowingRecord(bookID, memberID int, now time.Time) BorrowingRecord {
	day := civilDay(now)
	return BorrowingRecord{
		BookID:   bookID,
		MemberID: memberID,
		Date:     day,
		DueDate:  day.AddDate(0, 0, loanDays),
	}
}

// Equal compares every field. Dates match when they fall on the same day.
func (r BorrowingRecord) Equal(o BorrowingRecord) bool {
	return r.BookID == o.BookID &&
		r.MemberID == o.MemberID &&
		sameDay(r.Date, o.Date) &&
		sameDay(r.DueDate, o.DueDate) &&
		r.Returned == o.Returned
}

// Open reports whether the book is still out with the member.
func (r BorrowingRecord) Open() bool { return !r.Returned }

func (r BorrowingRecord) String() string {
	return fmt.Sprintf("Book ID: %d, Member ID: %d, Date: %s, Due Date: %s, Returned: %t",
		r.BookID, r.MemberID, r.Date.Format(dateLayout), r.DueDate.Format(dateLayout), r.Returned)
}

// Loan pairs a borrowed book snapshot with the due date of its open record.
type Loan struct {
	Book    Book
	DueDate time.Time
}

func (l Loan) String() string {
	return fmt.Sprintf("ID: %d, Title: %s, Due Date: %s", l.Book.ID, l.Book.Title, l.DueDate.Format(dateLayout))
}

// BookQuery selects books by ID or by title/author substrings.
// A nil ID means "not searching by ID".
type BookQuery struct {
	ID     *int
	Title  string
	Author string
}

// QueryByID builds a query matching a single book ID.
func QueryByID(id int) BookQuery { return BookQuery{ID: &id} }

// QueryByTitle builds a case-insensitive title substring query.
func QueryByTitle(title string) BookQuery { return BookQuery{Title: title} }

// QueryByAuthor builds a case-insensitive author substring query.
func QueryByAuthor(author string) BookQuery { return BookQuery{Author: author} }

// Empty reports whether no criterion is set.
func (q BookQuery) Empty() bool {
	return (q.ID == nil || *q.ID < 0) && q.Title == "" && q.Author == ""
}

func civilDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// containsFold reports whether substr is within s, ignoring case.
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
