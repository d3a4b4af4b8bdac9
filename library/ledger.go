package library

import "slices"

// Ledger is the append-only log of borrowing records. Records are never
// removed; returning a book flips its record to Returned.
type Ledger struct {
	records []BorrowingRecord
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger { return &Ledger{} }

// Add appends r unless an equal record is already logged, in which case the
// existing record is returned with false.
func (l *Ledger) Add(r BorrowingRecord) (BorrowingRecord, bool) {
	for _, existing := range l.records {
		if existing.Equal(r) {
			return existing, false
		}
	}
	l.records = append(l.records, r)
	return r, true
}

// FindOpen returns the position and value of the first unreturned record
// for the book and member.
func (l *Ledger) FindOpen(bookID, memberID int) (int, BorrowingRecord, bool) {
	for i, r := range l.records {
		if r.BookID == bookID && r.MemberID == memberID && r.Open() {
			return i, r, true
		}
	}
	return -1, BorrowingRecord{}, false
}

// MarkReturned closes the record at index. Returned records are terminal.
func (l *Ledger) MarkReturned(index int) (BorrowingRecord, bool) {
	if index < 0 || index >= len(l.records) || l.records[index].Returned {
		return BorrowingRecord{}, false
	}
	l.records[index].Returned = true
	return l.records[index], true
}

// Records returns a copy of every record in the order they were logged.
func (l *Ledger) Records() []BorrowingRecord { return slices.Clone(l.records) }

// Len returns the number of logged records.
func (l *Ledger) Len() int { return len(l.records) }
