package library

import "errors"

// Errors returned by the borrowing workflow. They are wrapped with the IDs
// involved; match them with errors.Is.
var (
	// ErrBookNotFound is returned when no catalog entry has the requested ID.
	ErrBookNotFound = errors.New("book not found")

	// ErrMemberNotFound is returned when no member has the requested ID.
	ErrMemberNotFound = errors.New("member not found")

	// ErrRecordNotFound is returned when a return has no matching open loan.
	ErrRecordNotFound = errors.New("borrowing record not found")

	// ErrUnavailable is returned when a book has no copies left.
	ErrUnavailable = errors.New("book not available")

	// ErrAlreadyBorrowed is returned alongside the existing record when an
	// identical loan was already logged today.
	ErrAlreadyBorrowed = errors.New("book already borrowed")
)
