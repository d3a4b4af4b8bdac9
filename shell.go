package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"library-catalog/library"
)

const warning = "Invalid input. Please try again!"

const (
	choiceAddBook = iota + 1
	choiceViewBooks
	choiceSearchBooks
	choiceBorrowBook
	choiceReturnBook
	choiceExit
)

var menu = []string{
	choiceAddBook:     "Add Book",
	choiceViewBooks:   "View Books",
	choiceSearchBooks: "Search Books",
	choiceBorrowBook:  "Borrow Book",
	choiceReturnBook:  "Return Book",
	choiceExit:        "Exit",
}

// shell is the menu-driven front end. It acts on behalf of a single member.
type shell struct {
	sc       *bufio.Scanner
	out      io.Writer
	mgr      *library.LibraryManager
	memberID int

	// interactive enables screen clearing and the pause between actions.
	interactive bool
}

func newShell(in io.Reader, out io.Writer, mgr *library.LibraryManager, memberID int, interactive bool) *shell {
	return &shell{
		sc:          bufio.NewScanner(in),
		out:         out,
		mgr:         mgr,
		memberID:    memberID,
		interactive: interactive,
	}
}

// run loops over the main menu until Exit is chosen or input ends.
func (s *shell) run() {
	if s.interactive {
		fmt.Fprint(s.out, "\033[2J\033[H")
	}
	for {
		fmt.Fprintln(s.out, "Welcome to the Library Management System!")
		for i := choiceAddBook; i <= choiceExit; i++ {
			fmt.Fprintf(s.out, "%d. %s\n", i, menu[i])
		}
		choice, ok := s.readInt("Enter your choice: ", choiceAddBook, choiceExit)
		if !ok {
			return
		}

		switch choice {
		case choiceAddBook:
			fmt.Fprintln(s.out, "Adding a book:")
			s.handleAddBook()
		case choiceViewBooks:
			fmt.Fprintln(s.out, "Viewing books: ")
			s.handleViewBooks()
		case choiceSearchBooks:
			fmt.Fprintln(s.out, "Searching for a book:")
			s.handleSearchBooks()
		case choiceBorrowBook:
			fmt.Fprintln(s.out, "Borrowing a book:")
			s.handleBorrow()
		case choiceReturnBook:
			fmt.Fprintln(s.out, "Returning a book:")
			s.handleReturn()
		case choiceExit:
			fmt.Fprintln(s.out, "Exiting the Library Management System...")
			return
		}

		if s.interactive {
			if _, ok := s.readLine("\nPress enter to continue..."); !ok {
				return
			}
		}
		fmt.Fprintf(s.out, "\n%s\n\n", strings.Repeat("-", 60))
	}
}

func (s *shell) handleAddBook() {
	title, ok := s.readString("Enter the title: ")
	if !ok {
		return
	}
	author, ok := s.readString("Enter the author: ")
	if !ok {
		return
	}
	year, ok := s.readInt("Enter the publication year: ", math.MinInt, math.MaxInt)
	if !ok {
		return
	}
	genre, ok := s.readString("Enter the genre: ")
	if !ok {
		return
	}
	quantity, ok := s.readInt("Enter the quantity: ", 0, math.MaxInt)
	if !ok {
		return
	}
	isbn, ok := s.readLine("Enter the ISBN (optional): ")
	if !ok {
		return
	}

	book := s.mgr.AddBook(strings.TrimSpace(isbn), title, author, year, genre, quantity)
	fmt.Fprintln(s.out, "Book added successfully:")
	fmt.Fprintln(s.out, book)
}

func (s *shell) handleViewBooks() {
	fmt.Fprintln(s.out, "1. All Books")
	fmt.Fprintln(s.out, "2. By Genre")
	choice, ok := s.readInt("Enter your choice: ", 1, 2)
	if !ok {
		return
	}

	genre := ""
	if choice == 2 {
		if genre, ok = s.readString("Enter the genre: "); !ok {
			return
		}
		fmt.Fprintf(s.out, "All Books in [%s] genre: \n", genre)
	} else {
		fmt.Fprintln(s.out, "All Books: ")
	}
	s.listBooks(genre)
}

func (s *shell) listBooks(genre string) {
	found := false
	for b := range s.mgr.ListBooks(genre) {
		fmt.Fprintln(s.out, b)
		found = true
	}
	if !found {
		fmt.Fprintln(s.out, "No books found.")
	}
}

func (s *shell) handleSearchBooks() {
	fmt.Fprintln(s.out, "1. Search by ID")
	fmt.Fprintln(s.out, "2. Search by Title")
	fmt.Fprintln(s.out, "3. Search by Author")
	choice, ok := s.readInt("Enter your choice: ", 1, 3)
	if !ok {
		return
	}

	var query library.BookQuery
	switch choice {
	case 1:
		id, ok := s.readInt("Enter the ID: ", math.MinInt, math.MaxInt)
		if !ok {
			return
		}
		query = library.QueryByID(id)
	case 2:
		title, ok := s.readString("Enter the title: ")
		if !ok {
			return
		}
		query = library.QueryByTitle(title)
	case 3:
		author, ok := s.readString("Enter the author: ")
		if !ok {
			return
		}
		query = library.QueryByAuthor(author)
	}

	books := s.mgr.SearchBooks(query)
	fmt.Fprintf(s.out, "Search result, %d books found: \n", len(books))
	for _, b := range books {
		fmt.Fprintln(s.out, b)
	}
}

func (s *shell) showBorrowed() {
	loans, err := s.mgr.BorrowedBooks(s.memberID)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	if len(loans) == 0 {
		fmt.Fprintln(s.out, "No books borrowed by you.")
		return
	}
	fmt.Fprintln(s.out, "Books borrowed by you:")
	for _, l := range loans {
		fmt.Fprintln(s.out, l)
	}
}

func (s *shell) handleBorrow() {
	fmt.Fprintln(s.out, "Available Books: ")
	s.listBooks("")
	s.showBorrowed()

	bookID, ok := s.readInt("Enter the book ID: ", math.MinInt, math.MaxInt)
	if !ok {
		return
	}

	record, err := s.mgr.BorrowBook(bookID, s.memberID)
	switch {
	case err == nil:
		fmt.Fprintln(s.out, "You have successfully borrowed the book, borrowing record shows as below:")
	case errors.Is(err, library.ErrAlreadyBorrowed):
		fmt.Fprintln(s.out, "You already borrowed the book, borrowing record shows as below:")
	case errors.Is(err, library.ErrBookNotFound):
		fmt.Fprintln(s.out, "Book not found.")
		return
	case errors.Is(err, library.ErrUnavailable):
		fmt.Fprintln(s.out, "Book not available.")
		return
	default:
		fmt.Fprintf(s.out, "Error borrowing book: %v\n", err)
		return
	}
	fmt.Fprintln(s.out, record)
}

func (s *shell) handleReturn() {
	s.showBorrowed()

	bookID, ok := s.readInt("\nEnter the book ID to return: ", math.MinInt, math.MaxInt)
	if !ok {
		return
	}

	err := s.mgr.ReturnBook(bookID, s.memberID)
	switch {
	case err == nil:
		book, _ := s.mgr.GetBook(bookID)
		fmt.Fprintf(s.out, "Returned the book ID: %d - %s\n", book.ID, book.Title)
	case errors.Is(err, library.ErrBookNotFound):
		fmt.Fprintln(s.out, "Book not found.")
	case errors.Is(err, library.ErrRecordNotFound):
		fmt.Fprintln(s.out, "Borrowing record not found.")
	default:
		fmt.Fprintf(s.out, "Error returning book: %v\n", err)
	}
}

// ------------------ Input helpers ------------------

// readLine prompts once and returns the raw line. ok is false at end of input.
func (s *shell) readLine(prompt string) (string, bool) {
	fmt.Fprint(s.out, prompt)
	if !s.sc.Scan() {
		return "", false
	}
	return s.sc.Text(), true
}

// readString re-prompts until a non-blank answer is given.
func (s *shell) readString(prompt string) (string, bool) {
	for {
		line, ok := s.readLine(prompt)
		if !ok {
			return "", false
		}
		if v := strings.TrimSpace(line); v != "" {
			return v, true
		}
		fmt.Fprintln(s.out, warning)
	}
}

// readInt re-prompts until an integer within [lo, hi] is given.
func (s *shell) readInt(prompt string, lo, hi int) (int, bool) {
	for {
		line, ok := s.readLine(prompt)
		if !ok {
			return 0, false
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil && n >= lo && n <= hi {
			return n, true
		}
		fmt.Fprintln(s.out, warning)
	}
}
