package library

import "fmt"

// DefaultMemberName is the member the shell acts as unless told otherwise.
const DefaultMemberName = "JJ"

// seedBooks is the sample catalog loaded at startup.
var seedBooks = []Book{
	{ISBN: "978-16-0", Title: "The Lost Treasure", Author: "Jane Smith", Year: 2003, Genre: "Adventure", Quantity: 10},
	{ISBN: "978-16-1", Title: "Mysteries of the Mind", Author: "John Doe", Year: 2010, Genre: "Psychology", Quantity: 7},
	{ISBN: "978-16-2", Title: "Galactic Horizons", Author: "Emily Clark", Year: 2017, Genre: "Science Fiction", Quantity: 12},
	{ISBN: "978-16-3", Title: "Whispers in the Dark", Author: "Michael Johnson", Year: 1999, Genre: "Horror", Quantity: 4},
	{ISBN: "978-16-4", Title: "The Art of War", Author: "Sun Tzu", Year: 500, Genre: "Military", Quantity: 1},
}

// Seed loads the sample catalog, registers memberName and makes it the
// default member. An empty memberName falls back to DefaultMemberName.
func Seed(lm *LibraryManager, memberName string) (Member, error) {
	for _, b := range seedBooks {
		lm.AddBook(b.ISBN, b.Title, b.Author, b.Year, b.Genre, b.Quantity)
	}
	if memberName == "" {
		memberName = DefaultMemberName
	}
	m, _ := lm.AddMember(memberName)
	if err := lm.SetDefaultMember(m.ID); err != nil {
		return Member{}, fmt.Errorf("seed default member: %w", err)
	}
	return m, nil
}
