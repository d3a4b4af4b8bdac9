package main

import (
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"library-catalog/library"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if err := newRootCmd(cfg).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(cfg config) *cobra.Command {
	root := &cobra.Command{
		Use:           "library",
		Short:         "In-memory library catalog with an interactive menu",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			mgr, member, err := sessionFromFlags(cmd, cfg)
			if err != nil {
				return err
			}
			in := cmd.InOrStdin()
			newShell(in, cmd.OutOrStdout(), mgr, member.ID, isTerminal(in)).run()
			return nil
		},
	}
	root.PersistentFlags().StringVar(&cfg.Member, "member", cfg.Member, "name of the member the session acts as")
	root.PersistentFlags().BoolVar(&cfg.NoSeed, "no-seed", cfg.NoSeed, "start with an empty catalog")
	root.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn or error")

	root.AddCommand(newBooksCmd(&cfg), newSearchCmd(&cfg))
	return root
}

func newBooksCmd(cfg *config) *cobra.Command {
	var genre string
	cmd := &cobra.Command{
		Use:   "books",
		Short: "List the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			mgr, _, err := sessionFromFlags(cmd, *cfg)
			if err != nil {
				return err
			}
			printBooks(cmd.OutOrStdout(), slices.Collect(mgr.ListBooks(genre)))
			return nil
		},
	}
	cmd.Flags().StringVar(&genre, "genre", "", "only list books whose genre contains this text")
	return cmd
}

func newSearchCmd(cfg *config) *cobra.Command {
	var (
		id            int
		title, author string
	)
	cmd := &cobra.Command{
		Use:   "search",
		Short: "Search the catalog by ID, title or author",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			mgr, _, err := sessionFromFlags(cmd, *cfg)
			if err != nil {
				return err
			}
			q := library.BookQuery{Title: title, Author: author}
			if cmd.Flags().Changed("id") {
				q.ID = &id
			}
			if q.Empty() {
				return fmt.Errorf("no search query specified")
			}
			books := mgr.SearchBooks(q)
			fmt.Fprintf(cmd.OutOrStdout(), "Search result, %d books found:\n", len(books))
			printBooks(cmd.OutOrStdout(), books)
			return nil
		},
	}
	cmd.Flags().IntVar(&id, "id", -1, "book ID")
	cmd.Flags().StringVar(&title, "title", "", "title substring")
	cmd.Flags().StringVar(&author, "author", "", "author substring")
	return cmd
}

func sessionFromFlags(cmd *cobra.Command, cfg config) (*library.LibraryManager, library.Member, error) {
	logger, err := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return nil, library.Member{}, err
	}
	return newSession(cfg, logger)
}

func printBooks(w io.Writer, books []library.Book) {
	if len(books) == 0 {
		fmt.Fprintln(w, "No books found.")
		return
	}

	fmt.Fprintf(w, "%-5s %-30s %-20s %-6s %-18s %s\n", "ID", "Title", "Author", "Year", "Genre", "Quantity")
	fmt.Fprintln(w, strings.Repeat("-", 90))
	for _, b := range books {
		fmt.Fprintf(w, "%-5d %-30s %-20s %-6d %-18s %d\n",
			b.ID,
			truncateString(b.Title, 30),
			truncateString(b.Author, 20),
			b.Year,
			truncateString(b.Genre, 18),
			b.Quantity)
	}
}

// truncateString shortens s to maxLength runes, ending in "...".
func truncateString(s string, maxLength int) string {
	r := []rune(s)
	if len(r) <= maxLength {
		return s
	}
	return string(r[:maxLength-3]) + "..."
}

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
