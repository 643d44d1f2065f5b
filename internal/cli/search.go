package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"gorm.io/gorm/logger"

	"github.com/mrlokans/bookhub/internal/config"
	"github.com/mrlokans/bookhub/internal/database"
	"github.com/mrlokans/bookhub/internal/database/books"
	"github.com/mrlokans/bookhub/internal/query"
)

// SearchCommand runs the same search as the web form and prints the hits.
type SearchCommand struct {
	Criteria     query.Criteria
	DatabasePath string

	Out io.Writer
}

func NewSearchCommand() *SearchCommand {
	return &SearchCommand{Out: os.Stdout}
}

func (cmd *SearchCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("search", flag.ExitOnError)

	fs.StringVar(&cmd.Criteria.Title, "title", "", "Title fragment")
	fs.StringVar(&cmd.Criteria.Author, "author", "", "Author fragment")
	fs.StringVar(&cmd.Criteria.Renter, "renter", "", "Renter fragment; empty includes books that are not lent out")
	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the database file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s search [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Search books ignoring case and accents.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s search -author jokai\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s search -renter kovacs -db ./books.db\n", os.Args[0])
	}

	return fs.Parse(args)
}

func (cmd *SearchCommand) Run() error {
	if _, err := os.Stat(cmd.DatabasePath); os.IsNotExist(err) {
		return fmt.Errorf("database file does not exist: %s", cmd.DatabasePath)
	}

	db, err := database.NewDatabase(cmd.DatabasePath, logger.Warn)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	engine := query.NewEngine(db.DB, books.NewRepository(db.DB))
	found, err := engine.Search(context.Background(), cmd.Criteria)
	if err != nil {
		return fmt.Errorf("failed to search books: %w", err)
	}

	for _, book := range found {
		line := fmt.Sprintf("%d. \"%s\" by %s", book.ID, book.Title, book.Author)
		if book.IsLent() {
			line += " (lent to " + book.RenterName() + ")"
		}
		fmt.Fprintln(cmd.Out, line)
	}
	fmt.Fprintf(cmd.Out, "%d books found\n", len(found))
	return nil
}
