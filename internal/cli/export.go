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
	"github.com/mrlokans/bookhub/internal/exporters"
)

type ExportCommand struct {
	OutputPath   string
	DatabasePath string

	Out io.Writer
}

func NewExportCommand() *ExportCommand {
	return &ExportCommand{Out: os.Stdout}
}

func (cmd *ExportCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("export", flag.ExitOnError)

	fs.StringVar(&cmd.OutputPath, "o", exporters.FileName, "Path of the xlsx file to write")
	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the database file")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s export [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Export the books table to an xlsx spreadsheet.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s export\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s export -o ./backups/books.xlsx -db ./books.db\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.OutputPath == "" {
		fs.Usage()
		return fmt.Errorf("output path is required")
	}

	return nil
}

func (cmd *ExportCommand) Run() error {
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

	result, err := exporters.WriteFile(context.Background(), books.NewRepository(db.DB), cmd.OutputPath)
	if err != nil {
		return fmt.Errorf("failed to export books: %w", err)
	}

	fmt.Fprintf(cmd.Out, "Exported %d books (%d columns) to %s\n", result.Rows, result.Columns, cmd.OutputPath)
	return nil
}
