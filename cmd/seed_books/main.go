// Command seed_books creates a demo database with Hungarian classics, some of
// them lent out.
// Usage: go run cmd/seed_books/main.go [-db path/to/demo.db]
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"gorm.io/gorm/logger"

	"github.com/mrlokans/bookhub/internal/database"
	"github.com/mrlokans/bookhub/internal/database/books"
)

const defaultDemoDatabasePath = "./demo/demo.db"

type demoBook struct {
	Title  string
	Author string
	Renter string
}

func main() {
	dbPath := flag.String("db", defaultDemoDatabasePath, "path to the demo database file")
	flag.Parse()

	log.Printf("Generating demo database at %s...", *dbPath)

	// Delete existing demo database to start fresh
	if err := os.Remove(*dbPath); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Failed to remove existing demo database: %v", err)
	}

	db, err := database.NewDatabase(*dbPath, logger.Warn)
	if err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}
	defer db.Close()

	repo := books.NewRepository(db.DB)
	ctx := context.Background()

	for _, b := range demoBooks() {
		author := b.Author
		var renter *string
		if b.Renter != "" {
			renter = &b.Renter
		}

		book, err := repo.Create(ctx, b.Title, &author, renter)
		if err != nil {
			log.Printf("Failed to save book %s: %v", b.Title, err)
			continue
		}
		log.Printf("Saved: %s by %s (id %d)", book.Title, book.Author, book.ID)
	}

	log.Println("Demo database generated successfully!")
}

func demoBooks() []demoBook {
	return []demoBook{
		{Title: "Egri csillagok", Author: "Gárdonyi Géza", Renter: "Kovács Éva"},
		{Title: "A láthatatlan ember", Author: "Gárdonyi Géza"},
		{Title: "Az arany ember", Author: "Jókai Mór"},
		{Title: "A kőszívű ember fiai", Author: "Jókai Mór", Renter: "Szabó Ödön"},
		{Title: "Az ember tragédiája", Author: "Madách Imre"},
		{Title: "Toldi", Author: "Arany János", Renter: "Tóth Ágnes"},
		{Title: "János vitéz", Author: "Petőfi Sándor"},
		{Title: "Légy jó mindhalálig", Author: "Móricz Zsigmond"},
		{Title: "A Pál utcai fiúk", Author: "Molnár Ferenc", Renter: "Nagy Ürsula"},
		{Title: "Abigél", Author: "Szabó Magda"},
		{Title: "Tüskevár", Author: "Fekete István"},
		{Title: "Édes Anna", Author: "Kosztolányi Dezső"},
	}
}
