package entities

// UnknownAuthor is stored when a book is created without an author.
const UnknownAuthor = "Ismeretlen szerző"

// Book is a lendable book record. Renter is nil while the book is on the shelf.
type Book struct {
	ID     uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Title  string  `json:"title"`
	Author string  `json:"author"`
	Renter *string `json:"renter"`
}

func (Book) TableName() string {
	return "books"
}

// IsLent reports whether the book currently has a renter. An empty renter
// string is still a renter value.
func (b *Book) IsLent() bool {
	return b.Renter != nil
}

// RenterName returns the renter or an empty string.
func (b *Book) RenterName() string {
	if b.Renter == nil {
		return ""
	}
	return *b.Renter
}
