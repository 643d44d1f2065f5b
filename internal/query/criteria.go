// Package query builds filtered and ordered book listings.
//
// Filters are expressed once, as Predicates over an enumerated set of
// fields, and can be evaluated either by the store (Predicate.Expression)
// or in memory (Predicate.Matches). Both paths fold text with textfold, so
// they select the same records.
package query

import (
	"fmt"
	"sort"
	"strings"

	"gorm.io/gorm/clause"

	"github.com/mrlokans/bookhub/internal/entities"
	"github.com/mrlokans/bookhub/internal/textfold"
)

// Field is a filterable book field.
type Field int

const (
	FieldTitle Field = iota
	FieldAuthor
	FieldRenter
)

// Fields lists every filterable field.
var Fields = []Field{FieldTitle, FieldAuthor, FieldRenter}

// Column returns the books table column backing the field.
func (f Field) Column() string {
	switch f {
	case FieldTitle:
		return "title"
	case FieldAuthor:
		return "author"
	case FieldRenter:
		return "renter"
	default:
		panic(fmt.Sprintf("query: unknown field %d", int(f)))
	}
}

// Value returns the field's value on b, nil when the value is NULL.
func (f Field) Value(b *entities.Book) *string {
	switch f {
	case FieldTitle:
		return &b.Title
	case FieldAuthor:
		return &b.Author
	case FieldRenter:
		return b.Renter
	default:
		panic(fmt.Sprintf("query: unknown field %d", int(f)))
	}
}

func (f Field) String() string {
	return f.Column()
}

// Predicate requires Field to contain Term, ignoring case and accents.
type Predicate struct {
	Field Field
	Term  string
}

// Expression renders the predicate for the store. The folded term is bound
// as a parameter and matched with instr, so % and _ in the term are literal.
func (p Predicate) Expression() clause.Expression {
	return clause.Expr{
		SQL:  fmt.Sprintf("instr(%s(%s), ?) > 0", textfold.SQLFunction, p.Field.Column()),
		Vars: []any{textfold.Fold(p.Term)},
	}
}

// Matches evaluates the predicate in memory. A NULL value never matches.
func (p Predicate) Matches(b *entities.Book) bool {
	folded, ok := textfold.FoldPtr(p.Field.Value(b))
	if !ok {
		return false
	}
	return strings.Contains(folded, textfold.Fold(p.Term))
}

// Criteria are the optional search terms of the search form.
type Criteria struct {
	Title  string `form:"title" json:"title"`
	Author string `form:"author" json:"author"`
	Renter string `form:"renter" json:"renter"`
}

// Predicates returns the conjunctive filter for c. Title and author are
// always filtered, an empty term matching every value. The renter filter is
// left out when its term is empty, because NULL renters would otherwise
// drop out of an unfiltered search.
func (c Criteria) Predicates() []Predicate {
	predicates := []Predicate{
		{Field: FieldAuthor, Term: c.Author},
		{Field: FieldTitle, Term: c.Title},
	}
	if c.Renter != "" {
		predicates = append(predicates, Predicate{Field: FieldRenter, Term: c.Renter})
	}
	return predicates
}

// Matches reports whether b satisfies every predicate of c.
func (c Criteria) Matches(b *entities.Book) bool {
	for _, p := range c.Predicates() {
		if !p.Matches(b) {
			return false
		}
	}
	return true
}

// Filter applies c to books in memory and orders the result like the store
// does: by folded author, then id.
func (c Criteria) Filter(books []entities.Book) []entities.Book {
	result := []entities.Book{}
	for i := range books {
		if c.Matches(&books[i]) {
			result = append(result, books[i])
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		ai, aj := textfold.Fold(result[i].Author), textfold.Fold(result[j].Author)
		if ai != aj {
			return ai < aj
		}
		return result[i].ID < result[j].ID
	})
	return result
}
