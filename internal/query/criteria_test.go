package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/clause"

	"github.com/mrlokans/bookhub/internal/entities"
)

func strPtr(s string) *string {
	return &s
}

func TestField(t *testing.T) {
	book := &entities.Book{ID: 1, Title: "Egri csillagok", Author: "Gárdonyi Géza", Renter: strPtr("Kati")}

	t.Run("maps every field to a column", func(t *testing.T) {
		columns := map[Field]string{}
		for _, f := range Fields {
			columns[f] = f.Column()
		}
		assert.Equal(t, map[Field]string{
			FieldTitle:  "title",
			FieldAuthor: "author",
			FieldRenter: "renter",
		}, columns)
	})

	t.Run("reads typed values", func(t *testing.T) {
		assert.Equal(t, "Egri csillagok", *FieldTitle.Value(book))
		assert.Equal(t, "Gárdonyi Géza", *FieldAuthor.Value(book))
		assert.Equal(t, "Kati", *FieldRenter.Value(book))
		assert.Nil(t, FieldRenter.Value(&entities.Book{}))
	})

	t.Run("panics on unknown field", func(t *testing.T) {
		assert.Panics(t, func() { Field(99).Column() })
		assert.Panics(t, func() { Field(99).Value(book) })
	})
}

func TestPredicate_Expression(t *testing.T) {
	expr, ok := Predicate{Field: FieldAuthor, Term: "GÁRDONYI"}.Expression().(clause.Expr)
	require.True(t, ok)
	assert.Equal(t, "instr(fold_text(author), ?) > 0", expr.SQL)
	assert.Equal(t, []any{"gardonyi"}, expr.Vars)
}

func TestPredicate_Matches(t *testing.T) {
	book := &entities.Book{Title: "A Pál utcai fiúk", Author: "Molnár Ferenc"}

	tests := []struct {
		name      string
		predicate Predicate
		expected  bool
	}{
		{"case insensitive", Predicate{FieldAuthor, "MOLNÁR"}, true},
		{"accent insensitive", Predicate{FieldAuthor, "molnar"}, true},
		{"substring", Predicate{FieldTitle, "utcai"}, true},
		{"empty term matches", Predicate{FieldTitle, ""}, true},
		{"no match", Predicate{FieldTitle, "Egri"}, false},
		{"nil renter never matches", Predicate{FieldRenter, "x"}, false},
		{"nil renter does not match empty term", Predicate{FieldRenter, ""}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.predicate.Matches(book))
		})
	}
}

func TestCriteria_Predicates(t *testing.T) {
	t.Run("always filters author and title", func(t *testing.T) {
		predicates := Criteria{}.Predicates()
		assert.Equal(t, []Predicate{
			{Field: FieldAuthor, Term: ""},
			{Field: FieldTitle, Term: ""},
		}, predicates)
	})

	t.Run("adds renter only when given", func(t *testing.T) {
		predicates := Criteria{Renter: "Kati"}.Predicates()
		require.Len(t, predicates, 3)
		assert.Equal(t, Predicate{Field: FieldRenter, Term: "Kati"}, predicates[2])
	})
}

func TestCriteria_Filter(t *testing.T) {
	books := []entities.Book{
		{ID: 1, Title: "TEST_TITLE", Author: "TEST_AUTHOR", Renter: strPtr("TEST_RENTER")},
		{ID: 2, Title: "Egri csillagok", Author: "Gárdonyi Géza"},
		{ID: 3, Title: "Az ember tragédiája", Author: "Madách Imre", Renter: strPtr("")},
		{ID: 4, Title: "Nyugtalanság völgye", Author: "Ady Endre"},
		{ID: 5, Title: "Új versek", Author: "ÁDÁM Péter"},
	}

	t.Run("empty criteria keep every book", func(t *testing.T) {
		result := Criteria{}.Filter(books)
		assert.Len(t, result, len(books))
	})

	t.Run("orders by folded author then id", func(t *testing.T) {
		result := Criteria{}.Filter(books)
		var ids []uint
		for _, b := range result {
			ids = append(ids, b.ID)
		}
		// adam peter, ady endre, gardonyi geza, madach imre, test_author
		assert.Equal(t, []uint{5, 4, 2, 3, 1}, ids)
	})

	t.Run("skips renter filter on empty term", func(t *testing.T) {
		result := Criteria{Author: "test_author", Title: "test_title"}.Filter(books)
		require.Len(t, result, 1)
		assert.Equal(t, uint(1), result[0].ID)
	})

	t.Run("filters renter when given", func(t *testing.T) {
		result := Criteria{Renter: "TEST_RENTER"}.Filter(books)
		require.Len(t, result, 1)
		assert.Equal(t, uint(1), result[0].ID)

		assert.Empty(t, Criteria{Renter: "NOBODY"}.Filter(books))
	})

	t.Run("returns empty non-nil slice on no match", func(t *testing.T) {
		result := Criteria{Title: "nincs ilyen"}.Filter(books)
		assert.NotNil(t, result)
		assert.Empty(t, result)
	})

	t.Run("does not modify input", func(t *testing.T) {
		Criteria{}.Filter(books)
		assert.Equal(t, uint(1), books[0].ID)
		assert.Equal(t, "Gárdonyi Géza", books[1].Author)
	})
}
