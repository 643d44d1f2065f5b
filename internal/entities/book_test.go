package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBook_Renter(t *testing.T) {
	empty := ""
	name := "Kiss Anna"

	tests := []struct {
		name     string
		renter   *string
		lent     bool
		expected string
	}{
		{"on the shelf", nil, false, ""},
		{"empty renter is still lent", &empty, true, ""},
		{"named renter", &name, true, "Kiss Anna"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Book{Renter: tt.renter}
			assert.Equal(t, tt.lent, b.IsLent())
			assert.Equal(t, tt.expected, b.RenterName())
		})
	}
}

func TestBook_TableName(t *testing.T) {
	assert.Equal(t, "books", Book{}.TableName())
}
