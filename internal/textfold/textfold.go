// Package textfold builds comparison keys for case- and accent-insensitive
// matching of Hungarian text.
//
// The same fold is available in Go (Fold) and inside SQLite as the scalar
// function named by SQLFunction, so filters can run either in memory or in
// the store and agree on the result.
package textfold

import (
	"strings"

	"github.com/mattn/go-sqlite3"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// SQLFunction is the name of the SQL scalar function registered by Register.
const SQLFunction = "fold_text"

var accentFolder = strings.NewReplacer(
	"á", "a",
	"é", "e",
	"í", "i",
	"ó", "o",
	"ö", "o",
	"ő", "o",
	"ú", "u",
	"ü", "u",
	"ű", "u",
)

// Fold lowercases s using Hungarian casing rules and replaces the accented
// vowels á é í ó ö ő ú ü ű with their plain counterparts. The result is only
// meant for comparison and is never stored.
func Fold(s string) string {
	if s == "" {
		return ""
	}
	// cases.Caser keeps state, so each call gets its own.
	lower := cases.Lower(language.Hungarian).String(norm.NFC.String(s))
	return accentFolder.Replace(lower)
}

// FoldPtr folds a nullable value. ok is false for nil.
func FoldPtr(s *string) (folded string, ok bool) {
	if s == nil {
		return "", false
	}
	return Fold(*s), true
}

// sqlFold is the SQLite side of Fold. NULL stays NULL so that a missing value
// never satisfies a containment predicate. The driver hands NULL to an any
// parameter as a nil []byte.
func sqlFold(v any) any {
	switch val := v.(type) {
	case nil:
		return nil
	case string:
		return Fold(val)
	case []byte:
		if val == nil {
			return nil
		}
		return Fold(string(val))
	default:
		return val
	}
}

// Register installs SQLFunction on a SQLite connection. Use it as (part of)
// a sqlite3.SQLiteDriver ConnectHook.
func Register(conn *sqlite3.SQLiteConn) error {
	return conn.RegisterFunc(SQLFunction, sqlFold, true)
}
