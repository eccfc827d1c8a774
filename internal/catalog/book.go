// Package catalog holds the compiled-in list of books shown on the shelf.
package catalog

import (
	"strings"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Cents is a price in minor currency units.
type Cents int64

var pricePrinter = message.NewPrinter(language.English)

// String formats the amount without trailing fraction zeros, e.g. "25.5"
// or "30".
func (c Cents) String() string {
	s := pricePrinter.Sprintf("%.2f", float64(c)/100)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// Dollars returns the amount as a "$" prefixed label.
func (c Cents) Dollars() string {
	return "$" + c.String()
}

// Book is a single catalog record. Books are values and never mutated.
type Book struct {
	ID       string
	Title    string
	Author   string
	ImageRef string // key resolved by the asset store
	Price    Cents
}

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slug derives a stable identifier from a title: lowercase ASCII-ish words
// joined by single dashes. Apostrophes are dropped rather than split on.
func Slug(title string) string {
	s, _, err := transform.String(stripMarks, title)
	if err != nil {
		s = title
	}
	s = strings.ToLower(s)

	var b strings.Builder
	dash := false
	for _, r := range s {
		switch {
		case r == '\'' || r == '’':
			continue
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			dash = false
			b.WriteRune(r)
		default:
			dash = true
		}
	}
	return b.String()
}
