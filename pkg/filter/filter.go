// Package filter narrows an item collection to the items whose name or
// description contains a search term.
//
// Matching is a case-insensitive substring test. Both the term and the two
// item fields are passed through Fold, which applies simple Unicode case
// folding with no locale-specific rules. An empty term matches every item.
// The result always keeps the relative order of the input.
package filter

import (
	"iter"
	"strings"

	"golang.org/x/text/cases"

	"github.com/pluqqy/filterlist/pkg/models"
)

// Fold returns the case-folded form of s used for matching.
func Fold(s string) string {
	return cases.Fold().String(s)
}

// Matcher is a search term prepared for repeated matching. A Matcher holds a
// stateful caser and must not be shared between goroutines.
type Matcher struct {
	term   string
	folded string
	caser  cases.Caser
}

// NewMatcher prepares term for matching.
func NewMatcher(term string) *Matcher {
	caser := cases.Fold()
	return &Matcher{
		term:   term,
		folded: caser.String(term),
		caser:  caser,
	}
}

// Term returns the term as it was given.
func (m *Matcher) Term() string {
	return m.term
}

// Empty reports whether the matcher accepts every item.
func (m *Matcher) Empty() bool {
	return m.folded == ""
}

// Match reports whether the item's name or description contains the term.
func (m *Matcher) Match(item models.Item) bool {
	if m.Empty() {
		return true
	}
	if strings.Contains(m.caser.String(item.Name), m.folded) {
		return true
	}
	return strings.Contains(m.caser.String(item.Description), m.folded)
}

// Matches reports whether a single item matches term.
func Matches(item models.Item, term string) bool {
	return NewMatcher(term).Match(item)
}

// Filter returns the items matching term, in input order. The returned slice
// never aliases items and is non-nil even when nothing matches.
func Filter(items []models.Item, term string) []models.Item {
	m := NewMatcher(term)
	if m.Empty() {
		return models.CloneItems(items)
	}

	result := make([]models.Item, 0, len(items))
	for _, item := range items {
		if m.Match(item) {
			result = append(result, item)
		}
	}
	return result
}

// Seq is the lazy form of Filter. It yields the same items in the same order
// and may be iterated more than once.
func Seq(items []models.Item, term string) iter.Seq[models.Item] {
	return func(yield func(models.Item) bool) {
		m := NewMatcher(term)
		for _, item := range items {
			if !m.Match(item) {
				continue
			}
			if !yield(item) {
				return
			}
		}
	}
}
