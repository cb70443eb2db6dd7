// Package gematria implements the calculation context: an immutable
// configuration of method and nikkud handling behind the value operations.
package gematria

import (
	"github.com/ashmulev/gematria/internal/cache"
	"github.com/ashmulev/gematria/internal/hebrew"
	"github.com/ashmulev/gematria/internal/method"
)

// Context holds the configuration for gematria calculations. It is immutable
// after construction and safe for concurrent use; build one via Builder.
type Context struct {
	method      method.Method
	countNikkud bool
	distinct    bool
	store       cache.Store // nil when caching is disabled
}

// Method returns the configured calculation method.
func (c *Context) Method() method.Method {
	return c.method
}

// CountNikkud reports whether vowel marks contribute to word values.
func (c *Context) CountNikkud() bool {
	return c.countNikkud
}

// DistinctVowelizations reports whether words differing only in nikkud are
// treated as distinct for grouping.
func (c *Context) DistinctVowelizations() bool {
	return c.distinct
}

// CharValue calculates the value of a single character: the method transform
// for a Hebrew consonant, the nikkud value for a mark when configured, and
// zero otherwise.
func (c *Context) CharValue(r rune) int {
	if idx, ok := hebrew.Index(r); ok {
		return c.method.LetterValue(idx)
	}
	if c.countNikkud && hebrew.IsMark(r) {
		return hebrew.MarkValue(r)
	}
	return 0
}

// WordKey returns the identity of a word for grouping purposes: the
// normalized word itself when vowelizations are distinct, otherwise the word
// with all marks stripped.
func (c *Context) WordKey(word string) string {
	if c.distinct {
		return hebrew.Normalize(word)
	}
	return hebrew.StripMarks(word)
}

// CalculateValue calculates the gematria value of a word or phrase.
// Unrecognized characters contribute zero; empty input yields value zero.
func (c *Context) CalculateValue(text string) Result {
	processed := hebrew.Normalize(text)

	var key string
	if c.store != nil {
		key = cache.Key(c.method.String(), processed)
		if v, ok := c.store.Get(key); ok {
			return Result{Value: v, Method: c.method, Word: c.WordKey(text)}
		}
	}

	sum := 0
	for _, r := range processed {
		sum += c.CharValue(r)
	}

	if c.store != nil {
		c.store.Set(key, sum)
	}
	return Result{Value: sum, Method: c.method, Word: c.WordKey(text)}
}
