// Package group implements the grouping engine: it feeds tokenized words
// through a gematria context and buckets them by calculated value.
package group

import (
	"strings"
	"unicode"

	"github.com/ashmulev/gematria/internal/gematria"
	"github.com/ashmulev/gematria/internal/hebrew"
)

// Engine groups words by their gematria value using a shared context.
type Engine struct {
	ctx *gematria.Context
}

// NewEngine creates a grouping engine over the given context.
func NewEngine(ctx *gematria.Context) *Engine {
	return &Engine{ctx: ctx}
}

// Context returns the engine's calculation context.
func (e *Engine) Context() *gematria.Context {
	return e.ctx
}

// Tokenize splits text into words on Unicode whitespace and maqaf, dropping
// empty tokens.
func Tokenize(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return unicode.IsSpace(r) || r == hebrew.Maqaf
	})
}

// GroupWords buckets the given words by gematria value, preserving first-seen
// order across values and within each bucket. When the context merges
// vowelized variants, words identical after mark stripping collapse into one
// entry with an occurrence count.
func (e *Engine) GroupWords(words []string) *Result {
	merge := !e.ctx.DistinctVowelizations()
	res := NewResult()
	for _, word := range words {
		r := e.ctx.CalculateValue(word)
		res.add(r.Value, r.Word, e.ctx.WordKey(word), 1, merge)
	}
	return res
}

// GroupText tokenizes text and groups the resulting words.
func (e *Engine) GroupText(text string) *Result {
	return e.GroupWords(Tokenize(text))
}

// MatchValue returns the words in text whose gematria value equals target,
// in appearance order.
func (e *Engine) MatchValue(target int, text string) []string {
	var matches []string
	for _, word := range Tokenize(text) {
		if r := e.ctx.CalculateValue(word); r.Value == target {
			matches = append(matches, r.Word)
		}
	}
	return matches
}

// MatchWord returns the words in text sharing the gematria value of target.
func (e *Engine) MatchWord(target, text string) []string {
	return e.MatchValue(e.ctx.CalculateValue(target).Value, text)
}
