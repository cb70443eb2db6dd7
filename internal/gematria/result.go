package gematria

import "github.com/ashmulev/gematria/internal/method"

// Result is the outcome of a value calculation: the value, the method that
// produced it, and the processed word.
type Result struct {
	Value  int           `json:"value" yaml:"value"`
	Method method.Method `json:"method" yaml:"method"`
	Word   string        `json:"word" yaml:"word"`
}
