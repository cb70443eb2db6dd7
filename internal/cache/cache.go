// Package cache provides the optional word-value cache used by the gematria
// context for repeated calculations over the same corpus.
package cache

// Store defines the interface for caching calculated values.
type Store interface {
	Get(key string) (int, bool)
	Set(key string, value int)
	Flush()
}

// Key builds a cache key from a method name and a processed word. Values are
// only comparable within one method, so the method is part of the key.
func Key(method, word string) string {
	return "gematria:v1:" + method + ":" + word
}
