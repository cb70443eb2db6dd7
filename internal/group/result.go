package group

// Entry is one word within a bucket. Count exceeds one only when vowelized
// variants are merged and the same base spelling appears repeatedly.
type Entry struct {
	Word  string `json:"word" yaml:"word"`
	Count int    `json:"count" yaml:"count"`

	// key is the word identity used for merging; it stays internal so that
	// partial results can be combined without recomputing identities.
	key string
}

// Bucket collects the words sharing one gematria value, in order of first
// appearance.
type Bucket struct {
	Value   int
	Entries []Entry

	index map[string]int // key -> position in Entries, used when merging
}

// Words returns the surface forms in the bucket, in appearance order.
func (b *Bucket) Words() []string {
	words := make([]string, len(b.Entries))
	for i, e := range b.Entries {
		words[i] = e.Word
	}
	return words
}

// Result maps gematria values to their word buckets. Iteration order is the
// order in which values were first seen, and entries within a bucket keep
// their appearance order, so output is reproducible for identical input.
type Result struct {
	order   []int
	buckets map[int]*Bucket
}

// NewResult creates an empty grouping result.
func NewResult() *Result {
	return &Result{buckets: make(map[int]*Bucket)}
}

// Len returns the number of distinct values seen.
func (r *Result) Len() int {
	return len(r.order)
}

// Buckets returns the buckets in first-seen order.
func (r *Result) Buckets() []*Bucket {
	out := make([]*Bucket, len(r.order))
	for i, v := range r.order {
		out[i] = r.buckets[v]
	}
	return out
}

// Bucket returns the bucket for a value, or nil if the value never occurred.
func (r *Result) Bucket(value int) *Bucket {
	return r.buckets[value]
}

// add records count occurrences of word under value. When merge is set,
// occurrences sharing the same key collapse into a single entry with a
// running count; otherwise every occurrence appends its own entry.
func (r *Result) add(value int, word, key string, count int, merge bool) {
	b, ok := r.buckets[value]
	if !ok {
		b = &Bucket{Value: value, index: make(map[string]int)}
		r.buckets[value] = b
		r.order = append(r.order, value)
	}

	if merge {
		if i, seen := b.index[key]; seen {
			b.Entries[i].Count += count
			return
		}
		b.index[key] = len(b.Entries)
	}
	b.Entries = append(b.Entries, Entry{Word: word, Count: count, key: key})
}

// Merge appends another partial result, preserving first-seen order across
// the concatenation. merge selects the same collapsing semantics used when
// the partials were built.
func (r *Result) Merge(other *Result, merge bool) {
	for _, v := range other.order {
		for _, e := range other.buckets[v].Entries {
			r.add(v, e.Word, e.key, e.Count, merge)
		}
	}
}
