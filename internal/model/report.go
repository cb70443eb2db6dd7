package model

// WordValue is a single calculated value, as rendered by calc and batch.
type WordValue struct {
	Word   string `json:"word" yaml:"word"`
	Value  int    `json:"value" yaml:"value"`
	Method string `json:"method" yaml:"method"`
}

// GroupReport is the rendered form of a grouping run.
type GroupReport struct {
	Method      string  `json:"method" yaml:"method"`
	CountNikkud bool    `json:"count_nikkud" yaml:"count_nikkud"`
	TotalWords  int     `json:"total_words" yaml:"total_words"`
	Groups      []Group `json:"groups" yaml:"groups"`
}

// Group is one value bucket. Counts is parallel to Words and present only
// when vowelized variants were merged.
type Group struct {
	Value  int      `json:"value" yaml:"value"`
	Words  []string `json:"words" yaml:"words"`
	Counts []int    `json:"counts,omitempty" yaml:"counts,omitempty"`
}
