// Package method defines the gematria calculation methods as a closed set of
// pure per-letter transforms over alphabet indices.
package method

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ashmulev/gematria/internal/hebrew"
)

// Method identifies a gematria calculation scheme.
type Method string

const (
	// MisparHechrechi is the standard encoding: Aleph=1 .. Tav=400, final
	// forms valued as their base letter.
	MisparHechrechi Method = "hechrechi"

	// MisparGadol extends the final forms to 500-900.
	MisparGadol Method = "gadol"

	// MisparKatan reduces the Gadol value of each letter to a single digit
	// by repeated digit sum.
	MisparKatan Method = "katan"

	// MisparSiduri values each letter by its ordinal position (1-22).
	MisparSiduri Method = "siduri"

	// MisparBoneh values each letter by the cumulative standard value of the
	// alphabet up to it (א=1, ב=1+2, ג=1+2+3, ...).
	MisparBoneh Method = "boneh"

	// MisparMusafi adds one to the standard value of each letter, so a word
	// gains its letter count on top of its standard value.
	MisparMusafi Method = "musafi"

	// OtiyotBeMilui values each letter by the standard value of its fully
	// spelled name (Aleph = אלף = 111).
	OtiyotBeMilui Method = "milui"
)

// Default is the method used when none is configured.
const Default = MisparHechrechi

// ErrUnknown is returned when a method name does not resolve to a supported
// calculation scheme.
var ErrUnknown = errors.New("unknown gematria method")

// All returns the supported methods in a stable order.
func All() []Method {
	return []Method{
		MisparHechrechi,
		MisparGadol,
		MisparKatan,
		MisparSiduri,
		MisparBoneh,
		MisparMusafi,
		OtiyotBeMilui,
	}
}

// aliases maps user-facing spellings onto canonical methods.
var aliases = map[string]Method{
	"hechrechi":        MisparHechrechi,
	"mispar-hechrechi": MisparHechrechi,
	"standard":         MisparHechrechi,
	"gadol":            MisparGadol,
	"mispar-gadol":     MisparGadol,
	"katan":            MisparKatan,
	"mispar-katan":     MisparKatan,
	"siduri":           MisparSiduri,
	"mispar-siduri":    MisparSiduri,
	"ordinal":          MisparSiduri,
	"boneh":            MisparBoneh,
	"mispar-boneh":     MisparBoneh,
	"musafi":           MisparMusafi,
	"mispar-musafi":    MisparMusafi,
	"milui":            OtiyotBeMilui,
	"otiyot-bemilui":   OtiyotBeMilui,
}

// Parse resolves a method name (case-insensitive, with common aliases) to a
// Method. Unrecognized names return ErrUnknown.
func Parse(name string) (Method, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.ReplaceAll(key, "_", "-")
	key = strings.ReplaceAll(key, " ", "-")
	if m, ok := aliases[key]; ok {
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknown, name)
}

// Valid reports whether m is one of the supported methods.
func (m Method) Valid() bool {
	switch m {
	case MisparHechrechi, MisparGadol, MisparKatan, MisparSiduri,
		MisparBoneh, MisparMusafi, OtiyotBeMilui:
		return true
	}
	return false
}

func (m Method) String() string {
	return string(m)
}

// gadolFinals holds the extended values of the final forms.
var gadolFinals = map[int]int{
	hebrew.FinalKaf:   500,
	hebrew.FinalMem:   600,
	hebrew.FinalNun:   700,
	hebrew.FinalPe:    800,
	hebrew.FinalTsadi: 900,
}

// LetterValue computes the method-specific value for an alphabet index
// (1-based, final forms at 23-27). Indices outside the alphabet yield zero.
func (m Method) LetterValue(idx int) int {
	if _, ok := hebrew.LetterAt(idx); !ok {
		return 0
	}
	switch m {
	case MisparHechrechi:
		return hebrew.StandardValue(idx)
	case MisparGadol:
		return gadolValue(idx)
	case MisparKatan:
		return reduceDigits(gadolValue(idx))
	case MisparSiduri:
		return hebrew.OrdinalValue(idx)
	case MisparBoneh:
		return hebrew.CumulativeValue(idx)
	case MisparMusafi:
		return hebrew.StandardValue(idx) + 1
	case OtiyotBeMilui:
		return miluiValue(idx)
	}
	return 0
}

func gadolValue(idx int) int {
	if v, ok := gadolFinals[idx]; ok {
		return v
	}
	return hebrew.StandardValue(idx)
}

// reduceDigits folds a value to a single digit by repeated digit sum.
// Equivalent to mod 9 with 0 mapped to 9 for positive inputs.
func reduceDigits(v int) int {
	for v >= 10 {
		sum := 0
		for v > 0 {
			sum += v % 10
			v /= 10
		}
		v = sum
	}
	return v
}

// miluiValue sums the standard values of the letter's fully spelled name.
func miluiValue(idx int) int {
	sum := 0
	for _, r := range hebrew.Spelling(idx) {
		if i, ok := hebrew.Index(r); ok {
			sum += hebrew.StandardValue(i)
		}
	}
	return sum
}
