package hebrew

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/unicode/norm"
)

// Marks covers the Hebrew combining marks: cantillation accents (U+0591..),
// the vowel points (nikkud), and the shin/sin dots. The punctuation code
// points interleaved in the same block (maqaf, paseq, sof pasuq, nun hafukha)
// are deliberately excluded; they are word separators or symbols, not marks
// carried by a consonant.
var Marks = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x0591, Hi: 0x05BD, Stride: 1}, // accents, points, meteg
		{Lo: 0x05BF, Hi: 0x05BF, Stride: 1}, // rafe
		{Lo: 0x05C1, Hi: 0x05C2, Stride: 1}, // shin dot, sin dot
		{Lo: 0x05C4, Hi: 0x05C5, Stride: 1}, // upper/lower dot
		{Lo: 0x05C7, Hi: 0x05C7, Stride: 1}, // qamats qatan
	},
}

// Maqaf is the Hebrew hyphen; tokenization treats it as a word boundary.
const Maqaf rune = 0x05BE

// markValues assigns the optional nikkud contribution for value calculation.
// The convention is component counting: every dot in the written mark counts
// 10 (the value of yud) and every stroke counts 6 (the value of vav). Marks
// with no vowel-point shape (cantillation, meteg, rafe) stay at zero and are
// simply recognized as marks.
var markValues = map[rune]int{
	0x05B0: 20, // sheva: two dots
	0x05B1: 50, // hataf segol: sheva + segol
	0x05B2: 26, // hataf patah: sheva + patah
	0x05B3: 36, // hataf qamats: sheva + qamats
	0x05B4: 10, // hiriq: one dot
	0x05B5: 20, // tsere: two dots
	0x05B6: 30, // segol: three dots
	0x05B7: 6,  // patah: one stroke
	0x05B8: 16, // qamats: stroke + dot
	0x05B9: 10, // holam: one dot
	0x05BA: 10, // holam haser for vav
	0x05BB: 30, // qubuts: three dots
	0x05BC: 10, // dagesh / mapiq / shuruq dot
	0x05C1: 10, // shin dot
	0x05C2: 10, // sin dot
	0x05C7: 16, // qamats qatan
}

// IsMark reports whether r is a Hebrew combining mark (nikkud, cantillation,
// or a letter dot).
func IsMark(r rune) bool {
	return unicode.Is(Marks, r)
}

// MarkValue returns the nikkud value of r under the component-counting
// convention, or zero for marks that carry no value.
func MarkValue(r rune) int {
	return markValues[r]
}

var stripper = runes.Remove(runes.In(Marks))

// Normalize decomposes text into NFD so that precomposed presentation forms
// (U+FB1D..U+FB4E) resolve into a base consonant followed by combining marks.
func Normalize(text string) string {
	return norm.NFD.String(text)
}

// StripMarks returns text with all Hebrew combining marks removed. The input
// is normalized first so marks hidden inside precomposed forms are stripped
// as well.
func StripMarks(text string) string {
	return stripper.String(Normalize(text))
}
