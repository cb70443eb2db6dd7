package hebrew

// Alphabet indexing: the 22 base letters occupy indices 1-22 in dictionary
// order, the five final forms follow at 23-27. All value arithmetic in the
// method package is expressed over these indices.
const (
	BaseLetters = 22
	FinalKaf    = 23 // ך
	FinalMem    = 24 // ם
	FinalNun    = 25 // ן
	FinalPe     = 26 // ף
	FinalTsadi  = 27 // ץ
)

var letters = []rune{
	'א', 'ב', 'ג', 'ד', 'ה', 'ו', 'ז', 'ח', 'ט', 'י',
	'כ', 'ל', 'מ', 'נ', 'ס', 'ע', 'פ', 'צ', 'ק', 'ר',
	'ש', 'ת',
	// Final forms
	'ך', 'ם', 'ן', 'ף', 'ץ',
}

// finalToBase maps a final-form index to the index of its base letter.
var finalToBase = map[int]int{
	FinalKaf:   11, // כ
	FinalMem:   13, // מ
	FinalNun:   14, // נ
	FinalPe:    17, // פ
	FinalTsadi: 18, // צ
}

var letterIndex = buildLetterIndex()

func buildLetterIndex() map[rune]int {
	m := make(map[rune]int, len(letters))
	for i, r := range letters {
		m[r] = i + 1
	}
	return m
}

// Index returns the 1-based alphabet index of r, or false if r is not a
// Hebrew consonant.
func Index(r rune) (int, bool) {
	idx, ok := letterIndex[r]
	return idx, ok
}

// IsLetter reports whether r is a Hebrew consonant (base or final form).
func IsLetter(r rune) bool {
	_, ok := letterIndex[r]
	return ok
}

// LetterAt returns the rune at the given 1-based index.
func LetterAt(idx int) (rune, bool) {
	if idx < 1 || idx > len(letters) {
		return 0, false
	}
	return letters[idx-1], true
}

// BaseIndex folds a final-form index onto its base letter. Indices of base
// letters pass through unchanged.
func BaseIndex(idx int) int {
	if base, ok := finalToBase[idx]; ok {
		return base
	}
	return idx
}

// IsFinal reports whether idx designates a final-form letter.
func IsFinal(idx int) bool {
	_, ok := finalToBase[idx]
	return ok
}

// StandardValue returns the Mispar Hechrechi value for an alphabet index:
// 1-10 for the first nine letters, then tens, then hundreds. Final forms take
// the value of their base letter.
//
//	f(i) = 10^((i-1)/9) * ((i-1)%9 + 1)
func StandardValue(idx int) int {
	idx = BaseIndex(idx)
	v := (idx-1)%9 + 1
	for p := (idx - 1) / 9; p > 0; p-- {
		v *= 10
	}
	return v
}

// OrdinalValue returns the Mispar Siduri value: the position of the letter in
// the alphabet, final forms counting as their base letter.
func OrdinalValue(idx int) int {
	return BaseIndex(idx)
}

// CumulativeValue returns the running sum of standard values from Aleph
// through the letter at idx (א=1, ב=1+2, ג=1+2+3, ...).
func CumulativeValue(idx int) int {
	idx = BaseIndex(idx)
	sum := 0
	for i := 1; i <= idx; i++ {
		sum += StandardValue(i)
	}
	return sum
}

// spellings holds the full written name of each base letter, used for the
// Otiyot BeMilui method (the value of a letter is the value of its name).
var spellings = map[rune][]rune{
	'א': {'א', 'ל', 'ף'},
	'ב': {'ב', 'י', 'ת'},
	'ג': {'ג', 'י', 'מ', 'ל'},
	'ד': {'ד', 'ל', 'ת'},
	'ה': {'ה', 'א'},
	'ו': {'ו', 'י', 'ו'},
	'ז': {'ז', 'י', 'ן'},
	'ח': {'ח', 'י', 'ת'},
	'ט': {'ט', 'י', 'ת'},
	'י': {'י', 'ו', 'ד'},
	'כ': {'כ', 'ף'},
	'ל': {'ל', 'מ', 'ד'},
	'מ': {'מ', 'ם'},
	'נ': {'נ', 'ו', 'ן'},
	'ס': {'ס', 'מ', 'ך'},
	'ע': {'ע', 'י', 'ן'},
	'פ': {'פ', 'א'},
	'צ': {'צ', 'ד', 'י'},
	'ק': {'ק', 'ו', 'ף'},
	'ר': {'ר', 'י', 'ש'},
	'ש': {'ש', 'י', 'ן'},
	'ת': {'ת', 'י', 'ו'},
}

// Spelling returns the runes of the letter's full name. Final forms spell out
// as their base letter.
func Spelling(idx int) []rune {
	r, ok := LetterAt(BaseIndex(idx))
	if !ok {
		return nil
	}
	return spellings[r]
}
