package method

import (
	"errors"
	"testing"

	"github.com/ashmulev/gematria/internal/hebrew"
)

func letterValue(t *testing.T, m Method, r rune) int {
	t.Helper()
	idx, ok := hebrew.Index(r)
	if !ok {
		t.Fatalf("Index(%c) not found", r)
	}
	return m.LetterValue(idx)
}

func TestParse(t *testing.T) {
	cases := map[string]Method{
		"hechrechi":        MisparHechrechi,
		"standard":         MisparHechrechi,
		"Mispar-Hechrechi": MisparHechrechi,
		"mispar_gadol":     MisparGadol,
		"KATAN":            MisparKatan,
		"ordinal":          MisparSiduri,
		"boneh":            MisparBoneh,
		"musafi":           MisparMusafi,
		"milui":            OtiyotBeMilui,
		"otiyot-bemilui":   OtiyotBeMilui,
	}

	for name, want := range cases {
		got, err := Parse(name)
		if err != nil {
			t.Errorf("Parse(%q) error: %v", name, err)
			continue
		}
		if got != want {
			t.Errorf("Parse(%q) = %s, want %s", name, got, want)
		}
	}
}

func TestParseUnknown(t *testing.T) {
	_, err := Parse("atbash")
	if err == nil {
		t.Fatal("Parse(atbash) expected error")
	}
	if !errors.Is(err, ErrUnknown) {
		t.Errorf("Parse error = %v, want ErrUnknown", err)
	}
}

func TestAllValid(t *testing.T) {
	for _, m := range All() {
		if !m.Valid() {
			t.Errorf("%s should be valid", m)
		}
	}
	if Method("atbash").Valid() {
		t.Error("atbash should not be valid")
	}
}

func TestHechrechiFinalForms(t *testing.T) {
	if got, want := letterValue(t, MisparHechrechi, 'ץ'), letterValue(t, MisparHechrechi, 'צ'); got != want {
		t.Errorf("hechrechi final = %d, want %d", got, want)
	}
}

func TestGadolFinalForms(t *testing.T) {
	cases := []struct {
		letter rune
		want   int
	}{
		{'ך', 500},
		{'ם', 600},
		{'ן', 700},
		{'ף', 800},
		{'ץ', 900},
	}
	for _, tc := range cases {
		if got := letterValue(t, MisparGadol, tc.letter); got != tc.want {
			t.Errorf("gadol(%c) = %d, want %d", tc.letter, got, tc.want)
		}
	}

	// Non-final letters keep their standard value
	if got := letterValue(t, MisparGadol, 'צ'); got != 90 {
		t.Errorf("gadol(צ) = %d, want 90", got)
	}
}

func TestKatanReduction(t *testing.T) {
	cases := []struct {
		letter rune
		want   int
	}{
		{'א', 1},
		{'י', 1},   // 10 -> 1
		{'צ', 9},   // 90 -> 9
		{'ת', 4},   // 400 -> 4
		{'ץ', 9},   // 900 -> 9, the gadol value reduces
		{'ך', 5},   // 500 -> 5
	}
	for _, tc := range cases {
		if got := letterValue(t, MisparKatan, tc.letter); got != tc.want {
			t.Errorf("katan(%c) = %d, want %d", tc.letter, got, tc.want)
		}
	}
}

func TestReduceDigits(t *testing.T) {
	cases := map[int]int{1: 1, 9: 9, 10: 1, 400: 4, 900: 9, 99: 9, 123: 6, 0: 0}
	for in, want := range cases {
		if got := reduceDigits(in); got != want {
			t.Errorf("reduceDigits(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestSiduri(t *testing.T) {
	if got := letterValue(t, MisparSiduri, 'ת'); got != 22 {
		t.Errorf("siduri(ת) = %d, want 22", got)
	}
	if got := letterValue(t, MisparSiduri, 'ם'); got != 13 {
		t.Errorf("siduri(ם) = %d, want 13", got)
	}
}

func TestBoneh(t *testing.T) {
	if got := letterValue(t, MisparBoneh, 'ג'); got != 6 {
		t.Errorf("boneh(ג) = %d, want 6", got)
	}
	if got := letterValue(t, MisparBoneh, 'ת'); got != 1495 {
		t.Errorf("boneh(ת) = %d, want 1495", got)
	}
}

func TestMusafi(t *testing.T) {
	if got := letterValue(t, MisparMusafi, 'א'); got != 2 {
		t.Errorf("musafi(א) = %d, want 2", got)
	}
	if got := letterValue(t, MisparMusafi, 'ת'); got != 401 {
		t.Errorf("musafi(ת) = %d, want 401", got)
	}
}

func TestMiluiValues(t *testing.T) {
	expected := map[rune]int{
		'א': 111, // אלף
		'ב': 412, // בית
		'ג': 83,  // גימל
		'ד': 434, // דלת
		'ה': 6,   // הא
		'ו': 22,  // ויו
		'ז': 67,  // זין
		'ח': 418, // חית
		'ט': 419, // טית
		'י': 20,  // יוד
		'כ': 100, // כף
		'ל': 74,  // למד
		'מ': 80,  // מם
		'נ': 106, // נון
		'ס': 120, // סמך
		'ע': 130, // עין
		'פ': 81,  // פא
		'צ': 104, // צדי
		'ק': 186, // קוף
		'ר': 510, // ריש
		'ש': 360, // שין
		'ת': 416, // תיו
	}

	for r, want := range expected {
		if got := letterValue(t, OtiyotBeMilui, r); got != want {
			t.Errorf("milui(%c) = %d, want %d", r, got, want)
		}
	}

	// Finals spell out as their base letter
	if got := letterValue(t, OtiyotBeMilui, 'ך'); got != 100 {
		t.Errorf("milui(ך) = %d, want 100", got)
	}
}

func TestLetterValueOutOfRange(t *testing.T) {
	for _, m := range All() {
		if got := m.LetterValue(0); got != 0 {
			t.Errorf("%s.LetterValue(0) = %d, want 0", m, got)
		}
		if got := m.LetterValue(28); got != 0 {
			t.Errorf("%s.LetterValue(28) = %d, want 0", m, got)
		}
	}
}
