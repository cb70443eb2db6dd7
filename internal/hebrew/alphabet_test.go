package hebrew

import "testing"

func TestStandardValues(t *testing.T) {
	expected := map[rune]int{
		'א': 1, 'ב': 2, 'ג': 3, 'ד': 4, 'ה': 5,
		'ו': 6, 'ז': 7, 'ח': 8, 'ט': 9, 'י': 10,
		'כ': 20, 'ל': 30, 'מ': 40, 'נ': 50, 'ס': 60,
		'ע': 70, 'פ': 80, 'צ': 90, 'ק': 100, 'ר': 200,
		'ש': 300, 'ת': 400,
		// Final forms take their base letter's value
		'ך': 20, 'ם': 40, 'ן': 50, 'ף': 80, 'ץ': 90,
	}

	for r, want := range expected {
		idx, ok := Index(r)
		if !ok {
			t.Fatalf("Index(%c) not found", r)
		}
		if got := StandardValue(idx); got != want {
			t.Errorf("StandardValue(%c) = %d, want %d", r, got, want)
		}
	}
}

func TestIndexUnrecognized(t *testing.T) {
	for _, r := range []rune{'a', ' ', '.', '1', 0x05B0} {
		if _, ok := Index(r); ok {
			t.Errorf("Index(%q) = ok, want unrecognized", r)
		}
	}
}

func TestOrdinalValues(t *testing.T) {
	cases := []struct {
		letter rune
		want   int
	}{
		{'א', 1},
		{'י', 10},
		{'כ', 11},
		{'ת', 22},
		// Finals count as their base letter
		{'ך', 11},
		{'ם', 13},
		{'ן', 14},
		{'ף', 17},
		{'ץ', 18},
	}

	for _, tc := range cases {
		idx, _ := Index(tc.letter)
		if got := OrdinalValue(idx); got != tc.want {
			t.Errorf("OrdinalValue(%c) = %d, want %d", tc.letter, got, tc.want)
		}
	}
}

func TestCumulativeValues(t *testing.T) {
	cases := []struct {
		letter rune
		want   int
	}{
		{'א', 1},
		{'ב', 3},
		{'ג', 6},
		{'י', 55},
		{'כ', 75},
		{'ת', 1495},
		{'ך', 75},
		{'ץ', 495},
	}

	for _, tc := range cases {
		idx, _ := Index(tc.letter)
		if got := CumulativeValue(idx); got != tc.want {
			t.Errorf("CumulativeValue(%c) = %d, want %d", tc.letter, got, tc.want)
		}
	}
}

func TestSpelling(t *testing.T) {
	idx, _ := Index('א')
	if got := string(Spelling(idx)); got != "אלף" {
		t.Errorf("Spelling(א) = %q, want %q", got, "אלף")
	}

	// A final form spells out as its base letter
	finalIdx, _ := Index('ך')
	baseIdx, _ := Index('כ')
	if got, want := string(Spelling(finalIdx)), string(Spelling(baseIdx)); got != want {
		t.Errorf("Spelling(ך) = %q, want %q", got, want)
	}

	if Spelling(0) != nil {
		t.Error("Spelling(0) should be nil")
	}
}

func TestBaseIndex(t *testing.T) {
	for _, pair := range [][2]rune{{'ך', 'כ'}, {'ם', 'מ'}, {'ן', 'נ'}, {'ף', 'פ'}, {'ץ', 'צ'}} {
		finalIdx, _ := Index(pair[0])
		baseIdx, _ := Index(pair[1])
		if !IsFinal(finalIdx) {
			t.Errorf("IsFinal(%c) = false", pair[0])
		}
		if IsFinal(baseIdx) {
			t.Errorf("IsFinal(%c) = true", pair[1])
		}
		if got := BaseIndex(finalIdx); got != baseIdx {
			t.Errorf("BaseIndex(%c) = %d, want %d", pair[0], got, baseIdx)
		}
	}
}
