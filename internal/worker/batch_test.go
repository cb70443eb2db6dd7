package worker

import (
	"context"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestGrouperMatchesSequential(t *testing.T) {
	engine := testEngine(t)

	// Repeat a small vocabulary into a stream spanning many chunks
	vocab := []string{"נכנס", "יין", "יצא", "סוד", "שלום", "עב"}
	var words []string
	for i := 0; i < 200; i++ {
		words = append(words, vocab[i%len(vocab)])
	}

	sequential := engine.GroupWords(words)

	grouper := NewGrouper(engine, 4, 16)
	parallel, err := grouper.GroupWords(context.Background(), words)
	if err != nil {
		t.Fatalf("GroupWords: %v", err)
	}

	sb, pb := sequential.Buckets(), parallel.Buckets()
	if len(sb) != len(pb) {
		t.Fatalf("parallel has %d buckets, want %d", len(pb), len(sb))
	}
	for i := range sb {
		if sb[i].Value != pb[i].Value {
			t.Errorf("bucket %d: value %d, want %d", i, pb[i].Value, sb[i].Value)
		}
		if !reflect.DeepEqual(sb[i].Words(), pb[i].Words()) {
			t.Errorf("bucket %d: word order diverged", i)
		}
	}
}

func TestGrouperManyChunks(t *testing.T) {
	// 120 words over chunk size 4 yields 30 chunks against 2 workers, well
	// past what the pool's bounded channels can hold at once.
	engine := testEngine(t)

	vocab := []string{"נכנס", "יין", "יצא", "סוד"}
	var words []string
	for i := 0; i < 120; i++ {
		words = append(words, vocab[i%len(vocab)])
	}

	sequential := engine.GroupWords(words)

	grouper := NewGrouper(engine, 2, 4)
	parallel, err := grouper.GroupWords(context.Background(), words)
	if err != nil {
		t.Fatalf("GroupWords: %v", err)
	}

	sb, pb := sequential.Buckets(), parallel.Buckets()
	if len(sb) != len(pb) {
		t.Fatalf("parallel has %d buckets, want %d", len(pb), len(sb))
	}
	for i := range sb {
		if sb[i].Value != pb[i].Value {
			t.Errorf("bucket %d: value %d, want %d", i, pb[i].Value, sb[i].Value)
		}
		if !reflect.DeepEqual(sb[i].Words(), pb[i].Words()) {
			t.Errorf("bucket %d: word order diverged", i)
		}
	}
}

func TestGrouperSmallInputSkipsPool(t *testing.T) {
	engine := testEngine(t)
	grouper := NewGrouper(engine, 4, 512)

	res, err := grouper.GroupText(context.Background(), "נכנס יין יצא סוד")
	if err != nil {
		t.Fatalf("GroupText: %v", err)
	}
	if res.Len() != 3 {
		t.Errorf("got %d buckets, want 3", res.Len())
	}
}

func TestValueBatchOrder(t *testing.T) {
	batch := NewValueBatch(testEngine(t).Context(), 4)
	phrases := []string{"שלום", "סוד", "יין", "בעזרת השם"}
	results := batch.Calculate(context.Background(), phrases)

	want := []int{376, 70, 70, 1024}
	if len(results) != len(want) {
		t.Fatalf("got %d results, want %d", len(results), len(want))
	}
	for i, w := range want {
		if results[i].Value != w {
			t.Errorf("result %d = %d, want %d", i, results[i].Value, w)
		}
	}
}

func TestValueBatchEmpty(t *testing.T) {
	batch := NewValueBatch(testEngine(t).Context(), 2)
	if got := batch.Calculate(context.Background(), nil); len(got) != 0 {
		t.Errorf("empty batch produced %d results", len(got))
	}
}

func TestReadPhrases(t *testing.T) {
	path := filepath.Join(t.TempDir(), "phrases.txt")
	content := strings.Join([]string{
		"שלום",
		"",
		"# comment",
		"נכנס יין",
		"שלום",
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	phrases, err := ReadPhrases(path)
	if err != nil {
		t.Fatalf("ReadPhrases: %v", err)
	}

	want := []string{"שלום", "נכנס יין", "שלום"}
	if !reflect.DeepEqual(phrases, want) {
		t.Errorf("ReadPhrases = %v, want %v", phrases, want)
	}
}

func TestReadPhrasesMissingFile(t *testing.T) {
	if _, err := ReadPhrases(filepath.Join(t.TempDir(), "absent.txt")); err == nil {
		t.Error("expected error for missing file")
	}
}
