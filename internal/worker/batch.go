package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/ashmulev/gematria/internal/gematria"
	"github.com/ashmulev/gematria/internal/group"
)

// Grouper splits a token stream into chunks, groups each chunk in parallel,
// and merges the partial results on a single goroutine so first-seen ordering
// survives parallelism.
type Grouper struct {
	engine    *group.Engine
	workers   int
	chunkSize int
}

// NewGrouper creates a parallel grouper.
func NewGrouper(engine *group.Engine, workers, chunkSize int) *Grouper {
	if chunkSize <= 0 {
		chunkSize = 512
	}
	return &Grouper{engine: engine, workers: workers, chunkSize: chunkSize}
}

// GroupWords groups words in parallel. Inputs smaller than one chunk skip the
// pool entirely. The merged result is identical to sequential grouping.
func (g *Grouper) GroupWords(ctx context.Context, words []string) (*group.Result, error) {
	if len(words) <= g.chunkSize || g.workers <= 1 {
		return g.engine.GroupWords(words), nil
	}

	pool := NewPool(g.workers)
	pool.Start()

	// Submit from a separate goroutine while this one drains results; the
	// pool's channels are bounded and fill up on large inputs otherwise.
	chunks := (len(words) + g.chunkSize - 1) / g.chunkSize
	go func() {
		for i := 0; i < chunks; i++ {
			start := i * g.chunkSize
			end := start + g.chunkSize
			if end > len(words) {
				end = len(words)
			}
			pool.Submit(ChunkJob{Index: i, Words: words[start:end], Engine: g.engine})
		}
		pool.Close()
	}()

	results := pool.Wait()
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(results) != chunks {
		return nil, fmt.Errorf("grouping incomplete: %d of %d chunks", len(results), chunks)
	}

	sort.Slice(results, func(i, j int) bool { return results[i].Index < results[j].Index })

	merge := !g.engine.Context().DistinctVowelizations()
	merged := group.NewResult()
	for _, res := range results {
		if res.Err != nil {
			return nil, res.Err
		}
		merged.Merge(res.Groups, merge)
	}
	return merged, nil
}

// GroupText tokenizes text and groups it in parallel.
func (g *Grouper) GroupText(ctx context.Context, text string) (*group.Result, error) {
	return g.GroupWords(ctx, group.Tokenize(text))
}

// ValueBatch calculates values for independent phrases concurrently, keeping
// results in input order.
type ValueBatch struct {
	ctx     *gematria.Context
	workers int
}

// NewValueBatch creates a batch calculator over a shared context.
func NewValueBatch(ctx *gematria.Context, workers int) *ValueBatch {
	if workers <= 0 {
		workers = 1
	}
	return &ValueBatch{ctx: ctx, workers: workers}
}

// Calculate computes the value of every phrase. The output slice is parallel
// to the input.
func (b *ValueBatch) Calculate(ctx context.Context, phrases []string) []gematria.Result {
	out := make([]gematria.Result, len(phrases))
	sem := make(chan struct{}, b.workers)
	var wg sync.WaitGroup

	for i, phrase := range phrases {
		select {
		case <-ctx.Done():
			wg.Wait()
			return out
		case sem <- struct{}{}:
		}
		wg.Add(1)
		go func(i int, phrase string) {
			defer wg.Done()
			defer func() { <-sem }()
			out[i] = b.ctx.CalculateValue(phrase)
		}(i, phrase)
	}

	wg.Wait()
	return out
}

// ReadPhrases reads a phrase file, one phrase per line. Blank lines and lines
// starting with # are skipped; order and duplicates are preserved.
func ReadPhrases(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var phrases []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		phrases = append(phrases, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}
	return phrases, nil
}
