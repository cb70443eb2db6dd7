// Package pipeline wires the calculation context, grouping engine, and
// renderers together for the CLI.
package pipeline

import (
	"context"
	"sort"

	"github.com/ashmulev/gematria/internal/gematria"
	"github.com/ashmulev/gematria/internal/group"
	"github.com/ashmulev/gematria/internal/hebrew"
	"github.com/ashmulev/gematria/internal/model"
	"github.com/ashmulev/gematria/internal/worker"
)

// Pipeline orchestrates a run over one resolved configuration.
type Pipeline struct {
	gmctx    *gematria.Context
	engine   *group.Engine
	grouper  *worker.Grouper
	renderer *Renderer
	cfg      *model.Config
}

// New builds a pipeline from configuration. Construction fails fast on an
// unknown method name, before any calculation.
func New(cfg *model.Config) (*Pipeline, error) {
	gmctx, err := gematria.NewBuilder().
		WithMethodName(cfg.Method).
		WithNikkud(cfg.CountNikkud).
		WithDistinctVowelizations(cfg.DistinctVowelizations).
		WithCache(cfg.Cache.Enabled).
		Build()
	if err != nil {
		return nil, err
	}

	engine := group.NewEngine(gmctx)
	return &Pipeline{
		gmctx:    gmctx,
		engine:   engine,
		grouper:  worker.NewGrouper(engine, cfg.Concurrency.Workers, cfg.Concurrency.ChunkSize),
		renderer: NewRenderer(cfg.Output.Verbose),
		cfg:      cfg,
	}, nil
}

// Context returns the calculation context.
func (p *Pipeline) Context() *gematria.Context {
	return p.gmctx
}

// Renderer returns the configured renderer.
func (p *Pipeline) Renderer() *Renderer {
	return p.renderer
}

// Calculate computes the gematria value of a word or phrase.
func (p *Pipeline) Calculate(text string) model.WordValue {
	r := p.gmctx.CalculateValue(text)
	return model.WordValue{Word: r.Word, Value: r.Value, Method: r.Method.String()}
}

// CharValues returns the per-character values of text in reading order,
// skipping characters that contribute nothing. The text is normalized first
// so precomposed presentation forms break down like any other input.
func (p *Pipeline) CharValues(text string) []model.WordValue {
	var out []model.WordValue
	for _, r := range hebrew.Normalize(text) {
		if v := p.gmctx.CharValue(r); v > 0 {
			out = append(out, model.WordValue{
				Word:   string(r),
				Value:  v,
				Method: p.gmctx.Method().String(),
			})
		}
	}
	return out
}

// CalculateBatch computes values for independent phrases in parallel,
// preserving input order.
func (p *Pipeline) CalculateBatch(ctx context.Context, phrases []string) []model.WordValue {
	results := worker.NewValueBatch(p.gmctx, p.cfg.Concurrency.Workers).Calculate(ctx, phrases)
	out := make([]model.WordValue, len(results))
	for i, r := range results {
		out[i] = model.WordValue{Word: r.Word, Value: r.Value, Method: r.Method.String()}
	}
	return out
}

// GroupText tokenizes and groups text, then applies the configured sort and
// minimum-group filter to build the report.
func (p *Pipeline) GroupText(ctx context.Context, text string) (*model.GroupReport, error) {
	res, err := p.grouper.GroupText(ctx, text)
	if err != nil {
		return nil, err
	}
	return p.buildReport(res), nil
}

// MatchWord returns the words in text sharing the value of target.
func (p *Pipeline) MatchWord(target, text string) []string {
	return p.engine.MatchWord(target, text)
}

// MatchValue returns the words in text whose value equals target.
func (p *Pipeline) MatchValue(target int, text string) []string {
	return p.engine.MatchValue(target, text)
}

func (p *Pipeline) buildReport(res *group.Result) *model.GroupReport {
	merged := !p.gmctx.DistinctVowelizations()
	report := &model.GroupReport{
		Method:      p.gmctx.Method().String(),
		CountNikkud: p.gmctx.CountNikkud(),
	}

	for _, b := range res.Buckets() {
		g := model.Group{Value: b.Value, Words: b.Words()}
		if merged {
			counts := make([]int, len(b.Entries))
			for i, e := range b.Entries {
				counts[i] = e.Count
				report.TotalWords += e.Count
			}
			g.Counts = counts
		} else {
			report.TotalWords += len(b.Entries)
		}
		if len(g.Words) >= p.cfg.Output.MinWords {
			report.Groups = append(report.Groups, g)
		}
	}

	switch p.cfg.Output.Sort {
	case "value":
		sort.Slice(report.Groups, func(i, j int) bool {
			return report.Groups[i].Value < report.Groups[j].Value
		})
	case "size":
		// Largest groups first, value as tie-breaker.
		sort.Slice(report.Groups, func(i, j int) bool {
			if len(report.Groups[i].Words) != len(report.Groups[j].Words) {
				return len(report.Groups[i].Words) > len(report.Groups[j].Words)
			}
			return report.Groups[i].Value < report.Groups[j].Value
		})
	}

	return report
}
