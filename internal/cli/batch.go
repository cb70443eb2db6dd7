package cli

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/ashmulev/gematria/internal/pipeline"
	"github.com/ashmulev/gematria/internal/worker"
)

var (
	batchWorkers int
	batchFormat  string
	batchOut     string
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Calculate values for a file of phrases in parallel",
	Long: `Batch reads phrases from a file (one per line, # starts a comment),
calculates their gematria values concurrently, and prints the results in
input order.

Example:
  gematria batch phrases.txt
  gematria batch phrases.txt --workers 8 --format json`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&batchWorkers, "workers", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVarP(&batchFormat, "format", "f", "text", "output format (text, json, yaml)")
	batchCmd.Flags().StringVarP(&batchOut, "out", "o", "", "write output to file instead of stdout")
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]

	cfg := buildConfig()
	if batchWorkers > 0 {
		cfg.Concurrency.Workers = batchWorkers
	}

	p, err := pipeline.New(cfg)
	if err != nil {
		return err
	}

	phrases, err := worker.ReadPhrases(file)
	if err != nil {
		return fmt.Errorf("read phrases: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Loaded %d phrases\n", len(phrases))
		fmt.Fprintf(os.Stderr, "⚙️  Calculating with %d workers...\n", cfg.Concurrency.Workers)
	}

	values := p.CalculateBatch(context.Background(), phrases)

	out := os.Stdout
	if batchOut != "" {
		f, err := os.Create(batchOut)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer func() { _ = f.Close() }()
		out = f
	}

	return p.Renderer().RenderValues(out, values, batchFormat)
}
