package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ashmulev/gematria/internal/pipeline"
)

var (
	groupFormat   string
	groupSort     string
	groupMinWords int
	groupWorkers  int
	groupOut      string
)

// groupCmd represents the group command
var groupCmd = &cobra.Command{
	Use:   "group [text]",
	Short: "Group the words of a text by gematria value",
	Long: `Group tokenizes a text on whitespace and maqaf, calculates every word's
gematria value, and buckets words sharing a value. Buckets and words keep
first-seen order unless a sort is requested. Text is read from the argument
or, when absent, from stdin.

Example:
  gematria group "נכנס יין יצא סוד"
  cat corpus.txt | gematria group --min-words 2 --sort size
  gematria group --format json < corpus.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGroup,
}

func init() {
	rootCmd.AddCommand(groupCmd)

	groupCmd.Flags().StringVarP(&groupFormat, "format", "f", "text", "output format (text, json, yaml)")
	groupCmd.Flags().StringVar(&groupSort, "sort", "none", "bucket order (none, value, size)")
	groupCmd.Flags().IntVar(&groupMinWords, "min-words", 1, "only show groups with at least this many words")
	groupCmd.Flags().IntVar(&groupWorkers, "workers", 0, "worker count for large texts (0 = all CPUs)")
	groupCmd.Flags().StringVarP(&groupOut, "out", "o", "", "write output to file instead of stdout")
}

func runGroup(cmd *cobra.Command, args []string) error {
	text, err := readTextArg(args, 0)
	if err != nil {
		return err
	}

	cfg := buildConfig()
	cfg.Output.Format = groupFormat
	cfg.Output.Sort = groupSort
	cfg.Output.MinWords = groupMinWords
	if groupWorkers > 0 {
		cfg.Concurrency.Workers = groupWorkers
	}

	p, err := pipeline.New(cfg)
	if err != nil {
		return err
	}

	report, err := p.GroupText(context.Background(), text)
	if err != nil {
		return fmt.Errorf("group failed: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Grouped %d words into %d buckets\n", report.TotalWords, len(report.Groups))
	}

	out := os.Stdout
	if groupOut != "" {
		f, err := os.Create(groupOut)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer func() { _ = f.Close() }()
		out = f
	}

	return p.Renderer().RenderGroups(out, report, cfg.Output.Format)
}
