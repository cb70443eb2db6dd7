package cli

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ashmulev/gematria/internal/pipeline"
)

// matchCmd represents the match command
var matchCmd = &cobra.Command{
	Use:   "match <word-or-value> [text]",
	Short: "Find words whose gematria value matches a target",
	Long: `Match searches a text for words sharing a gematria value. The target is
either a Hebrew word (its value is calculated first) or a literal number.
Text is read from the second argument or, when absent, from stdin.

Example:
  gematria match יין "נכנס יין יצא סוד"
  gematria match 70 < corpus.txt`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runMatch,
}

func init() {
	rootCmd.AddCommand(matchCmd)
}

func runMatch(cmd *cobra.Command, args []string) error {
	target := args[0]
	text, err := readTextArg(args, 1)
	if err != nil {
		return err
	}

	p, err := pipeline.New(buildConfig())
	if err != nil {
		return err
	}

	var matches []string
	if value, convErr := strconv.Atoi(target); convErr == nil {
		matches = p.MatchValue(value, text)
	} else {
		matches = p.MatchWord(target, text)
	}

	return p.Renderer().RenderMatches(os.Stdout, matches)
}
