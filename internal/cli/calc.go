package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ashmulev/gematria/internal/pipeline"
)

var calcChars bool

// calcCmd represents the calc command
var calcCmd = &cobra.Command{
	Use:   "calc <text>...",
	Short: "Calculate the gematria value of a word or phrase",
	Long: `Calc computes the gematria value of the given word or phrase under the
active method. Characters that are not Hebrew consonants (and, unless --nikkud
is set, vowel marks) contribute nothing.

Example:
  gematria calc שלום
  gematria calc -m gadol "בעזרת השם"
  gematria calc --chars סוד`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCalc,
}

func init() {
	rootCmd.AddCommand(calcCmd)

	calcCmd.Flags().BoolVar(&calcChars, "chars", false, "print a per-character breakdown")
}

func runCalc(cmd *cobra.Command, args []string) error {
	text := strings.Join(args, " ")

	p, err := pipeline.New(buildConfig())
	if err != nil {
		return err
	}

	if calcChars {
		for _, cv := range p.CharValues(text) {
			fmt.Fprintf(os.Stdout, "%s\t%d\n", cv.Word, cv.Value)
		}
	}

	result := p.Calculate(text)
	if verbose {
		fmt.Printf("Gematria value for '%s': %d\n", result.Word, result.Value)
	} else {
		fmt.Println(result.Value)
	}
	return nil
}
