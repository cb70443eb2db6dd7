package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ashmulev/gematria/internal/model"
)

var (
	cfgFile     string
	verbose     bool
	methodName  string
	countNikkud bool
	mergeVowels bool
	useCache    bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "gematria",
	Short: "Gematria - numeric values of Hebrew words and texts",
	Long: `Gematria calculates the numeric value of Hebrew words and phrases under
the traditional calculation methods (Mispar Hechrechi, Gadol, Katan, Siduri,
Boneh, Musafi, Otiyot BeMilui) and groups the words of a text by equal value.

Vowel marks (nikkud) are skipped by default but can be counted into values
or used to distinguish otherwise identical words.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("gematria v0.1.0")
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.gematria/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&methodName, "method", "m", "hechrechi", "calculation method (hechrechi, gadol, katan, siduri, boneh, musafi, milui)")
	rootCmd.PersistentFlags().BoolVar(&countNikkud, "nikkud", false, "count vowel marks into word values")
	rootCmd.PersistentFlags().BoolVar(&mergeVowels, "merge-vowels", false, "merge words identical after stripping nikkud")
	rootCmd.PersistentFlags().BoolVar(&useCache, "cache", false, "cache calculated values")

	// Bind flags to viper
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("method", rootCmd.PersistentFlags().Lookup("method"))
	_ = viper.BindPFlag("count_nikkud", rootCmd.PersistentFlags().Lookup("nikkud"))
	_ = viper.BindPFlag("merge_vowels", rootCmd.PersistentFlags().Lookup("merge-vowels"))
	_ = viper.BindPFlag("cache.enabled", rootCmd.PersistentFlags().Lookup("cache"))

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}

		// Search for config in home directory
		viper.AddConfigPath(home + "/.gematria")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match GEMATRIA_*. Nested keys use
	// underscores in the environment, e.g. cache.enabled -> GEMATRIA_CACHE_ENABLED.
	viper.SetEnvPrefix("GEMATRIA")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// buildConfig resolves the run configuration: flags over environment over
// config file over defaults.
func buildConfig() *model.Config {
	cfg := model.DefaultConfig()
	cfg.Method = viper.GetString("method")
	cfg.CountNikkud = viper.GetBool("count_nikkud")
	cfg.DistinctVowelizations = !viper.GetBool("merge_vowels")
	cfg.Cache.Enabled = viper.GetBool("cache.enabled")
	cfg.Output.Verbose = viper.GetBool("verbose")
	if w := viper.GetInt("concurrency.workers"); w > 0 {
		cfg.Concurrency.Workers = w
	}
	if c := viper.GetInt("concurrency.chunk_size"); c > 0 {
		cfg.Concurrency.ChunkSize = c
	}
	return cfg
}

// readTextArg returns the optional positional text argument, falling back to
// stdin when absent so texts can be piped in.
func readTextArg(args []string, from int) (string, error) {
	if len(args) > from {
		return args[from], nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return string(data), nil
}
