package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hollowmere/fieldguide/internal/config"
	"github.com/hollowmere/fieldguide/internal/errors"
	"github.com/hollowmere/fieldguide/pkg/version"
)

var (
	cfg       *config.Config
	helpFile  string
	language  string
	watch     bool
	debugFlag bool
)

var rootCmd = &cobra.Command{
	Use:   "fieldguide",
	Short: "Hollowmere's in-game help viewer for the terminal",
	Long: `fieldguide renders Hollowmere's help topics outside the game: the same
data files, key bindings, and placeholder substitution, in a standalone
terminal viewer. Press a topic's hotkey to open it, q or esc to back out.`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		var err error
		cfg, err = config.LoadConfig()
		if err != nil {
			return err
		}

		// Flags win over the config file.
		if helpFile != "" {
			cfg.HelpFile = helpFile
		}
		if language != "" {
			cfg.Language = language
		}
		if watch {
			cfg.Watch = true
		}
		if debugFlag {
			cfg.Debug = true
		}

		if cfg.Debug && os.Getenv(config.EnvDebugLog) == "" {
			_ = os.Setenv(config.EnvDebugLog, "1")
		}

		return nil
	},
	RunE: runViewer,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		errorMsg := errors.FormatUserError(err)
		fmt.Fprintf(os.Stderr, "Error: %s\n", errorMsg)

		// Add helpful hints for common errors
		if errors.IsParseError(err) {
			fmt.Fprintf(os.Stderr, "\nHint: Run 'fieldguide validate' to check the data files\n")
		}

		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&helpFile, "file", "", "help data file (default is the game data directory)")
	rootCmd.PersistentFlags().StringVar(&language, "lang", "", "display language code, e.g. es")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "enable the debug log")
	rootCmd.Flags().BoolVar(&watch, "watch", false, "reload while the help data files change")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(topicsCmd)
	rootCmd.AddCommand(dirsCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println(version.GetBuildInfo())
	},
}
