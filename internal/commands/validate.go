package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hollowmere/fieldguide/internal/errors"
	"github.com/hollowmere/fieldguide/internal/help"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check help data for authoring mistakes",
	Long: `validate reads a help data file and reports problems the viewer
tolerates silently: duplicate topic orders (the loader keeps only the last
record) and <press_ACTION> tokens naming unknown actions (dropped from the
rendered text). Malformed records are reported the same way the viewer
rejects them.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		_, files := resolveFiles(cfg)
		path := files.help
		if len(args) == 1 {
			path = args[0]
		}

		bindings, err := loadBindings(files.keybindings)
		if err != nil {
			return err
		}

		report, err := help.ValidateFile(path, bindings)
		if err != nil {
			return err
		}

		for _, w := range report.Warnings {
			fmt.Printf("warning: %s\n", errors.FormatUserError(w))
		}
		for _, e := range report.Errors {
			fmt.Printf("error: %s\n", e)
		}

		if !report.Ok() {
			return fmt.Errorf("%s: %d problem(s) in %d record(s)", path, len(report.Errors), report.Records)
		}

		fmt.Printf("%s: %d record(s) OK", path, report.Records)
		if len(report.Warnings) > 0 {
			fmt.Printf(", %d warning(s)", len(report.Warnings))
		}
		fmt.Println()
		return nil
	},
}
