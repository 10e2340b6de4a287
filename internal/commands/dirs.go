package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var dirsCmd = &cobra.Command{
	Use:   "dirs",
	Short: "Print the resolved game directories",
	Long: `dirs prints where fieldguide looks for game data, the same summary
the <GAME_DIRECTORIES> help macro renders inside the viewer.`,
	Run: func(_ *cobra.Command, _ []string) {
		registry, files := resolveFiles(cfg)
		fmt.Println(registry.Resolved())
		fmt.Printf("Help data file: %s\n", files.help)
		fmt.Printf("Keybindings file: %s\n", files.keybindings)
		fmt.Printf("Hints file: %s\n", files.hints)
	},
}
