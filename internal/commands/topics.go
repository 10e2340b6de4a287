// Copyright (C) 2025 Ariel Frischer
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hollowmere/fieldguide/internal/markup"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List the loaded help topics",
	Long: `topics prints the topic table the viewer would show, one line per
topic with its order, hotkeys, and title. Useful for scripts and for
checking what a data file contains without opening the viewer.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		service, _, _, err := buildService(cfg)
		if err != nil {
			return err
		}

		for _, t := range service.Topics() {
			hotkeys := strings.Join(t.Hotkeys, ",")
			if hotkeys == "" {
				hotkeys = "-"
			}
			name := markup.Strip(markup.ShortcutText(service.Resolver().Translate(t.Name)))
			fmt.Printf("%4d  %-8s %s\n", t.Order, hotkeys, name)
		}
		return nil
	},
}
