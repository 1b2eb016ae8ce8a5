package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/a11ypanel/internal/settings"
	"github.com/zjrosen/a11ypanel/internal/ui/styles"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List available color themes",
	Long:  `Display the color themes that can be selected in the panel or with "a11ypanel set colorTheme".`,
	Run:   runThemes,
}

func init() {
	rootCmd.AddCommand(themesCmd)
}

func runThemes(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Available color themes:")
	fmt.Fprintln(out)

	// Find max name length for alignment
	maxLen := 0
	for _, t := range settings.Themes {
		if len(t) > maxLen {
			maxLen = len(t)
		}
	}

	for _, t := range settings.Themes {
		fmt.Fprintf(out, "  %-*s  %s\n", maxLen, t, styles.Presets[t].Description)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Select one with:")
	fmt.Fprintln(out, "  a11ypanel set colorTheme monochrome")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "High contrast mode overrides the theme palette while it is on.")
}
