package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/a11ypanel/internal/settings"
)

var showJSON bool

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current accessibility settings",
	RunE:  runShow,
}

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false, "print the persisted JSON record")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	return printSettings(cmd, a.store.Current(), showJSON)
}

func printSettings(cmd *cobra.Command, s settings.Settings, asJSON bool) error {
	out := cmd.OutOrStdout()
	if asJSON {
		data, err := settings.Marshal(s)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	maxLen := 0
	for _, f := range settings.Fields {
		if len(f) > maxLen {
			maxLen = len(f)
		}
	}
	for _, f := range settings.Fields {
		v, err := s.Get(f)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%-*s  %v\n", maxLen, f, v)
	}
	return nil
}
