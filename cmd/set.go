package cmd

import (
	"github.com/spf13/cobra"

	"github.com/zjrosen/a11ypanel/internal/settings"
)

var setCmd = &cobra.Command{
	Use:   "set <field> <value>",
	Short: "Change one accessibility setting",
	Long: `Change one setting and save it. Fields:

  highContrast, reduceMotion, soundFeedback, keyboardNavigation  on|off
  fontSize     12 to 24
  colorTheme   default|monochrome|high-contrast

Plays the feedback tone when sound feedback is on.`,
	Args: cobra.ExactArgs(2),
	RunE: runSet,
}

func init() {
	rootCmd.AddCommand(setCmd)
}

func runSet(cmd *cobra.Command, args []string) error {
	change, err := settings.ParseChange(args[0], args[1])
	if err != nil {
		return err
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	next := a.store.Update(change)
	a.feedback.Play()

	return printSettings(cmd, next, false)
}
