// Package cmd wires configuration, storage, the settings store and the
// panel into the a11ypanel command line.
package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/zjrosen/a11ypanel/internal/config"
	"github.com/zjrosen/a11ypanel/internal/log"
	"github.com/zjrosen/a11ypanel/internal/projection"
	"github.com/zjrosen/a11ypanel/internal/sound"
	"github.com/zjrosen/a11ypanel/internal/storage"
	"github.com/zjrosen/a11ypanel/internal/store"
	"github.com/zjrosen/a11ypanel/internal/ui/panel"
	"github.com/zjrosen/a11ypanel/internal/ui/styles"
)

var (
	cfgFile   string
	ephemeral bool
	debug     bool
)

var rootCmd = &cobra.Command{
	Use:   "a11ypanel",
	Short: "Accessibility preferences panel",
	Long: `a11ypanel shows an interactive panel for accessibility preferences:
high contrast, reduced motion, font size, color theme, sound feedback and
enhanced keyboard navigation. Changes are saved immediately.`,
	SilenceUsage: true,
	RunE:         runPanel,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: .a11ypanel/config.yaml or ~/.config/a11ypanel/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&ephemeral, "ephemeral", false, "keep settings in memory only")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "write a debug log")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// app holds everything a command needs once configuration is loaded.
type app struct {
	cfg      config.Config
	slot     storage.Slot
	store    *store.Store
	doc      *projection.Document
	feedback *sound.FeedbackEmitter
	closeLog func() error
}

// openApp loads config, opens the storage slot and builds the store. The
// store projects onto the terminal styles and a marker document.
func openApp() (*app, error) {
	cfg, used, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if ephemeral {
		cfg.Storage.Backend = storage.BackendMemory
	}

	level := log.ParseLevel(cfg.Log.Level)
	if debug {
		level = log.LevelDebug
	}
	closeLog, err := log.Init(config.LogPath(cfg, used, debug), level)
	if err != nil {
		return nil, err
	}
	log.Debug(log.CatConfig, "Config loaded", "path", used, "backend", cfg.Storage.Backend)

	slotPath := config.StoragePath(cfg.Storage, used)
	slot, err := storage.Open(cfg.Storage.Backend, slotPath)
	if err != nil {
		_ = closeLog()
		return nil, fmt.Errorf("opening settings storage: %w", err)
	}

	doc := projection.NewDocument()
	st := store.New(slot, projection.Multi{styles.Projector{}, doc})

	return &app{
		cfg:      cfg,
		slot:     slot,
		store:    st,
		doc:      doc,
		feedback: sound.NewFeedbackEmitter(st, cfg.Sound),
		closeLog: closeLog,
	}, nil
}

// Close waits for pending feedback and releases storage and the log.
func (a *app) Close() {
	a.feedback.Wait()
	if err := a.slot.Close(); err != nil {
		log.ErrorErr(log.CatStore, "Closing settings storage failed", err)
	}
	_ = a.closeLog()
}

func runPanel(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	log.Info(log.CatUI, "Starting panel", "markers", a.doc.Markers())

	p := tea.NewProgram(
		panel.New(a.store, a.feedback),
		tea.WithAltScreen(),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running panel: %w", err)
	}
	return nil
}
