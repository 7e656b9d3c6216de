package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/qyinm/filmboard/catalog"
	"github.com/qyinm/filmboard/config"
	"github.com/qyinm/filmboard/presenter"
	"github.com/qyinm/filmboard/ui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

func main() {
	if err := newRootCmd(config.Load()).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(cfg config.Config) *cobra.Command {
	root := &cobra.Command{
		Use:           "filmboard",
		Short:         "Browse a film catalog board in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return run(cfg.Normalize())
		},
	}

	flags := root.Flags()
	flags.IntVar(&cfg.Cards, "cards", cfg.Cards, "number of generated cards")
	flags.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "seed for the generated catalog")
	flags.StringVar(&cfg.ImportPath, "import", cfg.ImportPath, "read the catalog from a saved board page instead")
	flags.IntVar(&cfg.Step, "step", cfg.Step, "cards revealed per \"show more\"")
	flags.IntVar(&cfg.ExtraCount, "extra", cfg.ExtraCount, "cards in each extra list")
	root.PersistentFlags().BoolVar(&cfg.Debug, "debug", cfg.Debug, "write debug logs to "+cfg.DebugLog)

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "filmboard %s (commit: %s)\n", Version, Commit)
		},
	})

	return root
}

func run(cfg config.Config) error {
	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	logger.Debug("starting", "cards", cfg.Cards, "seed", cfg.Seed, "import", cfg.ImportPath)

	model := ui.NewModel(catalog.Open(cfg), logger,
		presenter.WithStep(cfg.Step),
		presenter.WithExtraCount(cfg.ExtraCount),
	)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return model.Err()
}

// newLogger returns a JSON logger writing to the debug file, or a discarding
// one when debug is off.
func newLogger(cfg config.Config) (*slog.Logger, func(), error) {
	if !cfg.Debug {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	f, err := os.OpenFile(cfg.DebugLog, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open debug log: %w", err)
	}
	return newJSONLogger(f), func() { _ = f.Close() }, nil
}

func newJSONLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
