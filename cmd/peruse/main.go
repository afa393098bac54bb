package main

import (
	"fmt"
	"os"

	"peruse/internal/config"
	"peruse/internal/errors"
	"peruse/internal/log"
	"peruse/internal/tui"
	"peruse/internal/tui/styles"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
)

// Entry point for the application
func main() {
	rootCmd := &cobra.Command{
		Use:     "peruse [root]",
		Short:   "A two-pane terminal file browser",
		Long: `Peruse browses a directory tree beside a scrollable content viewer.
The tree pane navigates files and directories; the viewer previews
whatever the cursor rests on. An optional root argument overrides the
configured browse root.`,
		Version: version,
		Args:    cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			var root string
			if len(args) > 0 {
				root = args[0]
			}
			if err := runBrowser(root); err != nil {
				fmt.Printf("Error: %v\n", err)
				os.Exit(1)
			}
		},
	}

	rootCmd.AddCommand(themesCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// runBrowser wires configuration, logging, and the model together and runs
// the program. Errors returned here are reported before the alternate
// screen is entered, so they stay visible after exit.
func runBrowser(root string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		// A config that fails validation is a user mistake worth stopping
		// for; anything else falls back to defaults
		if errors.Is(err, config.ErrInvalid) {
			return err
		}
		fmt.Fprintf(os.Stderr, "Warning: Could not load config: %v. Using default settings.\n", err)
		cfg = config.New()
	}
	if root != "" {
		cfg.Browse.Root = root
	}

	styles.Apply(cfg.Palette())

	// The UI owns the terminal, so diagnostics go to a file or nowhere
	var obs log.Observer = log.Nop()
	if cfg.Logging.File != "" {
		logger, closeLog, err := log.NewFile(cfg.Logging.File, cfg.Logging.Debug)
		if err != nil {
			return fmt.Errorf("error opening log file: %w", err)
		}
		defer closeLog()
		obs = logger
	}

	// An unreadable root fails here, before the event loop starts
	m, err := tui.New(cfg, obs)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running browser: %w", err)
	}
	return nil
}

// themesCmd represents the themes command
func themesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List available color themes",
		Long:  `List the color themes that can be named as theme.name in the config file.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("Available themes:")
			for _, name := range config.ListThemes() {
				fmt.Printf("  %s\n", name)
			}
		},
	}
}
