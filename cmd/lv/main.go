// Command lv browses the Lucide icon catalog in the terminal.
//
// Run without arguments it opens the interactive browser. Subcommands list
// matching icons, export them as a contact sheet, report on asset complexity
// and copy history, and manage the configuration.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/Dicklesworthstone/lucide_viewer/pkg/assets"
	"github.com/Dicklesworthstone/lucide_viewer/pkg/browser"
	"github.com/Dicklesworthstone/lucide_viewer/pkg/config"
	"github.com/Dicklesworthstone/lucide_viewer/pkg/history"
	"github.com/Dicklesworthstone/lucide_viewer/pkg/search"
	"github.com/Dicklesworthstone/lucide_viewer/pkg/ui"
	"github.com/Dicklesworthstone/lucide_viewer/pkg/version"

	"github.com/adrg/xdg"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Global flags
var (
	debugMode  bool
	configFile string
	themeName  string
	colorName  string
	sizeName   string
	rotation   float64
	fuzzyMode  bool
	assetsDir  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "lv [query]",
		Short: "Browse the Lucide icon catalog",
		Long: `lv - Lucide icon viewer

Filter the icon catalog as you type, pick a color, size and rotation, and
copy an icon's name with enter.`,
		Example: `  # Open the browser
  lv

  # Start with a query and the light theme
  lv arrow --theme light

  # List icons matching "chevron" with their asset paths
  lv list chevron --paths

  # Export every heart icon as a red contact sheet
  lv export heart --color red -o hearts.svg

  # Show the ten most complex arrows
  lv stats arrow --top 10`,
		Version:      version.String(),
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			query := ""
			if len(args) == 1 {
				query = args[0]
			}
			return runBrowser(cmd, query)
		},
	}

	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Write debug logs to the XDG state directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default: $XDG_CONFIG_HOME/"+config.RelPath+")")
	rootCmd.PersistentFlags().StringVar(&themeName, "theme", "", "Theme: dark or light")
	rootCmd.PersistentFlags().StringVar(&colorName, "color", "", "Icon color: a preset name or #rrggbb")
	rootCmd.PersistentFlags().StringVar(&sizeName, "size", "", "Icon size: xs, s, m, l or xl")
	rootCmd.PersistentFlags().Float64Var(&rotation, "rotation", 0, "Icon rotation in degrees")
	rootCmd.PersistentFlags().BoolVar(&fuzzyMode, "fuzzy", false, "Rank matches fuzzily instead of substring filtering")
	rootCmd.PersistentFlags().StringVar(&assetsDir, "assets-dir", "", "Load SVGs from this directory (containing icons/) instead of the built-in set")

	rootCmd.AddCommand(
		newListCmd(),
		newExportCmd(),
		newStatsCmd(),
		newHistoryCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadSettings reads the config file and environment, then applies the
// flags the user set explicitly.
func loadSettings(cmd *cobra.Command) (config.Config, config.Settings, error) {
	path := configFile
	if path == "" {
		path = config.Path()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, config.Settings{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("theme") {
		cfg.Theme = themeName
	}
	if flags.Changed("color") {
		cfg.Color = colorName
	}
	if flags.Changed("size") {
		cfg.Size = sizeName
	}
	if flags.Changed("rotation") {
		cfg.Rotation = rotation
	}
	if flags.Changed("fuzzy") {
		cfg.SearchMode = search.Substring.String()
		if fuzzyMode {
			cfg.SearchMode = search.Fuzzy.String()
		}
	}
	if flags.Changed("assets-dir") {
		cfg.AssetsDir = assetsDir
	}

	settings, err := cfg.Settings()
	if err != nil {
		return cfg, settings, fmt.Errorf("invalid settings: %w", err)
	}
	return cfg, settings, nil
}

// newLogger returns a debug logger writing to the XDG state directory when
// --debug is set, else one writing warnings to fallback.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	if !debugMode {
		logger := log.NewWithOptions(fallback, log.Options{Prefix: "lv", Level: log.WarnLevel})
		return logger, func() {}, nil
	}
	path, err := xdg.StateFile("lv/debug.log")
	if err != nil {
		return nil, nil, fmt.Errorf("debug log: %w", err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("debug log: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		Prefix:          "lv",
		Level:           log.DebugLevel,
		ReportTimestamp: true,
	})
	return logger, func() { f.Close() }, nil
}

func assetSource(s config.Settings) assets.Source {
	if s.AssetsDir != "" {
		return assets.Dir(s.AssetsDir)
	}
	return assets.Embedded()
}

func runBrowser(cmd *cobra.Command, query string) error {
	_, settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}
	// The TUI owns the terminal, so without --debug nothing is logged.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	state := browser.New(search.Catalog,
		browser.WithColor(settings.Color),
		browser.WithSize(settings.Size),
		browser.WithRotation(settings.RotationDeg),
		browser.WithDark(settings.Dark),
		browser.WithMode(settings.Mode),
		browser.WithLogger(logger),
	)
	if query != "" {
		state.SetQuery(query)
	}

	opts := []ui.Option{ui.WithLogger(logger)}
	if settings.History {
		if db, err := openHistory(); err != nil {
			logger.Warn("copy history disabled", "err", err)
		} else {
			defer db.Close()
			opts = append(opts, ui.WithHistory(db))
		}
	}

	m := ui.New(state, assetSource(settings), opts...)
	defer m.Close()
	logger.Debug("starting browser", "icons", state.Len(), "query", query)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run browser: %w", err)
	}
	return nil
}

func openHistory() (*history.DB, error) {
	path, err := history.DefaultPath()
	if err != nil {
		return nil, err
	}
	return history.Open(path)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the lv version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), "lv", version.String())
			return nil
		},
	}
}
