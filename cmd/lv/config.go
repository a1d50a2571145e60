package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/Dicklesworthstone/lucide_viewer/pkg/config"
	"github.com/Dicklesworthstone/lucide_viewer/pkg/search"
	"github.com/Dicklesworthstone/lucide_viewer/pkg/style"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the configuration",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := configFile
			if path == "" {
				path = config.Path()
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, _, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			data, err := cfg.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	})
	cmd.AddCommand(newConfigInitCmd())
	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the config file interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := configFile
			if path == "" {
				path = config.Path()
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", path)
			}
			// Env overrides are per-invocation; seeding the form with them
			// would persist them into the file.
			cfg, err := config.LoadFile(path)
			if err != nil && !force {
				return err
			}
			if err != nil {
				cfg = config.Default()
			}

			var save bool
			if err := configForm(&cfg, path, &save).Run(); err != nil {
				if errors.Is(err, huh.ErrUserAborted) {
					return nil
				}
				return fmt.Errorf("config form: %w", err)
			}
			if !save {
				fmt.Fprintln(cmd.ErrOrStderr(), "Nothing written.")
				return nil
			}
			if err := config.Save(path, cfg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %s\n", path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")
	return cmd
}

// configForm asks for every setting, editing cfg in place.
func configForm(cfg *config.Config, path string, save *bool) *huh.Form {
	sizes := make([]huh.Option[string], len(style.Sizes))
	for i, s := range style.Sizes {
		sizes[i] = huh.NewOption(s.Label(), s.String())
	}
	rotation := strconv.FormatFloat(cfg.Rotation, 'g', -1, 64)

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Theme").
				Options(huh.NewOptions("dark", "light")...).
				Value(&cfg.Theme),
			huh.NewInput().
				Title("Icon color").
				Description("A preset name like coral, or #rrggbb").
				Value(&cfg.Color).
				Validate(func(s string) error {
					_, err := style.LookupColor(s)
					return err
				}),
			huh.NewSelect[string]().
				Title("Icon size").
				Options(sizes...).
				Value(&cfg.Size),
			huh.NewInput().
				Title("Rotation (degrees)").
				Value(&rotation).
				Validate(func(s string) error {
					v, err := strconv.ParseFloat(s, 64)
					if err != nil {
						return errors.New("enter a number")
					}
					cfg.Rotation = v
					return nil
				}),
			huh.NewSelect[string]().
				Title("Search").
				Options(
					huh.NewOption("Substring, catalog order", search.Substring.String()),
					huh.NewOption("Fuzzy, best match first", search.Fuzzy.String()),
				).
				Value(&cfg.SearchMode),
		),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Write " + path + "?").
				Value(save),
		),
	)
}
