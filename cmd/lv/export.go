package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/Dicklesworthstone/lucide_viewer/pkg/config"
	"github.com/Dicklesworthstone/lucide_viewer/pkg/export"
	"github.com/Dicklesworthstone/lucide_viewer/pkg/icons"
	"github.com/Dicklesworthstone/lucide_viewer/pkg/search"
	"github.com/Dicklesworthstone/lucide_viewer/pkg/style"

	"github.com/spf13/cobra"
)

func newExportCmd() *cobra.Command {
	var (
		output   string
		format   string
		width    float64
		noLabels bool
		serve    bool
		port     int
	)
	cmd := &cobra.Command{
		Use:   "export [query]",
		Short: "Write the matching icons as an SVG or PNG contact sheet",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, settings, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			logger, closeLog, err := newLogger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer closeLog()

			query := ""
			if len(args) == 1 {
				query = args[0]
			}
			matches := search.FilterMode(settings.Mode, query, search.Catalog)
			items := make([]icons.Named, len(matches))
			for i, id := range matches {
				items[i] = id
			}

			opts := sheetOptions(settings, width, !noLabels)
			opts.Logger = logger

			format, err := sheetFormat(format, output, cmd.Flags().Changed("format"))
			if err != nil {
				return err
			}
			if serve && format != "svg" {
				return fmt.Errorf("--serve only supports svg sheets")
			}

			src := assetSource(settings)
			render := func(ctx context.Context, w io.Writer) (export.SheetStats, error) {
				if format == "png" {
					return export.PNG(ctx, w, src, items, opts)
				}
				return export.Sheet(ctx, w, src, items, opts)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if serve {
				if !cmd.Flags().Changed("port") {
					if port, err = export.FindAvailablePort(export.PreviewPortRangeStart, export.PreviewPortRangeEnd); err != nil {
						return err
					}
				}
				srv := export.NewPreviewServer(render, port, logger)
				fmt.Fprintf(cmd.ErrOrStderr(), "Serving %d icons at %s (Ctrl+C to stop)\n", len(items), srv.URL())
				return srv.Run(ctx)
			}

			var buf bytes.Buffer
			stats, err := render(ctx, &buf)
			if err != nil {
				return fmt.Errorf("export: %w", err)
			}
			if output == "-" {
				_, err = cmd.OutOrStdout().Write(buf.Bytes())
				return err
			}
			if err := os.WriteFile(output, buf.Bytes(), 0644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			logger.Info("wrote sheet", "path", output, "format", format, "icons", stats.Icons, "missing", stats.Missing,
				"columns", stats.Columns, "rows", stats.Rows)
			fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d icons to %s (%dx%d)\n", stats.Icons, output, stats.Width, stats.Height)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "icons.svg", "Output file, or - for stdout")
	cmd.Flags().StringVar(&format, "format", "svg", "Sheet format: svg or png (default: from the output extension)")
	cmd.Flags().Float64Var(&width, "width", 0, "Sheet width in pixels (default 800)")
	cmd.Flags().BoolVar(&noLabels, "no-labels", false, "Omit icon names under each card")
	cmd.Flags().BoolVar(&serve, "serve", false, "Serve the sheet over HTTP instead of writing it")
	cmd.Flags().IntVar(&port, "port", export.PreviewPortRangeStart, "Port for --serve (default: first free port from 9000)")
	return cmd
}

// sheetOptions applies the settings to the default sheet. Icons take the
// browser's theme color, so a light sheet always draws them black.
func sheetOptions(s config.Settings, width float64, labels bool) export.SheetOptions {
	opts := export.DefaultSheetOptions()
	if width > 0 {
		opts.Width = width
	}
	opts.Color = style.ThemeColor(s.Dark, s.Color)
	opts.Size = s.Size
	opts.RotationDeg = s.RotationDeg
	opts.Labels = labels
	if !s.Dark {
		opts.Background = style.RGB(0xffffff)
		opts.CardColor = style.RGB(0xf5f5f5)
		opts.LabelColor = style.RGB(0x666666)
	}
	return opts
}

// sheetFormat picks the sheet format. Without an explicit --format a .png
// output file selects PNG.
func sheetFormat(format, output string, explicit bool) (string, error) {
	if !explicit && strings.EqualFold(filepath.Ext(output), ".png") {
		return "png", nil
	}
	switch f := strings.ToLower(format); f {
	case "svg", "png":
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q (want svg or png)", format)
	}
}
