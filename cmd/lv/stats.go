package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Dicklesworthstone/lucide_viewer/pkg/analysis"
	"github.com/Dicklesworthstone/lucide_viewer/pkg/icons"
	"github.com/Dicklesworthstone/lucide_viewer/pkg/search"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func newStatsCmd() *cobra.Command {
	var (
		top    int
		asJSON bool
	)
	cmd := &cobra.Command{
		Use:   "stats [query]",
		Short: "Report how complex the matching icons are to draw",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, settings, err := loadSettings(cmd)
			if err != nil {
				return err
			}
			query := ""
			if len(args) == 1 {
				query = args[0]
			}
			matches := search.FilterMode(settings.Mode, query, search.Catalog)
			items := make([]icons.Named, len(matches))
			for i, id := range matches {
				items[i] = id
			}

			report, err := analysis.Analyze(cmd.Context(), assetSource(settings), items)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}
			writeStats(out, report, top)
			return nil
		},
	}
	cmd.Flags().IntVar(&top, "top", 5, "How many of the most complex icons to list")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the full report as JSON")
	return cmd
}

func writeStats(w io.Writer, r analysis.Report, top int) {
	var total int
	for _, m := range r.Icons {
		total += m.Bytes
	}
	fmt.Fprintf(w, "%d icons, %s of SVG", len(r.Icons), humanize.IBytes(uint64(total)))
	if r.Missing > 0 {
		fmt.Fprintf(w, ", %d missing", r.Missing)
	}
	fmt.Fprintln(w)
	if len(r.Icons) == r.Missing {
		return
	}

	fmt.Fprintf(w, "\n%-10s %8s %8s %8s %8s %8s\n", "", "mean", "stddev", "median", "p90", "max")
	for _, row := range []struct {
		label string
		d     analysis.Distribution
	}{
		{"bytes", r.Bytes},
		{"elements", r.Elements},
		{"segments", r.Segments},
	} {
		fmt.Fprintf(w, "%-10s %8.1f %8.1f %8.0f %8.0f %8.0f\n",
			row.label, row.d.Mean, row.d.StdDev, row.d.Median, row.d.P90, row.d.Max)
	}
	fmt.Fprintf(w, "\nsize/segments correlation: %.2f\n", r.BytesSegmentsCorrelation)

	heavy := r.Heaviest(top)
	if len(heavy) == 0 {
		return
	}
	fmt.Fprintf(w, "\nMost complex:\n")
	for _, m := range heavy {
		fmt.Fprintf(w, "  %-24s %4d segments %3d elements  z=%+.2f\n", m.Name, m.Segments, m.Elements, m.Score)
	}
}
