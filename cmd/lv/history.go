package main

import (
	"fmt"
	"io"
	"time"

	"github.com/Dicklesworthstone/lucide_viewer/pkg/history"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func newHistoryCmd() *cobra.Command {
	var (
		limit int
		top   bool
		wipe  bool
	)
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the icons copied from the browser",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := openHistory()
			if err != nil {
				return err
			}
			defer db.Close()

			out := cmd.OutOrStdout()
			switch {
			case wipe:
				n, err := db.Clear()
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Removed %d copies\n", n)
			case top:
				usage, err := db.Top(limit)
				if err != nil {
					return err
				}
				writeUsage(out, usage, time.Now())
			default:
				entries, err := db.Log(limit)
				if err != nil {
					return err
				}
				writeLog(out, entries, time.Now())
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "How many entries to show")
	cmd.Flags().BoolVar(&top, "top", false, "Show the most copied icons instead of the latest copies")
	cmd.Flags().BoolVar(&wipe, "clear", false, "Delete the whole history")
	cmd.MarkFlagsMutuallyExclusive("top", "clear")
	return cmd
}

func writeLog(w io.Writer, copies []history.Copy, now time.Time) {
	if len(copies) == 0 {
		fmt.Fprintln(w, "No icons copied yet.")
		return
	}
	for _, c := range copies {
		fmt.Fprintf(w, "%-16s %-24s %s %s", humanize.RelTime(c.CopiedAt, now, "ago", "from now"), c.Icon, c.Color, c.Size)
		if c.RotationDeg != 0 {
			fmt.Fprintf(w, " %g°", c.RotationDeg)
		}
		fmt.Fprintln(w)
	}
}

func writeUsage(w io.Writer, usage []history.Usage, now time.Time) {
	if len(usage) == 0 {
		fmt.Fprintln(w, "No icons copied yet.")
		return
	}
	for _, u := range usage {
		fmt.Fprintf(w, "%5d  %-24s last %s\n", u.Count, u.Icon, humanize.RelTime(u.Last, now, "ago", "from now"))
	}
}
