package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Dicklesworthstone/lucide_viewer/pkg/icons"
	"github.com/Dicklesworthstone/lucide_viewer/pkg/search"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newListCmd() *cobra.Command {
	var (
		showPaths bool
		markdown  bool
	)
	cmd := &cobra.Command{
		Use:   "list [query]",
		Short: "Print the icons matching a query",
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

			out := cmd.OutOrStdout()
			if !markdown {
				writePlain(out, matches, showPaths)
				return nil
			}
			doc := markdownTable(query, matches)
			if f, ok := out.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
				_, err := io.WriteString(out, doc)
				return err
			}
			r, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
			if err != nil {
				return fmt.Errorf("markdown renderer: %w", err)
			}
			rendered, err := r.Render(doc)
			if err != nil {
				return fmt.Errorf("render markdown: %w", err)
			}
			_, err = io.WriteString(out, rendered)
			return err
		},
	}
	cmd.Flags().BoolVar(&showPaths, "paths", false, "Print each icon's asset path")
	cmd.Flags().BoolVar(&markdown, "markdown", false, "Print a markdown table, styled when stdout is a terminal")
	return cmd
}

func writePlain(w io.Writer, matches []icons.Icon, paths bool) {
	for _, id := range matches {
		if paths {
			fmt.Fprintf(w, "%s\t%s\n", id.Name(), id.Path())
			continue
		}
		fmt.Fprintln(w, id.Name())
	}
}

func markdownTable(query string, matches []icons.Icon) string {
	var sb strings.Builder
	if query == "" {
		fmt.Fprintf(&sb, "# Icons (%d)\n\n", len(matches))
	} else {
		fmt.Fprintf(&sb, "# Icons matching `%s` (%d of %d)\n\n", query, len(matches), icons.Count())
	}
	if len(matches) == 0 {
		sb.WriteString("_No icons match._\n")
		return sb.String()
	}
	sb.WriteString("| Name | Asset |\n|------|-------|\n")
	for _, id := range matches {
		fmt.Fprintf(&sb, "| %s | `%s` |\n", id.Name(), id.Path())
	}
	return sb.String()
}
