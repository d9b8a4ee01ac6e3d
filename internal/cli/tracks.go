package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/nmelnik/subburn/internal/pipeline"
	"github.com/nmelnik/subburn/internal/types"
)

func dumpTracks(ctx context.Context, cmd *cobra.Command, cfg pipeline.Config) error {
	tracks, err := pipeline.ListTracks(ctx, cfg)
	if err != nil {
		return err
	}
	if len(tracks) == 0 {
		cmd.Println("no subtitle streams found")
		return nil
	}
	cmd.Print(renderTracks(tracks, stdoutIsTerminal()))
	return nil
}

// renderTracks produces a rounded table on terminals and plain tab-separated
// lines when piped.
func renderTracks(tracks []types.Track, terminal bool) string {
	if !terminal {
		var b strings.Builder
		for _, tr := range tracks {
			fmt.Fprintf(&b, "%d\t%s\t%s\n", tr.Index, orDash(tr.Language), orDash(tr.Title))
		}
		return b.String()
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Track", "Language", "Title"})
	for _, tr := range tracks {
		tw.AppendRow(table.Row{tr.Index, orDash(tr.Language), orDash(tr.Title)})
	}
	return tw.Render() + "\n"
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
