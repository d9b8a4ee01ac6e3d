package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func Main() {
	_ = godotenv.Load() // best-effort: load .env if present

	root := &cobra.Command{
		Use:   "subburn -i <input> (-t <track> | -s <subs>)",
		Short: "Transcode a video with rescaled, burned-in subtitles",
		Long: `subburn re-encodes a video while burning in a subtitle track whose
embedded font sizes have been rescaled through a fixed cubic curve.

The subtitle source is either a track extracted from the input container
(--track) or a caller-supplied file (--subs); exactly one must be given.
A supplied file is rewritten in place, so running subburn twice over the
same file rescales the sizes again.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         run,
	}

	root.SetOut(os.Stdout)
	root.SetErr(os.Stderr)
	root.SilenceErrors = true

	root.Flags().StringP("input", "i", "", "Input video file")
	root.Flags().BoolP("gpu", "g", false, "Use the NVENC hardware encoder")
	root.Flags().IntP("track", "t", 0, "Subtitle track index to extract (mutually exclusive with --subs)")
	root.Flags().StringP("subs", "s", "", "Subtitle file to burn in (mutually exclusive with --track)")
	root.Flags().BoolP("dump-tracks", "d", false, "List subtitle tracks of the input and exit")
	root.Flags().String("config", "", "Optional TOML settings file")
	_ = root.MarkFlagRequired("input")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
