package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nmelnik/subburn/internal/config"
	"github.com/nmelnik/subburn/internal/pipeline"
	"github.com/nmelnik/subburn/internal/types"
)

func run(cmd *cobra.Command, _ []string) error {
	input, _ := cmd.Flags().GetString("input")
	gpu, _ := cmd.Flags().GetBool("gpu")
	track, _ := cmd.Flags().GetInt("track")
	subs, _ := cmd.Flags().GetString("subs")
	dump, _ := cmd.Flags().GetBool("dump-tracks")
	settingsPath, _ := cmd.Flags().GetString("config")

	settings, err := config.Load(settingsPath)
	if err != nil {
		return fmt.Errorf("settings: %w", err)
	}

	absIn, err := filepath.Abs(input)
	if err != nil {
		return err
	}

	cfg := pipeline.Config{
		Input:       absIn,
		Track:       -1,
		SubsFile:    subs,
		UseGPU:      gpu,
		ListTracks:  dump,
		FFmpegPath:  settings.Tools.FFmpeg,
		FFprobePath: settings.Tools.FFprobe,
		Encode:      settings.Encode,
		Logf: func(format string, args ...any) {
			fmt.Fprintf(cmd.OutOrStdout(), format+"\n", args...)
		},
	}
	if cmd.Flags().Changed("track") {
		if track < 0 {
			return fmt.Errorf("%w: track index must be >= 0", types.ErrConfiguration)
		}
		cfg.Track = track
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	// No deadline: both tool invocations block until the subprocess exits.
	ctx := context.Background()

	if dump {
		return dumpTracks(ctx, cmd, cfg)
	}
	return pipeline.Run(ctx, cfg)
}
