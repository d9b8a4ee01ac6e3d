package pipeline

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/nmelnik/subburn/internal/config"
	"github.com/nmelnik/subburn/internal/ports"
	"github.com/nmelnik/subburn/internal/ports/adapters/ffmpeg"
	"github.com/nmelnik/subburn/internal/types"
	"github.com/nmelnik/subburn/internal/usecase"
)

type Config struct {
	Input    string
	Track    int // subtitle stream index to extract; < 0 when unset
	SubsFile string
	UseGPU   bool

	// ListTracks skips the source-exclusivity rules; only the input needs
	// to be valid for a probe.
	ListTracks bool

	FFmpegPath  string
	FFprobePath string
	Encode      config.Encode

	Logf func(format string, args ...any)
}

func (c Config) Validate() error {
	if c.Input == "" {
		return fmt.Errorf("%w: input file is required", types.ErrConfiguration)
	}
	if err := statFile(c.Input); err != nil {
		return err
	}
	if c.ListTracks {
		return nil
	}

	hasTrack := c.Track >= 0
	hasSubs := c.SubsFile != ""
	switch {
	case hasTrack && hasSubs:
		return fmt.Errorf("%w: use either --track or --subs, not both", types.ErrConfiguration)
	case !hasTrack && !hasSubs:
		return fmt.Errorf("%w: either --track or --subs must be given", types.ErrConfiguration)
	}
	if hasSubs {
		if err := statFile(c.SubsFile); err != nil {
			return err
		}
	}
	if c.Encode.CRF < 0 || c.Encode.CRF > 51 {
		return fmt.Errorf("%w: crf must be within 0..51", types.ErrConfiguration)
	}
	return nil
}

func statFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%w: %s", types.ErrInputNotFound, path)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", types.ErrInputNotFound, path)
	}
	return nil
}

// OutputPath derives the output artifact name, <stem>_processed.mp4 next to
// the input.
func OutputPath(input string) string {
	stem := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return filepath.Join(filepath.Dir(input), stem+"_processed.mp4")
}

func Run(ctx context.Context, cfg Config) error {
	logf := cfg.Logf
	if logf == nil {
		logf = func(string, ...any) {}
	}
	if err := checkTools(cfg); err != nil {
		return err
	}

	uc := usecase.New(usecase.Deps{Media: newMedia(cfg)})
	out := OutputPath(cfg.Input)
	res, err := uc.Run(ctx, usecase.Input{
		Input:    cfg.Input,
		Track:    cfg.Track,
		SubsFile: cfg.SubsFile,
		UseGPU:   cfg.UseGPU,
		Output:   out,
		Logf:     logf,
	})
	if err != nil {
		return err
	}
	logf("done: %s (%d font size(s) remapped)", out, res.Remapped)
	return nil
}

// ListTracks probes the input for subtitle streams.
func ListTracks(ctx context.Context, cfg Config) ([]types.Track, error) {
	if err := checkTools(cfg); err != nil {
		return nil, err
	}
	return newMedia(cfg).ListSubtitleTracks(ctx, cfg.Input)
}

func newMedia(cfg Config) *ffmpeg.Adapter {
	return ffmpeg.New(cfg.FFmpegPath, cfg.FFprobePath, cfg.Encode)
}

// checkTools verifies the external binaries exist before any work starts.
func checkTools(cfg Config) error {
	for _, bin := range []string{cfg.FFmpegPath, cfg.FFprobePath} {
		if bin == "" {
			continue // adapter falls back to PATH defaults
		}
		if _, err := exec.LookPath(bin); err != nil {
			return fmt.Errorf("%w: %s is required but was not found", types.ErrConfiguration, bin)
		}
	}
	return nil
}

// ensure the adapter satisfies the port
var _ ports.MediaTool = (*ffmpeg.Adapter)(nil)
