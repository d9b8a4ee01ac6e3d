package usecase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/nmelnik/subburn/internal/domain/fontsize"
	"github.com/nmelnik/subburn/internal/ports"
	"github.com/nmelnik/subburn/internal/types"
)

type Deps struct {
	Media ports.MediaTool
}

type Usecase struct{ d Deps }

func New(d Deps) Usecase { return Usecase{d: d} }

type Input struct {
	Input    string
	Track    int    // subtitle stream index; < 0 when SubsFile is used
	SubsFile string // caller-supplied subtitle file; empty when Track is used
	UseGPU   bool
	Output   string
	Logf     func(format string, args ...any)

	// TempDir overrides where extracted subtitles are staged; defaults to
	// os.TempDir(). Used by tests.
	TempDir string
}

type Result struct {
	Remapped     int
	SubtitlePath string
}

// Run resolves the subtitle source, remaps its font sizes, and transcodes
// with the rewritten file burned in. A subtitle file created by extraction is
// removed on every exit path; a caller-supplied one is never touched.
func (u Usecase) Run(ctx context.Context, in Input) (Result, error) {
	logf := in.Logf
	if logf == nil {
		logf = func(string, ...any) {}
	}

	subPath, cleanup, err := u.resolveSubtitles(ctx, in, logf)
	if err != nil {
		return Result{}, err
	}
	defer cleanup()

	logf("remapping font sizes in %s", filepath.Base(subPath))
	changed, err := fontsize.RewriteFile(subPath)
	if err != nil {
		return Result{}, fmt.Errorf("remap subtitles: %w", err)
	}
	if changed == 0 {
		logf("no font size attributes found; burning subtitles as-is")
	} else {
		logf("remapped %d font size(s)", changed)
	}

	profile := "cpu"
	if in.UseGPU {
		profile = "gpu"
	}
	logf("encoding %s (%s profile)", filepath.Base(in.Output), profile)
	if err := u.d.Media.Transcode(ctx, in.Input, subPath, in.Output, in.UseGPU); err != nil {
		return Result{}, err
	}
	return Result{Remapped: changed, SubtitlePath: subPath}, nil
}

// resolveSubtitles yields the subtitle file to burn in plus a cleanup that
// removes it only when it was produced by extraction.
func (u Usecase) resolveSubtitles(ctx context.Context, in Input, logf func(string, ...any)) (string, func(), error) {
	noop := func() {}

	if in.SubsFile != "" {
		if err := verifyNonEmpty(in.SubsFile); err != nil {
			return "", noop, fmt.Errorf("%w: %v", types.ErrInputNotFound, err)
		}
		return in.SubsFile, noop, nil
	}

	dir := in.TempDir
	if dir == "" {
		dir = os.TempDir()
	}
	tmpPath := filepath.Join(dir, "subburn-"+uuid.NewString()+".srt")
	cleanup := func() { _ = os.Remove(tmpPath) }

	logf("extracting subtitle track %d", in.Track)
	if err := u.d.Media.ExtractTrack(ctx, in.Input, in.Track, tmpPath); err != nil {
		cleanup() // the tool may have left partial output behind
		return "", noop, err
	}
	if err := verifyNonEmpty(tmpPath); err != nil {
		cleanup()
		return "", noop, fmt.Errorf("%w: %v", types.ErrExtraction, err)
	}
	return tmpPath, cleanup, nil
}

func verifyNonEmpty(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("subtitle file %s does not exist", path)
	}
	if info.Size() == 0 {
		return fmt.Errorf("subtitle file %s is empty", path)
	}
	return nil
}
