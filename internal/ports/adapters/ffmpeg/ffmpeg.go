package ffmpeg

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/nmelnik/subburn/internal/config"
	"github.com/nmelnik/subburn/internal/types"
)

type Adapter struct {
	ffmpeg  string
	ffprobe string
	enc     config.Encode
}

func New(ffmpegPath, ffprobePath string, enc config.Encode) *Adapter {
	if ffmpegPath == "" {
		ffmpegPath = "ffmpeg"
	}
	if ffprobePath == "" {
		ffprobePath = "ffprobe"
	}
	return &Adapter{ffmpeg: ffmpegPath, ffprobe: ffprobePath, enc: enc}
}

func (a *Adapter) ExtractTrack(ctx context.Context, input string, track int, outPath string) error {
	cmd := exec.CommandContext(ctx, a.ffmpeg,
		"-y",
		"-i", input,
		"-map", "0:s:"+strconv.Itoa(track),
		outPath,
	)
	b, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%w: ffmpeg extract track %d: %v\n%s", types.ErrExtraction, track, err, string(b))
	}
	return nil
}

func (a *Adapter) Transcode(ctx context.Context, input, subtitlePath, output string, gpu bool) error {
	cmd := exec.CommandContext(ctx, a.ffmpeg, a.transcodeArgs(input, subtitlePath, output, gpu)...)
	b, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%w: ffmpeg transcode: %v\n%s", types.ErrEncode, err, string(b))
	}
	return nil
}

// transcodeArgs maps the first video and first audio stream, burns the
// subtitle file in, and picks the encoder from the gpu flag.
func (a *Adapter) transcodeArgs(input, subtitlePath, output string, gpu bool) []string {
	args := []string{
		"-y",
		"-i", input,
		"-map", "0:0",
		"-map", "0:1",
		"-pix_fmt", a.enc.PixelFormat,
		"-crf", strconv.Itoa(a.enc.CRF),
		"-vf", "subtitles=" + escapeFilterPath(subtitlePath),
		"-c:a", a.enc.AudioCodec,
	}
	if gpu {
		args = append(args, "-c:v", "h264_nvenc", "-preset", a.enc.GPUPreset, "-tune", a.enc.GPUTune)
	} else {
		args = append(args, "-c:v", "libx264", "-preset", a.enc.CPUPreset, "-tune", a.enc.CPUTune)
	}
	return append(args, output)
}

func (a *Adapter) ListSubtitleTracks(ctx context.Context, input string) ([]types.Track, error) {
	cmd := exec.CommandContext(ctx, a.ffprobe,
		"-v", "error",
		"-select_streams", "s",
		"-show_entries", "stream=index:stream_tags=language,title",
		"-of", "json",
		input,
	)
	b, err := cmd.CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("ffprobe subtitle streams: %w\n%s", err, string(b))
	}
	return parseTracks(b)
}

type probeOutput struct {
	Streams []probeStream `json:"streams"`
}

type probeStream struct {
	Index int `json:"index"`
	Tags  struct {
		Language string `json:"language"`
		Title    string `json:"title"`
	} `json:"tags"`
}

// parseTracks converts ffprobe JSON into tracks numbered by subtitle-stream
// order. ffprobe reports container-wide stream indexes; extraction addresses
// tracks as 0:s:<n>, so position in the list is what matters.
func parseTracks(raw []byte) ([]types.Track, error) {
	var out probeOutput
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("parse ffprobe output: %w", err)
	}
	tracks := make([]types.Track, 0, len(out.Streams))
	for i, s := range out.Streams {
		tracks = append(tracks, types.Track{
			Index:       i,
			StreamIndex: s.Index,
			Language:    s.Tags.Language,
			Title:       s.Tags.Title,
		})
	}
	return tracks, nil
}

func escapeFilterPath(p string) string {
	p = strings.ReplaceAll(p, "\\", "\\\\")
	p = strings.ReplaceAll(p, ":", "\\:")
	return p
}
