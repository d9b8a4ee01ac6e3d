package ports

import (
	"context"

	"github.com/nmelnik/subburn/internal/types"
)

// MediaTool is the capability surface of the external media engine. The real
// implementation shells out to ffmpeg/ffprobe; tests substitute fakes.
type MediaTool interface {
	// ExtractTrack writes subtitle stream track (0:s:<track>) of input to
	// outPath.
	ExtractTrack(ctx context.Context, input string, track int, outPath string) error
	// Transcode re-encodes input into output, burning in the subtitle file
	// and selecting the hardware or software encoder profile via gpu.
	Transcode(ctx context.Context, input, subtitlePath, output string, gpu bool) error
	// ListSubtitleTracks probes input for its subtitle streams.
	ListSubtitleTracks(ctx context.Context, input string) ([]types.Track, error)
}
