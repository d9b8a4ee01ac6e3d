// Package config resolves tool paths and encoder tuning from three layers:
// built-in defaults, an optional TOML settings file, then SUBBURN_*
// environment variables. CLI flags override on top of all of these.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type Settings struct {
	Tools  Tools  `toml:"tools"`
	Encode Encode `toml:"encode"`
}

// Tools holds paths to the external media binaries.
type Tools struct {
	FFmpeg  string `toml:"ffmpeg"`
	FFprobe string `toml:"ffprobe"`
}

// Encode holds the tunable parts of the two encoder profiles. Codec choice
// stays fixed (libx264 / h264_nvenc); only quality and preset knobs are
// configurable.
type Encode struct {
	CRF         int    `toml:"crf"`
	PixelFormat string `toml:"pixel_format"`
	AudioCodec  string `toml:"audio_codec"`
	CPUPreset   string `toml:"cpu_preset"`
	CPUTune     string `toml:"cpu_tune"`
	GPUPreset   string `toml:"gpu_preset"`
	GPUTune     string `toml:"gpu_tune"`
}

func Defaults() Settings {
	return Settings{
		Tools: Tools{
			FFmpeg:  "ffmpeg",
			FFprobe: "ffprobe",
		},
		Encode: Encode{
			CRF:         23,
			PixelFormat: "yuv420p",
			AudioCodec:  "ac3",
			CPUPreset:   "veryslow",
			CPUTune:     "animation",
			GPUPreset:   "p7",
			GPUTune:     "hq",
		},
	}
}

// Load returns defaults overlaid with the TOML file at path (when given) and
// then with SUBBURN_FFMPEG / SUBBURN_FFPROBE. Keys absent from the file keep
// their defaults.
func Load(path string) (Settings, error) {
	s := Defaults()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Settings{}, fmt.Errorf("read settings %s: %w", path, err)
		}
		if err := toml.Unmarshal(raw, &s); err != nil {
			return Settings{}, fmt.Errorf("parse settings %s: %w", path, err)
		}
	}
	if v := os.Getenv("SUBBURN_FFMPEG"); v != "" {
		s.Tools.FFmpeg = v
	}
	if v := os.Getenv("SUBBURN_FFPROBE"); v != "" {
		s.Tools.FFprobe = v
	}
	return s, nil
}
