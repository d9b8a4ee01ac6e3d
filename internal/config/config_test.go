package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_DefaultsWhenNoFile(t *testing.T) {
	t.Setenv("SUBBURN_FFMPEG", "")
	t.Setenv("SUBBURN_FFPROBE", "")

	s, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.Tools.FFmpeg != "ffmpeg" || s.Tools.FFprobe != "ffprobe" {
		t.Fatalf("unexpected tool defaults: %+v", s.Tools)
	}
	if s.Encode.CRF != 23 || s.Encode.AudioCodec != "ac3" {
		t.Fatalf("unexpected encode defaults: %+v", s.Encode)
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "subburn.toml")
	doc := `
[tools]
ffmpeg = "/opt/ffmpeg/bin/ffmpeg"

[encode]
crf = 18
cpu_preset = "slow"
`
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.Tools.FFmpeg != "/opt/ffmpeg/bin/ffmpeg" {
		t.Fatalf("ffmpeg override not applied: %q", s.Tools.FFmpeg)
	}
	if s.Tools.FFprobe != "ffprobe" {
		t.Fatalf("ffprobe default lost: %q", s.Tools.FFprobe)
	}
	if s.Encode.CRF != 18 || s.Encode.CPUPreset != "slow" {
		t.Fatalf("encode overrides not applied: %+v", s.Encode)
	}
	if s.Encode.GPUPreset != "p7" {
		t.Fatalf("untouched encode default lost: %+v", s.Encode)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "subburn.toml")
	if err := os.WriteFile(path, []byte("[tools]\nffmpeg = \"from-file\"\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	t.Setenv("SUBBURN_FFMPEG", "from-env")

	s, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.Tools.FFmpeg != "from-env" {
		t.Fatalf("env override not applied: %q", s.Tools.FFmpeg)
	}
}

func TestLoad_MissingFileErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatalf("expected error for missing settings file")
	}
}

func TestLoad_MalformedFileErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[tools\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for malformed settings file")
	}
}
