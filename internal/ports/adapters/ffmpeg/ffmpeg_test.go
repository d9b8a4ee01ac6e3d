package ffmpeg

import (
	"strings"
	"testing"

	"github.com/nmelnik/subburn/internal/config"
)

func TestTranscodeArgs(t *testing.T) {
	a := New("", "", config.Defaults().Encode)

	cpu := a.transcodeArgs("/v/in.mkv", "/tmp/subs.srt", "/v/in_processed.mp4", false)
	got := strings.Join(cpu, " ")
	for _, want := range []string{
		"-map 0:0",
		"-map 0:1",
		"-pix_fmt yuv420p",
		"-crf 23",
		"-c:a ac3",
		"-c:v libx264 -preset veryslow -tune animation",
		"-vf subtitles=/tmp/subs.srt",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("cpu args missing %q:\n%s", want, got)
		}
	}
	if cpu[len(cpu)-1] != "/v/in_processed.mp4" {
		t.Errorf("output path must be the final argument, got %q", cpu[len(cpu)-1])
	}

	gpu := a.transcodeArgs("/v/in.mkv", "/tmp/subs.srt", "/v/in_processed.mp4", true)
	if !strings.Contains(strings.Join(gpu, " "), "-c:v h264_nvenc -preset p7 -tune hq") {
		t.Errorf("gpu args missing nvenc profile:\n%s", strings.Join(gpu, " "))
	}
}

func TestTranscodeArgs_EscapesFilterPath(t *testing.T) {
	a := New("", "", config.Defaults().Encode)
	args := a.transcodeArgs("in.mkv", `C:\subs\movie.srt`, "out.mp4", false)
	got := strings.Join(args, " ")
	if !strings.Contains(got, `subtitles=C\:\\subs\\movie.srt`) {
		t.Errorf("filter path not escaped:\n%s", got)
	}
}

func TestParseTracks(t *testing.T) {
	raw := []byte(`{
		"streams": [
			{"index": 2, "tags": {"language": "eng", "title": "Full"}},
			{"index": 3, "tags": {"language": "jpn"}},
			{"index": 5}
		]
	}`)
	tracks, err := parseTracks(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(tracks) != 3 {
		t.Fatalf("expected 3 tracks, got %d", len(tracks))
	}
	if tracks[0].Index != 0 || tracks[0].StreamIndex != 2 || tracks[0].Language != "eng" || tracks[0].Title != "Full" {
		t.Fatalf("unexpected first track: %+v", tracks[0])
	}
	if tracks[1].Index != 1 || tracks[1].Language != "jpn" {
		t.Fatalf("unexpected second track: %+v", tracks[1])
	}
	if tracks[2].Index != 2 || tracks[2].Language != "" {
		t.Fatalf("unexpected tagless track: %+v", tracks[2])
	}
}

func TestParseTracks_Empty(t *testing.T) {
	tracks, err := parseTracks([]byte(`{"streams": []}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(tracks) != 0 {
		t.Fatalf("expected no tracks, got %d", len(tracks))
	}
}

func TestParseTracks_Malformed(t *testing.T) {
	if _, err := parseTracks([]byte("streams=1")); err == nil {
		t.Fatalf("expected error for malformed probe output")
	}
}
