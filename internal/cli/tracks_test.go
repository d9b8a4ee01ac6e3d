package cli

import (
	"strings"
	"testing"

	"github.com/nmelnik/subburn/internal/types"
)

func TestRenderTracks_Plain(t *testing.T) {
	tracks := []types.Track{
		{Index: 0, StreamIndex: 2, Language: "eng", Title: "Full"},
		{Index: 1, StreamIndex: 3, Language: "jpn"},
	}
	got := renderTracks(tracks, false)
	want := "0\teng\tFull\n1\tjpn\t-\n"
	if got != want {
		t.Fatalf("renderTracks plain = %q, want %q", got, want)
	}
}

func TestRenderTracks_Table(t *testing.T) {
	tracks := []types.Track{
		{Index: 0, Language: "eng", Title: "Signs & Songs"},
	}
	got := renderTracks(tracks, true)
	for _, want := range []string{"Track", "Language", "Title", "eng", "Signs & Songs"} {
		if !strings.Contains(got, want) {
			t.Fatalf("table output missing %q:\n%s", want, got)
		}
	}
}
