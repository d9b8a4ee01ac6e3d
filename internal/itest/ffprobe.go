//go:build integration

package itest

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// probeStreamCount counts streams of the given type ("v", "a", "s") in path.
func probeStreamCount(path, streamType string) (int, error) {
	cmd := exec.Command("ffprobe",
		"-v", "error",
		"-select_streams", streamType,
		"-show_entries", "stream=index",
		"-of", "csv=p=0",
		path,
	)
	b, err := cmd.CombinedOutput()
	if err != nil {
		return 0, fmt.Errorf("ffprobe: %w\n%s", err, string(b))
	}
	count := 0
	for _, line := range strings.Split(strings.TrimSpace(string(b)), "\n") {
		if line == "" {
			continue
		}
		if _, err := strconv.Atoi(strings.TrimSuffix(strings.TrimSpace(line), ",")); err != nil {
			return 0, fmt.Errorf("parse stream index %q", line)
		}
		count++
	}
	return count, nil
}
