// Package fontsize rewrites font-size attributes embedded in subtitle markup.
//
// Sizes are mapped through a fixed cubic polynomial tuned for burn-in
// rendering. The mapping is applied per line and is not idempotent: running
// it over already-remapped content scales the values again.
package fontsize

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// Coefficients of the cubic size mapping.
const (
	coefA = 0.000185632
	coefB = -0.0374664
	coefC = 2.7183
	coefD = -51.2774
)

var sizeAttr = regexp.MustCompile(`size="(\d+)"`)

// Map evaluates the cubic at size and truncates toward zero. The curve goes
// negative for small inputs; callers keep whatever comes out.
func Map(size int) int {
	n := float64(size)
	return int(coefA*n*n*n + coefB*n*n + coefC*n + coefD)
}

// RemapLine rewrites the size attribute of a face-tagged line. Lines without
// the face token, and face lines without a size attribute, pass through
// unchanged. Reports whether the line was modified.
func RemapLine(line string) (string, bool) {
	if !strings.Contains(line, "face") {
		return line, false
	}
	m := sizeAttr.FindStringSubmatch(line)
	if m == nil {
		return line, false
	}
	size, err := strconv.Atoi(m[1])
	if err != nil {
		return line, false
	}
	// Replace the first textual occurrence only. An identical quoted value
	// in an earlier attribute on the same line would be hit instead; kept
	// as-is for output compatibility with existing files.
	mapped := `size="` + strconv.Itoa(Map(size)) + `"`
	return strings.Replace(line, m[0], mapped, 1), true
}

// RemapLines transforms every line, preserving order and count, and reports
// how many lines changed.
func RemapLines(lines []string) ([]string, int) {
	out := make([]string, len(lines))
	changed := 0
	for i, line := range lines {
		mapped, ok := RemapLine(line)
		out[i] = mapped
		if ok {
			changed++
		}
	}
	return out, changed
}

// RewriteFile remaps path in place and reports how many lines changed. The
// whole document is transformed in memory and swapped in with a rename, so a
// failure never leaves a half-rewritten file behind. A missing or empty
// source is an error.
func RewriteFile(path string) (int, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read subtitles: %w", err)
	}
	if len(raw) == 0 {
		return 0, fmt.Errorf("subtitle file %s is empty", path)
	}

	lines := strings.Split(string(raw), "\n")
	out, changed := RemapLines(lines)

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".remap-*")
	if err != nil {
		return 0, fmt.Errorf("stage remapped subtitles: %w", err)
	}
	tmpPath := tmp.Name()
	_, werr := tmp.WriteString(strings.Join(out, "\n"))
	if cerr := tmp.Close(); werr == nil {
		werr = cerr
	}
	if werr != nil {
		_ = os.Remove(tmpPath)
		return 0, fmt.Errorf("write remapped subtitles: %w", werr)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return 0, fmt.Errorf("replace subtitles: %w", err)
	}
	return changed, nil
}
