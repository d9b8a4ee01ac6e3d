package types

// Track describes one subtitle stream inside a media container.
type Track struct {
	// Index is the zero-based position among subtitle streams, i.e. the n
	// in an ffmpeg 0:s:n stream specifier.
	Index int
	// StreamIndex is the container-wide stream index reported by ffprobe.
	StreamIndex int
	Language    string
	Title       string
}
