package byggtid

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFFmpegArgs(t *testing.T) {
	args := ffmpegArgs("tmp/frames", 0.5, "movie.mp4")

	s := strings.Join(args, " ")
	assert.Contains(t, s, "-framerate 0.5")
	assert.Contains(t, s, "-pattern_type glob")
	assert.Contains(t, s, "tmp/frames/frame-*.jpg")
	assert.Equal(t, "-y", args[0], "stale output is overwritten")
	assert.Equal(t, "movie.mp4", args[len(args)-1])
}
