package byggtid

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"k8s.io/klog/v2"
)

var ffmpegPath = "ffmpeg"

// ffmpegArgs builds the argv for assembling the numbered frames in outDir
// into a movie at the given frame rate.
func ffmpegArgs(outDir string, rate float64, movie string) []string {
	return []string{
		"-y",
		"-framerate", fmt.Sprintf("%g", rate),
		"-pattern_type", "glob",
		"-i", filepath.Join(outDir, "frame-*.jpg"),
		"-pix_fmt", "yuv420p",
		movie,
	}
}

// AssembleMovie runs ffmpeg over the rendered frames, in glob order, to
// produce the time-lapse movie. Any stale movie file is removed first.
func AssembleMovie(ctx context.Context, c *Config) error {
	if err := os.Remove(c.Movie.Path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove stale movie: %w", err)
	}

	args := ffmpegArgs(c.OutDir, c.Movie.FrameRate, c.Movie.Path)
	klog.Infof("running %s %v", ffmpegPath, args)

	cmd := exec.CommandContext(ctx, ffmpegPath, args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("ffmpeg: %w\n%s", err, out)
	}

	klog.Infof("wrote %s", c.Movie.Path)
	return nil
}
