package byggtid

import (
	"context"
	"fmt"

	"k8s.io/klog/v2"
)

// Build runs the whole pipeline: discover photos, evaluate their timeline
// positions, render the overlaid frames, and assemble the movie.
func Build(ctx context.Context, c *Config) error {
	klog.Infof("build: %s -> %s", c.InDir, c.OutDir)

	fs, err := Find(c.InDir)
	if err != nil {
		return fmt.Errorf("find: %w", err)
	}

	seq := Evaluate(fs)
	seq.DumpTimes()

	if err := Render(c, seq); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	if seq.Len() == 0 {
		klog.Infof("no frames found in %s, skipping movie", c.InDir)
		return nil
	}

	if err := AssembleMovie(ctx, c); err != nil {
		return fmt.Errorf("assemble movie: %w", err)
	}

	return nil
}
