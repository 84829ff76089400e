package byggtid

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"
	"github.com/otiai10/copy"
	"k8s.io/klog/v2"
)

// FramePath returns the output path for frame i. Names are zero-padded so
// lexical order matches chronological order, which the movie assembler's
// glob depends on.
func FramePath(outDir string, i int) string {
	return filepath.Join(outDir, fmt.Sprintf("frame-%05d.jpg", i))
}

// Render draws the timeline overlay onto every frame in the sequence and
// writes the downscaled results into c.OutDir. A failed frame is logged and
// skipped rather than aborting the batch; an error is returned only when a
// non-empty sequence produced no output at all.
func Render(c *Config, s *Sequence) error {
	if s.Len() == 0 {
		klog.Infof("nothing to render")
		return nil
	}

	if err := os.MkdirAll(c.OutDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	rendered := 0
	for i, f := range s.Frames {
		f.OutPath = FramePath(c.OutDir, i)

		if err := renderFrame(c, f); err != nil {
			klog.Errorf("render %s: %v", f.InPath, err)
			continue
		}

		if c.KeepOriginals {
			dst := filepath.Join(c.OutDir, "originals", filepath.Base(f.InPath))
			if err := copy.Copy(f.InPath, dst); err != nil {
				klog.Warningf("copy original %s: %v", f.InPath, err)
			}
		}

		rendered++
	}

	klog.Infof("rendered %d of %d frames to %s", rendered, s.Len(), c.OutDir)
	if rendered == 0 {
		return fmt.Errorf("all %d frames failed to render", s.Len())
	}

	return nil
}

// renderFrame decodes one photo, normalizes its rotation, draws the overlay
// at full resolution, then downscales and saves it. The overlay must be
// drawn before downscaling so its geometry matches the source dimensions.
func renderFrame(c *Config, f *Frame) error {
	img, err := imgio.Open(f.InPath)
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}

	img = normalizeOrientation(img, f.Orientation)

	cv, err := NewCanvas(img, c.Timeline.FontPercent)
	if err != nil {
		return fmt.Errorf("canvas: %w", err)
	}

	DrawTimeline(cv, c, f)

	x, y := fitSize(img.Bounds().Dx(), img.Bounds().Dy(), c.Output.Width, c.Output.Height)
	out := transform.Resize(cv.Image(), x, y, transform.Lanczos)

	if err := imgio.Save(f.OutPath, out, imgio.JPEGEncoder(c.Output.Quality)); err != nil {
		return fmt.Errorf("save: %w", err)
	}

	klog.V(1).Infof("wrote %s (%dx%d)", f.OutPath, x, y)
	return nil
}

// normalizeOrientation rotates an image upright per its EXIF orientation.
// Mirrored orientations are not produced by the cameras this targets.
func normalizeOrientation(img image.Image, orientation int64) image.Image {
	opts := &transform.RotationOptions{ResizeBounds: true}
	switch orientation {
	case 3:
		return transform.Rotate(img, 180, opts)
	case 6:
		return transform.Rotate(img, 90, opts)
	case 8:
		return transform.Rotate(img, 270, opts)
	default:
		return img
	}
}

// fitSize scales (w, h) to fit within (maxX, maxY), preserving aspect.
func fitSize(w, h, maxX, maxY int) (int, int) {
	if w <= 0 || h <= 0 {
		return maxX, maxY
	}

	sx := float64(maxX) / float64(w)
	sy := float64(maxY) / float64(h)
	s := sx
	if sy < sx {
		s = sy
	}
	if s >= 1 {
		return w, h
	}

	return int(float64(w) * s), int(float64(h) * s)
}
