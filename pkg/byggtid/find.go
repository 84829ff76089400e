package byggtid

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/barasher/go-exiftool"
	"github.com/karrick/godirwalk"
	"k8s.io/klog/v2"
)

var exifDate = "2006:01:02 15:04:05"

func read(path string, et *exiftool.Exiftool) (Frame, error) {
	fis := et.ExtractMetadata(path)
	fi := fis[0]
	f := Frame{InPath: path, Orientation: 1}
	var err error

	if fi.Err != nil {
		return f, fmt.Errorf("extract fail for %q: %w", path, fi.Err)
	}

	for k, v := range fi.Fields {
		klog.V(2).Infof("%q=%v\n", k, v)
	}

	// A missing timestamp or resolution would corrupt every downstream
	// progress fraction, so these are fatal rather than defaulted.
	ds, err := fi.GetString("DateTimeOriginal")
	if err != nil {
		return f, fmt.Errorf("get DateTimeOriginal for %q: %w", path, err)
	}

	f.Taken, err = time.Parse(exifDate, ds)
	if err != nil {
		return f, fmt.Errorf("parse time %q: %w", ds, err)
	}

	f.Height, err = fi.GetInt("ImageHeight")
	if err != nil {
		return f, fmt.Errorf("get ImageHeight: %w", err)
	}

	f.Width, err = fi.GetInt("ImageWidth")
	if err != nil {
		return f, fmt.Errorf("get ImageWidth: %w", err)
	}

	o, err := fi.GetString("Orientation")
	if err != nil {
		klog.V(1).Infof("unable to get orientation for %s: %v", path, err)
	}
	f.Orientation = orientationValue(o)

	// Orientations 6 and 8 store the pixels rotated a quarter turn, so the
	// display dimensions are the stored ones swapped. The overlay geometry
	// works on display dimensions.
	if f.Orientation == 6 || f.Orientation == 8 {
		f.Width, f.Height = f.Height, f.Width
	}

	f.Lat, err = fi.GetString("GPSLatitude")
	if err != nil {
		klog.V(1).Infof("unable to get latitude for %s: %v", path, err)
	}

	f.Lon, err = fi.GetString("GPSLongitude")
	if err != nil {
		klog.V(1).Infof("unable to get longitude for %s: %v", path, err)
	}

	f.Alt, err = fi.GetString("GPSAltitude")
	if err != nil {
		klog.V(1).Infof("unable to get altitude for %s: %v", path, err)
	}

	return f, nil
}

// orientationValue maps exiftool's descriptive orientation strings back to
// the numeric EXIF value. Unknown or empty strings mean upright.
func orientationValue(s string) int64 {
	switch s {
	case "Rotate 180":
		return 3
	case "Rotate 90 CW":
		return 6
	case "Rotate 270 CW":
		return 8
	default:
		return 1
	}
}

// Find walks root for photos and returns them sorted by capture time, so
// the returned order is the display order Evaluate expects.
func Find(root string) ([]*Frame, error) {
	found := []*Frame{}

	et, err := exiftool.NewExiftool()
	if err != nil {
		return nil, fmt.Errorf("exiftool: %w", err)
	}
	defer et.Close()

	err = godirwalk.Walk(root, &godirwalk.Options{
		Callback: func(path string, de *godirwalk.Dirent) error {
			if filepath.Base(path)[0] == '.' {
				return godirwalk.SkipThis
			}

			if de.IsDir() {
				return nil
			}

			ext := strings.ToLower(filepath.Ext(path))
			if ext != ".jpg" && ext != ".jpeg" {
				return nil
			}

			klog.Infof("found %s", path)
			f, err := read(path, et)
			if err != nil {
				klog.Errorf("read failure: %v", err)
				return err
			}

			found = append(found, &f)
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(found, func(i, j int) bool {
		return found[i].Taken.Before(found[j].Taken)
	})

	return found, nil
}
