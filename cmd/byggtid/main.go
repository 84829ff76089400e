package main

import (
	"context"
	"flag"
	"fmt"

	_ "image/jpeg"
	_ "image/png"

	"k8s.io/klog/v2"

	byggtid "github.com/byggtid/byggtid/pkg/byggtid"
	"github.com/fsnotify/fsnotify"
)

var (
	inDir         = flag.String("in", "", "Location of input photo directory")
	outDir        = flag.String("out", "", "Location of output frame directory")
	configPath    = flag.String("config", "", "Optional YAML config file")
	movie         = flag.String("movie", "", "Movie output path (overrides config)")
	fps           = flag.Float64("fps", 0, "Movie frame rate (overrides config)")
	keepOriginals = flag.Bool("keep-originals", false, "Copy source photos into the output directory")
	watchFlag     = flag.Bool("watch", false, "watch for changes to the input directory and rebuild")
)

func main() {
	klog.InitFlags(nil)
	flag.Parse()

	if *inDir == "" {
		klog.Exitf("--in is a required flag")
	}

	if *outDir == "" {
		klog.Exitf("--out is a required flag")
	}

	c, err := byggtid.LoadConfig(*configPath)
	if err != nil {
		klog.Exitf("config failed: %v", err)
	}

	c.InDir = *inDir
	c.OutDir = *outDir
	c.KeepOriginals = *keepOriginals
	if *movie != "" {
		c.Movie.Path = *movie
	}
	if *fps > 0 {
		c.Movie.FrameRate = *fps
	}

	ctx := context.Background()
	if err := byggtid.Build(ctx, c); err != nil {
		klog.Exitf("build failed: %v", err)
	}

	if *watchFlag {
		if err := watch(ctx, c); err != nil {
			klog.Exitf("watch failed: %v", err)
		}
	}
}

// watch watches the input directory for changes and rebuilds
func watch(ctx context.Context, c *byggtid.Config) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("new watcher: %w", err)
	}
	defer w.Close()

	if err := w.Add(c.InDir); err != nil {
		return fmt.Errorf("add watch: %w", err)
	}

	klog.Infof("watching %s ...", c.InDir)
	for {
		select {
		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			klog.Infof("event: %v", event)
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) || event.Has(fsnotify.Remove) {
				if err := byggtid.Build(ctx, c); err != nil {
					klog.Errorf("rebuild failed: %v", err)
				}
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			klog.Errorf("watch error: %v", err)
		}
	}
}
