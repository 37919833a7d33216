package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"sprite-extractor/internal/config"
	"sprite-extractor/internal/pipeline"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	minSize := flag.Int("min", -1, "Minimum pixel count; regions at or below this are dropped (default: 500)")
	alpha := flag.Int("alpha", -1, "Alpha below this counts as background (default: 50)")
	white := flag.Int("white", -1, "R, G and B all above this count as background (default: 200)")
	format := flag.String("format", "", "Sprite output format: png or webp (default: png)")
	prefix := flag.String("prefix", "", "Sprite file name prefix (default: sprite)")
	padding := flag.Int("padding", -1, "Transparent pixels added around each sprite (default: 0)")
	workers := flag.Int("workers", 0, "Extraction worker goroutines (default: NumCPU)")
	quiet := flag.Bool("quiet", false, "Suppress progress output")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <input-image> <output-dir>\n\nFlags:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	// Load config
	cfg := config.Default()
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags and positional args override config file
	fl := config.Flags{
		MinRegionSize: *minSize,
		AlphaCutoff:   *alpha,
		WhiteCutoff:   *white,
		Format:        *format,
		NamePrefix:    *prefix,
		Padding:       *padding,
		Workers:       *workers,
		Quiet:         *quiet,
	}
	if args := flag.Args(); len(args) > 0 {
		fl.InputPath = args[0]
		if len(args) > 1 {
			fl.OutputDir = args[1]
		}
	}
	cfg.Resolve(fl)

	if cfg.InputPath == "" || cfg.OutputDir == "" {
		flag.Usage()
		os.Exit(2)
	}

	start := time.Now()

	sum, err := pipeline.Run(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if !cfg.Quiet {
		fmt.Printf("Done in %.1fs\n", time.Since(start).Seconds())
		fmt.Printf("Sprites: %d/%d\n", sum.RegionsKept-sum.Failed, sum.RegionsKept)
	}

	if sum.Failed > 0 {
		fmt.Fprintf(os.Stderr, "\nFailed (%d):\n", sum.Failed)
		for _, r := range sum.Results {
			if r.Err != nil {
				fmt.Fprintf(os.Stderr, "  %s: %v\n", r.File, r.Err)
			}
		}
		os.Exit(1)
	}
}
