package pipeline

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sync"

	"sprite-extractor/internal/config"
	"sprite-extractor/internal/imageio"
	"sprite-extractor/internal/segment"

	"github.com/schollz/progressbar/v3"
)

// Result holds the outcome of extracting and saving one sprite.
type Result struct {
	Index      int
	File       string
	Width      int
	Height     int
	PixelCount int
	Bounds     image.Rectangle // region bounds in source coordinates
	Err        error
}

// Summary reports one full pipeline run.
type Summary struct {
	RegionsFound int // before size filtering
	RegionsKept  int
	Results      []Result
	Failed       int
}

// Run executes load → label → filter → extract → save for one image.
// Decode and configuration failures abort before anything is written.
// Per-sprite save failures do not stop the run; they are recorded in the
// sprite's Result and counted in Summary.Failed.
func Run(cfg config.Config) (Summary, error) {
	if err := cfg.Validate(); err != nil {
		return Summary{}, err
	}

	src, err := imageio.Load(cfg.InputPath)
	if err != nil {
		return Summary{}, err
	}

	b := src.Bounds()
	logf(cfg, "Image: %s (%dx%d)\n", cfg.InputPath, b.Dx(), b.Dy())

	classifier := segment.Classifier{
		AlphaMin: uint8(cfg.AlphaCutoff),
		WhiteMin: uint8(cfg.WhiteCutoff),
	}

	regions := segment.Label(src, classifier, nil)
	kept := segment.FilterMinSize(regions, cfg.MinRegionSize)

	logf(cfg, "Regions: %d found, %d kept (min size %d)\n", len(regions), len(kept), cfg.MinRegionSize)
	for i, r := range kept {
		logf(cfg, "  region %d: %d pixels, %dx%d\n", i, r.Size(), r.Bounds.Dx(), r.Bounds.Dy())
	}

	sum := Summary{RegionsFound: len(regions), RegionsKept: len(kept)}
	if len(kept) == 0 {
		return sum, nil
	}

	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return sum, fmt.Errorf("pipeline: create %s: %w", cfg.OutputDir, err)
	}

	sum.Results = extractAll(cfg, src, kept)
	for _, r := range sum.Results {
		if r.Err != nil {
			sum.Failed++
		}
	}

	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := WriteManifest(manifestPath, sum.Results); err != nil {
		return sum, fmt.Errorf("pipeline: manifest: %w", err)
	}

	return sum, nil
}

// extractAll runs per-sprite extraction and saving on a worker pool.
// Regions are disjoint and the source is read-only at this point, so
// sprites can be materialized independently. Output numbering follows
// discovery order regardless of which worker finishes first.
func extractAll(cfg config.Config, src *image.NRGBA, regions []segment.Region) []Result {
	results := make([]Result, len(regions))

	var bar *progressbar.ProgressBar
	if !cfg.Quiet {
		bar = progressbar.NewOptions(len(regions),
			progressbar.OptionSetDescription("Extracting"),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionShowCount(),
		)
	}

	workers := cfg.Workers
	if workers > len(regions) {
		workers = len(regions)
	}
	if workers < 1 {
		workers = 1
	}

	jobs := make(chan int, workers)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = saveSprite(cfg, src, regions[i], i)
				if bar != nil {
					bar.Add(1)
				}
			}
		}()
	}

	for i := range regions {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	if bar != nil {
		bar.Finish()
		fmt.Fprintln(os.Stderr)
	}

	return results
}

func saveSprite(cfg config.Config, src *image.NRGBA, reg segment.Region, idx int) Result {
	sprite := segment.Extract(src, reg, cfg.Padding)
	name := fmt.Sprintf("%s_%d.%s", cfg.NamePrefix, idx, cfg.Format)

	res := Result{
		Index:      idx,
		File:       name,
		Width:      sprite.Bounds().Dx(),
		Height:     sprite.Bounds().Dy(),
		PixelCount: reg.Size(),
		Bounds:     reg.Bounds,
	}

	if err := imageio.Save(sprite, filepath.Join(cfg.OutputDir, name), cfg.Format); err != nil {
		res.Err = err
	}
	return res
}

func logf(cfg config.Config, format string, args ...any) {
	if !cfg.Quiet {
		fmt.Printf(format, args...)
	}
}
