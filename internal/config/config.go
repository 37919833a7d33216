package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
)

// Config holds all paths and extraction settings.
type Config struct {
	// Paths
	InputPath string `json:"input_path"`
	OutputDir string `json:"output_dir"`

	// Extraction settings
	MinRegionSize int    `json:"min_region_size"`
	AlphaCutoff   int    `json:"alpha_cutoff"`
	WhiteCutoff   int    `json:"white_cutoff"`
	Format        string `json:"format"`
	NamePrefix    string `json:"name_prefix"`
	Padding       int    `json:"padding"`
	Workers       int    `json:"workers"`
	Quiet         bool   `json:"quiet"`
}

// Default returns the built-in settings, tuned for dark silhouettes on a
// white or transparent sheet.
func Default() Config {
	return Config{
		MinRegionSize: 500,
		AlphaCutoff:   50,
		WhiteCutoff:   200,
		Format:        "png",
		NamePrefix:    "sprite",
		Workers:       runtime.NumCPU(),
	}
}

// Load reads a JSON config file over the defaults, so fields absent from
// the file keep their default values while explicit zeros stick.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
// Numeric fields use -1 for "not set" so an explicit zero still wins
// over the file.
type Flags struct {
	InputPath     string
	OutputDir     string
	MinRegionSize int
	AlphaCutoff   int
	WhiteCutoff   int
	Format        string
	NamePrefix    string
	Padding       int
	Workers       int
	Quiet         bool
}

// Resolve applies flag overrides and fills any remaining gaps with
// defaults.
func (c *Config) Resolve(f Flags) {
	if f.InputPath != "" {
		c.InputPath = f.InputPath
	}
	if f.OutputDir != "" {
		c.OutputDir = f.OutputDir
	}
	if f.MinRegionSize >= 0 {
		c.MinRegionSize = f.MinRegionSize
	}
	if f.AlphaCutoff >= 0 {
		c.AlphaCutoff = f.AlphaCutoff
	}
	if f.WhiteCutoff >= 0 {
		c.WhiteCutoff = f.WhiteCutoff
	}
	if f.Format != "" {
		c.Format = f.Format
	}
	if f.NamePrefix != "" {
		c.NamePrefix = f.NamePrefix
	}
	if f.Padding >= 0 {
		c.Padding = f.Padding
	}
	if f.Workers > 0 {
		c.Workers = f.Workers
	}
	if f.Quiet {
		c.Quiet = true
	}

	if c.Format == "" {
		c.Format = "png"
	}
	if c.NamePrefix == "" {
		c.NamePrefix = "sprite"
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
}

// Validate rejects settings the pipeline cannot run with. A minimum
// region size of zero is legal: it keeps every region, including single
// pixels.
func (c Config) Validate() error {
	if c.InputPath == "" {
		return fmt.Errorf("config: input path is required")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("config: output directory is required")
	}
	if c.MinRegionSize < 0 {
		return fmt.Errorf("config: min region size must not be negative (got %d)", c.MinRegionSize)
	}
	if c.AlphaCutoff < 0 || c.AlphaCutoff > 255 {
		return fmt.Errorf("config: alpha cutoff must be 0-255 (got %d)", c.AlphaCutoff)
	}
	if c.WhiteCutoff < 0 || c.WhiteCutoff > 255 {
		return fmt.Errorf("config: white cutoff must be 0-255 (got %d)", c.WhiteCutoff)
	}
	if c.Padding < 0 {
		return fmt.Errorf("config: padding must not be negative (got %d)", c.Padding)
	}
	switch c.Format {
	case "png", "webp":
	default:
		return fmt.Errorf("config: unknown format %q (want png or webp)", c.Format)
	}
	return nil
}
