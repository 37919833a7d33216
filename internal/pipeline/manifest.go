package pipeline

import (
	"encoding/json"
	"os"
)

// ManifestEntry describes one saved sprite in manifest.json.
type ManifestEntry struct {
	Index      int    `json:"index"`
	File       string `json:"file"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	PixelCount int    `json:"pixel_count"`
	SourceBox  [4]int `json:"source_box"` // min x, min y, max x, max y (inclusive)
}

// WriteManifest writes manifest.json describing every successfully saved
// sprite, in output order. Sprites whose save failed are omitted.
func WriteManifest(path string, results []Result) error {
	entries := make([]ManifestEntry, 0, len(results))
	for _, r := range results {
		if r.Err != nil {
			continue
		}
		entries = append(entries, ManifestEntry{
			Index:      r.Index,
			File:       r.File,
			Width:      r.Width,
			Height:     r.Height,
			PixelCount: r.PixelCount,
			SourceBox:  [4]int{r.Bounds.Min.X, r.Bounds.Min.Y, r.Bounds.Max.X - 1, r.Bounds.Max.Y - 1},
		})
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
