// inspect prints the region table for an image without writing sprites.
// Useful for tuning the classifier cutoffs and the minimum region size.
package main

import (
	"flag"
	"fmt"
	"os"

	"sprite-extractor/internal/imageio"
	"sprite-extractor/internal/segment"
)

func main() {
	alpha := flag.Int("alpha", 50, "Alpha below this counts as background")
	white := flag.Int("white", 200, "R, G and B all above this count as background")
	minSize := flag.Int("min", 500, "Minimum pixel count used for the keep/drop verdict")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <input-image>\n", os.Args[0])
		os.Exit(2)
	}

	img, err := imageio.Load(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	b := img.Bounds()
	fmt.Printf("%s: %dx%d\n", flag.Arg(0), b.Dx(), b.Dy())

	c := segment.Classifier{AlphaMin: uint8(*alpha), WhiteMin: uint8(*white)}

	// Stream each region as the scan discovers it.
	found, kept := 0, 0
	regions := segment.Label(img, c, func(r segment.Region) {
		verdict := "drop"
		if r.Size() > *minSize {
			verdict = "keep"
			kept++
		}
		bb := r.Bounds
		fmt.Printf("  %4d  %8d px  (%d,%d)-(%d,%d)  %dx%d  %s\n",
			found, r.Size(), bb.Min.X, bb.Min.Y, bb.Max.X-1, bb.Max.Y-1, bb.Dx(), bb.Dy(), verdict)
		found++
	})

	fmt.Printf("Regions: %d found, %d would be kept (min size %d)\n", len(regions), kept, *minSize)
}
