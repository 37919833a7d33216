package segment

import (
	"image"
	"testing"
)

func regionOfSize(n int) Region {
	pixels := make([]image.Point, n)
	for i := range pixels {
		pixels[i] = image.Pt(i, 0)
	}
	return Region{Pixels: pixels, Bounds: image.Rect(0, 0, n, 1)}
}

func TestFilterMinSizeStrictlyGreater(t *testing.T) {
	tests := []struct {
		name      string
		sizes     []int
		minPixels int
		wantKept  []int
	}{
		{name: "empty input", sizes: nil, minPixels: 500, wantKept: nil},
		{name: "all pass", sizes: []int{600, 700}, minPixels: 500, wantKept: []int{600, 700}},
		{name: "all dropped", sizes: []int{100, 200}, minPixels: 500, wantKept: nil},
		{name: "at threshold is dropped", sizes: []int{900}, minPixels: 900, wantKept: nil},
		{name: "just above threshold", sizes: []int{901}, minPixels: 900, wantKept: []int{901}},
		{name: "900 fails threshold 1000", sizes: []int{900}, minPixels: 1000, wantKept: nil},
		{name: "zero threshold keeps single pixels", sizes: []int{1, 2}, minPixels: 0, wantKept: []int{1, 2}},
		{name: "order preserved", sizes: []int{700, 10, 600, 5, 800}, minPixels: 500, wantKept: []int{700, 600, 800}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			regions := make([]Region, len(tt.sizes))
			for i, s := range tt.sizes {
				regions[i] = regionOfSize(s)
			}

			kept := FilterMinSize(regions, tt.minPixels)
			if len(kept) != len(tt.wantKept) {
				t.Fatalf("kept %d regions, want %d", len(kept), len(tt.wantKept))
			}
			for i, want := range tt.wantKept {
				if kept[i].Size() != want {
					t.Errorf("kept[%d] size = %d, want %d", i, kept[i].Size(), want)
				}
			}
		})
	}
}

func TestFilterMinSizeDoesNotMutate(t *testing.T) {
	regions := []Region{regionOfSize(600), regionOfSize(3), regionOfSize(700)}
	kept := FilterMinSize(regions, 500)

	if len(kept) != 2 {
		t.Fatalf("kept %d regions, want 2", len(kept))
	}
	// Kept regions share backing with the originals — same pixels, same bounds.
	if &kept[0].Pixels[0] != &regions[0].Pixels[0] {
		t.Error("kept[0] does not share pixel storage with input")
	}
	if kept[1].Bounds != regions[2].Bounds {
		t.Errorf("kept[1] bounds = %v, want %v", kept[1].Bounds, regions[2].Bounds)
	}
}
