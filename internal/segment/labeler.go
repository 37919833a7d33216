package segment

import "image"

// Label scans img in raster order and returns every 4-connected
// foreground region, classified per c. Each foreground pixel lands in
// exactly one region, and regions appear in the order their first pixel
// is reached by the scan, so the result is deterministic for a given
// image and classifier. onRegion, when non-nil, is called once per
// completed region as it is discovered.
//
// Total cost is O(w*h): each pixel is classified and enqueued at most
// once across the whole scan.
func Label(img *image.NRGBA, c Classifier, onRegion func(Region)) []Region {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return nil
	}

	foreground := func(x, y int) bool {
		i := img.PixOffset(b.Min.X+x, b.Min.Y+y)
		return c.Foreground(img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3])
	}

	// Visited is marked at enqueue time, so no pixel can enter the queue
	// twice. That also means head and tail only move forward and a single
	// w*h backing array serves the whole scan without reallocation.
	visited := make([]bool, w*h)
	queue := make([]int32, w*h)
	head, tail := 0, 0

	dx := [4]int{-1, 1, 0, 0}
	dy := [4]int{0, 0, -1, 1}

	var regions []Region

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			if visited[idx] || !foreground(x, y) {
				continue
			}

			visited[idx] = true
			queue[tail] = int32(idx)
			tail++

			pixels := make([]image.Point, 0, 64)
			minX, maxX := x, x
			minY, maxY := y, y

			for head < tail {
				curr := int(queue[head])
				head++
				cy := curr / w
				cx := curr % w

				pixels = append(pixels, image.Pt(b.Min.X+cx, b.Min.Y+cy))
				if cx < minX {
					minX = cx
				}
				if cx > maxX {
					maxX = cx
				}
				if cy < minY {
					minY = cy
				}
				if cy > maxY {
					maxY = cy
				}

				for d := 0; d < 4; d++ {
					nx := cx + dx[d]
					ny := cy + dy[d]
					if nx < 0 || nx >= w || ny < 0 || ny >= h {
						continue
					}
					ni := ny*w + nx
					if !visited[ni] && foreground(nx, ny) {
						visited[ni] = true
						queue[tail] = int32(ni)
						tail++
					}
				}
			}

			reg := Region{
				Pixels: pixels,
				Bounds: image.Rect(b.Min.X+minX, b.Min.Y+minY, b.Min.X+maxX+1, b.Min.Y+maxY+1),
			}
			if onRegion != nil {
				onRegion(reg)
			}
			regions = append(regions, reg)
		}
	}

	return regions
}
