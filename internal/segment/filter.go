package segment

// FilterMinSize returns the regions with strictly more than minPixels
// members, preserving discovery order. Kept regions are not copied or
// mutated.
func FilterMinSize(regions []Region, minPixels int) []Region {
	kept := make([]Region, 0, len(regions))
	for _, r := range regions {
		if r.Size() > minPixels {
			kept = append(kept, r)
		}
	}
	return kept
}
