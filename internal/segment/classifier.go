package segment

// Classifier decides whether a single pixel belongs to the foreground.
// A pixel is background when it is nearly transparent or nearly white;
// everything else counts as part of a shape.
type Classifier struct {
	AlphaMin uint8 // alpha strictly below this is background
	WhiteMin uint8 // r, g and b all strictly above this is background
}

// DefaultClassifier is tuned for dark silhouettes on a white or
// transparent sheet.
var DefaultClassifier = Classifier{AlphaMin: 50, WhiteMin: 200}

// Foreground reports whether an RGBA pixel is part of a shape.
// The transparency rule wins over the near-white rule.
func (c Classifier) Foreground(r, g, b, a uint8) bool {
	if a < c.AlphaMin {
		return false
	}
	if r > c.WhiteMin && g > c.WhiteMin && b > c.WhiteMin {
		return false
	}
	return true
}
