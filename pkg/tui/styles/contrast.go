package styles

import (
	"math"
	"strconv"
	"strings"
)

// bestForegroundHex picks the candidate with the highest WCAG contrast
// ratio against bgHex. Candidates that fail to parse are skipped; the first
// candidate wins ties and malformed backgrounds.
func bestForegroundHex(bgHex string, candidates ...string) string {
	if len(candidates) == 0 {
		return ""
	}
	best := candidates[0]
	bestRatio := -1.0

	bgLum, ok := relativeLuminanceHex(bgHex)
	if !ok {
		return best
	}

	for _, cand := range candidates {
		candLum, ok := relativeLuminanceHex(cand)
		if !ok {
			continue
		}
		if ratio := contrastRatio(candLum, bgLum); ratio > bestRatio {
			bestRatio = ratio
			best = cand
		}
	}

	return best
}

// contrastRatio computes the WCAG 2.x contrast ratio between two relative
// luminances.
func contrastRatio(a, b float64) float64 {
	if b > a {
		a, b = b, a
	}
	return (a + 0.05) / (b + 0.05)
}

// relativeLuminanceHex computes the WCAG 2.x relative luminance of an sRGB
// hex color like "#1A1B26" or "#fff".
func relativeLuminanceHex(hex string) (float64, bool) {
	h, ok := strings.CutPrefix(hex, "#")
	if !ok {
		return 0, false
	}
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return 0, false
	}

	var lin [3]float64
	for i := range lin {
		c, err := strconv.ParseUint(h[2*i:2*i+2], 16, 8)
		if err != nil {
			return 0, false
		}
		lin[i] = srgbToLinear(float64(c) / 255.0)
	}

	return 0.2126*lin[0] + 0.7152*lin[1] + 0.0722*lin[2], true
}

func srgbToLinear(c float64) float64 {
	if c <= 0.03928 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}
