// Package colormodel provides the color spaces used for hue, saturation and
// brightness adjustment of 8-bit RGB colors.
//
// A ColorModel converts between RGB components in [0, 255] and three
// normalised axes in [0, 1]. The first axis (hue) is cyclic, values outside
// [0, 1) are taken modulo 1.
package colormodel

import (
	"errors"
	"fmt"
	"math"

	"github.com/kovidgoyal/colorfilter/types"
)

var _ = fmt.Print

var ErrUnknownModel = errors.New("unknown color model")

type ColorModel interface {
	Title() string
	// ItemTitle returns the label of axis index (0, 1 or 2) or the empty
	// string for any other index.
	ItemTitle(index int) string
	RGBToHSV(r, g, b int) (h, s, v float64)
	HSVToRGB(h, s, v float64) (r, g, b int)
}

var (
	HSB ColorModel = HSBModel{}
	HSY ColorModel = HSYModel{}
)

var _ ColorModel = HSBModel{}
var _ ColorModel = HSYModel{}

// ByType returns the model for t.
func ByType(t types.ColorModelType) (ColorModel, error) {
	switch t {
	case types.HSB:
		return HSB, nil
	case types.HSY:
		return HSY, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownModel, t)
}

func item_title(titles *[3]string, index int) string {
	if index < 0 || index >= len(titles) {
		return ""
	}
	return titles[index]
}

// clamp255 rounds half up and clamps to [0, 255]
func clamp255(x float64) int {
	return int(max(0, min(math.Floor(x+0.5), 255)))
}

func clamp01(x float64) float64 {
	return max(0, min(x, 1))
}

func max3(a, b, c int) int { return max(a, max(b, c)) }
func min3(a, b, c int) int { return min(a, min(b, c)) }

// hue_sector returns the hue in [0, 6) for the given components, with mx
// and mn their maximum and minimum. mx must be greater than mn.
func hue_sector(r, g, b, mx, mn int) float64 {
	d := float64(mx - mn)
	var h float64
	switch mx {
	case r:
		h = float64(g-b) / d
	case g:
		h = 2 + float64(b-r)/d
	default:
		h = 4 + float64(r-g)/d
	}
	if h < 0 {
		h += 6
	}
	return h
}

func wrap_hue(h float64) float64 {
	h -= math.Floor(h)
	if h >= 1 {
		// -tiny - floor(-tiny) rounds to 1
		h = 0
	}
	return h
}
