package colormodel

import (
	"math"
)

// Luma weights of the HSY model
const (
	IR = 0.298912
	IG = 0.586611
	IB = 0.114478
)

// HSYModel is a hue, saturation, luma model. Saturation is the chroma
// (max - min) of the color and the third axis is its weighted luma, so
// changing hue or saturation preserves perceived lightness.
type HSYModel struct{}

var hsyTitles = [3]string{"Hue", "Saturation", "Luminance"}

func (HSYModel) Title() string              { return "HSY" }
func (HSYModel) ItemTitle(index int) string { return item_title(&hsyTitles, index) }

func luma(r, g, b float64) float64 {
	return IR*r + IG*g + IB*b
}

func (HSYModel) RGBToHSV(r, g, b int) (h, s, v float64) {
	mx, mn := max3(r, g, b), min3(r, g, b)
	s = float64(mx-mn) / 255
	v = min(1, luma(float64(r)/255, float64(g)/255, float64(b)/255))
	if mx != mn {
		h = hue_sector(r, g, b, mx, mn) / 6
	}
	return
}

// pure_hue returns the fully saturated color with maximum component 1 and
// minimum component 0 for the hue h in [0, 1).
func pure_hue(h float64) (r, g, b float64) {
	h6 := h * 6
	sector := min(math.Floor(h6), 5)
	f := h6 - sector
	switch int(sector) {
	case 0:
		return 1, f, 0
	case 1:
		return 1 - f, 1, 0
	case 2:
		return 0, 1, f
	case 3:
		return 0, 1 - f, 1
	case 4:
		return f, 0, 1
	default:
		return 1, 0, 1 - f
	}
}

// luma_preserving_scale returns the largest x in [0, 1] such that y + d*x
// is in [0, 1] for every deviation d.
func luma_preserving_scale(y float64, devs ...float64) float64 {
	x := 1.0
	for _, d := range devs {
		switch {
		case d > 0:
			x = min(x, (1-y)/d)
		case d < 0:
			x = min(x, y/-d)
		}
	}
	return max(0, x)
}

func (HSYModel) HSVToRGB(h, s, v float64) (r, g, b int) {
	y := clamp01(v)
	if s == 0 {
		r = clamp255(y * 255)
		return r, r, r
	}
	pr, pg, pb := pure_hue(wrap_hue(h))
	pl := luma(pr, pg, pb)
	dr, dg, db := (pr-pl)*s, (pg-pl)*s, (pb-pl)*s
	x := luma_preserving_scale(y, dr, dg, db)
	return clamp255((y + dr*x) * 255), clamp255((y + dg*x) * 255), clamp255((y + db*x) * 255)
}

// Grayscale returns the HSY luma of an 8-bit color as an 8-bit value.
func (HSYModel) Grayscale(r, g, b int) int {
	return int(math.Floor(IR*float64(r)+IG*float64(g)+IB*float64(b))) & 0xff
}
