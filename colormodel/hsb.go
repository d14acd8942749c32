package colormodel

import (
	"math"
)

// HSBModel is the conventional hue, saturation, brightness model where
// brightness is the largest component and saturation is the chroma relative
// to it.
type HSBModel struct{}

var hsbTitles = [3]string{"Hue", "Saturation", "Brightness"}

func (HSBModel) Title() string              { return "HSB" }
func (HSBModel) ItemTitle(index int) string { return item_title(&hsbTitles, index) }

func (HSBModel) RGBToHSV(r, g, b int) (h, s, v float64) {
	mx, mn := max3(r, g, b), min3(r, g, b)
	v = float64(mx) / 255
	if mx != 0 {
		s = float64(mx-mn) / float64(mx)
	}
	if s != 0 {
		h = hue_sector(r, g, b, mx, mn) / 6
	}
	return
}

func (HSBModel) HSVToRGB(h, s, v float64) (r, g, b int) {
	if s == 0 {
		r = clamp255(v * 255)
		return r, r, r
	}
	h6 := wrap_hue(h) * 6
	sector := math.Floor(h6)
	f := h6 - sector
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))
	var rf, gf, bf float64
	switch int(sector) {
	case 0:
		rf, gf, bf = v, t, p
	case 1:
		rf, gf, bf = q, v, p
	case 2:
		rf, gf, bf = p, v, t
	case 3:
		rf, gf, bf = p, q, v
	case 4:
		rf, gf, bf = t, p, v
	default:
		rf, gf, bf = v, p, q
	}
	return clamp255(rf * 255), clamp255(gf * 255), clamp255(bf * 255)
}
