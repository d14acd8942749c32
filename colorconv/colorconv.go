package colorconv

import (
	"errors"
	"fmt"
	"strings"
)

// This package implements channel replacement: a fixed permutation or
// duplication of the red, green and blue components of a pixel, applied
// before any other color adjustment. It is used to recolor artwork drawn in
// one base hue (blue) into the other hues.
//
// Each variant is a sequence of in-place assignments on the same three slot
// array, so later assignments see the results of earlier ones. On input
// [R, G, B] the variants produce:
//
//	NONE    [R, G, B]
//	BLUE    [R, R, B]
//	VIOLET  [B, R, B]
//	RED     [B, R, R]
//	YELLOW  [B, B, B]
//	GREEN   [R, B, R]
//	CYAN    [R, B, B]
//	BLACK   [R, R, R]
//	WHITE   [B, B, B]

var ErrUnknown = errors.New("unknown channel replacement")

type ColorConv int

const (
	NONE ColorConv = iota
	BLUE
	VIOLET
	RED
	YELLOW
	GREEN
	CYAN
	BLACK
	WHITE
)

var names = [...]string{
	NONE:   "NONE",
	BLUE:   "BLUE",
	VIOLET: "VIOLET",
	RED:    "RED",
	YELLOW: "YELLOW",
	GREEN:  "GREEN",
	CYAN:   "CYAN",
	BLACK:  "BLACK",
	WHITE:  "WHITE",
}

// Values returns all variants in declaration order.
func Values() []ColorConv {
	ans := make([]ColorConv, len(names))
	for i := range names {
		ans[i] = ColorConv(i)
	}
	return ans
}

func (c ColorConv) Valid() bool { return c >= NONE && int(c) < len(names) }

func (c ColorConv) String() string {
	if c.Valid() {
		return names[c]
	}
	return fmt.Sprintf("ColorConv(%d)", int(c))
}

// Parse returns the variant with the given (case insensitive) name.
func Parse(name string) (ColorConv, error) {
	for i, n := range names {
		if strings.EqualFold(n, name) {
			return ColorConv(i), nil
		}
	}
	return NONE, fmt.Errorf("%w: %q", ErrUnknown, name)
}

// IsIdentity reports whether Convert leaves every input unchanged.
func (c ColorConv) IsIdentity() bool { return c == NONE || !c.Valid() }

// Convert applies the replacement to rgb in place. Unknown variants leave
// rgb unchanged.
func (c ColorConv) Convert(rgb *[3]int) {
	switch c {
	case BLUE:
		rgb[1] = rgb[0]
	case VIOLET:
		rgb[1] = rgb[0]
		rgb[0] = rgb[2]
	case RED:
		rgb[1] = rgb[0]
		rgb[0] = rgb[2]
		rgb[2] = rgb[1]
	case YELLOW:
		rgb[1] = rgb[2]
		rgb[0] = rgb[1]
		rgb[2] = rgb[0]
	case GREEN:
		rgb[1] = rgb[2]
		rgb[2] = rgb[0]
	case CYAN:
		rgb[1] = rgb[2]
	case BLACK:
		rgb[1] = rgb[0]
		rgb[2] = rgb[0]
	case WHITE:
		rgb[0] = rgb[2]
		rgb[1] = rgb[2]
	}
}

// ConvertRGB is a convenience wrapper around Convert for separate values.
func (c ColorConv) ConvertRGB(r, g, b int) (int, int, int) {
	rgb := [3]int{r, g, b}
	c.Convert(&rgb)
	return rgb[0], rgb[1], rgb[2]
}
