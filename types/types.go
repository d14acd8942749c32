package types

import (
	"errors"
	"fmt"
	"strings"
)

var _ = fmt.Print

var ErrUnknownMode = errors.New("unknown mode")

// ColorModelType selects the color model used for hue/saturation/brightness
// adjustments.
type ColorModelType int

const (
	HSB ColorModelType = iota
	HSY
)

var colorModelNames = map[ColorModelType]string{
	HSB: "HSB",
	HSY: "HSY",
}

func (c ColorModelType) String() string {
	if n, ok := colorModelNames[c]; ok {
		return n
	}
	return fmt.Sprintf("ColorModelType(%d)", int(c))
}

func ParseColorModelType(name string) (ColorModelType, error) {
	for k, v := range colorModelNames {
		if strings.EqualFold(v, name) {
			return k, nil
		}
	}
	return HSB, fmt.Errorf("%w: color model %q", ErrUnknownMode, name)
}

// BackgroundMode is the compositing mode of a background color filter.
type BackgroundMode int

const (
	ALPHA_BLEND BackgroundMode = iota
	OPAQUE_FILL
	GRAYSCALE_PREVIEW
	ALPHA_VISUALIZE
)

var backgroundModeNames = map[BackgroundMode]string{
	ALPHA_BLEND:       "alpha-blend",
	OPAQUE_FILL:       "opaque-fill",
	GRAYSCALE_PREVIEW: "grayscale-preview",
	ALPHA_VISUALIZE:   "alpha-visualize",
}

func (m BackgroundMode) String() string {
	if n, ok := backgroundModeNames[m]; ok {
		return n
	}
	return fmt.Sprintf("BackgroundMode(%d)", int(m))
}

// Valid reports whether m is one of the four defined modes.
func (m BackgroundMode) Valid() bool {
	_, ok := backgroundModeNames[m]
	return ok
}

// NeedsBackground reports whether m composites against a background color.
// The two alpha-centric modes ignore it.
func (m BackgroundMode) NeedsBackground() bool {
	return m == ALPHA_BLEND || m == OPAQUE_FILL
}

// BackgroundModeFromFlags maps the grayscale and no-alpha-channel flags onto
// a mode.
func BackgroundModeFromFlags(grayscale, noAlpha bool) BackgroundMode {
	switch {
	case !grayscale && !noAlpha:
		return ALPHA_BLEND
	case !grayscale && noAlpha:
		return OPAQUE_FILL
	case grayscale && !noAlpha:
		return GRAYSCALE_PREVIEW
	default:
		return ALPHA_VISUALIZE
	}
}

func ParseBackgroundMode(name string) (BackgroundMode, error) {
	for k, v := range backgroundModeNames {
		if strings.EqualFold(v, name) {
			return k, nil
		}
	}
	return ALPHA_BLEND, fmt.Errorf("%w: background mode %q", ErrUnknownMode, name)
}

// Format is an image file format.
type Format int

// Image file formats.
const (
	UNKNOWN Format = iota
	JPEG
	PNG
	GIF
	TIFF
	WEBP
	BMP
)

var FormatExts = map[string]Format{
	"jpg":  JPEG,
	"jpeg": JPEG,
	"png":  PNG,
	"apng": PNG,
	"gif":  GIF,
	"tif":  TIFF,
	"tiff": TIFF,
	"webp": WEBP,
	"bmp":  BMP,
}

var formatNames = map[Format]string{
	JPEG: "JPEG",
	PNG:  "PNG",
	GIF:  "GIF",
	TIFF: "TIFF",
	WEBP: "WEBP",
	BMP:  "BMP",
}

func (f Format) String() string {
	return formatNames[f]
}

// FormatFromPath returns the format implied by the extension of path.
func FormatFromPath(path string) Format {
	idx := strings.LastIndexByte(path, '.')
	if idx < 0 {
		return UNKNOWN
	}
	return FormatExts[strings.ToLower(path[idx+1:])]
}
