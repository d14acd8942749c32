/*
Package colorfilter provides per-pixel color transformation filters for
layered character artwork: channel replacement, gray level blending, hue,
saturation and brightness adjustment in a pluggable color model, gamma and
contrast correction and alpha aware background compositing.

Filters operate on packed 32-bit ARGB pixel buffers ([]uint32 values of the
form a<<24 | r<<16 | g<<8 | b, row-major, no padding) or on any image.Image
via the ARGB image type. A filter is immutable once constructed, the output
for a pixel depends only on that pixel, so filters are safe for concurrent
use and Apply processes rows in parallel.
*/
package colorfilter

import "fmt"

type FilterVersion struct {
	Major, Minor, Patch uint
}

func (v FilterVersion) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

func (v FilterVersion) Equal(o FilterVersion) bool {
	return v.Major == o.Major && v.Minor == o.Minor && v.Patch == o.Patch
}

func (v FilterVersion) After(o FilterVersion) bool {
	switch {
	case v.Major != o.Major:
		return v.Major > o.Major
	case v.Minor != o.Minor:
		return v.Minor > o.Minor
	}
	return v.Patch > o.Patch
}

func (v FilterVersion) Before(o FilterVersion) bool {
	return !v.Equal(o) && !v.After(o)
}

var Version = FilterVersion{1, 0, 0}
