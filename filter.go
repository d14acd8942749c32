package colorfilter

import (
	"errors"
	"fmt"
	"image"

	"github.com/kovidgoyal/go-parallel"
)

var _ = fmt.Print

var ErrBufferSize = errors.New("pixel buffer size does not match image dimensions")

// Filter transforms a single packed ARGB pixel. Implementations must be
// pure: the result depends only on the input pixel and on state fixed at
// construction, which makes it safe to call from many goroutines at once.
type Filter interface {
	FilterPixel(argb uint32) uint32
}

// PixelFunc adapts an ordinary function to the Filter interface.
type PixelFunc func(argb uint32) uint32

func (f PixelFunc) FilterPixel(argb uint32) uint32 { return f(argb) }

type chain []Filter

func (c chain) FilterPixel(argb uint32) uint32 {
	for _, f := range c {
		argb = f.FilterPixel(argb)
	}
	return argb
}

// Chain returns a filter that applies filters in order. nil entries are
// skipped.
func Chain(filters ...Filter) Filter {
	ans := make(chain, 0, len(filters))
	for _, f := range filters {
		switch x := f.(type) {
		case nil:
		case chain:
			ans = append(ans, x...)
		default:
			ans = append(ans, f)
		}
	}
	if len(ans) == 1 {
		return ans[0]
	}
	return ans
}

type applyConfig struct {
	workers int
}

// ApplyOption sets an optional parameter for the Apply functions.
type ApplyOption func(*applyConfig)

// Workers returns an ApplyOption that sets the number of goroutines rows are
// distributed over. Zero, the default, uses GOMAXPROCS, one processes the
// buffer on the calling goroutine.
func Workers(n int) ApplyOption {
	return func(c *applyConfig) {
		c.workers = max(0, n)
	}
}

func check_dimensions(n, width, height int) error {
	if width < 0 || height < 0 {
		return fmt.Errorf("invalid image dimensions: width=%d height=%d", width, height)
	}
	if n != width*height {
		return fmt.Errorf("%w: width=%d height=%d buffer size=%d", ErrBufferSize, width, height, n)
	}
	return nil
}

// run filters the rows of src into dst. Strides are in pixels. Every pixel
// is read completely before its replacement is written, so src and dst may
// be the same buffer.
func run(f Filter, src, dst []uint32, width, height, src_stride, dst_stride int, cfg applyConfig) error {
	if width == 0 || height == 0 {
		return nil
	}
	rows := func(start, limit int) {
		for y := start; y < limit; y++ {
			s := src[y*src_stride : y*src_stride+width : y*src_stride+width]
			d := dst[y*dst_stride : y*dst_stride+width : y*dst_stride+width]
			for x, p := range s {
				d[x] = f.FilterPixel(p)
			}
		}
	}
	Logger().Debug("applying filter", "filter", fmt.Sprintf("%T", f), "width", width, "height", height, "workers", cfg.workers)
	// go-parallel runs inline for a single worker or row, panics are
	// returned as errors in every case
	return parallel.Run_in_parallel_over_range(cfg.workers, rows, 0, height)
}

// Apply filters src returning a newly allocated buffer of the same size. src
// is not modified.
func Apply(f Filter, src []uint32, width, height int, opts ...ApplyOption) ([]uint32, error) {
	if err := check_dimensions(len(src), width, height); err != nil {
		return nil, err
	}
	return ApplyInto(f, src, make([]uint32, len(src)), width, height, opts...)
}

// ApplyInto filters src into dst and returns dst. If dst is nil a new
// buffer is allocated. dst may be src itself for in-place filtering, but
// must not otherwise overlap it. Nothing is written if the buffer sizes do
// not match the dimensions.
func ApplyInto(f Filter, src, dst []uint32, width, height int, opts ...ApplyOption) ([]uint32, error) {
	if f == nil {
		return nil, fmt.Errorf("no filter specified")
	}
	if err := check_dimensions(len(src), width, height); err != nil {
		return nil, err
	}
	if dst == nil {
		dst = make([]uint32, len(src))
	} else if err := check_dimensions(len(dst), width, height); err != nil {
		return nil, fmt.Errorf("destination: %w", err)
	}
	cfg := applyConfig{}
	for _, o := range opts {
		o(&cfg)
	}
	if err := run(f, src, dst, width, height, width, width, cfg); err != nil {
		return nil, err
	}
	return dst, nil
}

// FilterImage converts img to an ARGB image and filters it in place,
// returning the result. img is not modified.
func FilterImage(f Filter, img image.Image, opts ...ApplyOption) (*ARGB, error) {
	if f == nil {
		return nil, fmt.Errorf("no filter specified")
	}
	ans := ARGBFromImage(img)
	if err := ans.ApplyFilter(f, opts...); err != nil {
		return nil, err
	}
	return ans, nil
}
