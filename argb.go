package colorfilter

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

var _ = fmt.Print

// ARGB is an in-memory image backed by a packed ARGB pixel buffer with
// non-premultiplied alpha. Its At method returns color.NRGBA values.
type ARGB struct {
	// Pix holds the image's pixels as packed a<<24 | r<<16 | g<<8 | b
	// values. The pixel at (x, y) is Pix[(y-Rect.Min.Y)*Stride + (x-Rect.Min.X)].
	Pix []uint32
	// Stride is the Pix stride (in pixels) between vertically adjacent pixels.
	Stride int
	// Rect is the image's bounds.
	Rect image.Rectangle
}

var _ draw.Image = (*ARGB)(nil)

func (p *ARGB) ColorModel() color.Model { return color.NRGBAModel }

func (p *ARGB) Bounds() image.Rectangle { return p.Rect }

func (p *ARGB) At(x, y int) color.Color {
	return p.NRGBAAt(x, y)
}

func (p *ARGB) NRGBAAt(x, y int) color.NRGBA {
	a, r, g, b := Unpack(p.ARGBAt(x, y))
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// ARGBAt returns the packed pixel at (x, y) or zero (transparent black)
// outside the image bounds.
func (p *ARGB) ARGBAt(x, y int) uint32 {
	if !(image.Point{x, y}.In(p.Rect)) {
		return 0
	}
	return p.Pix[p.PixOffset(x, y)]
}

// PixOffset returns the index of the element of Pix that corresponds to
// the pixel at (x, y).
func (p *ARGB) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x - p.Rect.Min.X)
}

func (p *ARGB) Set(x, y int, c color.Color) {
	if !(image.Point{x, y}.In(p.Rect)) {
		return
	}
	c1 := color.NRGBAModel.Convert(c).(color.NRGBA)
	p.Pix[p.PixOffset(x, y)] = Pack(c1.A, c1.R, c1.G, c1.B)
}

func (p *ARGB) SetNRGBA(x, y int, c color.NRGBA) {
	if !(image.Point{x, y}.In(p.Rect)) {
		return
	}
	p.Pix[p.PixOffset(x, y)] = Pack(c.A, c.R, c.G, c.B)
}

func (p *ARGB) SetARGB(x, y int, c uint32) {
	if !(image.Point{x, y}.In(p.Rect)) {
		return
	}
	p.Pix[p.PixOffset(x, y)] = c
}

// SubImage returns an image representing the portion of the image p visible
// through r. The returned value shares pixels with the original image.
func (p *ARGB) SubImage(r image.Rectangle) image.Image {
	r = r.Intersect(p.Rect)
	// If r1 and r2 are Rectangles, r1.Intersect(r2) is not guaranteed to be inside
	// either r1 or r2 if the intersection is empty. Without explicitly checking for
	// this, the Pix[i:] expression below can panic.
	if r.Empty() {
		return &ARGB{}
	}
	i := p.PixOffset(r.Min.X, r.Min.Y)
	return &ARGB{
		Pix:    p.Pix[i:],
		Stride: p.Stride,
		Rect:   r,
	}
}

// Opaque scans the entire image and reports whether it is fully opaque.
func (p *ARGB) Opaque() bool {
	w := p.Rect.Dx()
	for y := range p.Rect.Dy() {
		for _, px := range p.Pix[y*p.Stride : y*p.Stride+w] {
			if px>>24 != 0xff {
				return false
			}
		}
	}
	return true
}

// ApplyFilter filters the pixels of p in place.
func (p *ARGB) ApplyFilter(f Filter, opts ...ApplyOption) error {
	cfg := applyConfig{}
	for _, o := range opts {
		o(&cfg)
	}
	return run(f, p.Pix, p.Pix, p.Rect.Dx(), p.Rect.Dy(), p.Stride, p.Stride, cfg)
}

// ToNRGBA returns a copy of p as an *image.NRGBA, suitable for the standard
// library encoders.
func (p *ARGB) ToNRGBA() *image.NRGBA {
	ans := image.NewNRGBA(p.Rect)
	w := p.Rect.Dx()
	for y := range p.Rect.Dy() {
		drow := ans.Pix[y*ans.Stride:]
		for _, px := range p.Pix[y*p.Stride : y*p.Stride+w] {
			s := drow[0:4:4] // Small cap improves performance, see https://golang.org/issue/27857
			s[3], s[0], s[1], s[2] = Unpack(px)
			drow = drow[4:]
		}
	}
	return ans
}

func NewARGB(r image.Rectangle) *ARGB {
	return &ARGB{
		Pix:    make([]uint32, r.Dx()*r.Dy()),
		Stride: r.Dx(),
		Rect:   r,
	}
}

// NewARGBWithPixels wraps an existing contiguous pixel buffer without copying it.
func NewARGBWithPixels(p []uint32, left, top, width, height int) (*ARGB, error) {
	if err := check_dimensions(len(p), width, height); err != nil {
		return nil, err
	}
	return &ARGB{
		Pix:    p,
		Stride: width,
		Rect:   image.Rectangle{image.Point{left, top}, image.Point{left + width, top + height}},
	}, nil
}

// ARGBFromImage returns a copy of img as a contiguous ARGB image with the
// same bounds.
func ARGBFromImage(img image.Image) *ARGB {
	b := img.Bounds()
	ans := NewARGB(b)
	switch src := img.(type) {
	case *ARGB:
		w := b.Dx()
		for y := range b.Dy() {
			copy(ans.Pix[y*ans.Stride:y*ans.Stride+w], src.Pix[y*src.Stride:y*src.Stride+w])
		}
		return ans
	case *image.NRGBA:
		pack_nrgba_rows(ans, src)
		return ans
	}
	n := image.NewNRGBA(b)
	draw.Copy(n, b.Min, img, b, draw.Src, nil)
	pack_nrgba_rows(ans, n)
	return ans
}

func pack_nrgba_rows(dst *ARGB, src *image.NRGBA) {
	w := dst.Rect.Dx()
	for y := range dst.Rect.Dy() {
		row := src.Pix[y*src.Stride:]
		drow := dst.Pix[y*dst.Stride : y*dst.Stride+w]
		for x := range drow {
			s := row[0:4:4]
			drow[x] = Pack(s[3], s[0], s[1], s[2])
			row = row[4:]
		}
	}
}
