package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/kettek/apng"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/kovidgoyal/colorfilter"
	"github.com/kovidgoyal/colorfilter/colorconv"
	"github.com/kovidgoyal/colorfilter/types"
)

var _ = fmt.Print

type options struct {
	model, conv, background, bg string
	gray, hue, sat, bri         float64
	contrast, gamma             float64
	workers                     int
	verbose                     bool
}

func parse_color(spec string) (*color.NRGBA, error) {
	spec = strings.TrimPrefix(spec, "#")
	if len(spec) != 6 {
		return nil, fmt.Errorf("invalid color, expected RRGGBB: %q", spec)
	}
	v, err := strconv.ParseUint(spec, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid color %q: %w", spec, err)
	}
	return &color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}

func build_filter(o *options) (colorfilter.Filter, error) {
	p := colorfilter.NewColorConvertParameter()
	m, err := types.ParseColorModelType(o.model)
	if err != nil {
		return nil, err
	}
	p.SetColorModel(m)
	c, err := colorconv.Parse(o.conv)
	if err != nil {
		return nil, err
	}
	p.SetColorConv(c)
	p.SetGrayLevel(o.gray)
	p.SetHue(o.hue)
	p.SetSaturation(o.sat)
	p.SetBrightness(o.bri)
	p.SetContrast(o.contrast)
	p.SetGammas(o.gamma)
	var filters []colorfilter.Filter
	if !p.IsIdentity() {
		f, err := colorfilter.NewColorConvertFilterFromParameter(p)
		if err != nil {
			return nil, err
		}
		filters = append(filters, f)
	}
	if o.background != "" {
		mode, err := types.ParseBackgroundMode(o.background)
		if err != nil {
			return nil, err
		}
		bg, err := parse_color(o.bg)
		if err != nil {
			return nil, err
		}
		f, err := colorfilter.NewBackgroundColorFilter(mode, bg)
		if err != nil {
			return nil, err
		}
		filters = append(filters, f)
	}
	if len(filters) == 0 {
		return nil, fmt.Errorf("no filter selected, nothing to do")
	}
	return colorfilter.Chain(filters...), nil
}

func decode(path string) (frames apng.APNG, err error) {
	f, err := os.Open(path)
	if err != nil {
		return
	}
	defer f.Close()
	if types.FormatFromPath(path) == types.PNG {
		return apng.DecodeAll(f)
	}
	img, _, err := image.Decode(f)
	if err != nil {
		return
	}
	frames.Frames = []apng.Frame{{Image: img}}
	return
}

// Animations can only be written as APNG, unknown extensions get PNG.
func check_output_format(format types.Format, a apng.APNG) error {
	if len(a.Frames) > 1 && format != types.PNG && format != types.UNKNOWN {
		return fmt.Errorf("cannot save an animation with %d frames as %s, use a .png or .apng output file", len(a.Frames), format)
	}
	return nil
}

func encode(w io.Writer, format types.Format, a apng.APNG) error {
	if err := check_output_format(format, a); err != nil {
		return err
	}
	if len(a.Frames) > 1 {
		return apng.Encode(w, a)
	}
	img := a.Frames[0].Image
	switch format {
	case types.BMP:
		return bmp.Encode(w, img)
	case types.TIFF:
		return tiff.Encode(w, img, nil)
	case types.JPEG:
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 95})
	}
	return png.Encode(w, img)
}

func run(o *options, args []string) (err error) {
	if o.verbose {
		colorfilter.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	filter, err := build_filter(o)
	if err != nil {
		return err
	}
	a, err := decode(args[0])
	if err != nil {
		return err
	}
	if len(a.Frames) == 0 {
		return fmt.Errorf("no images found in: %s", args[0])
	}
	for i, f := range a.Frames {
		img, err := colorfilter.FilterImage(filter, f.Image, colorfilter.Workers(o.workers))
		if err != nil {
			return fmt.Errorf("failed to filter frame %d: %w", i, err)
		}
		a.Frames[i].Image = img.ToNRGBA()
	}
	ext := ".png"
	if len(a.Frames) > 1 {
		ext = ".apng"
	}
	output_file := args[0] + ext
	if len(args) == 2 {
		output_file = args[1]
	}
	format := types.FormatFromPath(output_file)
	if err = check_output_format(format, a); err != nil {
		return err
	}
	out, err := os.OpenFile(output_file, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o666)
	if err != nil {
		return
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()
	if err = encode(out, format, a); err == nil {
		fmt.Println("Image saved to:", output_file)
	}
	return
}

func main() {
	var o options
	flag.StringVar(&o.model, "model", "hsb", "color model for hue/saturation/brightness adjustment: hsb or hsy")
	flag.StringVar(&o.conv, "conv", "none", "channel replacement: none, blue, violet, red, yellow, green, cyan, black, white")
	flag.Float64Var(&o.gray, "gray", 1, "gray level, 1 leaves colors unchanged and 0 is fully desaturated")
	flag.Float64Var(&o.hue, "hue", 0, "hue delta in turns")
	flag.Float64Var(&o.sat, "sat", 0, "saturation delta")
	flag.Float64Var(&o.bri, "bri", 0, "brightness delta")
	flag.Float64Var(&o.contrast, "contrast", 0, "contrast, 0 leaves colors unchanged")
	flag.Float64Var(&o.gamma, "gamma", 1, "gamma of the color channels")
	flag.StringVar(&o.background, "background", "", "background mode: alpha-blend, opaque-fill, grayscale-preview, alpha-visualize")
	flag.StringVar(&o.bg, "bg", "FFFFFF", "background color as RRGGBB")
	flag.IntVar(&o.workers, "workers", 0, "number of worker goroutines, 0 for one per CPU")
	flag.BoolVar(&o.verbose, "v", false, "log debug information to stderr")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: go run ./cmd/demo [flags] input-file [output-file]")
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() == 0 || flag.NArg() > 2 {
		flag.Usage()
		os.Exit(1)
	}
	if err := run(&o, flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
