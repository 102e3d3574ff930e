// seehuhn.de/go/pdficc - ICC-based color spaces for PDF files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Pdf-icc shows how an ICC profile is interpreted when it is used in an
// ICCBased color space in a PDF file.
//
// Usage:
//
//	pdf-icc [options] profile.icc [color ...]
//
// Each color is given as a comma-separated list of component values, for
// example "0.2,0.5,1".  If the profile name is "-", the profile is read
// from standard input.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"image"
	stdcolor "image/color"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/image/tiff"
	"golang.org/x/term"

	pdf "seehuhn.de/go/pdficc"
	"seehuhn.de/go/pdficc/graphics/color"
)

type options struct {
	n         int
	alternate string
	swatch    string
	verbose   bool
	ansi      bool
}

func main() {
	opt := &options{}
	flag.IntVar(&opt.n, "n", 0, "number of color components (default: from profile)")
	flag.StringVar(&opt.alternate, "alternate", "", "alternate color space, e.g. DeviceRGB")
	flag.StringVar(&opt.swatch, "swatch", "", "write a swatch image (.png or .tif)")
	flag.BoolVar(&opt.verbose, "v", false, "log informational messages")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Printf("Usage: %s [options] profile.icc [color ...]\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}
	opt.ansi = term.IsTerminal(int(os.Stdout.Fd()))

	level := slog.LevelWarn
	if opt.verbose {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	data, err := readProfile(flag.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading profile: %v\n", err)
		os.Exit(1)
	}

	res := &color.Resolver{Logger: logger}
	err = run(os.Stdout, res, data, flag.Args()[1:], opt)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func readProfile(fname string) ([]byte, error) {
	if fname == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(fname)
}

// run resolves the profile and prints the conversions of the given colors.
func run(w io.Writer, res *color.Resolver, data []byte, args []string, opt *options) error {
	n := opt.n
	if n == 0 && opt.alternate == "" {
		e, err := color.DefaultCMM.FromProfile(data)
		if err != nil {
			return fmt.Errorf("cannot determine number of components, use -n: %w", err)
		}
		n = e.Channels()
	}

	dict := pdf.Dict{}
	if n != 0 {
		dict["N"] = pdf.Integer(n)
	}
	if opt.alternate != "" {
		dict["Alternate"] = pdf.Name(opt.alternate)
	}
	stm := &pdf.Stream{Dict: dict, R: bytes.NewReader(data)}

	p, err := res.ReadProfile(nil, stm)
	if err != nil {
		return err
	}
	space, err := res.NewSpace(p)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "engine: %s\n", engineName(space.Engine()))
	if space.IsFallback() {
		fmt.Fprintln(w, "the profile cannot be used, using a device color space")
	}
	fmt.Fprintf(w, "channels: %d\n", space.Channels())

	colors := []color.Color{space.Default()}
	labels := []string{"default"}
	for _, arg := range args {
		c, err := parseColor(space, arg)
		if err != nil {
			return err
		}
		colors = append(colors, c)
		labels = append(labels, arg)
	}

	var swatch []stdcolor.RGBA64
	for i, c := range colors {
		rgb, err := space.ToRGBA64(c)
		if err != nil {
			fmt.Fprintf(w, "%s: %v\n", labels[i], err)
			continue
		}
		r, g, b, _ := c.RGB()
		fmt.Fprintf(w, "%s: %v -> %.4f %.4f %.4f", labels[i], c.Values, r, g, b)
		if opt.ansi {
			fmt.Fprintf(w, " \x1b[48;2;%d;%d;%dm    \x1b[0m",
				rgb.R>>8, rgb.G>>8, rgb.B>>8)
		}
		fmt.Fprintln(w)
		swatch = append(swatch, rgb)
	}

	if opt.swatch != "" {
		err = writeSwatch(opt.swatch, swatch)
		if err != nil {
			return err
		}
	}
	return nil
}

func parseColor(space *color.SpaceICCBased, arg string) (color.Color, error) {
	var components pdf.Array
	for _, field := range strings.Split(arg, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		x, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return color.Color{}, fmt.Errorf("invalid color %q: %w", arg, err)
		}
		components = append(components, pdf.Number(x))
	}
	return space.New(nil, components)
}

func engineName(e color.Engine) string {
	if s, ok := e.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", e)
}

const swatchSize = 64

func swatchImage(colors []stdcolor.RGBA64) *image.RGBA64 {
	img := image.NewRGBA64(image.Rect(0, 0, swatchSize*len(colors), swatchSize))
	for i, c := range colors {
		for y := 0; y < swatchSize; y++ {
			for x := i * swatchSize; x < (i+1)*swatchSize; x++ {
				img.SetRGBA64(x, y, c)
			}
		}
	}
	return img
}

func writeSwatch(fname string, colors []stdcolor.RGBA64) error {
	if len(colors) == 0 {
		return errors.New("no colors for the swatch")
	}
	img := swatchImage(colors)

	out, err := os.Create(fname)
	if err != nil {
		return err
	}

	switch strings.ToLower(filepath.Ext(fname)) {
	case ".tif", ".tiff":
		err = tiff.Encode(out, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		err = png.Encode(out, img)
	}
	if err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
