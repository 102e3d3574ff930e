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

package color

import (
	"errors"
	stdcolor "image/color"
	"slices"

	pdf "seehuhn.de/go/pdficc"
	"seehuhn.de/go/pdficc/metadata"
)

// SpaceICCBased represents an ICC-based color space.
type SpaceICCBased struct {
	engine     Engine
	isFallback bool
	alternate  pdf.Name
	metadata   *metadata.Stream
	def        []float64
}

// NewSpace returns a new ICC-based color space for the given profile.
//
// If the profile data cannot be used, the device color space with p.N
// components is used instead, see [Resolver.Resolve].
func (res *Resolver) NewSpace(p *Profile) (*SpaceICCBased, error) {
	e, isFallback, err := res.resolve(p)
	if err != nil {
		return nil, err
	}

	s := &SpaceICCBased{
		engine:     e,
		isFallback: isFallback,
		alternate:  p.Alternate,
		metadata:   p.Metadata,
		def:        defaultValues(e),
	}
	return s, nil
}

// ExtractSpace reads an ICC-based color space from a PDF file.
//
// The argument desc is typically a value in the ColorSpace sub-dictionary of
// a Resources dictionary.  It must be an array of the form
// [/ICCBased stream].
func (res *Resolver) ExtractSpace(r pdf.Getter, desc pdf.Object) (*SpaceICCBased, error) {
	a, err := pdf.GetArray(r, desc)
	if err != nil {
		return nil, err
	}
	if len(a) != 2 {
		return nil, invalidSpace(desc)
	}

	name, err := pdf.GetName(r, a[0])
	if err != nil {
		return nil, err
	}
	if name != FamilyICCBased {
		return nil, invalidSpace(desc)
	}

	stm, err := pdf.GetStream(r, a[1])
	if err != nil {
		return nil, pdf.Wrap(err, "ICC profile stream")
	}

	p, err := res.ReadProfile(r, stm)
	if err != nil {
		return nil, pdf.Wrap(err, "ICC profile stream")
	}

	return res.NewSpace(p)
}

func invalidSpace(desc pdf.Object) error {
	s := pdf.Format(desc)
	if len(s) > 40 {
		s = s[:32] + "..." + s[len(s)-5:]
	}
	return &pdf.MalformedFileError{
		Err: pdf.Error("invalid color space: " + s),
	}
}

// Family returns /ICCBased.
func (s *SpaceICCBased) Family() pdf.Name {
	return FamilyICCBased
}

// Channels returns the number of color components.
func (s *SpaceICCBased) Channels() int {
	return s.engine.Channels()
}

// Engine returns the color engine used by the color space.
func (s *SpaceICCBased) Engine() Engine {
	return s.engine
}

// IsFallback reports whether the color space uses a device color space,
// because the ICC profile could not be used.
func (s *SpaceICCBased) IsFallback() bool {
	return s.isFallback
}

// Alternate returns the family of the alternate color space given in the
// profile stream, or the empty name if no alternate was given.
func (s *SpaceICCBased) Alternate() pdf.Name {
	return s.alternate
}

// Metadata returns the XMP metadata of the ICC profile, or nil if the
// profile has no metadata.
func (s *SpaceICCBased) Metadata() *metadata.Stream {
	return s.metadata
}

// Default returns the initial color of the color space.
//
// All components are 0, unless this falls outside the valid range for a
// component, in which case the nearest valid value is used.
func (s *SpaceICCBased) Default() Color {
	return Color{Space: s, Values: slices.Clone(s.def)}
}

// New returns a color with the given component values.
//
// The components are converted to numbers, but are not otherwise checked;
// in particular, the number of components may differ from the number of
// channels of the color space.
func (s *SpaceICCBased) New(r pdf.Getter, components pdf.Array) (Color, error) {
	values := make([]float64, len(components))
	for i, obj := range components {
		x, err := pdf.GetNumber(r, obj)
		if err != nil {
			return Color{}, err
		}
		values[i] = float64(x)
	}
	return Color{Space: s, Values: values}, nil
}

// ToRGB converts a color to sRGB.
//
// If the color has fewer components than the color space, the missing
// components are set to the channel minimum.  If the color has more
// components than the color space, a [*ComponentCountError] is returned.
// The results are in the range [0, 1].
func (s *SpaceICCBased) ToRGB(c Color) (r, g, b float64, err error) {
	if c.Space != nil && c.Space != s {
		return 0, 0, 0, errForeignColor
	}

	values, err := Normalize(c.Values, s.engine)
	if err != nil {
		return 0, 0, 0, err
	}
	r, g, b = s.engine.ToRGB(values)
	return r, g, b, nil
}

// ToRGBA64 converts a color to an opaque Go color.
// Errors are handled as for [SpaceICCBased.ToRGB].
func (s *SpaceICCBased) ToRGBA64(c Color) (stdcolor.RGBA64, error) {
	r, g, b, err := s.ToRGB(c)
	if err != nil {
		return stdcolor.RGBA64{}, err
	}
	return stdcolor.RGBA64{
		R: uint16(toUint32(r)),
		G: uint16(toUint32(g)),
		B: uint16(toUint32(b)),
		A: 0xffff,
	}, nil
}

// Clone copies the color space into a different PDF file.
//
// This is not supported for ICC-based color spaces and always returns
// [ErrNotImplemented].
func (s *SpaceICCBased) Clone(target pdf.Getter) (*SpaceICCBased, error) {
	return nil, ErrNotImplemented
}

var errForeignColor = errors.New("ICCBased: color belongs to a different color space")

// Color is a color in an ICC-based color space.
//
// The number of values may differ from the number of channels of the color
// space; see [SpaceICCBased.ToRGB] for how this is handled.
type Color struct {
	Space  *SpaceICCBased
	Values []float64
}

// RGB converts the color to sRGB.
// This is a shortcut for c.Space.ToRGB(c).
func (c Color) RGB() (r, g, b float64, err error) {
	if c.Space == nil {
		return 0, 0, 0, errors.New("ICCBased: color without color space")
	}
	return c.Space.ToRGB(c)
}
