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
	"bytes"
	"errors"
	"fmt"

	"seehuhn.de/go/icc"
)

// iccEngine converts colors using the data color space of an ICC profile.
//
// The profile is decoded and checked, but tag data is not interpreted:
// colors are converted by the standard formulas for the profile's data color
// space.
type iccEngine struct {
	space  icc.ColorSpace
	ranges []float64
}

var errMissingProfile = errors.New("missing profile data")

func newICCEngine(data []byte) (*iccEngine, error) {
	if len(data) == 0 {
		return nil, errMissingProfile
	}

	// icc.Decode modifies the header while verifying the profile ID.
	p, err := icc.Decode(bytes.Clone(data))
	if err != nil {
		return nil, err
	}

	var ranges []float64
	// TODO(voss): revisit this once
	// https://github.com/pdf-association/pdf-issues/issues/31 is resolved.
	switch p.ColorSpace {
	case icc.GraySpace:
		ranges = []float64{0, 1}
	case icc.RGBSpace:
		ranges = []float64{0, 1, 0, 1, 0, 1}
	case icc.CMYKSpace:
		ranges = []float64{0, 1, 0, 1, 0, 1, 0, 1}
	case icc.CIELabSpace:
		ranges = []float64{0, 100, -128, 127, -128, 127}
	default:
		return nil, fmt.Errorf("unsupported profile color space %v", p.ColorSpace)
	}
	if n := p.ColorSpace.NumComponents(); 2*n != len(ranges) {
		return nil, fmt.Errorf("invalid number of components %d", n)
	}

	res := &iccEngine{
		space:  p.ColorSpace,
		ranges: ranges,
	}
	return res, nil
}

// Channels implements the [Engine] interface.
func (e *iccEngine) Channels() int {
	return len(e.ranges) / 2
}

// ChannelRange implements the [ChannelRanger] interface.
func (e *iccEngine) ChannelRange(i int) (lo, hi float64) {
	return e.ranges[2*i], e.ranges[2*i+1]
}

// ToRGB implements the [Engine] interface.
func (e *iccEngine) ToRGB(values []float64) (r, g, b float64) {
	switch e.space {
	case icc.GraySpace:
		return DeviceGray.ToRGB(values)
	case icc.CMYKSpace:
		return DeviceCMYK.ToRGB(values)
	case icc.CIELabSpace:
		L := clamp(values[0], e.ranges[0], e.ranges[1])
		a := clamp(values[1], e.ranges[2], e.ranges[3])
		bb := clamp(values[2], e.ranges[4], e.ranges[5])
		return labToSRGB(L, a, bb)
	default:
		return DeviceRGB.ToRGB(values)
	}
}

func (e *iccEngine) String() string {
	return "ICC profile (" + e.space.String() + ")"
}
