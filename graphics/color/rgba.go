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

import "math"

// This file contains helper functions for converting between colour spaces.

// whitePointD50 is the PCS illuminant of ICC profiles, in XYZ coordinates.
var whitePointD50 = [3]float64{0.9642, 1.0, 0.8249}

// labToSRGB converts CIE 1976 L*a*b* (D50) to sRGB.
func labToSRGB(L, a, b float64) (r, g, bl float64) {
	fy := (L + 16) / 116
	fx := fy + a/500
	fz := fy - b/200

	X := whitePointD50[0] * labFInv(fx)
	Y := whitePointD50[1] * labFInv(fy)
	Z := whitePointD50[2] * labFInv(fz)
	return xyzToSRGB(X, Y, Z)
}

// labFInv is the inverse of the CIE L*a*b* companding function.
func labFInv(t float64) float64 {
	const delta = 6.0 / 29.0
	if t > delta {
		return t * t * t
	}
	return 3 * delta * delta * (t - 4.0/29.0)
}

// xyzToSRGB converts CIE XYZ (D50) to sRGB.
func xyzToSRGB(X, Y, Z float64) (r, g, b float64) {
	// Bradford chromatic adaptation D50 to D65
	X2 := 0.9555766*X - 0.0230393*Y + 0.0631636*Z
	Y2 := -0.0282895*X + 1.0099416*Y + 0.0210077*Z
	Z2 := 0.0122982*X - 0.0204830*Y + 1.3299098*Z

	// XYZ (D65) to linear sRGB
	rLin := 3.2404542*X2 - 1.5371385*Y2 - 0.4985314*Z2
	gLin := -0.9692660*X2 + 1.8760108*Y2 + 0.0415560*Z2
	bLin := 0.0556434*X2 - 0.2040259*Y2 + 1.0572252*Z2

	r = srgbGamma(rLin)
	g = srgbGamma(gLin)
	b = srgbGamma(bLin)
	return clamp01(r), clamp01(g), clamp01(b)
}

func srgbGamma(v float64) float64 {
	if v <= 0.0031308 {
		return 12.92 * v
	}
	return 1.055*math.Pow(v, 1/2.4) - 0.055
}

// clamp01 restricts v to the range [0, 1].  NaN is mapped to 0.
func clamp01(v float64) float64 {
	return clamp(v, 0, 1)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo || math.IsNaN(v) {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// toUint32 converts a float64 in [0,1] to uint32 in [0,0xffff].
func toUint32(v float64) uint32 {
	return uint32(clamp01(v)*0xffff + 0.5)
}
