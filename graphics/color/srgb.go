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
	_ "embed" // for the sRGB ICC profiles
)

// SRGBProfile returns the built-in sRGB profile.
//
// ICC version 4.2.0 profiles can be used since PDF 1.7; for older
// files, v4 should be false to select the ICC version 2.1.0 profile.
func SRGBProfile(v4 bool) *Profile {
	data := sRGBv2
	if v4 {
		data = sRGBv4
	}
	return &Profile{
		Data:      data,
		N:         3,
		Alternate: FamilyDeviceRGB,
	}
}

// The profile data is from https://github.com/saucecontrol/Compact-ICC-Profiles
// and is in the public domain (CC0 1.0).

//go:embed icc/sRGB-v2-micro.icc
var sRGBv2 []byte

//go:embed icc/sRGB-v4.icc
var sRGBv4 []byte
