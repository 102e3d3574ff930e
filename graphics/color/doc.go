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

// Package color implements ICC-based PDF color spaces.
//
// An ICCBased color space is given in a PDF file as an array
// [/ICCBased stream], where the stream contains an ICC profile and a
// dictionary with the number of color components (/N) and optional
// /Alternate, /Range and /Metadata entries.  Use [Resolver.ExtractSpace] to
// read such a color space, or [Resolver.NewSpace] to construct one from a
// [Profile].
//
// The color conversion itself is performed by an [Engine], which is obtained
// from a [CMM].  The default CMM decodes profiles using the
// seehuhn.de/go/icc package.  If a profile cannot be used, the resolver
// falls back to one of the device color spaces [DeviceGray], [DeviceRGB], or
// [DeviceCMYK], chosen by the number of components declared in the profile
// stream.  If no such fallback exists, a [*ResolutionError] is returned.
//
// Colors are represented by [Color] values, which may carry fewer or more
// components than the color space requires.  Missing trailing components are
// filled in with the channel minimum during conversion, extra components
// cause a [*ComponentCountError].
//
// Once constructed, a [SpaceICCBased] is immutable and can be used
// concurrently from multiple goroutines.
package color
