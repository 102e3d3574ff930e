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
	"fmt"
	"slices"

	pdf "seehuhn.de/go/pdficc"
)

// Engine converts colors from a color space to RGB.
//
// Engines are immutable once constructed and can be used concurrently.
type Engine interface {
	// Channels returns the number of color components.
	// This is always positive.
	Channels() int

	// ToRGB converts a color to sRGB.  The argument must have exactly
	// Channels() entries.  The results are in the range [0, 1].
	ToRGB(values []float64) (r, g, b float64)
}

// ChannelRanger is implemented by engines which know the valid range of
// their color components.  Engines which don't implement this interface
// are assumed to have a minimum value of 0 for all channels.
type ChannelRanger interface {
	// ChannelRange returns the valid range for the color component i,
	// where 0 <= i < Channels().
	ChannelRange(i int) (lo, hi float64)
}

// A CMM (color management module) constructs color engines.
type CMM interface {
	// FromProfile returns an engine for the given ICC profile data.
	// An error is returned if the profile is malformed or not supported.
	FromProfile(data []byte) (Engine, error)

	// Device returns the engine for the device color space with n
	// components: DeviceGray for n=1, DeviceRGB for n=3, and
	// DeviceCMYK for n=4.
	Device(n int) (Engine, error)
}

// DefaultCMM decodes ICC profiles using the seehuhn.de/go/icc package.
var DefaultCMM CMM = iccCMM{}

type iccCMM struct{}

// FromProfile implements the [CMM] interface.
func (iccCMM) FromProfile(data []byte) (Engine, error) {
	return newICCEngine(data)
}

// Device implements the [CMM] interface.
func (iccCMM) Device(n int) (Engine, error) {
	return DeviceEngine(n)
}

// channelRange returns the range of channel i of e.
func channelRange(e Engine, i int) (lo, hi float64) {
	if r, ok := e.(ChannelRanger); ok {
		return r.ChannelRange(i)
	}
	return 0, 1
}

// describe returns a short description of an engine, for log messages.
func describe(e Engine) string {
	if s, ok := e.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", e)
}

// rangedEngine restricts the channel ranges of an engine to the values
// given in the /Range entry of an ICC profile stream.
// Color values are clamped to these ranges before conversion.
type rangedEngine struct {
	Engine
	ranges []float64
}

// withRange applies a /Range array to e.  If the array is not valid for the
// engine, e is returned unchanged.
func withRange(e Engine, ranges []float64) Engine {
	if !isValidRange(ranges, e.Channels()) {
		return e
	}
	return &rangedEngine{Engine: e, ranges: slices.Clone(ranges)}
}

// ChannelRange implements the [ChannelRanger] interface.
func (e *rangedEngine) ChannelRange(i int) (lo, hi float64) {
	return e.ranges[2*i], e.ranges[2*i+1]
}

// ToRGB implements the [Engine] interface.
func (e *rangedEngine) ToRGB(values []float64) (r, g, b float64) {
	clamped := make([]float64, len(values))
	for i, x := range values {
		clamped[i] = clamp(x, e.ranges[2*i], e.ranges[2*i+1])
	}
	return e.Engine.ToRGB(clamped)
}

func (e *rangedEngine) String() string {
	return describe(e.Engine) + " " + pdf.Format(toPDF(e.ranges))
}
