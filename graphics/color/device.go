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

	pdf "seehuhn.de/go/pdficc"
)

// Color space families used by this package.
const (
	FamilyDeviceGray pdf.Name = "DeviceGray"
	FamilyDeviceRGB  pdf.Name = "DeviceRGB"
	FamilyDeviceCMYK pdf.Name = "DeviceCMYK"
	FamilyICCBased   pdf.Name = "ICCBased"
)

// Engines for the device color spaces.
var (
	DeviceGray Engine = deviceGray{}
	DeviceRGB  Engine = deviceRGB{}
	DeviceCMYK Engine = deviceCMYK{}
)

// DeviceEngine returns the engine for the device color space with n
// components.  Only n=1 (DeviceGray), n=3 (DeviceRGB) and n=4 (DeviceCMYK)
// are supported.
func DeviceEngine(n int) (Engine, error) {
	switch n {
	case 1:
		return DeviceGray, nil
	case 3:
		return DeviceRGB, nil
	case 4:
		return DeviceCMYK, nil
	default:
		return nil, fmt.Errorf("no device color space with %d components", n)
	}
}

// deviceFamily returns the name of the device color space with n
// components, or the empty name if there is none.
func deviceFamily(n int) pdf.Name {
	switch n {
	case 1:
		return FamilyDeviceGray
	case 3:
		return FamilyDeviceRGB
	case 4:
		return FamilyDeviceCMYK
	default:
		return ""
	}
}

// deviceChannels returns the number of components of a device color space,
// or 0 if family is not a device color space.
func deviceChannels(family pdf.Name) int {
	switch family {
	case FamilyDeviceGray, "G":
		return 1
	case FamilyDeviceRGB, "RGB":
		return 3
	case FamilyDeviceCMYK, "CMYK":
		return 4
	default:
		return 0
	}
}

// == DeviceGray =============================================================

type deviceGray struct{}

// Channels returns 1.
// This implements the [Engine] interface.
func (deviceGray) Channels() int {
	return 1
}

// ToRGB implements the [Engine] interface.
func (deviceGray) ToRGB(values []float64) (r, g, b float64) {
	gray := clamp01(values[0])
	return gray, gray, gray
}

// ChannelRange implements the [ChannelRanger] interface.
func (deviceGray) ChannelRange(int) (lo, hi float64) {
	return 0, 1
}

func (deviceGray) String() string {
	return string(FamilyDeviceGray)
}

// == DeviceRGB ==============================================================

type deviceRGB struct{}

// Channels returns 3.
// This implements the [Engine] interface.
func (deviceRGB) Channels() int {
	return 3
}

// ToRGB implements the [Engine] interface.
func (deviceRGB) ToRGB(values []float64) (r, g, b float64) {
	return clamp01(values[0]), clamp01(values[1]), clamp01(values[2])
}

// ChannelRange implements the [ChannelRanger] interface.
func (deviceRGB) ChannelRange(int) (lo, hi float64) {
	return 0, 1
}

func (deviceRGB) String() string {
	return string(FamilyDeviceRGB)
}

// == DeviceCMYK =============================================================

type deviceCMYK struct{}

// Channels returns 4.
// This implements the [Engine] interface.
func (deviceCMYK) Channels() int {
	return 4
}

// ToRGB implements the [Engine] interface.
// No color management is applied: each of R, G, B is the product of the
// complementary ink value and the complementary black value.
func (deviceCMYK) ToRGB(values []float64) (r, g, b float64) {
	k := clamp01(values[3])
	r = (1 - clamp01(values[0])) * (1 - k)
	g = (1 - clamp01(values[1])) * (1 - k)
	b = (1 - clamp01(values[2])) * (1 - k)
	return r, g, b
}

// ChannelRange implements the [ChannelRanger] interface.
func (deviceCMYK) ChannelRange(int) (lo, hi float64) {
	return 0, 1
}

func (deviceCMYK) String() string {
	return string(FamilyDeviceCMYK)
}
