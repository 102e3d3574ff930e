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

// Normalize adjusts a list of color values to the number of components
// of e.
//
// If values has the correct length, it is returned unchanged.  If values is
// too short, a new slice is returned where the missing trailing components
// are set to the minimum value of the corresponding channel (or 0, if e does
// not implement [ChannelRanger]).  If values is too long, a
// [*ComponentCountError] is returned.
func Normalize(values []float64, e Engine) ([]float64, error) {
	n := e.Channels()
	if len(values) == n {
		return values, nil
	} else if len(values) > n {
		return nil, &ComponentCountError{Got: len(values), Want: n}
	}

	res := make([]float64, n)
	copy(res, values)
	ranger, _ := e.(ChannelRanger)
	for i := len(values); i < n; i++ {
		if ranger != nil {
			res[i], _ = ranger.ChannelRange(i)
		}
	}
	return res, nil
}

// defaultValues returns the initial color for an engine.
//
// All components are 0, unless 0 falls outside the valid range for a
// channel, in which case the nearest valid value is used.
func defaultValues(e Engine) []float64 {
	n := e.Channels()
	res := make([]float64, n)
	for i := range n {
		lo, hi := channelRange(e, i)
		res[i] = clamp(0, lo, hi)
	}
	return res
}
