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
	"math"
	"testing"

	"seehuhn.de/go/icc"
)

// fakeEngine is a deterministic engine for tests.  The RGB value of a
// color is the mean of its components, relative to the channel ranges.
type fakeEngine struct {
	ranges []float64
}

func (e *fakeEngine) Channels() int {
	return len(e.ranges) / 2
}

func (e *fakeEngine) ToRGB(values []float64) (r, g, b float64) {
	if len(values) != e.Channels() {
		panic("wrong number of values")
	}
	var sum float64
	for i, x := range values {
		lo, hi := e.ranges[2*i], e.ranges[2*i+1]
		sum += (clamp(x, lo, hi) - lo) / (hi - lo)
	}
	v := sum / float64(len(values))
	return v, v, v
}

func (e *fakeEngine) ChannelRange(i int) (lo, hi float64) {
	return e.ranges[2*i], e.ranges[2*i+1]
}

// plainEngine does not implement ChannelRanger.
type plainEngine struct {
	n int
}

func (e plainEngine) Channels() int {
	return e.n
}

func (e plainEngine) ToRGB(values []float64) (r, g, b float64) {
	return clamp01(values[0]), 0, 0
}

// fakeCMM maps profile data to engines.  Unknown profiles are rejected.
type fakeCMM struct {
	profiles map[string]Engine
	calls    int
}

var errUnknownProfile = errors.New("unknown profile")

func (c *fakeCMM) FromProfile(data []byte) (Engine, error) {
	c.calls++
	e, ok := c.profiles[string(data)]
	if !ok {
		return nil, errUnknownProfile
	}
	return e, nil
}

func (c *fakeCMM) Device(n int) (Engine, error) {
	return DeviceEngine(n)
}

func TestDeviceEngine(t *testing.T) {
	for _, n := range []int{1, 3, 4} {
		e, err := DeviceEngine(n)
		if err != nil {
			t.Fatal(err)
		}
		if e.Channels() != n {
			t.Errorf("DeviceEngine(%d) has %d channels", n, e.Channels())
		}
		if deviceChannels(deviceFamily(n)) != n {
			t.Errorf("inconsistent family for n=%d", n)
		}
	}
	for _, n := range []int{-1, 0, 2, 5, 32} {
		_, err := DeviceEngine(n)
		if err == nil {
			t.Errorf("DeviceEngine(%d) succeeded", n)
		}
		if deviceFamily(n) != "" {
			t.Errorf("unexpected family for n=%d", n)
		}
	}
}

func TestDeviceToRGB(t *testing.T) {
	cases := []struct {
		e       Engine
		values  []float64
		r, g, b float64
	}{
		{DeviceGray, []float64{0}, 0, 0, 0},
		{DeviceGray, []float64{0.25}, 0.25, 0.25, 0.25},
		{DeviceGray, []float64{2}, 1, 1, 1},
		{DeviceRGB, []float64{0.1, 0.2, 0.3}, 0.1, 0.2, 0.3},
		{DeviceRGB, []float64{-1, math.NaN(), 1.5}, 0, 0, 1},
		{DeviceCMYK, []float64{0, 0, 0, 0}, 1, 1, 1},
		{DeviceCMYK, []float64{0, 0, 0, 1}, 0, 0, 0},
		{DeviceCMYK, []float64{1, 0, 0, 0}, 0, 1, 1},
		{DeviceCMYK, []float64{0.5, 0, 0, 0.5}, 0.25, 0.5, 0.5},
	}
	for i, c := range cases {
		r, g, b := c.e.ToRGB(c.values)
		if !isValues([]float64{r, g, b}, c.r, c.g, c.b) {
			t.Errorf("%d: %s%v -> (%g, %g, %g), expected (%g, %g, %g)",
				i, describe(c.e), c.values, r, g, b, c.r, c.g, c.b)
		}
	}
}

func TestWithRange(t *testing.T) {
	e := withRange(DeviceRGB, []float64{0, 1, -1, 1, 0.5, 2})
	lo, hi := channelRange(e, 1)
	if lo != -1 || hi != 1 {
		t.Errorf("wrong range for channel 1: [%g, %g]", lo, hi)
	}
	if describe(e) != "DeviceRGB [0 1 -1 1 0.5 2]" {
		t.Errorf("unexpected description %q", describe(e))
	}

	// invalid ranges are ignored
	for _, ranges := range [][]float64{
		{0, 1},
		{0, 1, 0, 1, 1, 0},
	} {
		if e := withRange(DeviceRGB, ranges); e != DeviceRGB {
			t.Errorf("range %v was applied", ranges)
		}
	}
}

func TestChannelRangeDefault(t *testing.T) {
	lo, hi := channelRange(plainEngine{n: 2}, 1)
	if lo != 0 || hi != 1 {
		t.Errorf("expected [0, 1], got [%g, %g]", lo, hi)
	}
}

func TestWithRangeCopy(t *testing.T) {
	ranges := []float64{0, 1, 0, 1, 0, 1}
	e := withRange(DeviceRGB, ranges)
	ranges[0] = 0.5
	if lo, _ := channelRange(e, 0); lo != 0 {
		t.Errorf("channel range changed to %g", lo)
	}
}

func TestRangedEngineClamp(t *testing.T) {
	lab := &iccEngine{space: icc.CIELabSpace, ranges: []float64{0, 100, -128, 127, -128, 127}}
	e := withRange(lab, []float64{0, 50, -10, 10, -10, 10})

	cases := []struct {
		in, clamped []float64
	}{
		{[]float64{100, 0, 0}, []float64{50, 0, 0}},
		{[]float64{25, 100, -100}, []float64{25, 10, -10}},
		{[]float64{-5, 5, 5}, []float64{0, 5, 5}},
	}
	for _, c := range cases {
		r1, g1, b1 := e.ToRGB(c.in)
		r2, g2, b2 := lab.ToRGB(c.clamped)
		if r1 != r2 || g1 != g2 || b1 != b2 {
			t.Errorf("%v: got (%g, %g, %g), expected (%g, %g, %g)",
				c.in, r1, g1, b1, r2, g2, b2)
		}
	}
}
