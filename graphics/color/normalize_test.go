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
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/icc"
)

func TestNormalize(t *testing.T) {
	e := &fakeEngine{ranges: []float64{-1, 1, 0.5, 2, 0, 1}}

	cases := []struct {
		in, out []float64
	}{
		{[]float64{0.1, 0.2, 0.3}, []float64{0.1, 0.2, 0.3}},
		{[]float64{0.1, 0.7}, []float64{0.1, 0.7, 0}},
		{[]float64{0.1}, []float64{0.1, 0.5, 0}},
		{nil, []float64{-1, 0.5, 0}},
		{[]float64{}, []float64{-1, 0.5, 0}},
	}
	for _, c := range cases {
		got, err := Normalize(c.in, e)
		if err != nil {
			t.Errorf("%v: %v", c.in, err)
			continue
		}
		if d := cmp.Diff(c.out, got); d != "" {
			t.Errorf("%v: (-want +got):\n%s", c.in, d)
		}
	}
}

func TestNormalizeNoAlias(t *testing.T) {
	in := make([]float64, 1, 3)
	in[0] = 0.5
	out, err := Normalize(in, DeviceRGB)
	if err != nil {
		t.Fatal(err)
	}
	out[1] = 1
	if in[:2][1] != 0 {
		t.Error("Normalize modified the caller's array")
	}
}

func TestNormalizeWithoutRange(t *testing.T) {
	got, err := Normalize([]float64{0.5}, plainEngine{n: 3})
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]float64{0.5, 0, 0}, got); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}

func TestNormalizeTooMany(t *testing.T) {
	_, err := Normalize([]float64{0, 0, 0, 0}, DeviceRGB)
	var countErr *ComponentCountError
	if !errors.As(err, &countErr) {
		t.Fatalf("expected ComponentCountError, got %v", err)
	}
	if countErr.Got != 4 || countErr.Want != 3 {
		t.Errorf("wrong counts: %+v", countErr)
	}
}

func TestDefaultValues(t *testing.T) {
	cases := []struct {
		e    Engine
		want []float64
	}{
		{DeviceCMYK, []float64{0, 0, 0, 0}},
		{&fakeEngine{ranges: []float64{-1, 1, 0.5, 2, -3, -2}}, []float64{0, 0.5, -2}},
		{plainEngine{n: 2}, []float64{0, 0}},
		{&iccEngine{space: icc.CIELabSpace, ranges: []float64{0, 100, -128, 127, -128, 127}}, []float64{0, 0, 0}},
	}
	for i, c := range cases {
		got := defaultValues(c.e)
		if d := cmp.Diff(c.want, got); d != "" {
			t.Errorf("%d: (-want +got):\n%s", i, d)
		}
	}
}
