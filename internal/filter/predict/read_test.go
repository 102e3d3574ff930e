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

package predict

import (
	"bytes"
	"errors"
	"io"
	"testing"
	"testing/iotest"
)

func decode(t *testing.T, p *Params, data []byte) ([]byte, error) {
	t.Helper()
	r, err := NewReader(io.NopCloser(bytes.NewReader(data)), p)
	if err != nil {
		t.Fatal(err)
	}
	return io.ReadAll(r)
}

func TestPNG(t *testing.T) {
	p := &Params{Colors: 1, BitsPerComponent: 8, Columns: 3, Predictor: 12}
	cases := []struct {
		name    string
		in, out []byte
	}{
		{"None", []byte{0, 1, 2, 3}, []byte{1, 2, 3}},
		{"Sub", []byte{1, 1, 1, 1}, []byte{1, 2, 3}},
		{"Up", []byte{2, 1, 2, 3, 2, 1, 1, 1}, []byte{1, 2, 3, 2, 3, 4}},
		{"Average", []byte{0, 2, 4, 6, 3, 0, 0, 0}, []byte{2, 4, 6, 1, 2, 4}},
		{"Paeth", []byte{0, 1, 2, 3, 4, 1, 1, 1}, []byte{1, 2, 3, 2, 3, 4}},
		{"empty", nil, nil},
	}
	for _, c := range cases {
		got, err := decode(t, p, c.in)
		if err != nil {
			t.Errorf("%s: %v", c.name, err)
			continue
		}
		if !bytes.Equal(got, c.out) {
			t.Errorf("%s: got %v, want %v", c.name, got, c.out)
		}
	}
}

func TestPNGSmallReads(t *testing.T) {
	p := &Params{Colors: 1, BitsPerComponent: 8, Columns: 2, Predictor: 15}
	in := io.NopCloser(bytes.NewReader([]byte{2, 1, 2, 2, 1, 1}))
	r, err := NewReader(in, p)
	if err != nil {
		t.Fatal(err)
	}
	got, err := io.ReadAll(iotest.OneByteReader(r))
	if err != nil {
		t.Fatal(err)
	}
	if want := []byte{1, 2, 2, 3}; !bytes.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestTIFF(t *testing.T) {
	p := &Params{Colors: 2, BitsPerComponent: 8, Columns: 3, Predictor: 2}
	got, err := decode(t, p, []byte{10, 20, 1, 2, 1, 2, 5, 5, 0, 0, 255, 0})
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{10, 20, 11, 22, 12, 24, 5, 5, 5, 5, 4, 5}
	if !bytes.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	p = &Params{Colors: 1, BitsPerComponent: 16, Columns: 2, Predictor: 2}
	got, err = decode(t, p, []byte{0x01, 0xff, 0x00, 0x01})
	if err != nil {
		t.Fatal(err)
	}
	if want := []byte{0x01, 0xff, 0x02, 0x00}; !bytes.Equal(got, want) {
		t.Errorf("got %x, want %x", got, want)
	}
}

func TestTruncatedRow(t *testing.T) {
	p := &Params{Colors: 1, BitsPerComponent: 8, Columns: 2, Predictor: 12}
	got, err := decode(t, p, []byte{2, 1, 2, 2, 1})
	if !errors.Is(err, errTruncated) {
		t.Errorf("expected truncation error, got %v", err)
	}
	if want := []byte{1, 2}; !bytes.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	p = &Params{Colors: 1, BitsPerComponent: 8, Columns: 2, Predictor: 2}
	_, err = decode(t, p, []byte{1, 2, 3})
	if !errors.Is(err, errTruncated) {
		t.Errorf("TIFF: expected truncation error, got %v", err)
	}
}

func TestInvalidTag(t *testing.T) {
	p := &Params{Colors: 1, BitsPerComponent: 8, Columns: 1, Predictor: 12}
	_, err := decode(t, p, []byte{5, 1})
	if err == nil {
		t.Error("invalid row tag was accepted")
	}
}

func TestValidate(t *testing.T) {
	valid := []*Params{
		DefaultParams(),
		{Colors: 3, BitsPerComponent: 8, Columns: 100, Predictor: 2},
		{Colors: 1, BitsPerComponent: 1, Columns: 7, Predictor: 10},
		{Colors: 4, BitsPerComponent: 16, Columns: 1, Predictor: 15},
	}
	for _, p := range valid {
		if err := p.Validate(); err != nil {
			t.Errorf("%+v: %v", p, err)
		}
	}

	invalid := []*Params{
		{Colors: 1, BitsPerComponent: 8, Columns: 1, Predictor: 3},
		{Colors: 1, BitsPerComponent: 4, Columns: 1, Predictor: 2},
		{Colors: 0, BitsPerComponent: 8, Columns: 1, Predictor: 12},
		{Colors: 1, BitsPerComponent: 3, Columns: 1, Predictor: 12},
		{Colors: 1, BitsPerComponent: 8, Columns: 0, Predictor: 12},
		{Colors: 1, BitsPerComponent: 8, Columns: maxColumns + 1, Predictor: 12},
	}
	for _, p := range invalid {
		if err := p.Validate(); err == nil {
			t.Errorf("%+v: invalid parameters were accepted", p)
		}
		if _, err := NewReader(io.NopCloser(bytes.NewReader(nil)), p); err == nil {
			t.Errorf("%+v: NewReader accepted invalid parameters", p)
		}
	}
}
