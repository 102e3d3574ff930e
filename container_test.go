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

package pdf_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	pdf "seehuhn.de/go/pdficc"
	"seehuhn.de/go/pdficc/internal/debug/mock"
)

func TestResolve(t *testing.T) {
	r := mock.New()
	ref1 := r.Put(pdf.Integer(7))
	ref2 := r.Put(ref1)

	obj, err := pdf.Resolve(r, ref2)
	if err != nil {
		t.Fatal(err)
	}
	if obj != pdf.Integer(7) {
		t.Errorf("got %v, want 7", obj)
	}
}

func TestResolveLoop(t *testing.T) {
	r := mock.New()
	ref := pdf.NewReference(1, 0)
	r.Set(ref, ref)

	_, err := pdf.Resolve(r, ref)
	if !pdf.IsMalformed(err) {
		t.Errorf("expected malformed file error, got %v", err)
	}
}

func TestResolveWithoutGetter(t *testing.T) {
	_, err := pdf.Resolve(nil, pdf.NewReference(3, 0))
	if !pdf.IsMalformed(err) {
		t.Errorf("expected malformed file error, got %v", err)
	}

	obj, err := pdf.Resolve(nil, pdf.Name("DeviceRGB"))
	if err != nil || obj != pdf.Name("DeviceRGB") {
		t.Errorf("direct object changed: %v, %v", obj, err)
	}
}

func TestGetNumber(t *testing.T) {
	r := mock.New()
	ref := r.Put(pdf.Real(0.25))

	for _, test := range []struct {
		in   pdf.Object
		want pdf.Number
	}{
		{pdf.Integer(3), 3},
		{pdf.Real(1.5), 1.5},
		{pdf.Number(-2), -2},
		{ref, 0.25},
	} {
		got, err := pdf.GetNumber(r, test.in)
		if err != nil {
			t.Errorf("%s: %v", pdf.Format(test.in), err)
			continue
		}
		if got != test.want {
			t.Errorf("%s: got %g, want %g", pdf.Format(test.in), got, test.want)
		}
	}

	_, err := pdf.GetNumber(r, pdf.Name("x"))
	if !pdf.IsMalformed(err) {
		t.Errorf("expected malformed file error, got %v", err)
	}
}

func TestGetFloatArray(t *testing.T) {
	r := mock.New()
	ref := r.Put(pdf.Array{pdf.Integer(0), pdf.Real(0.5), pdf.Integer(1)})

	got, err := pdf.GetFloatArray(r, ref)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]float64{0, 0.5, 1}, got); d != "" {
		t.Errorf("unexpected values (-want +got):\n%s", d)
	}

	got, err = pdf.GetFloatArray(r, nil)
	if err != nil || got != nil {
		t.Errorf("null array: got %v, %v", got, err)
	}

	_, err = pdf.GetFloatArray(r, pdf.Array{pdf.Name("a")})
	if !pdf.IsMalformed(err) {
		t.Errorf("expected malformed file error, got %v", err)
	}
}

func TestWrap(t *testing.T) {
	err := pdf.Wrap(&pdf.MalformedFileError{Err: pdf.Error("bad")}, "inner")
	err = pdf.Wrap(err, "outer")
	if got, want := err.Error(), "outer: inner: bad"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	plain := pdf.Error("read error")
	if pdf.Wrap(plain, "loc") != plain {
		t.Error("non-malformed error was modified")
	}
	if pdf.Wrap(nil, "loc") != nil {
		t.Error("nil error was modified")
	}
}
