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

// Package mock provides an in-memory [pdf.Getter] for tests.
package mock

import (
	"bytes"
	"compress/zlib"

	pdf "seehuhn.de/go/pdficc"
)

// Getter is a [pdf.Getter] which serves objects from memory.
// Missing objects resolve to null, as in a PDF file.
type Getter struct {
	objects map[pdf.Reference]pdf.Object
	next    uint32
}

// New returns an empty Getter.
func New() *Getter {
	return &Getter{
		objects: make(map[pdf.Reference]pdf.Object),
		next:    1,
	}
}

// Get implements the [pdf.Getter] interface.
func (g *Getter) Get(ref pdf.Reference) (pdf.Object, error) {
	return g.objects[ref], nil
}

// Put stores obj as a new indirect object and returns its reference.
func (g *Getter) Put(obj pdf.Object) pdf.Reference {
	ref := pdf.NewReference(g.next, 0)
	g.next++
	g.objects[ref] = obj
	return ref
}

// Set stores obj under the given reference.
func (g *Getter) Set(ref pdf.Reference, obj pdf.Object) {
	g.objects[ref] = obj
}

// Stream returns an unfiltered stream with the given dictionary and data.
func Stream(dict pdf.Dict, data []byte) *pdf.Stream {
	if dict == nil {
		dict = pdf.Dict{}
	}
	dict["Length"] = pdf.Integer(len(data))
	return &pdf.Stream{Dict: dict, R: bytes.NewReader(data)}
}

// FlateStream returns a /FlateDecode stream with the given dictionary,
// containing the compressed data.
func FlateStream(dict pdf.Dict, data []byte) *pdf.Stream {
	buf := &bytes.Buffer{}
	zw := zlib.NewWriter(buf)
	zw.Write(data)
	zw.Close()

	if dict == nil {
		dict = pdf.Dict{}
	}
	dict["Filter"] = pdf.Name("FlateDecode")
	return Stream(dict, buf.Bytes())
}
