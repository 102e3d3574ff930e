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

// Package metadata reads XMP metadata streams attached to PDF objects.
package metadata

import (
	"bytes"

	"seehuhn.de/go/xmp"

	pdf "seehuhn.de/go/pdficc"
)

// PDF 2.0 sections: 14.3

// Stream represents an XMP metadata stream.
//
// In this module, metadata streams are found in the /Metadata entry of ICC
// profile streams.
type Stream struct {
	Data *xmp.Packet
}

// Extract reads an XMP metadata stream.
// If ref is null, nil is returned without error.
func Extract(r pdf.Getter, ref pdf.Object) (*Stream, error) {
	stm, err := pdf.GetStream(r, ref)
	if err != nil {
		return nil, err
	}
	if stm == nil {
		return nil, nil
	}

	if tp, _ := stm.Dict["Type"].(pdf.Name); tp != "" && tp != "Metadata" {
		return nil, &pdf.MalformedFileError{
			Err: pdf.Error("unexpected /Type " + string(tp)),
			Loc: []string{"metadata stream"},
		}
	}

	body, err := pdf.ReadAll(r, stm)
	if err != nil {
		if !pdf.IsMalformed(err) {
			err = &pdf.MalformedFileError{Err: err}
		}
		return nil, pdf.Wrap(err, "metadata stream")
	}

	packet, err := xmp.Read(bytes.NewReader(body))
	if err != nil {
		return nil, &pdf.MalformedFileError{
			Err: err,
			Loc: []string{"metadata stream"},
		}
	}

	return &Stream{Data: packet}, nil
}

// Equal reports whether s and other represent the same XMP metadata.
func (s *Stream) Equal(other *Stream) bool {
	if s == nil || other == nil {
		return s == other
	}

	return s.Data.Equal(other.Data)
}
