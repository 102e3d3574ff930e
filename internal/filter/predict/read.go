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
	"errors"
	"fmt"
	"io"
)

// errTruncated is returned when the data ends in the middle of a row.
var errTruncated = errors.New("predictor: truncated row")

// reader undoes the effects of a prediction filter on the data read from it.
type reader struct {
	r      io.ReadCloser
	params *Params

	prevRow []byte // previous decoded row, PNG predictors only
	in      []byte // encoded row, including the PNG tag byte
	out     []byte // decoded row
	pend    []byte // unread part of out
	err     error
}

// NewReader returns a reader which undoes the prediction described by p.
// For predictor 1 (no prediction), r is returned unchanged.
//
// If the data ends in the middle of a row, the reader returns an error.
func NewReader(r io.ReadCloser, p *Params) (io.ReadCloser, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if p.Predictor == 1 {
		return r, nil
	}

	rowLen := p.bytesPerRow()
	res := &reader{
		r:      r,
		params: p,
		out:    make([]byte, rowLen),
	}
	if p.Predictor == 2 {
		res.in = make([]byte, rowLen)
	} else {
		res.in = make([]byte, rowLen+1)
		res.prevRow = make([]byte, rowLen)
	}
	return res, nil
}

// Read implements the [io.Reader] interface.
func (r *reader) Read(p []byte) (n int, err error) {
	for n < len(p) {
		if len(r.pend) > 0 {
			k := copy(p[n:], r.pend)
			n += k
			r.pend = r.pend[k:]
			continue
		}
		if r.err != nil {
			break
		}

		_, err := io.ReadFull(r.r, r.in)
		if err == io.ErrUnexpectedEOF {
			r.err = errTruncated
			break
		} else if err != nil {
			r.err = err
			break
		}

		if r.params.Predictor == 2 {
			r.decodeTIFFRow()
		} else if err := r.decodePNGRow(); err != nil {
			r.err = err
			break
		}
		r.pend = r.out
	}

	if n > 0 {
		return n, nil
	}
	return 0, r.err
}

func (r *reader) Close() error {
	return r.r.Close()
}

// decodeTIFFRow undoes horizontal differencing.  Each row starts afresh.
func (r *reader) decodeTIFFRow() {
	copy(r.out, r.in)
	colors := r.params.Colors
	switch r.params.BitsPerComponent {
	case 8:
		for i := colors; i < len(r.out); i++ {
			r.out[i] += r.out[i-colors]
		}
	case 16:
		step := 2 * colors
		for i := step; i+1 < len(r.out); i += 2 {
			prev := uint16(r.out[i-step])<<8 | uint16(r.out[i-step+1])
			diff := uint16(r.out[i])<<8 | uint16(r.out[i+1])
			v := prev + diff
			r.out[i] = byte(v >> 8)
			r.out[i+1] = byte(v)
		}
	}
}

// decodePNGRow undoes the PNG predictor given by the tag byte of the row.
func (r *reader) decodePNGRow() error {
	tag := r.in[0]
	row := r.in[1:]
	bpp := r.params.bytesPerPixel()

	for i, x := range row {
		var left, up, upLeft byte
		if i >= bpp {
			left = r.out[i-bpp]
			upLeft = r.prevRow[i-bpp]
		}
		up = r.prevRow[i]

		var pred byte
		switch tag {
		case 0: // None
		case 1: // Sub
			pred = left
		case 2: // Up
			pred = up
		case 3: // Average
			pred = byte((int(left) + int(up)) / 2)
		case 4: // Paeth
			pred = paeth(left, up, upLeft)
		default:
			return fmt.Errorf("predictor: invalid PNG row tag %d", tag)
		}
		r.out[i] = x + pred
	}

	copy(r.prevRow, r.out)
	return nil
}

func paeth(a, b, c byte) byte {
	// a = left, b = above, c = upper left
	p := int(a) + int(b) - int(c)
	pa := abs(p - int(a))
	pb := abs(p - int(b))
	pc := abs(p - int(c))

	if pa <= pb && pa <= pc {
		return a
	}
	if pb <= pc {
		return b
	}
	return c
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
