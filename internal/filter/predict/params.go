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

// Package predict undoes the TIFF and PNG predictors which can be
// applied before /FlateDecode compression.
package predict

import (
	"errors"
	"fmt"
)

const maxColumns = 1 << 20

// Params are the predictor parameters from a /DecodeParms dictionary.
type Params struct {
	// Colors is the number of color components per sample.
	Colors int

	// BitsPerComponent is the number of bits per color component.
	// The PNG predictors allow 1, 2, 4, 8 and 16, the TIFF predictor
	// is only supported for 8 and 16.
	BitsPerComponent int

	// Columns is the number of samples per row.
	Columns int

	// Predictor selects the prediction algorithm:
	//   1: no prediction
	//   2: TIFF horizontal differencing
	//  10-15: PNG predictors, chosen per row by a tag byte
	Predictor int
}

// DefaultParams returns the parameters used when a /DecodeParms entry is
// missing.
func DefaultParams() *Params {
	return &Params{
		Colors:           1,
		BitsPerComponent: 8,
		Columns:          1,
		Predictor:        1,
	}
}

// Validate checks whether the parameters are supported.
func (p *Params) Validate() error {
	switch p.Predictor {
	case 1:
		return nil
	case 2:
		if p.BitsPerComponent != 8 && p.BitsPerComponent != 16 {
			return fmt.Errorf("unsupported BitsPerComponent %d for TIFF predictor",
				p.BitsPerComponent)
		}
		if p.Colors < 1 || p.Colors > 60 {
			return errors.New("Colors must be between 1 and 60 for TIFF predictor")
		}
	case 10, 11, 12, 13, 14, 15:
		switch p.BitsPerComponent {
		case 1, 2, 4, 8, 16:
		default:
			return fmt.Errorf("invalid BitsPerComponent %d", p.BitsPerComponent)
		}
		if p.Colors < 1 || p.Colors > 256 {
			return errors.New("Colors must be between 1 and 256 for PNG predictors")
		}
	default:
		return fmt.Errorf("unsupported predictor %d", p.Predictor)
	}

	maxCols := min(maxColumns, (1<<31-1)/p.bitsPerPixel())
	if p.Columns < 1 || p.Columns > maxCols {
		return errors.New("invalid Columns value")
	}
	return nil
}

func (p *Params) bitsPerPixel() int {
	return p.Colors * p.BitsPerComponent
}

func (p *Params) bytesPerRow() int {
	return (p.bitsPerPixel()*p.Columns + 7) / 8
}

func (p *Params) bytesPerPixel() int {
	return (p.bitsPerPixel() + 7) / 8
}
