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
	"seehuhn.de/go/pdficc/metadata"
)

// PDF 2.0 sections: 8.6.5.5

// Profile is the content of an ICC profile stream.
type Profile struct {
	// Data is the decoded ICC profile.  This may be empty, if the stream
	// data could not be read.
	Data []byte

	// N is the number of color components declared in the stream
	// dictionary.
	N int

	// Alternate (optional) is the family of the alternate color space
	// given in the stream dictionary.
	Alternate pdf.Name

	// Range (optional) gives the minimum and maximum value for each
	// color component.
	Range []float64

	// Metadata (optional) is the XMP metadata stream of the profile.
	Metadata *metadata.Stream
}

// ReadProfile reads an ICC profile stream.
//
// Problems with the profile data, the /Range entry and the /Metadata entry
// are logged and otherwise ignored, since the profile data can still be
// replaced by a device color space later.  An error is returned if the
// stream dictionary is malformed, or if a read error occurs while resolving
// the dictionary entries.
func (res *Resolver) ReadProfile(r pdf.Getter, stm *pdf.Stream) (*Profile, error) {
	if stm == nil {
		return nil, &pdf.MalformedFileError{
			Err: pdf.Error("missing ICC profile stream"),
		}
	}
	logger := res.logger()
	dict := stm.Dict

	p := &Profile{}

	alt, err := pdf.Resolve(r, dict["Alternate"])
	if err != nil {
		return nil, pdf.Wrap(err, "/Alternate")
	}
	switch alt := alt.(type) {
	case pdf.Name:
		p.Alternate = alt
	case pdf.Array:
		if len(alt) > 0 {
			p.Alternate, err = pdf.GetName(r, alt[0])
			if err != nil {
				return nil, pdf.Wrap(err, "/Alternate")
			}
		}
	}

	n, err := pdf.GetInteger(r, dict["N"])
	if err != nil {
		return nil, pdf.Wrap(err, "/N")
	}
	p.N = int(n)
	if n == 0 {
		// The /N entry is required, but the alternate color space
		// determines the number of components as well.
		p.N = deviceChannels(p.Alternate)
		if p.N == 0 {
			return nil, &pdf.MalformedFileError{
				Err: pdf.Error("missing /N in ICC profile stream"),
			}
		}
		logger.Warn("missing /N in ICC profile stream",
			"alternate", p.Alternate, "n", p.N)
	}

	if rangeObj := dict["Range"]; rangeObj != nil {
		ranges, err := pdf.GetFloatArray(r, rangeObj)
		if pdf.IsMalformed(err) || (err == nil && !isValidRange(ranges, p.N)) {
			logger.Info("ignoring invalid /Range", "range", pdf.Format(rangeObj))
		} else if err != nil {
			return nil, pdf.Wrap(err, "/Range")
		} else {
			p.Range = ranges
		}
	}

	if ref := dict["Metadata"]; ref != nil {
		meta, err := metadata.Extract(r, ref)
		if pdf.IsMalformed(err) {
			logger.Info("ignoring invalid profile metadata", "error", err)
		} else if err != nil {
			return nil, pdf.Wrap(err, "/Metadata")
		} else {
			p.Metadata = meta
		}
	}

	data, err := pdf.ReadAll(r, stm)
	if err != nil {
		logger.Warn("cannot read ICC profile data", "error", err)
		data = nil
	}
	p.Data = data

	return p, nil
}

// isValidRange checks whether x is a valid /Range array for n components.
func isValidRange(x []float64, n int) bool {
	if len(x) != 2*n {
		return false
	}
	for i := range n {
		if x[2*i] > x[2*i+1] {
			return false
		}
	}
	return true
}

func (p *Profile) String() string {
	return fmt.Sprintf("ICC profile (N=%d, %d bytes)", p.N, len(p.Data))
}
