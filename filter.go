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

package pdf

import (
	"compress/zlib"
	"fmt"
	"io"

	"seehuhn.de/go/pdficc/internal/filter/asciihex"
	"seehuhn.de/go/pdficc/internal/filter/predict"
)

// ReadAll reads and decodes the data of a PDF stream.
//
// The filters listed in the /Filter entry of the stream dictionary are
// applied in order.  Supported filters are /FlateDecode (with the TIFF and
// PNG predictors) and /ASCIIHexDecode.
func ReadAll(r Getter, stm *Stream) ([]byte, error) {
	if stm == nil || stm.R == nil {
		return nil, nil
	}

	filters, err := getFilters(r, stm.Dict)
	if err != nil {
		return nil, err
	}

	body := stm.R
	for _, fi := range filters {
		body, err = fi.decode(body)
		if err != nil {
			return nil, err
		}
	}
	return io.ReadAll(body)
}

type filterInfo struct {
	name  Name
	parms Dict
}

// getFilters extracts the information contained in the /Filter and
// /DecodeParms entries of a stream dictionary.
func getFilters(r Getter, dict Dict) ([]filterInfo, error) {
	filter, err := Resolve(r, dict["Filter"])
	if err != nil {
		return nil, err
	}
	parms, err := Resolve(r, dict["DecodeParms"])
	if err != nil {
		return nil, err
	}

	var res []filterInfo
	switch f := filter.(type) {
	case nil:
		// pass
	case Name:
		pDict, _ := parms.(Dict)
		res = append(res, filterInfo{name: f, parms: pDict})
	case Array:
		pa, _ := parms.(Array)
		for i, fi := range f {
			name, err := GetName(r, fi)
			if err != nil {
				return nil, Wrap(err, "/Filter")
			}
			var pDict Dict
			if i < len(pa) {
				pDict, err = GetDict(r, pa[i])
				if err != nil {
					return nil, Wrap(err, "/DecodeParms")
				}
			}
			res = append(res, filterInfo{name: name, parms: pDict})
		}
	default:
		return nil, &MalformedFileError{
			Err: fmt.Errorf("invalid /Filter entry %s", Format(filter)),
		}
	}
	return res, nil
}

func (fi filterInfo) decode(r io.Reader) (io.Reader, error) {
	switch fi.name {
	case "FlateDecode", "Fl":
		zr, err := zlib.NewReader(r)
		if err != nil {
			return nil, err
		}
		return predict.NewReader(zr, fi.predictParams())
	case "ASCIIHexDecode", "AHx":
		return asciihex.Decode(r), nil
	default:
		return nil, fmt.Errorf("unsupported filter %q", fi.name)
	}
}

// predictParams extracts the predictor parameters from /DecodeParms.
func (fi filterInfo) predictParams() *predict.Params {
	p := predict.DefaultParams()
	for key, val := range map[Name]*int{
		"Predictor":        &p.Predictor,
		"Colors":           &p.Colors,
		"BitsPerComponent": &p.BitsPerComponent,
		"Columns":          &p.Columns,
	} {
		if x, ok := fi.parms[key].(Integer); ok {
			*val = int(x)
		}
	}
	return p
}
