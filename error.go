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
	"errors"
	"strings"
)

// MalformedFileError indicates that a PDF file could not be parsed.
type MalformedFileError struct {
	Err error
	Loc []string
}

func (err *MalformedFileError) Error() string {
	parts := make([]string, 0, len(err.Loc)+2)
	for i := len(err.Loc) - 1; i >= 0; i-- {
		parts = append(parts, err.Loc[i])
	}
	if err.Err != nil {
		parts = append(parts, err.Err.Error())
	} else {
		parts = append(parts, "malformed PDF object")
	}
	return strings.Join(parts, ": ")
}

func (err *MalformedFileError) Unwrap() error {
	return err.Err
}

// IsMalformed reports whether err indicates a malformed PDF file.
func IsMalformed(err error) bool {
	var e *MalformedFileError
	return errors.As(err, &e)
}

// Error is a simple error type for PDF-related errors.
type Error string

func (err Error) Error() string {
	return string(err)
}

// Wrap adds location information to an error.  If err is a
// [MalformedFileError], the location is added to the location stack.
// Otherwise, err is returned unchanged.
func Wrap(err error, loc string) error {
	if err == nil {
		return nil
	}

	var e *MalformedFileError
	if errors.As(err, &e) {
		res := &MalformedFileError{
			Err: e.Err,
			Loc: make([]string, len(e.Loc), len(e.Loc)+1),
		}
		copy(res.Loc, e.Loc)
		res.Loc = append(res.Loc, loc)
		return res
	}
	return err
}
