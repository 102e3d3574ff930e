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
	"fmt"
)

// ProfileError indicates that an ICC profile cannot be used.
//
// The resolver recovers from this error by falling back to a device color
// space.  The error is only returned to callers (wrapped in a
// [ResolutionError]) if no fallback is possible.
type ProfileError struct {
	Err error
}

func (err *ProfileError) Error() string {
	return "unusable ICC profile: " + err.Err.Error()
}

func (err *ProfileError) Unwrap() error {
	return err.Err
}

// ResolutionError indicates that neither the ICC profile nor the fallback
// device color space could be used.
type ResolutionError struct {
	// N is the number of components declared in the profile stream.
	N   int
	Err error
}

func (err *ResolutionError) Error() string {
	msg := fmt.Sprintf("ICCBased: cannot resolve color space with N=%d", err.N)
	if err.Err != nil {
		msg += ": " + err.Err.Error()
	}
	return msg
}

func (err *ResolutionError) Unwrap() error {
	return err.Err
}

// ComponentCountError indicates that a color has more components than its
// color space.
type ComponentCountError struct {
	Got, Want int
}

func (err *ComponentCountError) Error() string {
	return fmt.Sprintf("ICCBased: expected at most %d color components, got %d",
		err.Want, err.Got)
}

// ErrNotImplemented is returned by operations which are not supported for
// ICC-based color spaces.
var ErrNotImplemented = errors.New("ICCBased: not implemented")
