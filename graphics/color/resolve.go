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
	"log/slog"
)

// Resolver turns ICC profiles into color engines.
//
// The zero value is ready to use, and a nil *Resolver behaves like the zero
// value.
type Resolver struct {
	// CMM constructs the color engines.  If this is nil, [DefaultCMM] is
	// used.
	CMM CMM

	// Logger receives diagnostics about unusable profiles.  If this is
	// nil, diagnostics are discarded.
	Logger *slog.Logger
}

func (res *Resolver) cmm() CMM {
	if res == nil || res.CMM == nil {
		return DefaultCMM
	}
	return res.CMM
}

func (res *Resolver) logger() *slog.Logger {
	if res == nil || res.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return res.Logger
}

// Resolve returns the color engine for an ICC profile.
//
// If the profile data cannot be used, the engine for the device color space
// with p.N components is returned instead.  If this is not possible either,
// a [*ResolutionError] is returned.
func (res *Resolver) Resolve(p *Profile) (Engine, error) {
	e, _, err := res.resolve(p)
	return e, err
}

func (res *Resolver) resolve(p *Profile) (e Engine, isFallback bool, err error) {
	if p == nil {
		return nil, false, &ResolutionError{Err: errors.New("missing profile")}
	}

	e, err = res.fromProfile(p)
	if err == nil {
		return e, false, nil
	}
	profileErr := &ProfileError{Err: err}

	family := deviceFamily(p.N)
	if family == "" {
		return nil, false, &ResolutionError{N: p.N, Err: profileErr}
	}

	e, err = res.cmm().Device(p.N)
	if err != nil {
		return nil, false, &ResolutionError{N: p.N, Err: errors.Join(profileErr, err)}
	} else if e == nil || e.Channels() != p.N {
		return nil, false, &ResolutionError{
			N:   p.N,
			Err: errors.Join(profileErr, fmt.Errorf("invalid engine for %s", family)),
		}
	}

	res.logger().Warn("unusable ICC profile, using device color space",
		"n", p.N,
		"fallback", family,
		"alternate", p.Alternate,
		"error", profileErr.Err)

	return e, true, nil
}

// fromProfile constructs an engine from the profile data and checks that
// it agrees with the stream dictionary.
func (res *Resolver) fromProfile(p *Profile) (Engine, error) {
	if len(p.Data) == 0 {
		return nil, errMissingProfile
	}

	e, err := res.cmm().FromProfile(p.Data)
	if err != nil {
		return nil, err
	}

	n := e.Channels()
	if n <= 0 {
		return nil, fmt.Errorf("invalid number of components %d", n)
	}
	if p.N != 0 && n != p.N {
		return nil, fmt.Errorf("profile has %d components, expected N=%d", n, p.N)
	}

	if p.Range != nil {
		e = withRange(e, p.Range)
	}
	return e, nil
}
