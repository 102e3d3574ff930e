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

// Package pdf provides the PDF object model used by the ICC-based color
// space code in the subpackages.
//
// The following types implement the native PDF object types used here.
// All of these implement the [Object] interface:
//
//	Array
//	Bool
//	Dict
//	Integer
//	Name
//	Number
//	Real
//	Reference
//	*Stream
//
// Indirect objects are obtained through a [Getter], and stream data is
// decoded with [ReadAll].
package pdf
