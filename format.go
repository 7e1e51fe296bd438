// github.com/Symple44/go-dstv - a library for reading and writing DSTV NC files
// Copyright (C) 2026  Symple44
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

package dstv

import "fmt"

// formatDimension renders a numeric field in the fixed DSTV layout:
// twelve characters, right aligned, exactly two fraction digits.
// Values too wide for twelve characters keep all their digits.
func formatDimension(x float64) string {
	return fmt.Sprintf("%12.2f", x)
}

// textOrDash substitutes the DSTV placeholder "-" for empty text
// fields, so that they survive the whitespace-tolerant re-import.
func textOrDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
