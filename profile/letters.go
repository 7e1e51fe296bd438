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

package profile

// faceLetters is the single source of truth for the mapping between
// DSTV face code letters and Face values, per family.  Both the reader
// and the writer consult this table (through FaceForLetter and
// FaceLetter), so the mapping cannot drift between import and export.
var faceLetters = map[Family]map[byte]Face{
	IBeam: {
		'v': Top,
		'u': Bottom,
		'o': Front,
		'h': Back,
	},
	UChannel: {
		'v': Top,
		'u': Bottom,
		'o': Front,
		'h': Back,
	},
	Tee: {
		'v': Top,
		'u': Bottom,
		'o': Front,
		'h': Back,
	},
	LAngle: {
		'v': Left,
		'u': Right,
	},
	RectTube: {
		'v': Top,
		'u': Bottom,
		'o': Left,
		'h': Right,
	},
	RoundTube: {
		'v': Radial,
	},
	Plate: {
		'v': Top,
		'u': Bottom,
	},
	Other: {
		'v': Top,
		'u': Bottom,
		'o': Front,
		'h': Back,
	},
}

// letterFaces is the inverse of faceLetters, derived once at startup.
var letterFaces = func() map[Family]map[Face]byte {
	inv := make(map[Family]map[Face]byte)
	for fam, m := range faceLetters {
		inv[fam] = make(map[Face]byte, len(m))
		for c, f := range m {
			inv[fam][f] = c
		}
	}
	return inv
}()

// FaceForLetter returns the face designated by the DSTV face code
// letter c for this family.  The second return value is false if the
// family has no face with that letter.
func (fam Family) FaceForLetter(c byte) (Face, bool) {
	if c >= 'A' && c <= 'Z' {
		c += 'a' - 'A'
	}
	f, ok := faceLetters[fam][c]
	return f, ok
}

// FaceLetter returns the DSTV face code letter for the given face of
// this family.  The second return value is false if the family does
// not expose the face.
func (fam Family) FaceLetter(f Face) (byte, bool) {
	c, ok := letterFaces[fam][f]
	return c, ok
}
