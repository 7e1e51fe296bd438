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

// Package validate checks feature positions against the bounds of the
// face they are placed on.  Validation is advisory: a check never
// modifies the feature, and the caller decides whether a failure leads
// to rejection or merely to a warning.
package validate

import (
	"seehuhn.de/go/geom/vec"

	"github.com/Symple44/go-dstv/profile"
)

// Failure describes a bounds violation.  Field names the local
// coordinate that violated its range.
type Failure struct {
	Field   string
	Message string
}

func (f *Failure) Error() string {
	return f.Message
}

// Check tests the position of a feature on the given face against the
// face bounds.  local is the face-local position, halfX and halfY the
// feature's half-extent along the longitudinal and transversal axes
// (both zero for point-like features such as markings).  On the Radial
// face of a round tube the transversal coordinate is an angle and only
// the longitudinal half-extent is checked.
//
// Check returns nil if the feature fits, otherwise a Failure describing
// the first violated bound.  Checks run in a fixed order: longitudinal
// position, transversal position, then feature extent.
func Check(fam profile.Family, face profile.Face, dims profile.Dimensions, length float64, local vec.Vec2, halfX, halfY float64) *Failure {
	if local.X < 0 || local.X > length {
		return &Failure{Field: "x", Message: "Position X out of bounds"}
	}

	if face == profile.Radial {
		if local.Y < 0 || local.Y >= 360 {
			return &Failure{Field: "y", Message: "Angle out of bounds"}
		}
		if halfX > 0 && (local.X-halfX < 0 || local.X+halfX > length) {
			return &Failure{Field: "size", Message: "Feature exceeds face bounds"}
		}
		return nil
	}

	depth := fam.FaceDepth(face, dims)
	if local.Y < 0 || (depth > 0 && local.Y > depth) {
		return &Failure{Field: "y", Message: "Position Y out of bounds"}
	}

	if halfX > 0 || halfY > 0 {
		if local.X-halfX < 0 || local.X+halfX > length {
			return &Failure{Field: "size", Message: "Feature exceeds face bounds"}
		}
		if local.Y-halfY < 0 || (depth > 0 && local.Y+halfY > depth) {
			return &Failure{Field: "size", Message: "Feature exceeds face bounds"}
		}
	}

	return nil
}
