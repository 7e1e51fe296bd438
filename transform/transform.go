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

// Package transform converts feature positions between the face-local
// 2D coordinates used by DSTV files and 3D coordinates in the profile's
// model space.
//
// Local coordinates are a pair (x, y): x is the longitudinal position
// along the profile axis, y the transversal position on the face.  On
// the Radial face of a round tube, y is an angle in degrees instead.
//
// Global coordinates follow the convention (X, Y, Z) = (width axis,
// height axis, length axis), with the origin on the profile axis at the
// start of the piece.  The longitudinal position passes through
// unchanged: Z always equals the local x.  X and Y depend on the
// topology family and the face.
package transform

import (
	"math"

	"seehuhn.de/go/geom/vec"

	"github.com/Symple44/go-dstv/profile"
)

// Vec3 is a point in the profile's global model space.
type Vec3 struct {
	X, Y, Z float64
}

// ToGlobal maps the face-local position of a feature into the global
// frame.  Unknown families fall back to an identity mapping of the
// transversal coordinate, so an unclassified profile still yields a
// plottable position.
func ToGlobal(fam profile.Family, face profile.Face, dims profile.Dimensions, local vec.Vec2) Vec3 {
	x, y := crossSection(fam, face, dims, local.Y)
	return Vec3{X: x, Y: y, Z: local.X}
}

// ToLocal is the inverse of ToGlobal: it maps a global position back to
// face-local coordinates for the given face.  For every family and
// face, ToLocal(ToGlobal(p)) == p up to floating-point rounding.
func ToLocal(fam profile.Family, face profile.Face, dims profile.Dimensions, g Vec3) vec.Vec2 {
	return vec.Vec2{X: g.Z, Y: transversal(fam, face, dims, g)}
}

// crossSection computes the (X, Y) cross-section coordinates for a
// transversal position t on the given face.
func crossSection(fam profile.Family, face profile.Face, dims profile.Dimensions, t float64) (x, y float64) {
	switch fam {
	case profile.IBeam, profile.Tee:
		switch face {
		case profile.Top:
			return t - dims.Width/2, dims.Height / 2
		case profile.Bottom:
			return t - dims.Width/2, -dims.Height / 2
		case profile.Front:
			return dims.WebThickness / 2, t - dims.Height/2
		case profile.Back:
			return -dims.WebThickness / 2, t - dims.Height/2
		}
	case profile.UChannel:
		switch face {
		case profile.Top:
			return t - dims.Width/2, dims.Height / 2
		case profile.Bottom:
			return t - dims.Width/2, -dims.Height / 2
		case profile.Front:
			// interior side of the web
			return dims.WebThickness / 2, t - dims.Height/2
		case profile.Back:
			// open side
			return -dims.WebThickness / 2, t - dims.Height/2
		}
	case profile.LAngle:
		switch face {
		case profile.Left: // vertical leg
			return -dims.WebThickness / 2, t - dims.Height/2
		case profile.Right: // horizontal leg
			return t - dims.Width/2, -dims.Height / 2
		}
	case profile.RectTube:
		switch face {
		case profile.Top:
			return t - dims.Width/2, dims.Height / 2
		case profile.Bottom:
			return t - dims.Width/2, -dims.Height / 2
		case profile.Left:
			return -dims.Width / 2, t - dims.Height/2
		case profile.Right:
			return dims.Width / 2, t - dims.Height/2
		}
	case profile.RoundTube:
		if face == profile.Radial {
			r := dims.Height / 2 // Height holds the outside diameter
			phi := t * math.Pi / 180
			return r * math.Cos(phi), r * math.Sin(phi)
		}
	case profile.Plate:
		switch face {
		case profile.Top:
			return t - dims.Width/2, dims.WebThickness / 2
		case profile.Bottom:
			return t - dims.Width/2, -dims.WebThickness / 2
		}
	}
	return 0, t
}

// transversal inverts crossSection for the given face.
func transversal(fam profile.Family, face profile.Face, dims profile.Dimensions, g Vec3) float64 {
	switch fam {
	case profile.IBeam, profile.Tee, profile.UChannel:
		switch face {
		case profile.Top, profile.Bottom:
			return g.X + dims.Width/2
		case profile.Front, profile.Back:
			return g.Y + dims.Height/2
		}
	case profile.LAngle:
		switch face {
		case profile.Left:
			return g.Y + dims.Height/2
		case profile.Right:
			return g.X + dims.Width/2
		}
	case profile.RectTube:
		switch face {
		case profile.Top, profile.Bottom:
			return g.X + dims.Width/2
		case profile.Left, profile.Right:
			return g.Y + dims.Height/2
		}
	case profile.RoundTube:
		if face == profile.Radial {
			phi := math.Atan2(g.Y, g.X) * 180 / math.Pi
			if phi < 0 {
				phi += 360
			}
			return phi
		}
	case profile.Plate:
		switch face {
		case profile.Top, profile.Bottom:
			return g.X + dims.Width/2
		}
	}
	return g.Y
}
