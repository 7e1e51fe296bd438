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

// Dimensions holds the nominal cross-section dimensions of a profile, in
// millimetres.  Not every field is meaningful for every family: a plate
// uses Width and WebThickness (the plate thickness), an L-angle uses
// Height, Width and WebThickness (the leg thickness), and a round tube
// stores its outside diameter in both Height and Width.  A zero value
// means "not specified by the source".
type Dimensions struct {
	Height          float64
	Width           float64
	WebThickness    float64
	FlangeThickness float64
	Radius float64 // root fillet radius, informational only
}

// Generic fallback values, used when neither the file header nor the
// dimension lookup provides a field.  These are deliberately family
// independent round numbers, never the dimensions of a specific
// catalogue profile.
const (
	defaultHeight    = 200.0
	defaultWidth     = 100.0
	defaultThickness = 10.0
)

// fillDefaults replaces zero fields with generic fallback values.
func (d Dimensions) fillDefaults(fam Family) Dimensions {
	if d.Height == 0 {
		d.Height = defaultHeight
		if fam == RoundTube {
			d.Height = defaultWidth // diameter
		}
	}
	if d.Width == 0 {
		d.Width = defaultWidth
		if fam == RoundTube {
			d.Width = d.Height
		}
	}
	if d.WebThickness == 0 {
		d.WebThickness = defaultThickness
	}
	if d.FlangeThickness == 0 {
		d.FlangeThickness = defaultThickness
	}
	return d
}

// FaceDepth returns the extent of the given face in the transversal
// direction, i.e. the valid range of a feature's local y coordinate on
// that face.  For the Radial face of a round tube the transversal
// coordinate is an angle and the depth is 360 degrees.  The depth is 0
// if the family does not expose the face.
func (fam Family) FaceDepth(f Face, d Dimensions) float64 {
	if !fam.HasFace(f) {
		return 0
	}
	switch fam {
	case IBeam, UChannel, Tee:
		switch f {
		case Top, Bottom:
			return d.Width
		case Front, Back:
			return d.Height
		}
	case LAngle:
		switch f {
		case Left:
			return d.Height
		case Right:
			return d.Width
		}
	case RectTube:
		switch f {
		case Top, Bottom:
			return d.Width
		case Left, Right:
			return d.Height
		}
	case RoundTube:
		return 360
	case Plate:
		return d.Width
	default:
		// Permissive fallback for unclassified profiles.
		switch f {
		case Top, Bottom:
			return d.Width
		default:
			return d.Height
		}
	}
	return 0
}
