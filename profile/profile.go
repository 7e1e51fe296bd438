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

// Package profile classifies steel profiles into topology families and
// describes, for each family, the set of faces on which features can be
// placed and the meaning of the nominal cross-section dimensions.
package profile

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Family is the topology family of a profile cross-section.  The family
// determines which faces exist, how face-local coordinates map into the
// global frame, and which DSTV code letter the profile is written with.
type Family int

const (
	Other Family = iota
	IBeam
	UChannel
	LAngle
	RectTube
	RoundTube
	Plate
	Tee
)

func (fam Family) String() string {
	switch fam {
	case IBeam:
		return "I-beam"
	case UChannel:
		return "U-channel"
	case LAngle:
		return "L-angle"
	case RectTube:
		return "rectangular tube"
	case RoundTube:
		return "round tube"
	case Plate:
		return "plate"
	case Tee:
		return "tee"
	default:
		return "other"
	}
}

// Face identifies one surface of a profile cross-section.  The geometric
// meaning of each value depends on the topology family: for an I-beam,
// Top and Bottom are the flanges and Front/Back the two sides of the web;
// for an L-angle, Left is the vertical leg and Right the horizontal leg;
// for a round tube the single Radial face covers the whole shell, with
// the transversal coordinate interpreted as an angle in degrees.
type Face int

const (
	Top Face = iota
	Bottom
	Front
	Back
	Left
	Right
	Radial
)

func (f Face) String() string {
	switch f {
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	case Front:
		return "front"
	case Back:
		return "back"
	case Left:
		return "left"
	case Right:
		return "right"
	case Radial:
		return "radial"
	default:
		return "face<" + string(rune('0'+int(f))) + ">"
	}
}

// Faces returns the faces of the family, in canonical order.  The slice
// must not be modified by the caller.
func (fam Family) Faces() []Face {
	return familyFaces[fam]
}

// HasFace reports whether features can be placed on the given face of
// this family.
func (fam Family) HasFace(f Face) bool {
	for _, g := range familyFaces[fam] {
		if g == f {
			return true
		}
	}
	return false
}

// Families returns all topology families, in a fixed order.
func Families() []Family {
	ff := maps.Keys(familyFaces)
	slices.Sort(ff)
	return ff
}

var familyFaces = map[Family][]Face{
	IBeam:     {Top, Bottom, Front, Back},
	UChannel:  {Top, Bottom, Front, Back},
	LAngle:    {Left, Right},
	RectTube:  {Top, Bottom, Left, Right},
	RoundTube: {Radial},
	Plate:     {Top, Bottom},
	Tee:       {Top, Bottom, Front, Back},
	Other:     {Top, Bottom, Front, Back, Left, Right},
}
