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

import (
	"seehuhn.de/go/geom/vec"

	"github.com/Symple44/go-dstv/profile"
	"github.com/Symple44/go-dstv/validate"
)

// ProfileRecord describes one piece of a DSTV NC file: the profile it
// is cut from, the piece identification, and the machining features.
type ProfileRecord struct {
	// PieceNumber is the 1-based position of the piece in the file.
	PieceNumber int

	// Comment is the free-text line of the header block.  Writers
	// commonly embed a generation timestamp here, so round-trip
	// comparisons must exclude it.
	Comment string

	OrderID   string
	DrawingID string
	PieceID   string
	Quantity  int
	Grade     string

	Designation string
	Family      profile.Family

	// Length is the piece length in mm.  The remaining cross-section
	// dimensions live in Dims.
	Length float64
	Dims   profile.Dimensions

	Weight  float64 // kg per piece
	Surface float64 // painting surface, m² per piece

	// CutAngles are the web start/end and flange start/end cut angles
	// in degrees, zero for square cuts.
	CutAngles [4]float64

	// Info are the four free-text trailer fields of the header.
	Info [4]string

	Features []Feature
}

// ValidateFeature checks a single feature of the record against the
// bounds of its face.  It returns nil if the feature fits.  Features
// without a face position (Tolerance, Camber, SpecialProfile) always
// pass; contours are checked vertex by vertex.
func (rec *ProfileRecord) ValidateFeature(f Feature) *validate.Failure {
	switch f := f.(type) {
	case *Tolerance, *Camber, *SpecialProfile:
		return nil
	case *OuterContour:
		return rec.validateVertices(f.Vertices)
	case *InnerContour:
		return rec.validateVertices(f.Vertices)
	case *PowderMark:
		for _, p := range f.Points {
			if fail := validate.Check(rec.Family, f.Face, rec.Dims, rec.Length, p, 0, 0); fail != nil {
				return fail
			}
		}
		return nil
	}
	face, local := f.Position()
	hx, hy := f.Extent()
	return validate.Check(rec.Family, face, rec.Dims, rec.Length, local, hx, hy)
}

func (rec *ProfileRecord) validateVertices(vv []ContourVertex) *validate.Failure {
	for _, v := range vv {
		local := vec.Vec2{X: v.X, Y: v.Y}
		if fail := validate.Check(rec.Family, v.Face, rec.Dims, rec.Length, local, 0, 0); fail != nil {
			return fail
		}
	}
	return nil
}

// idGen hands out feature ids, unique within one profile record.  The
// zero value is ready to use.
type idGen struct {
	n int
}

func (g *idGen) next() int {
	g.n++
	return g.n
}
