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
	"fmt"

	"seehuhn.de/go/geom/vec"

	"github.com/Symple44/go-dstv/profile"
)

// Feature is a machining feature of a profile.  The concrete types are
// *Hole, *Slot, *OuterContour, *InnerContour, *Marking, *SpecialCut,
// *PowderMark, *PunchMark, *Tolerance, *Camber, *SpecialProfile and
// *Bend; no other implementations exist.
//
// Positions are face-local: x runs along the profile axis, y across the
// face (or, on the Radial face of a round tube, as an angle in
// degrees).  Use the transform subpackage to obtain global coordinates.
type Feature interface {
	// Position returns the face the feature sits on and its face-local
	// coordinates.  Features without a position (Tolerance, Camber,
	// SpecialProfile) report a zero position on the first face.
	Position() (profile.Face, vec.Vec2)

	// Extent returns the feature's half-extent along the longitudinal
	// and transversal axes, for bounds checking.  Point-like features
	// return (0, 0).
	Extent() (halfX, halfY float64)

	isFeature()
}

// Hole is a round hole, drilled from the given face.
type Hole struct {
	ID       int
	Face     profile.Face
	X, Y     float64
	Diameter float64
	Depth    float64 // 0 for through holes
	Through  bool
}

func (h *Hole) Position() (profile.Face, vec.Vec2) {
	return h.Face, vec.Vec2{X: h.X, Y: h.Y}
}

func (h *Hole) Extent() (float64, float64) {
	return h.Diameter / 2, h.Diameter / 2
}

func (h *Hole) isFeature() {}

func (h *Hole) String() string {
	return fmt.Sprintf("hole d=%g at (%g, %g) on %s", h.Diameter, h.X, h.Y, h.Face)
}

// Slot is an elongated hole.  Length and Width extend the base diameter
// along the longitudinal and transversal axes.
type Slot struct {
	ID       int
	Face     profile.Face
	X, Y     float64 // center
	Diameter float64
	Length   float64
	Width    float64
	Depth    float64
	Through  bool
}

func (s *Slot) Position() (profile.Face, vec.Vec2) {
	return s.Face, vec.Vec2{X: s.X, Y: s.Y}
}

func (s *Slot) Extent() (float64, float64) {
	return (s.Diameter + s.Length) / 2, (s.Diameter + s.Width) / 2
}

func (s *Slot) isFeature() {}

func (s *Slot) String() string {
	return fmt.Sprintf("slot d=%g+%gx%g at (%g, %g) on %s",
		s.Diameter, s.Length, s.Width, s.X, s.Y, s.Face)
}

// ContourVertex is one vertex of a contour polygon.  A non-zero Radius
// rounds the corner at this vertex.
type ContourVertex struct {
	Face   profile.Face
	X, Y   float64
	Radius float64
}

// OuterContour is the outer cutting contour of the piece (AK block).
type OuterContour struct {
	ID       int
	Vertices []ContourVertex
}

func (c *OuterContour) Position() (profile.Face, vec.Vec2) {
	return contourPosition(c.Vertices)
}

func (c *OuterContour) Extent() (float64, float64) { return 0, 0 }

func (c *OuterContour) isFeature() {}

func (c *OuterContour) String() string {
	return fmt.Sprintf("outer contour, %d vertices", len(c.Vertices))
}

// InnerContour is a cut-out inside the piece (IK block).
type InnerContour struct {
	ID       int
	Vertices []ContourVertex
}

func (c *InnerContour) Position() (profile.Face, vec.Vec2) {
	return contourPosition(c.Vertices)
}

func (c *InnerContour) Extent() (float64, float64) { return 0, 0 }

func (c *InnerContour) isFeature() {}

func (c *InnerContour) String() string {
	return fmt.Sprintf("inner contour, %d vertices", len(c.Vertices))
}

func contourPosition(vv []ContourVertex) (profile.Face, vec.Vec2) {
	if len(vv) == 0 {
		return profile.Top, vec.Vec2{}
	}
	return vv[0].Face, vec.Vec2{X: vv[0].X, Y: vv[0].Y}
}

// Rect reports whether the vertex list describes an axis-aligned
// rectangle and, if so, returns its width (longitudinal) and height
// (transversal).
func Rect(vv []ContourVertex) (w, h float64, ok bool) {
	n := len(vv)
	if n == 5 && vv[0].X == vv[4].X && vv[0].Y == vv[4].Y {
		n = 4
	}
	if n != 4 {
		return 0, 0, false
	}
	minX, maxX := vv[0].X, vv[0].X
	minY, maxY := vv[0].Y, vv[0].Y
	for _, v := range vv[:n] {
		if v.Face != vv[0].Face || v.Radius != 0 {
			return 0, 0, false
		}
		minX, maxX = min(minX, v.X), max(maxX, v.X)
		minY, maxY = min(minY, v.Y), max(maxY, v.Y)
	}
	for _, v := range vv[:n] {
		if (v.X != minX && v.X != maxX) || (v.Y != minY && v.Y != maxY) {
			return 0, 0, false
		}
	}
	return maxX - minX, maxY - minY, true
}

// Circle reports whether the vertex list describes a full circle (two
// coincident vertices with a radius) and, if so, returns center and
// radius.
func Circle(vv []ContourVertex) (center vec.Vec2, r float64, ok bool) {
	if len(vv) == 2 && vv[0].X == vv[1].X && vv[0].Y == vv[1].Y && vv[0].Radius > 0 {
		return vec.Vec2{X: vv[0].X, Y: vv[0].Y}, vv[0].Radius, true
	}
	return vec.Vec2{}, 0, false
}

// Marking is scribed text (SI block).
type Marking struct {
	ID     int
	Face   profile.Face
	X, Y   float64
	Height float64 // text height
	Angle  float64 // rotation in degrees
	Text   string
}

func (m *Marking) Position() (profile.Face, vec.Vec2) {
	return m.Face, vec.Vec2{X: m.X, Y: m.Y}
}

func (m *Marking) Extent() (float64, float64) { return 0, 0 }

func (m *Marking) isFeature() {}

func (m *Marking) String() string {
	return fmt.Sprintf("marking %q at (%g, %g) on %s", m.Text, m.X, m.Y, m.Face)
}

// SpecialCut is a saw or flame cut that cannot be expressed by the
// header cut angles (SC block).
type SpecialCut struct {
	ID     int
	Face   profile.Face
	X, Y   float64
	Width  float64
	Depth  float64
	Angle  float64
}

func (c *SpecialCut) Position() (profile.Face, vec.Vec2) {
	return c.Face, vec.Vec2{X: c.X, Y: c.Y}
}

func (c *SpecialCut) Extent() (float64, float64) {
	return c.Width / 2, c.Depth / 2
}

func (c *SpecialCut) isFeature() {}

// PowderMark is a powder-marked polyline (PU block).
type PowderMark struct {
	ID     int
	Face   profile.Face
	Points []vec.Vec2
}

func (m *PowderMark) Position() (profile.Face, vec.Vec2) {
	if len(m.Points) == 0 {
		return m.Face, vec.Vec2{}
	}
	return m.Face, m.Points[0]
}

func (m *PowderMark) Extent() (float64, float64) { return 0, 0 }

func (m *PowderMark) isFeature() {}

// PunchMark is a single center-punch mark (KO block).
type PunchMark struct {
	ID   int
	Face profile.Face
	X, Y float64
}

func (m *PunchMark) Position() (profile.Face, vec.Vec2) {
	return m.Face, vec.Vec2{X: m.X, Y: m.Y}
}

func (m *PunchMark) Extent() (float64, float64) { return 0, 0 }

func (m *PunchMark) isFeature() {}

// Tolerance holds the permissible length deviation of the piece (TO
// block).  It has no face position.
type Tolerance struct {
	ID    int
	Upper float64
	Lower float64
}

func (t *Tolerance) Position() (profile.Face, vec.Vec2) {
	return profile.Top, vec.Vec2{}
}

func (t *Tolerance) Extent() (float64, float64) { return 0, 0 }

func (t *Tolerance) isFeature() {}

// Camber is the required pre-camber of the piece (UE block).  It has no
// face position.
type Camber struct {
	ID     int
	Height float64 // camber at mid-span
}

func (c *Camber) Position() (profile.Face, vec.Vec2) {
	return profile.Top, vec.Vec2{}
}

func (c *Camber) Extent() (float64, float64) { return 0, 0 }

func (c *Camber) isFeature() {}

// SpecialProfile carries the cross-section polygon of a profile that is
// not covered by the standard topology families (PR block).  The
// polygon lives in the cross-section plane; it has no face position.
type SpecialProfile struct {
	ID     int
	Points []ContourVertex
}

func (p *SpecialProfile) Position() (profile.Face, vec.Vec2) {
	return profile.Top, vec.Vec2{}
}

func (p *SpecialProfile) Extent() (float64, float64) { return 0, 0 }

func (p *SpecialProfile) isFeature() {}

// Bend is a bending line across a face (KA block).
type Bend struct {
	ID     int
	Face   profile.Face
	X      float64 // position of the bend line along the profile axis
	Angle  float64 // bend angle in degrees, negative bends down
	Radius float64 // inner bending radius
}

func (b *Bend) Position() (profile.Face, vec.Vec2) {
	return b.Face, vec.Vec2{X: b.X}
}

func (b *Bend) Extent() (float64, float64) { return 0, 0 }

func (b *Bend) isFeature() {}
