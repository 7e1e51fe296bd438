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

package transform

import (
	"math"
	"testing"

	"seehuhn.de/go/geom/vec"

	"github.com/Symple44/go-dstv/profile"
)

var testDims = map[profile.Family]profile.Dimensions{
	profile.IBeam:     {Height: 200, Width: 100, WebThickness: 5.6, FlangeThickness: 8.5},
	profile.UChannel:  {Height: 120, Width: 55, WebThickness: 7, FlangeThickness: 9},
	profile.LAngle:    {Height: 60, Width: 60, WebThickness: 6},
	profile.RectTube:  {Height: 100, Width: 50, WebThickness: 4, FlangeThickness: 4},
	profile.RoundTube: {Height: 100, Width: 100, WebThickness: 6.3},
	profile.Plate:     {Width: 200, WebThickness: 10},
	profile.Tee:       {Height: 100, Width: 100, WebThickness: 5.7, FlangeThickness: 5.7},
	profile.Other:     {Height: 150, Width: 80},
}

// ToLocal must invert ToGlobal for every face of every family.
func TestRoundTrip(t *testing.T) {
	const eps = 1e-6
	for fam, dims := range testDims {
		for _, face := range fam.Faces() {
			locals := []vec.Vec2{
				{X: 0, Y: 0},
				{X: 1500, Y: 50},
				{X: 12000, Y: fam.FaceDepth(face, dims)},
				{X: 3.25, Y: 17.375},
			}
			if face == profile.Radial {
				// 360 normalizes to 0, so the full face depth
				// does not round-trip on the radial face
				locals[2] = vec.Vec2{X: 12000, Y: 180}
				locals = append(locals, vec.Vec2{X: 750, Y: 359.5})
			}
			for _, p := range locals {
				g := ToGlobal(fam, face, dims, p)
				q := ToLocal(fam, face, dims, g)
				if math.Abs(q.X-p.X) > eps || math.Abs(q.Y-p.Y) > eps {
					t.Errorf("%s/%s: (%g, %g) -> %+v -> (%g, %g)",
						fam, face, p.X, p.Y, g, q.X, q.Y)
				}
			}
		}
	}
}

// A hole at (1500, 50) on the top flange of an IPE 200 sits on the
// profile axis in width, at half the section height, 1500mm along.
func TestIPE200TopHole(t *testing.T) {
	dims := testDims[profile.IBeam]
	g := ToGlobal(profile.IBeam, profile.Top, dims, vec.Vec2{X: 1500, Y: 50})
	want := Vec3{X: 0, Y: 100, Z: 1500}
	if g != want {
		t.Errorf("got %+v, want %+v", g, want)
	}
}

func TestRoundTubeRadial(t *testing.T) {
	dims := testDims[profile.RoundTube]
	g := ToGlobal(profile.RoundTube, profile.Radial, dims, vec.Vec2{X: 750, Y: 90})
	if math.Abs(g.X) > 0.1 || math.Abs(g.Y-50) > 0.1 || g.Z != 750 {
		t.Errorf("got %+v, want (0, 50, 750)", g)
	}

	// angles normalize into [0, 360)
	p := ToLocal(profile.RoundTube, profile.Radial, dims, Vec3{X: 50, Y: -1e-9, Z: 0})
	if p.Y < 0 || p.Y >= 360 {
		t.Errorf("angle %g out of [0, 360)", p.Y)
	}
}

func TestWebFaces(t *testing.T) {
	dims := testDims[profile.IBeam]
	g := ToGlobal(profile.IBeam, profile.Front, dims, vec.Vec2{X: 100, Y: 100})
	want := Vec3{X: 2.8, Y: 0, Z: 100}
	if math.Abs(g.X-want.X) > 1e-9 || g.Y != want.Y || g.Z != want.Z {
		t.Errorf("front: got %+v, want %+v", g, want)
	}
	g = ToGlobal(profile.IBeam, profile.Back, dims, vec.Vec2{X: 100, Y: 100})
	if math.Abs(g.X+2.8) > 1e-9 {
		t.Errorf("back: got X=%g, want -2.8", g.X)
	}

	// U-channel: back is the open side
	du := testDims[profile.UChannel]
	g = ToGlobal(profile.UChannel, profile.Back, du, vec.Vec2{X: 0, Y: 60})
	if g.X != -du.WebThickness/2 {
		t.Errorf("channel back: got X=%g, want %g", g.X, -du.WebThickness/2)
	}
}

// Unknown families pass the transversal coordinate through unchanged.
func TestFallback(t *testing.T) {
	g := ToGlobal(profile.Other, profile.Top, profile.Dimensions{}, vec.Vec2{X: 10, Y: 20})
	if g.X != 0 || g.Y != 20 || g.Z != 10 {
		t.Errorf("got %+v", g)
	}
}
