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

import "testing"

func TestFamilyForDesignation(t *testing.T) {
	cases := []struct {
		designation string
		fam         Family
	}{
		{"IPE 200", IBeam},
		{"ipe 80", IBeam},
		{"HEA 300", IBeam},
		{"HEB 200", IBeam},
		{"UPN 120", UChannel},
		{"UPE 160", UChannel},
		{"L 60x60x6", LAngle},
		{"LNP 100x10", LAngle},
		{"RHS 100x50x4", RectTube},
		{"SHS 80x80x5", RectTube},
		{"CHS 114.3x6.3", RoundTube},
		{"ROR 88.9x4", RoundTube},
		{"FL 200x10", Plate},
		{"BL 15", Plate},
		{"T 100", Tee},
		{"TPS 80", Tee},
		{"XYZ 1", Other},
		{"", Other},
	}
	for _, test := range cases {
		if got := FamilyForDesignation(test.designation); got != test.fam {
			t.Errorf("%q: got %s, want %s", test.designation, got, test.fam)
		}
	}
}

func TestFamilyForCode(t *testing.T) {
	cases := []struct {
		letter      string
		designation string
		fam         Family
	}{
		{"I", "IPE 200", IBeam},
		{"I", "", IBeam},
		{"U", "UPN 120", UChannel},
		{"L", "L 60x60x6", LAngle},
		{"M", "RHS 100x50x4", RectTube},
		{"M", "CHS 114.3x6.3", RoundTube}, // letter M is ambiguous
		{"M", "", RectTube},
		{"RO", "ROR 88.9x4", RoundTube},
		{"B", "FL 200x10", Plate},
		{"T", "T 100", Tee},
		{"I", "UPN 120", UChannel}, // designation wins on conflict
		{"", "IPE 200", IBeam},
		{"", "", Other},
	}
	for _, test := range cases {
		got := FamilyForCode(test.letter, test.designation)
		if got != test.fam {
			t.Errorf("letter %q designation %q: got %s, want %s",
				test.letter, test.designation, got, test.fam)
		}
	}
}

// Export and import must agree on face letters, so the letter table has
// to round-trip for every face of every family.
func TestFaceLetterRoundTrip(t *testing.T) {
	for _, fam := range Families() {
		for _, face := range fam.Faces() {
			c, ok := fam.FaceLetter(face)
			if !ok {
				t.Errorf("%s: no letter for face %s", fam, face)
				continue
			}
			back, ok := fam.FaceForLetter(c)
			if !ok || back != face {
				t.Errorf("%s: letter %q maps to %s, want %s",
					fam, c, back, face)
			}
		}
	}
}

func TestFaceForLetterCase(t *testing.T) {
	f, ok := IBeam.FaceForLetter('V')
	if !ok || f != Top {
		t.Errorf("upper-case letter: got %s, %t", f, ok)
	}
	if _, ok := IBeam.FaceForLetter('x'); ok {
		t.Error("unknown letter accepted")
	}
}

func TestFaceDepth(t *testing.T) {
	dims := Dimensions{Height: 200, Width: 100, WebThickness: 5.6, FlangeThickness: 8.5}
	cases := []struct {
		fam   Family
		face  Face
		depth float64
	}{
		{IBeam, Top, 100},
		{IBeam, Bottom, 100},
		{IBeam, Front, 200},
		{IBeam, Back, 200},
		{UChannel, Top, 100},
		{LAngle, Left, 200},
		{LAngle, Right, 100},
		{RectTube, Top, 100},
		{RectTube, Left, 200},
		{RoundTube, Radial, 360},
		{Plate, Top, 100},
		{IBeam, Radial, 0}, // face not present
		{LAngle, Top, 0},
	}
	for _, test := range cases {
		got := test.fam.FaceDepth(test.face, dims)
		if got != test.depth {
			t.Errorf("%s/%s: got %g, want %g", test.fam, test.face, got, test.depth)
		}
	}
}

type fakeLookup map[string]Dimensions

func (l fakeLookup) Dimensions(designation string) (Dimensions, bool) {
	d, ok := l[designation]
	return d, ok
}

func TestResolve(t *testing.T) {
	lookup := fakeLookup{
		"IPE 200": {Height: 200, Width: 100, WebThickness: 5.6, FlangeThickness: 8.5, Radius: 12},
	}

	// header value wins over the lookup
	d := Resolve(IBeam, "IPE 200", Dimensions{Height: 210}, lookup)
	if d.Height != 210 {
		t.Errorf("header height overridden: got %g", d.Height)
	}
	if d.Width != 100 || d.WebThickness != 5.6 {
		t.Errorf("lookup not applied: %+v", d)
	}

	// lookup wins over generic defaults
	d = Resolve(IBeam, "IPE 200", Dimensions{}, lookup)
	if d.FlangeThickness != 8.5 {
		t.Errorf("lookup flange thickness: got %g", d.FlangeThickness)
	}

	// no lookup entry: generic defaults only
	d = Resolve(IBeam, "IPE 999", Dimensions{}, lookup)
	if d.Height != 200 || d.Width != 100 || d.WebThickness != 10 || d.FlangeThickness != 10 {
		t.Errorf("generic defaults: %+v", d)
	}

	// nil lookup is allowed
	d = Resolve(Plate, "FL 200x10", Dimensions{Width: 200}, nil)
	if d.Width != 200 || d.WebThickness != 10 {
		t.Errorf("nil lookup: %+v", d)
	}
}
