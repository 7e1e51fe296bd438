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
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/vec"

	"github.com/Symple44/go-dstv/profile"
)

func TestFormatDimension(t *testing.T) {
	cases := []struct {
		in  float64
		out string
	}{
		{0, "        0.00"},
		{1500, "     1500.00"},
		{-12.5, "      -12.50"},
		{114.3, "      114.30"},
		{123456789.125, "123456789.12"},
	}
	for _, test := range cases {
		out := formatDimension(test.in)
		if out != test.out {
			t.Errorf("%g: got %q, want %q", test.in, out, test.out)
		}
	}
}

// testModel builds a two-piece model with every feature type, laid out
// in the canonical block and face order and with sequential feature
// ids, so that it survives an export/import cycle unchanged.
func testModel() *File {
	beam := &ProfileRecord{
		PieceNumber: 1,
		Comment:     "fixture",
		OrderID:     "4711",
		DrawingID:   "D-100",
		PieceID:     "P1",
		Quantity:    2,
		Grade:       "S235JR",
		Designation: "IPE 200",
		Family:      profile.IBeam,
		Length:      6000,
		Dims: profile.Dimensions{
			Height: 200, Width: 100,
			WebThickness: 5.6, FlangeThickness: 8.5, Radius: 12,
		},
		Weight:  22.4,
		Surface: 0.77,
		Info:    [4]string{"", "lot 7", "", ""},
		Features: []Feature{
			&Hole{ID: 1, Face: profile.Top, X: 1500, Y: 50, Diameter: 17.5, Through: true},
			&Slot{ID: 2, Face: profile.Top, X: 2000, Y: 50, Diameter: 20, Length: 30, Width: 10, Through: true},
			&Hole{ID: 3, Face: profile.Front, X: 3000, Y: 100, Diameter: 13, Depth: 5},
			&OuterContour{ID: 4, Vertices: []ContourVertex{
				{Face: profile.Top, X: 0, Y: 0},
				{Face: profile.Top, X: 6000, Y: 0},
				{Face: profile.Top, X: 6000, Y: 100},
				{Face: profile.Top, X: 0, Y: 100},
				{Face: profile.Top, X: 0, Y: 0},
			}},
			&InnerContour{ID: 5, Vertices: []ContourVertex{
				{Face: profile.Front, X: 2900, Y: 80},
				{Face: profile.Front, X: 3100, Y: 80},
				{Face: profile.Front, X: 3100, Y: 120},
				{Face: profile.Front, X: 2900, Y: 120},
				{Face: profile.Front, X: 2900, Y: 80},
			}},
			&Marking{ID: 6, Face: profile.Top, X: 200, Y: 50, Height: 10, Text: "P1"},
			&SpecialCut{ID: 7, Face: profile.Front, X: 5900, Y: 100, Width: 100, Depth: 200, Angle: 45},
			&PowderMark{ID: 8, Face: profile.Top, Points: []vec.Vec2{
				{X: 100, Y: 10}, {X: 400, Y: 10},
			}},
			&PunchMark{ID: 9, Face: profile.Top, X: 50, Y: 50},
			&Tolerance{ID: 10, Upper: 2, Lower: -2},
			&Camber{ID: 11, Height: 15},
			&Bend{ID: 12, Face: profile.Top, X: 3000, Angle: 90, Radius: 5},
		},
	}

	plate := &ProfileRecord{
		PieceNumber: 2,
		Comment:     "fixture",
		PieceID:     "P2",
		Quantity:    1,
		Grade:       "S355J2",
		Designation: "FL 200x10",
		Family:      profile.Plate,
		Length:      1000,
		Dims: profile.Dimensions{
			Height: 200, Width: 200,
			WebThickness: 10, FlangeThickness: 10,
		},
		Features: []Feature{
			&SpecialProfile{ID: 1, Points: []ContourVertex{
				{X: 0, Y: 0}, {X: 200, Y: 0}, {X: 200, Y: 10}, {X: 0, Y: 10},
			}},
			&Bend{ID: 2, Face: profile.Top, X: 500, Angle: 90, Radius: 6},
		},
	}

	return &File{Profiles: []*ProfileRecord{beam, plate}}
}

func TestExportImportRoundTrip(t *testing.T) {
	model := testModel()

	buf := &bytes.Buffer{}
	w := NewWriter(buf, nil)
	if err := w.WriteFile(model); err != nil {
		t.Fatal(err)
	}

	back, err := ReadBytes(buf.Bytes(), nil)
	if err != nil {
		t.Fatal(err)
	}
	for _, warn := range back.Warnings {
		t.Errorf("round-trip warning: %s", warn)
	}
	back.Warnings = nil

	if d := cmp.Diff(model, back); d != "" {
		t.Errorf("round trip changed the model (-want +got):\n%s", d)
	}
}

// The generation comment is excluded from round-trip equality; only
// the comment line may differ.
func TestCommentOverride(t *testing.T) {
	model := testModel()

	buf := &bytes.Buffer{}
	w := NewWriter(buf, &WriterOptions{Comment: "written 2026-08-30 12:00"})
	if err := w.WriteFile(model); err != nil {
		t.Fatal(err)
	}

	back, err := ReadBytes(buf.Bytes(), nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := back.Profiles[0].Comment; got != "written 2026-08-30 12:00" {
		t.Errorf("comment %q", got)
	}
	back.Warnings = nil
	for _, rec := range back.Profiles {
		rec.Comment = "fixture"
	}
	if d := cmp.Diff(model, back); d != "" {
		t.Errorf("model differs beyond the comment (-want +got):\n%s", d)
	}
}

// Export output is byte-for-byte deterministic.
func TestDeterministicOutput(t *testing.T) {
	model := testModel()
	a := &bytes.Buffer{}
	b := &bytes.Buffer{}
	if err := NewWriter(a, nil).WriteFile(model); err != nil {
		t.Fatal(err)
	}
	if err := NewWriter(b, nil).WriteFile(model); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a.Bytes(), b.Bytes()) {
		t.Error("two exports of the same model differ")
	}
}

// Within a block, lines are grouped by face code in the family's face
// order.
func TestFaceGrouping(t *testing.T) {
	rec := &ProfileRecord{
		PieceNumber: 1,
		Quantity:    1,
		Designation: "IPE 200",
		Family:      profile.IBeam,
		Length:      6000,
		Dims:        profile.Dimensions{Height: 200, Width: 100, WebThickness: 5.6, FlangeThickness: 8.5},
		Features: []Feature{
			&Hole{ID: 1, Face: profile.Front, X: 100, Y: 100, Diameter: 10, Through: true},
			&Hole{ID: 2, Face: profile.Top, X: 200, Y: 50, Diameter: 10, Through: true},
			&Hole{ID: 3, Face: profile.Bottom, X: 300, Y: 50, Diameter: 10, Through: true},
		},
	}
	buf := &bytes.Buffer{}
	if err := NewWriter(buf, nil).WriteFile(&File{Profiles: []*ProfileRecord{rec}}); err != nil {
		t.Fatal(err)
	}

	var letters []string
	for _, line := range strings.Split(buf.String(), "\n") {
		fields := strings.Fields(line)
		if len(fields) == 5 && (fields[0] == "v" || fields[0] == "u" || fields[0] == "o") {
			letters = append(letters, fields[0])
		}
	}
	want := []string{"v", "u", "o"}
	if len(letters) != len(want) {
		t.Fatalf("hole lines: %v", letters)
	}
	for i := range want {
		if letters[i] != want[i] {
			t.Errorf("line %d: got %q, want %q", i, letters[i], want[i])
		}
	}
}

// A face without a letter mapping is a hard export failure.
func TestFaceLetterError(t *testing.T) {
	rec := &ProfileRecord{
		PieceNumber: 1,
		Designation: "IPE 200",
		Family:      profile.IBeam,
		Length:      6000,
		Dims:        profile.Dimensions{Height: 200, Width: 100, WebThickness: 5.6, FlangeThickness: 8.5},
		Features: []Feature{
			&Hole{ID: 1, Face: profile.Radial, X: 100, Y: 90, Diameter: 10, Through: true},
		},
	}
	err := NewWriter(&bytes.Buffer{}, nil).WriteFile(&File{Profiles: []*ProfileRecord{rec}})
	var fe *FaceLetterError
	if !errors.As(err, &fe) {
		t.Fatalf("got %v, want FaceLetterError", err)
	}
	if fe.Family != profile.IBeam || fe.Face != profile.Radial {
		t.Errorf("error: %+v", fe)
	}
}
