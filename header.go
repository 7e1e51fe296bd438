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
	"strconv"
	"strings"

	"github.com/Symple44/go-dstv/profile"
)

// Header field positions within the ST block body.  One field per
// line, in fixed order.
const (
	hdrComment = iota
	hdrOrderID
	hdrDrawingID
	hdrPieceID
	hdrQuantity
	hdrGrade
	hdrCategory
	hdrDesignation
	hdrCodeLetter
	hdrLength
	hdrHeight
	hdrWidth
	hdrFlangeThickness
	hdrWebThickness
	hdrRadius
	hdrWeight
	hdrSurface
	hdrCutAngle0 // four cut angle fields
	hdrInfo0     = hdrCutAngle0 + 4
	hdrNumFields = hdrInfo0 + 4
)

// headerParser consumes the body of an ST block.  Parsing is lenient:
// missing fields default to zero or empty, and fields that fail to
// parse are substituted with zero and recorded as warnings.  The goal
// is to populate a ProfileRecord even from partially malformed input.
type headerParser struct {
	b        *block
	warnings []Warning
}

func parseHeader(b *block, lookup profile.Lookup) (*ProfileRecord, []Warning) {
	p := &headerParser{b: b}

	rec := &ProfileRecord{
		Comment:     p.text(hdrComment),
		OrderID:     p.text(hdrOrderID),
		DrawingID:   p.text(hdrDrawingID),
		PieceID:     p.text(hdrPieceID),
		Quantity:    p.int(hdrQuantity, "quantity"),
		Grade:       p.text(hdrGrade),
		Designation: p.text(hdrDesignation),
	}

	category := p.int(hdrCategory, "profile category")
	letter := p.text(hdrCodeLetter)

	fam := profile.FamilyForCode(letter, rec.Designation)
	rec.Family = fam
	if letter != "" && !strings.EqualFold(letter, fam.CodeLetter()) ||
		category != 0 && category != profile.CategoryCode(fam, rec.Designation) {
		p.warnings = append(p.warnings, &TopologyMismatchWarning{
			Line:        p.lineNo(hdrCodeLetter),
			Designation: rec.Designation,
			Code:        letter,
			Family:      fam,
		})
	}

	rec.Length = p.num(hdrLength, "length")

	// Omitted dimension fields are filled from the lookup or from
	// generic defaults.  Fields that are present but unparseable stay
	// at 0: garbage is reported, not silently replaced by a guess.
	var bad [5]bool
	dims := profile.Dimensions{
		Height:          p.dim(hdrHeight, "height", &bad[0]),
		Width:           p.dim(hdrWidth, "width", &bad[1]),
		FlangeThickness: p.dim(hdrFlangeThickness, "flange thickness", &bad[2]),
		WebThickness:    p.dim(hdrWebThickness, "web thickness", &bad[3]),
		Radius:          p.dim(hdrRadius, "radius", &bad[4]),
	}
	rec.Dims = profile.Resolve(fam, rec.Designation, dims, lookup)
	if bad[0] {
		rec.Dims.Height = 0
	}
	if bad[1] {
		rec.Dims.Width = 0
	}
	if bad[2] {
		rec.Dims.FlangeThickness = 0
	}
	if bad[3] {
		rec.Dims.WebThickness = 0
	}
	if bad[4] {
		rec.Dims.Radius = 0
	}

	rec.Weight = p.num(hdrWeight, "weight")
	rec.Surface = p.num(hdrSurface, "surface area")
	for i := range rec.CutAngles {
		rec.CutAngles[i] = p.num(hdrCutAngle0+i, "cut angle")
	}
	for i := range rec.Info {
		rec.Info[i] = p.text(hdrInfo0 + i)
	}

	return rec, p.warnings
}

func (p *headerParser) lineNo(i int) int {
	if i < len(p.b.lines) {
		return p.b.lines[i].no
	}
	return p.b.line
}

// text returns field i as free text.  The DSTV placeholder "-" stands
// for an empty field.
func (p *headerParser) text(i int) string {
	if i >= len(p.b.lines) {
		return ""
	}
	s := p.b.lines[i].text
	if s == "-" {
		return ""
	}
	return s
}

// dim is num with a flag reporting whether the field was present but
// unparseable.
func (p *headerParser) dim(i int, name string, bad *bool) float64 {
	n := len(p.warnings)
	x := p.num(i, name)
	*bad = len(p.warnings) > n
	return x
}

func (p *headerParser) num(i int, name string) float64 {
	if i >= len(p.b.lines) {
		return 0
	}
	l := p.b.lines[i]
	if len(l.fields) == 0 || l.text == "-" {
		return 0
	}
	x, ok := parseNum(l.fields[0])
	if !ok {
		p.warnings = append(p.warnings, &FieldParseWarning{
			Line:  l.no,
			Field: name,
			Value: l.fields[0],
		})
		return 0
	}
	return x
}

func (p *headerParser) int(i int, name string) int {
	if i >= len(p.b.lines) {
		return 0
	}
	l := p.b.lines[i]
	if len(l.fields) == 0 || l.text == "-" {
		return 0
	}
	n, err := strconv.Atoi(l.fields[0])
	if err != nil {
		// integer fields sometimes arrive as "3.00"
		if x, ok := parseNum(l.fields[0]); ok {
			return int(x)
		}
		p.warnings = append(p.warnings, &FieldParseWarning{
			Line:  l.no,
			Field: name,
			Value: l.fields[0],
		})
		return 0
	}
	return n
}

// parseNum parses a numeric token.  Some generators glue unit or flag
// letters onto numbers ("12.5u"), so trailing letters are ignored.
func parseNum(tok string) (float64, bool) {
	s := strings.TrimRight(tok, "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ")
	if s == "" {
		return 0, false
	}
	x, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return x, true
}
