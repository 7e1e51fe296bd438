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
	"errors"
	"strings"

	"seehuhn.de/go/geom/vec"

	"github.com/Symple44/go-dstv/profile"
)

var (
	errEmptyBlock     = errors.New("block has no body")
	errTooFewFields   = errors.New("too few fields")
	errUnknownFace    = errors.New("unknown face letter")
	errOutsideProfile = errors.New("block outside ST...EN")
)

// featureParser turns feature blocks into Feature values.  A parser is
// used for the blocks of one piece; it carries the piece's topology
// family, the id counter, and the warnings collected so far.
//
// Parsing degrades gracefully: a line that cannot be understood is
// skipped with a warning, and never aborts the block or the file.
type featureParser struct {
	fam      profile.Family
	ids      *idGen
	warnings []Warning

	// face letters may be given only on the first line of a block and
	// are inherited by the following lines
	face     profile.Face
	haveFace bool
}

func (p *featureParser) parse(b *block) []Feature {
	if len(b.lines) == 0 {
		p.malformed(b, b.line, errEmptyBlock)
		return nil
	}
	p.haveFace = false

	switch b.tag {
	case tagHole:
		return p.parseBO(b)
	case tagOuterContour:
		if vv := p.parseVertices(b); vv != nil {
			return []Feature{&OuterContour{ID: p.ids.next(), Vertices: vv}}
		}
	case tagInnerContour:
		if vv := p.parseVertices(b); vv != nil {
			return []Feature{&InnerContour{ID: p.ids.next(), Vertices: vv}}
		}
	case tagMarking:
		return p.parseSI(b)
	case tagSpecialCut:
		return p.parseSC(b)
	case tagPowderMark:
		return p.parsePU(b)
	case tagPunchMark:
		return p.parseKO(b)
	case tagTolerance:
		return p.parseTO(b)
	case tagCamber:
		return p.parseUE(b)
	case tagSpecialProfile:
		return p.parsePR(b)
	case tagBend:
		return p.parseKA(b)
	}
	return nil
}

func (p *featureParser) malformed(b *block, line int, err error) {
	p.warnings = append(p.warnings, &MalformedBlockError{
		Tag:  string(b.tag),
		Line: line,
		Err:  err,
	})
}

// split separates the optional leading face letter from the numeric
// fields of a line.  If the line starts with a number instead of a
// letter, the face of the previous line is inherited.
func (p *featureParser) split(b *block, l blockLine) (profile.Face, []string, bool) {
	fields := l.fields
	if len(fields) > 0 && isFaceToken(fields[0]) {
		face, ok := p.fam.FaceForLetter(fields[0][0])
		if !ok {
			p.malformed(b, l.no, errUnknownFace)
			return 0, nil, false
		}
		p.face = face
		p.haveFace = true
		return face, fields[1:], true
	}
	if !p.haveFace {
		// no face letter yet: fall back to the family's first face
		p.face = p.fam.Faces()[0]
		p.haveFace = true
	}
	return p.face, fields, true
}

func isFaceToken(tok string) bool {
	return len(tok) == 1 && strings.IndexByte("vouhVOUH", tok[0]) >= 0
}

// num parses the numeric field fields[i], substituting 0 with a warning
// on parse failure and 0 without warning if the field is absent.
func (p *featureParser) num(l blockLine, fields []string, i int, name string) float64 {
	if i >= len(fields) {
		return 0
	}
	x, ok := parseNum(fields[i])
	if !ok {
		p.warnings = append(p.warnings, &FieldParseWarning{
			Line:  l.no,
			Field: name,
			Value: fields[i],
		})
		return 0
	}
	return x
}

// parseBO parses a hole block.  Each line is one hole: face, x, y and
// diameter, optionally followed by a depth and by slot elongations.
func (p *featureParser) parseBO(b *block) []Feature {
	var ff []Feature
	for _, l := range b.lines {
		face, fields, ok := p.split(b, l)
		if !ok {
			continue
		}
		if len(fields) < 3 {
			p.malformed(b, l.no, errTooFewFields)
			continue
		}
		x := p.num(l, fields, 0, "hole x")
		y := p.num(l, fields, 1, "hole y")
		d := p.num(l, fields, 2, "hole diameter")
		depth := p.num(l, fields, 3, "hole depth")

		if len(fields) >= 6 {
			slotLen := p.num(l, fields, 4, "slot length")
			slotWid := p.num(l, fields, 5, "slot width")
			if slotLen != 0 || slotWid != 0 {
				ff = append(ff, &Slot{
					ID:       p.ids.next(),
					Face:     face,
					X:        x,
					Y:        y,
					Diameter: d,
					Length:   slotLen,
					Width:    slotWid,
					Depth:    depth,
					Through:  depth == 0,
				})
				continue
			}
		}
		ff = append(ff, &Hole{
			ID:       p.ids.next(),
			Face:     face,
			X:        x,
			Y:        y,
			Diameter: d,
			Depth:    depth,
			Through:  depth == 0,
		})
	}
	return ff
}

// parseVertices parses the vertex lines shared by AK and IK blocks.
func (p *featureParser) parseVertices(b *block) []ContourVertex {
	var vv []ContourVertex
	for _, l := range b.lines {
		face, fields, ok := p.split(b, l)
		if !ok {
			continue
		}
		if len(fields) < 2 {
			p.malformed(b, l.no, errTooFewFields)
			continue
		}
		vv = append(vv, ContourVertex{
			Face:   face,
			X:      p.num(l, fields, 0, "contour x"),
			Y:      p.num(l, fields, 1, "contour y"),
			Radius: p.num(l, fields, 2, "contour radius"),
		})
	}
	return vv
}

func (p *featureParser) parseSI(b *block) []Feature {
	var ff []Feature
	for _, l := range b.lines {
		face, fields, ok := p.split(b, l)
		if !ok {
			continue
		}
		if len(fields) < 3 {
			p.malformed(b, l.no, errTooFewFields)
			continue
		}
		m := &Marking{
			ID:    p.ids.next(),
			Face:  face,
			X:     p.num(l, fields, 0, "marking x"),
			Y:     p.num(l, fields, 1, "marking y"),
			Angle: p.num(l, fields, 2, "marking angle"),
		}
		if len(fields) > 3 {
			m.Height = p.num(l, fields, 3, "marking height")
		}
		if len(fields) > 4 {
			m.Text = strings.Join(fields[4:], " ")
			if m.Text == "-" {
				m.Text = ""
			}
		}
		ff = append(ff, m)
	}
	return ff
}

func (p *featureParser) parseSC(b *block) []Feature {
	var ff []Feature
	for _, l := range b.lines {
		face, fields, ok := p.split(b, l)
		if !ok {
			continue
		}
		if len(fields) < 2 {
			p.malformed(b, l.no, errTooFewFields)
			continue
		}
		ff = append(ff, &SpecialCut{
			ID:    p.ids.next(),
			Face:  face,
			X:     p.num(l, fields, 0, "cut x"),
			Y:     p.num(l, fields, 1, "cut y"),
			Width: p.num(l, fields, 2, "cut width"),
			Depth: p.num(l, fields, 3, "cut depth"),
			Angle: p.num(l, fields, 4, "cut angle"),
		})
	}
	return ff
}

// parsePU parses one powder-marked polyline; the face is taken from the
// first line and the points from all lines.
func (p *featureParser) parsePU(b *block) []Feature {
	m := &PowderMark{}
	first := true
	for _, l := range b.lines {
		face, fields, ok := p.split(b, l)
		if !ok {
			continue
		}
		if len(fields) < 2 {
			p.malformed(b, l.no, errTooFewFields)
			continue
		}
		if first {
			m.Face = face
			first = false
		}
		m.Points = append(m.Points, vec.Vec2{
			X: p.num(l, fields, 0, "powder mark x"),
			Y: p.num(l, fields, 1, "powder mark y"),
		})
	}
	if len(m.Points) == 0 {
		return nil
	}
	m.ID = p.ids.next()
	return []Feature{m}
}

func (p *featureParser) parseKO(b *block) []Feature {
	var ff []Feature
	for _, l := range b.lines {
		face, fields, ok := p.split(b, l)
		if !ok {
			continue
		}
		if len(fields) < 2 {
			p.malformed(b, l.no, errTooFewFields)
			continue
		}
		ff = append(ff, &PunchMark{
			ID:   p.ids.next(),
			Face: face,
			X:    p.num(l, fields, 0, "punch mark x"),
			Y:    p.num(l, fields, 1, "punch mark y"),
		})
	}
	return ff
}

func (p *featureParser) parseTO(b *block) []Feature {
	l := b.lines[0]
	if len(l.fields) < 2 {
		p.malformed(b, l.no, errTooFewFields)
		return nil
	}
	return []Feature{&Tolerance{
		ID:    p.ids.next(),
		Upper: p.num(l, l.fields, 0, "upper tolerance"),
		Lower: p.num(l, l.fields, 1, "lower tolerance"),
	}}
}

func (p *featureParser) parseUE(b *block) []Feature {
	l := b.lines[0]
	if len(l.fields) < 1 {
		p.malformed(b, l.no, errTooFewFields)
		return nil
	}
	return []Feature{&Camber{
		ID:     p.ids.next(),
		Height: p.num(l, l.fields, 0, "camber height"),
	}}
}

// parsePR parses the cross-section polygon of a special profile.  The
// points live in the cross-section plane and carry no face letter.
func (p *featureParser) parsePR(b *block) []Feature {
	sp := &SpecialProfile{}
	for _, l := range b.lines {
		if len(l.fields) < 2 {
			p.malformed(b, l.no, errTooFewFields)
			continue
		}
		sp.Points = append(sp.Points, ContourVertex{
			X:      p.num(l, l.fields, 0, "profile point x"),
			Y:      p.num(l, l.fields, 1, "profile point y"),
			Radius: p.num(l, l.fields, 2, "profile point radius"),
		})
	}
	if len(sp.Points) == 0 {
		return nil
	}
	sp.ID = p.ids.next()
	return []Feature{sp}
}

func (p *featureParser) parseKA(b *block) []Feature {
	var ff []Feature
	for _, l := range b.lines {
		face, fields, ok := p.split(b, l)
		if !ok {
			continue
		}
		if len(fields) < 2 {
			p.malformed(b, l.no, errTooFewFields)
			continue
		}
		ff = append(ff, &Bend{
			ID:     p.ids.next(),
			Face:   face,
			X:      p.num(l, fields, 0, "bend x"),
			Angle:  p.num(l, fields, 1, "bend angle"),
			Radius: p.num(l, fields, 2, "bend radius"),
		})
	}
	return ff
}
