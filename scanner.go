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

import "strings"

// blockTag is the two-letter tag introducing a block.
type blockTag string

const (
	tagHeader         blockTag = "ST"
	tagHole           blockTag = "BO"
	tagOuterContour   blockTag = "AK"
	tagInnerContour   blockTag = "IK"
	tagMarking        blockTag = "SI"
	tagSpecialCut     blockTag = "SC"
	tagPowderMark     blockTag = "PU"
	tagPunchMark      blockTag = "KO"
	tagTolerance      blockTag = "TO"
	tagCamber         blockTag = "UE"
	tagSpecialProfile blockTag = "PR"
	tagBend           blockTag = "KA"
	tagEnd            blockTag = "EN"
)

var blockTags = map[string]blockTag{
	"ST": tagHeader,
	"BO": tagHole,
	"AK": tagOuterContour,
	"IK": tagInnerContour,
	"SI": tagMarking,
	"SC": tagSpecialCut,
	"PU": tagPowderMark,
	"KO": tagPunchMark,
	"TO": tagTolerance,
	"UE": tagCamber,
	"PR": tagSpecialProfile,
	"KA": tagBend,
	"EN": tagEnd,
}

// blockLine is one body line of a block.  Fields are the
// whitespace-separated tokens; column positions carry no meaning.  Text
// is the trimmed source line, for fields which may contain spaces.
type blockLine struct {
	no     int // 1-based line number in the source
	text   string
	fields []string
}

// block is a tagged group of body lines.
type block struct {
	tag   blockTag
	line  int // line number of the tag line
	lines []blockLine
}

// blockScanner splits the source text into blocks.  Empty lines and
// "**" comment lines are skipped; a line consisting of a known
// two-letter tag starts a new block, everything else becomes a body
// line of the current block.
//
// The strict DSTV specification assigns fields to fixed columns.  Real
// generator output pads inconsistently, so fields are recovered by
// splitting on runs of whitespace instead.
type blockScanner struct {
	lines []string
	pos   int

	// leading collects non-empty lines seen before the first tag
	leading []blockLine
}

func newBlockScanner(text string) *blockScanner {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return &blockScanner{lines: strings.Split(text, "\n")}
}

// next returns the next block, or nil at the end of the input.
func (s *blockScanner) next() *block {
	var b *block
	for s.pos < len(s.lines) {
		no := s.pos + 1
		line := strings.TrimSpace(s.lines[s.pos])

		if line == "" || strings.HasPrefix(line, "**") {
			s.pos++
			continue
		}

		if tag, ok := blockTags[line]; ok {
			if b != nil {
				return b
			}
			s.pos++
			b = &block{tag: tag, line: no}
			continue
		}

		bl := blockLine{no: no, text: line, fields: strings.Fields(line)}
		if b == nil {
			s.leading = append(s.leading, bl)
		} else {
			b.lines = append(b.lines, bl)
		}
		s.pos++
	}
	return b
}
