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
	"bufio"
	"io"
	"sort"
	"strconv"

	"github.com/Symple44/go-dstv/profile"
)

// WriterOptions control the export.  The zero value (or a nil pointer)
// selects the defaults.
type WriterOptions struct {
	// Comment overrides the free-text comment line of every header
	// block.  This is the place for generation timestamps; the line
	// carries no machining information and is excluded from round-trip
	// comparisons.
	Comment string
}

// Writer serializes a File back into the DSTV block grammar.  For a
// given File the output is byte-for-byte deterministic.
type Writer struct {
	w   *bufio.Writer
	opt *WriterOptions
}

// NewWriter creates a Writer writing to w.
func NewWriter(w io.Writer, opt *WriterOptions) *Writer {
	if opt == nil {
		opt = &WriterOptions{}
	}
	return &Writer{w: bufio.NewWriter(w), opt: opt}
}

// WriteFile writes all pieces of f, each as an ST...EN sequence, and
// flushes the output.
func (w *Writer) WriteFile(f *File) error {
	for _, rec := range f.Profiles {
		if err := w.writeRecord(rec); err != nil {
			return err
		}
	}
	return w.w.Flush()
}

// canonical emission order of the feature blocks
var blockOrder = []blockTag{
	tagHole, tagOuterContour, tagInnerContour, tagMarking,
	tagSpecialCut, tagPowderMark, tagPunchMark, tagTolerance,
	tagCamber, tagSpecialProfile, tagBend,
}

// blocks whose body describes exactly one feature
var oneFeaturePerBlock = map[blockTag]bool{
	tagOuterContour:   true,
	tagInnerContour:   true,
	tagPowderMark:     true,
	tagTolerance:      true,
	tagCamber:         true,
	tagSpecialProfile: true,
}

func (w *Writer) writeRecord(rec *ProfileRecord) error {
	w.line(string(tagHeader))

	comment := rec.Comment
	if w.opt.Comment != "" {
		comment = w.opt.Comment
	}
	w.line("  " + textOrDash(comment))
	w.line("  " + textOrDash(rec.OrderID))
	w.line("  " + textOrDash(rec.DrawingID))
	w.line("  " + textOrDash(rec.PieceID))
	w.line("  " + strconv.Itoa(rec.Quantity))
	w.line("  " + textOrDash(rec.Grade))
	w.line("  " + strconv.Itoa(profile.CategoryCode(rec.Family, rec.Designation)))
	w.line("  " + textOrDash(rec.Designation))
	w.line("  " + textOrDash(rec.Family.CodeLetter()))
	w.dim(rec.Length)
	w.dim(rec.Dims.Height)
	w.dim(rec.Dims.Width)
	w.dim(rec.Dims.FlangeThickness)
	w.dim(rec.Dims.WebThickness)
	w.dim(rec.Dims.Radius)
	w.dim(rec.Weight)
	w.dim(rec.Surface)
	for _, a := range rec.CutAngles {
		w.dim(a)
	}
	for _, s := range rec.Info {
		w.line("  " + textOrDash(s))
	}

	for _, tag := range blockOrder {
		var ff []Feature
		for _, f := range rec.Features {
			if featureTag(f) == tag {
				ff = append(ff, f)
			}
		}
		if len(ff) == 0 {
			continue
		}
		// group by face code, in the family's face order
		sort.SliceStable(ff, func(i, j int) bool {
			return w.faceIndex(rec, ff[i]) < w.faceIndex(rec, ff[j])
		})
		if oneFeaturePerBlock[tag] {
			// these blocks describe a single feature each, so the
			// tag line is repeated per feature
			for _, f := range ff {
				w.line(string(tag))
				if err := w.writeFeature(f, rec); err != nil {
					return err
				}
			}
			continue
		}
		w.line(string(tag))
		for _, f := range ff {
			if err := w.writeFeature(f, rec); err != nil {
				return err
			}
		}
	}

	w.line(string(tagEnd))
	return nil
}

func (w *Writer) faceIndex(rec *ProfileRecord, f Feature) int {
	face, _ := f.Position()
	for i, g := range rec.Family.Faces() {
		if g == face {
			return i
		}
	}
	return len(rec.Family.Faces())
}

func (w *Writer) writeFeature(f Feature, rec *ProfileRecord) error {
	switch f := f.(type) {
	case *Hole:
		letter, err := w.letter(rec, f.Face)
		if err != nil {
			return err
		}
		w.line("  " + letter +
			formatDimension(f.X) + formatDimension(f.Y) +
			formatDimension(f.Diameter) + formatDimension(f.Depth))
	case *Slot:
		letter, err := w.letter(rec, f.Face)
		if err != nil {
			return err
		}
		w.line("  " + letter +
			formatDimension(f.X) + formatDimension(f.Y) +
			formatDimension(f.Diameter) + formatDimension(f.Depth) +
			formatDimension(f.Length) + formatDimension(f.Width))
	case *OuterContour:
		return w.writeVertices(f.Vertices, rec)
	case *InnerContour:
		return w.writeVertices(f.Vertices, rec)
	case *Marking:
		letter, err := w.letter(rec, f.Face)
		if err != nil {
			return err
		}
		w.line("  " + letter +
			formatDimension(f.X) + formatDimension(f.Y) +
			formatDimension(f.Angle) + formatDimension(f.Height) +
			"  " + textOrDash(f.Text))
	case *SpecialCut:
		letter, err := w.letter(rec, f.Face)
		if err != nil {
			return err
		}
		w.line("  " + letter +
			formatDimension(f.X) + formatDimension(f.Y) +
			formatDimension(f.Width) + formatDimension(f.Depth) +
			formatDimension(f.Angle))
	case *PowderMark:
		letter, err := w.letter(rec, f.Face)
		if err != nil {
			return err
		}
		for _, p := range f.Points {
			w.line("  " + letter + formatDimension(p.X) + formatDimension(p.Y))
		}
	case *PunchMark:
		letter, err := w.letter(rec, f.Face)
		if err != nil {
			return err
		}
		w.line("  " + letter + formatDimension(f.X) + formatDimension(f.Y))
	case *Tolerance:
		w.line("  " + formatDimension(f.Upper) + formatDimension(f.Lower))
	case *Camber:
		w.line("  " + formatDimension(f.Height))
	case *SpecialProfile:
		for _, p := range f.Points {
			w.line("  " + formatDimension(p.X) + formatDimension(p.Y) +
				formatDimension(p.Radius))
		}
	case *Bend:
		letter, err := w.letter(rec, f.Face)
		if err != nil {
			return err
		}
		w.line("  " + letter +
			formatDimension(f.X) + formatDimension(f.Angle) +
			formatDimension(f.Radius))
	}
	return nil
}

func (w *Writer) writeVertices(vv []ContourVertex, rec *ProfileRecord) error {
	for _, v := range vv {
		letter, err := w.letter(rec, v.Face)
		if err != nil {
			return err
		}
		w.line("  " + letter +
			formatDimension(v.X) + formatDimension(v.Y) +
			formatDimension(v.Radius))
	}
	return nil
}

// letter resolves the face code letter, the one hard failure of the
// export path.
func (w *Writer) letter(rec *ProfileRecord, face profile.Face) (string, error) {
	c, ok := rec.Family.FaceLetter(face)
	if !ok {
		return "", &FaceLetterError{Family: rec.Family, Face: face}
	}
	return string(c), nil
}

func (w *Writer) line(s string) {
	w.w.WriteString(s)
	w.w.WriteByte('\n')
}

func (w *Writer) dim(x float64) {
	w.line("  " + formatDimension(x))
}

func featureTag(f Feature) blockTag {
	switch f.(type) {
	case *Hole, *Slot:
		return tagHole
	case *OuterContour:
		return tagOuterContour
	case *InnerContour:
		return tagInnerContour
	case *Marking:
		return tagMarking
	case *SpecialCut:
		return tagSpecialCut
	case *PowderMark:
		return tagPowderMark
	case *PunchMark:
		return tagPunchMark
	case *Tolerance:
		return tagTolerance
	case *Camber:
		return tagCamber
	case *SpecialProfile:
		return tagSpecialProfile
	case *Bend:
		return tagBend
	}
	return ""
}
