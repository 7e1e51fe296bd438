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
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"

	"github.com/Symple44/go-dstv/profile"
)

// File is the in-memory model of a DSTV NC file: one ProfileRecord per
// piece, in source order, plus the warnings collected during import.
type File struct {
	Profiles []*ProfileRecord
	Warnings []Warning
}

// ReaderOptions control the import.  The zero value (or a nil pointer)
// selects the defaults.
type ReaderOptions struct {
	// Lookup provides catalogue dimensions for profiles whose header
	// omits dimension fields.  May be nil, in which case generic
	// defaults are used instead.
	Lookup profile.Lookup

	// DropInvalid removes features that fail bounds validation from
	// the model.  By default they are kept, and reported through the
	// Warnings list either way.
	DropInvalid bool
}

// Open reads the named DSTV NC file.
func Open(fname string, opt *ReaderOptions) (*File, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	return ReadBytes(data, opt)
}

// Read reads a DSTV NC file from r.
func Read(r io.Reader, opt *ReaderOptions) (*File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ReadBytes(data, opt)
}

// ReadBytes parses raw file content.  Input that is not valid UTF-8 is
// decoded as Latin-1, the encoding commonly produced by European CAM
// systems.
//
// The parse walks a fixed sequence of states: a header block must come
// first, feature blocks follow, and the EN tag terminates the file (or
// one piece of a multi-piece file).  Only two conditions are fatal: a
// first block other than ST, and a file that never reaches EN.  All
// other problems degrade to entries in File.Warnings.
func ReadBytes(data []byte, opt *ReaderOptions) (*File, error) {
	if opt == nil {
		opt = &ReaderOptions{}
	}

	text := string(data)
	if !utf8.ValidString(text) {
		decoded, err := charmap.ISO8859_1.NewDecoder().String(text)
		if err == nil {
			text = decoded
		}
	}

	s := newBlockScanner(text)
	f := &File{}

	var rec *ProfileRecord
	var fp *featureParser
	sawEnd := false

	for {
		b := s.next()
		if len(s.leading) > 0 {
			return nil, &StructuralError{Line: s.leading[0].no, Err: ErrNoHeader}
		}
		if b == nil {
			break
		}
		sawEnd = false

		switch b.tag {
		case tagHeader:
			var ww []Warning
			rec, ww = parseHeader(b, opt.Lookup)
			rec.PieceNumber = len(f.Profiles) + 1
			f.Profiles = append(f.Profiles, rec)
			f.Warnings = append(f.Warnings, ww...)
			fp = &featureParser{fam: rec.Family, ids: &idGen{}}

		case tagEnd:
			sawEnd = true
			rec = nil
			fp = nil

		default:
			if rec == nil {
				if len(f.Profiles) == 0 {
					return nil, &StructuralError{Line: b.line, Err: ErrNoHeader}
				}
				// feature block after EN; ignore with a warning
				f.Warnings = append(f.Warnings, &MalformedBlockError{
					Tag:  string(b.tag),
					Line: b.line,
					Err:  errOutsideProfile,
				})
				continue
			}
			ff := fp.parse(b)
			f.Warnings = append(f.Warnings, fp.warnings...)
			fp.warnings = nil
			rec.Features = append(rec.Features, ff...)
		}
	}

	if !sawEnd {
		line := 0
		if n := len(s.lines); n > 0 {
			line = n
		}
		return nil, &StructuralError{Line: line, Err: ErrNoEnd}
	}

	for _, rec := range f.Profiles {
		kept := rec.Features[:0:0]
		for _, feat := range rec.Features {
			if fail := rec.ValidateFeature(feat); fail != nil {
				f.Warnings = append(f.Warnings, &ValidationWarning{
					PieceNumber: rec.PieceNumber,
					FeatureID:   featureID(feat),
					Failure:     fail,
				})
				if opt.DropInvalid {
					continue
				}
			}
			kept = append(kept, feat)
		}
		rec.Features = kept
	}

	return f, nil
}

// IsNCName reports whether the file name has one of the extensions of
// the DSTV NC family (.nc, .nc1 through .nc9).
func IsNCName(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == ".nc" {
		return true
	}
	return len(ext) == 4 && ext[:3] == ".nc" && ext[3] >= '1' && ext[3] <= '9'
}

func featureID(f Feature) int {
	switch f := f.(type) {
	case *Hole:
		return f.ID
	case *Slot:
		return f.ID
	case *OuterContour:
		return f.ID
	case *InnerContour:
		return f.ID
	case *Marking:
		return f.ID
	case *SpecialCut:
		return f.ID
	case *PowderMark:
		return f.ID
	case *PunchMark:
		return f.ID
	case *Tolerance:
		return f.ID
	case *Camber:
		return f.ID
	case *SpecialProfile:
		return f.ID
	case *Bend:
		return f.ID
	}
	return 0
}
