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
	"fmt"

	"github.com/Symple44/go-dstv/profile"
	"github.com/Symple44/go-dstv/validate"
)

var (
	// ErrNoHeader is reported when the first block of a file is not ST.
	ErrNoHeader = errors.New("file does not start with an ST block")

	// ErrNoEnd is reported when a file is not terminated by an EN block.
	ErrNoEnd = errors.New("missing EN block")
)

// StructuralError indicates that the file could not be parsed as a DSTV
// NC file at all.  This is the only fatal import error; everything else
// degrades to warnings.
type StructuralError struct {
	Line int
	Err  error
}

func (err *StructuralError) Error() string {
	tail := ""
	if err.Line > 0 {
		tail = fmt.Sprintf(" (line %d)", err.Line)
	}
	return "not a valid DSTV NC file: " + err.Err.Error() + tail
}

func (err *StructuralError) Unwrap() error {
	return err.Err
}

// FaceLetterError is returned by the Writer when a feature's face has
// no DSTV letter for the profile's topology family.  A model that
// passed validation never triggers this.
type FaceLetterError struct {
	Family profile.Family
	Face   profile.Face
}

func (err *FaceLetterError) Error() string {
	return fmt.Sprintf("no face letter for %s face of %s profile",
		err.Face, err.Family)
}

// Warning is a non-fatal problem found during import.  The concrete
// types are *MalformedBlockError, *FieldParseWarning,
// *TopologyMismatchWarning and *ValidationWarning.
type Warning interface {
	error
	isWarning()
}

// MalformedBlockError reports a block whose body is missing or too
// broken to yield any features.  During import it is collected as a
// warning; the rest of the file is still parsed.
type MalformedBlockError struct {
	Tag  string
	Line int
	Err  error
}

func (err *MalformedBlockError) Error() string {
	return fmt.Sprintf("malformed %s block at line %d: %s",
		err.Tag, err.Line, err.Err)
}

func (err *MalformedBlockError) Unwrap() error {
	return err.Err
}

func (err *MalformedBlockError) isWarning() {}

// FieldParseWarning reports a field that could not be parsed.  The
// value was substituted with zero (or the empty string).
type FieldParseWarning struct {
	Line  int
	Field string
	Value string
}

func (w *FieldParseWarning) Error() string {
	return fmt.Sprintf("line %d: cannot parse %s %q, using 0",
		w.Line, w.Field, w.Value)
}

func (w *FieldParseWarning) isWarning() {}

// TopologyMismatchWarning reports that the category code or profile
// code letter in a header disagrees with the topology resolver's
// expectation for the designation.  The resolver's inference wins.
type TopologyMismatchWarning struct {
	Line        int
	Designation string
	Code        string
	Family      profile.Family
}

func (w *TopologyMismatchWarning) Error() string {
	return fmt.Sprintf("line %d: profile code %q does not match %s (resolved as %s)",
		w.Line, w.Code, w.Designation, w.Family)
}

func (w *TopologyMismatchWarning) isWarning() {}

// ValidationWarning reports a feature that lies outside the bounds of
// its face.  The feature is kept unless ReaderOptions.DropInvalid is
// set.
type ValidationWarning struct {
	PieceNumber int
	FeatureID   int
	Failure     *validate.Failure
}

func (w *ValidationWarning) Error() string {
	return fmt.Sprintf("piece %d, feature %d: %s",
		w.PieceNumber, w.FeatureID, w.Failure.Message)
}

func (w *ValidationWarning) isWarning() {}
