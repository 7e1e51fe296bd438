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

// Package dstv provides support for reading and writing DSTV NC files,
// the block-structured text format used to drive CNC machines in steel
// fabrication.
//
// A file consists of one or more pieces, each introduced by an ST
// header block and populated by feature blocks (BO holes, AK/IK
// contours, SI markings, ...), and is terminated by EN.  Reading a file
// yields a File holding one ProfileRecord per piece:
//
//	f, err := dstv.Open("beam.nc1", nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, w := range f.Warnings {
//	    fmt.Println("warning:", w)
//	}
//	... use f.Profiles ...
//
// Import is deliberately tolerant: only a file that does not start with
// an ST block (or never reaches EN) is rejected outright.  Malformed
// fields and blocks degrade to defaults and are reported through the
// Warnings list on the result.
//
// A Writer serializes a File back into the fixed-format block grammar.
// For a given File the output is byte-for-byte deterministic:
//
//	w := dstv.NewWriter(out, nil)
//	err := w.WriteFile(f)
//
// Feature positions are face-local 2D coordinates as used by the CNC
// machine.  The transform subpackage maps them into 3D model space and
// back; the validate subpackage checks them against the face bounds.
package dstv
