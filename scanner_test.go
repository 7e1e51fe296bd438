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

import "testing"

func TestBlockScanner(t *testing.T) {
	text := "ST\n  a line\n  another\nBO\n  v  1.0  2.0  3.0\n\n** comment\nEN\n"
	s := newBlockScanner(text)

	b := s.next()
	if b == nil || b.tag != tagHeader {
		t.Fatalf("first block: %+v", b)
	}
	if len(b.lines) != 2 || b.lines[0].text != "a line" {
		t.Errorf("header body: %+v", b.lines)
	}

	b = s.next()
	if b == nil || b.tag != tagHole {
		t.Fatalf("second block: %+v", b)
	}
	if len(b.lines) != 1 || len(b.lines[0].fields) != 4 {
		t.Errorf("hole body: %+v", b.lines)
	}
	if b.lines[0].fields[0] != "v" {
		t.Errorf("fields: %v", b.lines[0].fields)
	}

	b = s.next()
	if b == nil || b.tag != tagEnd || len(b.lines) != 0 {
		t.Fatalf("end block: %+v", b)
	}

	if b = s.next(); b != nil {
		t.Errorf("trailing block: %+v", b)
	}
	if len(s.leading) != 0 {
		t.Errorf("leading lines: %+v", s.leading)
	}
}

// Tokens are split on runs of whitespace; column positions are not
// significant.
func TestBlockScannerTokens(t *testing.T) {
	s := newBlockScanner("BO\n\tv 1.0\t\t 2.0   3.0\nEN\n")
	b := s.next()
	if len(b.lines) != 1 {
		t.Fatalf("body: %+v", b.lines)
	}
	want := []string{"v", "1.0", "2.0", "3.0"}
	got := b.lines[0].fields
	if len(got) != len(want) {
		t.Fatalf("fields: %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("field %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestBlockScannerCRLF(t *testing.T) {
	s := newBlockScanner("ST\r\n  x\r\nEN\r\n")
	b := s.next()
	if b == nil || b.tag != tagHeader || len(b.lines) != 1 || b.lines[0].text != "x" {
		t.Fatalf("block: %+v", b)
	}
}

func TestBlockScannerLeading(t *testing.T) {
	s := newBlockScanner("junk before any tag\nST\nEN\n")
	b := s.next()
	if b == nil || b.tag != tagHeader {
		t.Fatalf("block: %+v", b)
	}
	if len(s.leading) != 1 || s.leading[0].no != 1 {
		t.Errorf("leading: %+v", s.leading)
	}
}
