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

// Package ncdata provides small DSTV NC files for use in tests.
package ncdata

// IPE200 is a minimal single-piece file: an IPE 200 beam with two
// holes in the top flange, one hole in the web, and a part marking.
const IPE200 = `ST
  hand-made test beam
  4711
  D-100
  P1
  2
  S235JR
  1
  IPE 200
  I
       6000.00
        200.00
        100.00
          8.50
          5.60
         12.00
         22.40
          0.77
          0.00
          0.00
          0.00
          0.00
  -
  -
  -
  -
BO
  v      1500.00        50.00        17.50         0.00
  v      4500.00        50.00        17.50         0.00
  o      3000.00       100.00        13.00         0.00
SI
  v       200.00        50.00         0.00        10.00  P1
EN
`

// RoundTube is a CHS piece with two holes on the radial face.
const RoundTube = `ST
  -
  -
  -
  T1
  1
  S355J2
  6
  CHS 114.3x6.3
  M
       2500.00
        114.30
        114.30
          6.30
          6.30
          0.00
         16.80
          0.90
          0.00
          0.00
          0.00
          0.00
  -
  -
  -
  -
BO
  v       750.00        90.00        12.00         0.00
  v      1250.00       270.00        12.00         0.00
EN
`

// ThreePieces holds three consecutive pieces.  The second piece has a
// defective BO block; the defect is local to that piece.
const ThreePieces = `ST
  -
  -
  -
  A1
  1
  S235JR
  1
  IPE 200
  I
       6000.00
        200.00
        100.00
          8.50
          5.60
          0.00
          0.00
          0.00
EN
ST
  -
  -
  -
  A2
  1
  S235JR
  1
  IPE 200
  I
       6000.00
        200.00
        100.00
          8.50
          5.60
          0.00
          0.00
          0.00
BO
EN
ST
  -
  -
  -
  A3
  1
  S235JR
  1
  IPE 200
  I
       6000.00
        200.00
        100.00
          8.50
          5.60
          0.00
          0.00
          0.00
BO
  v      1000.00        50.00        17.50         0.00
EN
`
