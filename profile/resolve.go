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

package profile

import "strings"

// Lookup provides nominal dimensions for catalogue profiles, keyed by
// designation ("IPE 200", "HEA 300", ...).  Implementations are supplied
// by the application; the profile package works without one.
type Lookup interface {
	Dimensions(designation string) (Dimensions, bool)
}

// designation prefixes, longest match wins
var designationFamilies = []struct {
	prefix string
	fam    Family
}{
	{"IPE", IBeam},
	{"IPN", IBeam},
	{"HEA", IBeam},
	{"HEB", IBeam},
	{"HEM", IBeam},
	{"HE", IBeam},
	{"HL", IBeam},
	{"HD", IBeam},
	{"UB", IBeam},
	{"UC", IBeam},
	{"W", IBeam},
	{"UPE", UChannel},
	{"UPN", UChannel},
	{"UAP", UChannel},
	{"U", UChannel},
	{"C", UChannel},
	{"LNP", LAngle},
	{"L", LAngle},
	{"RHS", RectTube},
	{"SHS", RectTube},
	{"QRO", RectTube},
	{"RRO", RectTube},
	{"CHS", RoundTube},
	{"ROR", RoundTube},
	{"RO", RoundTube},
	{"D", RoundTube},
	{"FL", Plate},
	{"FLT", Plate},
	{"BL", Plate},
	{"PL", Plate},
	{"TPS", Tee},
	{"T", Tee},
}

// FamilyForDesignation infers the topology family from a profile
// designation such as "IPE 200" or "RHS 100x50x4".  It returns Other if
// no known prefix matches.
func FamilyForDesignation(designation string) Family {
	s := strings.ToUpper(strings.TrimSpace(designation))
	best := Other
	bestLen := 0
	for _, e := range designationFamilies {
		if len(e.prefix) > bestLen && strings.HasPrefix(s, e.prefix) {
			best = e.fam
			bestLen = len(e.prefix)
		}
	}
	return best
}

// FamilyForCode resolves a DSTV profile code letter together with the
// designation string.  The designation is consulted where the code
// letter is ambiguous: the letter M covers both rectangular and round
// hollow sections, which are told apart by their designation prefix.
// If letter and designation disagree the designation wins; detecting
// the disagreement is the caller's job (see CodeLetter).
func FamilyForCode(letter string, designation string) Family {
	byName := FamilyForDesignation(designation)
	switch strings.ToUpper(strings.TrimSpace(letter)) {
	case "I":
		if byName != Other {
			return byName
		}
		return IBeam
	case "U", "C":
		if byName == UChannel || byName == Other {
			return UChannel
		}
		return byName
	case "L":
		if byName == LAngle || byName == Other {
			return LAngle
		}
		return byName
	case "M":
		if byName == RoundTube {
			return RoundTube
		}
		if byName == RectTube || byName == Other {
			return RectTube
		}
		return byName
	case "R", "RO", "RU":
		if byName == RectTube {
			return RectTube
		}
		return RoundTube
	case "B":
		if byName == Plate || byName == Other {
			return Plate
		}
		return byName
	case "T":
		if byName == Tee || byName == Other {
			return Tee
		}
		return byName
	default:
		return byName
	}
}

// CodeLetter returns the DSTV profile code letter the family is written
// with on export.  The empty string is returned for Other.
func (fam Family) CodeLetter() string {
	switch fam {
	case IBeam:
		return "I"
	case UChannel:
		return "U"
	case LAngle:
		return "L"
	case RectTube, RoundTube:
		return "M"
	case Plate:
		return "B"
	case Tee:
		return "T"
	default:
		return ""
	}
}

// CategoryCode returns the numeric profile category written in the
// header block.  I-sections are subdivided: narrow-flange sections
// (IPE, IPN) are category 1, wide-flange sections (HE and the imperial
// W/UB/UC series) category 2.
func CategoryCode(fam Family, designation string) int {
	switch fam {
	case IBeam:
		s := strings.ToUpper(strings.TrimSpace(designation))
		for _, p := range []string{"HE", "HL", "HD", "W", "UB", "UC"} {
			if strings.HasPrefix(s, p) {
				return 2
			}
		}
		return 1
	case UChannel:
		return 3
	case LAngle:
		return 4
	case RectTube:
		return 5
	case RoundTube:
		return 6
	case Plate:
		return 7
	case Tee:
		return 8
	default:
		return 0
	}
}

// Resolve fills the missing fields of dims for the given profile.
// Fields present in the source are never changed.  Missing fields are
// taken from the lookup, if one is given and knows the designation;
// whatever is still unset afterwards falls back to generic defaults.
func Resolve(fam Family, designation string, dims Dimensions, lookup Lookup) Dimensions {
	if lookup != nil {
		if cat, ok := lookup.Dimensions(strings.TrimSpace(designation)); ok {
			if dims.Height == 0 {
				dims.Height = cat.Height
			}
			if dims.Width == 0 {
				dims.Width = cat.Width
			}
			if dims.WebThickness == 0 {
				dims.WebThickness = cat.WebThickness
			}
			if dims.FlangeThickness == 0 {
				dims.FlangeThickness = cat.FlangeThickness
			}
			if dims.Radius == 0 {
				dims.Radius = cat.Radius
			}
		}
	}
	return dims.fillDefaults(fam)
}
