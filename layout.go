// Copyright 2022 gorse Project Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package usf

// signWidth returns the number of code units the sign glyph occupies:
// always 1 if negative, else 1 only for an explicit Plus/Space sign
// (usf_arg_format.hpp: sign_width).
func signWidth[U CodeUnit](s Spec[U], negative bool) int {
	if !negative && s.Sign == SignNone {
		return 0
	}
	return 1
}

// prefixWidth returns the number of code units the "0x"/"0b"/"0" prefix
// occupies: 0 for non-hash or float, 1 for octal-with-hash, 2 for
// binary/hex/pointer-with-hash (usf_arg_format.hpp: prefix_width).
func prefixWidth[U CodeUnit](s Spec[U]) int {
	if !s.Hash || s.typeIsFloat() {
		return 0
	}
	if s.Type == TypeOct {
		return 1
	}
	return 2
}

// writeSign writes '-' for a negative value, else the explicit sign
// glyph if one was requested (usf_arg_format.hpp: write_sign).
func writeSign[U CodeUnit](o *OutputView[U], s Spec[U], negative bool) {
	if negative {
		o.writeUnit(unit[U]('-'))
		return
	}
	switch s.Sign {
	case SignPlus:
		o.writeUnit(unit[U]('+'))
	case SignSpace:
		o.writeUnit(unit[U](' '))
	}
}

// writePrefix writes the "0x"/"0X"/"0b"/"0B" alternative-form prefix
// when requested (usf_arg_format.hpp: write_prefix).
func writePrefix[U CodeUnit](o *OutputView[U], s Spec[U]) {
	if !s.Hash || s.typeIsFloat() {
		return
	}
	o.writeUnit(unit[U]('0'))
	switch {
	case s.Type == TypeBin:
		if s.Uppercase {
			o.writeUnit(unit[U]('B'))
		} else {
			o.writeUnit(unit[U]('b'))
		}
	case s.Type == TypeHex || s.Type == TypePointer:
		if s.Uppercase {
			o.writeUnit(unit[U]('X'))
		} else {
			o.writeUnit(unit[U]('x'))
		}
	}
}

// writeAlignment writes the fill-before, sign, and prefix for a payload
// of `digits` code units, and returns the fill count that must follow
// the payload. It fails with KindOverflow if the required code units
// would not fit (spec.md §4.3 Layout).
func writeAlignment[U CodeUnit](o *OutputView[U], s Spec[U], digits int, negative bool) (fillAfter int, viol *ContractViolation) {
	effective := digits + signWidth(s, negative) + prefixWidth(s)

	if s.Width <= effective {
		if viol = o.reserve(effective); viol != nil {
			return 0, viol
		}
		writeSign(o, s, negative)
		writePrefix(o, s)
		return 0, nil
	}

	if viol = o.reserve(s.Width); viol != nil {
		return 0, viol
	}

	fillCount := s.Width - effective
	al := s.effectiveAlign()

	switch al {
	case AlignLeft:
		fillAfter = fillCount
	case AlignCenter:
		fillAfter = fillCount - fillCount/2
		fillCount /= 2
	}

	if al != AlignLeft && al != AlignNumeric {
		o.fill(s.Fill, fillCount)
	}

	writeSign(o, s, negative)
	writePrefix(o, s)

	if al == AlignNumeric {
		o.fill(s.Fill, fillCount)
	}

	return fillAfter, nil
}
