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

// parseSpec consumes a placeholder body starting right after the opening
// '{' and ending at (and including) the closing '}', filling in a Spec.
// Ported field-by-field from usf_arg_format.hpp's ArgFormat constructor:
// index, then fill/align, then sign, hash, zero-fill, width, precision,
// type, in that fixed order; zero-fill overrides whatever fill/align was
// parsed before it.
func parseSpec[U CodeUnit](t *TemplateView[U]) (Spec[U], *ContractViolation) {
	s := defaultSpec[U]()

	if c, ok := t.at(0); ok && c != unit[U]('}') && c != unit[U](':') {
		s.Empty = false
		idx, n, viol := parseSmallInt(t, 0)
		if viol != nil {
			return s, viol
		}
		if n == 0 {
			return s, newViolation(KindSpec, "expected argument index or ':' after '{'")
		}
		s.Index = idx
		s.HasIndex = true
		t.advance(n)
	}

	if c, ok := t.at(0); ok && c == unit[U](':') {
		s.Empty = false
		t.advance(1)

		if viol := parseFillAlign(t, &s); viol != nil {
			return s, viol
		}
		if viol := parseSign(t, &s); viol != nil {
			return s, viol
		}
		if viol := parseHash(t, &s); viol != nil {
			return s, viol
		}
		if viol := parseZeroFill(t, &s); viol != nil {
			return s, viol
		}
		if viol := parseWidth(t, &s); viol != nil {
			return s, viol
		}
		if viol := parsePrecision(t, &s); viol != nil {
			return s, viol
		}
		if viol := parseType(t, &s); viol != nil {
			return s, viol
		}
	}

	c, ok := t.at(0)
	if !ok || c != unit[U]('}') {
		return s, newViolation(KindSpec, "unterminated placeholder, expected '}'")
	}
	t.advance(1)

	if viol := validateSpec(s); viol != nil {
		return s, viol
	}

	return s, nil
}

// parseSmallInt parses a run of ASCII digits at offset off, returning the
// value, the number of code units consumed, and a violation if the run
// overflows the 0..255 range parseWidth/parsePrecision/index all share
// (usf_arg_format.hpp: parse_positive_small_int).
func parseSmallInt[U CodeUnit](t *TemplateView[U], off int) (value, consumed int, viol *ContractViolation) {
	for {
		c, ok := t.at(off + consumed)
		if !ok || c < unit[U]('0') || c > unit[U]('9') {
			break
		}
		value = value*10 + int(c-unit[U]('0'))
		consumed++
		if value > 255 {
			return 0, 0, newViolation(KindSpec, "numeric field exceeds 255")
		}
	}
	return value, consumed, nil
}

func isAlignChar[U CodeUnit](c U) bool {
	return c == unit[U]('<') || c == unit[U]('>') || c == unit[U]('^')
}

func toAlign[U CodeUnit](c U) Align {
	switch c {
	case unit[U]('<'):
		return AlignLeft
	case unit[U]('>'):
		return AlignRight
	case unit[U]('^'):
		return AlignCenter
	default:
		return AlignNone
	}
}

// parseFillAlign disambiguates "[fill]align" from a bare "align" by
// peeking one code unit ahead: if the second character is an align
// glyph, the first is a custom fill character (usf_arg_format.hpp:
// the "next char is align" lookahead).
func parseFillAlign[U CodeUnit](t *TemplateView[U], s *Spec[U]) *ContractViolation {
	if c0, ok := t.at(0); ok {
		if c1, ok1 := t.at(1); ok1 && isAlignChar(c1) {
			if c0 == unit[U]('}') {
				return newViolation(KindSpec, "'}' is not a valid fill character")
			}
			s.Fill = c0
			s.Align = toAlign(c1)
			t.advance(2)
			return nil
		}
		if isAlignChar(c0) {
			s.Align = toAlign(c0)
			t.advance(1)
		}
	}
	return nil
}

func parseSign[U CodeUnit](t *TemplateView[U], s *Spec[U]) *ContractViolation {
	c, ok := t.at(0)
	if !ok {
		return nil
	}
	switch c {
	case unit[U]('-'):
		s.Sign = SignMinus
		t.advance(1)
	case unit[U]('+'):
		s.Sign = SignPlus
		t.advance(1)
	case unit[U](' '):
		s.Sign = SignSpace
		t.advance(1)
	}
	return nil
}

func parseHash[U CodeUnit](t *TemplateView[U], s *Spec[U]) *ContractViolation {
	if c, ok := t.at(0); ok && c == unit[U]('#') {
		s.Hash = true
		t.advance(1)
	}
	return nil
}

// parseZeroFill records a leading '0' as "fill with '0', align Numeric",
// overwriting whatever parseFillAlign already set (spec.md §4.2:
// "zero-fill wins"). No later parse step touches fill or align, so this
// override is final.
func parseZeroFill[U CodeUnit](t *TemplateView[U], s *Spec[U]) *ContractViolation {
	if c, ok := t.at(0); ok && c == unit[U]('0') {
		s.Fill = unit[U]('0')
		s.Align = AlignNumeric
		t.advance(1)
	}
	return nil
}

func parseWidth[U CodeUnit](t *TemplateView[U], s *Spec[U]) *ContractViolation {
	value, n, viol := parseSmallInt(t, 0)
	if viol != nil {
		return viol
	}
	s.Width = value
	t.advance(n)
	return nil
}

func parsePrecision[U CodeUnit](t *TemplateView[U], s *Spec[U]) *ContractViolation {
	c, ok := t.at(0)
	if !ok || c != unit[U]('.') {
		return nil
	}
	t.advance(1)

	value, n, viol := parseSmallInt(t, 0)
	if viol != nil {
		return viol
	}
	if n == 0 {
		return newViolation(KindSpec, "expected digit(s) after '.'")
	}
	if value > 127 {
		return newViolation(KindSpec, "precision exceeds 127")
	}
	s.Precision = value
	t.advance(n)
	return nil
}

func parseType[U CodeUnit](t *TemplateView[U], s *Spec[U]) *ContractViolation {
	c, ok := t.at(0)
	if !ok || c == unit[U]('}') {
		return nil
	}

	switch c {
	case unit[U]('c'):
		s.Type = TypeChar
	case unit[U]('d'):
		s.Type = TypeDec
	case unit[U]('x'):
		s.Type = TypeHex
	case unit[U]('X'):
		s.Type = TypeHex
		s.Uppercase = true
	case unit[U]('o'):
		s.Type = TypeOct
	case unit[U]('b'):
		s.Type = TypeBin
	case unit[U]('B'):
		s.Type = TypeBin
		s.Uppercase = true
	case unit[U]('p'):
		s.Type = TypePointer
	case unit[U]('P'):
		s.Type = TypePointer
		s.Uppercase = true
	case unit[U]('f'):
		s.Type = TypeFixedF
	case unit[U]('F'):
		s.Type = TypeFixedF
		s.Uppercase = true
	case unit[U]('e'):
		s.Type = TypeScientificE
	case unit[U]('E'):
		s.Type = TypeScientificE
		s.Uppercase = true
	case unit[U]('g'):
		s.Type = TypeGeneralG
	case unit[U]('G'):
		s.Type = TypeGeneralG
		s.Uppercase = true
	case unit[U]('s'):
		s.Type = TypeStr
	default:
		return newViolation(KindSpec, "unknown presentation type %q", rune(c))
	}

	t.advance(1)
	return nil
}

// validateSpec enforces the invariants spec.md §3 lists once parsing has
// produced a complete Spec (usf_arg_format.hpp's USF_ENFORCE calls at the
// end of the ArgFormat constructor).
func validateSpec[U CodeUnit](s Spec[U]) *ContractViolation {
	if s.Align == AlignNumeric && !s.typeIsNumericRange() {
		return newViolation(KindSpec, "numeric alignment requires a numeric or pointer type")
	}
	if s.Sign != SignNone && !s.typeIsNumericRange() {
		return newViolation(KindSpec, "explicit sign requires a numeric type")
	}
	if s.Hash && !s.typeAllowsHash() {
		return newViolation(KindSpec, "'#' is not valid for this presentation type")
	}
	if s.Precision >= 0 && !(s.typeIsFloat() || s.Type == TypeStr) {
		return newViolation(KindSpec, "precision requires a float or string type")
	}
	return nil
}
