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

//go:build !usf_disable_float

package usf

import "math"

// maxFloatBody bounds the composed digit/point/exponent body: a
// significand of at most floatSignificandCap digits, one decimal point,
// and a 4-character exponent suffix, with slack for the rounding carry,
// plus up to 127 zero digits padded out to the largest precision.
const maxFloatBody = floatSignificandCap + 8 + 127

// renderFloat implements spec.md §4.5/§4.6's Float renderer. It composes
// the unsigned body (digits, point, exponent marker) into a scratch
// buffer first so Layout can be told the exact payload width before any
// code unit is written, exactly as the integer renderers do.
func renderFloat[U CodeUnit](o *OutputView[U], s Spec[U], v float64) *ContractViolation {
	if s.Type != TypeNone && !s.typeIsFloat() {
		return newViolation(KindTypeMismatch, "float argument incompatible with presentation type")
	}

	if math.IsNaN(v) {
		return renderFloatWord(o, s, false, "nan", "NAN")
	}

	negative := math.Signbit(v)

	if math.IsInf(v, 0) {
		return renderFloatWord(o, s, negative, "inf", "INF")
	}

	av := math.Abs(v)
	if av != 0 && (av < 1e-19 || av > 1.8446744e19) {
		return renderFloatWord(o, s, negative, "ovf", "OVF")
	}

	effectiveType := s.Type
	if effectiveType == TypeNone {
		effectiveType = TypeGeneralG
	}

	var body [maxFloatBody]byte
	var n int
	if av == 0 {
		// format_float_zero reads the raw, unexpanded precision (-1
		// stays -1) and only for Fixed/Scientific; General always
		// prints a bare "0" and '#' has no effect here at all.
		n = composeFloatZero(body[:], effectiveType, s.Precision, s.Uppercase)
	} else {
		precision := s.Precision
		if precision < 0 {
			precision = 6
		}
		n = composeFloatNonzero(body[:], av, effectiveType, precision, s.Hash, s.Uppercase)
	}

	fillAfter, viol := writeAlignment(o, s, n, negative)
	if viol != nil {
		return viol
	}

	o.writeASCIIBytes(body[:n])
	o.fill(s.Fill, fillAfter)
	return nil
}

func renderFloatWord[U CodeUnit](o *OutputView[U], s Spec[U], negative bool, lower, upper string) *ContractViolation {
	word := lower
	if s.Uppercase {
		word = upper
	}

	fillAfter, viol := writeAlignment(o, s, len(word), negative)
	if viol != nil {
		return viol
	}

	o.writeASCII(word)
	o.fill(s.Fill, fillAfter)
	return nil
}

func writeExponentSuffix(dst []byte, exponent int, uppercase bool) int {
	marker := byte('e')
	if uppercase {
		marker = 'E'
	}
	dst[0] = marker

	sign := byte('+')
	e := exponent
	if e < 0 {
		sign = '-'
		e = -e
	}
	dst[1] = sign
	dst[2] = byte('0' + e/10)
	dst[3] = byte('0' + e%10)
	return 4
}

// composeFloatZero implements format_float_zero (usf_argument.hpp): only
// Fixed/Scientific read the placeholder's raw precision (left at -1 when
// unspecified), General always composes a bare "0", and '#' has no
// effect on the zero path at all.
func composeFloatZero(dst []byte, effectiveType Type, rawPrecision int, uppercase bool) int {
	precision := 0
	if effectiveType == TypeFixedF || effectiveType == TypeScientificE {
		precision = rawPrecision
	}

	pos := 0
	dst[pos] = '0'
	pos++

	if precision > 0 {
		dst[pos] = '.'
		pos++
		for i := 0; i < precision; i++ {
			dst[pos] = '0'
			pos++
		}
	}

	if effectiveType == TypeScientificE {
		pos += writeExponentSuffix(dst[pos:], 0, uppercase)
	}
	return pos
}

func composeFloatNonzero(dst []byte, av float64, effectiveType Type, precision int, hash, uppercase bool) int {
	var sig [floatSignificandCap]byte

	switch effectiveType {
	case TypeFixedF:
		exponent, size := convertFloat(sig[:], av, true, precision)
		return assembleFixed(dst, sig[:size], exponent, precision, hash, false)

	case TypeScientificE:
		exponent, size := convertFloat(sig[:], av, false, precision)
		return assembleScientific(dst, sig[:size], exponent, precision, hash, uppercase, false)

	default: // TypeGeneralG
		p := precision
		if p == 0 {
			p = 1
		}
		exponent, _ := convertFloat(sig[:], av, false, p-1)

		if exponent >= -4 && exponent < p {
			fixedPrecision := p - 1 - exponent
			if fixedPrecision < 0 {
				fixedPrecision = 0
			}
			var sig2 [floatSignificandCap]byte
			exponent2, size2 := convertFloat(sig2[:], av, true, fixedPrecision)
			return assembleFixed(dst, sig2[:size2], exponent2, fixedPrecision, true, !hash)
		}

		var sig2 [floatSignificandCap]byte
		exponent2, size2 := convertFloat(sig2[:], av, false, p-1)
		return assembleScientific(dst, sig2[:size2], exponent2, p-1, true, uppercase, !hash)
	}
}

// assembleFixed writes the fixed-point body (no sign) from an already
// rounded significand. forcePoint shows the decimal point even with zero
// fractional digits (spec.md §4.3's "{:#.0f}" example, S5); trim, used
// only by the General composer, suppresses trailing fractional zeros
// (and the point itself, if none remain).
func assembleFixed(dst []byte, sig []byte, exponent, precision int, forcePoint, trim bool) int {
	showPoint := precision > 0 || forcePoint
	pos := 0

	if exponent < 0 {
		dst[pos] = '0'
		pos++
		if !showPoint {
			return pos
		}
		pointIdx := pos
		dst[pos] = '.'
		pos++
		fracStart := pos
		zeros := -exponent - 1
		for i := 0; i < zeros && i < precision; i++ {
			dst[pos] = '0'
			pos++
		}
		if pos-fracStart < precision {
			n := copy(dst[pos:], sig)
			pos += n
		}
		for pos-fracStart < precision {
			dst[pos] = '0'
			pos++
		}
		if trim {
			pos = trimFractionalZeros(dst, pointIdx, pos)
		}
		return pos
	}

	ipart := exponent + 1
	n := copy(dst[pos:pos+min(ipart, len(sig))], sig[:min(ipart, len(sig))])
	pos += n
	for n < ipart {
		dst[pos] = '0'
		pos++
		n++
	}

	if !showPoint {
		return pos
	}

	pointIdx := pos
	dst[pos] = '.'
	pos++
	fracStart := pos
	if len(sig) > ipart {
		m := copy(dst[pos:], sig[ipart:])
		pos += m
	}
	for pos-fracStart < precision {
		dst[pos] = '0'
		pos++
	}

	if trim {
		pos = trimFractionalZeros(dst, pointIdx, pos)
	}
	return pos
}

// assembleScientific writes "d[.ddd]e±dd" from an already rounded
// significand of one leading digit plus at most precision trailing
// digits; missing trailing digits are padded with zeros.
func assembleScientific(dst []byte, sig []byte, exponent, precision int, forcePoint, uppercase, trim bool) int {
	pos := 0
	dst[pos] = sig[0]
	pos++

	showPoint := precision > 0 || forcePoint
	if showPoint {
		pointIdx := pos
		dst[pos] = '.'
		pos++
		fracStart := pos
		if len(sig) > 1 {
			n := copy(dst[pos:], sig[1:])
			pos += n
		}
		for pos-fracStart < precision {
			dst[pos] = '0'
			pos++
		}
		if trim {
			pos = trimFractionalZeros(dst, pointIdx, pos)
		}
	}

	pos += writeExponentSuffix(dst[pos:], exponent, uppercase)
	return pos
}

// trimFractionalZeros drops trailing '0' bytes in dst[pointIdx+1:end],
// and the point itself if nothing is left after it.
func trimFractionalZeros(dst []byte, pointIdx, end int) int {
	i := end
	for i > pointIdx+1 && dst[i-1] == '0' {
		i--
	}
	if i == pointIdx+1 {
		i = pointIdx
	}
	return i
}
