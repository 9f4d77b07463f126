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

// renderArg dispatches a resolved argument to the renderer matching its
// kind, following usf_argument.hpp's per-TypeId format_to() overload set
// (spec.md §4.6).
func renderArg[U CodeUnit](o *OutputView[U], s Spec[U], a Arg) *ContractViolation {
	switch a.kind {
	case argI32, argI64, argU32, argU64, argPointer, argF64:
		// Numeric and pointer values default to right alignment even
		// when no presentation type letter was given.
		if s.Align == AlignNone {
			s.Align = AlignRight
		}
	}

	switch a.kind {
	case argBool:
		return renderBool(o, s, a.i64 != 0)
	case argChar:
		return renderChar(o, s, rune(a.i64))
	case argI32, argI64:
		return renderSignedInteger(o, s, a.i64)
	case argU32, argU64:
		return renderUnsignedInteger(o, s, a.u64)
	case argPointer:
		return renderPointer(o, s, a.u64)
	case argF64:
		return renderFloat(o, s, a.f64)
	case argStr:
		return renderString(o, s, a.str)
	case argCustom:
		return renderCustom(o, s, a.custom)
	default:
		return newViolation(KindTypeMismatch, "unrecognised argument kind")
	}
}

// renderBool implements spec.md §4.6's Bool renderer: the default
// presentation is the name, any integer radix renders 0/1.
func renderBool[U CodeUnit](o *OutputView[U], s Spec[U], v bool) *ContractViolation {
	switch {
	case s.Type == TypeNone:
		word := "false"
		if v {
			word = "true"
		}
		return renderString(o, s, word)
	case s.typeIsNumeric():
		var u uint64
		if v {
			u = 1
		}
		return renderUnsignedInteger(o, s, u)
	default:
		return newViolation(KindTypeMismatch, "bool argument incompatible with presentation type")
	}
}

// renderChar implements the Char renderer: a bare code unit by default,
// or the signed 32-bit value of the code point under an integer radix.
func renderChar[U CodeUnit](o *OutputView[U], s Spec[U], v rune) *ContractViolation {
	switch {
	case s.Type == TypeNone || s.Type == TypeChar:
		fillAfter, viol := writeAlignment(o, s, 1, false)
		if viol != nil {
			return viol
		}
		o.writeUnit(unit[U](byte(v)))
		o.fill(s.Fill, fillAfter)
		return nil
	case s.typeIsNumeric():
		return renderSignedInteger(o, s, int64(int32(v)))
	default:
		return newViolation(KindTypeMismatch, "char argument incompatible with presentation type")
	}
}

// renderSignedInteger implements the Integer renderer for a signed value:
// the sign is peeled off through Layout, the magnitude converts as
// unsigned (two's-complement MIN included, via the defined wraparound of
// uint64(-v)).
func renderSignedInteger[U CodeUnit](o *OutputView[U], s Spec[U], v int64) *ContractViolation {
	if s.Type != TypeNone && !s.typeIsNumeric() {
		return newViolation(KindTypeMismatch, "integer argument incompatible with presentation type")
	}
	negative := v < 0
	var mag uint64
	if negative {
		mag = uint64(-v)
	} else {
		mag = uint64(v)
	}
	return renderIntegerMagnitude(o, s, mag, negative)
}

// renderUnsignedInteger is renderSignedInteger for a value with no sign bit.
func renderUnsignedInteger[U CodeUnit](o *OutputView[U], s Spec[U], v uint64) *ContractViolation {
	if s.Type != TypeNone && !s.typeIsNumeric() {
		return newViolation(KindTypeMismatch, "integer argument incompatible with presentation type")
	}
	return renderIntegerMagnitude(o, s, v, false)
}

func renderIntegerMagnitude[U CodeUnit](o *OutputView[U], s Spec[U], mag uint64, negative bool) *ContractViolation {
	var digits int
	switch s.Type {
	case TypeHex:
		digits = countDigitsHex64(mag)
	case TypeOct:
		digits = countDigitsOct64(mag)
	case TypeBin:
		digits = countDigitsBin64(mag)
	default: // TypeNone or TypeDec
		digits = countDigitsDec64(mag)
	}

	fillAfter, viol := writeAlignment(o, s, digits, negative)
	if viol != nil {
		return viol
	}

	dst := o.reserveAt(digits)
	switch s.Type {
	case TypeHex:
		convertHex64(dst, mag, s.Uppercase)
	case TypeOct:
		convertOct64(dst, mag)
	case TypeBin:
		convertBin64(dst, mag)
	default:
		convertDec64(dst, mag)
	}

	o.fill(s.Fill, fillAfter)
	return nil
}

// renderPointer implements the Pointer renderer: always hexadecimal,
// regardless of the '#' flag (which only toggles the "0x" prefix).
func renderPointer[U CodeUnit](o *OutputView[U], s Spec[U], bits uint64) *ContractViolation {
	if s.Type != TypeNone && s.Type != TypePointer {
		return newViolation(KindTypeMismatch, "pointer argument incompatible with presentation type")
	}

	digits := countDigitsHex64(bits)
	fillAfter, viol := writeAlignment(o, s, digits, false)
	if viol != nil {
		return viol
	}

	dst := o.reserveAt(digits)
	convertHex64(dst, bits, s.Uppercase)

	o.fill(s.Fill, fillAfter)
	return nil
}

// renderString implements the String renderer: precision truncates, a
// missing precision copies everything.
func renderString[U CodeUnit](o *OutputView[U], s Spec[U], str string) *ContractViolation {
	if s.Type != TypeNone && s.Type != TypeStr {
		return newViolation(KindTypeMismatch, "string argument incompatible with presentation type")
	}

	n := len(str)
	if s.Precision >= 0 && s.Precision < n {
		n = s.Precision
	}

	fillAfter, viol := writeAlignment(o, s, n, false)
	if viol != nil {
		return viol
	}

	o.writeASCII(str[:n])
	o.fill(s.Fill, fillAfter)
	return nil
}

// renderCustom implements the Custom renderer: the spec must be empty
// (only an optional index), and the registered formatter is handed a
// sub-view of whatever output remains.
func renderCustom[U CodeUnit](o *OutputView[U], s Spec[U], c customPayload) *ContractViolation {
	if !s.Empty {
		return newViolation(KindTypeMismatch, "custom argument requires an empty spec")
	}

	entry, ok := lookupCustom[U](c.typ)
	if !ok {
		return newViolation(KindTypeMismatch, "no formatter registered for %s at this code unit width", c.typ)
	}

	result := entry.call(o.buf[o.pos:], c.ptr)
	written, ok := result.([]U)
	if !ok || len(written) > o.remaining() {
		return newViolation(KindTypeMismatch, "custom formatter for %s returned an invalid range", c.typ)
	}

	o.pos += len(written)
	return nil
}
