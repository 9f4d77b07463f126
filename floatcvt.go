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

// floatSignificandCap is the maximum significand length usf_float.hpp
// documents ("34 characters should be the maximum size needed"); a few
// extra bytes of slack are kept for the rounding carry-out digit.
const floatSignificandCap = 36

// convertFloat extracts the decimal significand of a finite, non-negative
// value and rounds it to round_index digits following usf_float.hpp's
// Float::convert. It writes ASCII digits into significand (which must
// have capacity floatSignificandCap) and returns (exponent, size): value
// ≈ significand[0:size] × 10^(exponent-(size-1)).
func convertFloat(significand []byte, value float64, formatFixed bool, precision int) (exponent int, size int) {
	var ipart, fpart uint64
	var ipartDigits, fpartDigits int
	var fpartPadding int

	if value < 1 {
		// Negative exponent.
		value *= 1e19

		fpart = uint64(value)
		fpartDigits = countDigitsDec64(fpart)

		exponent = fpartDigits - 20
		fpartPadding = -exponent - 1

		if fpartPadding > 14-precision {
			fpart = uint64(value * float64(pow10Uint64[fpartPadding]))
			fpartDigits = countDigitsDec64(fpart)
		}
	} else {
		// Positive exponent.
		ipart = uint64(value)
		ipartDigits = countDigitsDec64(ipart)

		fpart = uint64((value - float64(ipart)) * 1e14)
		fpartDigits = countDigitsDec64(fpart)

		exponent = ipartDigits - 1
		fpartPadding = 14 - fpartDigits
	}

	roundIndex := 1 + precision
	if formatFixed {
		roundIndex += exponent
	}

	if roundIndex < 0 {
		// Specified precision higher than converted value: all zeros.
		significand[0] = '0'
		return 0, 1
	}

	pos := 0

	if ipart != 0 {
		pos = ipartDigits
		convertDec64(significand[:pos], ipart)
	}

	if fpart != 0 {
		if ipart != 0 {
			for i := 0; i < fpartPadding; i++ {
				significand[pos+i] = '0'
			}
			pos += fpartPadding
		}
		convertDec64(significand[pos:pos+fpartDigits], fpart)
		pos += fpartDigits
	}

	significandSize := trimTrailingZeros(significand[:pos])

	if significandSize <= roundIndex {
		// Rounding not needed.
		return exponent, significandSize
	}

	return roundFloat(significand, significandSize, exponent, formatFixed, roundIndex)
}

// roundFloat applies banker's rounding (round half to even) at
// round_index, propagating carry, following usf_float.hpp's Float::round.
func roundFloat(significand []byte, significandSize, exponent int, formatFixed bool, roundIndex int) (int, int) {
	roundUp := false

	if roundIndex == significandSize-1 {
		prevDigitOdd := false
		if roundIndex > 0 {
			prevDigitOdd = (('0' - significand[roundIndex-1]) & 1) != 0
		}
		d := significand[roundIndex]
		if d > '5' || (d == '5' && prevDigitOdd) {
			roundUp = true
		}
	} else if significand[roundIndex] >= '5' {
		// Trailing zeros were already trimmed, so any digit beyond the
		// last significand position implies a non-zero follow-up.
		roundUp = true
	}

	if roundUp {
		carry := false
		if roundIndex > 0 {
			i := roundIndex - 1
			for {
				if significand[i] < '9' {
					carry = false
					significand[i]++
				} else {
					carry = true
					significand[i] = '0'
				}
				i--
				if i < 0 || !carry {
					break
				}
			}
		} else {
			carry = true
		}

		if carry {
			significand[0] = '1'
			return exponent + 1, 1
		}
	} else if roundIndex == 0 {
		// Rounds down to nothing at this precision.
		significand[0] = '0'
		return 0, 1
	}

	if formatFixed {
		return exponent, roundIndex
	}

	return exponent, trimTrailingZeros(significand[:roundIndex])
}

// trimTrailingZeros truncates trailing '0' digits, always keeping at
// least one, mirroring usf_float.hpp's remove_trailing_zeros.
func trimTrailingZeros(significand []byte) int {
	n := len(significand)
	for n > 1 && significand[n-1] == '0' {
		n--
	}
	return n
}
