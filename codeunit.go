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

// CodeUnit is the element type of both the template and the output range.
// The engine is generic over the code unit width: narrow (byte), UTF-16
// (uint16), or wide (rune/int32). All of the ASCII punctuation the
// template grammar and renderers rely on ('0'-'9', 'a'-'z', 'A'-'Z', '.',
// '+', '-', ' ', '{', '}', 'e', 'E') compares equal to its narrow-character
// counterpart under any of these widths, since they all widen from byte
// values without truncation.
type CodeUnit interface {
	~uint8 | ~uint16 | ~int32
}

// unit converts a narrow ASCII byte into the code unit width U.
func unit[U CodeUnit](b byte) U {
	return U(b)
}

// fillUnits writes n copies of u into dst starting at position pos,
// returning the advanced position. The caller guarantees dst has room.
func fillUnits[U CodeUnit](dst []U, pos int, u U, n int) int {
	for i := 0; i < n; i++ {
		dst[pos+i] = u
	}
	return pos + n
}

// copyUnits copies src into dst starting at position pos, returning the
// advanced position. The caller guarantees dst has room for len(src).
func copyUnits[U CodeUnit](dst []U, pos int, src []U) int {
	copy(dst[pos:], src)
	return pos + len(src)
}

// copyASCII copies a narrow ASCII string into dst at the given width,
// returning the advanced position.
func copyASCII[U CodeUnit](dst []U, pos int, s string) int {
	for i := 0; i < len(s); i++ {
		dst[pos+i] = unit[U](s[i])
	}
	return pos + len(s)
}

// copyASCIIBytes is copyASCII for a []byte source, used by the float
// renderer to move its scratch digit buffer into the output without an
// intermediate string conversion.
func copyASCIIBytes[U CodeUnit](dst []U, pos int, s []byte) int {
	for i := 0; i < len(s); i++ {
		dst[pos+i] = unit[U](s[i])
	}
	return pos + len(s)
}
