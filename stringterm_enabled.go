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

//go:build !usf_disable_string_termination

package usf

// writeTermination reserves and writes a trailing zero code unit at the
// current output head, mirroring basic_format_to's "str[0] = CharT{}"
// after processing (usf_main.hpp). The zero is not part of the returned
// written range: only the reservation advances nothing in o.written(),
// it just consumes one slot of capacity, matching the source writing
// past str.begin() without advancing it. Reserving fails with
// KindOverflow exactly when the buffer has no room left for the
// terminator (spec.md §8: "buffer exactly equal to required size is
// Overflow if termination is enabled").
func writeTermination[U CodeUnit](o *OutputView[U]) *ContractViolation {
	if viol := o.reserve(1); viol != nil {
		return viol
	}
	o.buf[o.pos] = unit[U](0)
	return nil
}