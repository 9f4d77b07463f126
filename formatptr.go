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

import "unsafe"

// FormatPtr is the pointer/length overload usf.hpp additionally provides
// beyond the span-based convenience wrappers: a C-style "buffer start +
// capacity" call site for code that already carries a raw pointer and
// count (e.g. a cgo boundary or a fixed-size embedded buffer). It returns
// a pointer one past the last code unit written, matching the original's
// CharT* return. unsafe is confined to this one file.
func FormatPtr[U CodeUnit](ptr *U, n int, template []U, args []Arg, opts ...Option) (*U, error) {
	output := unsafe.Slice(ptr, n)
	written, err := Format(output, template, args, opts...)
	if err != nil {
		return ptr, err
	}
	var zero U
	return (*U)(unsafe.Add(unsafe.Pointer(ptr), written*int(unsafe.Sizeof(zero)))), nil
}
