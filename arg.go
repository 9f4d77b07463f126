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

import "reflect"

// argKind tags which payload field of Arg is active. Ported from
// usf_argument.hpp's Argument::TypeId enum; kept as an explicit
// discriminant rather than an interface{}/any so dispatch in render.go
// stays a plain switch instead of a type assertion per call.
type argKind uint8

const (
	argBool argKind = iota
	argChar
	argI32
	argU32
	argI64
	argU64
	argPointer
	argF64
	argStr
	argCustom
)

// Arg is the tagged union over every value kind the formatter accepts
// (spec.md §3 ArgValue). Construct one with the Bool/Char/Int/Uint/
// Pointer/Float/String/Custom helpers below; there is no exported field
// access, matching the source's private union.
type Arg struct {
	kind   argKind
	i64    int64
	u64    uint64
	f64    float64
	str    string
	custom customPayload
}

type customPayload struct {
	typ reflect.Type
	ptr any
}

// Bool wraps a boolean argument.
func Bool(v bool) Arg {
	var i int64
	if v {
		i = 1
	}
	return Arg{kind: argBool, i64: i}
}

// Char wraps a single code point argument.
func Char(v rune) Arg {
	return Arg{kind: argChar, i64: int64(v)}
}

// signedInt is the set of Go signed integer kinds accepted by Int.
type signedInt interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// unsignedInt is the set of Go unsigned integer kinds accepted by Uint.
type unsignedInt interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Int wraps a signed integer of any width. Narrower types widen to the
// 32-bit variant; a 64-bit value that fits losslessly in the 32-bit
// range is demoted to it, matching usf_argument.hpp's make_argument
// overload set (the "shorten hot paths" rule of spec.md §3).
func Int[T signedInt](v T) Arg {
	i := int64(v)
	if i >= -2147483648 && i <= 2147483647 {
		return Arg{kind: argI32, i64: i}
	}
	return Arg{kind: argI64, i64: i}
}

// Uint wraps an unsigned integer of any width, with the same 32/64-bit
// demotion rule as Int.
func Uint[T unsignedInt](v T) Arg {
	u := uint64(v)
	if u <= 4294967295 {
		return Arg{kind: argU32, u64: u}
	}
	return Arg{kind: argU64, u64: u}
}

// Pointer wraps a raw pointer's bit pattern for hex rendering.
func Pointer(v any) Arg {
	return Arg{kind: argPointer, u64: pointerBits(v)}
}

// Float32 wraps a single-precision float, widening it to double
// (spec.md §3: "A single-precision float widens to F64").
func Float32(v float32) Arg {
	return Arg{kind: argF64, f64: float64(v)}
}

// Float64 wraps a double-precision float.
func Float64(v float64) Arg {
	return Arg{kind: argF64, f64: v}
}

// String wraps a string (or []byte, via the String helper's caller)
// argument.
func String(v string) Arg {
	return Arg{kind: argStr, str: v}
}

// Bytes wraps a []byte argument as a string value, matching usflib's
// acceptance of any type convertible to its string view.
func Bytes(v []byte) Arg {
	return Arg{kind: argStr, str: string(v)}
}

// CustomFormatter renders a value of type T into dst, returning the
// written prefix. It corresponds to usf_arg_custom_type.hpp's delegate
// signature and the usf::Formatter<CharT,T>::format_to trait.
type CustomFormatter[U CodeUnit, T any] func(dst []U, value *T) []U

// Custom wraps a value of type T together with its registered
// formatter, resolved by reflect.Type at render time (see custom.go;
// DESIGN.md documents why a runtime registry replaces the source's
// compile-time function-pointer template).
func Custom[T any](value *T) Arg {
	return Arg{kind: argCustom, custom: customPayload{typ: reflect.TypeOf(value).Elem(), ptr: value}}
}
