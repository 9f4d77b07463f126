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

// Align selects how fill code units are distributed around a rendered
// payload. None defers to the per-kind default (Right for numerics and
// pointers, Left for char/string/bool-as-name).
type Align uint8

const (
	AlignNone Align = iota
	AlignLeft
	AlignRight
	AlignCenter
	AlignNumeric
)

// Sign selects which values get an explicit sign glyph.
type Sign uint8

const (
	SignNone Sign = iota
	SignMinus
	SignPlus
	SignSpace
)

// Type is the placeholder's requested presentation.
type Type uint8

const (
	TypeNone Type = iota
	TypeChar
	TypeDec
	TypeHex
	TypeOct
	TypeBin
	TypePointer
	TypeFixedF
	TypeScientificE
	TypeGeneralG
	TypeStr
)

// Spec is one placeholder's parsed state, produced by parseSpec and
// consumed by the renderer selected for the resolved argument.
type Spec[U CodeUnit] struct {
	Index     int  // -1 means "use the next sequential slot"
	HasIndex  bool
	Fill      U
	Align     Align
	Sign      Sign
	Hash      bool
	Width     int // 0..255
	Precision int // -1 (unspecified) .. 127
	Type      Type
	Uppercase bool
	Empty     bool // true iff the placeholder was exactly "{}" or "{N}"
}

func defaultSpec[U CodeUnit]() Spec[U] {
	return Spec[U]{
		Index:     -1,
		Fill:      unit[U](' '),
		Precision: -1,
		Empty:     true,
	}
}

// typeIsNumeric is true for the four integer presentations (Dec, Hex,
// Oct, Bin) only. The integer, bool and char renderers use it to accept
// an integer radix; '#' validity is checked by typeAllowsHash instead.
func (s Spec[U]) typeIsNumeric() bool {
	switch s.Type {
	case TypeDec, TypeHex, TypeOct, TypeBin:
		return true
	default:
		return false
	}
}

func (s Spec[U]) typeIsFloat() bool {
	switch s.Type {
	case TypeFixedF, TypeScientificE, TypeGeneralG:
		return true
	default:
		return false
	}
}

func (s Spec[U]) typeAllowsHash() bool {
	switch s.Type {
	case TypeHex, TypeOct, TypeBin, TypePointer, TypeFixedF, TypeScientificE, TypeGeneralG:
		return true
	default:
		return false
	}
}

// typeIsNumericRange spans every presentation type that is laid out like a
// number: the four integer radices, pointer, and the three float
// presentations. It is broader than typeIsNumeric and mirrors
// usf_arg_format.hpp's type_is_numeric(), whose range check (kIntegerDec..
// kFloatGeneral) happens to include kPointer between the integer radices
// and the float kinds. Explicit sign, AlignNumeric, and the default
// right-align all key off this wider set — confirmed against
// original_source, since spec.md's prose invariant ("numeric") is silent on
// whether floats/pointer qualify and common format strings like "{:+.2f}"
// or "{:010.2f}" only make sense if they do.
func (s Spec[U]) typeIsNumericRange() bool {
	switch s.Type {
	case TypeDec, TypeHex, TypeOct, TypeBin, TypePointer, TypeFixedF, TypeScientificE, TypeGeneralG:
		return true
	default:
		return false
	}
}

// effectiveAlign resolves AlignNone from the presentation type: Right for
// numeric/pointer/float types, Left otherwise. Numeric and pointer
// arguments with no type letter already arrive as AlignRight (renderArg).
func (s Spec[U]) effectiveAlign() Align {
	if s.Align != AlignNone {
		return s.Align
	}
	if s.typeIsNumericRange() {
		return AlignRight
	}
	return AlignLeft
}
