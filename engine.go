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

import "github.com/samber/lo"

// maxArgCount mirrors usf_main.hpp's static_assert(sizeof...(Args) < 128).
const maxArgCount = 127

// Option configures a single Format/FormatTo call. The zero Option value
// behaves exactly like DefaultMode.
type Option struct {
	mode    Mode
	hasMode bool
}

// WithMode overrides the contract-violation dispatch mode for one call.
func WithMode(m Mode) Option {
	return Option{mode: m, hasMode: true}
}

func resolveMode(opts []Option) Mode {
	mode := DefaultMode
	for _, o := range opts {
		if o.hasMode {
			mode = o.mode
		}
	}
	return mode
}

// Format renders template against args into output, returning the number
// of code units written. It never allocates. Ported from usf_main.hpp's
// basic_format_to (spec.md §6).
func Format[U CodeUnit](output []U, template []U, args []Arg, opts ...Option) (int, error) {
	mode := resolveMode(opts)

	if len(args) > maxArgCount {
		return 0, dispatch(mode, newViolation(KindArgIndex, "argument count %d exceeds %d", len(args), maxArgCount))
	}

	o := newOutputView(output)
	t := newTemplateView(template)
	nextIndex := 0

	for !t.empty() {
		c, _ := t.at(0)

		if c == unit[U]('{') {
			if c1, ok := t.at(1); ok && c1 == unit[U]('{') {
				if viol := o.reserve(1); viol != nil {
					return len(o.written()), dispatch(mode, viol)
				}
				o.writeUnit(unit[U]('{'))
				t.advance(2)
				continue
			}

			t.advance(1)
			spec, viol := parseSpec(&t)
			if viol != nil {
				return len(o.written()), dispatch(mode, viol)
			}

			idx := lo.Ternary(spec.HasIndex, spec.Index, nextIndex)
			if !spec.HasIndex {
				nextIndex++
			}
			if idx < 0 || idx >= len(args) {
				return len(o.written()), dispatch(mode, newViolation(KindArgIndex, "argument index %d out of range (have %d)", idx, len(args)))
			}

			if viol := renderArg(&o, spec, args[idx]); viol != nil {
				return len(o.written()), dispatch(mode, viol)
			}
			continue
		}

		if c == unit[U]('}') {
			if c1, ok := t.at(1); ok && c1 == unit[U]('}') {
				if viol := o.reserve(1); viol != nil {
					return len(o.written()), dispatch(mode, viol)
				}
				o.writeUnit(unit[U]('}'))
				t.advance(2)
				continue
			}
			return len(o.written()), dispatch(mode, newViolation(KindSpec, "'}' without matching '{'"))
		}

		if viol := o.reserve(1); viol != nil {
			return len(o.written()), dispatch(mode, viol)
		}
		o.writeUnit(c)
		t.advance(1)
	}

	if viol := writeTermination(&o); viol != nil {
		return len(o.written()), dispatch(mode, viol)
	}

	return len(o.written()), nil
}

// FormatTo is Format with the template given as a Go string, converted to
// width U first.
func FormatTo[U CodeUnit](output []U, template string, args []Arg, opts ...Option) (int, error) {
	tmpl := make([]U, len(template))
	for i := 0; i < len(template); i++ {
		tmpl[i] = unit[U](template[i])
	}
	return Format(output, tmpl, args, opts...)
}

// Sprintf is an allocating convenience wrapper over FormatTo[byte]. It
// sits outside the allocation-free core described in spec.md §1.
func Sprintf(template string, args ...Arg) (string, error) {
	buf := make([]byte, len(template)+64*len(args)+64)
	for {
		n, err := FormatTo[byte](buf, template, args)
		if err == nil {
			return string(buf[:n]), nil
		}
		var cv *ContractViolation
		if !asOverflow(err, &cv) {
			return "", err
		}
		buf = make([]byte, len(buf)*2)
	}
}

// Sprintfb is Sprintf rendering directly into a caller-owned byte slice
// instead of allocating a fresh one; still narrow-only.
func Sprintfb(dst []byte, template string, args ...Arg) (int, error) {
	return FormatTo[byte](dst, template, args)
}

func asOverflow(err error, out **ContractViolation) bool {
	cv, ok := err.(*ContractViolation)
	if !ok || cv.Kind != KindOverflow {
		return false
	}
	*out = cv
	return true
}
