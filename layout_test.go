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

import "testing"

func TestWriteAlignmentNoOuterFill(t *testing.T) {
	buf := make([]byte, 4)
	o := newOutputView(buf)
	s := Spec[byte]{Fill: ' ', Width: 2, Precision: -1, Type: TypeDec}

	fillAfter, viol := writeAlignment(&o, s, 4, false)
	if viol != nil {
		t.Fatalf("unexpected violation: %v", viol)
	}
	if fillAfter != 0 {
		t.Fatalf("fillAfter = %d, want 0 (width <= effective)", fillAfter)
	}
}

func TestWriteAlignmentRight(t *testing.T) {
	buf := make([]byte, 6)
	o := newOutputView(buf)
	s := Spec[byte]{Fill: '*', Align: AlignRight, Width: 6, Precision: -1, Type: TypeDec}

	fillAfter, viol := writeAlignment(&o, s, 2, false)
	if viol != nil {
		t.Fatalf("unexpected violation: %v", viol)
	}
	if fillAfter != 0 {
		t.Fatalf("right align should put all fill before payload, fillAfter=%d", fillAfter)
	}
	if o.pos != 4 {
		t.Fatalf("expected 4 fill units written before payload, pos=%d", o.pos)
	}
	for _, b := range o.buf[:4] {
		if b != '*' {
			t.Fatalf("expected fill char '*' before payload, got %q", o.buf[:4])
		}
	}
}

func TestWriteAlignmentCenter(t *testing.T) {
	buf := make([]byte, 7)
	o := newOutputView(buf)
	s := Spec[byte]{Fill: '-', Align: AlignCenter, Width: 7, Precision: -1, Type: TypeStr}

	fillAfter, viol := writeAlignment(&o, s, 1, false)
	if viol != nil {
		t.Fatalf("unexpected violation: %v", viol)
	}
	// 6 fill units split 3 before / 3 after around a single payload unit.
	if o.pos != 3 || fillAfter != 3 {
		t.Fatalf("center split: pos=%d fillAfter=%d, want 3/3", o.pos, fillAfter)
	}
}

func TestWriteAlignmentNumericSignBeforeFill(t *testing.T) {
	buf := make([]byte, 6)
	o := newOutputView(buf)
	s := Spec[byte]{Fill: '0', Align: AlignNumeric, Width: 6, Precision: -1, Type: TypeDec}

	fillAfter, viol := writeAlignment(&o, s, 2, true)
	if viol != nil {
		t.Fatalf("unexpected violation: %v", viol)
	}
	if fillAfter != 0 {
		t.Fatalf("numeric align keeps all fill before the payload, got fillAfter=%d", fillAfter)
	}
	if o.buf[0] != '-' {
		t.Fatalf("sign must precede the zero-fill, got %q", o.buf[:o.pos])
	}
	for _, b := range o.buf[1:4] {
		if b != '0' {
			t.Fatalf("expected zero-fill between sign and payload, got %q", o.buf[:o.pos])
		}
	}
}

func TestWriteAlignmentOverflow(t *testing.T) {
	buf := make([]byte, 1)
	o := newOutputView(buf)
	s := Spec[byte]{Fill: ' ', Width: 1, Precision: -1, Type: TypeDec}

	if _, viol := writeAlignment(&o, s, 4, false); viol == nil || viol.Kind != KindOverflow {
		t.Fatalf("expected Overflow, got %v", viol)
	}
}
