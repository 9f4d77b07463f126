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

func mustParseSpec(t *testing.T, body string) Spec[byte] {
	t.Helper()
	data := append([]byte(body), '}')
	tv := newTemplateView(data)
	s, viol := parseSpec(&tv)
	if viol != nil {
		t.Fatalf("parseSpec(%q) failed: %v", body, viol)
	}
	return s
}

func TestParseSpecEmpty(t *testing.T) {
	s := mustParseSpec(t, "")
	if !s.Empty || s.HasIndex || s.Width != 0 || s.Precision != -1 || s.Type != TypeNone {
		t.Fatalf("unexpected empty spec: %+v", s)
	}
}

func TestParseSpecIndex(t *testing.T) {
	s := mustParseSpec(t, "2")
	if !s.HasIndex || s.Index != 2 {
		t.Fatalf("index spec: %+v", s)
	}
}

func TestParseSpecFillAlign(t *testing.T) {
	s := mustParseSpec(t, ":*>14x")
	if s.Fill != '*' || s.Align != AlignRight || s.Width != 14 || s.Type != TypeHex {
		t.Fatalf("fill/align spec: %+v", s)
	}
}

func TestParseSpecZeroFillWins(t *testing.T) {
	// zero-fill always forces AlignNumeric + '0' fill, even though no
	// align glyph was given explicitly (spec.md §4.2 precedence rule).
	s := mustParseSpec(t, ":014d")
	if s.Fill != '0' || s.Align != AlignNumeric || s.Width != 14 || s.Type != TypeDec {
		t.Fatalf("zero-fill spec: %+v", s)
	}
}

func TestParseSpecSignHashPrecision(t *testing.T) {
	s := mustParseSpec(t, ":+#.3f")
	if s.Sign != SignPlus || !s.Hash || s.Precision != 3 || s.Type != TypeFixedF {
		t.Fatalf("sign/hash/precision spec: %+v", s)
	}
}

func TestParseSpecUppercaseType(t *testing.T) {
	s := mustParseSpec(t, ":X")
	if s.Type != TypeHex || !s.Uppercase {
		t.Fatalf("uppercase type spec: %+v", s)
	}
}

func TestParseSpecRejectsUnterminated(t *testing.T) {
	data := []byte(":d")
	tv := newTemplateView(data)
	if _, viol := parseSpec(&tv); viol == nil || viol.Kind != KindSpec {
		t.Fatalf("expected SpecError for unterminated spec, got %v", viol)
	}
}

func TestParseSpecRejectsSignOnString(t *testing.T) {
	data := []byte(":+s}")
	tv := newTemplateView(data)
	if _, viol := parseSpec(&tv); viol == nil || viol.Kind != KindSpec {
		t.Fatalf("expected SpecError for '+' on string type, got %v", viol)
	}
}

func TestParseSpecRejectsHashOnDecimal(t *testing.T) {
	data := []byte(":#d}")
	tv := newTemplateView(data)
	if _, viol := parseSpec(&tv); viol == nil || viol.Kind != KindSpec {
		t.Fatalf("expected SpecError for '#' on decimal type, got %v", viol)
	}
}

func TestParseSpecRejectsPrecisionWithNoTypeLetter(t *testing.T) {
	// Precision is only valid for float/string presentations; a bare
	// ".5" with no type letter parses to TypeNone, which must still be
	// rejected regardless of what kind of argument eventually fills it.
	data := []byte(":.5}")
	tv := newTemplateView(data)
	if _, viol := parseSpec(&tv); viol == nil || viol.Kind != KindSpec {
		t.Fatalf("expected SpecError for precision with no presentation type, got %v", viol)
	}
}

func TestParseSpecRejectsUnknownType(t *testing.T) {
	data := []byte(":q}")
	tv := newTemplateView(data)
	if _, viol := parseSpec(&tv); viol == nil || viol.Kind != KindSpec {
		t.Fatalf("expected SpecError for unknown type letter, got %v", viol)
	}
}

func TestParseSpecWidthBoundary(t *testing.T) {
	if s := mustParseSpec(t, ":255"); s.Width != 255 {
		t.Fatalf("width 255 rejected: %+v", s)
	}
	data := []byte(":256}")
	tv := newTemplateView(data)
	if _, viol := parseSpec(&tv); viol == nil {
		t.Fatalf("expected SpecError for width 256")
	}
}

func TestParseSpecPrecisionBoundary(t *testing.T) {
	if s := mustParseSpec(t, ":.127f"); s.Precision != 127 {
		t.Fatalf("precision 127 rejected: %+v", s)
	}
	data := []byte(":.128f}")
	tv := newTemplateView(data)
	if _, viol := parseSpec(&tv); viol == nil {
		t.Fatalf("expected SpecError for precision 128")
	}
}
