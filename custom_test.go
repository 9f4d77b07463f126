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

import (
	"strconv"
	"testing"
)

type point struct {
	X, Y int
}

func formatPoint[U CodeUnit](dst []U, p *point) []U {
	s := "(" + strconv.Itoa(p.X) + "," + strconv.Itoa(p.Y) + ")"
	return dst[:copyASCII(dst, 0, s)]
}

func TestRegisterAndFormatCustom(t *testing.T) {
	Register[byte](formatPoint[byte])

	p := point{X: 3, Y: -4}
	buf := make([]byte, 32)
	n, err := Format(buf, []byte("at {}"), []Arg{Custom(&p)})
	if err != nil {
		t.Fatalf("Format with custom type: %v", err)
	}
	if got := string(buf[:n]); got != "at (3,-4)" {
		t.Fatalf("Format with custom type = %q, want %q", got, "at (3,-4)")
	}
}

func TestCustomRejectsNonEmptySpec(t *testing.T) {
	Register[byte](formatPoint[byte])

	p := point{X: 1, Y: 1}
	buf := make([]byte, 32)
	_, err := Format(buf, []byte("{:d}"), []Arg{Custom(&p)})
	if err == nil {
		t.Fatalf("expected TypeMismatch for a non-empty spec on a custom argument")
	}
	if cv, ok := err.(*ContractViolation); !ok || cv.Kind != KindTypeMismatch {
		t.Fatalf("expected TypeMismatch, got %v", err)
	}
}

func TestListCustomTypes(t *testing.T) {
	Register[byte](formatPoint[byte])
	names := ListCustomTypes[byte]()
	found := false
	for _, n := range names {
		if n == "usf.point" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected %q among registered custom types, got %v", "usf.point", names)
	}
}
