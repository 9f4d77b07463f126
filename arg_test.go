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

func TestIntDemotion(t *testing.T) {
	if a := Int(42); a.kind != argI32 {
		t.Fatalf("small int should demote to argI32, got kind %d", a.kind)
	}
	if a := Int(int64(1) << 40); a.kind != argI64 {
		t.Fatalf("large int should stay argI64, got kind %d", a.kind)
	}
	if a := Int(int8(-5)); a.kind != argI32 || a.i64 != -5 {
		t.Fatalf("narrow signed int: kind=%d i64=%d", a.kind, a.i64)
	}
}

func TestUintDemotion(t *testing.T) {
	if a := Uint(uint32(100)); a.kind != argU32 {
		t.Fatalf("small uint should demote to argU32, got kind %d", a.kind)
	}
	if a := Uint(uint64(1) << 40); a.kind != argU64 {
		t.Fatalf("large uint should stay argU64, got kind %d", a.kind)
	}
}

func TestPointerBits(t *testing.T) {
	x := 7
	a := Pointer(&x)
	if a.u64 == 0 {
		t.Fatalf("expected non-zero pointer bit pattern")
	}
	if a := Pointer(nil); a.u64 != 0 {
		t.Fatalf("nil pointer should be bit pattern 0, got %d", a.u64)
	}
}

func TestFloat32Widens(t *testing.T) {
	a := Float32(1.5)
	if a.kind != argF64 || a.f64 != 1.5 {
		t.Fatalf("Float32(1.5) should widen to argF64(1.5), got kind=%d f64=%v", a.kind, a.f64)
	}
}

func TestBytesArg(t *testing.T) {
	a := Bytes([]byte("hi"))
	if a.kind != argStr || a.str != "hi" {
		t.Fatalf("Bytes([]byte(\"hi\")) = %+v", a)
	}
}
