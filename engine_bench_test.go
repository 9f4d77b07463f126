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

// BenchmarkFormatMixed mirrors unit_tests_benchmarks.cpp's usf::format_to
// timing loop: a single template exercising float, hex, scientific,
// string and char rendering side by side into a fixed-size buffer.
func BenchmarkFormatMixed(b *testing.B) {
	buf := make([]byte, 128)
	args := []Arg{
		Float64(1.234),
		Uint(uint32(56789)),
		Float64(-0.00393333),
		String("str"),
		Uint(uint32(1000)),
		Char('X'),
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Sprintfb(buf, "{:f}|{:08x}|{:e}|{}|{:016x}|{:c}|%|{{|}}", args...); err != nil {
			b.Fatalf("Sprintfb: %v", err)
		}
	}
}

func BenchmarkFormatDecimalInteger(b *testing.B) {
	buf := make([]byte, 32)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Sprintfb(buf, "{:014d}", Int(-123)); err != nil {
			b.Fatalf("Sprintfb: %v", err)
		}
	}
}

func BenchmarkFormatString(b *testing.B) {
	buf := make([]byte, 32)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Sprintfb(buf, "{0}{1}{0}", String("abra"), String("cad")); err != nil {
			b.Fatalf("Sprintfb: %v", err)
		}
	}
}
