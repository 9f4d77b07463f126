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

//go:build !usf_disable_float

package usf

import "testing"

func TestConvertFloatFixed(t *testing.T) {
	cases := []struct {
		value     float64
		precision int
		wantSig   string
		wantExp   int
	}{
		{1.234, 6, "1234", 0},
		{100, 2, "1", 2},
		{0.05, 3, "5", -2},
	}
	for _, c := range cases {
		var sig [floatSignificandCap]byte
		exponent, size := convertFloat(sig[:], c.value, true, c.precision)
		got := string(sig[:size])
		if got != c.wantSig || exponent != c.wantExp {
			t.Errorf("convertFloat(%v, fixed, %d) = (%q, exp %d), want (%q, exp %d)",
				c.value, c.precision, got, exponent, c.wantSig, c.wantExp)
		}
	}
}

func TestBankersRoundingTieToEven(t *testing.T) {
	// v = k + 0.5 with precision 0 rounds to the nearest even integer.
	cases := []struct {
		value float64
		want  string
	}{
		{0.5, "0"},
		{1.5, "2"},
		{2.5, "2"},
		{3.5, "4"},
	}
	for _, c := range cases {
		var sig [floatSignificandCap]byte
		exponent, size := convertFloat(sig[:], c.value, true, 0)
		got := string(sig[:size])
		_ = exponent
		if got != c.want {
			t.Errorf("round-half-to-even convertFloat(%v, precision 0) = %q, want %q", c.value, got, c.want)
		}
	}
}

func TestTrimTrailingZeros(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"1200", 2}, {"1000", 1}, {"1", 1}, {"120", 2},
	}
	for _, c := range cases {
		buf := []byte(c.in)
		if got := trimTrailingZeros(buf); got != c.want {
			t.Errorf("trimTrailingZeros(%q) = %d, want %d", c.in, got, c.want)
		}
	}
}
