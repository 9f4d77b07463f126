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

package main

import "github.com/hparracho/usflib"

type scenario struct {
	name     string
	template string
	args     []usf.Arg
	want     string
}

// scenarios is the S1-S8 table from spec.md §8, used by `usfcli selftest`
// as a smoke test against whatever build of the engine (float/termination
// build tags included) is linked in.
var scenarios = []scenario{
	{"S1", "{0}{1}{0}", []usf.Arg{usf.String("abra"), usf.String("cad")}, "abracadabra"},
	{"S2", "{:014d}", []usf.Arg{usf.Int(-123)}, "-0000000000123"},
	{"S3", "{:*>+#14x}", []usf.Arg{usf.Int(123)}, "*********+0x7b"},
	{"S4", "{:^14c}", []usf.Arg{usf.Char('N')}, "      N       "},
	{"S5", "{:#.0f}", []usf.Arg{usf.Float64(1.0)}, "1."},
	{
		"S6",
		"{:f}|{:08x}|{:e}|{}|{:016x}|{:c}|%|{{|}}",
		[]usf.Arg{
			usf.Float64(1.234),
			usf.Uint(uint32(56789)),
			usf.Float64(-0.00393333),
			usf.String("str"),
			usf.Uint(uint32(1000)),
			usf.Char('X'),
		},
		"1.234000|0000ddd5|-3.933330e-03|str|00000000000003e8|X|%|{|}",
	},
	{"S7", "{:#b}", []usf.Arg{usf.Uint(uint32(123))}, "0b1111011"},
	{"S8", "{:.3s}", []usf.Arg{usf.String("abcdef")}, "abc"},
}
