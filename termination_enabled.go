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

//go:build !usf_disable_termination

package usf

// dispatch raises v according to mode: ModeThrow returns it for the
// caller to propagate; ModeAbort/ModeTerminate panic immediately. No
// error is ever recovered locally (spec.md §7: "No error is recovered
// locally"). Ported from usf_config.hpp's USF_TERMINATE_ON_CONTRACT_VIOLATION
// path, gated here by the usf_disable_termination build tag rather than a
// preprocessor define.
func dispatch(mode Mode, v *ContractViolation) error {
	switch mode {
	case ModeAbort, ModeTerminate:
		panic(v)
	default:
		return v
	}
}
