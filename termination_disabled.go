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

//go:build usf_disable_termination

package usf

// dispatch never panics in this build: ModeAbort/ModeTerminate degrade to
// ModeThrow's behaviour (return the violation) since the termination path
// is compiled out (mirrors USF_DISABLE_TERMINATION in the original, which
// removes the std::terminate() call entirely rather than leaving it
// reachable).
func dispatch(mode Mode, v *ContractViolation) error {
	return v
}
