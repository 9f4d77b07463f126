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

//go:build usf_disable_float

package usf

// floatSupportEnabled mirrors USF_DISABLE_FLOAT_SUPPORT: this build omits
// FloatCvt and the Float renderer entirely.
const floatSupportEnabled = false

// renderFloat stands in for floatrender.go's real renderer when float
// support is compiled out: any F64 argument is a contract violation
// rather than a silent truncation.
func renderFloat[U CodeUnit](o *OutputView[U], s Spec[U], v float64) *ContractViolation {
	return newViolation(KindTypeMismatch, "float support disabled at build time (usf_disable_float)")
}
