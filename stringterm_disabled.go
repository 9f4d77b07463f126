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

//go:build usf_disable_string_termination

package usf

// writeTermination is a no-op in this build: no trailing zero is
// reserved or written, and a buffer exactly matching the required size
// succeeds (mirrors USF_DISABLE_STRING_TERMINATION removing the
// "str[0] = CharT{}" write entirely rather than leaving it reachable).
func writeTermination[U CodeUnit](o *OutputView[U]) *ContractViolation {
	return nil
}