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

// floatSupportEnabled reports whether this build carries the Float
// renderer and its ArgValue variant (ported from usf_config.hpp's
// USF_DISABLE_FLOAT_SUPPORT compile-time switch).
const floatSupportEnabled = true
