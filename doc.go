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

// Package usf is a bounded, allocation-free string formatter for
// constrained environments. It renders a format template and a
// heterogeneous argument pack into a caller-owned buffer and never
// allocates on the core rendering path.
//
// The formatter is generic over the code unit width (bytes, UTF-16
// units, or runes) via the CodeUnit constraint, so the same engine
// serves both narrow and wide output buffers.
package usf
