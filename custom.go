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

import (
	"reflect"
	"sync"
)

// customEntry is the type-erased form of a CustomFormatter, stored in
// the registry keyed by (code unit width, value type). Ported from
// usf_arg_custom_type.hpp's ArgCustomType delegate, which pairs a typed
// function pointer with an opaque object pointer; here the function is
// erased behind a closure instead of a raw function pointer cast,
// since Go has no compile-time template instantiation to do it for us
// (see DESIGN.md, Open Question 4).
type customEntry struct {
	call     func(dst, value any) any
	typeName string
}

type registryKey struct {
	unit  reflect.Type
	value reflect.Type
}

var (
	registryMu sync.RWMutex
	registry   = map[registryKey]customEntry{}
)

// Register installs fn as the formatter for values of type *T rendered
// at code unit width U. Calling Register again for the same (U, T) pair
// replaces the previous formatter. Safe for concurrent use (guarded by
// registryMu, since multiple packages' init() may race to register
// against the same process-wide table).
func Register[U CodeUnit, T any](fn CustomFormatter[U, T]) {
	var u U
	key := registryKey{
		unit:  reflect.TypeOf(u),
		value: reflect.TypeOf((*T)(nil)).Elem(),
	}

	entry := customEntry{
		typeName: key.value.String(),
		call: func(dst, value any) any {
			return fn(dst.([]U), value.(*T))
		},
	}

	registryMu.Lock()
	defer registryMu.Unlock()
	registry[key] = entry
}

// lookupCustom resolves the formatter registered for (U, typ), if any.
func lookupCustom[U CodeUnit](typ reflect.Type) (customEntry, bool) {
	var u U
	registryMu.RLock()
	defer registryMu.RUnlock()
	entry, ok := registry[registryKey{unit: reflect.TypeOf(u), value: typ}]
	return entry, ok
}

// ListCustomTypes returns the value type names with a formatter
// registered for code unit width U, sorted is not guaranteed (map
// iteration order); callers that need stable output should sort.
// Grounded on arch.go's ListArchitectures() registry-introspection
// helper, repurposed for the custom-type registry.
func ListCustomTypes[U CodeUnit]() []string {
	var u U
	uType := reflect.TypeOf(u)

	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(registry))
	for key, entry := range registry {
		if key.unit == uType {
			names = append(names, entry.typeName)
		}
	}
	return names
}
