// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package fast

import "errors"

// ErrDomainViolation is returned when builder inputs violate the required
// shape: unequal lengths, empty arrays, non-sorted keys, or duplicate
// keys.
var ErrDomainViolation = errors.New("fast: domain violation")

// ErrOverflow is returned when an internal layer's child offset does
// not fit in a u32, which matters only when T is u32.
var ErrOverflow = errors.New("fast: child offset overflows u32")

// ErrMalformedTree is the panic value raised when a lookup finds an
// internal page with no key greater than or equal to the query, which
// cannot happen for a tree built by Build.
var ErrMalformedTree = errors.New("fast: malformed tree")
