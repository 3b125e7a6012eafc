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

package plr

import "errors"

// ErrPrecisionExhausted is returned when gamma is too small relative to a
// point's y value to be representable as a distinct binary64 number
// (y+gamma == y or y-gamma == y under RelativeEqual).
var ErrPrecisionExhausted = errors.New("plr: gamma too small relative to y for binary64 precision")

// ErrDomainViolation is returned for caller errors that are not about
// numerical precision: a non-positive gamma, or (for splines) a
// non-strictly-increasing x.
var ErrDomainViolation = errors.New("plr: domain violation")
