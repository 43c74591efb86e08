// Copyright 2024-2026 The Adaptrie Authors
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

package bench

import "errors"

var (
	// ErrUnknownKeyset is returned for a keyset name that is not supported.
	ErrUnknownKeyset = errors.New("unknown keyset")

	// ErrKeyLength is returned when the requested key length can not be produced.
	ErrKeyLength = errors.New("invalid key length")

	// ErrNoKeys is returned when a run is configured without any keys.
	ErrNoKeys = errors.New("bench needs at least one key")
)
