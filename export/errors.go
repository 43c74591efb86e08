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

package export

import "errors"

var (
	// ErrUnknownFormat is returned for an output format name that is not supported.
	ErrUnknownFormat = errors.New("unknown output format")

	// ErrUnknownCompression is returned for a compression algorithm that is not supported.
	ErrUnknownCompression = errors.New("unknown compression algorithm")

	// ErrBadMetadata is returned when a compressed payload has a truncated header.
	ErrBadMetadata = errors.New("export metadata incomplete")

	// ErrSizeMismatch is returned when a decompressed payload does not match its recorded size.
	ErrSizeMismatch = errors.New("decompressed size mismatch")
)
