// Copyright 2026 Poiesic Systems
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


package core

import "errors"

// Domain validation errors
var (
	// ErrInvalidContentRecord indicates a ContentRecord failed validation.
	ErrInvalidContentRecord = errors.New("invalid content record")

	// ErrMissingOwner indicates the owner identifier is empty.
	ErrMissingOwner = errors.New("owner is required")

	// ErrMissingExternalPostID indicates the external post identifier is empty.
	ErrMissingExternalPostID = errors.New("external post id is required")

	// ErrInvalidMediaType indicates an unknown MediaType value.
	ErrInvalidMediaType = errors.New("invalid media type")

	// ErrEmptyPayload indicates an enrichment call carried no media bytes.
	ErrEmptyPayload = errors.New("media payload is required")

	// ErrInvalidTimestamp indicates a timestamp is in the future.
	ErrInvalidTimestamp = errors.New("timestamp cannot be in the future")
)
