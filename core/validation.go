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

import (
	"fmt"
	"time"
)

// ValidateContentRecord validates a ContentRecord according to domain rules.
//
// Validation rules:
//   - Owner must not be empty
//   - ExternalPostId must not be empty
//   - MediaType must be a known value
//   - SavedAt must not be in the future
//
// NOT validated (populated by enrichment or the owner):
//   - ExtractedText / Transcription (empty until the relevant stage ran)
//   - Categories / Tags / Notes
func ValidateContentRecord(record *ContentRecord) error {
	if record == nil {
		return fmt.Errorf("%w: record is nil", ErrInvalidContentRecord)
	}

	if record.Owner == "" {
		return fmt.Errorf("%w: %w", ErrInvalidContentRecord, ErrMissingOwner)
	}

	if record.ExternalPostId == "" {
		return fmt.Errorf("%w: %w", ErrInvalidContentRecord, ErrMissingExternalPostID)
	}

	if err := ValidateMediaType(record.MediaType); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidContentRecord, err)
	}

	if !IsValidTimestamp(record.SavedAt) {
		return fmt.Errorf("%w: %w", ErrInvalidContentRecord, ErrInvalidTimestamp)
	}

	return nil
}

// ValidateMediaType validates that a MediaType has a known value.
func ValidateMediaType(mediaType MediaType) error {
	if mediaType != MediaTypeImage && mediaType != MediaTypeVideo && mediaType != MediaTypeAlbum {
		return fmt.Errorf("%w: value %d", ErrInvalidMediaType, mediaType)
	}
	return nil
}

// ValidateUpsertKey validates the identifying parts of a save request.
// MediaType is checked separately by the store, and only on record creation.
func ValidateUpsertKey(owner, externalPostID string) error {
	if owner == "" {
		return ErrMissingOwner
	}
	if externalPostID == "" {
		return ErrMissingExternalPostID
	}
	return nil
}

// IsValidTimestamp checks if a timestamp is valid (not in the future).
func IsValidTimestamp(ts time.Time) bool {
	return !ts.After(time.Now())
}
