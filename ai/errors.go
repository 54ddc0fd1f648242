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


package ai

import "errors"

var (
	// ErrExtractionFailed indicates the image text recognition service failed.
	ErrExtractionFailed = errors.New("text extraction failed")

	// ErrTranscriptionFailed indicates the audio transcription service failed.
	ErrTranscriptionFailed = errors.New("transcription failed")

	// ErrClassificationFailed indicates the classification service failed or
	// returned a malformed response.
	ErrClassificationFailed = errors.New("classification failed")

	// ErrMalformedResponse indicates a service response could not be parsed.
	// Always wrapped in ErrClassificationFailed when surfaced.
	ErrMalformedResponse = errors.New("malformed service response")
)
