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


// Package storage provides the storage abstraction layer for recollect.
//
// This package defines the repository interface that decouples the storage
// implementation from the enrichment and API logic, allowing different
// backends (BadgerDB, in-memory) to be used interchangeably.
//
// # Constructor Return Type Pattern
//
// Public constructors return the interface type to enforce abstraction and
// enable alternative backend implementations:
//
//	repo, err := badger.NewContentRepository(backend)  // storage.ContentRepository
//
// Internal package constructors may return concrete types since they're only
// used within the implementation package.
//
// # Merge Semantics
//
// The central operation is ContentRepository.Upsert: create-if-absent, else
// merge. Merging is presence-based — a request field replaces the stored
// value only when the caller supplied it at all, and replacement is
// whole-value (supplying two tags replaces the stored tag list, it does not
// append). An explicitly supplied empty value overwrites; an omitted field
// never does. See core.RecordUpsert.
//
// # Thread Safety
//
// All repository implementations must be thread-safe. The uniqueness of
// (owner, externalPostId) is enforced atomically inside the repository, not
// by caller-side check-then-write.
//
// # Context Support
//
// All repository methods accept context.Context for cancellation and timeout
// support. Pass context.Background() for operations without specific timeout
// requirements.
package storage
