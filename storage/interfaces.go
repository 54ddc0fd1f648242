package storage

import (
	"context"

	"github.com/poiesic/recollect/core"
)

// ContentRepository provides operations for managing owner-scoped content
// records. Implementations must be thread-safe and support concurrent access.
//
// The uniqueness of the (owner, externalPostId) pair is the repository's own
// responsibility: Upsert must be atomic with respect to that key, so two
// concurrent calls for the same pair can never produce two records.
type ContentRepository interface {
	// Upsert creates the record for (owner, externalPostID) if absent, or
	// merges the supplied fields into the existing record.
	//
	// On creation, fields.MediaType is required; optional fields default to
	// empty, and SavedAt is set to the current time. On update, each pointer
	// field replaces the stored value only when non-nil (presence-based
	// overwrite, whole-value replacement); MediaType, MediaURL, and Permalink
	// are first-write-wins and never change after creation. LastProcessed is
	// bumped on both paths.
	//
	// Returns the resulting full record.
	Upsert(ctx context.Context, owner, externalPostID string, fields core.RecordUpsert) (*core.ContentRecord, error)

	// FindByOwnerAndExternalID retrieves the record for an external post.
	// Returns ErrNotFound if the owner has no record for it.
	FindByOwnerAndExternalID(ctx context.Context, owner, externalPostID string) (*core.ContentRecord, error)

	// GetRecord retrieves a single record by ID, scoped to the owner.
	// A record belonging to a different owner is indistinguishable from a
	// missing one: both return ErrNotFound.
	GetRecord(ctx context.Context, owner string, id core.ID) (*core.ContentRecord, error)

	// ListByOwner retrieves all records belonging to an owner.
	ListByOwner(ctx context.Context, owner string) ([]*core.ContentRecord, error)

	// Patch applies a partial update of the owner-editable fields, with the
	// same presence semantics as Upsert. Bumps LastProcessed.
	// Returns ErrNotFound if no record matches owner and id.
	Patch(ctx context.Context, owner string, id core.ID, patch core.RecordPatch) (*core.ContentRecord, error)

	// Delete removes a record, scoped to the owner. Deleting a record owned
	// by another owner reports ErrNotFound, never a permission error.
	Delete(ctx context.Context, owner string, id core.ID) error

	// Close closes the repository and releases resources.
	Close() error
}
