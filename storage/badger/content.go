package badger

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/poiesic/recollect/core"
	"github.com/poiesic/recollect/storage"
)

// maxTxnRetries bounds how often a conflicting upsert is replayed before
// the conflict is surfaced to the caller.
const maxTxnRetries = 16

// ContentRepository implements storage.ContentRepository for BadgerDB.
type ContentRepository struct {
	backend *Backend
}

var _ storage.ContentRepository = (*ContentRepository)(nil)

// NewContentRepository creates a new ContentRepository.
func NewContentRepository(backend *Backend) (*ContentRepository, error) {
	return &ContentRepository{
		backend: backend,
	}, nil
}

// Close releases resources. ContentRepository has no resources to release.
func (r *ContentRepository) Close() error {
	return nil
}

// Upsert creates or merges the record for (owner, externalPostID).
//
// Record IDs are derived from the (owner, externalPostID) pair, so both
// callers racing on the same pair target the same key and BadgerDB's
// optimistic concurrency detects the collision. The losing transaction is
// replayed against the winner's committed state, which turns a concurrent
// create-create race into exactly one create followed by one merge.
func (r *ContentRepository) Upsert(ctx context.Context, owner, externalPostID string, fields core.RecordUpsert) (*core.ContentRecord, error) {
	if err := core.ValidateUpsertKey(owner, externalPostID); err != nil {
		return nil, err
	}

	id := core.IDForPost(owner, externalPostID)
	var result *core.ContentRecord

	for attempt := 0; attempt < maxTxnRetries; attempt++ {
		err := r.backend.WithTx(func(tx *badger.Txn) error {
			key := makeContentRecordKey(id)
			existing, err := readContentRecord(tx, key)
			if err != nil {
				return err
			}

			// Stored values carry microsecond precision, so stamp at the
			// same precision or the returned record would not match a
			// later read.
			now := time.Now().UTC().Truncate(time.Microsecond)
			var record *core.ContentRecord

			if existing == nil {
				// Create path: identity fields are fixed here and never
				// change on later merges.
				if err := core.ValidateMediaType(fields.MediaType); err != nil {
					return err
				}
				record = &core.ContentRecord{
					Id:             id,
					Owner:          owner,
					ExternalPostId: externalPostID,
					MediaType:      fields.MediaType,
					MediaURL:       fields.MediaURL,
					Permalink:      fields.Permalink,
					SavedAt:        now,
				}
				ownerKey := makeOwnerIndexKey(owner, id)
				if err := tx.Set(ownerKey, storage.MarshalID(id)); err != nil {
					return err
				}
			} else {
				record = existing
			}

			applyUpsert(record, fields)
			record.LastProcessed = now

			if err := tx.Set(key, storage.MarshalContentRecord(record)); err != nil {
				return err
			}
			if err := tx.Commit(); err != nil {
				return err
			}
			result = record
			return nil
		}, true)

		if err == nil {
			return result, nil
		}
		if !errors.Is(err, badger.ErrConflict) {
			return nil, err
		}
	}

	return nil, fmt.Errorf("%w: upsert for owner %s", storage.ErrConflict, owner)
}

// FindByOwnerAndExternalID retrieves the record for an external post.
func (r *ContentRepository) FindByOwnerAndExternalID(ctx context.Context, owner, externalPostID string) (*core.ContentRecord, error) {
	if err := core.ValidateUpsertKey(owner, externalPostID); err != nil {
		return nil, err
	}
	return r.GetRecord(ctx, owner, core.IDForPost(owner, externalPostID))
}

// GetRecord retrieves a single record by ID, scoped to the owner.
func (r *ContentRepository) GetRecord(ctx context.Context, owner string, id core.ID) (*core.ContentRecord, error) {
	var result *core.ContentRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeContentRecordKey(id)
		record, err := readContentRecord(tx, key)
		if err != nil {
			return err
		}
		// A record held by another owner looks exactly like a missing one.
		if record == nil || record.Owner != owner {
			return storage.ErrNotFound
		}
		result = record
		return nil
	}, false)
	return result, err
}

// ListByOwner retrieves all records belonging to an owner, via the owner
// index. Records come back in ascending ID order.
func (r *ContentRepository) ListByOwner(ctx context.Context, owner string) ([]*core.ContentRecord, error) {
	var results []*core.ContentRecord
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		prefix := makePartialOwnerIndexKey(owner)
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Seek(prefix); iter.Valid(); iter.Next() {
			key := iter.Item().Key()
			if len(key) < len(prefix) || slices.Compare(key[:len(prefix)], prefix) != 0 {
				break
			}

			// Read the ID from the index
			var recordID core.ID
			if err := iter.Item().Value(func(val []byte) error {
				var err error
				recordID, err = storage.UnmarshalID(val)
				return err
			}); err != nil {
				return err
			}

			// Look up the full record
			recordKey := makeContentRecordKey(recordID)
			record, err := readContentRecord(tx, recordKey)
			if err != nil {
				return err
			}
			if record != nil {
				results = append(results, record)
			}
		}
		return nil
	}, false)

	return results, err
}

// Patch applies a partial update of the owner-editable fields.
func (r *ContentRepository) Patch(ctx context.Context, owner string, id core.ID, patch core.RecordPatch) (*core.ContentRecord, error) {
	var result *core.ContentRecord

	for attempt := 0; attempt < maxTxnRetries; attempt++ {
		err := r.backend.WithTx(func(tx *badger.Txn) error {
			key := makeContentRecordKey(id)
			record, err := readContentRecord(tx, key)
			if err != nil {
				return err
			}
			if record == nil || record.Owner != owner {
				return storage.ErrNotFound
			}

			if patch.Categories != nil {
				record.Categories = slices.Clone(*patch.Categories)
			}
			if patch.Tags != nil {
				record.Tags = slices.Clone(*patch.Tags)
			}
			if patch.Notes != nil {
				record.Notes = *patch.Notes
			}
			record.LastProcessed = time.Now().UTC().Truncate(time.Microsecond)

			if err := tx.Set(key, storage.MarshalContentRecord(record)); err != nil {
				return err
			}
			if err := tx.Commit(); err != nil {
				return err
			}
			result = record
			return nil
		}, true)

		if err == nil {
			return result, nil
		}
		if !errors.Is(err, badger.ErrConflict) {
			return nil, err
		}
	}

	return nil, fmt.Errorf("%w: patch for owner %s", storage.ErrConflict, owner)
}

// Delete removes a record, scoped to the owner.
func (r *ContentRepository) Delete(ctx context.Context, owner string, id core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeContentRecordKey(id)

		// Read record to verify ownership before touching anything
		record, err := readContentRecord(tx, key)
		if err != nil {
			return err
		}
		if record == nil || record.Owner != owner {
			return storage.ErrNotFound
		}

		// Delete from owner index
		ownerKey := makeOwnerIndexKey(record.Owner, record.Id)
		if err := tx.Delete(ownerKey); err != nil {
			return err
		}

		// Delete primary record
		if err := tx.Delete(key); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// Helper methods

// applyUpsert overlays the present fields of an upsert onto a record.
// nil pointers leave the stored value alone; non-nil pointers replace it
// wholesale, including with an empty value.
func applyUpsert(record *core.ContentRecord, fields core.RecordUpsert) {
	if fields.ExtractedText != nil {
		record.ExtractedText = *fields.ExtractedText
	}
	if fields.Transcription != nil {
		record.Transcription = *fields.Transcription
	}
	if fields.Categories != nil {
		record.Categories = slices.Clone(*fields.Categories)
	}
	if fields.Tags != nil {
		record.Tags = slices.Clone(*fields.Tags)
	}
	if fields.Notes != nil {
		record.Notes = *fields.Notes
	}
}

// readContentRecord reads a content record from the transaction.
func readContentRecord(tx *badger.Txn, key []byte) (*core.ContentRecord, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var record *core.ContentRecord
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		record, unmarshalErr = storage.UnmarshalContentRecord(val)
		return unmarshalErr
	})
	return record, err
}
