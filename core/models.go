package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for content records.
// It is derived from the (owner, externalPostId) pair via content-based hashing,
// so the same post saved by the same owner always maps to the same ID.
type ID uint64

// IDForPost generates a deterministic ID for an owner's content record from
// the external post identifier using BLAKE2b hashing. Identical
// (owner, externalPostId) pairs produce identical IDs, which makes the
// store's uniqueness invariant structural rather than checked.
func IDForPost(owner, externalPostID string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte("(" + owner + "," + externalPostID + ")"))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// MediaType identifies the kind of media an external post carries.
type MediaType int

const (
	// MediaTypeImage represents a single image post.
	MediaTypeImage MediaType = iota + 1
	// MediaTypeVideo represents a video post.
	MediaTypeVideo
	// MediaTypeAlbum represents a multi-item album post.
	MediaTypeAlbum
)

// String returns the wire representation of the media type.
func (m MediaType) String() string {
	switch m {
	case MediaTypeImage:
		return "IMAGE"
	case MediaTypeVideo:
		return "VIDEO"
	case MediaTypeAlbum:
		return "ALBUM"
	default:
		return "UNKNOWN"
	}
}

// ParseMediaType parses a wire media type string.
// "CAROUSEL_ALBUM" is accepted as an alias for ALBUM since that is what the
// upstream platform reports for album posts.
func ParseMediaType(s string) (MediaType, error) {
	switch s {
	case "IMAGE":
		return MediaTypeImage, nil
	case "VIDEO":
		return MediaTypeVideo, nil
	case "ALBUM", "CAROUSEL_ALBUM":
		return MediaTypeAlbum, nil
	default:
		return 0, ErrInvalidMediaType
	}
}

// ContentRecord is the persisted unit of enriched content.
// At most one record exists per (Owner, ExternalPostId) pair; records are
// created on first save and only merged afterwards, never recreated.
type ContentRecord struct {
	Id             ID
	Owner          string
	ExternalPostId string
	MediaType      MediaType
	MediaURL       string
	Permalink      string
	ExtractedText  string // result of the image OCR stage
	Transcription  string // result of the audio transcription stage
	Categories     []string
	Tags           []string
	Notes          string    // owner-authored free text
	SavedAt        time.Time // set once at creation
	LastProcessed  time.Time // bumped on every successful mutation
}

// RecordUpsert carries the fields of a save/update request.
//
// Pointer fields are presence wrappers: nil means the caller omitted the
// field and the stored value is kept; a non-nil pointer replaces the stored
// value even when it points at an empty string or empty slice. This is what
// keeps "omitted" and "explicitly empty" distinguishable.
type RecordUpsert struct {
	MediaType MediaType // required when the record does not exist yet
	MediaURL  string
	Permalink string

	ExtractedText *string
	Transcription *string
	Categories    *[]string
	Tags          *[]string
	Notes         *string
}

// RecordPatch carries a partial update of the owner-editable fields.
// Same presence semantics as RecordUpsert.
type RecordPatch struct {
	Categories *[]string
	Tags       *[]string
	Notes      *string
}

// SavedPost is an externally-known post reference, as reported by the
// upstream platform. The Id is opaque to this system.
type SavedPost struct {
	Id        string
	MediaType MediaType
	MediaURL  string
	Permalink string
	Timestamp time.Time
}

// PostView is a saved post overlaid with stored enrichment state.
// The derived fields are populated only when Processed is true.
type PostView struct {
	SavedPost
	Processed     bool
	ExtractedText string
	Transcription string
	Categories    []string
	Tags          []string
}
