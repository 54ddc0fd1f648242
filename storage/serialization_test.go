package storage

import (
	"testing"
	"time"

	"github.com/poiesic/recollect/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentRecordRoundTrip(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)

	record := &core.ContentRecord{
		Id:             core.IDForPost("owner-1", "123456789"),
		Owner:          "owner-1",
		ExternalPostId: "123456789",
		MediaType:      core.MediaTypeImage,
		MediaURL:       "https://cdn.example.com/media/123456789.jpg",
		Permalink:      "https://www.instagram.com/p/sample1/",
		ExtractedText:  "Buy milk, eggs",
		Transcription:  "",
		Categories:     []string{"Groceries"},
		Tags:           []string{"milk", "eggs"},
		Notes:          "for saturday",
		SavedAt:        now,
		LastProcessed:  now,
	}

	data := MarshalContentRecord(record)
	require.NotEmpty(t, data)

	decoded, err := UnmarshalContentRecord(data)
	require.NoError(t, err)
	assert.Equal(t, record, decoded)
}

func TestContentRecordRoundTrip_EmptySequences(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Microsecond)

	record := &core.ContentRecord{
		Id:             1,
		Owner:          "owner-1",
		ExternalPostId: "p1",
		MediaType:      core.MediaTypeVideo,
		Categories:     []string{},
		Tags:           []string{},
		SavedAt:        now,
		LastProcessed:  now,
	}

	decoded, err := UnmarshalContentRecord(MarshalContentRecord(record))
	require.NoError(t, err)
	assert.Empty(t, decoded.Categories)
	assert.Empty(t, decoded.Tags)
	assert.Equal(t, record.MediaType, decoded.MediaType)
}

func TestIDRoundTrip(t *testing.T) {
	id := core.IDForPost("ownerA", "p1")

	decoded, err := UnmarshalID(MarshalID(id))
	require.NoError(t, err)
	assert.Equal(t, id, decoded)
}

func TestUnmarshalContentRecord_Truncated(t *testing.T) {
	record := &core.ContentRecord{
		Id:             1,
		Owner:          "owner-1",
		ExternalPostId: "p1",
		MediaType:      core.MediaTypeImage,
		SavedAt:        time.Now().UTC(),
		LastProcessed:  time.Now().UTC(),
	}

	data := MarshalContentRecord(record)
	_, err := UnmarshalContentRecord(data[:len(data)/2])
	assert.Error(t, err)
}
