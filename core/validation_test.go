package core

import (
	"errors"
	"testing"
	"time"
)

func TestValidateContentRecord(t *testing.T) {
	validTime := time.Now().Add(-1 * time.Hour)
	futureTime := time.Now().Add(1 * time.Hour)

	tests := []struct {
		name    string
		record  *ContentRecord
		wantErr error
	}{
		{
			name: "valid record",
			record: &ContentRecord{
				Id:             1,
				Owner:          "owner-1",
				ExternalPostId: "123456789",
				MediaType:      MediaTypeImage,
				SavedAt:        validTime,
			},
			wantErr: nil,
		},
		{
			name: "valid record without enrichment results",
			record: &ContentRecord{
				Owner:          "owner-1",
				ExternalPostId: "123456789",
				MediaType:      MediaTypeVideo,
				SavedAt:        validTime,
				ExtractedText:  "",
				Transcription:  "",
			},
			wantErr: nil,
		},
		{
			name:    "nil record",
			record:  nil,
			wantErr: ErrInvalidContentRecord,
		},
		{
			name: "missing owner",
			record: &ContentRecord{
				ExternalPostId: "123456789",
				MediaType:      MediaTypeImage,
				SavedAt:        validTime,
			},
			wantErr: ErrMissingOwner,
		},
		{
			name: "missing external post id",
			record: &ContentRecord{
				Owner:     "owner-1",
				MediaType: MediaTypeImage,
				SavedAt:   validTime,
			},
			wantErr: ErrMissingExternalPostID,
		},
		{
			name: "invalid media type",
			record: &ContentRecord{
				Owner:          "owner-1",
				ExternalPostId: "123456789",
				MediaType:      MediaType(99),
				SavedAt:        validTime,
			},
			wantErr: ErrInvalidMediaType,
		},
		{
			name: "future saved-at",
			record: &ContentRecord{
				Owner:          "owner-1",
				ExternalPostId: "123456789",
				MediaType:      MediaTypeImage,
				SavedAt:        futureTime,
			},
			wantErr: ErrInvalidTimestamp,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateContentRecord(tt.record)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("ValidateContentRecord() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateContentRecord() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateMediaType(t *testing.T) {
	for _, valid := range []MediaType{MediaTypeImage, MediaTypeVideo, MediaTypeAlbum} {
		if err := ValidateMediaType(valid); err != nil {
			t.Errorf("ValidateMediaType(%v) unexpected error: %v", valid, err)
		}
	}

	for _, invalid := range []MediaType{0, 4, -1} {
		if err := ValidateMediaType(invalid); !errors.Is(err, ErrInvalidMediaType) {
			t.Errorf("ValidateMediaType(%v) error = %v, want ErrInvalidMediaType", invalid, err)
		}
	}
}

func TestValidateUpsertKey(t *testing.T) {
	if err := ValidateUpsertKey("owner-1", "p1"); err != nil {
		t.Errorf("ValidateUpsertKey() unexpected error: %v", err)
	}
	if err := ValidateUpsertKey("", "p1"); !errors.Is(err, ErrMissingOwner) {
		t.Errorf("ValidateUpsertKey() error = %v, want ErrMissingOwner", err)
	}
	if err := ValidateUpsertKey("owner-1", ""); !errors.Is(err, ErrMissingExternalPostID) {
		t.Errorf("ValidateUpsertKey() error = %v, want ErrMissingExternalPostID", err)
	}
}
