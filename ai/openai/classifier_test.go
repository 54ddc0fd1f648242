package openai

import (
	"errors"
	"testing"

	"github.com/poiesic/recollect/ai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSuggestions(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    ai.Suggestions
		wantErr error
	}{
		{
			name: "plain json",
			raw:  `{"categories": ["Groceries"], "tags": ["milk", "eggs"]}`,
			want: ai.Suggestions{Categories: []string{"Groceries"}, Tags: []string{"milk", "eggs"}},
		},
		{
			name: "fenced json",
			raw: "```json\n" +
				`{"categories": ["Cooking"], "tags": ["recipe", "pasta", "dinner"]}` +
				"\n```",
			want: ai.Suggestions{Categories: []string{"Cooking"}, Tags: []string{"recipe", "pasta", "dinner"}},
		},
		{
			name: "explicitly empty",
			raw:  `{"categories": [], "tags": []}`,
			want: ai.Suggestions{Categories: []string{}, Tags: []string{}},
		},
		{
			name: "repairable missing key quote",
			raw:  `{"categories": ["Fitness"], tags": ["gym"]}`,
			want: ai.Suggestions{Categories: []string{"Fitness"}, Tags: []string{"gym"}},
		},
		{
			name:    "missing tags key",
			raw:     `{"categories": ["Fitness"]}`,
			wantErr: ai.ErrMalformedResponse,
		},
		{
			name:    "missing categories key",
			raw:     `{"tags": ["gym"]}`,
			wantErr: ai.ErrMalformedResponse,
		},
		{
			name:    "not json at all",
			raw:     "Sure! Here are some suggestions for you.",
			wantErr: ai.ErrMalformedResponse,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseSuggestions(tt.raw)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.wantErr), "error %v should wrap %v", err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRepairJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "valid json untouched",
			input: `{"categories": ["a"], "tags": ["b"]}`,
			want:  `{"categories": ["a"], "tags": ["b"]}`,
		},
		{
			name:  "missing opening quote after comma",
			input: `{"categories": ["a"], tags": ["b"]}`,
			want:  `{"categories": ["a"], "tags": ["b"]}`,
		},
		{
			name:  "missing opening quote after brace",
			input: `{categories": ["a"], "tags": ["b"]}`,
			want:  `{"categories": ["a"], "tags": ["b"]}`,
		},
		{
			name:  "bare unquoted key left alone",
			input: `{categories: ["a"]}`,
			want:  `{categories: ["a"]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, repairJSON(tt.input))
		})
	}
}
