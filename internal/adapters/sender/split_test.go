package sender

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitMessage(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		limit int
		want  []string
	}{
		{
			name:  "empty",
			text:  "",
			limit: 5,
			want:  nil,
		},
		{
			name:  "fits",
			text:  "hello",
			limit: 5,
			want:  []string{"hello"},
		},
		{
			name:  "hard cut",
			text:  "abcdefghij",
			limit: 4,
			want:  []string{"abcd", "efgh", "ij"},
		},
		{
			name:  "prefers newline in second half",
			text:  "abc\ndefgh",
			limit: 5,
			want:  []string{"abc\n", "defgh"},
		},
		{
			name:  "ignores newline in first half",
			text:  "a\nbcdefgh",
			limit: 6,
			want:  []string{"a\nbcde", "fgh"},
		},
		{
			name:  "counts runes not bytes",
			text:  "ééééé",
			limit: 2,
			want:  []string{"éé", "éé", "é"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := splitMessage(tc.text, tc.limit)

			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.text, strings.Join(got, ""))
		})
	}
}
