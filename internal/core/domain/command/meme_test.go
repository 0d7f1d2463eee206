package command

import (
	"context"
	"gamerbot/internal/core/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockMemeFetcher struct {
	meme   string
	err    error
	called int
}

func (m *mockMemeFetcher) RandomMeme(_ context.Context) (string, error) {
	m.called++
	return m.meme, m.err
}

func TestMemeExecute(t *testing.T) {
	tests := []struct {
		name    string
		fetcher *mockMemeFetcher
		want    string
		wantErr string
	}{
		{
			name:    "returns meme",
			fetcher: &mockMemeFetcher{meme: "http://x/y.png"},
			want:    "http://x/y.png",
		},
		{
			name: "passes backend error through",
			fetcher: &mockMemeFetcher{err: &domain.CommandError{
				Kind:    domain.KindUnauthorized,
				Message: "Get error 401, unauthorized.",
			}},
			wantErr: "Get error 401, unauthorized.",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := NewMeme(tc.fetcher, "!meme")

			got, err := m.Execute(t.Context(), &domain.Invocation{Message: &domain.Message{ID: "1"}})

			if tc.wantErr != "" {
				require.EqualError(t, err, tc.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.want, got)
			}
			assert.Equal(t, 1, tc.fetcher.called)
		})
	}
}
