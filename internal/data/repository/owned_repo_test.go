package repository

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newOwnedRepo(fs afero.Fs) OwnedReviewRepository {
	return NewOwnedReviewRepository(fs, "data/owned_reviews.json", zap.NewNop())
}

func TestOwnedReviewsEmptyWhenFileMissing(t *testing.T) {
	repo := newOwnedRepo(afero.NewMemMapFs())

	assert.Empty(t, repo.All())
	assert.False(t, repo.Contains("r1"))
}

func TestOwnedReviewsAppendAndContains(t *testing.T) {
	repo := newOwnedRepo(afero.NewMemMapFs())

	require.NoError(t, repo.Append("r1"))
	require.NoError(t, repo.Append("r2"))

	assert.Equal(t, []string{"r1", "r2"}, repo.All())
	assert.True(t, repo.Contains("r1"))
	assert.True(t, repo.Contains("r2"))
	assert.False(t, repo.Contains("r3"))
}

func TestOwnedReviewsSurviveReopen(t *testing.T) {
	fs := afero.NewMemMapFs()

	first := newOwnedRepo(fs)
	require.NoError(t, first.Append("r1"))

	second := newOwnedRepo(fs)
	assert.True(t, second.Contains("r1"))
}

// A corrupt record must read as empty instead of failing the page.
func TestOwnedReviewsMalformedFileReadsAsEmpty(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "data/owned_reviews.json", []byte("{not json"), 0644))

	repo := newOwnedRepo(fs)

	assert.Empty(t, repo.All())
	assert.False(t, repo.Contains("r1"))

	// Appending over the corrupt record starts a fresh list
	require.NoError(t, repo.Append("r9"))
	assert.Equal(t, []string{"r9"}, repo.All())
}
