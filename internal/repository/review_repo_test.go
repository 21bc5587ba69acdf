package repository

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nilinki/internal/domain"
)

func TestReviewRepository_UniqueAuthorPerBand(t *testing.T) {
	repo := NewReviewRepository(testDB(t))
	ctx := context.Background()

	first := &domain.Review{
		BandID:   "band-1",
		AuthorID: "client-1",
		Rating:   5,
		Content:  "Fantastic show!",
	}
	require.NoError(t, repo.Create(ctx, first))

	// same author, same band: the index rejects it
	err := repo.Create(ctx, &domain.Review{
		BandID:   "band-1",
		AuthorID: "client-1",
		Rating:   4,
		Content:  "Trying again",
	})
	require.Error(t, err)
	assert.True(t, strings.Contains(strings.ToLower(err.Error()), "unique"))

	// same author, different band is fine
	assert.NoError(t, repo.Create(ctx, &domain.Review{
		BandID:   "band-2",
		AuthorID: "client-1",
		Rating:   4,
		Content:  "Great too",
	}))
}

func TestReviewRepository_RatingStats(t *testing.T) {
	repo := NewReviewRepository(testDB(t))
	ctx := context.Background()

	for i, rating := range []int{5, 5, 4} {
		require.NoError(t, repo.Create(ctx, &domain.Review{
			BandID:   "band-1",
			AuthorID: "client-" + string(rune('a'+i)),
			Rating:   rating,
			Content:  "Great!",
		}))
	}

	stats, err := repo.RatingStats(ctx)
	assert.NoError(t, err)

	stat := stats["band-1"]
	assert.Equal(t, int64(14), stat.Sum)
	assert.Equal(t, int64(3), stat.Count)
	assert.Equal(t, 4.7, stat.AverageRating())

	_, ok := stats["band-2"]
	assert.False(t, ok, "bands without reviews are absent")
}

func TestReviewRepository_ExistsByAuthor(t *testing.T) {
	repo := NewReviewRepository(testDB(t))
	ctx := context.Background()

	ok, err := repo.ExistsByAuthor(ctx, "client-1", "band-1")
	assert.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.Create(ctx, &domain.Review{
		BandID:   "band-1",
		AuthorID: "client-1",
		Rating:   5,
		Content:  "Great!",
	}))

	ok, err = repo.ExistsByAuthor(ctx, "client-1", "band-1")
	assert.NoError(t, err)
	assert.True(t, ok)
}
