package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"example.com/tracking/internal/domain"
)

func TestInMemoryRepositoryRoundTrip(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()

	w := domain.Workout{ID: "w-1", Type: domain.ActivityRun, StartTime: time.Now().UTC()}
	require.NoError(t, repo.Save(ctx, w))

	got, err := repo.Get(ctx, "w-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "w-1", got.ID)

	missing, err := repo.Get(ctx, "nope")
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestInMemoryRepositoryListOrdering(t *testing.T) {
	repo := NewInMemoryRepository()
	ctx := context.Background()
	base := time.Date(2025, time.June, 1, 8, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		w := domain.Workout{
			ID:        fmt.Sprintf("w-%d", i),
			Type:      domain.ActivityWalk,
			StartTime: base.Add(time.Duration(i) * time.Hour),
		}
		require.NoError(t, repo.Save(ctx, w))
	}

	items, err := repo.List(ctx, 3)
	require.NoError(t, err)
	require.Len(t, items, 3)
	require.Equal(t, "w-4", items[0].ID)
	require.Equal(t, "w-3", items[1].ID)
	require.Equal(t, "w-2", items[2].ID)
}
