package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T, now *time.Time) *Store {
	t.Helper()
	s, err := Open(context.Background(), DefaultDSN,
		WithSalt("test-salt"),
		WithClock(func() time.Time { return *now }),
	)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestHashIPIsStableAndOpaque(t *testing.T) {
	now := time.Now()
	s := openTestStore(t, &now)

	h := s.HashIP("203.0.113.7")
	assert.Len(t, h, 16)
	assert.Equal(t, h, s.HashIP("203.0.113.7"))
	assert.NotEqual(t, h, s.HashIP("203.0.113.8"))
	assert.NotContains(t, h, "203")
}

func TestRecordAndStats(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	s := openTestStore(t, &now)

	at := func(ts time.Time, ip, path string) {
		now = ts
		require.NoError(t, s.Record(ctx, ip, "test-agent", path))
	}
	at(time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC), "10.0.0.1", "/")
	at(time.Date(2025, 3, 8, 9, 0, 0, 0, time.UTC), "10.0.0.2", "/resume")
	at(time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC), "10.0.0.1", "/")
	at(time.Date(2025, 3, 10, 11, 0, 0, 0, time.UTC), "10.0.0.3", "/")
	now = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	stats, err := s.Stats(ctx)
	require.NoError(t, err)

	assert.EqualValues(t, 4, stats.TotalVisitors)
	assert.EqualValues(t, 3, stats.UniqueVisitors)
	assert.EqualValues(t, 2, stats.VisitorsToday)
	assert.EqualValues(t, 3, stats.VisitorsThisWeek)
	require.NotEmpty(t, stats.TopPaths)
	assert.Equal(t, PathCount{Path: "/", Views: 3}, stats.TopPaths[0])
	require.Len(t, stats.RecentVisitors, 4)
	assert.Equal(t, s.HashIP("10.0.0.3"), stats.RecentVisitors[0].HashedIP)
}

func TestCleanupRemovesOldVisits(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s := openTestStore(t, &now)

	require.NoError(t, s.Record(ctx, "10.0.0.1", "", "/"))
	now = now.Add(400 * 24 * time.Hour)
	require.NoError(t, s.Record(ctx, "10.0.0.2", "", "/"))

	n, err := s.Cleanup(ctx, Retention)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	recent, err := s.Recent(ctx, 10)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, s.HashIP("10.0.0.2"), recent[0].HashedIP)
}

func TestRandomToken(t *testing.T) {
	a, err := RandomToken()
	require.NoError(t, err)
	b, err := RandomToken()
	require.NoError(t, err)
	assert.Len(t, a, 64)
	assert.NotEqual(t, a, b)
}
