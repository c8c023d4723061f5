package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"perf-policy-service/internal/models"
)

func newTestCache(t *testing.T, maxRecent int) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)

	c, err := NewRedisCache(context.Background(), mr.Addr(), "", 0, maxRecent)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c, mr
}

func TestNewRedisCache_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := NewRedisCache(context.Background(), addr, "", 0, 10)
	assert.Error(t, err)
}

func TestPushBeacon_RoundTrip(t *testing.T) {
	c, mr := newTestCache(t, 10)
	ctx := context.Background()

	rec := models.BeaconRecord{
		Page:       "/pricing",
		Sample:     models.MetricsSample{FCP: 1200, LCP: 2000, FID: 50, CLS: 0.05, TTFB: 400},
		ReceivedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	require.NoError(t, c.PushBeacon(ctx, rec, 100))

	got, err := c.GetRecentBeacons(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, rec.Page, got[0].Page)
	assert.Equal(t, rec.Sample, got[0].Sample)
	assert.True(t, rec.ReceivedAt.Equal(got[0].ReceivedAt))

	total, err := c.GetCounter(ctx, BeaconsTotalKey)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)

	assert.Equal(t, FeedTTL, mr.TTL(RecentBeaconsKey))
}

func TestPushBeacon_TrimsFeed(t *testing.T) {
	c, _ := newTestCache(t, 3)
	ctx := context.Background()

	for _, page := range []string{"/a", "/b", "/c", "/d", "/e"} {
		require.NoError(t, c.PushBeacon(ctx, models.BeaconRecord{Page: page}, 100))
	}

	got, err := c.GetRecentBeacons(ctx, 100)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "/e", got[0].Page)
	assert.Equal(t, "/c", got[2].Page)

	total, err := c.GetCounter(ctx, BeaconsTotalKey)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
}

func TestPushBeacon_ZeroScoreCounter(t *testing.T) {
	c, _ := newTestCache(t, 10)
	ctx := context.Background()

	require.NoError(t, c.PushBeacon(ctx, models.BeaconRecord{Page: "/slow"}, 0))
	require.NoError(t, c.PushBeacon(ctx, models.BeaconRecord{Page: "/fast"}, 100))

	n, err := c.GetCounter(ctx, ZeroScoreBeaconsKey)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestGetCounter_Missing(t *testing.T) {
	c, _ := newTestCache(t, 10)

	n, err := c.GetCounter(context.Background(), "missing")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestGetRecentBeacons_SkipsCorruptEntries(t *testing.T) {
	c, mr := newTestCache(t, 10)
	ctx := context.Background()

	require.NoError(t, c.PushBeacon(ctx, models.BeaconRecord{Page: "/ok"}, 100))
	_, err := mr.Lpush(RecentBeaconsKey, "not-json")
	require.NoError(t, err)

	got, err := c.GetRecentBeacons(ctx, 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "/ok", got[0].Page)
}

func TestFlushDB(t *testing.T) {
	c, _ := newTestCache(t, 10)
	ctx := context.Background()

	require.NoError(t, c.PushBeacon(ctx, models.BeaconRecord{Page: "/a"}, 100))
	require.NoError(t, c.Ping(ctx))
	require.NoError(t, c.FlushDB(ctx))

	got, err := c.GetRecentBeacons(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, got)
}
