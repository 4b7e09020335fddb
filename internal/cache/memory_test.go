package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMemoryCache_GetSet(t *testing.T) {
	c := NewMemoryCache()
	defer c.Close()
	ctx := context.Background()

	_, err := c.Get(ctx, "Renegade Raider")
	require.ErrorIs(t, err, ErrCacheMiss)

	require.NoError(t, c.Set(ctx, "Renegade Raider", "CID_028_Athena_Commando_F", time.Hour))

	id, err := c.Get(ctx, "  renegade raider ")
	require.NoError(t, err)
	require.Equal(t, "CID_028_Athena_Commando_F", id)
}

func TestMemoryCache_Expiry(t *testing.T) {
	c := NewMemoryCache()
	defer c.Close()
	ctx := context.Background()

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	require.NoError(t, c.Set(ctx, "Peely", "CID_701_Athena_Commando_M_BananaAgent", time.Minute))

	now = now.Add(2 * time.Minute)
	_, err := c.Get(ctx, "Peely")
	require.ErrorIs(t, err, ErrCacheMiss)

	c.removeExpired()
	require.Equal(t, 0, c.Len())
}

func TestMemoryCache_CloseTwice(t *testing.T) {
	c := NewMemoryCache()
	require.NoError(t, c.Close())
	require.NoError(t, c.Close())
}
