package redis

import (
	"context"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequiresClient(t *testing.T) {
	_, err := New(Config{})
	assert.ErrorIs(t, err, ErrNilClient)
}

func TestTransportErrorsSurface(t *testing.T) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	p, err := New(Config{Client: rdb, CloseClient: true})
	require.NoError(t, err)

	ctx := context.Background()
	_, ok, err := p.Get(ctx, "k")
	assert.Error(t, err)
	assert.False(t, ok)

	ok, err = p.Set(ctx, "k", []byte("v"), 1, -time.Second)
	assert.Error(t, err)
	assert.False(t, ok)

	require.NoError(t, p.Close(ctx))
	require.NoError(t, p.Close(ctx), "second close is a no-op")
}
