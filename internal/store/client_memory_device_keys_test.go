package store

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryDeviceKeyCache_Contract(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryDeviceKeyCache()

	value, err := c.Get(ctx, MasterKey)
	require.NoError(t, err)
	assert.Nil(t, value)

	require.NoError(t, c.Put(ctx, MasterKey, []byte{1}))
	require.NoError(t, c.Put(ctx, MasterKey, []byte{2}))

	value, err = c.Get(ctx, MasterKey)
	require.NoError(t, err)
	assert.Equal(t, []byte{2}, value)

	assert.ErrorIs(t, c.Put(ctx, "", []byte{1}), ErrEmptyKey)

	require.NoError(t, c.Clear(ctx))
	value, err = c.Get(ctx, MasterKey)
	require.NoError(t, err)
	assert.Nil(t, value)
}

func TestMemoryDeviceKeyCache_CopiesValues(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryDeviceKeyCache()

	in := []byte{1, 2, 3}
	require.NoError(t, c.Put(ctx, SharedKey("bob"), in))
	in[0] = 9

	out, err := c.Get(ctx, SharedKey("bob"))
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, out)

	out[1] = 9
	again, err := c.Get(ctx, SharedKey("bob"))
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, again)
}

func TestMemoryDeviceKeyCache_Concurrent(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryDeviceKeyCache()

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = c.Put(ctx, SharedKey("p"), []byte{byte(i)})
			_, _ = c.Get(ctx, SharedKey("p"))
		}()
	}
	wg.Wait()

	value, err := c.Get(ctx, SharedKey("p"))
	require.NoError(t, err)
	assert.Len(t, value, 1)
}

func TestSharedKey(t *testing.T) {
	assert.Equal(t, "shared_key_42", SharedKey("42"))
}
