package kvstore

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryStore_RoundTrip(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()

	v, err := m.Get(ctx, "users")
	require.NoError(t, err)
	require.Nil(t, v)

	require.NoError(t, m.Set(ctx, "users", []byte(`[]`)))

	v, err = m.Get(ctx, "users")
	require.NoError(t, err)
	require.Equal(t, []byte(`[]`), v)

	require.NoError(t, m.Delete(ctx, "users"))

	v, err = m.Get(ctx, "users")
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestMemoryStore_GetReturnsCopy(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "k", []byte("abc")))

	v, _ := m.Get(ctx, "k")
	v[0] = 'x'

	v2, _ := m.Get(ctx, "k")
	require.Equal(t, []byte("abc"), v2)
}

func TestMemoryStore_FaultHooks(t *testing.T) {
	m := NewMemoryStore()
	ctx := context.Background()
	boom := errors.New("boom")

	m.SetErr = func(key string) error {
		if key == "shipments" {
			return boom
		}
		return nil
	}

	require.ErrorIs(t, m.Set(ctx, "shipments", []byte(`[]`)), boom)
	require.NoError(t, m.Set(ctx, "users", []byte(`[]`)))

	m.GetErr = func(string) error { return boom }
	_, err := m.Get(ctx, "users")
	require.ErrorIs(t, err, boom)

	m.DeleteErr = func(string) error { return boom }
	require.ErrorIs(t, m.Delete(ctx, "users"), boom)
}
