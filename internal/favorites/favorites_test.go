package favorites

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type memStore map[string]string

func (m memStore) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := m[key]
	return v, ok, nil
}

func (m memStore) Set(_ context.Context, key, value string) error {
	m[key] = value
	return nil
}

type failingStore struct{}

func (failingStore) Get(context.Context, string) (string, bool, error) {
	return "", false, errors.New("disk on fire")
}

func (failingStore) Set(context.Context, string, string) error {
	return errors.New("disk on fire")
}

func TestAll_Empty(t *testing.T) {
	l := New(memStore{})
	names, err := l.All(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{}, names)
}

func TestAddKeepsOrderAndUniqueness(t *testing.T) {
	ctx := context.Background()
	store := memStore{}
	l := New(store)

	for _, name := range []string{"London", "Paris", "London", "  Tokyo  ", ""} {
		_, err := l.Add(ctx, name)
		require.NoError(t, err)
	}

	names, err := l.All(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"London", "Paris", "Tokyo"}, names)
	require.Equal(t, `["London","Paris","Tokyo"]`, store[KeyFavorites])

	added, err := l.Add(ctx, "Paris")
	require.NoError(t, err)
	require.False(t, added)
}

func TestRemove(t *testing.T) {
	ctx := context.Background()
	l := New(memStore{KeyFavorites: `["London","Paris","Tokyo"]`})

	require.NoError(t, l.Remove(ctx, "Paris"))
	require.NoError(t, l.Remove(ctx, "Berlin"))

	names, err := l.All(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"London", "Tokyo"}, names)
}

func TestAll_CorruptValue(t *testing.T) {
	l := New(memStore{KeyFavorites: "not json"})
	_, err := l.All(context.Background())
	require.Error(t, err)
}

func TestLastCity(t *testing.T) {
	ctx := context.Background()
	l := New(memStore{})

	city, err := l.LastCity(ctx)
	require.NoError(t, err)
	require.Empty(t, city)

	require.NoError(t, l.SetLastCity(ctx, "Lisbon"))
	city, err = l.LastCity(ctx)
	require.NoError(t, err)
	require.Equal(t, "Lisbon", city)
}

func TestStoreErrorsPropagate(t *testing.T) {
	ctx := context.Background()
	l := New(failingStore{})

	_, err := l.All(ctx)
	require.ErrorContains(t, err, "disk on fire")
	_, err = l.Add(ctx, "Rome")
	require.Error(t, err)
	require.Error(t, l.SetLastCity(ctx, "Rome"))
}
