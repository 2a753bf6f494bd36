// Package favorites keeps the user's ordered list of favorite locations and
// the last searched city in a simple key/value store.
package favorites

import (
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

// Keys under which values are persisted.
const (
	KeyFavorites = "favorites"
	KeyLastCity  = "lastCity"
)

// Store is a string key/value store.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// List manages favorites on top of a Store. Read-modify-write cycles are not
// guarded against concurrent writers.
type List struct {
	store Store
}

// New creates a List backed by store.
func New(store Store) *List {
	return &List{store: store}
}

// All returns favorites in insertion order.
func (l *List) All(ctx context.Context) ([]string, error) {
	raw, ok, err := l.store.Get(ctx, KeyFavorites)
	if err != nil {
		return nil, fmt.Errorf("failed to load favorites: %w", err)
	}
	if !ok || raw == "" {
		return []string{}, nil
	}

	var names []string
	if err := json.Unmarshal([]byte(raw), &names); err != nil {
		return nil, fmt.Errorf("failed to decode favorites: %w", err)
	}
	if names == nil {
		names = []string{}
	}
	return names, nil
}

// Add appends name unless it is already present. It reports whether the list
// changed.
func (l *List) Add(ctx context.Context, name string) (bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return false, nil
	}

	names, err := l.All(ctx)
	if err != nil {
		return false, err
	}
	for _, n := range names {
		if n == name {
			return false, nil
		}
	}
	return true, l.save(ctx, append(names, name))
}

// Remove drops name from the list. Removing an absent name is not an error.
func (l *List) Remove(ctx context.Context, name string) error {
	names, err := l.All(ctx)
	if err != nil {
		return err
	}

	kept := names[:0]
	for _, n := range names {
		if n != name {
			kept = append(kept, n)
		}
	}
	return l.save(ctx, kept)
}

func (l *List) save(ctx context.Context, names []string) error {
	data, err := json.Marshal(names)
	if err != nil {
		return fmt.Errorf("failed to encode favorites: %w", err)
	}
	if err := l.store.Set(ctx, KeyFavorites, string(data)); err != nil {
		return fmt.Errorf("failed to save favorites: %w", err)
	}
	return nil
}

// LastCity returns the most recently searched city, if any.
func (l *List) LastCity(ctx context.Context) (string, error) {
	city, _, err := l.store.Get(ctx, KeyLastCity)
	if err != nil {
		return "", fmt.Errorf("failed to load last city: %w", err)
	}
	return city, nil
}

// SetLastCity records city as the most recent search.
func (l *List) SetLastCity(ctx context.Context, city string) error {
	if err := l.store.Set(ctx, KeyLastCity, city); err != nil {
		return fmt.Errorf("failed to save last city: %w", err)
	}
	return nil
}
