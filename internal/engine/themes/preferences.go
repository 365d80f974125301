package themes

import (
	"context"
	"errors"
	"fmt"

	"qrforge/internal/platform/store"
)

const storageKey = "qr-theme"

var ErrUnknownTheme = errors.New("unknown theme")

// Preferences persists the active theme id.
type Preferences struct {
	store store.Store
}

func NewPreferences(s store.Store) *Preferences {
	return &Preferences{store: s}
}

// Active returns the stored theme, DefaultID when nothing is stored.
// A stale id that is no longer in the catalog resolves to the first theme.
func (p *Preferences) Active(ctx context.Context) (Theme, error) {
	id, ok, err := p.store.Get(ctx, storageKey)
	if err != nil {
		return Theme{}, fmt.Errorf("failed to load theme: %w", err)
	}
	if !ok || id == "" {
		id = DefaultID
	}
	return Get(id), nil
}

func (p *Preferences) SetActive(ctx context.Context, id string) (Theme, error) {
	t, ok := Lookup(id)
	if !ok {
		return Theme{}, fmt.Errorf("%w: %q", ErrUnknownTheme, id)
	}
	if err := p.store.Set(ctx, storageKey, id); err != nil {
		return Theme{}, fmt.Errorf("failed to save theme: %w", err)
	}
	return t, nil
}
