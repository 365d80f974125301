package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"qrforge/internal/engine/payload"
	"qrforge/internal/platform/store"
)

const (
	storageKey = "qr-history"
	MaxItems   = 20
)

var (
	ErrNotFound     = errors.New("history item not found")
	ErrEmptyContent = errors.New("required field is empty")
	ErrNotReusable  = errors.New("history item cannot be reused")
)

// Service keeps the newest MaxItems generated codes, newest first, as one
// JSON document in the store. Writes are serialized so concurrent saves
// do not overwrite each other.
type Service struct {
	store store.Store
	now   func() time.Time
	mu    sync.Mutex
}

func NewService(s store.Store) *Service {
	return &Service{store: s, now: time.Now}
}

// Load returns the stored history. A missing or corrupt document is
// treated as empty.
func (s *Service) Load(ctx context.Context) ([]Item, error) {
	raw, ok, err := s.store.Get(ctx, storageKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load history: %w", err)
	}
	if !ok || raw == "" {
		return []Item{}, nil
	}

	var items []Item
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		log.Warn().Err(err).Msg("discarding corrupt history")
		return []Item{}, nil
	}
	if items == nil {
		items = []Item{}
	}
	return items, nil
}

func (s *Service) Save(ctx context.Context, d Draft) (Item, error) {
	p := payload.Encode(d.Content)
	if p == "" {
		return Item{}, fmt.Errorf("cannot save history: %w", ErrEmptyContent)
	}

	fields, err := payload.Fields(d.Content)
	if err != nil {
		return Item{}, err
	}

	label := d.Label
	if label == "" {
		label = d.Content.Type().Label()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item := Item{
		ID:        "qr_" + uuid.New().String(),
		Type:      d.Content.Type(),
		Payload:   p,
		Fields:    fields,
		Label:     label,
		Color:     d.Color,
		Theme:     d.Theme,
		Timestamp: s.now().UnixMilli(),
		DataURL:   d.DataURL,
		Thumbnail: d.Thumbnail,
	}

	items, err := s.Load(ctx)
	if err != nil {
		return Item{}, err
	}

	updated := append([]Item{item}, items...)
	if len(updated) > MaxItems {
		updated = updated[:MaxItems]
	}

	if err := s.write(ctx, updated); err != nil {
		return Item{}, err
	}

	log.Debug().Str("id", item.ID).Str("type", string(item.Type)).Int("count", len(updated)).Msg("saved history item")
	return item, nil
}

func (s *Service) Get(ctx context.Context, id string) (Item, error) {
	items, err := s.Load(ctx)
	if err != nil {
		return Item{}, err
	}
	for _, item := range items {
		if item.ID == id {
			return item, nil
		}
	}
	return Item{}, ErrNotFound
}

// Remove deletes the item with id. Removing an unknown id is a no-op.
func (s *Service) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.Load(ctx)
	if err != nil {
		return err
	}

	kept := make([]Item, 0, len(items))
	for _, item := range items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	return s.write(ctx, kept)
}

func (s *Service) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.Remove(ctx, storageKey); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}

func (s *Service) write(ctx context.Context, items []Item) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	if err := s.store.Set(ctx, storageKey, string(data)); err != nil {
		return fmt.Errorf("failed to save history: %w", err)
	}
	return nil
}
