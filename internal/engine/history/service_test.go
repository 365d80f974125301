package history

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"qrforge/internal/engine/payload"
	"qrforge/internal/platform/store"
)

type failingStore struct {
	store.MemoryStore
}

func (f *failingStore) Get(ctx context.Context, key string) (string, bool, error) {
	return "", false, errors.New("storage unavailable")
}

// slowStore widens the window between reading and writing the document.
type slowStore struct {
	*store.MemoryStore
}

func (s slowStore) Get(ctx context.Context, key string) (string, bool, error) {
	v, ok, err := s.MemoryStore.Get(ctx, key)
	time.Sleep(time.Millisecond)
	return v, ok, err
}

func newTestService() (*Service, *store.MemoryStore) {
	s := store.NewMemoryStore()
	svc := NewService(s)
	clock := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	svc.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	return svc, s
}

func TestService_SaveAndLoad(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	items, err := svc.Load(ctx)
	if err != nil || len(items) != 0 {
		t.Fatalf("Expected empty history, got %v, %v", items, err)
	}

	item, err := svc.Save(ctx, Draft{
		Content: payload.WiFi{SSID: "Home", Password: "secret", Security: payload.SecurityWPA},
		Color:   "#00b4ff",
		Theme:   "neon-blue",
		DataURL: "data:image/png;base64,AAAA",
	})
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if item.Payload != "WIFI:T:WPA;S:Home;P:secret;;" {
		t.Errorf("Unexpected payload %q", item.Payload)
	}
	if item.Label != "WIFI" {
		t.Errorf("Expected default label WIFI, got %q", item.Label)
	}
	if len(item.ID) < 4 || item.ID[:3] != "qr_" {
		t.Errorf("Unexpected id %q", item.ID)
	}
	if item.Timestamp == 0 {
		t.Error("Expected timestamp to be set")
	}

	items, err = svc.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(items) != 1 || items[0].ID != item.ID {
		t.Fatalf("Unexpected history %+v", items)
	}

	// Stored fields reproduce the payload
	content, err := Reuse(items[0])
	if err != nil {
		t.Fatalf("Reuse() error = %v", err)
	}
	if payload.Encode(content) != items[0].Payload {
		t.Errorf("Reused content encodes to %q", payload.Encode(content))
	}
}

func TestService_SaveEmptyContent(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.Save(context.Background(), Draft{Content: payload.Email{Subject: "hi"}})
	if !errors.Is(err, ErrEmptyContent) {
		t.Errorf("Expected ErrEmptyContent, got %v", err)
	}
}

func TestService_CapAndOrder(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	var ids []string
	for i := 0; i < MaxItems+5; i++ {
		item, err := svc.Save(ctx, Draft{Content: payload.Text{Text: fmt.Sprintf("note %d", i)}})
		if err != nil {
			t.Fatalf("Save() error = %v", err)
		}
		ids = append(ids, item.ID)
	}

	items, err := svc.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(items) != MaxItems {
		t.Fatalf("Expected %d items, got %d", MaxItems, len(items))
	}
	// Newest first, oldest five evicted
	if items[0].ID != ids[len(ids)-1] {
		t.Errorf("Expected newest item first")
	}
	if items[MaxItems-1].ID != ids[5] {
		t.Errorf("Expected oldest kept item to be the sixth saved")
	}
	for i := 1; i < len(items); i++ {
		if items[i-1].Timestamp < items[i].Timestamp {
			t.Fatalf("History not ordered newest first at %d", i)
		}
	}
}

func TestService_ConcurrentSave(t *testing.T) {
	ctx := context.Background()
	svc := NewService(slowStore{store.NewMemoryStore()})

	const n = 10
	ids := make([]string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			item, err := svc.Save(ctx, Draft{Content: payload.Text{Text: fmt.Sprintf("note %d", i)}})
			if err != nil {
				t.Errorf("Save() error = %v", err)
				return
			}
			ids[i] = item.ID
		}(i)
	}
	wg.Wait()

	items, err := svc.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(items) != n {
		t.Fatalf("Expected %d items, got %d", n, len(items))
	}
	for _, id := range ids {
		if _, err := svc.Get(ctx, id); err != nil {
			t.Errorf("Get(%s) error = %v", id, err)
		}
	}

	// Concurrent removes keep the other items
	var rm sync.WaitGroup
	for _, id := range ids[:5] {
		rm.Add(1)
		go func(id string) {
			defer rm.Done()
			if err := svc.Remove(ctx, id); err != nil {
				t.Errorf("Remove() error = %v", err)
			}
		}(id)
	}
	rm.Wait()

	items, _ = svc.Load(ctx)
	if len(items) != n-5 {
		t.Errorf("Expected %d items after removes, got %d", n-5, len(items))
	}
}

func TestService_GetRemoveClear(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	a, _ := svc.Save(ctx, Draft{Content: payload.Phone{Phone: "+1"}})
	b, _ := svc.Save(ctx, Draft{Content: payload.URL{URL: "https://x.io"}, Label: "site"})

	got, err := svc.Get(ctx, b.ID)
	if err != nil || got.Label != "site" {
		t.Errorf("Get() = %+v, %v", got, err)
	}
	if _, err := svc.Get(ctx, "qr_missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}

	if err := svc.Remove(ctx, a.ID); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}
	if err := svc.Remove(ctx, "qr_missing"); err != nil {
		t.Errorf("Remove(missing) error = %v", err)
	}
	items, _ := svc.Load(ctx)
	if len(items) != 1 || items[0].ID != b.ID {
		t.Errorf("Unexpected history after remove %+v", items)
	}

	if err := svc.Clear(ctx); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	items, _ = svc.Load(ctx)
	if len(items) != 0 {
		t.Errorf("Expected empty history after clear, got %d", len(items))
	}
}

func TestService_CorruptHistory(t *testing.T) {
	ctx := context.Background()
	svc, s := newTestService()
	s.Set(ctx, storageKey, "{not json")

	items, err := svc.Load(ctx)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(items) != 0 {
		t.Errorf("Expected corrupt history to load as empty")
	}

	// Saving replaces the corrupt document
	if _, err := svc.Save(ctx, Draft{Content: payload.Text{Text: "x"}}); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	items, _ = svc.Load(ctx)
	if len(items) != 1 {
		t.Errorf("Expected 1 item, got %d", len(items))
	}
}

func TestService_StoreError(t *testing.T) {
	svc := NewService(&failingStore{MemoryStore: *store.NewMemoryStore()})
	if _, err := svc.Load(context.Background()); err == nil {
		t.Error("Expected error from failing store")
	}
	if _, err := svc.Save(context.Background(), Draft{Content: payload.Text{Text: "x"}}); err == nil {
		t.Error("Expected error from failing store")
	}
}

func TestReuse_WithoutFields(t *testing.T) {
	c, err := Reuse(Item{Type: payload.TypeURL, Payload: "https://x.io"})
	if err != nil || payload.Encode(c) != "https://x.io" {
		t.Errorf("Reuse(url) = %v, %v", c, err)
	}
	if _, err := Reuse(Item{ID: "qr_1", Type: payload.TypeWiFi, Payload: "WIFI:T:WPA;S:a;P:b;;"}); !errors.Is(err, ErrNotReusable) {
		t.Error("Expected error reusing wifi item without fields")
	}
}

func TestFormatAge(t *testing.T) {
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		ago  time.Duration
		want string
	}{
		{0, "Just now"},
		{59 * time.Second, "Just now"},
		{5 * time.Minute, "5m ago"},
		{59 * time.Minute, "59m ago"},
		{3 * time.Hour, "3h ago"},
		{2 * 24 * time.Hour, "2d ago"},
		{8 * 24 * time.Hour, "2026-10-11"},
	}

	for _, tt := range tests {
		ts := now.Add(-tt.ago).UnixMilli()
		if got := FormatAge(ts, now); got != tt.want {
			t.Errorf("FormatAge(-%v) = %q, want %q", tt.ago, got, tt.want)
		}
	}
}
