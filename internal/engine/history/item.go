package history

import (
	"encoding/json"
	"fmt"
	"time"

	"qrforge/internal/engine/payload"
)

type Item struct {
	ID        string              `json:"id"`
	Type      payload.ContentType `json:"type"`
	Payload   string              `json:"content"`
	Fields    json.RawMessage     `json:"fields,omitempty"`
	Label     string              `json:"label"`
	Color     string              `json:"color"`
	Theme     string              `json:"theme"`
	Timestamp int64               `json:"timestamp"` // unix millis
	DataURL   string              `json:"data_url"`
	Thumbnail string              `json:"thumbnail,omitempty"`
}

// Draft is what the caller supplies; ID and Timestamp are assigned on save.
type Draft struct {
	Content   payload.Content
	Label     string
	Color     string
	Theme     string
	DataURL   string
	Thumbnail string
}

// Reuse rebuilds the structured content the item was generated from.
// Items saved without fields only round-trip for url and text.
func Reuse(item Item) (payload.Content, error) {
	if len(item.Fields) > 0 {
		return payload.Parse(item.Type, item.Fields)
	}

	switch item.Type {
	case payload.TypeURL:
		return payload.URL{URL: item.Payload}, nil
	case payload.TypeText:
		return payload.Text{Text: item.Payload}, nil
	}
	return nil, fmt.Errorf("%w: %s has no stored fields", ErrNotReusable, item.ID)
}

// FormatAge renders how long ago ts (unix millis) was, relative to now.
func FormatAge(ts int64, now time.Time) string {
	diff := now.Sub(time.UnixMilli(ts))

	minutes := int(diff / time.Minute)
	hours := int(diff / time.Hour)
	days := int(diff / (24 * time.Hour))

	switch {
	case minutes < 1:
		return "Just now"
	case minutes < 60:
		return fmt.Sprintf("%dm ago", minutes)
	case hours < 24:
		return fmt.Sprintf("%dh ago", hours)
	case days < 7:
		return fmt.Sprintf("%dd ago", days)
	}
	return time.UnixMilli(ts).In(now.Location()).Format("2006-01-02")
}
