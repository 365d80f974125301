package render

import (
	"errors"
	"fmt"

	"github.com/skip2/go-qrcode"
	"qrforge/internal/engine/colors"
)

const (
	MinWidth  = 128
	MaxWidth  = 2048
	MaxMargin = 16

	DefaultWidth  = 320
	DefaultMargin = 2
	DefaultLevel  = "M"
	DefaultLight  = "#FFFFFF"
	DefaultDark   = "#000000"
)

var (
	ErrEmptyPayload  = errors.New("payload is empty")
	ErrInvalidSize   = fmt.Errorf("invalid size: must be between %d and %d", MinWidth, MaxWidth)
	ErrInvalidMargin = fmt.Errorf("invalid margin: must be between 0 and %d", MaxMargin)
	ErrInvalidLevel  = errors.New("invalid error correction level: must be L, M, Q or H")
	ErrRenderFailed  = errors.New("failed to render QR code")
)

// Options control how a payload is drawn. Margin is in modules.
type Options struct {
	Width  int    `json:"width"`
	Margin int    `json:"margin"`
	Dark   string `json:"dark"`
	Light  string `json:"light"`
	Level  string `json:"level"`
}

func DefaultOptions() Options {
	return Options{
		Width:  DefaultWidth,
		Margin: DefaultMargin,
		Dark:   DefaultDark,
		Light:  DefaultLight,
		Level:  DefaultLevel,
	}
}

func (o Options) withDefaults() Options {
	if o.Width == 0 {
		o.Width = DefaultWidth
	}
	if o.Dark == "" {
		o.Dark = DefaultDark
	}
	if o.Light == "" {
		o.Light = DefaultLight
	}
	if o.Level == "" {
		o.Level = DefaultLevel
	}
	return o
}

func (o Options) Validate() error {
	if o.Width < MinWidth || o.Width > MaxWidth {
		return ErrInvalidSize
	}
	if o.Margin < 0 || o.Margin > MaxMargin {
		return ErrInvalidMargin
	}
	if _, err := recoveryLevel(o.Level); err != nil {
		return err
	}
	if _, err := colors.ParseHex(o.Dark); err != nil {
		return err
	}
	if _, err := colors.ParseHex(o.Light); err != nil {
		return err
	}
	return nil
}

// cacheKey expects validated options. Colors are normalized so "#ABCDEF"
// and "#abcdef" share an entry.
func (o Options) cacheKey(payload string) string {
	return fmt.Sprintf("%d|%d|%s|%s|%s|%s", o.Width, o.Margin, normalizeHex(o.Dark), normalizeHex(o.Light), o.Level, payload)
}

func normalizeHex(s string) string {
	rgb, err := colors.ParseHex(s)
	if err != nil {
		return s
	}
	return rgb.Hex()
}

func recoveryLevel(level string) (qrcode.RecoveryLevel, error) {
	switch level {
	case "L":
		return qrcode.Low, nil
	case "M":
		return qrcode.Medium, nil
	case "Q":
		return qrcode.High, nil
	case "H":
		return qrcode.Highest, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidLevel, level)
}
