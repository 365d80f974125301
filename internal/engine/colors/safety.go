package colors

import (
	"errors"
	"fmt"
	"image/color"
)

// BrightnessThreshold is the perceived brightness above which a color is
// too close to the white preview background to scan reliably.
const BrightnessThreshold = 200

var ErrInvalidColorFormat = errors.New("color must be in #RRGGBB format")

type RGB struct {
	R, G, B uint8
}

// ParseHex parses a "#RRGGBB" triplet. Hex digits may be either case.
func ParseHex(s string) (RGB, error) {
	if len(s) != 7 || s[0] != '#' {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, s)
	}

	var ch [3]uint8
	for i := range ch {
		hi, ok1 := hexValue(s[1+2*i])
		lo, ok2 := hexValue(s[2+2*i])
		if !ok1 || !ok2 {
			return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, s)
		}
		ch[i] = hi<<4 | lo
	}

	return RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
}

func hexValue(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// Brightness is the luma-weighted perceived brightness, 0..255.
func (c RGB) Brightness() float64 {
	return float64(int(c.R)*299+int(c.G)*587+int(c.B)*114) / 1000
}

func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c RGB) Color() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}

// Safe picks the foreground color for the dark modules. A requested color
// brighter than BrightnessThreshold is replaced by themeDefault; anything
// else is returned unchanged.
func Safe(requested, themeDefault string) (string, error) {
	rgb, err := ParseHex(requested)
	if err != nil {
		return "", err
	}
	if rgb.Brightness() > BrightnessThreshold {
		return themeDefault, nil
	}
	return requested, nil
}
