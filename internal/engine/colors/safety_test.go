package colors

import (
	"errors"
	"testing"
)

func TestSafe(t *testing.T) {
	tests := []struct {
		name      string
		requested string
		want      string
	}{
		{"White falls back", "#FFFFFF", "#00B4FF"},
		{"Black kept", "#000000", "#000000"},
		{"Lowercase kept as is", "#1a2b3c", "#1a2b3c"},
		// 200*299 + 200*587 + 200*114 = 200000, exactly on the threshold
		{"Boundary 200 kept", "#C8C8C8", "#C8C8C8"},
		{"Just above boundary", "#C9C8C8", "#00B4FF"},
		{"Pale yellow falls back", "#FFFF99", "#00B4FF"},
		{"Pure green kept", "#00FF00", "#00FF00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Safe(tt.requested, "#00B4FF")
			if err != nil {
				t.Fatalf("Safe() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Safe(%q) = %q, want %q", tt.requested, got, tt.want)
			}
		})
	}
}

func TestSafe_InvalidFormat(t *testing.T) {
	inputs := []string{"", "#FFF", "FFFFFF", "#GGGGGG", "#12345", "#1234567", "rgb(0,0,0)", "#12 456"}
	for _, in := range inputs {
		if _, err := Safe(in, "#00B4FF"); !errors.Is(err, ErrInvalidColorFormat) {
			t.Errorf("Safe(%q) error = %v, want ErrInvalidColorFormat", in, err)
		}
	}
}

func TestBrightness(t *testing.T) {
	tests := []struct {
		hex  string
		want float64
	}{
		{"#000000", 0},
		{"#FFFFFF", 255},
		{"#FF0000", 76.245},
		{"#00FF00", 149.685},
		{"#0000FF", 29.07},
		{"#C8C8C8", 200},
	}

	for _, tt := range tests {
		rgb, err := ParseHex(tt.hex)
		if err != nil {
			t.Fatalf("ParseHex(%q) error = %v", tt.hex, err)
		}
		got := rgb.Brightness()
		if diff := got - tt.want; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("Brightness(%s) = %v, want %v", tt.hex, got, tt.want)
		}
	}
}

func TestParseHex(t *testing.T) {
	rgb, err := ParseHex("#00b4FF")
	if err != nil {
		t.Fatalf("ParseHex() error = %v", err)
	}
	if rgb != (RGB{R: 0x00, G: 0xb4, B: 0xff}) {
		t.Errorf("unexpected channels %+v", rgb)
	}
	if rgb.Hex() != "#00b4ff" {
		t.Errorf("Hex() = %s", rgb.Hex())
	}
	if c := rgb.Color(); c.A != 0xff || c.G != 0xb4 {
		t.Errorf("Color() = %+v", c)
	}
}
