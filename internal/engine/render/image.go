package render

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image/png"
	"strings"

	"github.com/nfnt/resize"
)

const dataURLPrefix = "data:image/png;base64,"

var ErrInvalidDataURL = errors.New("not a base64 PNG data URL")

func DataURL(pngBytes []byte) string {
	return dataURLPrefix + base64.StdEncoding.EncodeToString(pngBytes)
}

func DecodeDataURL(s string) ([]byte, error) {
	if !strings.HasPrefix(s, dataURLPrefix) {
		return nil, ErrInvalidDataURL
	}
	b, err := base64.StdEncoding.DecodeString(s[len(dataURLPrefix):])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDataURL, err)
	}
	return b, nil
}

// Thumbnail scales a PNG down to width pixels wide, keeping aspect ratio.
// Nearest-neighbour keeps module edges sharp.
func Thumbnail(pngBytes []byte, width int) ([]byte, error) {
	img, err := png.Decode(bytes.NewReader(pngBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to decode png: %w", err)
	}
	if width <= 0 || width >= img.Bounds().Dx() {
		return pngBytes, nil
	}

	thumb := resize.Resize(uint(width), 0, img, resize.NearestNeighbor)

	var buf bytes.Buffer
	if err := png.Encode(&buf, thumb); err != nil {
		return nil, fmt.Errorf("failed to encode thumbnail: %w", err)
	}
	return buf.Bytes(), nil
}
