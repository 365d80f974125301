package payload

import (
	"strings"
)

// Encode returns the exact string embedded into the QR symbol.
// It returns "" when the type's required field is empty.
func Encode(c Content) string {
	if c == nil {
		return ""
	}
	return c.encode()
}

func (c URL) encode() string { return c.URL }

func (c Text) encode() string { return c.Text }

func (c WiFi) encode() string {
	if c.SSID == "" {
		return ""
	}
	security := c.Security
	if security == "" {
		security = SecurityWPA
	}
	return "WIFI:T:" + string(security) + ";S:" + c.SSID + ";P:" + c.Password + ";;"
}

func (c VCard) encode() string {
	if c.Name == "" {
		return ""
	}

	lines := []string{"BEGIN:VCARD", "VERSION:3.0", "FN:" + c.Name}
	if c.Phone != "" {
		lines = append(lines, "TEL:"+c.Phone)
	}
	if c.Email != "" {
		lines = append(lines, "EMAIL:"+c.Email)
	}
	if c.Organization != "" {
		lines = append(lines, "ORG:"+c.Organization)
	}
	lines = append(lines, "END:VCARD")

	return strings.Join(lines, "\n")
}

func (c Email) encode() string {
	if c.Address == "" {
		return ""
	}
	if c.Subject == "" {
		return "mailto:" + c.Address
	}
	return "mailto:" + c.Address + "?subject=" + EscapeComponent(c.Subject)
}

func (c Phone) encode() string {
	if c.Phone == "" {
		return ""
	}
	return "tel:" + c.Phone
}

const upperHex = "0123456789ABCDEF"

// EscapeComponent percent-encodes s the way browsers encode a URI
// component: only A-Z a-z 0-9 and -_.!~*'() are left as is.
func EscapeComponent(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperHex[c>>4])
		b.WriteByte(upperHex[c&0x0f])
	}
	return b.String()
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}
