package payload

import "errors"

type ContentType string

const (
	TypeURL   ContentType = "url"
	TypeText  ContentType = "text"
	TypeWiFi  ContentType = "wifi"
	TypeVCard ContentType = "vcard"
	TypeEmail ContentType = "email"
	TypePhone ContentType = "phone"
)

// Label is the default history label for codes of this type.
func (t ContentType) Label() string {
	switch t {
	case TypeURL:
		return "URL"
	case TypeText:
		return "TEXT"
	case TypeWiFi:
		return "WIFI"
	case TypeVCard:
		return "VCARD"
	case TypeEmail:
		return "EMAIL"
	case TypePhone:
		return "PHONE"
	}
	return "QR"
}

type SecurityType string

const (
	SecurityWPA    SecurityType = "WPA"
	SecurityWEP    SecurityType = "WEP"
	SecurityNoPass SecurityType = "nopass"
)

var (
	ErrUnknownType     = errors.New("unknown content type")
	ErrInvalidSecurity = errors.New("security must be one of WPA, WEP, nopass")
)

// Content is one of URL, Text, WiFi, VCard, Email or Phone.
type Content interface {
	Type() ContentType
	encode() string
}

type URL struct {
	URL string `json:"url"`
}

type Text struct {
	Text string `json:"text"`
}

type WiFi struct {
	SSID     string       `json:"ssid"`
	Password string       `json:"password"`
	Security SecurityType `json:"security"`
}

type VCard struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Organization string `json:"organization"`
}

type Email struct {
	Address string `json:"address"`
	Subject string `json:"subject"`
}

type Phone struct {
	Phone string `json:"phone"`
}

func (URL) Type() ContentType   { return TypeURL }
func (Text) Type() ContentType  { return TypeText }
func (WiFi) Type() ContentType  { return TypeWiFi }
func (VCard) Type() ContentType { return TypeVCard }
func (Email) Type() ContentType { return TypeEmail }
func (Phone) Type() ContentType { return TypePhone }

type TypeInfo struct {
	ID          ContentType `json:"id"`
	Name        string      `json:"name"`
	Icon        string      `json:"icon"`
	Description string      `json:"description"`
}

var catalog = []TypeInfo{
	{ID: TypeURL, Name: "URL", Icon: "🔗", Description: "Website link"},
	{ID: TypeText, Name: "Text", Icon: "📝", Description: "Plain text"},
	{ID: TypeWiFi, Name: "WiFi", Icon: "📶", Description: "Network credentials"},
	{ID: TypeVCard, Name: "Contact", Icon: "👤", Description: "vCard info"},
	{ID: TypeEmail, Name: "Email", Icon: "✉️", Description: "Email address"},
	{ID: TypePhone, Name: "Phone", Icon: "📞", Description: "Phone number"},
}

// Types returns the supported content types in display order.
func Types() []TypeInfo {
	out := make([]TypeInfo, len(catalog))
	copy(out, catalog)
	return out
}

func IsValidType(t ContentType) bool {
	for _, info := range catalog {
		if info.ID == t {
			return true
		}
	}
	return false
}
