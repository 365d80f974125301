package payload

import (
	"encoding/json"
	"fmt"
)

// Parse decodes the fields of a request into the variant for t.
// Missing or null fields decode to the zero value of the variant.
func Parse(t ContentType, fields json.RawMessage) (Content, error) {
	var c Content
	switch t {
	case TypeURL:
		var v URL
		if err := decode(fields, &v); err != nil {
			return nil, err
		}
		c = v
	case TypeText:
		var v Text
		if err := decode(fields, &v); err != nil {
			return nil, err
		}
		c = v
	case TypeWiFi:
		var v WiFi
		if err := decode(fields, &v); err != nil {
			return nil, err
		}
		switch v.Security {
		case "":
			v.Security = SecurityWPA
		case SecurityWPA, SecurityWEP, SecurityNoPass:
		default:
			return nil, fmt.Errorf("%w: %q", ErrInvalidSecurity, v.Security)
		}
		c = v
	case TypeVCard:
		var v VCard
		if err := decode(fields, &v); err != nil {
			return nil, err
		}
		c = v
	case TypeEmail:
		var v Email
		if err := decode(fields, &v); err != nil {
			return nil, err
		}
		c = v
	case TypePhone:
		var v Phone
		if err := decode(fields, &v); err != nil {
			return nil, err
		}
		c = v
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, t)
	}
	return c, nil
}

// Fields returns the raw JSON form of c, the inverse of Parse.
func Fields(c Content) (json.RawMessage, error) {
	if c == nil {
		return nil, fmt.Errorf("%w: nil content", ErrUnknownType)
	}
	return json.Marshal(c)
}

func decode(fields json.RawMessage, v interface{}) error {
	if len(fields) == 0 || string(fields) == "null" {
		return nil
	}
	if err := json.Unmarshal(fields, v); err != nil {
		return fmt.Errorf("invalid fields: %w", err)
	}
	return nil
}
