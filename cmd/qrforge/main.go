package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"qrforge/internal/engine/generator"
	"qrforge/internal/engine/history"
	"qrforge/internal/engine/payload"
	"qrforge/internal/engine/render"
	"qrforge/internal/engine/themes"
	"qrforge/internal/pkg/logger"
	"qrforge/internal/platform/config"
	"qrforge/internal/platform/store"
)

type options struct {
	contentType string
	fields      contentFlags

	color       string
	theme       string
	label       string
	width       int
	margin      int
	level       string
	out         string
	payloadOnly bool
	save        bool
	configPath  string
}

type contentFlags struct {
	url      string
	text     string
	ssid     string
	password string
	security string
	name     string
	phone    string
	email    string
	org      string
	address  string
	subject  string
}

func main() {
	var o options
	flag.StringVar(&o.contentType, "type", "url", "Content type: url, text, wifi, vcard, email, phone")
	flag.StringVar(&o.fields.url, "url", "", "URL (type url)")
	flag.StringVar(&o.fields.text, "text", "", "Text (type text)")
	flag.StringVar(&o.fields.ssid, "ssid", "", "Network name (type wifi)")
	flag.StringVar(&o.fields.password, "password", "", "Network password (type wifi)")
	flag.StringVar(&o.fields.security, "security", "WPA", "Network security: WPA, WEP, nopass (type wifi)")
	flag.StringVar(&o.fields.name, "name", "", "Full name (type vcard)")
	flag.StringVar(&o.fields.phone, "phone", "", "Phone number (types vcard, phone)")
	flag.StringVar(&o.fields.email, "email", "", "Email (type vcard)")
	flag.StringVar(&o.fields.org, "org", "", "Organization (type vcard)")
	flag.StringVar(&o.fields.address, "address", "", "Recipient address (type email)")
	flag.StringVar(&o.fields.subject, "subject", "", "Subject (type email)")

	flag.StringVar(&o.color, "color", "", "Foreground color as #RRGGBB (default: theme color)")
	flag.StringVar(&o.theme, "theme", "", "Theme id (default: stored theme)")
	flag.StringVar(&o.label, "label", "", "History label")
	flag.IntVar(&o.width, "width", render.DefaultWidth, "Image width in pixels")
	flag.IntVar(&o.margin, "margin", render.DefaultMargin, "Quiet zone in modules")
	flag.StringVar(&o.level, "level", render.DefaultLevel, "Error correction level: L, M, Q, H")
	flag.StringVar(&o.out, "out", "qrcode.png", "Output PNG path")
	flag.BoolVar(&o.payloadOnly, "payload-only", false, "Print the encoded payload and exit")
	flag.BoolVar(&o.save, "save", false, "Record the code in the configured history store")
	flag.StringVar(&o.configPath, "config", "configs/config.yaml", "Path to config file (with -save)")

	flag.Parse()

	if err := run(context.Background(), o); err != nil {
		fmt.Fprintln(os.Stderr, "qrforge:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, o options) error {
	content, err := buildContent(payload.ContentType(o.contentType), o.fields)
	if err != nil {
		return err
	}

	if o.payloadOnly {
		fmt.Println(payload.Encode(content))
		return nil
	}

	kv := store.Store(store.NewMemoryStore())
	if o.save {
		cfg, err := config.Load(o.configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		logger.Init(cfg.Logging)

		s, closeStore, err := store.Open(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to open store: %w", err)
		}
		defer closeStore()
		kv = s
	}

	gen := generator.New(render.NewRenderer(0, 0), history.NewService(kv), themes.NewPreferences(kv), render.DefaultOptions(), 96)
	req := generator.Request{
		Content: content,
		Label:   o.label,
		Color:   o.color,
		ThemeID: o.theme,
		Width:   o.width,
		Margin:  &o.margin,
		Level:   o.level,
	}

	var res generator.Result
	if o.save {
		var item history.Item
		res, item, err = gen.Download(ctx, req)
		if err == nil {
			log.Info().Str("id", item.ID).Msg("saved to history")
		}
	} else {
		res, err = gen.Preview(ctx, req)
		if err == nil && res.PNG == nil {
			err = render.ErrEmptyPayload
		}
	}
	if err != nil {
		return err
	}

	if err := os.WriteFile(o.out, res.PNG, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", o.out, err)
	}
	if res.Color != o.color && o.color != "" {
		fmt.Fprintf(os.Stderr, "color %s is too light, using %s\n", o.color, res.Color)
	}
	fmt.Printf("%s (%s, %dpx)\n", o.out, res.Theme.ID, o.width)
	return nil
}

func buildContent(t payload.ContentType, f contentFlags) (payload.Content, error) {
	switch t {
	case payload.TypeURL:
		return payload.URL{URL: f.url}, nil
	case payload.TypeText:
		return payload.Text{Text: f.text}, nil
	case payload.TypeWiFi:
		sec := payload.SecurityType(f.security)
		switch sec {
		case payload.SecurityWPA, payload.SecurityWEP, payload.SecurityNoPass:
		default:
			return nil, fmt.Errorf("%w: %q", payload.ErrInvalidSecurity, f.security)
		}
		return payload.WiFi{SSID: f.ssid, Password: f.password, Security: sec}, nil
	case payload.TypeVCard:
		return payload.VCard{Name: f.name, Phone: f.phone, Email: f.email, Organization: f.org}, nil
	case payload.TypeEmail:
		return payload.Email{Address: f.address, Subject: f.subject}, nil
	case payload.TypePhone:
		return payload.Phone{Phone: f.phone}, nil
	}
	return nil, fmt.Errorf("%w: %q", payload.ErrUnknownType, t)
}
