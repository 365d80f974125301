package themes

// Theme is a named color preset. Background, Surface, Text, TextMuted,
// Accent and Border are "H S% L%" triplets for the client to plug into
// hsl(). BackgroundGradient is a CSS background image, the glows are CSS
// box-shadow values.
type Theme struct {
	ID                 string `json:"id"`
	Name               string `json:"name"`
	Icon               string `json:"icon"`
	Background         string `json:"background"`
	BackgroundGradient string `json:"background_gradient"`
	Surface            string `json:"surface"`
	SurfaceGlow        string `json:"surface_glow"`
	Text               string `json:"text"`
	TextMuted          string `json:"text_muted"`
	Accent             string `json:"accent"`
	AccentGlow         string `json:"accent_glow"`
	Border             string `json:"border"`
	QRDefault          string `json:"qr_default"`
	IsDark             bool   `json:"is_dark"`
}

const DefaultID = "neon-blue"

var catalog = []Theme{
	{
		ID:                 "neon-blue",
		Name:               "Neon Blue",
		Icon:               "💎",
		Background:         "220 25% 8%",
		BackgroundGradient: "radial-gradient(ellipse at 20% 30%, hsl(210 80% 20% / 0.4) 0%, transparent 50%), radial-gradient(ellipse at 80% 70%, hsl(200 90% 25% / 0.3) 0%, transparent 50%)",
		Surface:            "220 30% 12%",
		SurfaceGlow:        "0 0 40px hsl(200 90% 50% / 0.15)",
		Text:               "200 20% 95%",
		TextMuted:          "210 15% 55%",
		Accent:             "200 100% 55%",
		AccentGlow:         "0 0 20px hsl(200 100% 55% / 0.5)",
		Border:             "210 30% 20%",
		QRDefault:          "#00b4ff",
		IsDark:             true,
	},
	{
		ID:                 "cyber-purple",
		Name:               "Cyber Purple",
		Icon:               "🔮",
		Background:         "270 30% 7%",
		BackgroundGradient: "radial-gradient(ellipse at 30% 20%, hsl(280 80% 25% / 0.4) 0%, transparent 50%), radial-gradient(ellipse at 70% 80%, hsl(300 70% 20% / 0.3) 0%, transparent 50%)",
		Surface:            "270 35% 12%",
		SurfaceGlow:        "0 0 40px hsl(280 90% 50% / 0.15)",
		Text:               "280 20% 95%",
		TextMuted:          "270 15% 55%",
		Accent:             "280 100% 65%",
		AccentGlow:         "0 0 20px hsl(280 100% 65% / 0.5)",
		Border:             "280 30% 22%",
		QRDefault:          "#bf5af2",
		IsDark:             true,
	},
	{
		ID:                 "matrix-green",
		Name:               "Matrix Green",
		Icon:               "🌿",
		Background:         "150 40% 5%",
		BackgroundGradient: "radial-gradient(ellipse at 50% 0%, hsl(140 80% 20% / 0.3) 0%, transparent 50%), linear-gradient(180deg, hsl(150 40% 5%) 0%, hsl(160 50% 3%) 100%)",
		Surface:            "150 40% 10%",
		SurfaceGlow:        "0 0 40px hsl(140 100% 45% / 0.12)",
		Text:               "140 30% 90%",
		TextMuted:          "150 20% 50%",
		Accent:             "140 100% 45%",
		AccentGlow:         "0 0 20px hsl(140 100% 45% / 0.5)",
		Border:             "150 35% 18%",
		QRDefault:          "#00ff7f",
		IsDark:             true,
	},
	{
		ID:                 "sunset-glow",
		Name:               "Sunset Glow",
		Icon:               "🌅",
		Background:         "15 30% 8%",
		BackgroundGradient: "radial-gradient(ellipse at 0% 100%, hsl(30 90% 30% / 0.4) 0%, transparent 50%), radial-gradient(ellipse at 100% 0%, hsl(350 80% 25% / 0.3) 0%, transparent 50%)",
		Surface:            "20 35% 12%",
		SurfaceGlow:        "0 0 40px hsl(25 100% 50% / 0.12)",
		Text:               "30 30% 95%",
		TextMuted:          "25 20% 55%",
		Accent:             "25 100% 55%",
		AccentGlow:         "0 0 20px hsl(25 100% 55% / 0.5)",
		Border:             "25 35% 20%",
		QRDefault:          "#ff9500",
		IsDark:             true,
	},
	{
		ID:                 "midnight-black",
		Name:               "Midnight Black",
		Icon:               "🌑",
		Background:         "0 0% 5%",
		BackgroundGradient: "radial-gradient(ellipse at 50% 50%, hsl(0 0% 10% / 0.5) 0%, transparent 70%)",
		Surface:            "0 0% 9%",
		SurfaceGlow:        "0 0 40px hsl(0 0% 100% / 0.05)",
		Text:               "0 0% 95%",
		TextMuted:          "0 0% 50%",
		Accent:             "0 0% 80%",
		AccentGlow:         "0 0 15px hsl(0 0% 100% / 0.3)",
		Border:             "0 0% 18%",
		QRDefault:          "#000000",
		IsDark:             true,
	},
	{
		ID:                 "arctic-white",
		Name:               "Arctic White",
		Icon:               "❄️",
		Background:         "200 30% 98%",
		BackgroundGradient: "radial-gradient(ellipse at 0% 0%, hsl(200 60% 90% / 0.5) 0%, transparent 50%), radial-gradient(ellipse at 100% 100%, hsl(210 50% 92% / 0.4) 0%, transparent 50%)",
		Surface:            "0 0% 100%",
		SurfaceGlow:        "0 4px 30px hsl(200 50% 50% / 0.1)",
		Text:               "210 30% 15%",
		TextMuted:          "210 15% 50%",
		Accent:             "200 90% 50%",
		AccentGlow:         "0 0 20px hsl(200 90% 50% / 0.3)",
		Border:             "200 30% 88%",
		QRDefault:          "#0066cc",
		IsDark:             false,
	},
	{
		ID:                 "retro-future",
		Name:               "Retro Future",
		Icon:               "🎮",
		Background:         "300 25% 8%",
		BackgroundGradient: "linear-gradient(135deg, hsl(320 40% 12%) 0%, hsl(260 40% 8%) 50%, hsl(200 50% 10%) 100%)",
		Surface:            "290 30% 13%",
		SurfaceGlow:        "0 0 40px hsl(320 80% 50% / 0.12)",
		Text:               "300 20% 95%",
		TextMuted:          "290 15% 55%",
		Accent:             "320 100% 65%",
		AccentGlow:         "0 0 20px hsl(320 100% 65% / 0.5)",
		Border:             "300 30% 22%",
		QRDefault:          "#ff69b4",
		IsDark:             true,
	},
	{
		ID:                 "ocean-deep",
		Name:               "Ocean Deep",
		Icon:               "🌊",
		Background:         "195 50% 8%",
		BackgroundGradient: "radial-gradient(ellipse at 50% 100%, hsl(180 60% 20% / 0.4) 0%, transparent 60%), linear-gradient(180deg, hsl(210 50% 10%) 0%, hsl(190 60% 6%) 100%)",
		Surface:            "195 45% 12%",
		SurfaceGlow:        "0 0 40px hsl(180 80% 45% / 0.12)",
		Text:               "180 25% 95%",
		TextMuted:          "190 20% 50%",
		Accent:             "175 90% 50%",
		AccentGlow:         "0 0 20px hsl(175 90% 50% / 0.5)",
		Border:             "190 40% 20%",
		QRDefault:          "#00d4aa",
		IsDark:             true,
	},
}

func All() []Theme {
	out := make([]Theme, len(catalog))
	copy(out, catalog)
	return out
}

func Lookup(id string) (Theme, bool) {
	for _, t := range catalog {
		if t.ID == id {
			return t, true
		}
	}
	return Theme{}, false
}

// Get returns the theme with id, or the first theme when id is unknown.
func Get(id string) Theme {
	if t, ok := Lookup(id); ok {
		return t
	}
	return catalog[0]
}
