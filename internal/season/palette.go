package season

// Palette defines the page color scheme for a season, used by the
// viewer page while the image loads and for browser chrome.
type Palette struct {
	// Background is the page background behind the image
	Background string
	// GradientFrom is the top color of the splash gradient
	GradientFrom string
	// GradientTo is the bottom color of the splash gradient
	GradientTo string
	// Accent is the highlight color for text and the loading spinner
	Accent string
}

// DefaultPalette is the fallback dark theme.
var DefaultPalette = Palette{
	Background:   "#0f0f1a",
	GradientFrom: "#1a1a2e",
	GradientTo:   "#16213e",
	Accent:       "#e5c07b",
}

// palettes maps each season to a curated scheme that echoes its
// imagery. Seasons missing here fall back to DefaultPalette.
var palettes = map[ID]Palette{
	Christmas: {
		Background:   "#0d1a12", // deep pine
		GradientFrom: "#14532d",
		GradientTo:   "#7f1d1d",
		Accent:       "#fcd34d", // gold ornament
	},
	Winter: {
		Background:   "#0b1220", // midwinter night
		GradientFrom: "#1e3a5f",
		GradientTo:   "#0f172a",
		Accent:       "#bae6fd", // ice blue
	},
	NewYears: {
		Background:   "#0c0a14",
		GradientFrom: "#1e1b4b",
		GradientTo:   "#3b0764",
		Accent:       "#fde047", // champagne sparkle
	},
	Fall: {
		Background:   "#1a120b",
		GradientFrom: "#7c2d12",
		GradientTo:   "#422006",
		Accent:       "#fb923c", // maple orange
	},
	Summer: {
		Background:   "#07131a",
		GradientFrom: "#0e7490",
		GradientTo:   "#155e75",
		Accent:       "#fde68a", // beach sun
	},
	Spring: {
		Background:   "#0c1510",
		GradientFrom: "#166534",
		GradientTo:   "#3f6212",
		Accent:       "#f9a8d4", // cherry blossom
	},
	Thanksgiving: {
		Background:   "#170f08",
		GradientFrom: "#78350f",
		GradientTo:   "#451a03",
		Accent:       "#fbbf24", // candlelight amber
	},
	FourthJuly: {
		Background:   "#0a0f1e",
		GradientFrom: "#1e3a8a",
		GradientTo:   "#7f1d1d",
		Accent:       "#f8fafc", // firework white
	},
	Easter: {
		Background:   "#14121a",
		GradientFrom: "#6b21a8",
		GradientTo:   "#86198f",
		Accent:       "#d9f99d", // spring pastel
	},
	Halloween: {
		Background:   "#120a14",
		GradientFrom: "#3b0764",
		GradientTo:   "#431407",
		Accent:       "#fb923c", // jack-o-lantern glow
	},
	Valentines: {
		Background:   "#1a0b10",
		GradientFrom: "#831843",
		GradientTo:   "#4c0519",
		Accent:       "#fda4af", // rose pink
	},
}

// PaletteFor returns the page palette for a season.
func PaletteFor(id ID) Palette {
	if p, ok := palettes[id]; ok {
		return p
	}
	return DefaultPalette
}
