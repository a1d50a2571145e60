package ui

import "github.com/charmbracelet/lipgloss"

// Theme is the palette for one of the two browser themes.
type Theme struct {
	Renderer *lipgloss.Renderer
	Dark     bool

	Bg          lipgloss.Color
	BgSecondary lipgloss.Color
	BgHover     lipgloss.Color
	Border      lipgloss.Color
	Text        lipgloss.Color
	Subtext     lipgloss.Color
	Primary     lipgloss.Color
	Secondary   lipgloss.Color
}

// NewTheme returns the dark or light palette.
func NewTheme(renderer *lipgloss.Renderer, dark bool) Theme {
	if renderer == nil {
		renderer = lipgloss.DefaultRenderer()
	}
	if dark {
		return Theme{
			Renderer:    renderer,
			Dark:        true,
			Bg:          lipgloss.Color("#000000"),
			BgSecondary: lipgloss.Color("#0b0b0b"),
			BgHover:     lipgloss.Color("#171717"),
			Border:      lipgloss.Color("#202020"),
			Text:        lipgloss.Color("#e8e8e8"),
			Subtext:     lipgloss.Color("#8b8b8b"),
			Primary:     lipgloss.Color("#e94560"),
			Secondary:   lipgloss.Color("#8b8b8b"),
		}
	}
	return Theme{
		Renderer:    renderer,
		Bg:          lipgloss.Color("#ffffff"),
		BgSecondary: lipgloss.Color("#f5f5f5"),
		BgHover:     lipgloss.Color("#e9e9e9"),
		Border:      lipgloss.Color("#d9d9d9"),
		Text:        lipgloss.Color("#111111"),
		Subtext:     lipgloss.Color("#666666"),
		Primary:     lipgloss.Color("#e94560"),
		Secondary:   lipgloss.Color("#666666"),
	}
}

// Name is "dark" or "light".
func (t Theme) Name() string {
	if t.Dark {
		return "dark"
	}
	return "light"
}
