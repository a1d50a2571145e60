package ui

import (
	"fmt"
	"strings"

	"github.com/Dicklesworthstone/lucide_viewer/pkg/style"

	"github.com/charmbracelet/lipgloss"
)

// ══════════════════════════════════════════════════════════════════════════════
// DESIGN TOKENS - Consistent spacing and visual language
// ══════════════════════════════════════════════════════════════════════════════

// Spacing constants for consistent layout (in characters)
const (
	SpaceXS = 1
	SpaceSM = 2
	SpaceMD = 3
)

// ══════════════════════════════════════════════════════════════════════════════
// PANEL STYLES
// ══════════════════════════════════════════════════════════════════════════════

// PanelStyle is the bordered box around the sidebar sections.
func PanelStyle(t Theme) lipgloss.Style {
	return t.Renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(0, SpaceXS)
}

// CardStyle is the style of one grid card.
func CardStyle(t Theme, hovered, selected bool) lipgloss.Style {
	border := t.Border
	bg := t.BgSecondary
	switch {
	case selected:
		border = t.Primary
	case hovered:
		border = t.Subtext
	}
	if hovered {
		bg = t.BgHover
	}
	return t.Renderer.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Background(bg).
		Width(CardWidth - 2).
		Align(lipgloss.Center)
}

// SectionTitle renders a sidebar section heading.
func SectionTitle(t Theme, title string) string {
	return t.Renderer.NewStyle().Bold(true).Foreground(t.Subtext).Render(title)
}

// ══════════════════════════════════════════════════════════════════════════════
// PICKERS - Swatches and chips for the sidebar
// ══════════════════════════════════════════════════════════════════════════════

// RenderSwatch renders one color preset, bracketed when selected.
func RenderSwatch(t Theme, c style.Color, selected bool) string {
	block := t.Renderer.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render("██")
	if selected {
		return t.Renderer.NewStyle().Foreground(t.Text).Render("[") + block +
			t.Renderer.NewStyle().Foreground(t.Text).Render("]")
	}
	return " " + block + " "
}

// RenderChip renders a picker option such as "XL" or "90°".
func RenderChip(t Theme, label string, selected bool) string {
	s := t.Renderer.NewStyle().Padding(0, SpaceXS)
	if selected {
		s = s.Bold(true).Foreground(t.Bg).Background(t.Primary)
	} else {
		s = s.Foreground(t.Text).Background(t.BgHover)
	}
	return s.Render(label)
}

// RenderDegrees formats a rotation picker label.
func RenderDegrees(deg float64) string {
	return fmt.Sprintf("%d°", int(deg))
}

// ══════════════════════════════════════════════════════════════════════════════
// DIVIDERS AND SEPARATORS
// ══════════════════════════════════════════════════════════════════════════════

// RenderDivider renders a horizontal divider line
func RenderDivider(t Theme, width int) string {
	if width <= 0 {
		return ""
	}
	return t.Renderer.NewStyle().
		Foreground(t.Border).
		Render(strings.Repeat("─", width))
}
