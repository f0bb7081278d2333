package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/planboard/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Palette is a set of Gruvbox colors for one theme.
type Palette struct {
	Green, Yellow, Red, Blue, Purple, Dim, Fg, Header lipgloss.Color
}

var (
	DarkPalette = Palette{
		Green:  "#8ec07c",
		Yellow: "#fabd2f",
		Red:    "#fb4934",
		Blue:   "#83a598",
		Purple: "#d3869b",
		Dim:    "#928374",
		Fg:     "#ebdbb2",
		Header: "#fe8019",
	}
	LightPalette = Palette{
		Green:  "#79740e",
		Yellow: "#b57614",
		Red:    "#9d0006",
		Blue:   "#076678",
		Purple: "#8f3f71",
		Dim:    "#7c6f64",
		Fg:     "#3c3836",
		Header: "#af3a03",
	}
)

// Active styles. ApplyPalette swaps them for the chosen theme.
var (
	ColorDim lipgloss.Color

	StyleGreen  lipgloss.Style
	StyleYellow lipgloss.Style
	StyleRed    lipgloss.Style
	StyleBlue   lipgloss.Style
	StylePurple lipgloss.Style
	StyleDim    lipgloss.Style
	StyleFg     lipgloss.Style
	StyleHeader lipgloss.Style
	StyleBold   lipgloss.Style
)

func init() {
	ApplyPalette(DarkPalette)
}

var active Palette

// Active returns the palette the styles were last built from.
func Active() Palette { return active }

// ApplyPalette rebuilds the package styles from p.
func ApplyPalette(p Palette) {
	active = p
	ColorDim = p.Dim
	StyleGreen = lipgloss.NewStyle().Foreground(p.Green)
	StyleYellow = lipgloss.NewStyle().Foreground(p.Yellow)
	StyleRed = lipgloss.NewStyle().Foreground(p.Red)
	StyleBlue = lipgloss.NewStyle().Foreground(p.Blue)
	StylePurple = lipgloss.NewStyle().Foreground(p.Purple)
	StyleDim = lipgloss.NewStyle().Foreground(p.Dim)
	StyleFg = lipgloss.NewStyle().Foreground(p.Fg)
	StyleHeader = lipgloss.NewStyle().Foreground(p.Header).Bold(true)
	StyleBold = lipgloss.NewStyle().Foreground(p.Fg).Bold(true)
}

// PriorityStyle maps a task priority to its color.
func PriorityStyle(p domain.Priority) lipgloss.Style {
	switch p {
	case domain.PriorityHigh:
		return StyleRed
	case domain.PriorityMedium:
		return StyleYellow
	case domain.PriorityLow:
		return StyleGreen
	default:
		return StyleDim
	}
}

// PriorityIndicator renders a colored priority marker such as "● HIGH".
func PriorityIndicator(p domain.Priority) string {
	label := strings.ToUpper(string(p))
	if label == "" {
		label = "NONE"
	}
	return PriorityStyle(p).Render("● " + label)
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
