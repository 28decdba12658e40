package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/leten02/TimeGrid/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// ImportanceColor maps the 1-5 importance scale onto the palette.
func ImportanceColor(importance int) lipgloss.Style {
	switch {
	case importance >= 5:
		return StyleRed
	case importance == 4:
		return StyleYellow
	case importance == 3:
		return StyleFg
	default:
		return StyleDim
	}
}

// ImportancePill renders importance as filled and empty dots, e.g. "●●●○○".
func ImportancePill(importance int) string {
	importance = max(0, min(5, importance))
	dots := strings.Repeat("●", importance) + strings.Repeat("○", 5-importance)
	return ImportanceColor(importance).Render(dots)
}

// FocusBadge returns a colored focus-need label.
func FocusBadge(f domain.FocusNeed) string {
	switch f {
	case domain.FocusHigh:
		return StylePurple.Render("deep")
	case domain.FocusLow:
		return StyleDim.Render("light")
	default:
		return StyleBlue.Render("normal")
	}
}

// StatusPill returns a colored status indicator for a task.
func StatusPill(status domain.TaskStatus) string {
	switch status {
	case domain.TaskDone:
		return StyleDim.Render("✔ Done")
	case domain.TaskPending:
		return StyleGreen.Render("○ Pending")
	default:
		return StyleDim.Render(string(status))
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
