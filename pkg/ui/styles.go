package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Terminal palette indexes, so output follows the user's terminal theme
var (
	ColorSuccess = lipgloss.AdaptiveColor{Light: "2", Dark: "2"}
	ColorError   = lipgloss.AdaptiveColor{Light: "1", Dark: "1"}
	ColorPrimary = lipgloss.AdaptiveColor{Light: "5", Dark: "5"}
	ColorInfo    = lipgloss.AdaptiveColor{Light: "6", Dark: "6"}
	ColorMuted   = lipgloss.AdaptiveColor{Light: "8", Dark: "8"}
	ColorWarning = lipgloss.AdaptiveColor{Light: "3", Dark: "3"}
	ColorAccent  = lipgloss.AdaptiveColor{Light: "4", Dark: "4"}
	ColorDefault = lipgloss.AdaptiveColor{Light: "7", Dark: "7"}
)

var (
	StyleSuccess lipgloss.Style
	StyleError   lipgloss.Style
	StylePrimary lipgloss.Style
	StyleInfo    lipgloss.Style
	StyleMuted   lipgloss.Style
	StyleWarning lipgloss.Style
	StyleAccent  lipgloss.Style
	StyleTitle   lipgloss.Style
	StyleHeader  lipgloss.Style

	StyleTableHeader lipgloss.Style
	StyleTableRow    lipgloss.Style
	StyleTableRowAlt lipgloss.Style
	StyleTableBorder lipgloss.Style
)

const (
	IconSuccess    = "✔"
	IconError      = "✘"
	IconRocket     = "🚀"
	IconInfo       = "ℹ"
	IconWarning    = "⚠"
	IconAttachment = "📎"
	IconFolder     = "📂"
)

func init() {
	SetTheme("auto")
}

// SetTheme applies the color theme ("auto", "dark", "light"). Anything
// else lets lipgloss detect the background.
func SetTheme(theme string) {
	switch theme {
	case "light":
		lipgloss.SetHasDarkBackground(false)
	case "dark":
		lipgloss.SetHasDarkBackground(true)
	}

	fg := func(c lipgloss.TerminalColor) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(c)
	}

	StyleSuccess = fg(ColorSuccess).Bold(true)
	StyleError = fg(ColorError).Bold(true)
	StylePrimary = fg(ColorPrimary).Bold(true)
	StyleInfo = fg(ColorInfo)
	StyleMuted = fg(ColorMuted)
	StyleWarning = fg(ColorWarning).Bold(true)
	StyleAccent = fg(ColorAccent)
	StyleTitle = fg(ColorPrimary).Bold(true).Underline(true)
	StyleHeader = fg(ColorPrimary).Bold(true)

	StyleTableHeader = StyleHeader
	StyleTableRow = fg(ColorDefault)
	StyleTableRowAlt = fg(ColorDefault).Faint(true)
	StyleTableBorder = StyleMuted
}

func withIcon(style lipgloss.Style, icon, msg string) string {
	return style.Render(icon + " " + msg)
}

// FormatSuccess returns a success message with icon
func FormatSuccess(msg string) string { return withIcon(StyleSuccess, IconSuccess, msg) }

// FormatError returns an error message with icon
func FormatError(msg string) string { return withIcon(StyleError, IconError, msg) }

// FormatInfo returns an info message with icon
func FormatInfo(msg string) string { return withIcon(StyleInfo, IconInfo, msg) }

// FormatWarning returns a warning message with icon
func FormatWarning(msg string) string { return withIcon(StyleWarning, IconWarning, msg) }

// FormatRocket announces a long-running action
func FormatRocket(msg string) string { return withIcon(StylePrimary, IconRocket, msg) }

// FormatFolder renders an output directory line
func FormatFolder(dir string) string { return withIcon(StyleInfo, IconFolder, dir) }

// FormatHeader renders a section header followed by its subject in muted text
func FormatHeader(header, subject string) string {
	if subject == "" {
		return StyleHeader.Render(header)
	}
	return StyleHeader.Render(header) + " " + StyleMuted.Render(subject)
}

// FormatMuted returns muted/subtle text
func FormatMuted(text string) string {
	return StyleMuted.Render(text)
}

// FormatAttachment renders one extracted file line
func FormatAttachment(path string, size int) string {
	return withIcon(StyleAccent, IconAttachment, path) + " " + StyleMuted.Render("("+FormatSize(size)+")")
}

// FormatSize renders a byte count using binary units
func FormatSize(b int) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := unit, 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(b)/float64(div), "KMGTPE"[exp])
}

// RenderKeyValue renders a key-value pair
func RenderKeyValue(key, value string) string {
	return StyleAccent.Render(key) + ": " + value
}
