package output

import (
	"github.com/fatih/color"
)

// ColorScheme defines the colors used for different elements in the output
type ColorScheme struct {
	Title     *color.Color
	Label     *color.Color
	Value     *color.Color
	Fastest   *color.Color
	Slowest   *color.Color
	Muted     *color.Color
	Success   *color.Color
	Error     *color.Color
	Highlight *color.Color
}

// DefaultColorScheme returns the default color scheme
func DefaultColorScheme() *ColorScheme {
	return &ColorScheme{
		Title:     color.New(color.FgCyan, color.Bold),
		Label:     color.New(color.FgBlue),
		Value:     color.New(color.FgWhite, color.Bold),
		Fastest:   color.New(color.FgGreen, color.Bold),
		Slowest:   color.New(color.FgRed),
		Muted:     color.New(color.Faint),
		Success:   color.New(color.FgGreen),
		Error:     color.New(color.FgRed),
		Highlight: color.New(color.FgMagenta, color.Bold),
	}
}

// NoColorScheme returns a color scheme with all colors disabled
func NoColorScheme() *ColorScheme {
	scheme := DefaultColorScheme()

	// Disable all colors
	scheme.Title.DisableColor()
	scheme.Label.DisableColor()
	scheme.Value.DisableColor()
	scheme.Fastest.DisableColor()
	scheme.Slowest.DisableColor()
	scheme.Muted.DisableColor()
	scheme.Success.DisableColor()
	scheme.Error.DisableColor()
	scheme.Highlight.DisableColor()

	return scheme
}

// ForcedColorScheme returns the default scheme with colors enabled even when
// the writer is not a terminal.
func ForcedColorScheme() *ColorScheme {
	scheme := DefaultColorScheme()

	scheme.Title.EnableColor()
	scheme.Label.EnableColor()
	scheme.Value.EnableColor()
	scheme.Fastest.EnableColor()
	scheme.Slowest.EnableColor()
	scheme.Muted.EnableColor()
	scheme.Success.EnableColor()
	scheme.Error.EnableColor()
	scheme.Highlight.EnableColor()

	return scheme
}

// SuccessIcon returns a checkmark symbol with appropriate color
func SuccessIcon(noColor bool) string {
	if noColor {
		return "✓"
	}
	return color.New(color.FgGreen).Sprint("✓")
}

// ErrorIcon returns an X symbol with appropriate color
func ErrorIcon(noColor bool) string {
	if noColor {
		return "✗"
	}
	return color.New(color.FgRed).Sprint("✗")
}

// InfoIcon returns an info symbol with appropriate color
func InfoIcon(noColor bool) string {
	if noColor {
		return "ℹ"
	}
	return color.New(color.FgBlue).Sprint("ℹ")
}
