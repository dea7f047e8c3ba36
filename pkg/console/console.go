// Package console renders diagnostics and status messages for the CLI.
// It is the only place user-facing presentation happens; the
// configuration core never writes to any output stream.
package console

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/mistenkt/Detox/pkg/configuration"
	"github.com/mistenkt/Detox/pkg/constants"
)

// Styles for the diagnostic parts
var (
	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF5555"))

	warningStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFB86C"))

	infoStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#8BE9FD"))

	hintStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color("#50FA7B"))

	filePathStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#BD93F9"))

	debugLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6272A4"))

	verboseStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(lipgloss.Color("#6272A4"))
)

// isTTY checks if stdout is a terminal
func isTTY() bool {
	return isatty.IsTerminal(os.Stdout.Fd())
}

// applyStyle conditionally applies styling based on TTY status
func applyStyle(style lipgloss.Style, text string) string {
	if isTTY() {
		return style.Render(text)
	}
	return text
}

// ToRelativePath converts an absolute path to a relative path from the current working directory
func ToRelativePath(path string) string {
	if !filepath.IsAbs(path) {
		return path
	}

	wd, err := os.Getwd()
	if err != nil {
		return path
	}

	relPath, err := filepath.Rel(wd, path)
	if err != nil {
		return path
	}

	return relPath
}

// FormatDiagnostic renders a configuration diagnostic: the message,
// then the hint, then the depth-limited debug projection. Hint and
// debug info are best-effort enrichments; their absence renders
// nothing.
func FormatDiagnostic(d *configuration.Diagnostic) string {
	var output strings.Builder

	output.WriteString(applyStyle(errorStyle, "error:"))
	output.WriteString(" ")
	output.WriteString(d.Message)
	output.WriteString("\n")

	if d.Hint != "" {
		output.WriteString("\n")
		output.WriteString(applyStyle(hintStyle, "hint: "))
		output.WriteString(d.Hint)
		output.WriteString("\n")
	}

	if d.DebugInfo != nil {
		depth := d.RenderDepth
		if depth <= 0 {
			depth = constants.DefaultRenderDepth
		}
		output.WriteString("\n")
		output.WriteString(applyStyle(debugLabelStyle, "debug info:"))
		output.WriteString("\n")
		output.WriteString(RenderDebugInfo(d.DebugInfo, depth))
		output.WriteString("\n")
	}

	return output.String()
}

// FormatValidationSummary renders a one-line verdict for a validated
// configuration file.
func FormatValidationSummary(path, configurationName string) string {
	location := ToRelativePath(path)
	if configurationName == "" {
		return FormatSuccessMessage(fmt.Sprintf("%s is valid", location))
	}
	return FormatSuccessMessage(fmt.Sprintf("%s: configuration %q is valid", location, configurationName))
}

// FormatSuccessMessage formats a success message with styling
func FormatSuccessMessage(message string) string {
	successStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#50FA7B"))

	return applyStyle(successStyle, "✓ ") + message
}

// FormatInfoMessage formats an informational message
func FormatInfoMessage(message string) string {
	return applyStyle(infoStyle, "ℹ ") + message
}

// FormatWarningMessage formats a warning message
func FormatWarningMessage(message string) string {
	return applyStyle(warningStyle, "⚠ ") + message
}

// FormatErrorMessage formats a simple error message (for stderr output)
func FormatErrorMessage(message string) string {
	return applyStyle(errorStyle, "✗ ") + message
}

// FormatVerboseMessage formats verbose debugging output
func FormatVerboseMessage(message string) string {
	return applyStyle(verboseStyle, "🔍 ") + message
}

// FormatLocationMessage formats a file location message
func FormatLocationMessage(message string) string {
	return applyStyle(filePathStyle, "📁 ") + message
}
