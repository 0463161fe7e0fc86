package render

import (
	"strings"

	"github.com/fatih/color"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	labelStyle   = color.New(color.Bold)
	sectionStyle = color.New(color.Bold, color.FgHiWhite)
	addressStyle = color.New(color.FgCyan)
	faintStyle   = color.New(color.Faint)
	numbers      = message.NewPrinter(language.English)
)

// FormatWarning formats a warning message with the warning icon
func FormatWarning(message string) string {
	return color.New(color.FgYellow).Sprintf("⚠️  %s", message)
}

// FormatError formats an error message with the error icon
func FormatError(message string) string {
	// Only the innermost cause of an error chain
	parts := strings.Split(message, ": ")
	msg := parts[len(parts)-1]

	// Capitalize first letter
	if len(msg) > 0 {
		msg = strings.ToUpper(msg[:1]) + msg[1:]
	}

	return color.New(color.FgRed).Sprintf("❌ %s", msg)
}

// FormatSuccess formats a success message with the success icon
func FormatSuccess(message string) string {
	return color.New(color.FgGreen).Sprintf("✅ %s", message)
}

// formatGas renders a gas amount with thousands separators
func formatGas(gas uint64) string {
	return numbers.Sprintf("%d", gas)
}

// section renders a "=== Title ===" header preceded by a blank line
func section(title string) string {
	return "\n" + sectionStyle.Sprintf("=== %s ===", title)
}
