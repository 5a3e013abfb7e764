package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorSuccess = lipgloss.Color("#10B981")
	colorWarning = lipgloss.Color("#F59E0B")
	colorError   = lipgloss.Color("#EF4444")
	colorInfo    = lipgloss.Color("#3B82F6")
	colorMuted   = lipgloss.Color("#6B7280")
	colorPrimary = lipgloss.Color("#7C3AED")

	successStyle = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(colorWarning).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(colorInfo)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	primaryStyle = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)
)

// Out is where the status helpers print. Tests may replace it.
var Out io.Writer = os.Stdout

func Success(format string, args ...any) {
	fmt.Fprint(Out, successStyle.Render("✓ "))
	fmt.Fprintf(Out, format+"\n", args...)
}

func Warning(format string, args ...any) {
	fmt.Fprint(Out, warningStyle.Render("⚠ "))
	fmt.Fprintf(Out, format+"\n", args...)
}

func Error(format string, args ...any) {
	fmt.Fprint(Out, errorStyle.Render("✗ "))
	fmt.Fprintf(Out, format+"\n", args...)
}

func Info(format string, args ...any) {
	fmt.Fprint(Out, infoStyle.Render("ℹ "))
	fmt.Fprintf(Out, format+"\n", args...)
}

func Muted(format string, args ...any) {
	fmt.Fprintln(Out, mutedStyle.Render(fmt.Sprintf(format, args...)))
}

// Section prints a header line followed by a blank line.
func Section(title string) {
	fmt.Fprintln(Out)
	fmt.Fprintln(Out, primaryStyle.Render(title))
	fmt.Fprintln(Out)
}
