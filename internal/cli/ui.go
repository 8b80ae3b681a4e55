package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Terminal palette. Indexed colors so the output degrades cleanly on
// 256-color terminals.
var (
	colorCyan   = lipgloss.Color("36")
	colorGreen  = lipgloss.Color("35")
	colorYellow = lipgloss.Color("220")
	colorRed    = lipgloss.Color("167")
	colorBlue   = lipgloss.Color("75")
	colorWhite  = lipgloss.Color("255")
	colorGray   = lipgloss.Color("245")
	colorDim    = lipgloss.Color("240")
)

// Styles shared across commands.
var (
	StyleTitle     = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	StyleHighlight = lipgloss.NewStyle().Foreground(colorCyan)
	StyleDim       = lipgloss.NewStyle().Foreground(colorDim)
	StyleValue     = lipgloss.NewStyle().Foreground(colorWhite)
	StyleSuccess   = lipgloss.NewStyle().Foreground(colorGreen)
	StyleWarning   = lipgloss.NewStyle().Foreground(colorYellow)
)

var (
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)
	styleScoreHigh   = lipgloss.NewStyle().Foreground(colorGreen)
	styleScoreLow    = lipgloss.NewStyle().Foreground(colorYellow)
	styleCommand     = lipgloss.NewStyle().Foreground(colorBlue)
	styleKey         = lipgloss.NewStyle().Foreground(colorGray).Width(12)
)

const iconArrow = "→"

// printIcon renders a one-glyph status prefix followed by the message.
func printIcon(glyph string, color lipgloss.Color, msg string) {
	fmt.Println(lipgloss.NewStyle().Foreground(color).Render(glyph) + " " + msg)
}

func printSuccess(format string, args ...any) {
	printIcon("✓", colorGreen, fmt.Sprintf(format, args...))
}

func printError(format string, args ...any) {
	printIcon("✗", colorRed, fmt.Sprintf(format, args...))
}

func printWarning(format string, args ...any) {
	printIcon("!", colorYellow, StyleWarning.Render(fmt.Sprintf(format, args...)))
}

func printInfo(format string, args ...any) {
	printIcon("›", colorGray, fmt.Sprintf(format, args...))
}

// printDetail prints an indented secondary line.
func printDetail(format string, args ...any) {
	fmt.Println("  " + StyleDim.Render(fmt.Sprintf(format, args...)))
}

// printFile prints the path of a written output file.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(path))
}

// printKeyValue prints a labeled value with a fixed-width key column.
func printKeyValue(key, value string) {
	fmt.Println(styleKey.Render(key) + " " + StyleValue.Render(value))
}

// printLogoStats prints one variation's score and structure on a single line.
// Scores at or above threshold render green, below in amber.
func printLogoStats(variant int, hash string, score float64, elements int, threshold float64) {
	scoreStyle := styleScoreHigh
	if score < threshold {
		scoreStyle = styleScoreLow
	}
	short := hash
	if len(short) > 12 {
		short = short[:12]
	}
	fmt.Println("  " +
		StyleDim.Render(fmt.Sprintf("#%d", variant)) + " " +
		StyleValue.Render(short) +
		StyleDim.Render(" · ") +
		scoreStyle.Render(fmt.Sprintf("%.1f", score)) +
		StyleDim.Render(fmt.Sprintf(" · %d elements", elements)))
}

// printNextStep prints a suggested follow-up command.
func printNextStep(description, cmd string) {
	fmt.Println(StyleDim.Render(description+":") + " " + styleCommand.Render(cmd))
}

func printNewline() {
	fmt.Println()
}
