package ui

import (
	"github.com/charmbracelet/lipgloss"

	"coffeeflavours/internal/catalog"
)

// Theme colors used throughout the UI
const (
	ColorPaper  = "#F2EFE9" // Cream - page background
	ColorInk    = "#1A1A1A" // Near black - body text, buttons
	ColorAccent = "#C4B7AB" // Latte - buttons, highlights
	ColorDeep   = "#A69F95" // Darker latte - borders, hover
	ColorMuted  = "#8C8C8C" // Gray - for dimmed text, hints
	ColorDanger = "#B3261E" // Red - for validation errors
	ColorWhite  = "#FFFFFF"
)

// Styles contains shared style definitions used across views and overlays.
var Styles = struct {
	// Brand and headings
	Brand    lipgloss.Style // Italic bold wordmark
	Kicker   lipgloss.Style // Spaced uppercase label above headings
	Headline lipgloss.Style // Page headlines
	Title    lipgloss.Style // Section titles

	// Boxes
	Page  lipgloss.Style // Full-screen page frame
	Modal lipgloss.Style // Booking modal box
	Card  lipgloss.Style // Location / discovery cards

	// Text
	Body     lipgloss.Style // Normal text
	Muted    lipgloss.Style // Dimmed text
	Hint     lipgloss.Style // Key hints
	Selected lipgloss.Style // Highlighted/selected items
	Error    lipgloss.Style // Validation errors
	Success  lipgloss.Style // Receipts

	// Controls
	Button        lipgloss.Style // Primary dark button
	ButtonAccent  lipgloss.Style // "Book Now" button
	ButtonFocused lipgloss.Style // Focused button
	Field         lipgloss.Style // Read-only form field
	Label         lipgloss.Style // Form labels
}{
	Brand: lipgloss.NewStyle().
		Bold(true).
		Italic(true).
		Foreground(lipgloss.Color(ColorInk)),
	Kicker: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorMuted)),
	Headline: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorInk)).
		MarginBottom(1),
	Title: lipgloss.NewStyle().
		Bold(true).
		Underline(true).
		Foreground(lipgloss.Color(ColorInk)),
	Page: lipgloss.NewStyle().
		Padding(1, 4),
	Modal: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(1, 3),
	Card: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorDeep)).
		Padding(0, 2).
		MarginRight(1),
	Body: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorInk)),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Selected: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorInk)),
	Error: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)),
	Success: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDeep)).
		Bold(true),
	Button: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorWhite)).
		Background(lipgloss.Color(ColorInk)).
		Padding(0, 3),
	ButtonAccent: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorWhite)).
		Background(lipgloss.Color(ColorAccent)).
		Padding(0, 3),
	ButtonFocused: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorWhite)).
		Background(lipgloss.Color(ColorDeep)).
		Padding(0, 3),
	Field: lipgloss.NewStyle().
		Background(lipgloss.Color("#EDEBE8")).
		Foreground(lipgloss.Color(ColorInk)).
		Padding(0, 1),
	Label: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorMuted)),
}

// HeroStyles derives the hero panel styles from a coffee's palette.
func HeroStyles(item catalog.CoffeeItem) (panel, accent lipgloss.Style) {
	panel = lipgloss.NewStyle().
		Background(lipgloss.Color(item.BgColor)).
		Foreground(lipgloss.Color(item.TextColor))
	accent = lipgloss.NewStyle().
		Foreground(lipgloss.Color(item.AccentColor)).
		Background(lipgloss.Color(item.BgColor))
	return panel, accent
}
