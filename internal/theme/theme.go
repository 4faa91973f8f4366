package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Loading               *lipgloss.Style
	Item                  *lipgloss.Style
	ItemIndicator         *lipgloss.Style
	SelectedItemIndicator *lipgloss.Style
	SelectedItem          *lipgloss.Style
	Error                 *lipgloss.Style
	Info                  *lipgloss.Style
	Header                *lipgloss.Style
	Footer                *lipgloss.Style
	Filter                *lipgloss.Style
	FilterPrompt          *lipgloss.Style
	FilterPlaceholder     *lipgloss.Style
	Cursor                *lipgloss.Style

	Tab          *lipgloss.Style
	ActiveTab    *lipgloss.Style
	Caption      *lipgloss.Style
	FocusCaption *lipgloss.Style
	Value        *lipgloss.Style
	Arrow        *lipgloss.Style
	ArrowOff     *lipgloss.Style

	LevelTitle  *lipgloss.Style
	LevelText   *lipgloss.Style
	MetaLabel   *lipgloss.Style
	MetaValue   *lipgloss.Style
	CourseID    *lipgloss.Style
	Link        *lipgloss.Style
	Button      *lipgloss.Style
	ButtonOff   *lipgloss.Style
	Popover     *lipgloss.Style
	ErrorTitle  *lipgloss.Style
	ErrorDetail *lipgloss.Style
}

var defaultStyles = Styles{
	Loading: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Italic(true),
	),
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	ItemIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	),
	SelectedItemIndicator: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Background(lipgloss.Color("238")),
	),
	SelectedItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Info: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Filter: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	FilterPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	FilterPlaceholder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	Cursor: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("33")).Blink(true),
	),
	Tab: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Padding(0, 1),
	),
	ActiveTab: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("160")).Bold(true).Padding(0, 1),
	),
	Caption: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	FocusCaption: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
	),
	Value: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
	),
	Arrow: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
	),
	ArrowOff: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("238")).Faint(true),
	),
	LevelTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
	),
	LevelText: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Italic(true),
	),
	MetaLabel: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	MetaValue: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	),
	CourseID: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true),
	),
	Link: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Underline(true),
	),
	Button: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("28")).Padding(0, 1),
	),
	ButtonOff: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Background(lipgloss.Color("236")).Padding(0, 1),
	),
	Popover: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("114")).Padding(0, 1),
	),
	ErrorTitle: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	ErrorDetail: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
