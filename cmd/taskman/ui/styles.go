// Package ui provides the visual styling for the taskman terminal
// interface, with light/dark mode support.
package ui

import (
	"github.com/charmbracelet/lipgloss"

	"taskman/internal/model"
)

var (
	// Light mode colors
	LightForeground = lipgloss.Color("#27272a")
	LightPrimary    = lipgloss.Color("#7c3aed") // purple, the brand color
	LightMuted      = lipgloss.Color("#a1a1aa")
	LightBorder     = lipgloss.Color("#d4d4d8")

	// Dark mode colors
	DarkForeground = lipgloss.Color("#f4f4f5")
	DarkPrimary    = lipgloss.Color("#a78bfa")
	DarkMuted      = lipgloss.Color("#71717a")
	DarkBorder     = lipgloss.Color("#3f3f46")

	// Semantic colors, same in both modes
	Success = lipgloss.Color("#10b981")
	Danger  = lipgloss.Color("#ef4444")
	Info    = lipgloss.Color("#64748b")
	Warning = lipgloss.Color("#f59e0b")
)

// Theme holds the current color scheme.
type Theme struct {
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	IsDark     bool
}

func LightTheme() Theme {
	return Theme{
		Foreground: LightForeground,
		Primary:    LightPrimary,
		Muted:      LightMuted,
		Border:     LightBorder,
	}
}

func DarkTheme() Theme {
	return Theme{
		Foreground: DarkForeground,
		Primary:    DarkPrimary,
		Muted:      DarkMuted,
		Border:     DarkBorder,
		IsDark:     true,
	}
}

// ThemeFor maps the persisted preference to a color scheme.
func ThemeFor(t model.Theme) Theme {
	if t == model.ThemeDark {
		return DarkTheme()
	}
	return LightTheme()
}

// Styles bundles every lipgloss style the interface uses.
type Styles struct {
	Header       lipgloss.Style
	Label        lipgloss.Style
	FieldError   lipgloss.Style
	Help         lipgloss.Style
	TabActive    lipgloss.Style
	TabInactive  lipgloss.Style
	TaskTitle    lipgloss.Style
	TaskDone     lipgloss.Style
	TaskMeta     lipgloss.Style
	TaskOverdue  lipgloss.Style
	Selected     lipgloss.Style
	PriorityHigh lipgloss.Style
	PriorityMed  lipgloss.Style
	PriorityLow  lipgloss.Style
	ToastSuccess lipgloss.Style
	ToastError   lipgloss.Style
	ToastInfo    lipgloss.Style
	ToastExiting lipgloss.Style
	Confirm      lipgloss.Style
}

func NewStyles(t Theme) Styles {
	toast := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	return Styles{
		Header: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true).
			Padding(0, 1),
		Label:      lipgloss.NewStyle().Foreground(t.Foreground),
		FieldError: lipgloss.NewStyle().Foreground(Danger),
		Help:       lipgloss.NewStyle().Foreground(t.Muted),
		TabActive: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true).
			Underline(true).
			Padding(0, 1),
		TabInactive: lipgloss.NewStyle().
			Foreground(t.Muted).
			Padding(0, 1),
		TaskTitle: lipgloss.NewStyle().Foreground(t.Foreground),
		TaskDone: lipgloss.NewStyle().
			Foreground(t.Muted).
			Strikethrough(true),
		TaskMeta:     lipgloss.NewStyle().Foreground(t.Muted),
		TaskOverdue:  lipgloss.NewStyle().Foreground(Danger),
		Selected:     lipgloss.NewStyle().Foreground(t.Primary).Bold(true),
		PriorityHigh: lipgloss.NewStyle().Foreground(Danger),
		PriorityMed:  lipgloss.NewStyle().Foreground(Warning),
		PriorityLow:  lipgloss.NewStyle().Foreground(Success),
		ToastSuccess: toast.BorderForeground(Success),
		ToastError:   toast.BorderForeground(Danger),
		ToastInfo:    toast.BorderForeground(Info),
		ToastExiting: lipgloss.NewStyle().Foreground(t.Muted).Faint(true),
		Confirm: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(Danger).
			Padding(0, 2),
	}
}

// DefaultStyles returns the light mode styles.
func DefaultStyles() Styles {
	return NewStyles(LightTheme())
}
