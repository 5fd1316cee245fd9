package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	ColorAccent  = lipgloss.Color("#4ecca3")
	ColorDanger  = lipgloss.Color("#e94560")
	ColorWarning = lipgloss.Color("#f0a500")
	ColorDim     = lipgloss.Color("#555555")
	ColorStripe  = lipgloss.Color("#1f2a26")
	ColorSuccess = lipgloss.Color("#4ecca3")
	ColorError   = lipgloss.Color("#e94560")
)

// Border styles
var (
	FocusedBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorAccent)

	UnfocusedBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorDim)
)

// Text styles
var (
	AccentText  = lipgloss.NewStyle().Foreground(ColorAccent)
	DimText     = lipgloss.NewStyle().Foreground(ColorDim)
	ErrorText   = lipgloss.NewStyle().Foreground(ColorError)
	SuccessText = lipgloss.NewStyle().Foreground(ColorSuccess)
	WarningText = lipgloss.NewStyle().Foreground(ColorWarning)
)

// Header styles
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	SubHeaderStyle = lipgloss.NewStyle().
			Foreground(ColorDim)
)

// Table cell styles
var (
	GridBorder = lipgloss.NewStyle().Foreground(ColorDim)

	GridHeader = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true).
			Padding(0, 1)
	GridHeaderSelected = GridHeader.
				Reverse(true)
	GridHeaderLocked = lipgloss.NewStyle().
				Foreground(ColorDim).
				Bold(true).
				Padding(0, 1)

	CellNormal = lipgloss.NewStyle().Padding(0, 1)
	CellStripe = lipgloss.NewStyle().
			Padding(0, 1).
			Background(ColorStripe)
	CellFooter = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(ColorWarning).
			Bold(true)

	EmptyRow = lipgloss.NewStyle().
			Foreground(ColorDim).
			Italic(true).
			Align(lipgloss.Center).
			Border(lipgloss.NormalBorder(), false, true, true, true).
			BorderForeground(ColorDim)
)

// Status bar
var (
	StatusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#333333")).
			Foreground(lipgloss.Color("#cccccc")).
			Padding(0, 1)

	StatusErrorStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("#333333")).
				Foreground(ColorError).
				Padding(0, 1)

	StatusSuccessStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("#333333")).
				Foreground(ColorSuccess).
				Padding(0, 1)
)

// Sidebar styles
var (
	SidebarItem       = lipgloss.NewStyle().PaddingLeft(1)
	SidebarActiveItem = lipgloss.NewStyle().
				PaddingLeft(1).
				Foreground(ColorAccent).
				Bold(true)
	SidebarCursorItem = lipgloss.NewStyle().
				PaddingLeft(1).
				Reverse(true)
)

// Search styles
var (
	SearchInput = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)
	SearchLabel = lipgloss.NewStyle().
			Foreground(ColorAccent)
)

// Top bar style
var TopBarStyle = lipgloss.NewStyle().
	Background(lipgloss.Color("#333333")).
	Foreground(lipgloss.Color("#cccccc")).
	Padding(0, 1)
