// Package styles provides the shared lipgloss styles for the table widgets
// and the CLI.
package styles

import (
	"github.com/charmbracelet/glamour/ansi"
	glamourstyles "github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Palette defines a minimal semantic theme palette.
type Palette struct {
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Background lipgloss.Color
	Surface    lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
}

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Style exports. All of them are rebuilt by SetTheme.
var (
	CommandHeaderStyle lipgloss.Style
	DividerStyle       lipgloss.Style

	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	SummaryStyle  lipgloss.Style

	HeaderCellStyle   lipgloss.Style
	HeaderActiveStyle lipgloss.Style
	SortIndicator     lipgloss.Style

	CellStyle         lipgloss.Style
	LeadCellStyle     lipgloss.Style
	TitleCellStyle    lipgloss.Style
	RowCursorStyle    lipgloss.Style
	RowSelectedStyle  lipgloss.Style
	ColumnCursorStyle lipgloss.Style

	CheckboxOnStyle  lipgloss.Style
	CheckboxOffStyle lipgloss.Style

	TagStyle         lipgloss.Style
	TagOverflowStyle lipgloss.Style
	AvatarStyle      lipgloss.Style
	StarFilledStyle  lipgloss.Style
	StarEmptyStyle   lipgloss.Style
	ProgressDone     lipgloss.Style
	ProgressPending  lipgloss.Style
	ProgressLabel    lipgloss.Style
	LinkStyle        lipgloss.Style
	LinkDangerStyle  lipgloss.Style
	ButtonStyle      lipgloss.Style
	ButtonDanger     lipgloss.Style

	PageStyle         lipgloss.Style
	PageCurrentStyle  lipgloss.Style
	PageEllipsisStyle lipgloss.Style
	PageNavStyle      lipgloss.Style
	PageNavOffStyle   lipgloss.Style

	HelpStyle   lipgloss.Style
	StatusStyle lipgloss.Style

	ToastInfoStyle    lipgloss.Style
	ToastWarningStyle lipgloss.Style
	ToastErrorStyle   lipgloss.Style

	ModalStyle               lipgloss.Style
	ModalTitleStyle          lipgloss.Style
	ModalHelpStyle           lipgloss.Style
	ModalButtonStyle         lipgloss.Style
	ModalButtonSelectedStyle lipgloss.Style
)

// avatarPool is used for deterministic avatar colors.
var avatarPool []lipgloss.Color

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	CommandHeaderStyle = lipgloss.NewStyle().Foreground(p.Primary).Bold(true)
	DividerStyle = lipgloss.NewStyle().Foreground(p.Surface)

	TitleStyle = lipgloss.NewStyle().Foreground(p.Foreground).Bold(true)
	SubtitleStyle = lipgloss.NewStyle().Foreground(p.Muted)
	SummaryStyle = lipgloss.NewStyle().Foreground(p.Secondary)

	HeaderCellStyle = lipgloss.NewStyle().Foreground(p.Muted).Bold(true)
	HeaderActiveStyle = lipgloss.NewStyle().Foreground(p.Primary).Bold(true).Underline(true)
	SortIndicator = lipgloss.NewStyle().Foreground(p.Primary)

	CellStyle = lipgloss.NewStyle().Foreground(p.Foreground)
	LeadCellStyle = lipgloss.NewStyle().Foreground(p.Foreground).Bold(true)
	TitleCellStyle = lipgloss.NewStyle().Foreground(p.Primary)
	RowCursorStyle = lipgloss.NewStyle().Background(p.Surface)
	RowSelectedStyle = lipgloss.NewStyle().Foreground(p.Primary)
	ColumnCursorStyle = lipgloss.NewStyle().Foreground(p.Primary)

	CheckboxOnStyle = lipgloss.NewStyle().Foreground(p.Primary).Bold(true)
	CheckboxOffStyle = lipgloss.NewStyle().Foreground(p.Muted)

	TagStyle = lipgloss.NewStyle().Foreground(p.Secondary)
	TagOverflowStyle = lipgloss.NewStyle().Foreground(p.Muted)
	AvatarStyle = lipgloss.NewStyle().Bold(true)
	StarFilledStyle = lipgloss.NewStyle().Foreground(p.Warning)
	StarEmptyStyle = lipgloss.NewStyle().Foreground(p.Muted)
	ProgressDone = lipgloss.NewStyle().Foreground(p.Success)
	ProgressPending = lipgloss.NewStyle().Foreground(p.Muted)
	ProgressLabel = lipgloss.NewStyle().Foreground(p.Muted)
	LinkStyle = lipgloss.NewStyle().Foreground(p.Secondary).Underline(true)
	LinkDangerStyle = lipgloss.NewStyle().Foreground(p.Error).Underline(true)
	ButtonStyle = lipgloss.NewStyle().Foreground(p.Foreground)
	ButtonDanger = lipgloss.NewStyle().Foreground(p.Error)

	PageStyle = lipgloss.NewStyle().Foreground(p.Muted)
	PageCurrentStyle = lipgloss.NewStyle().Foreground(p.Primary).Bold(true)
	PageEllipsisStyle = lipgloss.NewStyle().Foreground(p.Muted)
	PageNavStyle = lipgloss.NewStyle().Foreground(p.Foreground)
	PageNavOffStyle = lipgloss.NewStyle().Foreground(p.Surface)

	HelpStyle = lipgloss.NewStyle().Foreground(p.Muted)
	StatusStyle = lipgloss.NewStyle().Foreground(p.Success)

	toast := lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).PaddingLeft(1)
	ToastInfoStyle = toast.BorderForeground(p.Secondary).Foreground(p.Foreground)
	ToastWarningStyle = toast.BorderForeground(p.Warning).Foreground(p.Warning)
	ToastErrorStyle = toast.BorderForeground(p.Error).Foreground(p.Error)

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Primary).
		Padding(1, 2)
	ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.Foreground)
	ModalHelpStyle = lipgloss.NewStyle().
		Foreground(p.Muted).
		MarginTop(1)
	ModalButtonStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(p.Surface).
		Foreground(p.Muted)
	ModalButtonSelectedStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Background(p.Error).
		Foreground(p.Background).
		Bold(true)

	avatarPool = []lipgloss.Color{
		p.Primary,
		p.Secondary,
		p.Success,
		p.Warning,
		p.Error,
	}
}

// ColorForString returns a deterministic color for a given string.
// The same string always produces the same color.
func ColorForString(s string) lipgloss.Color {
	var hash uint32
	for _, c := range s {
		hash = hash*31 + uint32(c)
	}
	return avatarPool[hash%uint32(len(avatarPool))]
}

// nolint:gochecknoinits // bootstrap default theme before any style is accessed.
func init() {
	SetTheme(themes[DefaultTheme])
}

func colorHexPtr(c lipgloss.Color) *string {
	cc, err := colorful.Hex(string(c))
	if err != nil {
		return nil
	}
	hex := cc.Hex()
	return &hex
}

// GlamourStyle returns a Glamour style config derived from the active theme.
func GlamourStyle() ansi.StyleConfig {
	cfg := glamourstyles.DarkStyleConfig

	fg := colorHexPtr(CurrentPalette.Foreground)
	primary := colorHexPtr(CurrentPalette.Primary)
	secondary := colorHexPtr(CurrentPalette.Secondary)
	muted := colorHexPtr(CurrentPalette.Muted)

	cfg.Document.Color = fg
	cfg.Paragraph.Color = fg

	cfg.Heading.Color = primary
	cfg.H1.Color = primary
	cfg.H2.Color = primary
	cfg.H3.Color = primary

	cfg.BlockQuote.Color = muted
	cfg.HorizontalRule.Color = muted

	cfg.Link.Color = secondary
	cfg.LinkText.Color = secondary

	cfg.Code.Color = secondary
	cfg.Table.Color = fg

	return cfg
}
