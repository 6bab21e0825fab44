package styles

import "github.com/charmbracelet/lipgloss"

var (
	ContentWidth = 54
)

var (
	TitleStyle lipgloss.Style

	UserLabelStyle   lipgloss.Style
	UserMsgStyle     lipgloss.Style
	DoctorLabelStyle lipgloss.Style
	DoctorMsgStyle   lipgloss.Style
	NoticeStyle      lipgloss.Style

	ErrorStyle   lipgloss.Style
	SuccessStyle lipgloss.Style
	HintStyle    lipgloss.Style

	InputBoxStyle lipgloss.Style
	ChipStyle     lipgloss.Style

	FormBoxStyle    lipgloss.Style
	FieldLabelStyle lipgloss.Style

	ModalStyle         lipgloss.Style
	ModalTitleStyle    lipgloss.Style
	ModalItemStyle     lipgloss.Style
	ModalSelectedStyle lipgloss.Style

	StatusBarStyle lipgloss.Style
	TimestampStyle lipgloss.Style
)

func init() {
	rebuild()
}

func rebuild() {
	t := CurrentTheme

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Primary).
		Padding(0, 1)

	UserLabelStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(t.UserLabel).
		Bold(true).
		Padding(0, 1).
		MarginRight(1)

	UserMsgStyle = lipgloss.NewStyle().
		Foreground(t.TextPrimary).
		PaddingLeft(2).
		BorderLeft(true).
		BorderStyle(lipgloss.ThickBorder()).
		BorderForeground(t.UserLabel)

	DoctorLabelStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(t.BotLabel).
		Bold(true).
		Padding(0, 1).
		MarginRight(1)

	DoctorMsgStyle = lipgloss.NewStyle().
		Foreground(t.TextPrimary).
		PaddingTop(1).
		BorderLeft(true).
		BorderStyle(lipgloss.ThickBorder()).
		BorderForeground(t.BotLabel)

	NoticeStyle = lipgloss.NewStyle().
		Foreground(t.Notice).
		Italic(true).
		PaddingLeft(2)

	ErrorStyle = lipgloss.NewStyle().
		Foreground(t.Error).
		Bold(true)

	SuccessStyle = lipgloss.NewStyle().
		Foreground(t.Success).
		Bold(true)

	HintStyle = lipgloss.NewStyle().
		Foreground(t.TextMuted)

	InputBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Primary).
		Padding(0, 1)

	ChipStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(t.Accent).
		Padding(0, 1).
		MarginRight(1)

	FormBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Padding(1, 3)

	FieldLabelStyle = lipgloss.NewStyle().
		Foreground(t.Secondary).
		Bold(true)

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Primary).
		Padding(1, 2)

	ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Primary).
		Width(ContentWidth).
		MarginBottom(1)

	ModalItemStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Width(ContentWidth)

	ModalSelectedStyle = lipgloss.NewStyle().
		Padding(0, 1).
		Width(ContentWidth).
		Background(t.Primary).
		Foreground(lipgloss.Color("#FFFFFF"))

	StatusBarStyle = lipgloss.NewStyle().
		BorderTop(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(t.Border).
		Padding(0, 1)

	TimestampStyle = lipgloss.NewStyle().
		Foreground(t.TextMuted)
}
