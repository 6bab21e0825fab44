package ui

import (
	"aarogya/internal/chat"
	"aarogya/internal/db"
	"aarogya/internal/i18n"
	"aarogya/internal/models"
	"aarogya/internal/settings"
	"aarogya/internal/styles"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func newField(placeholder string, password bool) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "❯ "
	ti.CharLimit = 0
	ti.Width = 38
	if password {
		ti.EchoMode = textinput.EchoPassword
		ti.EchoCharacter = '•'
	}
	return ti
}

func (m *Model) loginFields() []textinput.Model {
	lang := m.Settings.Language
	fields := []textinput.Model{
		newField(i18n.T(lang, "username"), false),
		newField(i18n.T(lang, "password"), true),
	}
	fields[loginFieldIdentifier].Focus()
	return fields
}

func (m *Model) registerFields() []textinput.Model {
	lang := m.Settings.Language
	fields := []textinput.Model{
		newField(i18n.T(lang, "fullName"), false),
		newField(i18n.T(lang, "emailAddress"), false),
		newField(i18n.T(lang, "phoneNumber"), false),
		newField(i18n.T(lang, "password"), true),
		newField(i18n.T(lang, "confirmPassword"), true),
	}
	fields[registerFieldName].Focus()
	return fields
}

func (m *Model) forgotFields() []textinput.Model {
	lang := m.Settings.Language
	fields := []textinput.Model{
		newField(i18n.T(lang, "emailAddress"), false),
		newField(i18n.T(lang, "newPassword"), true),
		newField(i18n.T(lang, "confirmNewPassword"), true),
	}
	fields[forgotFieldEmail].Focus()
	return fields
}

func InitialModel() Model {
	settingsPath, _ := settings.DefaultPath()
	cfg, _ := settings.Load(settingsPath)
	styles.ApplyDarkMode(cfg.DarkMode)

	dbConn, dbErr := db.OpenDefault()

	store := chat.NewStore()
	store.Append(models.SenderAssistant, chat.GreetingText, nil)
	orchestrator := chat.NewOrchestrator(store, chat.NewVisionClient(), chat.NewCompletionClient())

	ti := textarea.New()
	ti.Placeholder = "Type a message..."
	ti.Prompt = "❯ "
	ti.ShowLineNumbers = false
	ti.CharLimit = 0
	ti.MaxHeight = 4
	ti.SetHeight(2)
	ti.SetWidth(80)
	ti.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ti.BlurredStyle.CursorLine = lipgloss.NewStyle()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(styles.CurrentTheme.Primary)

	vp := viewport.New(60, 15)

	apiKey := newField("sk-...", true)
	apiKey.SetValue(cfg.OpenAIAPIKey)

	m := Model{
		Screen:       ScreenLogin,
		DB:           dbConn,
		DBErr:        dbErr,
		Settings:     cfg,
		SettingsPath: settingsPath,
		Orchestrator: orchestrator,
		Viewport:     vp,
		ChatInput:    ti,
		Spinner:      sp,
		APIKeyInput:  apiKey,
	}
	m.LoginInputs = m.loginFields()
	m.RegisterInputs = m.registerFields()
	m.RegisterErrs = make([]string, len(m.RegisterInputs))
	m.ForgotInputs = m.forgotFields()
	m.ForgotErrs = make([]string, len(m.ForgotInputs))
	return m
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.Spinner.Tick,
	)
}

func NewProgram() *tea.Program {
	m := InitialModel()
	return tea.NewProgram(&m, tea.WithAltScreen())
}
