package ui

import (
	"context"
	"errors"
	"strings"
	"time"

	"aarogya/internal/attach"
	"aarogya/internal/chat"
	"aarogya/internal/db"
	"aarogya/internal/i18n"
	"aarogya/internal/models"
	"aarogya/internal/settings"
	"aarogya/internal/styles"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
)

func runTurnCmd(turn *chat.Turn) tea.Cmd {
	return func() tea.Msg {
		return TurnDoneMsg{Result: turn.Run(context.Background())}
	}
}

func attachCmd(path string) tea.Cmd {
	return func() tea.Msg {
		att, err := attach.Prepare(path)
		return AttachResultMsg{Attachment: att, Name: path, Err: err}
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.WindowWidth = msg.Width
		m.WindowHeight = msg.Height
		m.resize()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.Spinner, cmd = m.Spinner.Update(msg)
		if m.Screen == ScreenHome && m.Orchestrator.Store().Pending() {
			m.UpdateViewport()
		}
		return m, cmd

	case TurnDoneMsg:
		m.UpdateViewport()
		m.Viewport.GotoBottom()
		return m, nil

	case AttachResultMsg:
		if msg.Err != nil {
			m.Staged = nil
			m.StagedName = ""
			m.ChatNotice = msg.Err.Error()
			return m, nil
		}
		m.Staged = msg.Attachment
		m.StagedName = msg.Name
		m.ChatNotice = ""
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		switch m.Screen {
		case ScreenLogin:
			return m.updateLogin(msg)
		case ScreenRegister:
			return m.updateRegister(msg)
		case ScreenForgot:
			return m.updateForgot(msg)
		case ScreenHome:
			if m.SettingsOpen {
				return m.updateSettings(msg)
			}
			return m.updateHome(msg)
		}
	}

	return m, nil
}

func (m *Model) resize() {
	contentWidth := m.WindowWidth - 4
	if contentWidth > 100 {
		contentWidth = 100
	}
	if contentWidth < 20 {
		contentWidth = 20
	}

	m.Viewport.Width = contentWidth
	m.Viewport.Height = m.WindowHeight - 9
	if m.Viewport.Height < 5 {
		m.Viewport.Height = 5
	}
	m.ChatInput.SetWidth(contentWidth - 4)

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(contentWidth-6),
	)
	if err == nil {
		m.Renderer = renderer
	}
	m.UpdateViewport()
}

// ---- login ----

func (m *Model) updateLogin(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	lang := m.Settings.Language
	switch msg.String() {
	case "ctrl+r":
		m.Screen = ScreenRegister
		m.RegisterStatus = ""
		return m, nil
	case "ctrl+f":
		m.Screen = ScreenForgot
		m.ForgotStep = 0
		m.ForgotStatus = ""
		return m, nil
	case "ctrl+l":
		m.switchLanguage()
		return m, textinput.Blink
	case "tab", "down":
		m.LoginFocus = m.cycleFocus(m.LoginInputs, m.LoginFocus, 1)
		return m, textinput.Blink
	case "shift+tab", "up":
		m.LoginFocus = m.cycleFocus(m.LoginInputs, m.LoginFocus, -1)
		return m, textinput.Blink
	case "enter":
		if m.LoginFocus < len(m.LoginInputs)-1 {
			m.LoginFocus = m.cycleFocus(m.LoginInputs, m.LoginFocus, 1)
			return m, textinput.Blink
		}
		identifier := strings.TrimSpace(m.LoginInputs[loginFieldIdentifier].Value())
		password := m.LoginInputs[loginFieldPassword].Value()
		if identifier == "" || password == "" {
			m.LoginErr = i18n.T(lang, "allFieldsRequired")
			return m, nil
		}
		if m.DBErr != nil {
			m.LoginErr = m.DBErr.Error()
			return m, nil
		}
		user, err := db.Authenticate(m.DB, identifier, password)
		if err != nil {
			m.LoginErr = i18n.T(lang, "loginError")
			return m, nil
		}
		m.CurrentUser = user
		m.LoginErr = ""
		m.LoginStatus = ""
		m.enterHome()
		return m, textinput.Blink
	}

	var cmd tea.Cmd
	m.LoginInputs[m.LoginFocus], cmd = m.LoginInputs[m.LoginFocus].Update(msg)
	return m, cmd
}

// ---- register ----

func (m *Model) updateRegister(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	lang := m.Settings.Language
	switch msg.String() {
	case "esc":
		m.Screen = ScreenLogin
		return m, nil
	case "tab", "down":
		m.RegisterFocus = m.cycleFocus(m.RegisterInputs, m.RegisterFocus, 1)
		return m, textinput.Blink
	case "shift+tab", "up":
		m.RegisterFocus = m.cycleFocus(m.RegisterInputs, m.RegisterFocus, -1)
		return m, textinput.Blink
	case "enter":
		if m.RegisterFocus < len(m.RegisterInputs)-1 {
			m.RegisterFocus = m.cycleFocus(m.RegisterInputs, m.RegisterFocus, 1)
			return m, textinput.Blink
		}
		if !m.validateRegister() {
			return m, nil
		}
		if m.DBErr != nil {
			m.RegisterStatus = m.DBErr.Error()
			return m, nil
		}
		_, err := db.CreateUser(
			m.DB,
			strings.TrimSpace(m.RegisterInputs[registerFieldName].Value()),
			strings.TrimSpace(m.RegisterInputs[registerFieldEmail].Value()),
			strings.TrimSpace(m.RegisterInputs[registerFieldPhone].Value()),
			m.RegisterInputs[registerFieldPassword].Value(),
			time.Now(),
		)
		if err != nil {
			m.RegisterStatus = i18n.T(lang, "registrationFailed")
			return m, nil
		}
		m.RegisterStatus = ""
		m.LoginStatus = i18n.T(lang, "registrationSuccess")
		m.RegisterInputs = m.registerFields()
		m.RegisterFocus = registerFieldName
		m.RegisterErrs = make([]string, len(m.RegisterInputs))
		m.Screen = ScreenLogin
		return m, textinput.Blink
	}

	var cmd tea.Cmd
	m.RegisterInputs[m.RegisterFocus], cmd = m.RegisterInputs[m.RegisterFocus].Update(msg)
	return m, cmd
}

// validateRegister fills RegisterErrs field by field and reports whether
// the form as a whole passed.
func (m *Model) validateRegister() bool {
	lang := m.Settings.Language
	errs := make([]string, len(m.RegisterInputs))

	name := strings.TrimSpace(m.RegisterInputs[registerFieldName].Value())
	email := strings.TrimSpace(m.RegisterInputs[registerFieldEmail].Value())
	phone := strings.TrimSpace(m.RegisterInputs[registerFieldPhone].Value())
	password := m.RegisterInputs[registerFieldPassword].Value()
	confirm := m.RegisterInputs[registerFieldConfirm].Value()

	if name == "" {
		errs[registerFieldName] = i18n.T(lang, "nameRequired")
	}
	switch {
	case email == "":
		errs[registerFieldEmail] = i18n.T(lang, "emailRequired")
	case !ValidEmail(email):
		errs[registerFieldEmail] = i18n.T(lang, "emailInvalid")
	}
	switch {
	case phone == "":
		errs[registerFieldPhone] = i18n.T(lang, "phoneRequired")
	case !ValidPhone(phone):
		errs[registerFieldPhone] = i18n.T(lang, "phoneInvalid")
	}
	switch {
	case password == "":
		errs[registerFieldPassword] = i18n.T(lang, "passwordRequired")
	case len(password) < PasswordMinLen:
		errs[registerFieldPassword] = i18n.T(lang, "passwordLength")
	}
	if confirm != password {
		errs[registerFieldConfirm] = i18n.T(lang, "passwordsDontMatch")
	}

	m.RegisterErrs = errs
	for _, e := range errs {
		if e != "" {
			return false
		}
	}
	return true
}

// ---- forgot password ----

func (m *Model) updateForgot(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	lang := m.Settings.Language
	switch msg.String() {
	case "esc":
		m.Screen = ScreenLogin
		m.resetForgot()
		return m, nil
	case "tab", "down":
		if m.ForgotStep == 1 {
			m.ForgotFocus = m.cycleForgotFocus(1)
			return m, textinput.Blink
		}
		return m, nil
	case "shift+tab", "up":
		if m.ForgotStep == 1 {
			m.ForgotFocus = m.cycleForgotFocus(-1)
			return m, textinput.Blink
		}
		return m, nil
	case "enter":
		if m.ForgotStep == 0 {
			email := strings.TrimSpace(m.ForgotInputs[forgotFieldEmail].Value())
			if email == "" {
				m.ForgotErrs[forgotFieldEmail] = i18n.T(lang, "emailRequired")
				return m, nil
			}
			if m.DBErr != nil {
				m.ForgotErrs[forgotFieldEmail] = m.DBErr.Error()
				return m, nil
			}
			if _, err := db.FindUserByEmail(m.DB, email); err != nil {
				m.ForgotErrs[forgotFieldEmail] = i18n.T(lang, "emailNotFound")
				return m, nil
			}
			m.ForgotErrs[forgotFieldEmail] = ""
			m.ForgotStep = 1
			m.ForgotInputs[forgotFieldEmail].Blur()
			m.ForgotFocus = forgotFieldPassword
			m.ForgotInputs[forgotFieldPassword].Focus()
			m.ForgotStatus = i18n.T(lang, "enterNewPassword")
			return m, textinput.Blink
		}
		if m.ForgotFocus < forgotFieldConfirm {
			m.ForgotFocus = m.cycleForgotFocus(1)
			return m, textinput.Blink
		}
		password := m.ForgotInputs[forgotFieldPassword].Value()
		confirm := m.ForgotInputs[forgotFieldConfirm].Value()
		switch {
		case password == "":
			m.ForgotErrs[forgotFieldPassword] = i18n.T(lang, "passwordRequired")
			return m, nil
		case len(password) < PasswordMinLen:
			m.ForgotErrs[forgotFieldPassword] = i18n.T(lang, "passwordLength")
			return m, nil
		case confirm != password:
			m.ForgotErrs[forgotFieldConfirm] = i18n.T(lang, "passwordsDontMatch")
			return m, nil
		}
		email := strings.TrimSpace(m.ForgotInputs[forgotFieldEmail].Value())
		if err := db.UpdatePassword(m.DB, email, password, time.Now()); err != nil {
			m.ForgotStatus = i18n.T(lang, "passwordResetFailed")
			return m, nil
		}
		m.LoginStatus = i18n.T(lang, "passwordResetSuccess")
		m.Screen = ScreenLogin
		m.resetForgot()
		return m, textinput.Blink
	}

	var cmd tea.Cmd
	m.ForgotInputs[m.ForgotFocus], cmd = m.ForgotInputs[m.ForgotFocus].Update(msg)
	return m, cmd
}

func (m *Model) resetForgot() {
	m.ForgotInputs = m.forgotFields()
	m.ForgotFocus = forgotFieldEmail
	m.ForgotErrs = make([]string, len(m.ForgotInputs))
	m.ForgotStep = 0
	m.ForgotStatus = ""
}

// cycleForgotFocus moves between the password fields of step two; the email
// field is locked once the account was found.
func (m *Model) cycleForgotFocus(dir int) int {
	next := m.ForgotFocus + dir
	if next < forgotFieldPassword {
		next = forgotFieldConfirm
	}
	if next > forgotFieldConfirm {
		next = forgotFieldPassword
	}
	for i := range m.ForgotInputs {
		m.ForgotInputs[i].Blur()
	}
	m.ForgotInputs[next].Focus()
	return next
}

func (m *Model) cycleFocus(fields []textinput.Model, cur, dir int) int {
	next := (cur + dir + len(fields)) % len(fields)
	for i := range fields {
		fields[i].Blur()
	}
	fields[next].Focus()
	return next
}

// ---- home / chat ----

func (m *Model) enterHome() {
	m.Screen = ScreenHome
	m.ChatInput.Focus()
	m.UpdateViewport()
	m.Viewport.GotoBottom()
}

func (m *Model) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.openSettings()
		return m, textinput.Blink
	case "pgup":
		m.Viewport.HalfViewUp()
		return m, nil
	case "pgdown":
		m.Viewport.HalfViewDown()
		return m, nil
	case "enter":
		return m.submitChat()
	}

	var cmd tea.Cmd
	m.ChatInput, cmd = m.ChatInput.Update(msg)
	return m, cmd
}

func (m *Model) submitChat() (tea.Model, tea.Cmd) {
	line := m.ChatInput.Value()

	if cmd, arg, ok := ParseCommand(line); ok {
		return m.runCommand(cmd, arg)
	}

	turn, err := m.Orchestrator.Submit(line, m.Staged, m.Settings.OpenAIAPIKey)
	if err != nil {
		switch {
		case errors.Is(err, chat.ErrNoCredential):
			m.openSettings()
			m.SettingsNotice = "Please set your OpenAI API key in Settings first"
		case errors.Is(err, chat.ErrEmptyTurn), errors.Is(err, chat.ErrTurnInFlight):
			// inert; nothing to report
		default:
			m.ChatNotice = err.Error()
		}
		return m, nil
	}

	m.ChatInput.Reset()
	m.Staged = nil
	m.StagedName = ""
	m.ChatNotice = ""
	m.UpdateViewport()
	m.Viewport.GotoBottom()
	return m, tea.Batch(runTurnCmd(turn), m.Spinner.Tick)
}

func (m *Model) runCommand(cmd, arg string) (tea.Model, tea.Cmd) {
	switch cmd {
	case "attach":
		if arg == "" {
			m.ChatNotice = "usage: /attach <path-to-image>"
			return m, nil
		}
		m.ChatInput.Reset()
		m.ChatNotice = "loading " + arg + "..."
		return m, attachCmd(arg)
	case "detach":
		m.Staged = nil
		m.StagedName = ""
		m.ChatNotice = ""
		m.ChatInput.Reset()
		return m, nil
	case "clear":
		m.Orchestrator.Store().Reset()
		m.Orchestrator.Store().Append(models.SenderAssistant, chat.GreetingText, nil)
		m.ChatInput.Reset()
		m.ChatNotice = ""
		m.UpdateViewport()
		m.Viewport.GotoBottom()
		return m, nil
	case "settings":
		m.ChatInput.Reset()
		m.openSettings()
		return m, textinput.Blink
	case "logout":
		m.logout()
		return m, textinput.Blink
	default:
		m.ChatNotice = "unknown command: /" + cmd
		return m, nil
	}
}

func (m *Model) logout() {
	m.CurrentUser = nil
	m.Staged = nil
	m.StagedName = ""
	m.ChatNotice = ""
	m.ChatInput.Reset()
	m.SettingsOpen = false

	m.Orchestrator.Store().Reset()
	m.Orchestrator.Store().Append(models.SenderAssistant, chat.GreetingText, nil)

	m.LoginInputs = m.loginFields()
	m.LoginFocus = loginFieldIdentifier
	m.LoginErr = ""
	m.LoginStatus = ""
	m.RegisterInputs = m.registerFields()
	m.RegisterFocus = registerFieldName
	m.RegisterErrs = make([]string, len(m.RegisterInputs))
	m.resetForgot()
	m.Screen = ScreenLogin
}

// ---- settings modal ----

func (m *Model) openSettings() {
	m.SettingsOpen = true
	m.SettingsRow = settingsRowLanguage
	m.SettingsNotice = ""
	m.APIKeyInput.SetValue(m.Settings.OpenAIAPIKey)
	m.APIKeyInput.Blur()
	m.ChatInput.Blur()
}

func (m *Model) closeSettings() {
	m.Settings.OpenAIAPIKey = strings.TrimSpace(m.APIKeyInput.Value())
	if err := settings.Save(m.SettingsPath, m.Settings); err != nil {
		m.ChatNotice = "failed to save settings: " + err.Error()
	}
	styles.ApplyDarkMode(m.Settings.DarkMode)
	m.SettingsOpen = false
	m.SettingsNotice = ""
	m.APIKeyInput.Blur()
	m.ChatInput.Focus()
	m.UpdateViewport()
}

func (m *Model) updateSettings(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+s":
		m.closeSettings()
		return m, textinput.Blink
	case "up":
		m.moveSettingsRow(-1)
		return m, textinput.Blink
	case "down", "tab":
		m.moveSettingsRow(1)
		return m, textinput.Blink
	case "enter", " ", "left", "right":
		if m.SettingsRow != settingsRowAPIKey {
			m.toggleSettingsRow()
			return m, nil
		}
		if msg.String() == "enter" {
			m.closeSettings()
			return m, textinput.Blink
		}
	}

	if m.SettingsRow == settingsRowAPIKey {
		var cmd tea.Cmd
		m.APIKeyInput, cmd = m.APIKeyInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) moveSettingsRow(dir int) {
	m.SettingsRow = (m.SettingsRow + dir + settingsRowCount) % settingsRowCount
	if m.SettingsRow == settingsRowAPIKey {
		m.APIKeyInput.Focus()
	} else {
		m.APIKeyInput.Blur()
	}
}

func (m *Model) toggleSettingsRow() {
	switch m.SettingsRow {
	case settingsRowLanguage:
		m.Settings.Language = nextLang(m.Settings.Language)
	case settingsRowNotifications:
		m.Settings.Notifications = !m.Settings.Notifications
	case settingsRowEmailNotifications:
		m.Settings.EmailNotifications = !m.Settings.EmailNotifications
	case settingsRowDarkMode:
		m.Settings.DarkMode = !m.Settings.DarkMode
	}
}

// switchLanguage cycles the locale from the login screen and rebuilds the
// form fields so placeholders pick up the new language. The choice persists
// like any other setting.
func (m *Model) switchLanguage() {
	m.Settings.Language = nextLang(m.Settings.Language)
	// best effort; the in-memory setting still applies
	_ = settings.Save(m.SettingsPath, m.Settings)

	values := make([]string, len(m.LoginInputs))
	for i := range m.LoginInputs {
		values[i] = m.LoginInputs[i].Value()
	}
	m.LoginInputs = m.loginFields()
	for i := range m.LoginInputs {
		m.LoginInputs[i].SetValue(values[i])
		m.LoginInputs[i].Blur()
	}
	m.LoginInputs[m.LoginFocus].Focus()

	m.RegisterInputs = m.registerFields()
	m.RegisterFocus = registerFieldName
	m.RegisterErrs = make([]string, len(m.RegisterInputs))
	m.resetForgot()
}

func nextLang(cur string) string {
	for i, l := range i18n.Langs {
		if l == cur {
			return i18n.Langs[(i+1)%len(i18n.Langs)]
		}
	}
	return i18n.Langs[0]
}
