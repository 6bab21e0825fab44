package ui

import (
	"database/sql"

	"aarogya/internal/chat"
	"aarogya/internal/models"
	"aarogya/internal/settings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/glamour"
)

const (
	ModalWidth = 60

	PasswordMinLen = 6
)

// Screen identifies which view the program is showing
type Screen int

const (
	ScreenLogin Screen = iota
	ScreenRegister
	ScreenForgot
	ScreenHome
)

// login form fields
const (
	loginFieldIdentifier = iota
	loginFieldPassword
)

// register form fields
const (
	registerFieldName = iota
	registerFieldEmail
	registerFieldPhone
	registerFieldPassword
	registerFieldConfirm
)

// forgot-password form fields
const (
	forgotFieldEmail = iota
	forgotFieldPassword
	forgotFieldConfirm
)

// settings modal rows
const (
	settingsRowLanguage = iota
	settingsRowNotifications
	settingsRowEmailNotifications
	settingsRowDarkMode
	settingsRowAPIKey
	settingsRowCount
)

// TurnDoneMsg reports a finished dialogue turn.
type TurnDoneMsg struct {
	Result chat.TurnResult
}

// AttachResultMsg reports the outcome of preparing a staged image.
type AttachResultMsg struct {
	Attachment *models.Attachment
	Name       string
	Err        error
}

type Model struct {
	Screen       Screen
	WindowWidth  int
	WindowHeight int

	DB          *sql.DB
	DBErr       error
	CurrentUser *models.UserRecord

	Settings     settings.Settings
	SettingsPath string

	Orchestrator *chat.Orchestrator
	Viewport     viewport.Model
	ChatInput    textarea.Model
	Spinner      spinner.Model
	Renderer     *glamour.TermRenderer
	Staged       *models.Attachment
	StagedName   string
	ChatNotice   string

	LoginInputs []textinput.Model
	LoginFocus  int
	LoginErr    string
	LoginStatus string

	RegisterInputs []textinput.Model
	RegisterFocus  int
	RegisterErrs   []string
	RegisterStatus string

	ForgotStep   int
	ForgotInputs []textinput.Model
	ForgotFocus  int
	ForgotErrs   []string
	ForgotStatus string

	SettingsOpen   bool
	SettingsRow    int
	APIKeyInput    textinput.Model
	SettingsNotice string
}
