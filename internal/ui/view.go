package ui

import (
	"fmt"
	"strings"

	"aarogya/internal/i18n"
	"aarogya/internal/models"
	"aarogya/internal/styles"

	"github.com/charmbracelet/lipgloss"
)

func (m *Model) View() string {
	switch m.Screen {
	case ScreenLogin:
		return m.viewLogin()
	case ScreenRegister:
		return m.viewRegister()
	case ScreenForgot:
		return m.viewForgot()
	case ScreenHome:
		if m.SettingsOpen {
			return m.viewSettings()
		}
		return m.viewHome()
	}
	return ""
}

// UpdateViewport rebuilds the viewport content from the conversation log.
func (m *Model) UpdateViewport() {
	width := m.Viewport.Width - 4
	if width < 20 {
		width = 40
	}

	var b strings.Builder
	for _, msg := range m.Orchestrator.Store().Messages() {
		switch msg.Sender {
		case models.SenderUser:
			b.WriteString(FormatUserMessage(msg, width))
		case models.SenderAssistant:
			rendered := msg.Text
			if m.Renderer != nil {
				if out, err := m.Renderer.Render(msg.Text); err == nil {
					rendered = out
				}
			}
			b.WriteString(FormatDoctorMessage(msg, rendered, width))
		case models.SenderNotice:
			b.WriteString(FormatNotice(msg))
		}
		b.WriteString("\n\n")
	}

	if m.Orchestrator.Store().Pending() {
		b.WriteString(styles.NoticeStyle.Render(m.Spinner.View() + " thinking..."))
		b.WriteString("\n")
	}

	m.Viewport.SetContent(b.String())
}

func (m *Model) centered(content string) string {
	if m.WindowWidth == 0 || m.WindowHeight == 0 {
		return content
	}
	return lipgloss.Place(m.WindowWidth, m.WindowHeight, lipgloss.Center, lipgloss.Center, content)
}

// renderField renders a labelled input with its inline error, if any.
func renderField(label string, input string, errText string) string {
	var b strings.Builder
	b.WriteString(styles.FieldLabelStyle.Render(label))
	b.WriteString("\n")
	b.WriteString(input)
	if errText != "" {
		b.WriteString("\n")
		b.WriteString(styles.ErrorStyle.Render(errText))
	}
	return b.String()
}

func (m *Model) viewLogin() string {
	lang := m.Settings.Language

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(i18n.T(lang, "welcome")))
	b.WriteString("\n\n")
	b.WriteString(renderField(i18n.T(lang, "username"), m.LoginInputs[loginFieldIdentifier].View(), ""))
	b.WriteString("\n\n")
	b.WriteString(renderField(i18n.T(lang, "password"), m.LoginInputs[loginFieldPassword].View(), ""))
	b.WriteString("\n\n")
	if m.LoginErr != "" {
		b.WriteString(styles.ErrorStyle.Render(m.LoginErr))
		b.WriteString("\n")
	}
	if m.LoginStatus != "" {
		b.WriteString(styles.SuccessStyle.Render(m.LoginStatus))
		b.WriteString("\n")
	}
	b.WriteString(styles.HintStyle.Render(fmt.Sprintf(
		"enter %s · ctrl+r %s · ctrl+f %s · ctrl+l %s (%s) · ctrl+c quit",
		i18n.T(lang, "login"),
		i18n.T(lang, "register"),
		i18n.T(lang, "forgotPassword"),
		i18n.T(lang, "selectLanguage"),
		lang,
	)))

	return m.centered(styles.FormBoxStyle.Render(b.String()))
}

func (m *Model) viewRegister() string {
	lang := m.Settings.Language
	labels := []string{
		i18n.T(lang, "fullName"),
		i18n.T(lang, "emailAddress"),
		i18n.T(lang, "phoneNumber"),
		i18n.T(lang, "password"),
		i18n.T(lang, "confirmPassword"),
	}

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(i18n.T(lang, "createAccount")))
	b.WriteString("\n\n")
	for i, input := range m.RegisterInputs {
		b.WriteString(renderField(labels[i], input.View(), m.RegisterErrs[i]))
		b.WriteString("\n\n")
	}
	if m.RegisterStatus != "" {
		b.WriteString(styles.ErrorStyle.Render(m.RegisterStatus))
		b.WriteString("\n")
	}
	b.WriteString(styles.HintStyle.Render(fmt.Sprintf(
		"enter %s · esc %s",
		i18n.T(lang, "submit"),
		i18n.T(lang, "backToLogin"),
	)))

	return m.centered(styles.FormBoxStyle.Render(b.String()))
}

func (m *Model) viewForgot() string {
	lang := m.Settings.Language

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(i18n.T(lang, "resetPassword")))
	b.WriteString("\n\n")
	b.WriteString(renderField(i18n.T(lang, "emailAddress"), m.ForgotInputs[forgotFieldEmail].View(), m.ForgotErrs[forgotFieldEmail]))
	b.WriteString("\n\n")
	if m.ForgotStep == 1 {
		b.WriteString(renderField(i18n.T(lang, "newPassword"), m.ForgotInputs[forgotFieldPassword].View(), m.ForgotErrs[forgotFieldPassword]))
		b.WriteString("\n\n")
		b.WriteString(renderField(i18n.T(lang, "confirmNewPassword"), m.ForgotInputs[forgotFieldConfirm].View(), m.ForgotErrs[forgotFieldConfirm]))
		b.WriteString("\n\n")
	}
	if m.ForgotStatus != "" {
		b.WriteString(styles.HintStyle.Render(m.ForgotStatus))
		b.WriteString("\n")
	}
	b.WriteString(styles.HintStyle.Render(fmt.Sprintf(
		"enter %s · esc %s",
		i18n.T(lang, "continue"),
		i18n.T(lang, "backToLogin"),
	)))

	return m.centered(styles.FormBoxStyle.Render(b.String()))
}

func (m *Model) viewHome() string {
	lang := m.Settings.Language

	name := i18n.T(lang, "user")
	if m.CurrentUser != nil {
		name = m.CurrentUser.Name
	}
	title := styles.TitleStyle.Render("🩺 Aarogya AI") +
		styles.HintStyle.Render(fmt.Sprintf("  %s, %s", i18n.T(lang, "welcomeBack"), name))

	var chip string
	if m.Staged != nil {
		chip = styles.ChipStyle.Render("📎 "+TruncateRunes(m.StagedName, 40)) +
			styles.HintStyle.Render(" /detach to remove")
	}

	var notice string
	if m.ChatNotice != "" {
		notice = styles.ErrorStyle.Render(m.ChatNotice)
	}

	input := styles.InputBoxStyle.Render(m.ChatInput.View())

	status := styles.StatusBarStyle.Width(m.Viewport.Width).Render(styles.HintStyle.Render(
		"enter send · /attach <path> · /clear · /logout · ctrl+s " + i18n.T(lang, "settings") + " · ctrl+c quit",
	))

	sections := []string{title, m.Viewport.View()}
	if chip != "" {
		sections = append(sections, chip)
	}
	if notice != "" {
		sections = append(sections, notice)
	}
	sections = append(sections, input, status)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func (m *Model) viewSettings() string {
	lang := m.Settings.Language

	apiKey := m.APIKeyInput.View()
	if m.SettingsRow != settingsRowAPIKey && m.Settings.OpenAIAPIKey != "" {
		apiKey = strings.Repeat("•", 12)
	}

	rows := []string{
		fmt.Sprintf("%s: %s", i18n.T(lang, "selectLanguage"), m.Settings.Language),
		fmt.Sprintf("Notifications: %s", onOff(m.Settings.Notifications)),
		fmt.Sprintf("Email notifications: %s", onOff(m.Settings.EmailNotifications)),
		fmt.Sprintf("Dark mode: %s", onOff(m.Settings.DarkMode)),
		"OpenAI API key: " + apiKey,
	}

	var b strings.Builder
	b.WriteString(styles.ModalTitleStyle.Render("⚙ " + i18n.T(lang, "settings")))
	for i, row := range rows {
		style := styles.ModalItemStyle
		if i == m.SettingsRow {
			style = styles.ModalSelectedStyle
		}
		b.WriteString(style.Render(row))
		b.WriteString("\n")
	}
	if m.SettingsNotice != "" {
		b.WriteString("\n")
		b.WriteString(styles.ErrorStyle.Render(m.SettingsNotice))
	}
	b.WriteString("\n")
	b.WriteString(styles.HintStyle.Render("↑/↓ move · enter/space toggle · esc save and close"))

	return m.centered(styles.ModalStyle.Width(ModalWidth).Render(b.String()))
}
