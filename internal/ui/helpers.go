package ui

import (
	"fmt"
	"regexp"
	"strings"

	"aarogya/internal/models"
	"aarogya/internal/styles"

	"github.com/charmbracelet/lipgloss"
)

var (
	emailRE = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	phoneRE = regexp.MustCompile(`^[0-9]{10}$`)
)

// ValidEmail reports whether s looks like an email address. The check is
// deliberately loose; the address is only used as a login identifier.
func ValidEmail(s string) bool {
	return emailRE.MatchString(s)
}

// ValidPhone accepts exactly ten digits.
func ValidPhone(s string) bool {
	return phoneRE.MatchString(s)
}

// ParseCommand splits a slash command from the input line. It returns the
// command name without the slash, the remaining argument text, and whether
// the line was a command at all.
func ParseCommand(line string) (cmd, arg string, ok bool) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, "/") {
		return "", "", false
	}
	rest := strings.TrimPrefix(line, "/")
	if rest == "" {
		return "", "", false
	}
	parts := strings.SplitN(rest, " ", 2)
	cmd = strings.ToLower(parts[0])
	if len(parts) == 2 {
		arg = strings.TrimSpace(parts[1])
	}
	return cmd, arg, true
}

// FormatUserMessage renders one user message for the viewport.
func FormatUserMessage(msg models.Message, width int) string {
	header := lipgloss.JoinHorizontal(
		lipgloss.Center,
		styles.UserLabelStyle.Render("You"),
		styles.TimestampStyle.Render(msg.Timestamp.Format("15:04")),
	)
	text := msg.Text
	if msg.Attachment != nil {
		chip := styles.ChipStyle.Render("📎 image")
		if text == "" {
			text = chip
		} else {
			text = chip + "\n" + text
		}
	}
	body := styles.UserMsgStyle.Width(width).Render(text)
	return header + "\n" + body
}

// FormatDoctorMessage renders one assistant message, markdown already
// rendered by the caller when a renderer is available.
func FormatDoctorMessage(msg models.Message, rendered string, width int) string {
	header := lipgloss.JoinHorizontal(
		lipgloss.Center,
		styles.DoctorLabelStyle.Render("AI Doctor"),
		styles.TimestampStyle.Render(msg.Timestamp.Format("15:04")),
	)
	body := styles.DoctorMsgStyle.Width(width).Render(strings.TrimRight(rendered, "\n"))
	return header + "\n" + body
}

// FormatNotice renders a transient system notice.
func FormatNotice(msg models.Message) string {
	return styles.NoticeStyle.Render(fmt.Sprintf("· %s", msg.Text))
}

// TruncateRunes shortens s to at most n runes, appending an ellipsis when
// something was cut.
func TruncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n <= 1 {
		return string(runes[:n])
	}
	return string(runes[:n-1]) + "…"
}
