package models

import "time"

const (
	SenderUser      = "user"
	SenderAssistant = "assistant"
	SenderNotice    = "system"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Attachment is a prepared image, encoded for transport as a base64 data URL.
// It lives only as long as the message that carries it; nothing persists it.
type Attachment struct {
	MimeType  string
	DataURL   string
	SizeBytes int64
}

// Message is one entry in the AI Doctor conversation.
type Message struct {
	ID         int
	Sender     string
	Text       string
	Attachment *Attachment
	Timestamp  time.Time
}

// PromptMessage is a role-tagged entry in the sequence sent to the
// completion endpoint.
type PromptMessage struct {
	Role    string
	Content string
}

// UserRecord is a registered account, keyed by email.
type UserRecord struct {
	ID           int64
	Name         string
	Email        string
	Phone        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
