package chat

import (
	"fmt"
	"sync"
	"time"

	"aarogya/internal/models"
)

// Store is the append-only conversation log. IDs increase monotonically and
// messages are never reordered or removed; the single in-place edit allowed
// is ReplaceNotice, which swaps the text of a transient analysis notice.
//
// Bubbletea runs commands on their own goroutines, so every accessor takes
// the mutex; the pending flag additionally guarantees at most one turn is
// mutating the log at a time.
type Store struct {
	mu      sync.Mutex
	nextID  int
	msgs    []models.Message
	pending bool
	now     func() time.Time
}

func NewStore() *Store {
	return &Store{nextID: 1, now: time.Now}
}

func (s *Store) Append(sender, text string, att *models.Attachment) models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	msg := models.Message{
		ID:         s.nextID,
		Sender:     sender,
		Text:       text,
		Attachment: att,
		Timestamp:  s.now(),
	}
	s.nextID++
	s.msgs = append(s.msgs, msg)
	return msg
}

// ReplaceNotice updates the text of the notice with the given id. It reports
// whether the id was found and was a notice; sender and timestamp keep their
// original values.
func (s *Store) ReplaceNotice(id int, text string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.msgs {
		if s.msgs[i].ID == id && s.msgs[i].Sender == models.SenderNotice {
			s.msgs[i].Text = text
			return true
		}
	}
	return false
}

// Messages returns a snapshot of the log in append order.
func (s *Store) Messages() []models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Message, len(s.msgs))
	copy(out, s.msgs)
	return out
}

func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.msgs)
}

// History derives the role-tagged prompt history from the whole log.
func (s *Store) History(imageAnalysis string) []models.PromptMessage {
	return s.HistoryBefore(s.nextIDSnapshot(), imageAnalysis)
}

// HistoryBefore derives history from messages with IDs strictly below id.
// System notices are excluded; user and assistant messages map to their
// provider roles. When an analysis text is supplied, user messages that
// carried an attachment get it folded into their content so the model can
// relate earlier uploads to the current exchange.
func (s *Store) HistoryBefore(id int, imageAnalysis string) []models.PromptMessage {
	s.mu.Lock()
	defer s.mu.Unlock()

	history := make([]models.PromptMessage, 0, len(s.msgs))
	for _, msg := range s.msgs {
		if msg.ID >= id {
			break
		}
		if msg.Sender == models.SenderNotice || msg.Text == "" {
			continue
		}

		role := models.RoleUser
		if msg.Sender == models.SenderAssistant {
			role = models.RoleAssistant
		}
		content := msg.Text
		if msg.Sender == models.SenderUser && msg.Attachment != nil && imageAnalysis != "" {
			content = fmt.Sprintf("%s [Attached image: %s]", msg.Text, imageAnalysis)
		}
		history = append(history, models.PromptMessage{Role: role, Content: content})
	}
	return history
}

// BeginTurn sets the pending flag, reporting false if a turn is already in
// flight.
func (s *Store) BeginTurn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending {
		return false
	}
	s.pending = true
	return true
}

func (s *Store) EndTurn() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pending = false
}

func (s *Store) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pending
}

// Reset clears the log for a fresh conversation. IDs keep counting up; they
// are never reused within a session.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.msgs = nil
}

func (s *Store) nextIDSnapshot() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nextID
}
