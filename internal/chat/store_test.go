package chat_test

import (
	"testing"

	"aarogya/internal/chat"
	"aarogya/internal/models"
)

func TestAppendOrderAndIDs(t *testing.T) {
	store := chat.NewStore()

	store.Append(models.SenderAssistant, "hello", nil)
	store.Append(models.SenderUser, "hi", nil)
	store.Append(models.SenderNotice, "notice", nil)
	store.Append(models.SenderUser, "how are you", nil)

	msgs := store.Messages()
	if len(msgs) != 4 {
		t.Fatalf("len = %d, want 4", len(msgs))
	}
	for i := 1; i < len(msgs); i++ {
		if msgs[i].ID <= msgs[i-1].ID {
			t.Fatalf("ids not strictly increasing: %d then %d", msgs[i-1].ID, msgs[i].ID)
		}
	}
	if msgs[0].Text != "hello" || msgs[3].Text != "how are you" {
		t.Fatalf("append order not preserved: %+v", msgs)
	}
}

func TestReplaceNotice(t *testing.T) {
	store := chat.NewStore()
	store.Append(models.SenderUser, "hi", nil)
	notice := store.Append(models.SenderNotice, "Analyzing your image...", nil)

	if !store.ReplaceNotice(notice.ID, "Image analysis complete: mild redness") {
		t.Fatalf("ReplaceNotice reported not found")
	}

	msgs := store.Messages()
	if msgs[1].Text != "Image analysis complete: mild redness" {
		t.Fatalf("notice text = %q", msgs[1].Text)
	}
	if msgs[1].ID != notice.ID || msgs[1].Sender != models.SenderNotice {
		t.Fatalf("replacement changed identity: %+v", msgs[1])
	}
	if msgs[1].Timestamp != notice.Timestamp {
		t.Fatalf("replacement changed timestamp")
	}
}

func TestReplaceNoticeOnlyTouchesNotices(t *testing.T) {
	store := chat.NewStore()
	user := store.Append(models.SenderUser, "hi", nil)

	if store.ReplaceNotice(user.ID, "overwritten") {
		t.Fatalf("ReplaceNotice must not edit user messages")
	}
	if store.ReplaceNotice(999, "ghost") {
		t.Fatalf("ReplaceNotice must report unknown ids")
	}
}

func TestHistoryDerivation(t *testing.T) {
	store := chat.NewStore()
	store.Append(models.SenderUser, "hi", nil)
	store.Append(models.SenderAssistant, "hello", nil)

	history := store.History("")
	if len(history) != 2 {
		t.Fatalf("len = %d, want 2", len(history))
	}
	if history[0] != (models.PromptMessage{Role: models.RoleUser, Content: "hi"}) {
		t.Fatalf("history[0] = %+v", history[0])
	}
	if history[1] != (models.PromptMessage{Role: models.RoleAssistant, Content: "hello"}) {
		t.Fatalf("history[1] = %+v", history[1])
	}
}

func TestHistoryExcludesNoticesAndFoldsAnalysis(t *testing.T) {
	store := chat.NewStore()
	att := &models.Attachment{MimeType: "image/png", DataURL: "data:image/png;base64,aGk=", SizeBytes: 2}
	store.Append(models.SenderUser, "look at this rash", att)
	store.Append(models.SenderNotice, "Analyzing your image...", nil)
	store.Append(models.SenderAssistant, "it looks irritated", nil)

	history := store.History("mild redness")
	if len(history) != 2 {
		t.Fatalf("len = %d, want 2 (notice excluded)", len(history))
	}
	want := "look at this rash [Attached image: mild redness]"
	if history[0].Content != want {
		t.Fatalf("content = %q, want %q", history[0].Content, want)
	}
}

func TestHistoryBeforeCutsAtID(t *testing.T) {
	store := chat.NewStore()
	store.Append(models.SenderUser, "hi", nil)
	store.Append(models.SenderAssistant, "hello", nil)
	current := store.Append(models.SenderUser, "and now?", nil)

	history := store.HistoryBefore(current.ID, "")
	if len(history) != 2 {
		t.Fatalf("len = %d, want 2", len(history))
	}
}

func TestPendingSingleFlight(t *testing.T) {
	store := chat.NewStore()
	if !store.BeginTurn() {
		t.Fatalf("first BeginTurn should succeed")
	}
	if store.BeginTurn() {
		t.Fatalf("second BeginTurn should fail while pending")
	}
	store.EndTurn()
	if !store.BeginTurn() {
		t.Fatalf("BeginTurn should succeed after EndTurn")
	}
}

func TestResetKeepsIDsMonotonic(t *testing.T) {
	store := chat.NewStore()
	first := store.Append(models.SenderUser, "hi", nil)
	store.Reset()
	if store.Len() != 0 {
		t.Fatalf("reset did not clear the log")
	}
	second := store.Append(models.SenderUser, "again", nil)
	if second.ID <= first.ID {
		t.Fatalf("id reused after reset: %d then %d", first.ID, second.ID)
	}
}
