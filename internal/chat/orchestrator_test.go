package chat_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"aarogya/internal/chat"
	"aarogya/internal/models"
)

type stubAnalyzer struct {
	analysis string
	err      error
	calls    int
}

func (a *stubAnalyzer) Analyze(ctx context.Context, att models.Attachment, credential string) (string, error) {
	a.calls++
	return a.analysis, a.err
}

type stubCompleter struct {
	reply string
	err   error
	calls int
	seqs  [][]models.PromptMessage
}

func (c *stubCompleter) Complete(ctx context.Context, seq []models.PromptMessage, credential string) (string, error) {
	c.calls++
	c.seqs = append(c.seqs, seq)
	return c.reply, c.err
}

func newTestOrchestrator(analyzer *stubAnalyzer, completer *stubCompleter) *chat.Orchestrator {
	return chat.NewOrchestrator(chat.NewStore(), analyzer, completer)
}

func pngAttachment() *models.Attachment {
	return &models.Attachment{
		MimeType:  "image/png",
		DataURL:   "data:image/png;base64,aGVsbG8=",
		SizeBytes: 5,
	}
}

func TestSubmitRejectsEmptyTurn(t *testing.T) {
	o := newTestOrchestrator(&stubAnalyzer{}, &stubCompleter{})

	if _, err := o.Submit("   ", nil, "sk-test"); !errors.Is(err, chat.ErrEmptyTurn) {
		t.Fatalf("expected ErrEmptyTurn, got %v", err)
	}
	if o.Store().Len() != 0 {
		t.Fatalf("empty submission must not append")
	}
	if o.Store().Pending() {
		t.Fatalf("empty submission must not set pending")
	}
}

func TestSubmitRejectsMissingCredential(t *testing.T) {
	completer := &stubCompleter{}
	o := newTestOrchestrator(&stubAnalyzer{}, completer)

	if _, err := o.Submit("I have a headache", nil, ""); !errors.Is(err, chat.ErrNoCredential) {
		t.Fatalf("expected ErrNoCredential, got %v", err)
	}
	if completer.calls != 0 {
		t.Fatalf("completion client must not be invoked without a credential")
	}
	if o.Store().Len() != 0 || o.Store().Pending() {
		t.Fatalf("guard failure must leave the store untouched")
	}
}

func TestSubmitWhilePendingIsInert(t *testing.T) {
	o := newTestOrchestrator(&stubAnalyzer{}, &stubCompleter{reply: "rest and hydrate"})

	turn, err := o.Submit("I have a headache", nil, "sk-test")
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	before := o.Store().Len()

	if _, err := o.Submit("second message", nil, "sk-test"); !errors.Is(err, chat.ErrTurnInFlight) {
		t.Fatalf("expected ErrTurnInFlight, got %v", err)
	}
	if o.Store().Len() != before {
		t.Fatalf("second submission mutated the store while pending")
	}

	turn.Run(context.Background())
	if o.Store().Pending() {
		t.Fatalf("pending must clear after the turn runs")
	}
}

func TestTextOnlyTurn(t *testing.T) {
	analyzer := &stubAnalyzer{}
	completer := &stubCompleter{reply: "Drink water and rest. Consult a doctor if it persists."}
	o := newTestOrchestrator(analyzer, completer)

	turn, err := o.Submit("I have a headache", nil, "sk-test")
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	res := turn.Run(context.Background())
	if res.Err != nil {
		t.Fatalf("turn failed: %v", res.Err)
	}

	if analyzer.calls != 0 {
		t.Fatalf("analyzer must not run without an attachment")
	}
	msgs := o.Store().Messages()
	if len(msgs) != 2 {
		t.Fatalf("expected user + assistant, got %d messages", len(msgs))
	}
	if msgs[0].Sender != models.SenderUser || msgs[1].Sender != models.SenderAssistant {
		t.Fatalf("unexpected senders: %q %q", msgs[0].Sender, msgs[1].Sender)
	}
	if msgs[1].Text != completer.reply {
		t.Fatalf("reply = %q", msgs[1].Text)
	}

	seq := completer.seqs[0]
	if seq[0].Role != models.RoleSystem {
		t.Fatalf("first entry must be the system directive, got %q", seq[0].Role)
	}
	if last := seq[len(seq)-1]; last.Role != models.RoleUser || last.Content != "I have a headache" {
		t.Fatalf("last entry = %+v", last)
	}
}

func TestProviderFailureRendersErrorNotice(t *testing.T) {
	completer := &stubCompleter{err: &chat.ProviderError{Message: "rate limited"}}
	o := newTestOrchestrator(&stubAnalyzer{}, completer)

	turn, err := o.Submit("hello", nil, "sk-test")
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	res := turn.Run(context.Background())
	if res.Err == nil {
		t.Fatalf("expected turn error")
	}

	want := "Error: rate limited. Please check your API key and try again."
	if res.Reply.Text != want {
		t.Fatalf("notice = %q, want %q", res.Reply.Text, want)
	}
	if res.Reply.Sender != models.SenderAssistant {
		t.Fatalf("error notice must be an assistant message, got %q", res.Reply.Sender)
	}
	if o.Store().Pending() {
		t.Fatalf("pending must clear after a failed turn")
	}
}

func TestImageOnlyTurnPrefixesAnalysis(t *testing.T) {
	analyzer := &stubAnalyzer{analysis: "mild redness"}
	completer := &stubCompleter{reply: "This looks like minor irritation."}
	o := newTestOrchestrator(analyzer, completer)

	turn, err := o.Submit("", pngAttachment(), "sk-test")
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	res := turn.Run(context.Background())
	if res.Err != nil {
		t.Fatalf("turn failed: %v", res.Err)
	}

	analysisIdx := strings.Index(res.Reply.Text, "mild redness")
	replyIdx := strings.Index(res.Reply.Text, completer.reply)
	if analysisIdx < 0 || replyIdx < 0 || analysisIdx > replyIdx {
		t.Fatalf("reply must contain analysis then completion, got %q", res.Reply.Text)
	}

	// transient notice replaced in place with the analysis result
	msgs := o.Store().Messages()
	if len(msgs) != 3 {
		t.Fatalf("expected user + notice + assistant, got %d", len(msgs))
	}
	if msgs[1].Sender != models.SenderNotice || msgs[1].Text != "Image analysis complete: mild redness" {
		t.Fatalf("notice = %+v", msgs[1])
	}

	// analysis folded into the directive and the synthesized user entry
	seq := completer.seqs[0]
	if !strings.Contains(seq[0].Content, "mild redness") {
		t.Fatalf("system directive missing analysis: %q", seq[0].Content)
	}
	last := seq[len(seq)-1]
	if !strings.Contains(last.Content, "I've shared an image.") || !strings.Contains(last.Content, "mild redness") {
		t.Fatalf("synthesized user entry = %q", last.Content)
	}
}

func TestAnalysisFailureDegradesWithoutAborting(t *testing.T) {
	analyzer := &stubAnalyzer{err: chat.ErrInvalidImageFormat}
	completer := &stubCompleter{reply: "Please describe the symptoms."}
	o := newTestOrchestrator(analyzer, completer)

	turn, err := o.Submit("what is this?", pngAttachment(), "sk-test")
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	res := turn.Run(context.Background())
	if res.Err != nil {
		t.Fatalf("analysis failure must not fail the turn: %v", res.Err)
	}

	msgs := o.Store().Messages()
	if msgs[1].Text != "Unable to analyze the image. Please describe the issue in words." {
		t.Fatalf("degraded notice = %q", msgs[1].Text)
	}
	if completer.calls != 1 {
		t.Fatalf("completion must still run after analysis failure")
	}
	if !strings.Contains(completer.seqs[0][0].Content, "Unable to analyze the image") {
		t.Fatalf("directive should carry the fallback description")
	}
}

func TestEmptyReplyFallsBack(t *testing.T) {
	o := newTestOrchestrator(&stubAnalyzer{}, &stubCompleter{reply: ""})

	turn, err := o.Submit("hello", nil, "sk-test")
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	res := turn.Run(context.Background())
	if res.Err != nil {
		t.Fatalf("turn failed: %v", res.Err)
	}
	if res.Reply.Text != "I apologize, but I am unable to provide a response at the moment." {
		t.Fatalf("fallback reply = %q", res.Reply.Text)
	}
}
