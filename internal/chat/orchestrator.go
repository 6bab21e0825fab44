package chat

import (
	"context"
	"fmt"
	"strings"

	"aarogya/internal/models"
)

const (
	GreetingText = "Hello! I'm your AI Doctor. How can I assist you with your health today?"

	analyzingNotice  = "Analyzing your image..."
	analysisFallback = "Unable to analyze the image. Please describe the issue in words."

	emptyReplyFallback = "I apologize, but I am unable to provide a response at the moment."
)

// Orchestrator runs one dialogue turn at a time: guard the submission,
// append the user message, optionally analyze the image, assemble the
// prompt from the store's history, call the completion endpoint, and fold
// the reply (or the error) back into the store.
type Orchestrator struct {
	store     *Store
	analyzer  Analyzer
	completer Completer
}

func NewOrchestrator(store *Store, analyzer Analyzer, completer Completer) *Orchestrator {
	return &Orchestrator{store: store, analyzer: analyzer, completer: completer}
}

func (o *Orchestrator) Store() *Store {
	return o.store
}

// Turn is one accepted submission, from user message through reply or
// error. It holds the pending flag until Run finishes.
type Turn struct {
	o          *Orchestrator
	userMsgID  int
	text       string
	att        *models.Attachment
	credential string
}

// TurnResult reports how a turn ended. Reply is the appended assistant
// message in both the success and the error case; Err is set when the
// provider call failed and the reply carries the error notice.
type TurnResult struct {
	Reply models.Message
	Err   error
}

// Submit validates a submission and, if accepted, appends the user message
// and marks the conversation pending. The returned Turn must be Run (on any
// goroutine) to complete the round trip.
//
// Guard failures leave the store untouched: ErrEmptyTurn for a blank
// submission, ErrNoCredential when no API key is configured (the caller
// should open settings), ErrTurnInFlight while a previous turn is pending.
func (o *Orchestrator) Submit(text string, att *models.Attachment, credential string) (*Turn, error) {
	text = strings.TrimSpace(text)
	if text == "" && att == nil {
		return nil, ErrEmptyTurn
	}
	if credential == "" {
		return nil, ErrNoCredential
	}
	if !o.store.BeginTurn() {
		return nil, ErrTurnInFlight
	}

	user := o.store.Append(models.SenderUser, text, att)
	return &Turn{
		o:          o,
		userMsgID:  user.ID,
		text:       text,
		att:        att,
		credential: credential,
	}, nil
}

// Run executes the accepted turn to completion. The pending flag clears
// when Run returns, success or failure; there is no cancellation once the
// provider calls are issued.
func (t *Turn) Run(ctx context.Context) TurnResult {
	defer t.o.store.EndTurn()

	analysis := ""
	if t.att != nil {
		analysis = t.analyzeImage(ctx)
	}

	history := t.o.store.HistoryBefore(t.userMsgID, analysis)

	seq := make([]models.PromptMessage, 0, len(history)+2)
	seq = append(seq, models.PromptMessage{
		Role:    models.RoleSystem,
		Content: systemDirective(t.att != nil, analysis),
	})
	seq = append(seq, history...)
	seq = append(seq, models.PromptMessage{
		Role:    models.RoleUser,
		Content: t.userEntry(analysis),
	})

	reply, err := t.o.completer.Complete(ctx, seq, t.credential)
	if err != nil {
		notice := fmt.Sprintf("Error: %s. Please check your API key and try again.", errorMessage(err))
		msg := t.o.store.Append(models.SenderAssistant, notice, nil)
		return TurnResult{Reply: msg, Err: err}
	}

	if reply == "" {
		reply = emptyReplyFallback
	}
	if t.att != nil && t.text == "" {
		reply = fmt.Sprintf(
			"I've analyzed the image you shared. Here's what I can observe:\n\n%s\n\n%s",
			analysis, reply,
		)
	}

	msg := t.o.store.Append(models.SenderAssistant, reply, nil)
	return TurnResult{Reply: msg}
}

// analyzeImage appends the transient notice, calls the vision endpoint and
// replaces the notice in place with either the analysis or the degraded
// fallback. Analysis failures never abort the turn; the completion call
// proceeds with the fallback text.
func (t *Turn) analyzeImage(ctx context.Context) string {
	notice := t.o.store.Append(models.SenderNotice, analyzingNotice, nil)

	analysis, err := t.o.analyzer.Analyze(ctx, *t.att, t.credential)
	if err != nil {
		t.o.store.ReplaceNotice(notice.ID, analysisFallback)
		return analysisFallback
	}

	t.o.store.ReplaceNotice(notice.ID, "Image analysis complete: "+analysis)
	return analysis
}

// userEntry builds the final user entry of the prompt sequence. When the
// submission was image-only, the analysis stands in for the missing text.
func (t *Turn) userEntry(analysis string) string {
	if t.att != nil && t.text == "" {
		return fmt.Sprintf("I've shared an image. %s Can you provide more information about this?", analysis)
	}
	return t.text
}

func systemDirective(hasImage bool, analysis string) string {
	imageContext := ""
	if hasImage {
		imageContext = "The user has shared an image. " + analysis + " "
	}
	return fmt.Sprintf(
		"You are a helpful AI doctor assistant. %sProvide clear, concise, and accurate medical information. "+
			"Always remind users to consult with a healthcare professional for medical advice.",
		imageContext,
	)
}
