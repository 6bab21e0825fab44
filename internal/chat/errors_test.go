package chat_test

import (
	"testing"

	"aarogya/internal/chat"
)

func TestProviderErrorMessage(t *testing.T) {
	bare := &chat.ProviderError{Message: "rate limited"}
	if bare.Error() != "rate limited" {
		t.Fatalf("Error() = %q", bare.Error())
	}

	withStatus := &chat.ProviderError{Status: 429, Message: "rate limited"}
	if withStatus.Error() != "provider returned 429: rate limited" {
		t.Fatalf("Error() = %q", withStatus.Error())
	}
}
