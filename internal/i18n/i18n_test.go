package i18n_test

import (
	"testing"

	"aarogya/internal/i18n"
)

func TestLookup(t *testing.T) {
	if got := i18n.T("en", "login"); got != "Login" {
		t.Fatalf("en login = %q", got)
	}
	if got := i18n.T("ta", "login"); got != "உள்நுழைய" {
		t.Fatalf("ta login = %q", got)
	}
}

func TestFallbacks(t *testing.T) {
	// unknown locale falls back to English
	if got := i18n.T("fr", "login"); got != "Login" {
		t.Fatalf("fr login = %q", got)
	}
	// unknown key falls back to the key itself
	if got := i18n.T("en", "noSuchKey"); got != "noSuchKey" {
		t.Fatalf("unknown key = %q", got)
	}
}
