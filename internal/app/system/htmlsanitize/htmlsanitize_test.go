package htmlsanitize_test

import (
	"strings"
	"testing"

	"github.com/avasuite/ava/internal/app/system/htmlsanitize"
)

func TestSanitize_Empty(t *testing.T) {
	if got := htmlsanitize.Sanitize(""); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

func TestSanitize_PlainText(t *testing.T) {
	if got := htmlsanitize.Sanitize("Water shutoff on Monday"); got != "Water shutoff on Monday" {
		t.Errorf("expected plain text unchanged, got %q", got)
	}
}

func TestSanitize_KeepsBasicFormatting(t *testing.T) {
	input := "<p><strong>Meeting</strong> at <em>6pm</em></p>"
	if got := htmlsanitize.Sanitize(input); got != input {
		t.Errorf("expected safe HTML preserved, got %q", got)
	}
}

func TestSanitize_RemovesScript(t *testing.T) {
	got := htmlsanitize.Sanitize("<p>Hello</p><script>alert('xss')</script>")
	if got != "<p>Hello</p>" {
		t.Errorf("expected script removed, got %q", got)
	}
}

func TestSanitize_RemovesOnclick(t *testing.T) {
	got := htmlsanitize.Sanitize(`<a href="https://x.com" onclick="steal()">link</a>`)
	if strings.Contains(got, "onclick") {
		t.Errorf("expected onclick removed, got %q", got)
	}
}

func TestPlainText_StripsAllMarkup(t *testing.T) {
	got := htmlsanitize.PlainText("<b>Meeting</b> notice")
	if got != "Meeting notice" {
		t.Errorf("expected markup stripped, got %q", got)
	}
}
