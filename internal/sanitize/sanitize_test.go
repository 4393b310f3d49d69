package sanitize_test

import (
	"strings"
	"testing"

	"trial-match/internal/sanitize"
)

func TestText_Empty(t *testing.T) {
	if got := sanitize.Text(""); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

func TestText_StripsMarkup(t *testing.T) {
	got := sanitize.Text("  <b>Free</b> cream & lotion<script>alert(1)</script> ")
	if got != "Free cream & lotion" {
		t.Errorf("unexpected text %q", got)
	}
}

func TestText_EncodedMarkupDoesNotBecomeTags(t *testing.T) {
	if got := sanitize.Text("&lt;script&gt;alert(1)&lt;/script&gt;"); got != "" {
		t.Errorf("expected encoded script dropped, got %q", got)
	}
	for _, input := range []string{
		"&lt;<b></b>script&gt;alert(1)&lt;/script&gt;",
		"&amp;lt;img src=x onerror=alert(1)&amp;gt;",
		"Tasty &lt;i&gt;cream&lt;/i&gt;",
	} {
		got := sanitize.Text(input)
		if strings.ContainsAny(got, "<>") {
			t.Errorf("Text(%q) = %q, expected no markup", input, got)
		}
	}
}

func TestText_KeepsPlainSymbols(t *testing.T) {
	if got := sanitize.Text("a < b & c"); got != "a < b & c" {
		t.Errorf("unexpected text %q", got)
	}
}

func TestHTML_RemovesScript(t *testing.T) {
	got := sanitize.HTML("<p>Hello</p><script>alert('xss')</script>")
	if got != "<p>Hello</p>" {
		t.Errorf("expected script removed, got %q", got)
	}
}

func TestHTML_RemovesJavascriptHref(t *testing.T) {
	input := `<a href="javascript:alert('xss')">Click</a>`
	if got := sanitize.HTML(input); strings.Contains(got, "javascript:") {
		t.Errorf("expected javascript: href removed, got %q", got)
	}
}

func TestOptionalText(t *testing.T) {
	if got := sanitize.OptionalText(nil); got != nil {
		t.Errorf("expected nil, got %q", *got)
	}
	blank := "  <i></i> "
	if got := sanitize.OptionalText(&blank); got != nil {
		t.Errorf("expected nil for blank input, got %q", *got)
	}
	reason := "I review skincare <b>weekly</b>"
	got := sanitize.OptionalText(&reason)
	if got == nil || *got != "I review skincare weekly" {
		t.Errorf("unexpected reason %v", got)
	}
}

func TestExcerpt(t *testing.T) {
	if got := sanitize.Excerpt("체험단 모집", 3); got != "체험단" {
		t.Errorf("expected rune-safe excerpt, got %q", got)
	}
	if got := sanitize.Excerpt("short", 100); got != "short" {
		t.Errorf("expected unchanged text, got %q", got)
	}
}
