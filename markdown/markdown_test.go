package markdown

import (
	"bytes"
	"context"
	"reflect"
	"strings"
	"testing"
)

func TestInlineEmphasis(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"**bold**", "<strong>bold</strong>"},
		{"*italic*", "<em>italic</em>"},
		{"the **Super Series** cars", "the <strong>Super Series</strong> cars"},
		{"**bold *italic* text**", "<strong>bold <em>italic</em> text</strong>"},
	}
	for _, tt := range tests {
		got := Inline(tt.input)
		if got != tt.expected {
			t.Errorf("Inline(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestInlineEscapes(t *testing.T) {
	got := Inline(`<script>alert("x")</script> & more`)
	if strings.Contains(got, "<script>") {
		t.Fatalf("Inline did not escape markup: %q", got)
	}
	if !strings.Contains(got, "&amp; more") {
		t.Errorf("Inline(%q) missing escaped ampersand", got)
	}
}

func TestInlineLinks(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{
			"see [M838TE](/engines/mclaren/m838te/)",
			`see <a href="/engines/mclaren/m838te/" class="underline decoration-2 underline-offset-4">M838TE</a>`,
		},
		{
			"[Wikipedia](https://en.wikipedia.org/wiki/McLaren_M838T)",
			`<a href="https://en.wikipedia.org/wiki/McLaren_M838T" class="underline decoration-2 underline-offset-4" target="_blank" rel="noopener noreferrer">Wikipedia</a>`,
		},
		{
			"[local](/x/)^",
			`<a href="/x/" class="underline decoration-2 underline-offset-4" target="_blank" rel="noopener noreferrer">local</a>`,
		},
		{
			"[bad](javascript:alert(1))",
			"bad)",
		},
	}
	for _, tt := range tests {
		got := Inline(tt.input)
		if got != tt.expected {
			t.Errorf("Inline(%q)\n  got:  %q\n  want: %q", tt.input, got, tt.expected)
		}
	}
}

func TestInlineCode(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"`M838T`", "<code>M838T</code>"},
		{"`**not bold**`", "<code>**not bold**</code>"},
		{"`a` and `b`", "<code>a</code> and <code>b</code>"},
	}
	for _, tt := range tests {
		got := Inline(tt.input)
		if got != tt.expected {
			t.Errorf("Inline(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestParagraphs(t *testing.T) {
	var buf bytes.Buffer
	err := Paragraphs("first line\ncontinues\n\n\n**second**").Render(context.Background(), &buf)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := "<p>first line continues</p><p><strong>second</strong></p>"
	if got := buf.String(); got != want {
		t.Errorf("Paragraphs = %q, want %q", got, want)
	}
}

func TestPlain(t *testing.T) {
	got := Plain("Fitted to **Super Series** cars; see [M838TE](/engines/mclaren/m838te/).")
	want := "Fitted to Super Series cars; see M838TE."
	if got != want {
		t.Errorf("Plain = %q, want %q", got, want)
	}
}

func TestLinks(t *testing.T) {
	got := Links("[a](/one/) text [b]( https://example.com ) none")
	want := []string{"/one/", "https://example.com"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Links = %q, want %q", got, want)
	}
	if Links("no links") != nil {
		t.Error("Links without links should be nil")
	}
}

func TestSafeURL(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"/engines/", "/engines/"},
		{"#faq", "#faq"},
		{"https://example.com/?a=1&b=2", "https://example.com/?a=1&amp;b=2"},
		{"mailto:hello@example.com", "mailto:hello@example.com"},
		{"javascript:alert(1)", ""},
		{"//evil.example.com", ""},
		{"relative/path", ""},
		{"  ", ""},
	}
	for _, tt := range tests {
		if got := SafeURL(tt.input); got != tt.expected {
			t.Errorf("SafeURL(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
