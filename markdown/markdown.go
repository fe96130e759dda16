// Package markdown renders the small inline subset of Markdown used in page
// copy: bold, italic, inline code and links. Block syntax is limited to
// blank-line separated paragraphs.
package markdown

import (
	"context"
	"html"
	"io"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/a-h/templ"
)

var (
	reBold       = regexp.MustCompile(`\*\*(.+?)\*\*`)
	reItalic     = regexp.MustCompile(`\*([^*]+)\*`)
	reInlineCode = regexp.MustCompile("`([^`]+)`")
	// [text](url) or [text](url)^ for a new tab.
	reLink = regexp.MustCompile(`\[(.*?)\]\((.*?)\)(\^)?`)
)

// Inline returns s as HTML with inline formatting applied. All other text is
// escaped.
func Inline(s string) string {
	escaped := html.EscapeString(s)

	// Code spans are swapped out first so nothing inside them is formatted.
	var code []string
	escaped = reInlineCode.ReplaceAllStringFunc(escaped, func(m string) string {
		inner := reInlineCode.FindStringSubmatch(m)[1]
		code = append(code, "<code>"+inner+"</code>")
		return "\x00C" + strconv.Itoa(len(code)-1) + "\x00"
	})

	escaped = reLink.ReplaceAllStringFunc(escaped, func(m string) string {
		match := reLink.FindStringSubmatch(m)
		href := SafeURL(match[2])
		if href == "" {
			return match[1]
		}
		attrs := `class="underline decoration-2 underline-offset-4"`
		if match[3] == "^" || isExternal(href) {
			attrs += ` target="_blank" rel="noopener noreferrer"`
		}
		return `<a href="` + href + `" ` + attrs + `>` + match[1] + `</a>`
	})

	escaped = outsideTags(escaped, func(seg string) string {
		seg = reBold.ReplaceAllString(seg, "<strong>$1</strong>")
		return reItalic.ReplaceAllString(seg, "<em>$1</em>")
	})

	for i, c := range code {
		escaped = strings.Replace(escaped, "\x00C"+strconv.Itoa(i)+"\x00", c, 1)
	}
	return escaped
}

// Paragraphs renders s as a sequence of <p> elements, one per blank-line
// separated block.
func Paragraphs(s string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		for _, block := range blocks(s) {
			b.WriteString("<p>")
			b.WriteString(Inline(block))
			b.WriteString("</p>")
		}
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func blocks(s string) []string {
	var out []string
	for _, part := range strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n\n") {
		lines := strings.Fields(strings.ReplaceAll(part, "\n", " "))
		if len(lines) == 0 {
			continue
		}
		out = append(out, strings.Join(lines, " "))
	}
	return out
}

// Plain strips inline markup, leaving link text and emphasised words.
func Plain(s string) string {
	s = reLink.ReplaceAllString(s, "$1")
	s = reBold.ReplaceAllString(s, "$1")
	s = reItalic.ReplaceAllString(s, "$1")
	return reInlineCode.ReplaceAllString(s, "$1")
}

// Links returns the raw targets of every link in s, in order.
func Links(s string) []string {
	var out []string
	for _, m := range reLink.FindAllStringSubmatch(s, -1) {
		out = append(out, strings.TrimSpace(m[2]))
	}
	return out
}

// outsideTags applies fn to the text between HTML tags so formatting never
// reaches into attribute values.
func outsideTags(s string, fn func(string) string) string {
	var buf strings.Builder
	for len(s) > 0 {
		lt := strings.Index(s, "<")
		if lt < 0 {
			buf.WriteString(fn(s))
			break
		}
		if lt > 0 {
			buf.WriteString(fn(s[:lt]))
		}
		gt := strings.Index(s[lt:], ">")
		if gt < 0 {
			buf.WriteString(s[lt:])
			break
		}
		buf.WriteString(s[lt : lt+gt+1])
		s = s[lt+gt+1:]
	}
	return buf.String()
}

func isExternal(href string) bool {
	return strings.HasPrefix(href, "http://") || strings.HasPrefix(href, "https://")
}

// SafeURL returns raw escaped for an href attribute, or "" when the scheme
// is not allowed. Root-relative paths and fragments are always allowed.
func SafeURL(raw string) string {
	val := strings.TrimSpace(html.UnescapeString(raw))
	if val == "" || strings.HasPrefix(val, "//") {
		return ""
	}
	if strings.HasPrefix(val, "/") || strings.HasPrefix(val, "#") {
		return html.EscapeString(val)
	}
	parsed, err := url.Parse(val)
	if err != nil || parsed.Scheme == "" {
		return ""
	}
	switch strings.ToLower(parsed.Scheme) {
	case "http", "https", "mailto", "tel":
		return html.EscapeString(val)
	default:
		return ""
	}
}
