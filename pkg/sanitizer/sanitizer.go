// Package sanitizer cleans user-supplied display labels before they enter the document tree.
package sanitizer

import (
	"io"
	"strings"
	"unicode"

	"golang.org/x/net/html"
)

// CleanName prepares a folder or file label for display. Markup is removed, entities are
// decoded, control characters are dropped and runs of whitespace collapse to one space.
//
// Examples:
//   - "  Contracts  " -> "Contracts"
//   - "<b>Q1</b> reports" -> "Q1 reports"
//   - "R&amp;D" -> "R&D"
//   - "<i></i>" -> ""
func CleanName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	if strings.ContainsAny(name, "<&") {
		name = StripTags(name)
	}
	return collapseSpace(name)
}

// StripTags removes all HTML/XML tags and keeps only text nodes.
//
// Not an XSS defence: output is plain text meant to be escaped by the renderer.
func StripTags(input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}

	tokenizer := html.NewTokenizer(strings.NewReader(input))
	var buf strings.Builder

	for {
		tt := tokenizer.Next()
		if tt == html.ErrorToken {
			if tokenizer.Err() == io.EOF {
				break
			}
			return ""
		}

		if tt == html.TextToken {
			buf.WriteString(tokenizer.Token().Data)
		}
	}

	return strings.TrimSpace(buf.String())
}

func collapseSpace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	pendingSpace := false
	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			pendingSpace = b.Len() > 0
		case unicode.IsControl(r):
		default:
			if pendingSpace {
				b.WriteByte(' ')
				pendingSpace = false
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}
