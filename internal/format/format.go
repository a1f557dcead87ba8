// Package format converts the support endpoint's lightly structured reply
// text into display markup. The transform is a fixed subset: double-asterisk
// bold spans, "### " heading lines, blank-line separated blocks, and hyphen
// lists. It is not a Markdown parser and does not try to be one.
package format

import (
	"html"
	"strings"
)

const (
	headingPrefix = "### "
	listPrefix    = "-"
)

// Response renders reply text as markup. The function is pure and
// deterministic; all input text is HTML-escaped before any tags are
// emitted, so only tags produced here appear in the output.
func Response(text string) string {
	if text == "" {
		return ""
	}

	escaped := html.EscapeString(text)

	var b strings.Builder
	for _, block := range strings.Split(escaped, "\n\n") {
		renderBlock(&b, block)
	}
	return b.String()
}

// renderBlock classifies one blank-line delimited block. A block whose
// second or later line is hyphen-prefixed becomes a leading paragraph
// followed by an unordered list; anything else becomes heading lines and
// br-joined paragraphs.
func renderBlock(b *strings.Builder, block string) {
	if block == "" {
		b.WriteString("<p></p>")
		return
	}

	lines := strings.Split(block, "\n")
	if isListBlock(lines) {
		renderListBlock(b, lines)
		return
	}

	// Heading lines break the block into separate paragraph runs.
	var run []string
	flush := func() {
		if len(run) == 0 {
			return
		}
		b.WriteString("<p>")
		for i, line := range run {
			if i > 0 {
				b.WriteString("<br>")
			}
			b.WriteString(bold(line))
		}
		b.WriteString("</p>")
		run = run[:0]
	}

	for _, line := range lines {
		if strings.HasPrefix(line, headingPrefix) {
			flush()
			b.WriteString("<h1>")
			b.WriteString(bold(line[len(headingPrefix):]))
			b.WriteString("</h1>")
			continue
		}
		run = append(run, line)
	}
	flush()
}

func isListBlock(lines []string) bool {
	for _, line := range lines[1:] {
		if strings.HasPrefix(line, listPrefix) {
			return true
		}
	}
	return false
}

func renderListBlock(b *strings.Builder, lines []string) {
	first := lines[0]
	if strings.HasPrefix(first, headingPrefix) {
		b.WriteString("<h1>")
		b.WriteString(bold(first[len(headingPrefix):]))
		b.WriteString("</h1>")
	} else {
		b.WriteString("<p>")
		b.WriteString(bold(first))
		b.WriteString("</p>")
	}

	b.WriteString("<ul>")
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		item := strings.TrimLeft(strings.TrimPrefix(line, listPrefix), " \t")
		b.WriteString("<li>")
		b.WriteString(bold(item))
		b.WriteString("</li>")
	}
	b.WriteString("</ul>")
}

// bold rewrites non-greedy, left-to-right "**" pairs as strong spans.
// A lone unmatched marker is left in place.
func bold(s string) string {
	var b strings.Builder
	for {
		open := strings.Index(s, "**")
		if open < 0 {
			break
		}
		close := strings.Index(s[open+2:], "**")
		if close < 0 {
			break
		}
		b.WriteString(s[:open])
		b.WriteString("<strong>")
		b.WriteString(s[open+2 : open+2+close])
		b.WriteString("</strong>")
		s = s[open+2+close+2:]
	}
	b.WriteString(s)
	return b.String()
}
