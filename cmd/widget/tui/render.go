package tui

import (
	"html"
	"strings"

	"support-widget/internal/model/support"
	"support-widget/internal/widget"
)

// renderMessage turns one transcript entry into terminal lines: an author
// label followed by the rendered content.
func renderMessage(msg widget.Message, st Styles) string {
	label := st.UserLabel.Render("You")
	if msg.Author == support.AuthorBot {
		label = st.BotLabel.Render("Support")
	}
	return label + "\n" + renderMarkup(msg.Content, st)
}

// renderMarkup converts the formatter's markup subset to styled terminal
// text. The input is either machine-generated markup or escaped plain
// text, so the scanner only needs the tags the formatter emits.
func renderMarkup(markup string, st Styles) string {
	var lines []string
	rest := markup
	for rest != "" {
		switch {
		case strings.HasPrefix(rest, "<h1>"):
			content, tail := cutAt(rest[len("<h1>"):], "</h1>")
			lines = append(lines, st.Heading.Render(renderInline(content, st)))
			rest = tail

		case strings.HasPrefix(rest, "<p>"):
			content, tail := cutAt(rest[len("<p>"):], "</p>")
			for _, line := range strings.Split(content, "<br>") {
				lines = append(lines, renderInline(line, st))
			}
			rest = tail

		case strings.HasPrefix(rest, "<ul>"):
			content, tail := cutAt(rest[len("<ul>"):], "</ul>")
			for _, item := range strings.Split(content, "<li>") {
				item = strings.TrimSuffix(item, "</li>")
				if item == "" {
					continue
				}
				lines = append(lines, "  • "+renderInline(item, st))
			}
			rest = tail

		default:
			if idx := strings.Index(rest, "<"); idx > 0 {
				lines = append(lines, renderInline(rest[:idx], st))
				rest = rest[idx:]
			} else if idx == 0 {
				// Unknown tag; drop the bracket and continue.
				rest = rest[1:]
			} else {
				lines = append(lines, renderInline(rest, st))
				rest = ""
			}
		}
	}
	return strings.Join(lines, "\n")
}

// renderInline resolves strong spans and entity escapes.
func renderInline(s string, st Styles) string {
	var b strings.Builder
	for {
		before, after, found := strings.Cut(s, "<strong>")
		b.WriteString(html.UnescapeString(before))
		if !found {
			break
		}
		content, tail, closed := strings.Cut(after, "</strong>")
		if !closed {
			b.WriteString(html.UnescapeString(after))
			break
		}
		b.WriteString(st.Bold.Render(html.UnescapeString(content)))
		s = tail
	}
	return b.String()
}

func cutAt(s, end string) (content, tail string) {
	if i := strings.Index(s, end); i >= 0 {
		return s[:i], s[i+len(end):]
	}
	return s, ""
}
