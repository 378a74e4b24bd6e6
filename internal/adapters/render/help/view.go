package help

import (
	"fmt"
	"strings"
)

func renderIndex(list []Entry, s styles) string {
	lines := make([]string, 0, len(list))
	for _, entry := range list {
		lines = append(lines, fmt.Sprintf("%s - %s", s.command.Render(entry.Name), entry.Synopsis))
	}
	return strings.Join(lines, "\n")
}

func renderPage(entry Entry, s styles) string {
	sections := []string{
		section(s, "NAME", []string{fmt.Sprintf("%s - %s", entry.Name, entry.Description)}),
		section(s, "SYNOPSIS", []string{strings.TrimSpace(entry.Name + " " + entry.Synopsis)}),
		section(s, "OPTIONS", entry.Options),
		section(s, "EXAMPLES", entry.Examples),
	}
	return strings.Join(sections, "\n\n")
}

func section(s styles, title string, body []string) string {
	if len(body) == 0 {
		body = []string{s.empty.Render("none")}
	}
	return s.heading.Render(title) + "\n\t" + strings.Join(body, "\n\t")
}
