package tui

import (
	"strings"
)

const dividerWidth = 54

// renderPage frames body between a title and the hot-key help line.
func renderPage(title, body, hotKeys string) string {
	divider := "  " + strings.Repeat("─", dividerWidth)

	parts := []string{titleStyle.Render(title), divider, ""}
	if strings.TrimSpace(body) == "" {
		parts = append(parts, "  -")
	} else {
		for _, line := range strings.Split(body, "\n") {
			parts = append(parts, "  "+line)
		}
	}
	parts = append(parts, "", divider)

	if strings.TrimSpace(hotKeys) != "" {
		parts = append(parts, "  "+helpStyle.Render(hotKeys))
	}
	parts = append(parts, "  "+helpStyle.Render("ctrl+c: quit"))

	return strings.Join(parts, "\n")
}

// fitText truncates v to max runes, marking the cut with "...".
func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
