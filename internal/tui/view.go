package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// View renders the screen.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("My Notes"))
	b.WriteString("\n\n")
	b.WriteString(m.title.View())
	b.WriteString("\n")
	b.WriteString(m.content.View())
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render("Your notes:"))
	b.WriteString("\n")

	if len(m.notes) == 0 {
		b.WriteString(dimStyle.Render("No notes yet. Add one!"))
		b.WriteString("\n")
	}
	for i, n := range m.notes {
		b.WriteString(m.renderNote(i, n.ID, n.Title, n.Content))
	}

	b.WriteString(dividerStyle.Render(strings.Repeat("─", max(m.width, 20))))
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderNote(i int, id, title, content string) string {
	var b strings.Builder

	marker := "  "
	titleStyle := noteTitleStyle
	if m.focus == FocusList && i == m.cursor {
		marker = selectedStyle.Render("> ")
		titleStyle = selectedStyle
	}

	b.WriteString(marker)
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	if content != "" {
		b.WriteString("  ")
		b.WriteString(content)
		b.WriteString("\n")
	}
	if summary, ok := m.summaries[id]; ok {
		b.WriteString("  ")
		b.WriteString(summaryLabelStyle.Render("Summary:"))
		b.WriteString(" ")
		b.WriteString(summary)
		b.WriteString("\n")
	}
	if m.loadingID == id {
		b.WriteString("  ")
		b.WriteString(loadingStyle.Render("Summarizing..."))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderFooter() string {
	bindings := m.keys.draftHelp()
	if m.focus == FocusList {
		bindings = m.keys.listHelp()
	}
	parts := make([]string, 0, len(bindings))
	for _, kb := range bindings {
		parts = append(parts, footerHelp(kb))
	}
	return strings.Join(parts, "  ")
}

func footerHelp(kb key.Binding) string {
	h := kb.Help()
	return footerKeyStyle.Render(h.Key) + " " + footerDescStyle.Render(h.Desc)
}
