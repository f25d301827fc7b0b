package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/ferris/pkg/domain"
)

const (
	menuID = "menu"
	quitID = "quit"
)

// GenerateMermaid produces a Mermaid flowchart of the tour from its lessons.
// It applies semantic styling:
// - Menu (input): [/Parallelogram/]
// - Quit: ((Circle))
// - Page: [Rectangle]
// Edges leaving the menu carry the canonical label that selects them; every
// lesson's last page returns to the menu, as does an invalid selection.
func GenerateMermaid(lessons []domain.Lesson) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")
	sb.WriteString(fmt.Sprintf("    %s[/\"%s\"/]\n", menuID, menuID))

	for _, lesson := range lessons {
		label := lesson.Action.Label()
		if len(lesson.Pages) == 0 {
			sb.WriteString(fmt.Sprintf("    %s -- \"%s\" --> %s\n", menuID, label, menuID))
			continue
		}

		for i := range lesson.Pages {
			sb.WriteString(fmt.Sprintf("    %s[\"%s %d/%d\"]\n", pageID(label, i), escape(lesson.Title), i+1, len(lesson.Pages)))
		}

		sb.WriteString(fmt.Sprintf("    %s -- \"%s\" --> %s\n", menuID, label, pageID(label, 0)))
		for i := 1; i < len(lesson.Pages); i++ {
			sb.WriteString(fmt.Sprintf("    %s -- \"advance\" --> %s\n", pageID(label, i-1), pageID(label, i)))
		}
		sb.WriteString(fmt.Sprintf("    %s -- \"advance\" --> %s\n", pageID(label, len(lesson.Pages)-1), menuID))
	}

	sb.WriteString(fmt.Sprintf("    %s((\"%s\"))\n", quitID, quitID))
	sb.WriteString(fmt.Sprintf("    %s -- \"%s\" --> %s\n", menuID, domain.MenuQuit.Label(), quitID))
	sb.WriteString(fmt.Sprintf("    %s -. \"invalid\" .-> %s\n", menuID, menuID))

	return sb.String()
}

func pageID(label string, index int) string {
	return fmt.Sprintf("%s_%d", sanitizeMermaidID(label), index+1)
}

// Escape double quotes for Mermaid labels
func escape(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}
