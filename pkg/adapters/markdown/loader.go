package markdown

import (
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/aretw0/ferris/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// PageBreak is the marker line that separates two pages of a lesson.
const PageBreak = "<!-- advance -->"

const frontMatterDelim = "---"

// Loader implements ports.LessonLoader over markdown files with YAML front matter.
// Files are parsed once, when the loader is created.
type Loader struct {
	lessons map[domain.MenuAction]domain.Lesson
}

// New parses every "*.md" file at the root of fsys.
func New(fsys fs.FS) (*Loader, error) {
	names, err := fs.Glob(fsys, "*.md")
	if err != nil {
		return nil, fmt.Errorf("failed to list lessons: %w", err)
	}

	lessons := make(map[domain.MenuAction]domain.Lesson, len(names))
	for _, name := range names {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("failed to read lesson %s: %w", name, err)
		}
		lesson, err := Parse(data)
		if err != nil {
			return nil, fmt.Errorf("lesson %s: %w", name, err)
		}
		if prev, dup := lessons[lesson.Action]; dup {
			return nil, fmt.Errorf("lesson %s: %w: %s already defined by %q", name, domain.ErrInvalidLesson, lesson.Action, prev.Title)
		}
		lessons[lesson.Action] = lesson
	}

	return &Loader{lessons: lessons}, nil
}

// Lesson retrieves the lesson attached to an action.
func (l *Loader) Lesson(action domain.MenuAction) (domain.Lesson, error) {
	lesson, ok := l.lessons[action]
	if !ok {
		return domain.Lesson{}, fmt.Errorf("%w: %s", domain.ErrLessonNotFound, action)
	}
	return lesson, nil
}

// Lessons returns all lessons in menu priority order.
func (l *Loader) Lessons() ([]domain.Lesson, error) {
	out := make([]domain.Lesson, 0, len(l.lessons))
	for _, lesson := range l.lessons {
		out = append(out, lesson)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Action < out[j].Action })
	return out, nil
}

// Parse decodes a single lesson document.
func Parse(data []byte) (domain.Lesson, error) {
	front, body, err := splitFrontMatter(string(data))
	if err != nil {
		return domain.Lesson{}, err
	}

	var raw map[string]any
	if err := yaml.Unmarshal([]byte(front), &raw); err != nil {
		return domain.Lesson{}, fmt.Errorf("%w: front matter: %v", domain.ErrInvalidLesson, err)
	}

	var meta LessonMetadata
	if err := mapstructure.Decode(raw, &meta); err != nil {
		return domain.Lesson{}, fmt.Errorf("%w: metadata: %v", domain.ErrInvalidLesson, err)
	}

	action, ok := domain.ActionForLabel(strings.ToLower(strings.TrimSpace(meta.Action)))
	if !ok || !action.HasLesson() {
		return domain.Lesson{}, fmt.Errorf("%w: unknown action %q", domain.ErrInvalidLesson, meta.Action)
	}

	title := meta.Title
	if title == "" {
		title = action.String()
	}

	return domain.Lesson{
		Action:  action,
		Title:   title,
		Summary: meta.Summary,
		Pages:   splitPages(body),
	}, nil
}

func splitFrontMatter(text string) (front, body string, err error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	lines := strings.Split(text, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != frontMatterDelim {
		return "", "", fmt.Errorf("%w: missing front matter", domain.ErrInvalidLesson)
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == frontMatterDelim {
			return strings.Join(lines[1:i], "\n"), strings.Join(lines[i+1:], "\n"), nil
		}
	}
	return "", "", fmt.Errorf("%w: unterminated front matter", domain.ErrInvalidLesson)
}

func splitPages(body string) []domain.Page {
	var pages []domain.Page
	var current []string

	flush := func() {
		text := strings.Trim(strings.Join(current, "\n"), "\n")
		if strings.TrimSpace(text) != "" {
			pages = append(pages, domain.Page{Body: text})
		}
		current = current[:0]
	}

	for _, line := range strings.Split(body, "\n") {
		if strings.TrimSpace(line) == PageBreak {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()

	return pages
}
