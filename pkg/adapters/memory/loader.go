package memory

import (
	"fmt"
	"sort"

	"github.com/aretw0/ferris/pkg/domain"
)

// Loader implements ports.LessonLoader using an in-memory map.
type Loader struct {
	lessons map[domain.MenuAction]domain.Lesson
}

// NewFromLessons creates a new Loader from domain objects.
// Each lesson must belong to an action that presents a demonstration, and
// each action may appear at most once.
func NewFromLessons(lessons ...domain.Lesson) (*Loader, error) {
	data := make(map[domain.MenuAction]domain.Lesson, len(lessons))
	for _, l := range lessons {
		if !l.Action.HasLesson() {
			return nil, fmt.Errorf("%w: action %s cannot carry a lesson", domain.ErrInvalidLesson, l.Action)
		}
		if _, dup := data[l.Action]; dup {
			return nil, fmt.Errorf("%w: duplicate lesson for %s", domain.ErrInvalidLesson, l.Action)
		}
		data[l.Action] = l
	}
	return &Loader{lessons: data}, nil
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
	sort.Slice(out, func(i, j int) bool { return out[i].Action < out[j].Action }) // Deterministic order
	return out, nil
}
