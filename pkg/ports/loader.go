package ports

import "github.com/aretw0/ferris/pkg/domain"

// LessonLoader defines how the tour retrieves lesson content.
// This allows the storage layer (embedded markdown, memory) to be decoupled.
type LessonLoader interface {
	// Lesson returns the lesson attached to a menu action.
	// It returns an error wrapping domain.ErrLessonNotFound when none exists.
	Lesson(action domain.MenuAction) (domain.Lesson, error)

	// Lessons returns every available lesson in menu priority order.
	// This is used for listing and visualization (e.g. 'ferris graph').
	Lessons() ([]domain.Lesson, error)
}
