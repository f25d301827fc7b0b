package tests

import (
	"errors"
	"testing"

	"github.com/aretw0/ferris/pkg/domain"
	"github.com/aretw0/ferris/pkg/ports"
)

// LessonLoaderContractTest is a reusable test suite that verifies if an adapter complies with ports.LessonLoader.
// expected holds the lessons the adapter was seeded with, keyed by action.
func LessonLoaderContractTest(t *testing.T, loader ports.LessonLoader, expected map[domain.MenuAction]domain.Lesson) {
	t.Helper()

	// 1. Test Lesson (Success)
	t.Run("Lesson_Success", func(t *testing.T) {
		for action, want := range expected {
			got, err := loader.Lesson(action)
			if err != nil {
				t.Fatalf("unexpected error getting lesson %s: %v", action, err)
			}
			if got.Title != want.Title {
				t.Errorf("title mismatch for %s. got %q, want %q", action, got.Title, want.Title)
			}
			if len(got.Pages) != len(want.Pages) {
				t.Errorf("page count mismatch for %s. got %d, want %d", action, len(got.Pages), len(want.Pages))
			}
		}
	})

	// 2. Test Lesson (NotFound)
	t.Run("Lesson_NotFound", func(t *testing.T) {
		for _, action := range []domain.MenuAction{domain.MenuQuit, domain.MenuInvalid} {
			_, err := loader.Lesson(action)
			if !errors.Is(err, domain.ErrLessonNotFound) {
				t.Errorf("expected ErrLessonNotFound for %s, got %v", action, err)
			}
		}
	})

	// 3. Test Lessons (priority order)
	t.Run("Lessons", func(t *testing.T) {
		lessons, err := loader.Lessons()
		if err != nil {
			t.Fatalf("unexpected error listing lessons: %v", err)
		}

		if len(lessons) != len(expected) {
			t.Errorf("expected %d lessons, got %d", len(expected), len(lessons))
		}

		for i := 1; i < len(lessons); i++ {
			if lessons[i-1].Action >= lessons[i].Action {
				t.Errorf("lessons out of menu order: %s before %s", lessons[i-1].Action, lessons[i].Action)
			}
		}
	})
}
