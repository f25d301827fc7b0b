package ferris_test

import (
	"testing"

	"github.com/aretw0/ferris"
	"github.com/aretw0/ferris/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedLessons(t *testing.T) {
	tour, err := ferris.New()
	require.NoError(t, err)

	lessons, err := tour.Lessons()
	require.NoError(t, err)
	require.Len(t, lessons, 4)

	wantPages := map[domain.MenuAction]int{
		domain.MenuOwnership:   7,
		domain.MenuStructs:     3,
		domain.MenuEnums:       3,
		domain.MenuReliability: 3,
	}

	for i, lesson := range lessons {
		assert.Equal(t, domain.MenuOrder[i], lesson.Action)
		assert.NotEmpty(t, lesson.Title)
		assert.NotEmpty(t, lesson.Summary)
		assert.Len(t, lesson.Pages, wantPages[lesson.Action], "lesson %s", lesson.Action)
		for _, page := range lesson.Pages {
			assert.NotContains(t, page.Body, "<!-- advance -->")
		}
	}
}

func TestTour_LessonNotFound(t *testing.T) {
	tour, err := ferris.New()
	require.NoError(t, err)

	_, err = tour.Lesson(domain.MenuQuit)
	assert.ErrorIs(t, err, domain.ErrLessonNotFound)
}

func TestTour_Resolve(t *testing.T) {
	tour, err := ferris.New()
	require.NoError(t, err)

	assert.Equal(t, domain.MenuOwnership, tour.Resolve(" Own "))
	assert.Equal(t, domain.MenuStructs, tour.Resolve("u"))
	assert.Equal(t, domain.MenuInvalid, tour.Resolve("xyz123"))
}
