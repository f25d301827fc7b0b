package domain

import "errors"

// ErrInputClosed is returned when the input stream ends while the session still needs input.
var ErrInputClosed = errors.New("input stream closed")

// ErrLessonNotFound is returned when no lesson exists for a menu action.
var ErrLessonNotFound = errors.New("lesson not found")

// ErrInvalidLesson is returned when a lesson definition cannot be parsed.
var ErrInvalidLesson = errors.New("invalid lesson")
