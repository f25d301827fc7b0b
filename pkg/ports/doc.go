/*
Package ports defines the driven ports (interfaces) for the ferris tour.

These interfaces decouple the session loop from where lesson content comes from,
allowing the tour to run from embedded markdown or from in-memory fixtures.

# Key Interfaces

  - LessonLoader: Responsible for loading Lesson definitions (e.g., from embedded markdown or Memory).
*/
package ports
