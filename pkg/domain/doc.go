/*
Package domain contains the core model of the ferris tour.

It defines the closed set of menu actions, their canonical labels and priority order,
the fuzzy substring matcher that turns free text into an action, and the lesson/page
model for demonstrations. The package is pure: no I/O, no state.

# Key Entities

  - MenuAction: Ownership, Structs, Enums, Reliability, Quit or Invalid.
  - MenuOrder: The priority in which labels are tried; the first match wins.
  - Resolve / MatchSubstring: Case-insensitive, anchored match of the input against every contiguous substring of a label.
  - Lesson / Page: Static demonstration content, split at pagination gates.
*/
package domain
