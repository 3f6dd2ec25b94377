// Package board classifies and orders tasks for the dashboard, kanban and
// backlog views.
//
// Every function is pure: it reads its arguments, returns freshly allocated
// slices and never mutates the input, so callers may invoke it from any
// goroutine on every refresh. Invalid enum values and missing deadlines are
// rejected with the domain sentinel errors rather than defaulted, because a
// silently defaulted value would misplace the task in every view.
package board
