// Package task implements the per-owner todo-list record and the three
// mutating operations over it: create, reassign, and status update.
//
// The package is the authority for every correctness rule of the record:
// identifier assignment, capacity, field validation, the status state
// machine, and the creator/assignee authorization gates. Persistence and
// transport live outside; callers hand the package an already-resolved
// caller identity and receive either a task snapshot or a typed *OpError.
//
// All operations are all-or-nothing: every validation and authorization
// check resolves before any field is written, so a failed call leaves the
// record exactly as it was.
package task
