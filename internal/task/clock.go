package task

import "time"

// Clock supplies timestamps for task creation and updates.
//
// Production code uses SystemClock; tests substitute a deterministic
// implementation so created_at/updated_at values are reproducible.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock, truncated to whole seconds to match
// the persisted resolution.
type SystemClock struct{}

// Now returns the current UTC time at second resolution.
func (SystemClock) Now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}
