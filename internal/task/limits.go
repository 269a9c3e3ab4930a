package task

import "fmt"

// Default field and capacity bounds. These are deployment constants, not
// user preferences: together with the enum sets they form the stable
// schema contract, and changing any of them is a breaking schema change.
const (
	DefaultMaxTasks          = 100
	DefaultMaxTitleLen       = 50
	DefaultMaxDescriptionLen = 250
)

// Limits bundles the deployment bounds enforced on every create.
//
// RequireDescription makes the empty-description rule explicit: when
// false (the default) a task may be created with no description and only
// an empty title is rejected; when true an empty description is rejected
// the same way an empty title is.
type Limits struct {
	MaxTasks           int  `json:"max_tasks"`
	MaxTitleLen        int  `json:"max_title_len"`
	MaxDescriptionLen  int  `json:"max_description_len"`
	RequireDescription bool `json:"require_description"`
}

// DefaultLimits returns the stock deployment bounds.
func DefaultLimits() Limits {
	return Limits{
		MaxTasks:          DefaultMaxTasks,
		MaxTitleLen:       DefaultMaxTitleLen,
		MaxDescriptionLen: DefaultMaxDescriptionLen,
	}
}

// Validate checks that the limits themselves are usable.
func (l Limits) Validate() error {
	if l.MaxTasks <= 0 {
		return fmt.Errorf("max_tasks must be positive, got %d", l.MaxTasks)
	}
	if l.MaxTitleLen <= 0 {
		return fmt.Errorf("max_title_len must be positive, got %d", l.MaxTitleLen)
	}
	if l.MaxDescriptionLen < 0 {
		return fmt.Errorf("max_description_len must not be negative, got %d", l.MaxDescriptionLen)
	}
	return nil
}
