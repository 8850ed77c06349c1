package task

// Status is the completion state of a Task. Only two values exist.
type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
)

// StatusFromCompleted maps a completed flag to a Status.
func StatusFromCompleted(completed bool) Status {
	if completed {
		return StatusCompleted
	}
	return StatusPending
}

// IsValid returns true if the status is one of the defined constants.
func (s Status) IsValid() bool {
	return s == StatusPending || s == StatusCompleted
}

// IsCompleted reports whether s is StatusCompleted.
func (s Status) IsCompleted() bool { return s == StatusCompleted }

// IsPending reports whether s is anything but completed.
func (s Status) IsPending() bool { return s != StatusCompleted }

// Toggle returns the opposite status.
func (s Status) Toggle() Status {
	if s.IsCompleted() {
		return StatusPending
	}
	return StatusCompleted
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}
