package schedule

import "fmt"

// InputError is returned when the activity table or parameter block fails
// validation before any DP work starts. Never wraps an infeasible solve.
type InputError struct {
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("invalid schedule input: %s", e.Reason)
}

func inputErrorf(format string, args ...any) error {
	return &InputError{Reason: fmt.Sprintf(format, args...)}
}

// ResourceError is returned when a solve would allocate more labels than
// Params.MaxLabels permits. The caller must free (discard the Result) and
// retry with a narrower enumeration or a higher cap.
type ResourceError struct {
	MaxLabels int
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("label arena exhausted: exceeded MaxLabels=%d", e.MaxLabels)
}
