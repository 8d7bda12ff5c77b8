package dataset

import "fmt"

// LoadError indicates the dataset could not be fetched or does not match
// the expected schema. It is fatal: nothing can render without data.
type LoadError struct {
	Source string
	Reason string
	Err    error
}

func (e *LoadError) Error() string {
	if e == nil {
		return "load dataset"
	}
	if e.Err != nil {
		return fmt.Sprintf("load dataset %s: %s: %v", e.Source, e.Reason, e.Err)
	}
	return fmt.Sprintf("load dataset %s: %s", e.Source, e.Reason)
}

func (e *LoadError) Unwrap() error { return e.Err }
