// Package result defines what the read and write paths hand back to the
// presentation layer once storage detail has been stripped.
package result

import "invoice-dashboard-backend/internal/validation"

// Outcome is the result of a mutation. It is exactly one of Redirect,
// Invalid, Failed or Completed.
type Outcome interface {
	outcome()
}

// Redirect means the write succeeded and the caller should navigate to To.
type Redirect struct {
	To string
}

// Invalid means the submission was rejected before storage was touched.
type Invalid struct {
	Errors  validation.FieldErrors
	Message string
}

// Failed means storage rejected the statement. Message is generic.
type Failed struct {
	Message string
}

// Completed means the write succeeded and there is nowhere to navigate to.
type Completed struct{}

func (Redirect) outcome()  {}
func (Invalid) outcome()   {}
func (Failed) outcome()    {}
func (Completed) outcome() {}

func FromFailure(f *validation.Failure) Invalid {
	return Invalid{Errors: f.Errors, Message: f.Message}
}

// FetchError is returned by reads that hit storage and fail. The cause has
// already been logged and is deliberately not carried.
type FetchError struct {
	What string
}

func (e *FetchError) Error() string {
	return "Failed to fetch " + e.What + "."
}

func NewFetchError(what string) *FetchError {
	return &FetchError{What: what}
}
