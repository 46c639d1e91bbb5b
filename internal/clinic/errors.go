package clinic

// ValidationError reports an appointment entry that failed a field-type or
// status check. It is the caller's signal to translate the failure as bad
// input rather than a system fault. Message is a complete, user-facing
// sentence; Field names the offending JSON field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
