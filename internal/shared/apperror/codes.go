package apperror

const (
	// Client errors (4xx)
	CodeValidation = "VALIDATION_ERROR"
	CodeNotFound   = "NOT_FOUND"
	// Conflicts (duplicate key, referential block) answer 400 so the client
	// gets a user-actionable reason instead of a bare constraint violation.
	CodeConflict = "CONFLICT"

	// Server errors (5xx)
	CodeInternalError      = "INTERNAL_ERROR"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
)
