package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Authentication ────────────────────────────────────────────────
	ErrInvalidCredentials ErrCode = "INVALID_CREDENTIALS"
	ErrEmailTaken         ErrCode = "EMAIL_ALREADY_REGISTERED"
	ErrTokenRequired      ErrCode = "TOKEN_REQUIRED"
	ErrTokenInvalid       ErrCode = "TOKEN_INVALID"
	ErrTokenExpired       ErrCode = "TOKEN_EXPIRED"

	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation     ErrCode = "VALIDATION_ERROR"
	ErrInvalidID      ErrCode = "INVALID_ID"
	ErrInvalidPayload ErrCode = "INVALID_PAYLOAD"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrNotFound         ErrCode = "NOT_FOUND"
	ErrCourseNotFound   ErrCode = "COURSE_NOT_FOUND"
	ErrMajorNotFound    ErrCode = "MAJOR_NOT_FOUND"
	ErrConflict         ErrCode = "CONFLICT"
	ErrCourseScheduled  ErrCode = "COURSE_ALREADY_SCHEDULED"
	ErrNoMajorSelected  ErrCode = "NO_MAJOR_SELECTED"
	ErrUnknownSemester  ErrCode = "UNKNOWN_SEMESTER"
	ErrUnknownCollege   ErrCode = "UNKNOWN_COLLEGE"
	ErrPassSuperseded   ErrCode = "RECOMPUTATION_SUPERSEDED"
	ErrInvalidCriterion ErrCode = "INVALID_FILTER_CRITERION"

	// ─── Rate Limiting ─────────────────────────────────────────────────
	ErrRateLimitExceeded ErrCode = "RATE_LIMIT_EXCEEDED"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	// ─── Authentication ────────────────────────────────────────────────
	case ErrInvalidCredentials:
		return "Email or password is incorrect."
	case ErrEmailTaken:
		return "An account with this email already exists."
	case ErrTokenRequired:
		return "Authentication token is required."
	case ErrTokenInvalid:
		return "Authentication token is invalid."
	case ErrTokenExpired:
		return "Authentication token has expired."

	// ─── Validation ────────────────────────────────────────────────────
	case ErrValidation:
		return "Validation failed. Please check your input."
	case ErrInvalidID:
		return "Invalid ID format."
	case ErrInvalidPayload:
		return "Invalid request payload."

	// ─── Resources ─────────────────────────────────────────────────────
	case ErrNotFound:
		return "Resource not found."
	case ErrCourseNotFound:
		return "Course not found in the catalog."
	case ErrMajorNotFound:
		return "Major not found."
	case ErrConflict:
		return "Resource already exists."
	case ErrCourseScheduled:
		return "This course is already on your schedule."
	case ErrNoMajorSelected:
		return "Select a major and college before requesting a requirement report."
	case ErrUnknownSemester:
		return "Unknown planning semester label."
	case ErrUnknownCollege:
		return "This major has no entry for the selected college."
	case ErrPassSuperseded:
		return "A newer recomputation superseded this request."
	case ErrInvalidCriterion:
		return "Unknown filter category or option."

	// ─── Rate Limiting ─────────────────────────────────────────────────
	case ErrRateLimitExceeded:
		return "Too many requests. Please try again later."

	// ─── Server ────────────────────────────────────────────────────────
	case ErrInternal:
		return "An internal server error occurred."
	default:
		return "An unexpected error occurred."
	}
}
