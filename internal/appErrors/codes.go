package appErrors

// Error codes grouped by domain.
const (
	// Authentication
	CodeNotAuthorized ErrorCode = "NOT_AUTHORIZED"
	CodeInvalidToken  ErrorCode = "INVALID_TOKEN"
	CodeForbidden     ErrorCode = "FORBIDDEN"

	// Validation
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeInvalidArgument  ErrorCode = "INVALID_ARGUMENT"

	// Resources
	CodeNotFound      ErrorCode = "NOT_FOUND"
	CodeAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Business rules
	CodeReferentialIntegrity ErrorCode = "REFERENTIAL_INTEGRITY"

	// System
	CodeInternalError ErrorCode = "INTERNAL_ERROR"
)
