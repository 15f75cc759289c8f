package response

const (
	MessageSuccess          = "Success"
	MessageValidationFailed = "Validation failed"
	DefaultErrorMessage     = "Something went wrong"

	ValidationErrorCode     = 2
	InternalServerErrorCode = 500
)
