package descriptor

import "fmt"

// ErrorCode classifies descriptor construction failures
type ErrorCode int

const (
	UnknownErrorCode ErrorCode = iota
	InvalidNameCode
	InvalidTypeCode
	InvalidMethodCode
	InvalidParameterCode
)

// String returns the string representation of the error code
func (c ErrorCode) String() string {
	switch c {
	case InvalidNameCode:
		return "InvalidName"
	case InvalidTypeCode:
		return "InvalidType"
	case InvalidMethodCode:
		return "InvalidMethod"
	case InvalidParameterCode:
		return "InvalidParameter"
	default:
		return "Unknown"
	}
}

// DescriptorError reports invalid caller-supplied descriptor data. It is
// returned before any derivation runs; no partially built aggregate ever
// escapes alongside one.
type DescriptorError struct {
	Code       ErrorCode // classification of the failure
	Descriptor string    // factory name, when known
	Field      string    // offending field, method, or parameter
	Message    string    // error message
	Cause      error     // underlying error cause
}

// Error implements the error interface
func (e *DescriptorError) Error() string {
	prefix := e.Code.String()
	if e.Descriptor != "" {
		prefix = fmt.Sprintf("%s in factory '%s'", prefix, e.Descriptor)
	}
	if e.Field != "" {
		prefix = fmt.Sprintf("%s (%s)", prefix, e.Field)
	}
	return fmt.Sprintf("%s: %s", prefix, e.Message)
}

// Unwrap returns the underlying error cause
func (e *DescriptorError) Unwrap() error {
	return e.Cause
}

func newDescriptorError(code ErrorCode, descriptor, field string, cause error) *DescriptorError {
	message := "invalid input"
	if cause != nil {
		message = cause.Error()
	}
	return &DescriptorError{
		Code:       code,
		Descriptor: descriptor,
		Field:      field,
		Message:    message,
		Cause:      cause,
	}
}
