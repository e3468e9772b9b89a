package errors

import "net/http"

// ErrorCode is a string representation of a specific failure category.
type ErrorCode string

func (c ErrorCode) String() string { return string(c) }

// Common error codes.
const (
	CodeOK           ErrorCode = "OK"
	CodeUnknown      ErrorCode = "COMMON_000"
	CodeInternal     ErrorCode = "COMMON_001"
	CodeInvalidParam ErrorCode = "COMMON_002"
	CodeNotFound     ErrorCode = "COMMON_003"
	CodeValidation   ErrorCode = "COMMON_004"
)

// Chemistry adapter error codes.
const (
	// CodeParseFailed marks a connectivity string the graph engine rejected.
	CodeParseFailed ErrorCode = "CHEM_001"
	// CodePatternInvalid marks a substructure pattern that failed to compile.
	CodePatternInvalid ErrorCode = "CHEM_002"
)

// HSP engine error codes.
const (
	// CodeMethodUnknown marks a method tag outside the closed Method set.
	CodeMethodUnknown ErrorCode = "HSP_001"
	// CodeMethodUnavailable marks a method that cannot run for the given
	// molecule (no connectivity, no fragments, missing base result).
	CodeMethodUnavailable ErrorCode = "HSP_002"
	// CodeReferenceNotFound marks a reference-table miss.
	CodeReferenceNotFound ErrorCode = "HSP_003"
)

// ErrorCodeHTTPStatus maps ErrorCodes to HTTP status codes for the API layer.
var ErrorCodeHTTPStatus = map[ErrorCode]int{
	CodeInternal:          http.StatusInternalServerError,
	CodeInvalidParam:      http.StatusBadRequest,
	CodeNotFound:          http.StatusNotFound,
	CodeValidation:        http.StatusUnprocessableEntity,
	CodeParseFailed:       http.StatusBadRequest,
	CodePatternInvalid:    http.StatusInternalServerError,
	CodeMethodUnknown:     http.StatusBadRequest,
	CodeMethodUnavailable: http.StatusUnprocessableEntity,
	CodeReferenceNotFound: http.StatusNotFound,
}

// HTTPStatusForCode returns the HTTP status for an ErrorCode, defaulting to
// 500 for unmapped codes.
func HTTPStatusForCode(code ErrorCode) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
