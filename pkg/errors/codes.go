package errors

import (
	"net/http"
)

// ErrorCode is a string representation of a specific error condition.  The
// prefix before the underscore names the owning module.
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

// Common Error Codes
const (
	ErrCodeInternal           ErrorCode = "COMMON_001"
	ErrCodeBadRequest         ErrorCode = "COMMON_002"
	ErrCodeNotFound           ErrorCode = "COMMON_005"
	ErrCodeTooManyRequests    ErrorCode = "COMMON_007"
	ErrCodeServiceUnavailable ErrorCode = "COMMON_008"
	ErrCodeTimeout            ErrorCode = "COMMON_009"
	ErrCodeSerialization      ErrorCode = "COMMON_011"
	ErrCodeDatabaseError      ErrorCode = "COMMON_012"
	ErrCodeCacheError         ErrorCode = "COMMON_013"
	ErrCodeExternalService    ErrorCode = "COMMON_014"
	ErrCodeFeatureDisabled    ErrorCode = "COMMON_015"
)

// Herb knowledge base Error Codes
const (
	ErrCodeHerbNotFound        ErrorCode = "HERB_001"
	ErrCodePropertyKindInvalid ErrorCode = "HERB_002"
)

// Compound resolution Error Codes
const (
	ErrCodeCompoundNotFound       ErrorCode = "CPD_001"
	ErrCodePubChemUnavailable     ErrorCode = "CPD_002"
	ErrCodePubChemResponseInvalid ErrorCode = "CPD_003"
	ErrCodeRemoteLookupDisabled   ErrorCode = "CPD_004"
)

// Analysis pipeline Error Codes
const (
	ErrCodeAnalysisFailed ErrorCode = "ANA_001"
	ErrCodeGraphStore     ErrorCode = "ANA_002"
	ErrCodeEventPublish   ErrorCode = "ANA_003"
)

// Short aliases used at call sites.
const (
	CodeOK                 = ErrorCode("OK")
	CodeUnknown            = ErrorCode("UNKNOWN")
	CodeInternal           = ErrCodeInternal
	CodeInvalidParam       = ErrCodeBadRequest
	CodeNotFound           = ErrCodeNotFound
	CodeRateLimit          = ErrCodeTooManyRequests
	CodeServiceUnavailable = ErrCodeServiceUnavailable
	CodeDatabaseError      = ErrCodeDatabaseError
	CodeCacheError         = ErrCodeCacheError
	CodeSerialization      = ErrCodeSerialization

	CodeHerbNotFound           = ErrCodeHerbNotFound
	CodePropertyKindInvalid    = ErrCodePropertyKindInvalid
	CodeCompoundNotFound       = ErrCodeCompoundNotFound
	CodePubChemUnavailable     = ErrCodePubChemUnavailable
	CodePubChemResponseInvalid = ErrCodePubChemResponseInvalid
	CodeRemoteLookupDisabled   = ErrCodeRemoteLookupDisabled
	CodeAnalysisFailed         = ErrCodeAnalysisFailed
	CodeGraphStore             = ErrCodeGraphStore
	CodeEventPublish           = ErrCodeEventPublish
)

// ErrorCodeHTTPStatus maps ErrorCodes to HTTP status codes.
var ErrorCodeHTTPStatus = map[ErrorCode]int{
	ErrCodeInternal:           http.StatusInternalServerError,
	ErrCodeBadRequest:         http.StatusBadRequest,
	ErrCodeNotFound:           http.StatusNotFound,
	ErrCodeTooManyRequests:    http.StatusTooManyRequests,
	ErrCodeServiceUnavailable: http.StatusServiceUnavailable,
	ErrCodeTimeout:            http.StatusGatewayTimeout,
	ErrCodeSerialization:      http.StatusInternalServerError,
	ErrCodeDatabaseError:      http.StatusInternalServerError,
	ErrCodeCacheError:         http.StatusInternalServerError,
	ErrCodeExternalService:    http.StatusBadGateway,
	ErrCodeFeatureDisabled:    http.StatusForbidden,

	ErrCodeHerbNotFound:        http.StatusNotFound,
	ErrCodePropertyKindInvalid: http.StatusBadRequest,

	ErrCodeCompoundNotFound:       http.StatusNotFound,
	ErrCodePubChemUnavailable:     http.StatusBadGateway,
	ErrCodePubChemResponseInvalid: http.StatusBadGateway,
	ErrCodeRemoteLookupDisabled:   http.StatusServiceUnavailable,

	ErrCodeAnalysisFailed: http.StatusInternalServerError,
	ErrCodeGraphStore:     http.StatusInternalServerError,
	ErrCodeEventPublish:   http.StatusInternalServerError,
}

// ErrorCodeMessage maps ErrorCodes to default messages.
var ErrorCodeMessage = map[ErrorCode]string{
	ErrCodeInternal:           "internal server error",
	ErrCodeBadRequest:         "bad request",
	ErrCodeNotFound:           "resource not found",
	ErrCodeTooManyRequests:    "too many requests",
	ErrCodeServiceUnavailable: "service unavailable",
	ErrCodeTimeout:            "request timeout",
	ErrCodeSerialization:      "serialization failed",
	ErrCodeDatabaseError:      "database error",
	ErrCodeCacheError:         "cache error",
	ErrCodeExternalService:    "external service error",
	ErrCodeFeatureDisabled:    "feature disabled",

	ErrCodeHerbNotFound:        "herb not found",
	ErrCodePropertyKindInvalid: "unsupported property type",

	ErrCodeCompoundNotFound:       "compound not found",
	ErrCodePubChemUnavailable:     "pubchem unavailable",
	ErrCodePubChemResponseInvalid: "invalid pubchem response",
	ErrCodeRemoteLookupDisabled:   "remote lookup disabled",

	ErrCodeAnalysisFailed: "analysis failed",
	ErrCodeGraphStore:     "graph store error",
	ErrCodeEventPublish:   "event publish failed",
}

// HTTPStatusForCode returns the HTTP status code for an ErrorCode.
func HTTPStatusForCode(code ErrorCode) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// DefaultMessageForCode returns the default message for an ErrorCode.
func DefaultMessageForCode(code ErrorCode) string {
	if msg, ok := ErrorCodeMessage[code]; ok {
		return msg
	}
	return "unknown error"
}

// IsServerError returns true if the ErrorCode corresponds to a 5xx HTTP status.
func IsServerError(code ErrorCode) bool {
	status := HTTPStatusForCode(code)
	return status >= 500 && status < 600
}

//Personal.AI order the ending
