package httperror

import "net/http"

// Constructor creates an error with a fixed status code.
type Constructor func(message string, opts ...Option) *Error

// statusCodes lists every status code known to net/http.
var statusCodes = []int{
	http.StatusContinue,
	http.StatusSwitchingProtocols,
	http.StatusProcessing,
	http.StatusEarlyHints,

	http.StatusOK,
	http.StatusCreated,
	http.StatusAccepted,
	http.StatusNonAuthoritativeInfo,
	http.StatusNoContent,
	http.StatusResetContent,
	http.StatusPartialContent,
	http.StatusMultiStatus,
	http.StatusAlreadyReported,
	http.StatusIMUsed,

	http.StatusMultipleChoices,
	http.StatusMovedPermanently,
	http.StatusFound,
	http.StatusSeeOther,
	http.StatusNotModified,
	http.StatusUseProxy,
	http.StatusTemporaryRedirect,
	http.StatusPermanentRedirect,

	http.StatusBadRequest,
	http.StatusUnauthorized,
	http.StatusPaymentRequired,
	http.StatusForbidden,
	http.StatusNotFound,
	http.StatusMethodNotAllowed,
	http.StatusNotAcceptable,
	http.StatusProxyAuthRequired,
	http.StatusRequestTimeout,
	http.StatusConflict,
	http.StatusGone,
	http.StatusLengthRequired,
	http.StatusPreconditionFailed,
	http.StatusRequestEntityTooLarge,
	http.StatusRequestURITooLong,
	http.StatusUnsupportedMediaType,
	http.StatusRequestedRangeNotSatisfiable,
	http.StatusExpectationFailed,
	http.StatusTeapot,
	http.StatusMisdirectedRequest,
	http.StatusUnprocessableEntity,
	http.StatusLocked,
	http.StatusFailedDependency,
	http.StatusTooEarly,
	http.StatusUpgradeRequired,
	http.StatusPreconditionRequired,
	http.StatusTooManyRequests,
	http.StatusRequestHeaderFieldsTooLarge,
	http.StatusUnavailableForLegalReasons,

	http.StatusInternalServerError,
	http.StatusNotImplemented,
	http.StatusBadGateway,
	http.StatusServiceUnavailable,
	http.StatusGatewayTimeout,
	http.StatusHTTPVersionNotSupported,
	http.StatusVariantAlsoNegotiates,
	http.StatusInsufficientStorage,
	http.StatusLoopDetected,
	http.StatusNotExtended,
	http.StatusNetworkAuthenticationRequired,
}

// Constructors holds a constructor for every known status code, keyed by status name:
//
//	httperror.Constructors["NotFound"]("user 42 does not exist")
var Constructors = newConstructors()

func newConstructors() map[string]Constructor {
	constructors := make(map[string]Constructor, len(statusCodes))

	for _, statusCode := range statusCodes {
		constructors[StatusName(statusCode)] = func(message string, opts ...Option) *Error {
			return New(statusCode, message, opts...)
		}
	}

	return constructors
}

// ByName returns the status code for the given status name.
func ByName(name string) (int, bool) {
	for _, statusCode := range statusCodes {
		if StatusName(statusCode) == name {
			return statusCode, true
		}
	}

	return 0, false
}

// NotFound, BadRequest and friends cover the most common cases without a map lookup.

func BadRequest(message string, opts ...Option) *Error {
	return New(http.StatusBadRequest, message, opts...)
}

func Unauthorized(message string, opts ...Option) *Error {
	return New(http.StatusUnauthorized, message, opts...)
}

func Forbidden(message string, opts ...Option) *Error {
	return New(http.StatusForbidden, message, opts...)
}

func NotFound(message string, opts ...Option) *Error {
	return New(http.StatusNotFound, message, opts...)
}

func Conflict(message string, opts ...Option) *Error {
	return New(http.StatusConflict, message, opts...)
}

func InternalServerError(message string, opts ...Option) *Error {
	return New(http.StatusInternalServerError, message, opts...)
}
