package domain

import "net/http"

// StatusCode is the closed API status taxonomy. Values are part of the wire
// contract and must not change.
type StatusCode int

const (
	StatusSuccess      StatusCode = 100
	StatusGenericError StatusCode = 105
	StatusNoDataFound  StatusCode = 108
	StatusBadRequest   StatusCode = 400
	StatusUnauthorized StatusCode = 401
	StatusNotFound     StatusCode = 404
)

// Label returns the canonical name for the code.
func (s StatusCode) Label() string {
	switch s {
	case StatusSuccess:
		return "Success"
	case StatusGenericError:
		return "GenericError"
	case StatusNoDataFound:
		return "NoDataFound"
	case StatusBadRequest:
		return "BadRequest"
	case StatusUnauthorized:
		return "Unauthorized"
	case StatusNotFound:
		return "NotFound"
	default:
		return "Unknown"
	}
}

// HTTPStatus maps the envelope code onto the transport status. NoDataFound
// is a 200: an empty list is not a transport failure.
func (s StatusCode) HTTPStatus() int {
	switch s {
	case StatusSuccess, StatusNoDataFound:
		return http.StatusOK
	case StatusBadRequest:
		return http.StatusBadRequest
	case StatusUnauthorized:
		return http.StatusUnauthorized
	case StatusNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

const defaultSuccessMessage = "Operation completed successfully"

// Envelope is the uniform wrapper every endpoint returns. Label always
// mirrors Code; Data is only ever set by NewResult.
type Envelope struct {
	Code    StatusCode `json:"code"`
	Label   string     `json:"label"`
	Message string     `json:"message,omitempty"`
	Data    any        `json:"data,omitempty"`
}

// NewResult wraps a success payload. The code is forced to Success so a
// handler cannot produce a data-bearing failure.
func NewResult(data any) Envelope {
	return Envelope{
		Code:    StatusSuccess,
		Label:   StatusSuccess.Label(),
		Message: defaultSuccessMessage,
		Data:    data,
	}
}

// NewStatus wraps a non-payload outcome. Data is forced absent.
func NewStatus(code StatusCode, message string) Envelope {
	return Envelope{
		Code:    code,
		Label:   code.Label(),
		Message: message,
	}
}
