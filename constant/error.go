package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrCredentialExists
	ErrInvalidPassword
	ErrForbidden
	ErrInsufficientStock
	ErrAlreadyProcessed
	ErrUnavailable
	ErrInvalidRefreshToken
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:             "success",
	ErrInternal:            "error internal",
	ErrNotFound:            "data not found",
	ErrInvalidRequest:      "invalid request",
	ErrUnauthorize:         "unauthorize request",
	ErrCredentialExists:    "email or phone already exists",
	ErrInvalidPassword:     "password invalid",
	ErrForbidden:           "forbidden",
	ErrInsufficientStock:   "insufficient stock",
	ErrAlreadyProcessed:    "transfer is already processed",
	ErrUnavailable:         "service temporarily unavailable",
	ErrInvalidRefreshToken: "refresh token invalid or expired",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:             http.StatusOK,
	ErrInternal:            http.StatusInternalServerError,
	ErrNotFound:            http.StatusNotFound,
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrUnauthorize:         http.StatusUnauthorized,
	ErrCredentialExists:    http.StatusBadRequest,
	ErrInvalidPassword:     http.StatusBadRequest,
	ErrForbidden:           http.StatusForbidden,
	ErrInsufficientStock:   http.StatusBadRequest,
	ErrAlreadyProcessed:    http.StatusConflict,
	ErrUnavailable:         http.StatusServiceUnavailable,
	ErrInvalidRefreshToken: http.StatusUnauthorized,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:             "0000",
	ErrInternal:            "0001",
	ErrNotFound:            "0002",
	ErrInvalidRequest:      "0003",
	ErrUnauthorize:         "0004",
	ErrCredentialExists:    "0005",
	ErrInvalidPassword:     "0006",
	ErrForbidden:           "0007",
	ErrInsufficientStock:   "0008",
	ErrAlreadyProcessed:    "0009",
	ErrUnavailable:         "0010",
	ErrInvalidRefreshToken: "0011",
}
