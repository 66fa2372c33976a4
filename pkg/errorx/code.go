package errorx

import "net/http"

type Code int

var Unknown = Error{Code: 100000, Message: "Request failed"}

const (
	// Caller codes
	InvalidRequest Code = 100001
	InvalidAddress Code = 100002
	NotFound       Code = 100004
	Internal       Code = 100007
	TooManyRequest Code = 100010

	// Chain codes
	ChainRead           Code = 200001
	ChainWrite          Code = 200002
	TransactionTimeout  Code = 200003
	ContractState       Code = 200004
	TransactionReverted Code = 200005
	NonceConflict       Code = 200006
)

var statuses = map[Code]int{
	InvalidRequest:      http.StatusBadRequest,
	InvalidAddress:      http.StatusBadRequest,
	NotFound:            http.StatusNotFound,
	Internal:            http.StatusInternalServerError,
	TooManyRequest:      http.StatusTooManyRequests,
	ChainRead:           http.StatusBadGateway,
	ChainWrite:          http.StatusBadGateway,
	TransactionTimeout:  http.StatusGatewayTimeout,
	ContractState:       http.StatusConflict,
	TransactionReverted: http.StatusUnprocessableEntity,
	NonceConflict:       http.StatusConflict,
}

// HTTPStatus maps a code to the status written by the router. Unknown codes
// are server errors.
func HTTPStatus(code Code) int {
	if status, ok := statuses[code]; ok {
		return status
	}

	return http.StatusInternalServerError
}

// Retryable reports whether a caller may re-issue the same request unchanged.
// A timed out write is not retryable because it may still be mined.
func Retryable(code Code) bool {
	switch code {
	case ChainRead, NonceConflict, TooManyRequest:
		return true
	}

	return false
}
