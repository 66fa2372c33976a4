package errorx

import (
	"errors"
	"fmt"
)

type Error struct {
	Code    Code
	Message string

	// Reason is the revert reason reported by the contract, if any.
	Reason string
}

func (e Error) Error() string {
	return e.Message
}

func New(code Code, format string, a ...any) Error {
	return Error{Code: code, Message: fmt.Sprintf(format, a...)}
}

// Reverted builds a TransactionReverted error carrying the contract's reason.
func Reverted(reason string) Error {
	if reason == "" {
		return Error{Code: TransactionReverted, Message: "Transaction reverted"}
	}

	return Error{
		Code:    TransactionReverted,
		Message: fmt.Sprintf("Transaction reverted: %s", reason),
		Reason:  reason,
	}
}

// Is reports whether err is an errorx.Error with the given code.
func Is(err error, code Code) bool {
	var errx Error
	if errors.As(err, &errx) {
		return errx.Code == code
	}

	return false
}
