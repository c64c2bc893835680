package errors

import (
	"context"
	"database/sql"
	"database/sql/driver"
	stderrors "errors"
	"fmt"
	"net"

	"github.com/go-sql-driver/mysql"
	"github.com/muhammadheryan/marketplace/constant"
)

const (
	mysqlLockWaitTimeout = 1205
	mysqlDeadlock        = 1213
)

type CustomError struct {
	errType constant.ErrorType
	detail  string
}

func (c CustomError) Error() string {
	if c.detail == "" {
		return constant.ErrorTypeMessage[c.errType]
	}
	return constant.ErrorTypeMessage[c.errType] + ": " + c.detail
}

func (c CustomError) ErrorCode() string {
	return constant.ErrorTypeCode[c.errType]
}

func (c CustomError) ErrorHTTPCode() int {
	return constant.ErrorTypeHTTPCode[c.errType]
}

func (c CustomError) Type() constant.ErrorType {
	return c.errType
}

// Detail is the context a client needs to act on the error (product, available count, transfer id).
func (c CustomError) Detail() string {
	return c.detail
}

func SetCustomError(errorType constant.ErrorType) CustomError {
	return CustomError{
		errType: errorType,
	}
}

func SetCustomErrorf(errorType constant.ErrorType, format string, args ...any) CustomError {
	return CustomError{
		errType: errorType,
		detail:  fmt.Sprintf(format, args...),
	}
}

// Is reports whether err is a CustomError of the given type.
func Is(err error, errorType constant.ErrorType) bool {
	var ce CustomError
	if !stderrors.As(err, &ce) {
		return false
	}
	return ce.errType == errorType
}

// FromStorage maps a raw storage error to the error surfaced to callers.
// Connectivity, timeout and lock contention failures are retryable.
func FromStorage(err error) CustomError {
	var ce CustomError
	if stderrors.As(err, &ce) {
		return ce
	}
	if isRetryable(err) {
		return SetCustomError(constant.ErrUnavailable)
	}
	return SetCustomError(constant.ErrInternal)
}

func isRetryable(err error) bool {
	if stderrors.Is(err, context.DeadlineExceeded) ||
		stderrors.Is(err, context.Canceled) ||
		stderrors.Is(err, driver.ErrBadConn) ||
		stderrors.Is(err, sql.ErrConnDone) ||
		stderrors.Is(err, mysql.ErrInvalidConn) {
		return true
	}

	var netErr net.Error
	if stderrors.As(err, &netErr) {
		return true
	}

	var myErr *mysql.MySQLError
	if stderrors.As(err, &myErr) {
		return myErr.Number == mysqlLockWaitTimeout || myErr.Number == mysqlDeadlock
	}
	return false
}
