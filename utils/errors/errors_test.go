package errors_test

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"
	"net/http"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/muhammadheryan/marketplace/constant"
	cerr "github.com/muhammadheryan/marketplace/utils/errors"
	"github.com/stretchr/testify/assert"
)

func TestCustomError_Error(t *testing.T) {
	assert.Equal(t, "data not found", cerr.SetCustomError(constant.ErrNotFound).Error())

	err := cerr.SetCustomErrorf(constant.ErrInsufficientStock, "product %s, available %d", "Chair", 3)
	assert.Equal(t, "insufficient stock: product Chair, available 3", err.Error())
	assert.Equal(t, "product Chair, available 3", err.Detail())
	assert.Equal(t, constant.ErrorTypeCode[constant.ErrInsufficientStock], err.ErrorCode())
	assert.Equal(t, http.StatusBadRequest, err.ErrorHTTPCode())
}

func TestIs(t *testing.T) {
	wrapped := fmt.Errorf("accept: %w", cerr.SetCustomError(constant.ErrAlreadyProcessed))
	assert.True(t, cerr.Is(wrapped, constant.ErrAlreadyProcessed))
	assert.False(t, cerr.Is(wrapped, constant.ErrNotFound))
	assert.False(t, cerr.Is(errors.New("plain"), constant.ErrInternal))
}

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

var _ net.Error = timeoutErr{}

func TestFromStorage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want constant.ErrorType
	}{
		{name: "deadline", err: context.DeadlineExceeded, want: constant.ErrUnavailable},
		{name: "canceled wrapped", err: fmt.Errorf("query: %w", context.Canceled), want: constant.ErrUnavailable},
		{name: "bad conn", err: driver.ErrBadConn, want: constant.ErrUnavailable},
		{name: "conn done", err: sql.ErrConnDone, want: constant.ErrUnavailable},
		{name: "net timeout", err: timeoutErr{}, want: constant.ErrUnavailable},
		{name: "mysql deadlock", err: &mysql.MySQLError{Number: 1213}, want: constant.ErrUnavailable},
		{name: "mysql lock wait", err: &mysql.MySQLError{Number: 1205}, want: constant.ErrUnavailable},
		{name: "mysql duplicate", err: &mysql.MySQLError{Number: 1062}, want: constant.ErrInternal},
		{name: "unknown", err: errors.New("boom"), want: constant.ErrInternal},
		{name: "custom passes through", err: cerr.SetCustomError(constant.ErrNotFound), want: constant.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := cerr.FromStorage(tt.err)
			assert.Equal(t, tt.want, got.Type())
		})
	}
}
