package inventory

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/marketplace/constant"
	cerr "github.com/muhammadheryan/marketplace/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMySQLMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	raw, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { raw.Close() })
	return sqlx.NewDb(raw, constant.DriverMySQL), mock
}

var entryColumns = []string{"id", "user_id", "product_id", "count_in_stock"}

func TestSQL_DebitTx(t *testing.T) {
	lockQuery := regexp.QuoteMeta(getEntryQuery + " FOR UPDATE")

	tests := []struct {
		name     string
		quantity int64
		mockCall func(m sqlmock.Sqlmock)
		errCode  constant.ErrorType
	}{
		{
			name:     "partial debit updates the count",
			quantity: 3,
			mockCall: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(lockQuery).WithArgs(uint64(1), uint64(42)).
					WillReturnRows(sqlmock.NewRows(entryColumns).AddRow(9, 1, 42, 10))
				m.ExpectExec(regexp.QuoteMeta(updateCountQuery)).WithArgs(int64(7), uint64(9)).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name:     "full debit deletes the entry",
			quantity: 10,
			mockCall: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(lockQuery).WithArgs(uint64(1), uint64(42)).
					WillReturnRows(sqlmock.NewRows(entryColumns).AddRow(9, 1, 42, 10))
				m.ExpectExec(regexp.QuoteMeta(deleteEntryQuery)).WithArgs(uint64(9)).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name:     "more than held",
			quantity: 11,
			mockCall: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(lockQuery).WithArgs(uint64(1), uint64(42)).
					WillReturnRows(sqlmock.NewRows(entryColumns).AddRow(9, 1, 42, 10))
			},
			errCode: constant.ErrInsufficientStock,
		},
		{
			name:     "no entry holds nothing",
			quantity: 1,
			mockCall: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(lockQuery).WithArgs(uint64(1), uint64(42)).
					WillReturnRows(sqlmock.NewRows(entryColumns))
			},
			errCode: constant.ErrInsufficientStock,
		},
		{
			name:     "non positive quantity",
			quantity: 0,
			mockCall: func(m sqlmock.Sqlmock) {
				m.ExpectQuery(lockQuery).WithArgs(uint64(1), uint64(42)).
					WillReturnRows(sqlmock.NewRows(entryColumns).AddRow(9, 1, 42, 10))
			},
			errCode: constant.ErrInvalidRequest,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			conn, m := newMySQLMock(t)
			m.ExpectBegin()
			tt.mockCall(m)

			tx, err := conn.Beginx()
			require.NoError(t, err)

			err = NewInventoryRepository(conn).DebitTx(context.Background(), tx, 1, 42, tt.quantity)
			if tt.errCode == 0 {
				require.NoError(t, err)
			} else {
				var ce cerr.CustomError
				require.True(t, errors.As(err, &ce), "expected CustomError, got %v", err)
				assert.Equal(t, constant.ErrorTypeCode[tt.errCode], ce.ErrorCode())
			}
			assert.NoError(t, m.ExpectationsWereMet())
		})
	}
}

func TestSQL_CreditTx_UpsertsPerDriver(t *testing.T) {
	conn, m := newMySQLMock(t)
	m.ExpectBegin()
	m.ExpectExec(regexp.QuoteMeta(creditQuery[constant.DriverMySQL])).
		WithArgs(uint64(2), uint64(42), int64(4)).
		WillReturnResult(sqlmock.NewResult(1, 1))

	tx, err := conn.Beginx()
	require.NoError(t, err)

	repo := NewInventoryRepository(conn)
	require.NoError(t, repo.CreditTx(context.Background(), tx, 2, 42, 4))

	err = repo.CreditTx(context.Background(), tx, 2, 42, -1)
	assert.True(t, cerr.Is(err, constant.ErrInvalidRequest))
	assert.NoError(t, m.ExpectationsWereMet())
}

func TestSQL_Get_NotFoundIsNil(t *testing.T) {
	conn, m := newMySQLMock(t)
	m.ExpectQuery(regexp.QuoteMeta(getEntryQuery)).WithArgs(uint64(1), uint64(42)).
		WillReturnRows(sqlmock.NewRows(entryColumns))

	entry, err := NewInventoryRepository(conn).Get(context.Background(), 1, 42)
	require.NoError(t, err)
	assert.Nil(t, entry)
	assert.NoError(t, m.ExpectationsWereMet())
}
