package product

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/marketplace/constant"
	"github.com/muhammadheryan/marketplace/db"
	"github.com/muhammadheryan/marketplace/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQL_GetByIDTx_TakesSharedLock(t *testing.T) {
	raw, m, err := sqlmock.New()
	require.NoError(t, err)
	defer raw.Close()
	conn := sqlx.NewDb(raw, constant.DriverMySQL)

	m.ExpectBegin()
	m.ExpectQuery(regexp.QuoteMeta(getProductQuery+" LOCK IN SHARE MODE")).
		WithArgs(uint64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description", "image_url", "price", "office", "created_at"}).
			AddRow(42, "Widget", "", "", "19.99", "Jakarta", time.Now()))
	m.ExpectQuery(regexp.QuoteMeta(getReplacementQuery+" FOR UPDATE")).
		WithArgs(uint64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"product_id"}))

	tx, err := conn.Beginx()
	require.NoError(t, err)

	repo := NewProductRepository(conn)
	p, err := repo.GetByIDTx(context.Background(), tx, 42)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Widget", p.Name)

	replacement, err := repo.GetReplacementTx(context.Background(), tx, 7)
	require.NoError(t, err)
	assert.Zero(t, replacement)
	assert.NoError(t, m.ExpectationsWereMet())
}

func TestSQL_ReplacementFollowsProduct(t *testing.T) {
	ctx := context.Background()
	conn := db.NewTestDB(t)
	repo := NewProductRepository(conn)

	tx, err := conn.BeginTxx(ctx, nil)
	require.NoError(t, err)
	id, err := repo.InsertTx(ctx, tx, model.ProductSnapshot{Name: "Widget", Price: decimal.RequireFromString("19.99")})
	require.NoError(t, err)
	require.NoError(t, repo.InsertReplacementTx(ctx, tx, 42, id))

	got, err := repo.GetReplacementTx(ctx, tx, 42)
	require.NoError(t, err)
	assert.Equal(t, id, got)
	require.NoError(t, tx.Commit())

	deleted, err := repo.Delete(ctx, id)
	require.NoError(t, err)
	require.True(t, deleted)

	tx, err = conn.BeginTxx(ctx, nil)
	require.NoError(t, err)
	defer tx.Rollback()
	got, err = repo.GetReplacementTx(ctx, tx, 42)
	require.NoError(t, err)
	assert.Zero(t, got)
}
