package repository

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/tair/storefront/internal/catalog/domain"
	"github.com/tair/storefront/pkg/apperror"
	"github.com/tair/storefront/pkg/database/dbtest"
)

func intPtr(i int) *int { return &i }

func newRepo(t *testing.T) *GormProductRepository {
	t.Helper()
	return NewGormProductRepository(dbtest.NewSQLite(t, &domain.Product{}))
}

func seed(t *testing.T, repo *GormProductRepository, name, description string, stock *int) *domain.Product {
	t.Helper()
	p := &domain.Product{
		Name:        name,
		Description: description,
		Price:       decimal.RequireFromString("10.00"),
		Stock:       stock,
	}
	require.NoError(t, repo.Create(context.Background(), p))
	return p
}

func TestFindByID(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	p := seed(t, repo, "Mug", "Ceramic mug", intPtr(3))

	got, err := repo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mug", got.Name)
	assert.Equal(t, 3, got.AvailableStock())
	assert.Equal(t, uint(1), got.Version)

	_, err = repo.FindByID(ctx, 999)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	assert.Equal(t, domain.MsgInvalidProductID, apperror.MessageOf(err))
}

func TestReduceStockGuard(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	p := seed(t, repo, "Mug", "Ceramic mug", intPtr(5))
	unset := seed(t, repo, "Bowl", "Soup bowl", nil)

	ok, err := repo.ReduceStock(ctx, p.ID, 5)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.ReduceStock(ctx, p.ID, 1)
	require.NoError(t, err)
	assert.False(t, ok, "stock must not go below zero")

	ok, err = repo.ReduceStock(ctx, unset.ID, 1)
	require.NoError(t, err)
	assert.False(t, ok, "unset stock has nothing to give")

	got, err := repo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.AvailableStock())
	assert.Equal(t, uint(2), got.Version)
}

func TestUpdateLocked(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	p := seed(t, repo, "Mug", "Ceramic mug", intPtr(5))

	updated, err := repo.UpdateLocked(ctx, p.ID, func(p *domain.Product) error {
		p.Name = "Big mug"
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "Big mug", updated.Name)
	assert.Equal(t, uint(2), updated.Version)

	_, err = repo.UpdateLocked(ctx, p.ID, func(p *domain.Product) error {
		p.Name = "discarded"
		return apperror.InvalidValue("nope")
	})
	assert.ErrorIs(t, err, apperror.ErrInvalidValue)

	got, err := repo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Big mug", got.Name)

	_, err = repo.UpdateLocked(ctx, 999, func(*domain.Product) error { return nil })
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestSearch(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	seed(t, repo, "Zebra plush", "Soft toy", nil)
	seed(t, repo, "Apple", "Fresh RED fruit", nil)
	seed(t, repo, "Red scarf", "Wool", nil)
	seed(t, repo, "100% cotton tee", "Shirt", nil)

	products, total, err := repo.Search(ctx, "red", 20, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, products, 2)
	assert.Equal(t, "Apple", products[0].Name)
	assert.Equal(t, "Red scarf", products[1].Name)

	products, _, err = repo.Search(ctx, "%", 20, 0)
	require.NoError(t, err)
	require.Len(t, products, 1, "wildcards are matched literally")
	assert.Equal(t, "100% cotton tee", products[0].Name)

	products, total, err = repo.Search(ctx, "", 2, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
	require.Len(t, products, 2)
	assert.Equal(t, "Red scarf", products[0].Name)
}

func TestSearchPaging(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()
	for i := 0; i < 25; i++ {
		seed(t, repo, fmt.Sprintf("Item %02d", i), "thing", nil)
	}

	first, total, err := repo.Search(ctx, "item", domain.PageSize, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(25), total)
	assert.Len(t, first, 20)

	second, _, err := repo.Search(ctx, "item", domain.PageSize, domain.PageSize)
	require.NoError(t, err)
	assert.Len(t, second, 5)
	assert.Equal(t, "Item 20", second[0].Name)
}

func newMockRepo(t *testing.T) (*GormProductRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	}), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	return NewGormProductRepository(gormDB), mock, mockDB
}

func TestReduceStockIssuesConditionalUpdate(t *testing.T) {
	t.Run("guarded update succeeds", func(t *testing.T) {
		repo, mock, mockDB := newMockRepo(t)
		defer mockDB.Close()

		mock.ExpectExec(`UPDATE "products" SET .*stock - \$\d.* WHERE id = \$\d+ AND stock >= \$\d+`).
			WillReturnResult(sqlmock.NewResult(0, 1))

		ok, err := repo.ReduceStock(context.Background(), 7, 2)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("guard rejects", func(t *testing.T) {
		repo, mock, mockDB := newMockRepo(t)
		defer mockDB.Close()

		mock.ExpectExec(`UPDATE "products" SET`).
			WillReturnResult(sqlmock.NewResult(0, 0))

		ok, err := repo.ReduceStock(context.Background(), 7, 2)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("driver error", func(t *testing.T) {
		repo, mock, mockDB := newMockRepo(t)
		defer mockDB.Close()

		mock.ExpectExec(`UPDATE "products" SET`).
			WillReturnError(assert.AnError)

		_, err := repo.ReduceStock(context.Background(), 7, 2)
		assert.ErrorIs(t, err, assert.AnError)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
