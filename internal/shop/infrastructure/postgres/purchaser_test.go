package postgres

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mocks "github.com/youngwishes/shop-service/gen/mocks/logging"
	"github.com/youngwishes/shop-service/internal/shop/domain"
)

func expectProductLock(mock pgxmock.PgxConnIface, productId int, price, count uint32, status domain.ProductStatus) {
	rows := pgxmock.NewRows([]string{"id", "title", "price", "count", "status"}).
		AddRow(productId, "cup", price, count, status)
	mock.ExpectQuery("SELECT id, title, price, count, status FROM products").
		WithArgs(productId).
		WillReturnRows(rows)
}

func expectCustomerLock(mock pgxmock.PgxConnIface, customerId int, balance uint32) {
	rows := pgxmock.NewRows([]string{"id", "balance"}).
		AddRow(customerId, balance)
	mock.ExpectQuery("SELECT id, balance FROM customers").
		WithArgs(customerId).
		WillReturnRows(rows)
}

func TestPurchaseHandler_HandlePurchase(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name       string
		customerId int
		productId  int
		quantity   uint32

		expectedBoughtId int
		expectedErr      error

		prepareFn func(t *testing.T, mock pgxmock.PgxConnIface)
	}

	tests := []testCase{
		{
			name:       "successful purchase",
			customerId: 1,
			productId:  10,
			quantity:   2,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
				expectProductLock(mock, 10, 100, 5, domain.StatusAvailable)
				expectCustomerLock(mock, 1, 250)
				mock.ExpectExec("UPDATE products").
					WithArgs(uint32(2), 10).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectExec("UPDATE customers").
					WithArgs(uint32(200), 1).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectCommit()
				mock.ExpectRollback().WillReturnError(pgx.ErrTxClosed)
			},
			expectedBoughtId: 10,
			expectedErr:      nil,
		},
		{
			name:       "quantity equal to max affordable is permitted",
			customerId: 1,
			productId:  10,
			quantity:   2,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
				expectProductLock(mock, 10, 100, 5, domain.StatusAvailable)
				expectCustomerLock(mock, 1, 200)
				mock.ExpectExec("UPDATE products").
					WithArgs(uint32(2), 10).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectExec("UPDATE customers").
					WithArgs(uint32(200), 1).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectCommit()
				mock.ExpectRollback().WillReturnError(pgx.ErrTxClosed)
			},
			expectedBoughtId: 10,
			expectedErr:      nil,
		},
		{
			name:       "quantity equal to remaining stock is permitted",
			customerId: 1,
			productId:  10,
			quantity:   5,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
				expectProductLock(mock, 10, 10, 5, domain.StatusAvailable)
				expectCustomerLock(mock, 1, 1000)
				mock.ExpectExec("UPDATE products").
					WithArgs(uint32(5), 10).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectExec("UPDATE customers").
					WithArgs(uint32(50), 1).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectCommit()
				mock.ExpectRollback().WillReturnError(pgx.ErrTxClosed)
			},
			expectedBoughtId: 10,
			expectedErr:      nil,
		},
		{
			name:       "product not found",
			customerId: 1,
			productId:  999,
			quantity:   1,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
				mock.ExpectQuery("SELECT id, title, price, count, status FROM products").
					WithArgs(999).
					WillReturnError(pgx.ErrNoRows)
				mock.ExpectRollback()
			},
			expectedErr: &domain.ProductNotFoundError{},
		},
		{
			name:       "customer not found",
			customerId: 999,
			productId:  10,
			quantity:   1,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
				expectProductLock(mock, 10, 100, 5, domain.StatusAvailable)
				mock.ExpectQuery("SELECT id, balance FROM customers").
					WithArgs(999).
					WillReturnError(pgx.ErrNoRows)
				mock.ExpectRollback()
			},
			expectedErr: &domain.CustomerNotFoundError{},
		},
		{
			name:       "not enough balance",
			customerId: 1,
			productId:  10,
			quantity:   1,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
				expectProductLock(mock, 10, 100, 5, domain.StatusAvailable)
				expectCustomerLock(mock, 1, 50)
				mock.ExpectRollback()
			},
			expectedErr: &domain.NotEnoughBalanceError{},
		},
		{
			name:       "zero price product is never affordable",
			customerId: 1,
			productId:  10,
			quantity:   1,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
				expectProductLock(mock, 10, 0, 5, domain.StatusAvailable)
				expectCustomerLock(mock, 1, 1000)
				mock.ExpectRollback()
			},
			expectedErr: &domain.NotEnoughBalanceError{},
		},
		{
			name:       "archived product is not available",
			customerId: 1,
			productId:  10,
			quantity:   1,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
				expectProductLock(mock, 10, 100, 10, domain.StatusArchived)
				expectCustomerLock(mock, 1, 1000)
				mock.ExpectRollback()
			},
			expectedErr: &domain.ProductNotAvailableError{},
		},
		{
			name:       "out of stock",
			customerId: 1,
			productId:  10,
			quantity:   5,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
				expectProductLock(mock, 10, 10, 1, domain.StatusAvailable)
				expectCustomerLock(mock, 1, 1000)
				mock.ExpectRollback()
			},
			expectedErr: &domain.OutOfStockError{},
		},
		{
			name:       "begin transaction error",
			customerId: 1,
			productId:  10,
			quantity:   1,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted}).WillReturnError(assert.AnError)
			},
			expectedErr: assert.AnError,
		},
		{
			name:       "commit error",
			customerId: 1,
			productId:  10,
			quantity:   1,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
				expectProductLock(mock, 10, 100, 5, domain.StatusAvailable)
				expectCustomerLock(mock, 1, 250)
				mock.ExpectExec("UPDATE products").
					WithArgs(uint32(1), 10).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectExec("UPDATE customers").
					WithArgs(uint32(100), 1).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectCommit().WillReturnError(assert.AnError)
				mock.ExpectRollback()
			},
			expectedErr: assert.AnError,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mock, err := pgxmock.NewConn()
			require.NoError(t, err)
			defer mock.Close(t.Context())

			tt.prepareFn(t, mock)

			logger := mocks.NewMockLogger(ctrl)
			purchaseHandler := NewPurchaseHandler(mock, logger)
			boughtId, err := purchaseHandler.HandlePurchase(t.Context(), tt.customerId, tt.productId, tt.quantity)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedBoughtId, boughtId)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestApplyPurchase(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name       string
		customerId int
		product    domain.Product
		quantity   uint32

		expectedErr error

		prepareFn func(t *testing.T, mock pgxmock.PgxConnIface)
	}

	tests := []testCase{
		{
			name:       "both rows updated",
			customerId: 1,
			product:    domain.Product{ID: 10, Title: "cup", Price: 20, Count: 5, Status: domain.StatusAvailable},
			quantity:   2,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectExec("UPDATE products").
					WithArgs(uint32(2), 10).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectExec("UPDATE customers").
					WithArgs(uint32(40), 1).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			expectedErr: nil,
		},
		{
			name:       "failed to update product count",
			customerId: 1,
			product:    domain.Product{ID: 10, Title: "cup", Price: 20, Count: 5, Status: domain.StatusAvailable},
			quantity:   2,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectExec("UPDATE products").
					WithArgs(uint32(2), 10).
					WillReturnError(assert.AnError)
			},
			expectedErr: assert.AnError,
		},
		{
			name:       "failed to update customer balance",
			customerId: 1,
			product:    domain.Product{ID: 10, Title: "cup", Price: 20, Count: 5, Status: domain.StatusAvailable},
			quantity:   2,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectExec("UPDATE products").
					WithArgs(uint32(2), 10).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
				mock.ExpectExec("UPDATE customers").
					WithArgs(uint32(40), 1).
					WillReturnError(assert.AnError)
			},
			expectedErr: assert.AnError,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock, err := pgxmock.NewConn()
			require.NoError(t, err)
			defer mock.Close(t.Context())

			tt.prepareFn(t, mock)

			err = ApplyPurchase(t.Context(), mock, tt.customerId, tt.product, tt.quantity)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGetAndLockProduct(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name      string
		productId int
		quantity  uint32

		expectedProduct domain.Product
		expectedErr     error

		prepareFn func(t *testing.T, mock pgxmock.PgxConnIface)
	}

	tests := []testCase{
		{
			name:      "successful lock",
			productId: 10,
			quantity:  2,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				expectProductLock(mock, 10, 100, 5, domain.StatusAvailable)
			},
			expectedProduct: domain.Product{ID: 10, Title: "cup", Price: 100, Count: 5, Status: domain.StatusAvailable},
			expectedErr:     nil,
		},
		{
			name:      "product missing carries purchase context",
			productId: 999,
			quantity:  3,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectQuery("SELECT id, title, price, count, status FROM products").
					WithArgs(999).
					WillReturnError(pgx.ErrNoRows)
			},
			expectedErr: &domain.ProductNotFoundError{},
		},
		{
			name:      "database error",
			productId: 10,
			quantity:  1,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectQuery("SELECT id, title, price, count, status FROM products").
					WithArgs(10).
					WillReturnError(assert.AnError)
			},
			expectedErr: assert.AnError,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock, err := pgxmock.NewConn()
			require.NoError(t, err)
			defer mock.Close(t.Context())

			tt.prepareFn(t, mock)

			product, err := GetAndLockProduct(t.Context(), mock, tt.productId, tt.quantity)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedProduct, product)
			}
		})
	}

	t.Run("missing product error context", func(t *testing.T) {
		t.Parallel()

		mock, err := pgxmock.NewConn()
		require.NoError(t, err)
		defer mock.Close(t.Context())

		mock.ExpectQuery("SELECT id, title, price, count, status FROM products").
			WithArgs(999).
			WillReturnError(pgx.ErrNoRows)

		_, err = GetAndLockProduct(t.Context(), mock, 999, 3)

		var notFound *domain.ProductNotFoundError
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, 999, notFound.ProductID)
		assert.Equal(t, uint32(3), notFound.Quantity)
	})
}

func TestGetAndLockCustomer(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name       string
		customerId int

		expectedCustomer domain.Customer
		expectedErr      error

		prepareFn func(t *testing.T, mock pgxmock.PgxConnIface)
	}

	tests := []testCase{
		{
			name:       "successful lock",
			customerId: 1,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				expectCustomerLock(mock, 1, 500)
			},
			expectedCustomer: domain.Customer{ID: 1, Balance: 500},
			expectedErr:      nil,
		},
		{
			name:       "customer not found",
			customerId: 999,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectQuery("SELECT id, balance FROM customers").
					WithArgs(999).
					WillReturnError(pgx.ErrNoRows)
			},
			expectedErr: &domain.CustomerNotFoundError{},
		},
		{
			name:       "database error",
			customerId: 1,
			prepareFn: func(t *testing.T, mock pgxmock.PgxConnIface) {
				t.Helper()
				mock.ExpectQuery("SELECT id, balance FROM customers").
					WithArgs(1).
					WillReturnError(assert.AnError)
			},
			expectedErr: assert.AnError,
		},
	}

	for _, tc := range tests {
		tt := tc
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mock, err := pgxmock.NewConn()
			require.NoError(t, err)
			defer mock.Close(t.Context())

			tt.prepareFn(t, mock)

			customer, err := GetAndLockCustomer(t.Context(), mock, tt.customerId)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedCustomer, customer)
			}
		})
	}
}
