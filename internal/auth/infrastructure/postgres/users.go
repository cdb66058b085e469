package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/youngwishes/shop-service/internal/auth/domain"
	"github.com/youngwishes/shop-service/internal/pkg/database"
)

type UsersRepository struct {
	querier   database.Querier
	txManager database.TxManager
}

func NewUsersRepository(querier database.Querier, txManager database.TxManager) *UsersRepository {
	return &UsersRepository{
		querier:   querier,
		txManager: txManager,
	}
}

// CreateUser provisions the user account and its customer profile as one
// unit, so a user can never exist without a profile to shop with.
func (r *UsersRepository) CreateUser(ctx context.Context, username, hashedPassword string, startBalance uint32) (domain.UserInfo, error) {
	var userInfo domain.UserInfo

	err := r.txManager.WithinTransaction(ctx, func(ctx context.Context, executor database.QueryExecuter) error {
		created, err := createNewUser(ctx, executor, username, hashedPassword)
		if err != nil {
			return err
		}

		err = createCustomerProfile(ctx, executor, created.ID, startBalance)
		if err != nil {
			return err
		}

		userInfo = created
		return nil
	})

	if err != nil {
		return domain.UserInfo{}, err
	}

	return userInfo, nil
}

func (r *UsersRepository) TryGetUserInfo(ctx context.Context, username string) (domain.UserInfo, bool, error) {
	var userInfo domain.UserInfo
	querySQL := `SELECT id, username, password_hash FROM users WHERE username = $1`

	row := r.querier.QueryRow(ctx, querySQL, username)
	err := row.Scan(&userInfo.ID, &userInfo.Username, &userInfo.PasswordHash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.UserInfo{}, false, nil
		}

		return domain.UserInfo{}, false, err
	}

	return userInfo, true, nil
}

func createNewUser(ctx context.Context, querier database.Querier, username, hashedPassword string) (domain.UserInfo, error) {
	creationSQL := `INSERT INTO users (username, password_hash) VALUES ($1, $2) RETURNING id, username, password_hash`

	var userInfo domain.UserInfo
	row := querier.QueryRow(ctx, creationSQL, username, hashedPassword)
	err := row.Scan(&userInfo.ID, &userInfo.Username, &userInfo.PasswordHash)
	if err != nil {
		return domain.UserInfo{}, err
	}

	return userInfo, nil
}

func createCustomerProfile(ctx context.Context, executor database.Executor, userID int, balance uint32) error {
	creationSQL := `INSERT INTO customers (user_id, balance) VALUES ($1, $2)`

	_, err := executor.Exec(ctx, creationSQL, userID, balance)
	return err
}
