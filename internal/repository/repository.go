package repository

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound запись не найдена или принадлежит другому пользователю
var ErrNotFound = errors.New("record not found")

type Repositories struct {
	TxManager    TxManager
	User         UserRepository
	RefreshToken RefreshTokenRepository
	Category     CategoryRepository
	Transaction  TransactionRepository
}

func NewRepositories(pool *pgxpool.Pool) *Repositories {
	return &Repositories{
		TxManager:    NewTxManager(pool),
		User:         NewUserRepository(pool),
		RefreshToken: NewRefreshTokenRepository(pool),
		Category:     NewCategoryRepository(pool),
		Transaction:  NewTransactionRepository(pool),
	}
}

// notFound переводит pgx.ErrNoRows в ErrNotFound
func notFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
