package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alligatorO15/fin-dashboard/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:generate mockgen -source=transaction_repository.go -destination=transaction_repository_mock.go -package=repository

type TransactionRepository interface {
	Create(ctx context.Context, tx *models.Transaction) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Transaction, error)
	GetByFilter(ctx context.Context, userID uuid.UUID, filter *models.TransactionFilter) (*models.TransactionList, error)
	// GetAllByUserID полная история пользователя, вход для аналитики
	GetAllByUserID(ctx context.Context, userID uuid.UUID) ([]models.Transaction, error)
	Update(ctx context.Context, tx *models.Transaction) error
	SetReported(ctx context.Context, userID, id uuid.UUID, reported bool) error
	// ClearCategory снимает категорию со всех транзакций пользователя
	ClearCategory(ctx context.Context, userID, categoryID uuid.UUID) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type transactionRepository struct {
	pool *pgxpool.Pool
}

func NewTransactionRepository(pool *pgxpool.Pool) TransactionRepository {
	return &transactionRepository{pool: pool}
}

func (r *transactionRepository) db(ctx context.Context) DBTX {
	return GetTxOrPool(ctx, r.pool)
}

const transactionColumns = `t.id, t.user_id, t.amount, t.description, t.transaction_date, t.kind, t.payment_method, t.category_id, t.reported, t.bank, t.comment, t.created_at, t.updated_at`

// колонки, по которым разрешена сортировка (?sort_by=)
var transactionSortColumns = map[string]string{
	"date":        "t.transaction_date",
	"amount":      "t.amount",
	"description": "t.description",
	"created_at":  "t.created_at",
}

func scanTransaction(row pgx.Row, tx *models.Transaction) error {
	return row.Scan(
		&tx.ID, &tx.UserID, &tx.Amount, &tx.Description, &tx.Date,
		&tx.Type, &tx.PaymentMethod, &tx.CategoryID, &tx.Reported,
		&tx.Bank, &tx.Comment, &tx.CreatedAt, &tx.UpdatedAt,
	)
}

func (r *transactionRepository) Create(ctx context.Context, tx *models.Transaction) error {
	query := `
		INSERT INTO transactions (id, user_id, amount, description, transaction_date, kind, payment_method, category_id, reported, bank, comment, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	if tx.ID == uuid.Nil {
		tx.ID = uuid.New()
	}
	now := time.Now()
	tx.CreatedAt = now
	tx.UpdatedAt = now

	_, err := r.db(ctx).Exec(ctx, query,
		tx.ID, tx.UserID, tx.Amount, tx.Description, tx.Date,
		tx.Type, tx.PaymentMethod, tx.CategoryID, tx.Reported,
		tx.Bank, tx.Comment, tx.CreatedAt, tx.UpdatedAt,
	)
	return err
}

func (r *transactionRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions t WHERE t.id = $1 AND t.user_id = $2`

	var tx models.Transaction
	if err := scanTransaction(r.db(ctx).QueryRow(ctx, query, id, userID), &tx); err != nil {
		return nil, notFound(err)
	}
	return &tx, nil
}

func (r *transactionRepository) GetAllByUserID(ctx context.Context, userID uuid.UUID) ([]models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions t WHERE t.user_id = $1 ORDER BY t.transaction_date, t.created_at`
	return r.queryTransactions(ctx, query, userID)
}

func (r *transactionRepository) GetByFilter(ctx context.Context, userID uuid.UUID, filter *models.TransactionFilter) (*models.TransactionList, error) {
	var conditions []string
	args := []interface{}{userID}
	argIndex := 2

	addCondition := func(format string, value interface{}) {
		conditions = append(conditions, fmt.Sprintf(format, argIndex))
		args = append(args, value)
		argIndex++
	}

	if filter.CategoryID != nil {
		addCondition("t.category_id = $%d", *filter.CategoryID)
	}
	if filter.Type != nil {
		addCondition("t.kind = $%d", *filter.Type)
	}
	if filter.PaymentMethod != nil {
		addCondition("t.payment_method = $%d", *filter.PaymentMethod)
	}
	if filter.Bank != "" {
		addCondition("LOWER(t.bank) = LOWER($%d)", filter.Bank)
	}
	if filter.Reported != nil {
		addCondition("t.reported = $%d", *filter.Reported)
	}
	if filter.DateFrom != nil {
		addCondition("t.transaction_date >= $%d", *filter.DateFrom)
	}
	if filter.DateTo != nil {
		// date_to включительно до конца дня
		addCondition("t.transaction_date < $%d", filter.DateTo.AddDate(0, 0, 1))
	}
	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(t.description ILIKE $%d OR t.comment ILIKE $%d)", argIndex, argIndex))
		args = append(args, "%"+filter.Search+"%")
		argIndex++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " AND " + strings.Join(conditions, " AND ")
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM transactions t WHERE t.user_id = $1` + whereClause
	if err := r.db(ctx).QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, err
	}

	if filter.Limit <= 0 || filter.Limit > 500 {
		filter.Limit = 50
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	offset := (filter.Page - 1) * filter.Limit

	sortBy, ok := transactionSortColumns[filter.SortBy]
	if !ok {
		sortBy = transactionSortColumns["date"]
	}
	sortOrder := "DESC"
	if filter.SortOrder == "asc" {
		sortOrder = "ASC"
	}

	query := `SELECT ` + transactionColumns + ` FROM transactions t WHERE t.user_id = $1` + whereClause +
		fmt.Sprintf(" ORDER BY %s %s, t.id LIMIT $%d OFFSET $%d", sortBy, sortOrder, argIndex, argIndex+1)
	args = append(args, filter.Limit, offset)

	transactions, err := r.queryTransactions(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	totalPages := int(total) / filter.Limit
	if int(total)%filter.Limit > 0 {
		totalPages++
	}

	return &models.TransactionList{
		Transactions: transactions,
		Total:        total,
		Page:         filter.Page,
		Limit:        filter.Limit,
		TotalPages:   totalPages,
	}, nil
}

func (r *transactionRepository) queryTransactions(ctx context.Context, query string, args ...interface{}) ([]models.Transaction, error) {
	rows, err := r.db(ctx).Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	transactions := make([]models.Transaction, 0)
	for rows.Next() {
		var tx models.Transaction
		if err := scanTransaction(rows, &tx); err != nil {
			return nil, err
		}
		transactions = append(transactions, tx)
	}
	return transactions, rows.Err()
}

func (r *transactionRepository) Update(ctx context.Context, tx *models.Transaction) error {
	query := `
		UPDATE transactions SET
			amount = $3,
			description = $4,
			transaction_date = $5,
			kind = $6,
			payment_method = $7,
			category_id = $8,
			bank = $9,
			comment = $10,
			updated_at = $11
		WHERE id = $1 AND user_id = $2
	`

	tx.UpdatedAt = time.Now()
	tag, err := r.db(ctx).Exec(ctx, query,
		tx.ID, tx.UserID, tx.Amount, tx.Description, tx.Date,
		tx.Type, tx.PaymentMethod, tx.CategoryID, tx.Bank, tx.Comment, tx.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *transactionRepository) SetReported(ctx context.Context, userID, id uuid.UUID, reported bool) error {
	query := `UPDATE transactions SET reported = $3, updated_at = NOW() WHERE id = $1 AND user_id = $2`
	tag, err := r.db(ctx).Exec(ctx, query, id, userID, reported)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *transactionRepository) ClearCategory(ctx context.Context, userID, categoryID uuid.UUID) error {
	query := `UPDATE transactions SET category_id = NULL, updated_at = NOW() WHERE user_id = $1 AND category_id = $2`
	_, err := r.db(ctx).Exec(ctx, query, userID, categoryID)
	return err
}

func (r *transactionRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	tag, err := r.db(ctx).Exec(ctx, `DELETE FROM transactions WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
