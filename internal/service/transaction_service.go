package service

import (
	"context"
	"errors"
	"strings"

	"github.com/alligatorO15/fin-dashboard/internal/cache"
	"github.com/alligatorO15/fin-dashboard/internal/models"
	"github.com/alligatorO15/fin-dashboard/internal/repository"
	"github.com/google/uuid"
)

//go:generate mockgen -source=transaction_service.go -destination=transaction_service_mock.go -package=service

type TransactionService interface {
	Create(ctx context.Context, userID uuid.UUID, input *models.TransactionCreate) (*models.Transaction, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Transaction, error)
	GetByFilter(ctx context.Context, userID uuid.UUID, filter *models.TransactionFilter) (*models.TransactionList, error)
	Update(ctx context.Context, userID, id uuid.UUID, update *models.TransactionUpdate) (*models.Transaction, error)
	SetReported(ctx context.Context, userID, id uuid.UUID, reported bool) (*models.Transaction, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type transactionService struct {
	transactionRepo repository.TransactionRepository
	categoryRepo    repository.CategoryRepository
	snapshots       cache.SnapshotCache
}

func NewTransactionService(transactionRepo repository.TransactionRepository, categoryRepo repository.CategoryRepository, snapshots cache.SnapshotCache) TransactionService {
	return &transactionService{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
		snapshots:       snapshots,
	}
}

func (s *transactionService) Create(ctx context.Context, userID uuid.UUID, input *models.TransactionCreate) (*models.Transaction, error) {
	tx := &models.Transaction{
		ID:            uuid.New(),
		UserID:        userID,
		Amount:        input.Amount,
		Description:   strings.TrimSpace(input.Description),
		Date:          input.Date,
		Type:          input.Type,
		PaymentMethod: input.PaymentMethod,
		CategoryID:    input.CategoryID,
		Reported:      input.Reported,
		Bank:          normalizeBank(input.Bank),
		Comment:       input.Comment,
	}
	if tx.PaymentMethod == "" {
		tx.PaymentMethod = models.PaymentMethodManual
	}

	if err := s.validate(ctx, tx); err != nil {
		return nil, err
	}

	if err := s.transactionRepo.Create(ctx, tx); err != nil {
		return nil, err
	}
	invalidate(ctx, s.snapshots, userID)

	return tx, nil
}

func (s *transactionService) GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Transaction, error) {
	tx, err := s.transactionRepo.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}
	return tx, nil
}

func (s *transactionService) GetByFilter(ctx context.Context, userID uuid.UUID, filter *models.TransactionFilter) (*models.TransactionList, error) {
	if filter.Type != nil && !filter.Type.Valid() {
		return nil, ErrInvalidTransactionType
	}
	if filter.PaymentMethod != nil && !filter.PaymentMethod.Valid() {
		return nil, ErrInvalidPaymentMethod
	}
	return s.transactionRepo.GetByFilter(ctx, userID, filter)
}

func (s *transactionService) Update(ctx context.Context, userID, id uuid.UUID, update *models.TransactionUpdate) (*models.Transaction, error) {
	tx, err := s.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	// применяем только переданные поля
	if update.Amount != nil {
		tx.Amount = *update.Amount
	}
	if update.Description != nil {
		tx.Description = strings.TrimSpace(*update.Description)
	}
	if update.Date != nil {
		tx.Date = *update.Date
	}
	if update.Type != nil {
		tx.Type = *update.Type
	}
	if update.PaymentMethod != nil {
		tx.PaymentMethod = *update.PaymentMethod
	}
	if update.ClearCategory {
		tx.CategoryID = nil
	} else if update.CategoryID != nil {
		categoryID := *update.CategoryID
		tx.CategoryID = &categoryID
	}
	if update.Bank != nil {
		tx.Bank = normalizeBank(update.Bank)
	}
	if update.Comment != nil {
		tx.Comment = *update.Comment
	}

	if err := s.validate(ctx, tx); err != nil {
		return nil, err
	}

	if err := s.transactionRepo.Update(ctx, tx); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}
	invalidate(ctx, s.snapshots, userID)

	return tx, nil
}

func (s *transactionService) SetReported(ctx context.Context, userID, id uuid.UUID, reported bool) (*models.Transaction, error) {
	if err := s.transactionRepo.SetReported(ctx, userID, id, reported); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}
	invalidate(ctx, s.snapshots, userID)

	return s.GetByID(ctx, userID, id)
}

func (s *transactionService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	if err := s.transactionRepo.Delete(ctx, userID, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrTransactionNotFound
		}
		return err
	}
	invalidate(ctx, s.snapshots, userID)
	return nil
}

func (s *transactionService) validate(ctx context.Context, tx *models.Transaction) error {
	if tx.Amount.IsNegative() {
		return ErrInvalidAmount
	}
	if tx.Description == "" {
		return ErrInvalidDescription
	}
	if tx.Date.IsZero() {
		return ErrInvalidDate
	}
	if !tx.Type.Valid() {
		return ErrInvalidTransactionType
	}
	if !tx.PaymentMethod.Valid() {
		return ErrInvalidPaymentMethod
	}

	if tx.CategoryID != nil {
		if _, err := s.categoryRepo.GetByID(ctx, tx.UserID, *tx.CategoryID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return ErrCategoryNotFound
			}
			return err
		}
	}
	return nil
}

// пустой банк храним как NULL, аналитика покажет его как Unknown
func normalizeBank(bank *string) *string {
	if bank == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*bank)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
