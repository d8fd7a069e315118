package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

func (t TransactionType) Valid() bool {
	return t == TransactionTypeExpense || t == TransactionTypeIncome
}

// способ оплаты, закрытый список
type PaymentMethod string

const (
	PaymentMethodManual    PaymentMethod = "manual"    // ручной ввод расхода
	PaymentMethodCard      PaymentMethod = "card"      // покупка картой
	PaymentMethodPSE       PaymentMethod = "pse"       // платеж через банковский протокол
	PaymentMethodTransfer  PaymentMethod = "transfer"  // перевод
	PaymentMethodScheduled PaymentMethod = "scheduled" // запланированный платеж
)

var PaymentMethods = []PaymentMethod{
	PaymentMethodManual,
	PaymentMethodCard,
	PaymentMethodPSE,
	PaymentMethodTransfer,
	PaymentMethodScheduled,
}

func (p PaymentMethod) Valid() bool {
	for _, m := range PaymentMethods {
		if p == m {
			return true
		}
	}
	return false
}

type Transaction struct {
	ID            uuid.UUID       `json:"id" db:"id"`
	UserID        uuid.UUID       `json:"user_id" db:"user_id"`
	Amount        decimal.Decimal `json:"amount" db:"amount"` // всегда неотрицательная, валюта не важна
	Description   string          `json:"description" db:"description"`
	Date          time.Time       `json:"transaction_date" db:"transaction_date"`
	Type          TransactionType `json:"type" db:"kind"`
	PaymentMethod PaymentMethod   `json:"payment_method" db:"payment_method"`
	CategoryID    *uuid.UUID      `json:"category_id" db:"category_id"` // nil = без категории
	Reported      bool            `json:"reported" db:"reported"`
	Bank          *string         `json:"bank" db:"bank"` // nil = банк неизвестен
	Comment       string          `json:"comment" db:"comment"`
	CreatedAt     time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at" db:"updated_at"`
}

func (t *Transaction) IsExpense() bool {
	return t.Type == TransactionTypeExpense
}

func (t *Transaction) IsIncome() bool {
	return t.Type == TransactionTypeIncome
}

type TransactionCreate struct {
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Description   string          `json:"description" binding:"required"`
	Date          time.Time       `json:"transaction_date" binding:"required"`
	Type          TransactionType `json:"type" binding:"required"`
	PaymentMethod PaymentMethod   `json:"payment_method"`
	CategoryID    *uuid.UUID      `json:"category_id"`
	Reported      bool            `json:"reported"`
	Bank          *string         `json:"bank"`
	Comment       string          `json:"comment"`
}

type TransactionUpdate struct {
	Amount        *decimal.Decimal `json:"amount"`
	Description   *string          `json:"description"`
	Date          *time.Time       `json:"transaction_date"`
	Type          *TransactionType `json:"type"`
	PaymentMethod *PaymentMethod   `json:"payment_method"`
	CategoryID    *uuid.UUID       `json:"category_id"`
	ClearCategory bool             `json:"clear_category"` // явно снять категорию
	Bank          *string          `json:"bank"`
	Comment       *string          `json:"comment"`
}

type TransactionFilter struct {
	CategoryID    *uuid.UUID       `form:"category_id"`
	Type          *TransactionType `form:"type"`
	PaymentMethod *PaymentMethod   `form:"payment_method"`
	Bank          string           `form:"bank"`
	Reported      *bool            `form:"reported"`
	DateFrom      *time.Time       `form:"date_from" time_format:"2006-01-02"`
	DateTo        *time.Time       `form:"date_to" time_format:"2006-01-02"`
	Search        string           `form:"search"` //по description или comment
	Page          int              `form:"page"`
	Limit         int              `form:"limit"`
	SortBy        string           `form:"sort_by"`    //?sort_by=amount
	SortOrder     string           `form:"sort_order"` //?sort_order=asc
}

// структура пагинированного ответа
type TransactionList struct {
	Transactions []Transaction `json:"transactions"`
	Total        int64         `json:"total"`
	Page         int           `json:"page"`
	Limit        int           `json:"limit"`
	TotalPages   int           `json:"total_pages"`
}
