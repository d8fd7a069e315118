package models

import (
	"time"

	"github.com/google/uuid"
)

// UncategorizedLabel подставляется, когда у транзакции нет категории
// или ссылка на категорию не резолвится
const UncategorizedLabel = "Uncategorized"

// UnknownBankLabel подставляется, когда банк не указан
const UnknownBankLabel = "Unknown"

// CategoryPathSeparator разделитель в полном пути категории: "Hogar > Servicios > Internet"
const CategoryPathSeparator = " > "

type Category struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	UserID    uuid.UUID  `json:"user_id" db:"user_id"`
	Name      string     `json:"name" db:"name"`
	ParentID  *uuid.UUID `json:"parent_id" db:"parent_id"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" db:"updated_at"`

	FullPath string     `json:"full_path,omitempty"`
	Children []Category `json:"children,omitempty"`
}

type CategoryCreate struct {
	Name     string     `json:"name" binding:"required"`
	ParentID *uuid.UUID `json:"parent_id"`
}

type CategoryUpdate struct {
	Name        *string    `json:"name"`
	ParentID    *uuid.UUID `json:"parent_id"`
	ClearParent bool       `json:"clear_parent"` // сделать категорию корневой
}
