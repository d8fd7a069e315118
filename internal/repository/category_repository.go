package repository

import (
	"context"
	"time"

	"github.com/alligatorO15/fin-dashboard/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

//go:generate mockgen -source=category_repository.go -destination=category_repository_mock.go -package=repository

type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Category, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]models.Category, error)
	Update(ctx context.Context, category *models.Category) error
	// Reparent переносит детей категории from под to (nil = в корень)
	Reparent(ctx context.Context, userID, from uuid.UUID, to *uuid.UUID) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type categoryRepository struct {
	pool *pgxpool.Pool
}

func NewCategoryRepository(pool *pgxpool.Pool) CategoryRepository {
	return &categoryRepository{pool: pool}
}

func (r *categoryRepository) db(ctx context.Context) DBTX {
	return GetTxOrPool(ctx, r.pool)
}

func (r *categoryRepository) Create(ctx context.Context, category *models.Category) error {
	query := `
		INSERT INTO categories (id, user_id, name, parent_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	now := time.Now()
	category.CreatedAt = now
	category.UpdatedAt = now

	_, err := r.db(ctx).Exec(ctx, query,
		category.ID, category.UserID, category.Name, category.ParentID,
		category.CreatedAt, category.UpdatedAt,
	)
	return err
}

func (r *categoryRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Category, error) {
	query := `
		SELECT id, user_id, name, parent_id, created_at, updated_at
		FROM categories
		WHERE id = $1 AND user_id = $2
	`

	var category models.Category
	err := r.db(ctx).QueryRow(ctx, query, id, userID).Scan(
		&category.ID, &category.UserID, &category.Name, &category.ParentID,
		&category.CreatedAt, &category.UpdatedAt,
	)
	if err != nil {
		return nil, notFound(err)
	}
	return &category, nil
}

func (r *categoryRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]models.Category, error) {
	query := `
		SELECT id, user_id, name, parent_id, created_at, updated_at
		FROM categories
		WHERE user_id = $1
		ORDER BY name, created_at
	`

	rows, err := r.db(ctx).Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var category models.Category
		if err := rows.Scan(
			&category.ID, &category.UserID, &category.Name, &category.ParentID,
			&category.CreatedAt, &category.UpdatedAt,
		); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

func (r *categoryRepository) Update(ctx context.Context, category *models.Category) error {
	query := `
		UPDATE categories SET name = $3, parent_id = $4, updated_at = $5
		WHERE id = $1 AND user_id = $2
	`

	category.UpdatedAt = time.Now()
	tag, err := r.db(ctx).Exec(ctx, query,
		category.ID, category.UserID, category.Name, category.ParentID, category.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *categoryRepository) Reparent(ctx context.Context, userID, from uuid.UUID, to *uuid.UUID) error {
	query := `UPDATE categories SET parent_id = $3, updated_at = NOW() WHERE user_id = $1 AND parent_id = $2`
	_, err := r.db(ctx).Exec(ctx, query, userID, from, to)
	return err
}

func (r *categoryRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	tag, err := r.db(ctx).Exec(ctx, `DELETE FROM categories WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
