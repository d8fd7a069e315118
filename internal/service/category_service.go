package service

import (
	"context"
	"errors"
	"strings"

	"github.com/alligatorO15/fin-dashboard/internal/analytics"
	"github.com/alligatorO15/fin-dashboard/internal/cache"
	"github.com/alligatorO15/fin-dashboard/internal/models"
	"github.com/alligatorO15/fin-dashboard/internal/repository"
	"github.com/google/uuid"
)

//go:generate mockgen -source=category_service.go -destination=category_service_mock.go -package=service

type CategoryService interface {
	Create(ctx context.Context, userID uuid.UUID, input *models.CategoryCreate) (*models.Category, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Category, error)
	// List плоский список с FullPath
	List(ctx context.Context, userID uuid.UUID) ([]models.Category, error)
	// Tree лес категорий с заполненными Children
	Tree(ctx context.Context, userID uuid.UUID) ([]models.Category, error)
	Update(ctx context.Context, userID, id uuid.UUID, update *models.CategoryUpdate) (*models.Category, error)
	// Delete дети переезжают к родителю удаленной категории, транзакции становятся без категории
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type categoryService struct {
	txManager       repository.TxManager
	categoryRepo    repository.CategoryRepository
	transactionRepo repository.TransactionRepository
	snapshots       cache.SnapshotCache
}

func NewCategoryService(txManager repository.TxManager, categoryRepo repository.CategoryRepository, transactionRepo repository.TransactionRepository, snapshots cache.SnapshotCache) CategoryService {
	return &categoryService{
		txManager:       txManager,
		categoryRepo:    categoryRepo,
		transactionRepo: transactionRepo,
		snapshots:       snapshots,
	}
}

func (s *categoryService) Create(ctx context.Context, userID uuid.UUID, input *models.CategoryCreate) (*models.Category, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrInvalidCategoryName
	}

	existing, err := s.categoryRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	tree := analytics.NewCategoryTree(existing)

	// родитель должен принадлежать этому же пользователю
	if input.ParentID != nil && !tree.Contains(*input.ParentID) {
		return nil, ErrCategoryNotFound
	}

	category := &models.Category{
		ID:       uuid.New(),
		UserID:   userID,
		Name:     name,
		ParentID: input.ParentID,
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	invalidate(ctx, s.snapshots, userID)

	category.FullPath = analytics.NewCategoryTree(append(existing, *category)).Path(&category.ID)
	return category, nil
}

func (s *categoryService) GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Category, error) {
	categories, err := s.categoryRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	for _, category := range analytics.NewCategoryTree(categories).Flat() {
		if category.ID == id {
			return &category, nil
		}
	}
	return nil, ErrCategoryNotFound
}

func (s *categoryService) List(ctx context.Context, userID uuid.UUID) ([]models.Category, error) {
	categories, err := s.categoryRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return analytics.NewCategoryTree(categories).Flat(), nil
}

func (s *categoryService) Tree(ctx context.Context, userID uuid.UUID) ([]models.Category, error) {
	categories, err := s.categoryRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return analytics.NewCategoryTree(categories).Forest(), nil
}

func (s *categoryService) Update(ctx context.Context, userID, id uuid.UUID, update *models.CategoryUpdate) (*models.Category, error) {
	categories, err := s.categoryRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	var category *models.Category
	for i := range categories {
		if categories[i].ID == id {
			category = &categories[i]
			break
		}
	}
	if category == nil {
		return nil, ErrCategoryNotFound
	}

	if update.Name != nil {
		name := strings.TrimSpace(*update.Name)
		if name == "" {
			return nil, ErrInvalidCategoryName
		}
		category.Name = name
	}

	switch {
	case update.ClearParent:
		category.ParentID = nil
	case update.ParentID != nil:
		tree := analytics.NewCategoryTree(categories)
		if !tree.Contains(*update.ParentID) {
			return nil, ErrCategoryNotFound
		}
		if tree.WouldCycle(id, *update.ParentID) {
			return nil, ErrCategoryCycle
		}
		parentID := *update.ParentID
		category.ParentID = &parentID
	}

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	invalidate(ctx, s.snapshots, userID)

	updated := *category
	updated.FullPath = analytics.NewCategoryTree(categories).Path(&updated.ID)
	return &updated, nil
}

func (s *categoryService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	category, err := s.categoryRepo.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrCategoryNotFound
		}
		return err
	}

	err = s.txManager.WithTx(ctx, func(ctx context.Context) error {
		if err := s.categoryRepo.Reparent(ctx, userID, id, category.ParentID); err != nil {
			return err
		}
		if err := s.transactionRepo.ClearCategory(ctx, userID, id); err != nil {
			return err
		}
		return s.categoryRepo.Delete(ctx, userID, id)
	})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrCategoryNotFound
		}
		return err
	}

	invalidate(ctx, s.snapshots, userID)
	return nil
}
