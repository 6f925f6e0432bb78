package services

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"gorm.io/gorm"

	"github.com/present-lee/module-6/internal/authz"
	"github.com/present-lee/module-6/internal/cache"
	dto "github.com/present-lee/module-6/internal/data_models"
	apperrors "github.com/present-lee/module-6/internal/errors"
	model "github.com/present-lee/module-6/internal/models"
	repository "github.com/present-lee/module-6/internal/repositories"
)

type CategoryService struct {
	db         *gorm.DB
	categories *repository.CategoryRepository
	tasks      *repository.TaskRepository
	board      cache.BoardCache
}

func NewCategoryService(
	db *gorm.DB,
	categories *repository.CategoryRepository,
	tasks *repository.TaskRepository,
	board cache.BoardCache,
) *CategoryService {
	return &CategoryService{
		db:         db,
		categories: categories,
		tasks:      tasks,
		board:      board,
	}
}

// List returns all categories in board order, served from the board cache
// when possible. Cache failures fall through to the database.
func (s *CategoryService) List(ctx context.Context) ([]model.Category, error) {
	if payload, err := s.board.Get(ctx); err == nil {
		var categories []model.Category
		if err := json.Unmarshal(payload, &categories); err == nil {
			return categories, nil
		}
	}

	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(categories); err == nil {
		if err := s.board.Set(ctx, payload); err != nil {
			log.Printf("board cache set failed: %v", err)
		}
	}

	return categories, nil
}

func (s *CategoryService) Get(ctx context.Context, id string) (*model.Category, error) {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, err
	}
	return category, nil
}

// Create adds a board column. Names are unique (case-sensitive exact
// match).
func (s *CategoryService) Create(ctx context.Context, actor *model.User, req dto.CreateCategoryRequest) (*model.Category, error) {
	if err := authz.Decide(actor.Role, authz.CreateCategory, false); err != nil {
		return nil, err
	}

	order := 0
	if req.Order != nil {
		order = *req.Order
	}

	var category *model.Category
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		categories := s.categories.WithTx(tx)

		if err := s.checkNameFree(ctx, categories, req.Name, ""); err != nil {
			return err
		}

		var err error
		category, err = categories.Create(ctx, req.Name, order, req.Color)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.invalidateBoard(ctx)
	return category, nil
}

func (s *CategoryService) Update(ctx context.Context, actor *model.User, id string, patch dto.UpdateCategoryRequest) (*model.Category, error) {
	if err := authz.Decide(actor.Role, authz.UpdateCategory, false); err != nil {
		return nil, err
	}

	var updated *model.Category
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		categories := s.categories.WithTx(tx)

		category, err := categories.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrCategoryNotFound
			}
			return err
		}

		fields := map[string]interface{}{}
		if patch.Name.Present && patch.Name.Value != category.Name {
			if err := s.checkNameFree(ctx, categories, patch.Name.Value, category.ID); err != nil {
				return err
			}
			fields["name"] = patch.Name.Value
		}
		if patch.Order.Present {
			fields["order"] = patch.Order.Value
		}
		if patch.Color.Present {
			fields["color"] = patch.Color.Ptr()
		}

		if len(fields) > 0 {
			if err := categories.UpdateFields(ctx, category.ID, fields); err != nil {
				return err
			}
		}

		updated, err = categories.FindByID(ctx, category.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.invalidateBoard(ctx)
	return updated, nil
}

// Delete removes an empty category. A category still holding tasks is a
// conflict; the error message carries the task count.
func (s *CategoryService) Delete(ctx context.Context, actor *model.User, id string) error {
	if err := authz.Decide(actor.Role, authz.DeleteCategory, false); err != nil {
		return err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		categories := s.categories.WithTx(tx)
		tasks := s.tasks.WithTx(tx)

		category, err := categories.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrCategoryNotFound
			}
			return err
		}

		count, err := tasks.CountByCategory(ctx, category.ID)
		if err != nil {
			return err
		}
		if count > 0 {
			return apperrors.NewCategoryNotEmpty(count)
		}

		return categories.Delete(ctx, category.ID)
	})
	if err != nil {
		return err
	}

	s.invalidateBoard(ctx)
	return nil
}

// Reorder applies a batch of (id, order) assignments in one transaction:
// any missing id aborts the whole batch with no partial writes. Returns the
// full category list freshly sorted.
func (s *CategoryService) Reorder(ctx context.Context, actor *model.User, items []dto.ReorderItem) ([]model.Category, error) {
	if err := authz.Decide(actor.Role, authz.ReorderCategories, false); err != nil {
		return nil, err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		categories := s.categories.WithTx(tx)

		for _, item := range items {
			category, err := categories.FindByID(ctx, item.ID)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperrors.ErrCategoryNotFound
				}
				return err
			}

			err = categories.UpdateFields(ctx, category.ID, map[string]interface{}{
				"order": item.Order,
			})
			if err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidateBoard(ctx)
	return s.categories.List(ctx)
}

func (s *CategoryService) checkNameFree(ctx context.Context, categories *repository.CategoryRepository, name, selfID string) error {
	existing, err := categories.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if existing.ID == selfID {
		return nil
	}
	return apperrors.ErrCategoryNameTaken
}

func (s *CategoryService) invalidateBoard(ctx context.Context) {
	if err := s.board.Invalidate(ctx); err != nil {
		log.Printf("board cache invalidation failed: %v", err)
	}
}
