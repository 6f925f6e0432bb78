package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/present-lee/module-6/internal/authz"
	"github.com/present-lee/module-6/internal/constants"
	dto "github.com/present-lee/module-6/internal/data_models"
	apperrors "github.com/present-lee/module-6/internal/errors"
	model "github.com/present-lee/module-6/internal/models"
	repository "github.com/present-lee/module-6/internal/repositories"
)

type TaskService struct {
	db         *gorm.DB
	tasks      *repository.TaskRepository
	categories *repository.CategoryRepository
	users      *repository.UserRepository
}

func NewTaskService(
	db *gorm.DB,
	tasks *repository.TaskRepository,
	categories *repository.CategoryRepository,
	users *repository.UserRepository,
) *TaskService {
	return &TaskService{
		db:         db,
		tasks:      tasks,
		categories: categories,
		users:      users,
	}
}

func (s *TaskService) List(ctx context.Context, filter repository.TaskFilter) ([]model.Task, error) {
	return s.tasks.List(ctx, filter)
}

func (s *TaskService) Get(ctx context.Context, id string) (*model.Task, error) {
	task, err := s.tasks.FindByIDWithRelations(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, err
	}
	return task, nil
}

// Create adds a task to a category. When no order is supplied the task is
// appended after the category's current maximum.
func (s *TaskService) Create(ctx context.Context, actor *model.User, req dto.CreateTaskRequest) (*model.Task, error) {
	if err := authz.Decide(actor.Role, authz.CreateTask, false); err != nil {
		return nil, err
	}

	var taskID string
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tasks := s.tasks.WithTx(tx)
		categories := s.categories.WithTx(tx)
		users := s.users.WithTx(tx)

		if _, err := categories.FindByID(ctx, req.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrCategoryNotFound
			}
			return err
		}

		if req.AssignedTo != nil {
			if _, err := users.FindByID(ctx, *req.AssignedTo); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperrors.ErrAssigneeNotFound
				}
				return err
			}
		}

		order := 0
		if req.Order != nil {
			order = *req.Order
		} else {
			next, err := tasks.NextOrder(ctx, req.CategoryID)
			if err != nil {
				return err
			}
			order = next
		}

		priority := req.Priority
		if priority == "" {
			priority = constants.DefaultPriority
		}

		task := &model.Task{
			Title:       req.Title,
			Description: req.Description,
			CategoryID:  req.CategoryID,
			AssignedTo:  req.AssignedTo,
			CreatedBy:   actor.ID,
			StartDate:   req.StartDate,
			DueDate:     req.DueDate,
			Priority:    priority,
			Order:       order,
		}
		if err := tasks.Create(ctx, task); err != nil {
			return err
		}

		taskID = task.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.tasks.FindByIDWithRelations(ctx, taskID)
}

// Update applies a tri-state patch: absent fields stay untouched, explicit
// nulls clear the nullable columns. Category and assignee references are
// re-validated when the patch touches them.
func (s *TaskService) Update(ctx context.Context, actor *model.User, id string, patch dto.UpdateTaskRequest) (*model.Task, error) {
	if err := authz.Decide(actor.Role, authz.UpdateTask, false); err != nil {
		return nil, err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tasks := s.tasks.WithTx(tx)
		categories := s.categories.WithTx(tx)
		users := s.users.WithTx(tx)

		task, err := tasks.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrTaskNotFound
			}
			return err
		}

		if patch.CategoryID.Present {
			if _, err := categories.FindByID(ctx, patch.CategoryID.Value); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperrors.ErrCategoryNotFound
				}
				return err
			}
		}
		if patch.AssignedTo.Present && patch.AssignedTo.Valid {
			if _, err := users.FindByID(ctx, patch.AssignedTo.Value); err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return apperrors.ErrAssigneeNotFound
				}
				return err
			}
		}

		fields := map[string]interface{}{}
		if patch.Title.Present {
			fields["title"] = patch.Title.Value
		}
		if patch.Description.Present {
			fields["description"] = patch.Description.Ptr()
		}
		if patch.CategoryID.Present {
			fields["category_id"] = patch.CategoryID.Value
		}
		if patch.AssignedTo.Present {
			fields["assigned_to"] = patch.AssignedTo.Ptr()
		}
		if patch.StartDate.Present {
			fields["start_date"] = patch.StartDate.Ptr()
		}
		if patch.DueDate.Present {
			fields["due_date"] = patch.DueDate.Ptr()
		}
		if patch.Priority.Present {
			fields["priority"] = patch.Priority.Value
		}
		if patch.Order.Present {
			fields["order"] = patch.Order.Value
		}

		if len(fields) == 0 {
			return nil
		}
		return tasks.UpdateFields(ctx, task.ID, fields)
	})
	if err != nil {
		return nil, err
	}

	return s.tasks.FindByIDWithRelations(ctx, id)
}

// Move places the task at the supplied category and order. The target
// order is written as-is; siblings keep their order values even when that
// produces a collision.
func (s *TaskService) Move(ctx context.Context, actor *model.User, id string, req dto.MoveTaskRequest) (*model.Task, error) {
	if err := authz.Decide(actor.Role, authz.MoveTask, false); err != nil {
		return nil, err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tasks := s.tasks.WithTx(tx)
		categories := s.categories.WithTx(tx)

		task, err := tasks.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrTaskNotFound
			}
			return err
		}

		if _, err := categories.FindByID(ctx, req.CategoryID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrCategoryNotFound
			}
			return err
		}

		return tasks.Move(ctx, task.ID, req.CategoryID, req.Order)
	})
	if err != nil {
		return nil, err
	}

	return s.tasks.FindByIDWithRelations(ctx, id)
}

// Delete removes a task. Admin and member may delete any task; the task's
// creator may delete their own regardless of role.
func (s *TaskService) Delete(ctx context.Context, actor *model.User, id string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		tasks := s.tasks.WithTx(tx)

		task, err := tasks.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrTaskNotFound
			}
			return err
		}

		if err := authz.Decide(actor.Role, authz.DeleteTask, task.CreatedBy == actor.ID); err != nil {
			return err
		}

		return tasks.Delete(ctx, task.ID)
	})
}
