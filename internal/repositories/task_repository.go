package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/present-lee/module-6/internal/constants"
	model "github.com/present-lee/module-6/internal/models"
)

type TaskRepository struct {
	db *gorm.DB
}

// TaskFilter narrows task listings; zero values mean no filter.
type TaskFilter struct {
	CategoryID string
	AssignedTo string
	Priority   constants.TaskPriority
}

func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) WithTx(tx *gorm.DB) *TaskRepository {
	return &TaskRepository{db: tx}
}

func (r *TaskRepository) Create(ctx context.Context, task *model.Task) error {
	if task.ID == "" {
		task.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(task).Error
}

func (r *TaskRepository) FindByID(ctx context.Context, id string) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).First(&task, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// FindByIDWithRelations loads the task with its category, assignee and
// creator projections.
func (r *TaskRepository) FindByIDWithRelations(ctx context.Context, id string) (*model.Task, error) {
	var task model.Task
	err := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Assignee").
		Preload("Creator").
		First(&task, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// List returns tasks ordered by (category_id, order, id) with relations
// preloaded.
func (r *TaskRepository) List(ctx context.Context, filter TaskFilter) ([]model.Task, error) {
	query := r.db.WithContext(ctx).
		Preload("Category").
		Preload("Assignee").
		Preload("Creator")

	if filter.CategoryID != "" {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.AssignedTo != "" {
		query = query.Where("assigned_to = ?", filter.AssignedTo)
	}
	if filter.Priority != "" {
		query = query.Where("priority = ?", filter.Priority)
	}

	var tasks []model.Task
	err := query.Order(`category_id asc, "order" asc, id asc`).Find(&tasks).Error
	return tasks, err
}

// NextOrder computes the append position for a category: max existing
// order plus one, or zero when the category holds no tasks.
func (r *TaskRepository) NextOrder(ctx context.Context, categoryID string) (int, error) {
	var next int
	err := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("category_id = ?", categoryID).
		Select(`COALESCE(MAX("order") + 1, 0)`).
		Scan(&next).Error
	return next, err
}

func (r *TaskRepository) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ?", id).Updates(fields).Error
}

// Move overwrites the task's category and order directly; sibling tasks
// are never shifted or renumbered.
func (r *TaskRepository) Move(ctx context.Context, id, categoryID string, order int) error {
	return r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"category_id": categoryID,
			"order":       order,
		}).Error
}

func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&model.Task{}, "id = ?", id).Error
}

func (r *TaskRepository) CountByCategory(ctx context.Context, categoryID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("category_id = ?", categoryID).Count(&count).Error
	return count, err
}

func (r *TaskRepository) CountCreatedBy(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Task{}).
		Where("created_by = ?", userID).Count(&count).Error
	return count, err
}

// ClearAssignee nulls out assigned_to on every task assigned to the user.
func (r *TaskRepository) ClearAssignee(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).Model(&model.Task{}).
		Where("assigned_to = ?", userID).
		Update("assigned_to", nil).Error
}
