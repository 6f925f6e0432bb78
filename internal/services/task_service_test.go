package services

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/present-lee/module-6/internal/constants"
	dto "github.com/present-lee/module-6/internal/data_models"
	apperrors "github.com/present-lee/module-6/internal/errors"
	"github.com/present-lee/module-6/internal/optional"
	repository "github.com/present-lee/module-6/internal/repositories"
)

func TestCreateTaskOrderMonotonic(t *testing.T) {
	env := setupEnv(t)
	admin := registerUser(t, env, "alice")
	category := createCategory(t, env, admin, "ToDo")

	for i := 0; i < 4; i++ {
		task := createTask(t, env, admin, category.ID, fmt.Sprintf("task-%d", i))
		if task.Order != i {
			t.Errorf("task %d: expected order %d, got %d", i, i, task.Order)
		}
	}
}

func TestCreateTaskExplicitOrderRespected(t *testing.T) {
	env := setupEnv(t)
	admin := registerUser(t, env, "alice")
	category := createCategory(t, env, admin, "ToDo")

	order := 7
	task, err := env.tasks.Create(context.Background(), admin, dto.CreateTaskRequest{
		Title:      "placed",
		CategoryID: category.ID,
		Order:      &order,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if task.Order != 7 {
		t.Errorf("expected order 7, got %d", task.Order)
	}

	// The next implicit order appends after the explicit maximum.
	next := createTask(t, env, admin, category.ID, "appended")
	if next.Order != 8 {
		t.Errorf("expected order 8, got %d", next.Order)
	}
}

func TestCreateTaskDefaults(t *testing.T) {
	env := setupEnv(t)
	admin := registerUser(t, env, "alice")
	category := createCategory(t, env, admin, "ToDo")

	task := createTask(t, env, admin, category.ID, "defaults")
	if task.Priority != constants.PriorityMedium {
		t.Errorf("expected medium priority, got %s", task.Priority)
	}
	if task.CreatedBy != admin.ID {
		t.Errorf("expected created_by %s, got %s", admin.ID, task.CreatedBy)
	}
	if task.Category == nil || task.Category.ID != category.ID {
		t.Error("expected category projection populated")
	}
	if task.Creator == nil || task.Creator.ID != admin.ID {
		t.Error("expected creator projection populated")
	}
}

func TestCreateTaskMissingCategory(t *testing.T) {
	env := setupEnv(t)
	admin := registerUser(t, env, "alice")

	_, err := env.tasks.Create(context.Background(), admin, dto.CreateTaskRequest{
		Title:      "orphan",
		CategoryID: "no-such-category",
	})
	if !errors.Is(err, apperrors.ErrCategoryNotFound) {
		t.Errorf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestCreateTaskMissingAssignee(t *testing.T) {
	env := setupEnv(t)
	admin := registerUser(t, env, "alice")
	category := createCategory(t, env, admin, "ToDo")

	missing := "no-such-user"
	_, err := env.tasks.Create(context.Background(), admin, dto.CreateTaskRequest{
		Title:      "unassignable",
		CategoryID: category.ID,
		AssignedTo: &missing,
	})
	if !errors.Is(err, apperrors.ErrAssigneeNotFound) {
		t.Errorf("expected ErrAssigneeNotFound, got %v", err)
	}
}

func TestCreateTaskByViewerForbidden(t *testing.T) {
	env := setupEnv(t)
	admin := registerUser(t, env, "alice")
	viewer := registerUser(t, env, "bob")
	setRole(t, env, viewer, constants.RoleViewer)
	category := createCategory(t, env, admin, "ToDo")

	_, err := env.tasks.Create(context.Background(), viewer, dto.CreateTaskRequest{
		Title:      "denied",
		CategoryID: category.ID,
	})
	if !errors.Is(err, apperrors.ErrForbidden) {
		t.Errorf("expected ErrForbidden, got %v", err)
	}
}

func TestMoveDoesNotShiftSiblings(t *testing.T) {
	env := setupEnv(t)
	admin := registerUser(t, env, "alice")
	source := createCategory(t, env, admin, "Source")
	target := createCategory(t, env, admin, "Target")

	moved := createTask(t, env, admin, source.ID, "moving")
	sibling := createTask(t, env, admin, target.ID, "sibling") // order 0

	// Collide with the sibling's order on purpose.
	result, err := env.tasks.Move(context.Background(), admin, moved.ID, dto.MoveTaskRequest{
		CategoryID: target.ID,
		Order:      0,
	})
	if err != nil {
		t.Fatalf("move failed: %v", err)
	}
	if result.CategoryID != target.ID || result.Order != 0 {
		t.Errorf("expected task in target at order 0, got %s/%d", result.CategoryID, result.Order)
	}

	refetched, err := env.tasks.Get(context.Background(), sibling.ID)
	if err != nil {
		t.Fatalf("failed to refetch sibling: %v", err)
	}
	if refetched.Order != 0 {
		t.Errorf("sibling order must be untouched, got %d", refetched.Order)
	}
}

func TestMoveMissingTargetCategory(t *testing.T) {
	env := setupEnv(t)
	admin := registerUser(t, env, "alice")
	category := createCategory(t, env, admin, "ToDo")
	task := createTask(t, env, admin, category.ID, "stuck")

	_, err := env.tasks.Move(context.Background(), admin, task.ID, dto.MoveTaskRequest{
		CategoryID: "no-such-category",
		Order:      0,
	})
	if !errors.Is(err, apperrors.ErrCategoryNotFound) {
		t.Errorf("expected ErrCategoryNotFound, got %v", err)
	}
}

func TestUpdateTaskPatchSemantics(t *testing.T) {
	env := setupEnv(t)
	admin := registerUser(t, env, "alice")
	category := createCategory(t, env, admin, "ToDo")

	description := "initial description"
	task, err := env.tasks.Create(context.Background(), admin, dto.CreateTaskRequest{
		Title:       "patchable",
		Description: &description,
		CategoryID:  category.ID,
		AssignedTo:  &admin.ID,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// Absent fields stay untouched.
	updated, err := env.tasks.Update(context.Background(), admin, task.ID, dto.UpdateTaskRequest{
		Title: optional.Set("renamed"),
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Title != "renamed" {
		t.Errorf("expected title renamed, got %s", updated.Title)
	}
	if updated.Description == nil || *updated.Description != description {
		t.Error("absent description must stay untouched")
	}
	if updated.AssignedTo == nil || *updated.AssignedTo != admin.ID {
		t.Error("absent assignment must stay untouched")
	}

	// Explicit nulls clear the nullable columns.
	cleared, err := env.tasks.Update(context.Background(), admin, task.ID, dto.UpdateTaskRequest{
		Description: optional.Null[string](),
		AssignedTo:  optional.Null[string](),
	})
	if err != nil {
		t.Fatalf("clearing update failed: %v", err)
	}
	if cleared.Description != nil {
		t.Errorf("expected description cleared, got %q", *cleared.Description)
	}
	if cleared.AssignedTo != nil {
		t.Errorf("expected assignment cleared, got %q", *cleared.AssignedTo)
	}
	if cleared.Title != "renamed" {
		t.Errorf("title must survive the clearing patch, got %s", cleared.Title)
	}
}

func TestUpdateTaskRevalidatesReferences(t *testing.T) {
	env := setupEnv(t)
	admin := registerUser(t, env, "alice")
	category := createCategory(t, env, admin, "ToDo")
	task := createTask(t, env, admin, category.ID, "checked")

	_, err := env.tasks.Update(context.Background(), admin, task.ID, dto.UpdateTaskRequest{
		CategoryID: optional.Set("no-such-category"),
	})
	if !errors.Is(err, apperrors.ErrCategoryNotFound) {
		t.Errorf("expected ErrCategoryNotFound, got %v", err)
	}

	_, err = env.tasks.Update(context.Background(), admin, task.ID, dto.UpdateTaskRequest{
		AssignedTo: optional.Set("no-such-user"),
	})
	if !errors.Is(err, apperrors.ErrAssigneeNotFound) {
		t.Errorf("expected ErrAssigneeNotFound, got %v", err)
	}
}

func TestDeleteTaskCreatorBypass(t *testing.T) {
	env := setupEnv(t)
	admin := registerUser(t, env, "alice")
	member := registerUser(t, env, "bob")
	category := createCategory(t, env, admin, "ToDo")

	own := createTask(t, env, member, category.ID, "bob's own")
	other := createTask(t, env, admin, category.ID, "alice's task")

	// Demoted to viewer, bob may still delete the task he created...
	setRole(t, env, member, constants.RoleViewer)
	if err := env.tasks.Delete(context.Background(), member, own.ID); err != nil {
		t.Errorf("creator should be able to delete own task: %v", err)
	}

	// ...but not anyone else's.
	err := env.tasks.Delete(context.Background(), member, other.ID)
	if !errors.Is(err, apperrors.ErrForbidden) {
		t.Errorf("expected ErrForbidden, got %v", err)
	}
}

func TestDeleteTaskMemberWithoutOwnership(t *testing.T) {
	env := setupEnv(t)
	admin := registerUser(t, env, "alice")
	member := registerUser(t, env, "bob")
	category := createCategory(t, env, admin, "ToDo")

	task := createTask(t, env, admin, category.ID, "anyone's")

	// A member who is not the creator may still delete.
	if err := env.tasks.Delete(context.Background(), member, task.ID); err != nil {
		t.Errorf("member delete should succeed: %v", err)
	}

	err := env.tasks.Delete(context.Background(), member, task.ID)
	if !errors.Is(err, apperrors.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound on second delete, got %v", err)
	}
}

func TestListTasksSortedAndFiltered(t *testing.T) {
	env := setupEnv(t)
	admin := registerUser(t, env, "alice")
	first := createCategory(t, env, admin, "First")
	second := createCategory(t, env, admin, "Second")

	createTask(t, env, admin, second.ID, "s0")
	createTask(t, env, admin, first.ID, "f0")
	createTask(t, env, admin, first.ID, "f1")

	all, err := env.tasks.List(context.Background(), repository.TaskFilter{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(all))
	}
	for i := 1; i < len(all); i++ {
		prev, cur := all[i-1], all[i]
		if prev.CategoryID > cur.CategoryID ||
			(prev.CategoryID == cur.CategoryID && prev.Order > cur.Order) {
			t.Errorf("tasks out of (category_id, order) order at index %d", i)
		}
	}

	filtered, err := env.tasks.List(context.Background(), repository.TaskFilter{CategoryID: first.ID})
	if err != nil {
		t.Fatalf("filtered list failed: %v", err)
	}
	if len(filtered) != 2 {
		t.Errorf("expected 2 tasks in first category, got %d", len(filtered))
	}
	if len(filtered) == 2 && (filtered[0].Order != 0 || filtered[1].Order != 1) {
		t.Errorf("expected orders 0,1; got %d,%d", filtered[0].Order, filtered[1].Order)
	}
}

func TestUpdateTaskByViewerForbiddenEvenAsCreator(t *testing.T) {
	env := setupEnv(t)
	admin := registerUser(t, env, "alice")
	member := registerUser(t, env, "bob")
	category := createCategory(t, env, admin, "ToDo")

	task := createTask(t, env, member, category.ID, "frozen")
	setRole(t, env, member, constants.RoleViewer)

	_, err := env.tasks.Update(context.Background(), member, task.ID, dto.UpdateTaskRequest{
		Title: optional.Set("changed"),
	})
	if !errors.Is(err, apperrors.ErrForbidden) {
		t.Errorf("ownership must not extend update rights, got %v", err)
	}
}
