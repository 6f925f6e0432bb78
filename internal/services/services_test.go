package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/present-lee/module-6/internal/auth"
	"github.com/present-lee/module-6/internal/cache"
	"github.com/present-lee/module-6/internal/constants"
	dto "github.com/present-lee/module-6/internal/data_models"
	model "github.com/present-lee/module-6/internal/models"
	repository "github.com/present-lee/module-6/internal/repositories"
)

// memoryBoardCache is a simple in-memory board cache for testing.
type memoryBoardCache struct {
	mu      sync.Mutex
	payload []byte
	ok      bool
}

func (m *memoryBoardCache) Get(ctx context.Context) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.ok {
		return nil, cache.ErrCacheMiss
	}
	return m.payload, nil
}

func (m *memoryBoardCache) Set(ctx context.Context, payload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.payload = payload
	m.ok = true
	return nil
}

func (m *memoryBoardCache) Invalidate(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.payload = nil
	m.ok = false
	return nil
}

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	err = db.AutoMigrate(&model.User{}, &model.Category{}, &model.Task{})
	if err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)

	return db
}

type testEnv struct {
	db         *gorm.DB
	users      *UserService
	categories *CategoryService
	tasks      *TaskService
	board      *memoryBoardCache
}

func setupEnv(t *testing.T) *testEnv {
	db := setupTestDB(t)

	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	tokens := auth.NewTokenManager("test-secret", 30*time.Minute)
	board := &memoryBoardCache{}

	return &testEnv{
		db:         db,
		users:      NewUserService(db, userRepo, taskRepo, tokens),
		categories: NewCategoryService(db, categoryRepo, taskRepo, board),
		tasks:      NewTaskService(db, taskRepo, categoryRepo, userRepo),
		board:      board,
	}
}

// registerUser registers through the service so the first caller becomes
// admin, subsequent ones members.
func registerUser(t *testing.T, env *testEnv, username string) *model.User {
	t.Helper()

	user, err := env.users.Register(context.Background(), username, username+"@example.com", "secret123")
	if err != nil {
		t.Fatalf("failed to register %s: %v", username, err)
	}
	return user
}

func createCategory(t *testing.T, env *testEnv, actor *model.User, name string) *model.Category {
	t.Helper()

	category, err := env.categories.Create(context.Background(), actor, dto.CreateCategoryRequest{Name: name})
	if err != nil {
		t.Fatalf("failed to create category %s: %v", name, err)
	}
	return category
}

func createTask(t *testing.T, env *testEnv, actor *model.User, categoryID, title string) *model.Task {
	t.Helper()

	task, err := env.tasks.Create(context.Background(), actor, dto.CreateTaskRequest{
		Title:      title,
		CategoryID: categoryID,
	})
	if err != nil {
		t.Fatalf("failed to create task %s: %v", title, err)
	}
	return task
}

func setRole(t *testing.T, env *testEnv, user *model.User, role constants.UserRole) {
	t.Helper()

	err := env.db.Model(&model.User{}).Where("id = ?", user.ID).Update("role", role).Error
	if err != nil {
		t.Fatalf("failed to set role: %v", err)
	}
	user.Role = role
}
