package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/present-lee/module-6/internal/auth"
	"github.com/present-lee/module-6/internal/authz"
	"github.com/present-lee/module-6/internal/constants"
	apperrors "github.com/present-lee/module-6/internal/errors"
	model "github.com/present-lee/module-6/internal/models"
	repository "github.com/present-lee/module-6/internal/repositories"
)

type UserService struct {
	db     *gorm.DB
	users  *repository.UserRepository
	tasks  *repository.TaskRepository
	tokens *auth.TokenManager
}

func NewUserService(
	db *gorm.DB,
	users *repository.UserRepository,
	tasks *repository.TaskRepository,
	tokens *auth.TokenManager,
) *UserService {
	return &UserService{
		db:     db,
		users:  users,
		tasks:  tasks,
		tokens: tokens,
	}
}

// Register creates a user. The first user ever registered becomes admin;
// the count and the insert share one transaction so concurrent first
// registrations cannot both win.
func (s *UserService) Register(ctx context.Context, username, email, password string) (*model.User, error) {
	passwordHash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	var user *model.User
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		users := s.users.WithTx(tx)

		taken, err := users.ExistsByEmail(ctx, email)
		if err != nil {
			return err
		}
		if taken {
			return apperrors.ErrEmailTaken
		}

		taken, err = users.ExistsByUsername(ctx, username)
		if err != nil {
			return err
		}
		if taken {
			return apperrors.ErrUsernameTaken
		}

		count, err := users.Count(ctx)
		if err != nil {
			return err
		}
		role := constants.RoleMember
		if count == 0 {
			role = constants.RoleAdmin
		}

		user, err = users.Create(ctx, username, email, passwordHash, role)
		return err
	})
	if err != nil {
		return nil, err
	}

	return user, nil
}

// Login verifies the credentials and issues a bearer token. Unknown email
// and wrong password are indistinguishable to the caller.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.ErrInvalidCredentials
		}
		return "", err
	}

	if !auth.VerifyPassword(password, user.PasswordHash) {
		return "", apperrors.ErrInvalidCredentials
	}

	return s.tokens.Issue(user.ID)
}

func (s *UserService) Get(ctx context.Context, id string) (*model.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) List(ctx context.Context, actor *model.User) ([]model.User, error) {
	if err := authz.Decide(actor.Role, authz.ViewBoard, false); err != nil {
		return nil, err
	}
	return s.users.List(ctx)
}

// UpdateRole changes the target user's role. Admin only, never on the
// actor's own account.
func (s *UserService) UpdateRole(ctx context.Context, actor *model.User, targetID string, role constants.UserRole) (*model.User, error) {
	if err := authz.Decide(actor.Role, authz.UpdateUserRole, false); err != nil {
		return nil, err
	}
	if targetID == actor.ID {
		return nil, apperrors.ErrSelfTarget
	}

	var updated *model.User
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		users := s.users.WithTx(tx)

		target, err := users.FindByID(ctx, targetID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrUserNotFound
			}
			return err
		}

		if err := users.UpdateRole(ctx, target.ID, role); err != nil {
			return err
		}

		updated, err = users.FindByID(ctx, target.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Delete removes the target user. Admin only, never the actor's own
// account. Deletion is refused while the target is the creator of any task;
// their task assignments are cleared in the same transaction.
func (s *UserService) Delete(ctx context.Context, actor *model.User, targetID string) error {
	if err := authz.Decide(actor.Role, authz.DeleteUser, false); err != nil {
		return err
	}
	if targetID == actor.ID {
		return apperrors.ErrSelfTarget
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		users := s.users.WithTx(tx)
		tasks := s.tasks.WithTx(tx)

		target, err := users.FindByID(ctx, targetID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrUserNotFound
			}
			return err
		}

		created, err := tasks.CountCreatedBy(ctx, target.ID)
		if err != nil {
			return err
		}
		if created > 0 {
			return apperrors.NewUserHasTasks(created)
		}

		if err := tasks.ClearAssignee(ctx, target.ID); err != nil {
			return err
		}

		return users.Delete(ctx, target.ID)
	})
}
