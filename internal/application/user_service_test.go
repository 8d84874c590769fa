package application

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/Eenot/shareit/internal/domain"
	userMocks "github.com/Eenot/shareit/internal/domain/user/mocks"
)

func newUserDeps(t *testing.T) (*gomock.Controller, *userMocks.MockUserRepository, *UserService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	users := userMocks.NewMockUserRepository(ctrl)
	return ctrl, users, NewUserService(users, zap.NewNop())
}

func TestCreateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("registers user", func(t *testing.T) {
		ctrl, users, svc := newUserDeps(t)
		defer ctrl.Finish()

		users.EXPECT().ExistsByEmail(ctx, "alice@example.com", uuid.Nil).Return(false, nil)
		users.EXPECT().Save(ctx, gomock.Any()).Return(nil)

		dto, err := svc.CreateUser(ctx, CreateUserRequest{Name: "alice", Email: "alice@example.com"})

		require.NoError(t, err)
		assert.Equal(t, "alice", dto.Name)
		assert.NotEqual(t, uuid.Nil, dto.ID)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		ctrl, users, svc := newUserDeps(t)
		defer ctrl.Finish()

		users.EXPECT().ExistsByEmail(ctx, "alice@example.com", uuid.Nil).Return(true, nil)

		_, err := svc.CreateUser(ctx, CreateUserRequest{Name: "alice", Email: "alice@example.com"})

		var cerr *domain.ConflictError
		require.ErrorAs(t, err, &cerr)
	})

	t.Run("empty name", func(t *testing.T) {
		ctrl, _, svc := newUserDeps(t)
		defer ctrl.Finish()

		_, err := svc.CreateUser(ctx, CreateUserRequest{Email: "alice@example.com"})

		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
	})
}

func TestUpdateUser(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("renames without touching email", func(t *testing.T) {
		ctrl, users, svc := newUserDeps(t)
		defer ctrl.Finish()

		users.EXPECT().FindByID(ctx, userID).Return(testUser(userID, "alice"), nil)
		users.EXPECT().Update(ctx, gomock.Any()).Return(nil)

		dto, err := svc.UpdateUser(ctx, userID, UpdateUserRequest{Name: "alicia"})

		require.NoError(t, err)
		assert.Equal(t, "alicia", dto.Name)
		assert.Equal(t, "alice@example.com", dto.Email)
	})

	t.Run("email change checks uniqueness", func(t *testing.T) {
		ctrl, users, svc := newUserDeps(t)
		defer ctrl.Finish()

		users.EXPECT().FindByID(ctx, userID).Return(testUser(userID, "alice"), nil)
		users.EXPECT().ExistsByEmail(ctx, "taken@example.com", userID).Return(true, nil)

		_, err := svc.UpdateUser(ctx, userID, UpdateUserRequest{Email: "taken@example.com"})

		var cerr *domain.ConflictError
		require.ErrorAs(t, err, &cerr)
	})

	t.Run("unknown user", func(t *testing.T) {
		ctrl, users, svc := newUserDeps(t)
		defer ctrl.Finish()

		users.EXPECT().FindByID(ctx, userID).
			Return(nil, domain.NewNotFoundError("user", userID.String()))

		_, err := svc.UpdateUser(ctx, userID, UpdateUserRequest{Name: "alicia"})

		var nferr *domain.NotFoundError
		require.ErrorAs(t, err, &nferr)
	})
}

func TestDeleteUser(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("deletes existing user", func(t *testing.T) {
		ctrl, users, svc := newUserDeps(t)
		defer ctrl.Finish()

		users.EXPECT().FindByID(ctx, userID).Return(testUser(userID, "alice"), nil)
		users.EXPECT().Delete(ctx, userID).Return(nil)

		require.NoError(t, svc.DeleteUser(ctx, userID))
	})

	t.Run("missing id", func(t *testing.T) {
		ctrl, _, svc := newUserDeps(t)
		defer ctrl.Finish()

		err := svc.DeleteUser(ctx, uuid.Nil)

		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
	})
}
