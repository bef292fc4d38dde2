// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/mock"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
	"github.com/MKhiriev/go-todo-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestTodoSvc(t *testing.T, ctrl *gomock.Controller) (TodoService, *mock.MockUserRepository, *mock.MockTodoRepository) {
	t.Helper()
	users := mock.NewMockUserRepository(ctrl)
	todos := mock.NewMockTodoRepository(ctrl)
	return NewTodoService(users, todos, logger.Nop()), users, todos
}

var aliceOwner = models.IdentityContext{UserID: 1, Username: "alice"}

// ── SaveTodo ─────────────────────────────────────────────────────────────────

func TestTodoService_SaveTodo_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, todos := newTestTodoSvc(t, ctrl)
	ctx := context.Background()

	users.EXPECT().ResolveUserID(ctx, "alice").Return(int64(1), nil)
	todos.EXPECT().SaveTodo(ctx, aliceOwner, " buy milk ").
		Return(models.Todo{ID: 5, UserID: 1, Content: " buy milk "}, nil)

	todo, err := svc.SaveTodo(ctx, "alice", " buy milk ")
	require.NoError(t, err)
	assert.Equal(t, int64(5), todo.ID)
	assert.Equal(t, " buy milk ", todo.Content)
}

func TestTodoService_SaveTodo_BlankContentNeverTouchesStorage(t *testing.T) {
	for _, content := range []string{"", "   ", "\t\n"} {
		t.Run(fmt.Sprintf("%q", content), func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, _, _ := newTestTodoSvc(t, ctrl)

			_, err := svc.SaveTodo(context.Background(), "alice", content)
			assert.ErrorIs(t, err, ErrEmptyTodoContent)
			assert.ErrorIs(t, err, ErrValidation)
			assert.Equal(t, "todo content cannot be empty", err.Error())
		})
	}
}

func TestTodoService_SaveTodo_UnknownOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, _ := newTestTodoSvc(t, ctrl)
	ctx := context.Background()

	users.EXPECT().ResolveUserID(ctx, "ghost").Return(int64(0), store.ErrNoUserWasFound)

	_, err := svc.SaveTodo(ctx, "ghost", "milk")
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestTodoService_BlankOwnerIsNotFoundWithoutLookup(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestTodoSvc(t, ctrl)
	ctx := context.Background()

	_, err := svc.SaveTodo(ctx, " ", "milk")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = svc.ListTodos(ctx, "")
	assert.ErrorIs(t, err, ErrUserNotFound)

	assert.ErrorIs(t, svc.DeleteTodo(ctx, "", 1), ErrUserNotFound)
}

func TestTodoService_SaveTodo_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, todos := newTestTodoSvc(t, ctrl)
	ctx := context.Background()

	users.EXPECT().ResolveUserID(ctx, "alice").Return(int64(1), nil)
	todos.EXPECT().SaveTodo(ctx, aliceOwner, "milk").Return(models.Todo{}, store.ErrExecutingQuery)

	_, err := svc.SaveTodo(ctx, "alice", "milk")
	assert.ErrorIs(t, err, ErrDatabase)
}

// ── ListTodos ────────────────────────────────────────────────────────────────

func TestTodoService_ListTodos_AsksForTenNewest(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, todos := newTestTodoSvc(t, ctrl)
	ctx := context.Background()

	users.EXPECT().ResolveUserID(ctx, "alice").Return(int64(1), nil)
	todos.EXPECT().ListTodos(ctx, aliceOwner, uint64(10)).Return([]models.Todo{{ID: 2}, {ID: 1}}, nil)

	got, err := svc.ListTodos(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestTodoService_ListTodos_EmptyIsNotNil(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, todos := newTestTodoSvc(t, ctrl)
	ctx := context.Background()

	users.EXPECT().ResolveUserID(ctx, "alice").Return(int64(1), nil)
	todos.EXPECT().ListTodos(ctx, aliceOwner, TodoListLimit).Return(nil, nil)

	got, err := svc.ListTodos(ctx, "alice")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestTodoService_ListTodos_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, _ := newTestTodoSvc(t, ctrl)
	ctx := context.Background()

	users.EXPECT().ResolveUserID(ctx, "alice").Return(int64(0), store.ErrConnectingStorage)

	_, err := svc.ListTodos(ctx, "alice")
	assert.ErrorIs(t, err, ErrDatabase)
	assert.NotErrorIs(t, err, ErrNotFound)
}

// ── DeleteTodo ───────────────────────────────────────────────────────────────

func TestTodoService_DeleteTodo_ZeroRowsIsSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, todos := newTestTodoSvc(t, ctrl)
	ctx := context.Background()

	users.EXPECT().ResolveUserID(ctx, "alice").Return(int64(1), nil)
	todos.EXPECT().DeleteTodo(ctx, aliceOwner, int64(99)).Return(int64(0), nil)

	assert.NoError(t, svc.DeleteTodo(ctx, "alice", 99))
}

func TestTodoService_DeleteTodo_InvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestTodoSvc(t, ctrl)

	err := svc.DeleteTodo(context.Background(), "alice", 0)
	assert.ErrorIs(t, err, ErrInvalidTodoID)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestTodoService_DeleteTodo_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, todos := newTestTodoSvc(t, ctrl)
	ctx := context.Background()

	users.EXPECT().ResolveUserID(ctx, "alice").Return(int64(1), nil)
	todos.EXPECT().DeleteTodo(ctx, aliceOwner, int64(3)).Return(int64(0), store.ErrExecutingStatement)

	assert.ErrorIs(t, svc.DeleteTodo(ctx, "alice", 3), ErrDatabase)
}

// ── behaviour over an in-memory store ────────────────────────────────────────

func newMemServices(t *testing.T, usernames ...string) (AuthService, TodoService) {
	t.Helper()
	mem := newMemStore()
	auth := NewAuthService(mem, plainHasher{}, logger.Nop())
	todos := NewTodoService(mem, mem, logger.Nop())
	for _, u := range usernames {
		require.NoError(t, auth.Register(context.Background(), models.Credentials{Username: u, Password: "pw"}))
	}
	return auth, todos
}

func TestTodoService_OwnersAreIsolated(t *testing.T) {
	_, svc := newMemServices(t, "alice", "bob")
	ctx := context.Background()

	_, err := svc.SaveTodo(ctx, "alice", "alice's todo")
	require.NoError(t, err)
	_, err = svc.SaveTodo(ctx, "bob", "bob's todo")
	require.NoError(t, err)

	aliceTodos, err := svc.ListTodos(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, aliceTodos, 1)
	assert.Equal(t, "alice's todo", aliceTodos[0].Content)

	bobTodos, err := svc.ListTodos(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, bobTodos, 1)
	assert.Equal(t, "bob's todo", bobTodos[0].Content)
}

func TestTodoService_NewestFirst(t *testing.T) {
	_, svc := newMemServices(t, "alice")
	ctx := context.Background()

	_, err := svc.SaveTodo(ctx, "alice", "older")
	require.NoError(t, err)
	_, err = svc.SaveTodo(ctx, "alice", "buy milk")
	require.NoError(t, err)

	todos, err := svc.ListTodos(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "buy milk", todos[0].Content)
}

func TestTodoService_BlankContentCreatesNothing(t *testing.T) {
	_, svc := newMemServices(t, "alice")
	ctx := context.Background()

	_, err := svc.SaveTodo(ctx, "alice", "   ")
	require.ErrorIs(t, err, ErrValidation)

	todos, err := svc.ListTodos(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, todos)
}

func TestTodoService_ForeignDeleteLeavesTodo(t *testing.T) {
	_, svc := newMemServices(t, "alice", "bob")
	ctx := context.Background()

	todo, err := svc.SaveTodo(ctx, "alice", "keep me")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteTodo(ctx, "bob", todo.ID))

	todos, err := svc.ListTodos(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, todos, 1)
	assert.Equal(t, todo.ID, todos[0].ID)

	require.NoError(t, svc.DeleteTodo(ctx, "alice", todo.ID))
	todos, err = svc.ListTodos(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, todos)
}

func TestTodoService_ElevenSavedTenListed(t *testing.T) {
	_, svc := newMemServices(t, "alice")
	ctx := context.Background()

	for i := 1; i <= 11; i++ {
		_, err := svc.SaveTodo(ctx, "alice", fmt.Sprintf("todo %d", i))
		require.NoError(t, err)
	}

	todos, err := svc.ListTodos(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, todos, 10)
	assert.Equal(t, "todo 11", todos[0].Content)
	assert.Equal(t, "todo 2", todos[9].Content)
	for i := 1; i < len(todos); i++ {
		assert.Greater(t, todos[i-1].ID, todos[i].ID)
	}
}
