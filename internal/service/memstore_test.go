// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/MKhiriev/go-todo-keeper/internal/store"
	"github.com/MKhiriev/go-todo-keeper/models"
)

// memStore is an in-memory UserRepository and TodoRepository with the same
// uniqueness and scoping rules as the SQL schema.
type memStore struct {
	mu         sync.Mutex
	users      map[string]models.User
	todos      map[int64]models.Todo
	nextUserID int64
	nextTodoID int64
}

func newMemStore() *memStore {
	return &memStore{
		users: make(map[string]models.User),
		todos: make(map[int64]models.Todo),
	}
}

func (m *memStore) CreateUser(_ context.Context, user models.User) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.users[user.Username]; ok {
		return models.User{}, store.ErrUsernameAlreadyExists
	}
	m.nextUserID++
	user.ID = m.nextUserID
	user.CreatedAt = time.Now()
	m.users[user.Username] = user
	return user, nil
}

func (m *memStore) FindUserByUsername(_ context.Context, username string) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user, ok := m.users[username]
	if !ok {
		return models.User{}, store.ErrNoUserWasFound
	}
	return user, nil
}

func (m *memStore) ResolveUserID(ctx context.Context, username string) (int64, error) {
	user, err := m.FindUserByUsername(ctx, username)
	return user.ID, err
}

func (m *memStore) SaveTodo(_ context.Context, owner models.IdentityContext, content string) (models.Todo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextTodoID++
	todo := models.Todo{ID: m.nextTodoID, UserID: owner.UserID, Content: content, CreatedAt: time.Now()}
	m.todos[todo.ID] = todo
	return todo, nil
}

func (m *memStore) ListTodos(_ context.Context, owner models.IdentityContext, limit uint64) ([]models.Todo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	todos := make([]models.Todo, 0)
	for _, todo := range m.todos {
		if todo.UserID == owner.UserID {
			todos = append(todos, todo)
		}
	}
	sort.Slice(todos, func(i, j int) bool { return todos[i].ID > todos[j].ID })
	if uint64(len(todos)) > limit {
		todos = todos[:limit]
	}
	return todos, nil
}

func (m *memStore) DeleteTodo(_ context.Context, owner models.IdentityContext, todoID int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	todo, ok := m.todos[todoID]
	if !ok || todo.UserID != owner.UserID {
		return 0, nil
	}
	delete(m.todos, todoID)
	return 1, nil
}
