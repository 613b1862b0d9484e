package storage

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/mdtaufique8084/TMS/models"
)

// Memory is a thread-safe in-memory store used by tests and when no
// database is configured. The write lock is held across the existence
// check and the insert, so duplicate registration cannot race here.
type Memory struct {
	mu sync.RWMutex

	usersByName map[string]*models.User
	usersByID   map[int]*models.User
	tasks       map[int]*models.Task

	nextUserID int
	nextTaskID int
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		usersByName: make(map[string]*models.User),
		usersByID:   make(map[int]*models.User),
		tasks:       make(map[int]*models.Task),
	}
}

func (m *Memory) CreateUser(_ context.Context, username, passwordHash string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.usersByName[username]; exists {
		return nil, ErrUserExists
	}

	m.nextUserID++
	u := &models.User{
		ID:           m.nextUserID,
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	m.usersByName[username] = u
	m.usersByID[u.ID] = u

	cp := *u
	return &cp, nil
}

func (m *Memory) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	u, ok := m.usersByName[username]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *Memory) GetUserByID(_ context.Context, id int) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	u, ok := m.usersByID[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *Memory) CreateTask(_ context.Context, t *models.Task) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextTaskID++
	t.ID = m.nextTaskID
	now := time.Now()
	t.CreatedAt = now
	t.UpdatedAt = now

	cp := *t
	m.tasks[t.ID] = &cp
	return nil
}

func (m *Memory) GetTask(_ context.Context, id int) (*models.Task, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	t, ok := m.tasks[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (m *Memory) ListTasksByUser(_ context.Context, userID int) ([]models.Task, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	tasks := []models.Task{}
	for _, t := range m.tasks {
		if t.UserID == userID {
			tasks = append(tasks, *t)
		}
	}
	sort.Slice(tasks, func(i, j int) bool {
		if tasks[i].CreatedAt.Equal(tasks[j].CreatedAt) {
			return tasks[i].ID > tasks[j].ID
		}
		return tasks[i].CreatedAt.After(tasks[j].CreatedAt)
	})
	return tasks, nil
}

func (m *Memory) UpdateTask(_ context.Context, t *models.Task) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	current, ok := m.tasks[t.ID]
	if !ok {
		return ErrNotFound
	}
	current.Title = t.Title
	current.Description = t.Description
	current.Status = t.Status
	current.UpdatedAt = time.Now()

	*t = *current
	return nil
}

func (m *Memory) DeleteTask(_ context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.tasks[id]; !ok {
		return ErrNotFound
	}
	delete(m.tasks, id)
	return nil
}
