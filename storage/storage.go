// Package storage persists users and tasks.
package storage

import (
	"context"
	"errors"

	"github.com/mdtaufique8084/TMS/models"
)

var (
	// ErrUserExists is returned when creating a user with a taken username.
	ErrUserExists = errors.New("storage: user already exists")
	// ErrNotFound is returned when a record cannot be located.
	ErrNotFound = errors.New("storage: not found")
)

// Store describes the persistence the handlers need. The memory and
// Postgres implementations both satisfy it.
type Store interface {
	CreateUser(ctx context.Context, username, passwordHash string) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByID(ctx context.Context, id int) (*models.User, error)

	CreateTask(ctx context.Context, t *models.Task) error
	GetTask(ctx context.Context, id int) (*models.Task, error)
	// ListTasksByUser returns the user's tasks, newest first.
	ListTasksByUser(ctx context.Context, userID int) ([]models.Task, error)
	UpdateTask(ctx context.Context, t *models.Task) error
	DeleteTask(ctx context.Context, id int) error
}
