package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	uuid2 "github.com/gofrs/uuid"
	"github.com/google/uuid"

	"github.com/stitchworks/machine-log-backend/internal/entity"
)

type UserRepository interface {
	Create(ctx context.Context, username, passwordHash string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
}

type userRepository struct {
	db *DB
}

func NewUserRepository(db *DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, username, passwordHash string) (*entity.User, error) {
	query := `INSERT INTO users (id, username, password, created_at) VALUES ($1, $2, $3, $4) RETURNING id, username`

	var user entity.User
	err := r.db.Primary().GetContext(ctx, &user, query, uuid2.UUID(uuid.New()), username, passwordHash, time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	query := `SELECT id, username, password FROM users WHERE username = $1`

	var user entity.User
	err := r.db.Read().GetContext(ctx, &user, query, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}
