package user

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/stitchworks/machine-log-backend/internal/entity"
	"github.com/stitchworks/machine-log-backend/internal/repository"
	"github.com/stitchworks/machine-log-backend/pkg/utils"
)

var ErrInvalidPassword = errors.New("invalid password")

type Service struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) *Service {
	return &Service{users: users}
}

// Authenticate logs an existing user in or registers a new one, returning a
// signed token either way.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*entity.User, string, error) {
	existing, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, "", err
	}

	if existing != nil {
		if existing.Password == nil {
			return nil, "", ErrInvalidPassword
		}
		if err := bcrypt.CompareHashAndPassword([]byte(*existing.Password), []byte(password)); err != nil {
			return nil, "", ErrInvalidPassword
		}

		token, err := utils.GenerateToken(existing.ID, existing.Username)
		if err != nil {
			return nil, "", err
		}
		return existing, token, nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	created, err := s.users.Create(ctx, username, string(hashed))
	if err != nil {
		return nil, "", err
	}

	token, err := utils.GenerateToken(created.ID, created.Username)
	if err != nil {
		return nil, "", err
	}

	return created, token, nil
}
