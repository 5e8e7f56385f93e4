package users

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/taskboard/internal/common"
	"github.com/dmitrijs2005/taskboard/internal/server/auth"
	"github.com/dmitrijs2005/taskboard/internal/server/config"
	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	repo                  Repository
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

func NewService(repo Repository, cfg *config.Config) *Service {
	return &Service{
		repo:                  repo,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.AccessTokenValidityDuration,
	}
}

// Register creates a user with the next sequential id and a bcrypt hash of
// the password. A second registration with the same email fails with
// common.ErrorAlreadyExists.
func (s *Service) Register(ctx context.Context, name, designation, email, password string) (*User, error) {

	_, err := s.repo.GetByEmail(ctx, email)
	if err == nil {
		return nil, common.ErrorAlreadyExists
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return nil, fmt.Errorf("looking up user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}

	user := &User{
		Name:         name,
		Designation:  designation,
		Email:        email,
		PasswordHash: string(hash),
	}

	user, err = s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	return user, nil
}

// Login verifies the password against the stored hash and issues an access
// token embedding {id, email}. An unknown email fails with
// common.ErrorNotFound, a mismatch with common.ErrorInvalidCredentials.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorNotFound
		}
		return "", common.ErrorInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", common.ErrorInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, user.Email, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return "", common.ErrorInternal
	}

	return token, nil
}
