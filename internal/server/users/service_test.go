package users

import (
	"context"
	"testing"
	"time"

	"github.com/dmitrijs2005/taskboard/internal/common"
	"github.com/dmitrijs2005/taskboard/internal/server/auth"
	"github.com/dmitrijs2005/taskboard/internal/server/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// --- helpers ---

type fakeUsersRepo struct {
	createOut *User
	createErr error

	getOut *User
	getErr error

	created *User
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *User) (*User, error) {
	f.created = u
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createOut != nil {
		return f.createOut, nil
	}
	u.ID = 1
	return u, nil
}

func (f *fakeUsersRepo) GetByEmail(ctx context.Context, email string) (*User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

func newTestService(t *testing.T, repo Repository) *Service {
	t.Helper()
	cfg := &config.Config{
		SecretKey:                   "k",
		AccessTokenValidityDuration: time.Hour,
	}
	return NewService(repo, cfg)
}

// --- Register ---

func TestService_Register_HashesPassword(t *testing.T) {
	repo := &fakeUsersRepo{getErr: common.ErrorNotFound}
	s := newTestService(t, repo)

	u, err := s.Register(context.Background(), "Alice", "Engineer", "a@x.com", "p")
	require.NoError(t, err)

	assert.Equal(t, "Alice", u.Name)
	assert.Equal(t, "Engineer", u.Designation)
	assert.Equal(t, "a@x.com", u.Email)
	assert.NotEqual(t, "p", u.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("p")))
}

func TestService_Register_DuplicateEmail(t *testing.T) {
	repo := &fakeUsersRepo{getOut: &User{ID: 1, Email: "a@x.com"}}
	s := newTestService(t, repo)

	_, err := s.Register(context.Background(), "Alice", "Engineer", "a@x.com", "p")
	assert.ErrorIs(t, err, common.ErrorAlreadyExists)
	assert.Nil(t, repo.created, "no user must be created on duplicate")
}

func TestService_Register_PropagatesStorageError(t *testing.T) {
	repo := &fakeUsersRepo{getErr: common.ErrorNotFound, createErr: common.ErrorStorage}
	s := newTestService(t, repo)

	_, err := s.Register(context.Background(), "Alice", "Engineer", "a@x.com", "p")
	assert.ErrorIs(t, err, common.ErrorStorage)
}

// --- Login ---

func TestService_Login_Success_TokenCarriesIdentity(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("p"), bcrypt.DefaultCost)
	require.NoError(t, err)

	repo := &fakeUsersRepo{getOut: &User{ID: 7, Email: "a@x.com", PasswordHash: string(hash)}}
	s := newTestService(t, repo)

	token, err := s.Login(context.Background(), "a@x.com", "p")
	require.NoError(t, err)

	claims, err := auth.GetClaimsFromToken(token, []byte("k"))
	require.NoError(t, err)
	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, "a@x.com", claims.Email)
}

func TestService_Login_UnknownEmail(t *testing.T) {
	repo := &fakeUsersRepo{getErr: common.ErrorNotFound}
	s := newTestService(t, repo)

	_, err := s.Login(context.Background(), "nobody@x.com", "p")
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestService_Login_WrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("right"), bcrypt.DefaultCost)
	require.NoError(t, err)

	repo := &fakeUsersRepo{getOut: &User{ID: 1, Email: "a@x.com", PasswordHash: string(hash)}}
	s := newTestService(t, repo)

	_, err = s.Login(context.Background(), "a@x.com", "wrong")
	assert.ErrorIs(t, err, common.ErrorInvalidCredentials)
}
