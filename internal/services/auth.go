package services

import (
	"context"
	"errors"

	"github.com/cyberme/apiserver/internal/store"
	"github.com/cyberme/apiserver/types"
	"golang.org/x/crypto/bcrypt"
)

// Fixed bcrypt cost for all stored credentials.
const bcryptCost = 12

var (
	// ErrDuplicateUsername is returned when registering a username that
	// is already taken.
	ErrDuplicateUsername = errors.New("username already exists")

	// ErrAccountNotFound is returned when logging in with an unknown
	// username.
	ErrAccountNotFound = errors.New("account not found")

	// ErrInvalidCredentials is returned when the password does not match
	// the stored hash.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// UserRepository defines persistence operations for user credentials.
type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (types.User, error)
	Create(ctx context.Context, user types.User) (types.User, error)
}

// AuthService verifies and stores account credentials. Logins are
// independently verified on every call; no token or session is issued.
type AuthService struct {
	repo UserRepository
	cost int
}

func NewAuthService(repo UserRepository) *AuthService {
	return &AuthService{repo: repo, cost: bcryptCost}
}

// Register hashes the password and stores the credential pair. The
// plaintext is never persisted.
func (s *AuthService) Register(ctx context.Context, username, password string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return err
	}

	_, err = s.repo.Create(ctx, types.User{
		Username:     username,
		PasswordHash: string(hashed),
	})
	if errors.Is(err, store.ErrDuplicate) {
		return ErrDuplicateUsername
	}
	return err
}

// Login verifies the password against the stored hash. The comparison is
// bcrypt's own constant-time check, never string equality.
func (s *AuthService) Login(ctx context.Context, username, password string) error {
	user, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrAccountNotFound
		}
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}
