package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/snapfeed/snapfeed-api/internal/domain/entity"
	repo "github.com/snapfeed/snapfeed-api/internal/domain/repository"
	"github.com/snapfeed/snapfeed-api/pkg/helpers"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AuthService handles registration and login. Only the bcrypt hash of a
// password ever reaches the repository.
type AuthService struct {
	Users  repo.UserRepository
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewAuthService(users repo.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger) *AuthService {
	return &AuthService{Users: users, JWT: jwt, Logger: logger}
}

// AuthResult carries the authenticated user and their freshly issued token.
type AuthResult struct {
	User        *entity.User
	AccessToken string
	ExpiresAt   time.Time
}

// Register creates a new user and issues an access token whose subject is
// the new user's id. Email uniqueness is decided by the insert itself;
// a duplicate maps to ErrEmailTaken.
func (s *AuthService) Register(ctx context.Context, email, password, name string) (*AuthResult, error) {
	hash, err := helpers.HashPassword(password)
	if err != nil {
		return nil, err
	}

	u := &entity.User{Email: email, Password: hash, Name: name}
	if err := s.Users.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	token, exp, err := s.JWT.GenerateAccessToken(u.ID)
	if err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"user_id": u.ID, "email": u.Email}).Info("user registered")
	}
	return &AuthResult{User: u, AccessToken: token, ExpiresAt: exp}, nil
}

// Login validates credentials and issues an access token. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, ErrInvalidCredentials
	}

	token, exp, err := s.JWT.GenerateAccessToken(u.ID)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: u, AccessToken: token, ExpiresAt: exp}, nil
}
