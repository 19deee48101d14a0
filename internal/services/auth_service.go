package services

import (
	"errors"

	"vitrine/internal/domain"
	"vitrine/internal/repos"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrBadCreds   = errors.New("e-mail ou senha incorretos")
	ErrEmailTaken = errors.New("este e-mail já está cadastrado")
)

type AuthService struct {
	Users *repos.UserRepo
}

// Register creates the account and signs it in, returning a fresh session
// token for the cookie.
func (s *AuthService) Register(email, password string) (*domain.User, string, error) {
	if existing, err := s.Users.ByEmail(email); err == nil && existing != nil {
		return nil, "", ErrEmailTaken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return nil, "", err
	}
	u := &domain.User{ID: uuid.NewString(), Email: email, Hash: string(hash)}
	if err := s.Users.Create(u); err != nil {
		return nil, "", err
	}
	token, err := s.issue(u.ID)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

func (s *AuthService) Login(email, password string) (*domain.User, string, error) {
	u, err := s.Users.ByEmail(email)
	if err != nil {
		return nil, "", ErrBadCreds
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Hash), []byte(password)) != nil {
		return nil, "", ErrBadCreds
	}
	token, err := s.issue(u.ID)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

func (s *AuthService) Logout(token string) error {
	return s.Users.RevokeSession(token)
}

// CurrentUser resolves a session token. Invalid or expired tokens come back
// as an error; callers treat that as "anonymous", never as a fault.
func (s *AuthService) CurrentUser(token string) (*domain.User, error) {
	return s.Users.SessionUser(token)
}

func (s *AuthService) issue(userID string) (string, error) {
	token := uuid.NewString()
	if err := s.Users.IssueSession(token, userID); err != nil {
		return "", err
	}
	return token, nil
}
