package auth

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// Token - выданный токен доступа
type Token struct {
	AccessToken string
	ExpiresAt   time.Time
	TTL         time.Duration
}

// Authorizer - проверка прав администратора. Обработчики и middleware
// зависят только от интерфейса, реализацию можно заменить.
type Authorizer interface {
	// Login проверяет учётные данные и выдаёт токен
	Login(ctx context.Context, password string) (*Token, error)
	// Authorize проверяет токен и возвращает subject
	Authorize(ctx context.Context, token string) (string, error)
}

// PasswordAuthorizer - один пароль администратора из конфигурации.
// В памяти хранится только bcrypt-хеш.
type PasswordAuthorizer struct {
	passwordHash string
	issuer       *TokenIssuer
}

func NewPasswordAuthorizer(password string, issuer *TokenIssuer) (*PasswordAuthorizer, error) {
	if password == "" {
		return nil, errors.New("admin password is empty")
	}
	hash, err := HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}
	return &PasswordAuthorizer{passwordHash: hash, issuer: issuer}, nil
}

func (a *PasswordAuthorizer) Login(ctx context.Context, password string) (*Token, error) {
	if !CheckPasswordHash(password, a.passwordHash) {
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := a.issuer.Issue(SubjectAdmin)
	if err != nil {
		return nil, err
	}
	return &Token{AccessToken: token, ExpiresAt: expiresAt, TTL: a.issuer.TTL()}, nil
}

func (a *PasswordAuthorizer) Authorize(ctx context.Context, token string) (string, error) {
	claims, err := a.issuer.Parse(token)
	if err != nil {
		return "", err
	}
	if claims.Subject != SubjectAdmin {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
