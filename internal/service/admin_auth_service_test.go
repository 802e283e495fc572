package service

import (
	"context"
	"errors"
	"testing"

	"streetshine/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// fakeAdminRepo holds admins keyed by email, hashes included, so the real
// bcrypt compare and token signing run in the tests.
type fakeAdminRepo struct {
	admins map[string]*repository.Admin
	err    error
}

func (f *fakeAdminRepo) GetByEmail(_ context.Context, email string) (*repository.Admin, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.admins[email], nil
}

func (f *fakeAdminRepo) CreateAdmin(_ context.Context, email, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		return err
	}
	f.admins[email] = &repository.Admin{ID: len(f.admins) + 1, Email: email, PasswordHash: string(hash)}
	return nil
}

const testSecret = "test-signing-secret"

func newTestAuthService(t *testing.T) (AdminAuthService, *fakeAdminRepo) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)
	repo := &fakeAdminRepo{admins: map[string]*repository.Admin{
		"admin@example.com": {ID: 1, Email: "admin@example.com", PasswordHash: string(hash)},
	}}
	return NewAdminAuthService(repo, testSecret), repo
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	svc, _ := newTestAuthService(t)

	tokenStr, err := svc.Login(context.Background(), "admin@example.com", "correct-horse")
	require.NoError(t, err)
	require.NotEmpty(t, tokenStr)

	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "admin@example.com", claims["email"])
	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	assert.NotNil(t, exp)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc, _ := newTestAuthService(t)

	token, err := svc.Login(context.Background(), "admin@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Empty(t, token)
}

func TestLoginRejectsUnknownEmail(t *testing.T) {
	svc, _ := newTestAuthService(t)

	token, err := svc.Login(context.Background(), "nobody@example.com", "correct-horse")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Empty(t, token)
}

func TestLoginPropagatesRepoError(t *testing.T) {
	repoErr := errors.New("connection refused")
	svc := NewAdminAuthService(&fakeAdminRepo{err: repoErr}, testSecret)

	_, err := svc.Login(context.Background(), "admin@example.com", "correct-horse")
	assert.ErrorIs(t, err, repoErr)
}

func TestCreateAdminRejectsEmptyFields(t *testing.T) {
	svc, _ := newTestAuthService(t)
	ctx := context.Background()

	assert.Error(t, svc.CreateAdmin(ctx, "", "pw"))
	assert.Error(t, svc.CreateAdmin(ctx, "new@example.com", ""))

	require.NoError(t, svc.CreateAdmin(ctx, "new@example.com", "pw"))
	_, err := svc.Login(ctx, "new@example.com", "pw")
	assert.NoError(t, err)
}
