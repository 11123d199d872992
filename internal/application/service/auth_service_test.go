package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tewodrosk/gibir-api/pkg/apperror"
	"github.com/tewodrosk/gibir-api/pkg/utils"
)

func newAuthFixture() (*AuthService, *fakeUserRepo) {
	users := newFakeUserRepo()
	roles := newFakeRoleRepo("admin", "reviewer", "taxpayer")
	jwt := utils.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	return NewAuthService(users, roles, jwt), users
}

func registerInput() *RegisterInput {
	return &RegisterInput{
		FirstName: "Tigist",
		LastName:  "Abebe",
		Email:     "tigist@example.com",
		Password:  "s3cret-pass",
		TIN:       "0011223344",
	}
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newAuthFixture()

	user, err := svc.Register(context.Background(), registerInput())
	require.NoError(t, err)
	assert.Equal(t, "0011223344", user.TIN)
	assert.NotEqual(t, "s3cret-pass", user.Password)

	out, err := svc.Login(context.Background(), &LoginInput{
		Email:    "tigist@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, out.AccessToken)
	assert.NotEmpty(t, out.RefreshToken)
}

func TestRegisterRejectsBadTIN(t *testing.T) {
	svc, _ := newAuthFixture()

	input := registerInput()
	input.TIN = "12345"

	_, err := svc.Register(context.Background(), input)
	require.Error(t, err)
	assert.Equal(t, 400, apperror.GetAppError(err).Code)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newAuthFixture()

	_, err := svc.Register(context.Background(), registerInput())
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), registerInput())
	require.Error(t, err)
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newAuthFixture()

	_, err := svc.Register(context.Background(), registerInput())
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &LoginInput{
		Email:    "tigist@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)
}

func TestRefreshToken(t *testing.T) {
	svc, _ := newAuthFixture()

	_, err := svc.Register(context.Background(), registerInput())
	require.NoError(t, err)

	out, err := svc.Login(context.Background(), &LoginInput{
		Email:    "tigist@example.com",
		Password: "s3cret-pass",
	})
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(context.Background(), out.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, refreshed.User.ID)

	_, err = svc.RefreshToken(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, apperror.ErrInvalidToken)
}

func TestChangePassword(t *testing.T) {
	svc, _ := newAuthFixture()

	user, err := svc.Register(context.Background(), registerInput())
	require.NoError(t, err)

	err = svc.ChangePassword(context.Background(), &ChangePasswordInput{
		UserID:          user.ID,
		CurrentPassword: "wrong",
		NewPassword:     "new-pass",
	})
	require.Error(t, err)

	err = svc.ChangePassword(context.Background(), &ChangePasswordInput{
		UserID:          user.ID,
		CurrentPassword: "s3cret-pass",
		NewPassword:     "new-pass",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &LoginInput{
		Email:    "tigist@example.com",
		Password: "new-pass",
	})
	assert.NoError(t, err)
}
