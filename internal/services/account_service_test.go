package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"wanderly/internal/models/request_models"
	"wanderly/pkg/utils"
)

func TestAccountService_RegisterAndLogin(t *testing.T) {
	t.Setenv("JWT_SECRET", "svc-secret")
	ctx := context.Background()
	svc := NewAccountService(newFakeAccountRepo())

	require.NoError(t, svc.CreateAccount(request_models.SignUpRequest{
		DisplayName: "Ana", Email: "Ana@Example.com", Password: "secret1",
	}, ctx))

	err := svc.CreateAccount(request_models.SignUpRequest{
		DisplayName: "Ana2", Email: "ana@example.com", Password: "secret2",
	}, ctx)
	assert.ErrorIs(t, err, utils.ErrEmailAlreadyExists)

	res, err := svc.Login(request_models.LoginRequest{Email: "ana@example.com", Password: "secret1"}, ctx)
	require.NoError(t, err)
	claims, err := utils.ValidateToken(res.Token)
	require.NoError(t, err)
	assert.Equal(t, utils.RoleUser, claims.Role)

	account, err := svc.GetAccount(ctx, claims.UserID())
	require.NoError(t, err)
	assert.Equal(t, "ana@example.com", account.Email)

	_, err = svc.Login(request_models.LoginRequest{Email: "ana@example.com", Password: "wrong!"}, ctx)
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
	_, err = svc.Login(request_models.LoginRequest{Email: "nobody@example.com", Password: "secret1"}, ctx)
	assert.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestAccountService_GetAccountBadID(t *testing.T) {
	svc := NewAccountService(newFakeAccountRepo())
	_, err := svc.GetAccount(context.Background(), "nope")
	assert.ErrorIs(t, err, utils.ErrAccountNotFound)
}

func TestAccountService_AdminEmailsGetAdminRole(t *testing.T) {
	t.Setenv("JWT_SECRET", "svc-secret")
	ctx := context.Background()
	svc := NewAccountService(newFakeAccountRepo(), " Ops@Example.com ", "")

	for _, email := range []string{"ops@example.com", "guest@example.com"} {
		require.NoError(t, svc.CreateAccount(request_models.SignUpRequest{
			DisplayName: email, Email: email, Password: "secret1",
		}, ctx))
	}

	cases := map[string]string{
		"OPS@example.com":   utils.RoleAdmin,
		"guest@example.com": utils.RoleUser,
	}
	for email, role := range cases {
		res, err := svc.Login(request_models.LoginRequest{Email: email, Password: "secret1"}, ctx)
		require.NoError(t, err, email)
		claims, err := utils.ValidateToken(res.Token)
		require.NoError(t, err)
		assert.Equal(t, role, claims.Role, email)
	}
}
