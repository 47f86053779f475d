package authenticating_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-guard-api/internal/config"
	"github.com/vfg2006/campaign-guard-api/internal/domain"
	"github.com/vfg2006/campaign-guard-api/internal/usecases/authenticating"
	"golang.org/x/crypto/bcrypt"
)

func newAuthService(t *testing.T) authenticating.Authenticator {
	hash, err := bcrypt.GenerateFromPassword([]byte("senha-correta"), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := &config.Config{
		Auth: config.Auth{
			Secret:            "segredo-de-teste",
			AdminEmail:        "admin@example.com",
			AdminPasswordHash: string(hash),
		},
	}

	return authenticating.NewService(cfg)
}

func TestLoginUserAndValidateToken(t *testing.T) {
	service := newAuthService(t)

	token, err := service.LoginUser("admin@example.com", "senha-correta")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.Equal(t, domain.RoleAdmin, claims.UserRoleID)
}

func TestLoginUserNormalizesEmail(t *testing.T) {
	service := newAuthService(t)

	token, err := service.LoginUser("  Admin@Example.com ", "senha-correta")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestLoginUserRejectsBadCredentials(t *testing.T) {
	service := newAuthService(t)

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{name: "senha errada", email: "admin@example.com", password: "senha-errada"},
		{name: "email desconhecido", email: "outro@example.com", password: "senha-correta"},
		{name: "email vazio", email: "", password: "senha-correta"},
		{name: "senha vazia", email: "admin@example.com", password: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.LoginUser(tt.email, tt.password)
			assert.Error(t, err)
		})
	}
}

func TestValidateTokenRejectsTamperedToken(t *testing.T) {
	service := newAuthService(t)

	token, err := service.LoginUser("admin@example.com", "senha-correta")
	require.NoError(t, err)

	_, err = service.ValidateToken(token + "x")
	assert.Error(t, err)

	_, err = service.ValidateToken("nem-um-jwt")
	assert.Error(t, err)
}
