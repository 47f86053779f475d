package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

// Constantes para identificar os roles
const (
	RoleAdmin = 1
)

// Claims são as claims do token JWT emitido no login
type Claims struct {
	Email      string `json:"email"`
	UserRoleID int    `json:"role_id"`
	jwt.RegisteredClaims
}
