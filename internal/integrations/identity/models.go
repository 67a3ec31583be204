package identity

import "github.com/golang-jwt/jwt/v5"

// Profile профиль пользователя из ID-токена
type Profile struct {
	Subject string
	Name    string
}

type idTokenClaims struct {
	Name string `json:"name"`
	jwt.RegisteredClaims
}
