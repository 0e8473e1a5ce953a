package domain

import "github.com/golang-jwt/jwt/v5"

// Claims são as claims do token JWT emitido no login do operador.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}
