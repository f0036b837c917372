package api

import (
	"github.com/golang-jwt/jwt/v5"

	"github.com/being-saiful/productivity-tracker1/pkg/entity"
)

type JWTServiceI interface {
	GenerateToken(user *entity.User) (string, error)
	ParseToken(tokenString string) (*JWTClaims, error)
}

type JWTClaims struct {
	jwt.RegisteredClaims
	UserID   string `json:"user_id"`
	CareerID string `json:"career_id"`
}
