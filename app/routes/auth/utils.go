package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/seanyjeong/academy-web-sub001/app/config"
)

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

type JWTClaims struct {
	UserID string   `json:"user_id"`
	Email  string   `json:"email"`
	Name   string   `json:"name"`
	Roles  []string `json:"roles"`
	jwt.RegisteredClaims
}

func GenerateJWT(userID, email, name string, roles []string) (string, error) {
	cfg := config.Get()
	claims := JWTClaims{
		UserID: userID,
		Email:  email,
		Name:   name,
		Roles:  roles,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(cfg.Auth.AccessExpiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    cfg.App.Name,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.Auth.JWTSecret))
}

func ValidateJWT(tokenString string) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(config.Get().Auth.JWTSecret), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*JWTClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, jwt.ErrInvalidKey
}

const refreshPrefix = "refresh:"

// IssueRefreshToken creates an opaque refresh token in the Redis
// allowlist, mapped to the user for its configured lifetime.
func IssueRefreshToken(ctx context.Context, userID string) (string, error) {
	token := uuid.NewString()
	err := config.GetCache().Set(ctx, refreshPrefix+token, userID, config.Get().Auth.RefreshExpiry).Err()
	if err != nil {
		return "", err
	}
	return token, nil
}

// ConsumeRefreshToken resolves and revokes a refresh token in one
// step; callers issue a fresh one on success (rotation).
func ConsumeRefreshToken(ctx context.Context, token string) (string, error) {
	cache := config.GetCache()
	userID, err := cache.Get(ctx, refreshPrefix+token).Result()
	if err != nil {
		return "", err
	}
	if err := cache.Del(ctx, refreshPrefix+token).Err(); err != nil {
		return "", err
	}
	return userID, nil
}

// RevokeRefreshToken invalidates a refresh token on logout.
func RevokeRefreshToken(ctx context.Context, token string) error {
	return config.GetCache().Del(ctx, refreshPrefix+token).Err()
}
