package auth

import (
	"fmt"
	"time"

	"chequesaathi/config"
	"chequesaathi/internal/domain"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingSecret = fmt.Errorf("%w: jwt secret is empty", domain.ErrConfiguration)
	ErrInvalidToken  = fmt.Errorf("%w: invalid or expired token", domain.ErrInvalidCredential)
)

// Identity is the authenticated caller bound into a token.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type Claims struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

func GenerateToken(cfg *config.JWTConfig, id Identity) (string, error) {
	return generateAt(cfg, id, time.Now())
}

func generateAt(cfg *config.JWTConfig, id Identity, now time.Time) (string, error) {
	if cfg == nil || cfg.Secret == "" {
		return "", ErrMissingSecret
	}
	expiry := cfg.Expiry
	if expiry <= 0 {
		expiry = 7 * 24 * time.Hour
	}
	claims := Claims{
		ID:    id.ID,
		Email: id.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.ID,
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    cfg.Issuer,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.Secret))
}

func ParseToken(cfg *config.JWTConfig, tokenString string) (Identity, error) {
	if cfg == nil || cfg.Secret == "" {
		return Identity{}, ErrMissingSecret
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(cfg.Secret), nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return Identity{}, ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.ID == "" {
		return Identity{}, ErrInvalidToken
	}
	return Identity{ID: claims.ID, Email: claims.Email}, nil
}

