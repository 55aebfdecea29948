package utils

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Identity is the resolved caller attached to a request after credential
// verification: the user id plus the admin flag, nothing else.
type Identity struct {
	ID      uint
	IsAdmin bool
}

var ErrInvalidToken = errors.New("invalid or expired token")

const tokenLifetime = 24 * time.Hour

func secret() ([]byte, error) {
	s := os.Getenv("JWT_SECRET")
	if s == "" {
		return nil, errors.New("JWT_SECRET is not configured")
	}
	return []byte(s), nil
}

// GenerateToken issues a signed, self-contained credential embedding the
// user id and admin flag. No session state is kept server-side.
func GenerateToken(userID uint, isAdmin bool) (string, error) {
	key, err := secret()
	if err != nil {
		return "", err
	}
	claims := jwt.MapClaims{
		"sub":     userID,
		"isAdmin": isAdmin,
		"exp":     time.Now().Add(tokenLifetime).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(key)
}

// ParseToken validates the signature and expiry and extracts the Identity.
// It is a pure function of the credential and the signing secret.
func ParseToken(tokenString string) (Identity, error) {
	key, err := secret()
	if err != nil {
		return Identity{}, err
	}
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return key, nil
	})
	if err != nil || !token.Valid {
		return Identity{}, ErrInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, ErrInvalidToken
	}
	sub, ok := claims["sub"].(float64) // numbers come back as float64
	if !ok {
		return Identity{}, ErrInvalidToken
	}
	isAdmin, _ := claims["isAdmin"].(bool)
	return Identity{ID: uint(sub), IsAdmin: isAdmin}, nil
}
