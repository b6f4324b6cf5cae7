package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
)

const tokenIssuer = "dream_nest"

type Claims struct {
	UserID string `json:"userID"`
	jwt.StandardClaims
}

var (
	jwtKey   []byte
	tokenTTL = 15 * time.Minute
)

// InitJWT sets the signing key and token lifetime used by GenerateJWT and
// ValidateJWT. It is called once at startup.
func InitJWT(key string, ttl time.Duration) {
	jwtKey = []byte(key)
	if ttl > 0 {
		tokenTTL = ttl
	}
}

func GenerateJWT(userID string) (string, error) {
	if len(jwtKey) == 0 {
		return "", errors.New("jwt key not configured")
	}
	expirationTime := time.Now().Add(tokenTTL)

	claims := &Claims{
		UserID: userID,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: expirationTime.Unix(),
			IssuedAt:  time.Now().Unix(),
			Issuer:    tokenIssuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString(jwtKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

func ValidateJWT(tokenStr string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return jwtKey, nil
	})

	if err != nil {
		var validationErr *jwt.ValidationError
		if errors.As(err, &validationErr) {
			if validationErr.Errors&jwt.ValidationErrorExpired != 0 {
				return nil, errors.New("token has expired")
			}
			if validationErr.Errors&jwt.ValidationErrorSignatureInvalid != 0 {
				return nil, errors.New("invalid token signature")
			}
		}
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
