package auth

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const tokenLifetime = 30 * 24 * time.Hour

// Claims carried by an owner access token.
type Claims struct {
	UserID       uint
	RestaurantID uint
	Email        string
}

func jwtSecret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

// IssueToken signs an HS256 access token for an authenticated owner.
func IssueToken(claims Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":       float64(claims.UserID),
		"restaurant_id": float64(claims.RestaurantID),
		"email":         claims.Email,
		"exp":           time.Now().Add(tokenLifetime).Unix(),
	})
	return token.SignedString(jwtSecret())
}

// ParseToken validates a token string and returns its claims.
func ParseToken(tokenString string) (Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return jwtSecret(), nil
	})
	if err != nil || !token.Valid {
		return Claims{}, errors.New("invalid or expired token")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Claims{}, errors.New("invalid token claims")
	}

	userID, ok := mapClaims["user_id"].(float64)
	if !ok {
		return Claims{}, errors.New("token missing user_id")
	}
	restaurantID, _ := mapClaims["restaurant_id"].(float64)
	email, _ := mapClaims["email"].(string)

	return Claims{
		UserID:       uint(userID),
		RestaurantID: uint(restaurantID),
		Email:        email,
	}, nil
}
