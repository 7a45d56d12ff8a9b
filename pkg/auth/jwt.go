package auth

import (
	"errors"
	"time"

	"github.com/GlebRadaev/hyperacing/internal/domain"
	"github.com/golang-jwt/jwt"
)

//go:generate mockgen -source=jwt.go -destination=mock_jwt.go -package=auth

const Issuer = "hyperacing"

type JWTServiceInterface interface {
	GenerateJWT(userID, sessionID string, expirationTime time.Time) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

// Claims carries the user id and, in the standard jti claim, the id of the
// session the token was issued for.
type Claims struct {
	UserID string `json:"user_id"`
	jwt.StandardClaims
}

type JWTService struct {
	secret []byte
}

func NewJWTService(secret string) *JWTService {
	return &JWTService{secret: []byte(secret)}
}

func (s *JWTService) GenerateJWT(userID, sessionID string, expirationTime time.Time) (string, error) {
	if len(s.secret) == 0 {
		return "", domain.ErrNotConfigured
	}
	claims := Claims{
		UserID: userID,
		StandardClaims: jwt.StandardClaims{
			Id:        sessionID,
			ExpiresAt: expirationTime.Unix(),
			IssuedAt:  time.Now().Unix(),
			Issuer:    Issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	if len(s.secret) == 0 {
		return nil, domain.ErrNotConfigured
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || claims.UserID == "" || claims.Id == "" || claims.Issuer != Issuer {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}
