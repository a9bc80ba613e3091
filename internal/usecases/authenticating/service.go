package authenticating

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vfg2006/sales-forecast/internal/config"
	"github.com/vfg2006/sales-forecast/internal/domain"
	"github.com/vfg2006/sales-forecast/pkg/apiErrors"
)

const tokenTTL = 24 * time.Hour

// Authenticator valida e emite os tokens de acesso da API
type Authenticator interface {
	ValidateToken(tokenString string) (*domain.Claims, error)
	GenerateToken(userID, userName string, roleID int) (string, error)
}

type Service struct {
	secretKey []byte
	now       func() time.Time
}

func NewService(cfg *config.Config) Authenticator {
	return &Service{
		secretKey: []byte(cfg.SecretKey),
		now:       time.Now,
	}
}

// GenerateToken emite um token HS256 válido por 24 horas
func (s *Service) GenerateToken(userID, userName string, roleID int) (string, error) {
	claims := domain.Claims{
		UserID:     userID,
		UserName:   userName,
		UserRoleID: roleID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(s.now()),
			ExpiresAt: jwt.NewNumericDate(s.now().Add(tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, &AuthError{Err: ErrExpiredToken, Code: apiErrors.ErrExpiredToken}
		}
		return nil, &AuthError{Err: ErrInvalidToken, Code: apiErrors.ErrInvalidToken, Details: err.Error()}
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, &AuthError{Err: ErrInvalidToken, Code: apiErrors.ErrInvalidToken}
	}
	if claims.UserRoleID == 0 {
		return nil, &AuthError{Err: ErrMissingRole, Code: apiErrors.ErrInvalidToken}
	}

	return claims, nil
}
