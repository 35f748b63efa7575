package usecase

import (
	"errors"
	"time"

	authdto "github.com/kranuabs13/Emailtrackmaster/internal/auth/dto"
	"github.com/kranuabs13/Emailtrackmaster/pkg/config"

	"github.com/golang-jwt/jwt/v5"
)

// AuthUsecase issues and validates taskpane session tokens. The Outlook host
// vouches for the mailbox address, so a session is created from the address
// alone; the token only binds subsequent event calls to that mailbox.
type AuthUsecase interface {
	CreateSession(req *authdto.SessionRequest) (*authdto.TokenResponse, error)
	// ValidateToken returns the mailbox address the token was issued for
	ValidateToken(token string) (string, error)
}

// authUsecase implements AuthUsecase
type authUsecase struct {
	config *config.Config
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(cfg *config.Config) AuthUsecase {
	return &authUsecase{config: cfg}
}

type sessionClaims struct {
	UserEmail string `json:"user_email"`
	jwt.RegisteredClaims
}

func (u *authUsecase) CreateSession(req *authdto.SessionRequest) (*authdto.TokenResponse, error) {
	now := time.Now()
	claims := sessionClaims{
		UserEmail: req.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   req.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(u.config.JWTExpiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(u.config.JWTSecret))
	if err != nil {
		return nil, err
	}

	return &authdto.TokenResponse{
		AccessToken: signed,
		UserEmail:   req.Email,
	}, nil
}

func (u *authUsecase) ValidateToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &sessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(u.config.JWTSecret), nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(*sessionClaims)
	if !ok || !token.Valid || claims.UserEmail == "" {
		return "", errors.New("invalid token")
	}
	return claims.UserEmail, nil
}
