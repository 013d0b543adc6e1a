package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

type Claims struct {
	UserID    uint      `json:"user_id"`
	SessionID string    `json:"session_id"`
	TokenType TokenType `json:"token_type"`
	jwt.RegisteredClaims
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

type JWTService struct {
	secret         []byte
	accessExpDays  int
	refreshExpDays int
}

func NewJWTService(secret string, accessExpDays, refreshExpDays int) *JWTService {
	return &JWTService{
		secret:         []byte(secret),
		accessExpDays:  accessExpDays,
		refreshExpDays: refreshExpDays,
	}
}

// Generate signs a fresh access/refresh pair bound to the given user and session.
func (s *JWTService) Generate(userID uint, sessionID string) (*TokenPair, error) {
	now := time.Now().UTC()

	accessTokenString, err := s.sign(userID, sessionID, TokenTypeAccess, now)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	refreshTokenString, err := s.sign(userID, sessionID, TokenTypeRefresh, now)
	if err != nil {
		return nil, fmt.Errorf("failed to sign refresh token: %w", err)
	}

	return &TokenPair{
		AccessToken:  accessTokenString,
		RefreshToken: refreshTokenString,
		ExpiresIn:    int64(s.accessExpDays) * 24 * 60 * 60,
	}, nil
}

func (s *JWTService) sign(userID uint, sessionID string, tokenType TokenType, now time.Time) (string, error) {
	expDays := s.accessExpDays
	if tokenType == TokenTypeRefresh {
		expDays = s.refreshExpDays
	}

	claims := &Claims{
		UserID:    userID,
		SessionID: sessionID,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expDays) * 24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

// VerifyAccess verifies the signature and rejects tokens whose type is not access.
func (s *JWTService) VerifyAccess(tokenString string) (*Claims, error) {
	claims, err := s.Verify(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != TokenTypeAccess {
		return nil, fmt.Errorf("token is not an access token")
	}
	return claims, nil
}

// VerifyRefresh verifies the signature and rejects tokens whose type is not refresh.
func (s *JWTService) VerifyRefresh(tokenString string) (*Claims, error) {
	claims, err := s.Verify(tokenString)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != TokenTypeRefresh {
		return nil, fmt.Errorf("token is not a refresh token")
	}
	return claims, nil
}

// RefreshExpiry reports when a refresh token issued at the given instant expires.
// Session records inherit this as their expiry.
func (s *JWTService) RefreshExpiry(issuedAt time.Time) time.Time {
	return issuedAt.Add(time.Duration(s.refreshExpDays) * 24 * time.Hour)
}
