package http

import (
	authusecases "adminkit/internal/application/auth/usecases"
	"adminkit/internal/infrastructure/auth"
)

// jwtServiceAdapter bridges the infrastructure JWT service to the token
// types the application layer declares for itself.
type jwtServiceAdapter struct {
	*auth.JWTService
}

func (a *jwtServiceAdapter) Generate(userID uint, sessionID string) (*authusecases.TokenPair, error) {
	pair, err := a.JWTService.Generate(userID, sessionID)
	if err != nil {
		return nil, err
	}
	return &authusecases.TokenPair{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}

func (a *jwtServiceAdapter) VerifyRefresh(token string) (*authusecases.TokenClaims, error) {
	claims, err := a.JWTService.VerifyRefresh(token)
	if err != nil {
		return nil, err
	}
	return &authusecases.TokenClaims{
		UserID:    claims.UserID,
		SessionID: claims.SessionID,
	}, nil
}
