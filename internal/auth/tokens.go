package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers every decode failure: bad signature, wrong
// algorithm, malformed token, or expired claims.
var ErrInvalidToken = errors.New("invalid token")

// TokenPair is what login, register and refresh hand back to the client.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// TokenService issues and decodes HS256-signed tokens with a symmetric
// secret fixed at process start.
type TokenService struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewTokenService(secret string, accessTTL, refreshTTL time.Duration) *TokenService {
	return &TokenService{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// IssueAccessToken signs an access token carrying the subject's email and id.
func (s *TokenService) IssueAccessToken(userID, email string) (string, error) {
	claims := jwt.MapClaims{
		"sub":     email,
		"user_id": userID,
		"exp":     time.Now().Add(s.accessTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// IssueRefreshToken signs a refresh token carrying only the subject's id.
func (s *TokenService) IssueRefreshToken(userID string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(s.refreshTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// IssuePair issues a fresh access and refresh token for the same subject.
func (s *TokenService) IssuePair(userID, email string) (TokenPair, error) {
	access, err := s.IssueAccessToken(userID, email)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := s.IssueRefreshToken(userID)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// Decode verifies the signature and expiry and returns the claim set.
func (s *TokenService) Decode(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %s", t.Method.Alg())
		}
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// UserID extracts the user_id claim, empty when absent or not a string.
func UserID(claims jwt.MapClaims) string {
	id, _ := claims["user_id"].(string)
	return id
}
