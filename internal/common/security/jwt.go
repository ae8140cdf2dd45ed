package security

import (
	"errors"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/golang-jwt/jwt/v5"
)

// TokenService mints and verifies the HS256 bearer tokens used by the
// expense API. A token carries only the username as subject plus the
// standard expiry; rotating the secret invalidates everything outstanding.
type TokenService struct {
	auth *jwtauth.JWTAuth
	ttl  time.Duration
}

func NewTokenService(secret []byte, ttl time.Duration) *TokenService {
	return &TokenService{
		auth: jwtauth.New("HS256", secret, nil),
		ttl:  ttl,
	}
}

// JWTAuth exposes the underlying verifier for the jwtauth middleware.
func (s *TokenService) JWTAuth() *jwtauth.JWTAuth {
	return s.auth
}

func (s *TokenService) Issue(username string) (string, error) {
	claims := jwt.MapClaims{
		"sub": username,
		"exp": time.Now().Add(s.ttl).Unix(),
		"iat": time.Now().Unix(),
	}
	_, tokenString, err := s.auth.Encode(claims)
	return tokenString, err
}

// Verify checks signature and expiry and returns the embedded username.
func (s *TokenService) Verify(tokenString string) (string, error) {
	token, err := jwtauth.VerifyToken(s.auth, tokenString)
	if err != nil {
		return "", err
	}
	username := token.Subject()
	if username == "" {
		return "", errors.New("sub claim is missing")
	}
	return username, nil
}

// SubjectFromClaims extracts the username from verified middleware claims.
func SubjectFromClaims(claims jwt.MapClaims) (string, error) {
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", errors.New("sub claim is missing or not a string")
	}
	return sub, nil
}
