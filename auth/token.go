package auth

import (
	"fmt"
	"teammate-chat/domain/chat"
	"teammate-chat/errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "teammate-chat"

// CustomClaims defines the structure of the data stored inside the JWT.
type CustomClaims struct {
	UserID string   `json:"user_id"`
	Roles  []string `json:"roles"`
	jwt.RegisteredClaims
}

// TokenManager signs and validates session tokens. Tokens are issued by
// the account service in production; Generate exists for tooling and tests.
type TokenManager struct {
	secret   []byte
	duration time.Duration
}

func NewTokenManager(secret string, duration time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), duration: duration}
}

// GenerateToken creates a signed JWT for a participant.
func (m *TokenManager) GenerateToken(participant chat.ParticipantID, roles []string) (string, error) {
	now := time.Now()
	claims := &CustomClaims{
		UserID: string(participant),
		Roles:  roles,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.duration)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    issuer,
		},
	}

	// HS256 (HMAC with SHA256).
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// ValidateToken checks signature, algorithm and expiration, and returns
// the session the token stands for.
func (m *TokenManager) ValidateToken(tokenString string) (chat.SessionContext, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (any, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(issuer))
	if err != nil {
		return chat.SessionContext{}, fmt.Errorf("%w: %v", errors.ErrUnauthenticated, err)
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return chat.SessionContext{}, fmt.Errorf("%w: %v", errors.ErrUnauthenticated, jwt.ErrSignatureInvalid)
	}
	sc := chat.SessionContext{Participant: chat.ParticipantID(claims.UserID), Roles: claims.Roles}
	if !sc.Authenticated() {
		return chat.SessionContext{}, fmt.Errorf("%w: token has no subject", errors.ErrUnauthenticated)
	}
	return sc, nil
}
