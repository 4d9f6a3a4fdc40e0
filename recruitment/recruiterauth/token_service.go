package recruiterauth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/placedly/backend/pkg/errx"
	"github.com/placedly/backend/pkg/kernel"
)

// DefaultTokenDuration is how long a recruiter session token stays valid.
const DefaultTokenDuration = 24 * time.Hour

// RecruiterTokenService issues and validates recruiter session tokens
type RecruiterTokenService struct {
	secret   []byte
	duration time.Duration
}

// NewRecruiterTokenService creates a new token service signing with the
// given shared secret.
func NewRecruiterTokenService(secret string, duration time.Duration) *RecruiterTokenService {
	return &RecruiterTokenService{
		secret:   []byte(secret),
		duration: duration,
	}
}

// recruiterClaims is the JWT payload for recruiter sessions
type recruiterClaims struct {
	RecruiterID string `json:"recruiterId"`
	Email       string `json:"email"`
	jwt.RegisteredClaims
}

// GenerateToken issues a signed session token for a recruiter
func (s *RecruiterTokenService) GenerateToken(recruiterID kernel.RecruiterID, email kernel.Email) (string, error) {
	now := time.Now()
	claims := recruiterClaims{
		RecruiterID: recruiterID.String(),
		Email:       email.Normalized().String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   recruiterID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.duration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errx.Wrap(err, "failed to sign recruiter token", errx.TypeInternal)
	}
	return signed, nil
}

// RecruiterClaims is the validated identity carried by a session token
type RecruiterClaims struct {
	RecruiterID kernel.RecruiterID
	Email       kernel.Email
	ExpiresAt   time.Time
}

// ValidateToken parses and verifies a recruiter session token
func (s *RecruiterTokenService) ValidateToken(tokenString string) (*RecruiterClaims, error) {
	var claims recruiterClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired()
		}
		return nil, ErrInvalidToken().WithCause(err)
	}
	if !token.Valid || claims.RecruiterID == "" {
		return nil, ErrInvalidToken()
	}

	result := &RecruiterClaims{
		RecruiterID: kernel.RecruiterID(claims.RecruiterID),
		Email:       kernel.Email(claims.Email),
	}
	if claims.ExpiresAt != nil {
		result.ExpiresAt = claims.ExpiresAt.Time
	}
	return result, nil
}
