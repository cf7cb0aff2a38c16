package token

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken   = errors.New("invalid token")
	ErrWrongTokenType = errors.New("wrong token type")
	ErrEmptySecretKey = errors.New("secret key cannot be empty")
)

const (
	TypeAccess  = "access"
	TypeRefresh = "refresh"
)

// Claims carries the user id as the registered subject plus a type
// discriminator so refresh tokens cannot be replayed as access tokens.
type Claims struct {
	TokenType string `json:"type"`
	jwt.RegisteredClaims
}

type Config struct {
	Secret     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

type Service struct {
	config Config
}

func NewService(config Config) (*Service, error) {
	if config.Secret == "" {
		return nil, ErrEmptySecretKey
	}
	if config.AccessTTL <= 0 {
		config.AccessTTL = time.Hour
	}
	if config.RefreshTTL <= 0 {
		config.RefreshTTL = 30 * 24 * time.Hour
	}
	return &Service{config: config}, nil
}

type Pair struct {
	AccessToken  string
	RefreshToken string
}

func (s *Service) IssuePair(userID uint) (*Pair, error) {
	access, err := s.issue(userID, TypeAccess, s.config.AccessTTL)
	if err != nil {
		return nil, err
	}
	refresh, err := s.issue(userID, TypeRefresh, s.config.RefreshTTL)
	if err != nil {
		return nil, err
	}
	return &Pair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *Service) issue(userID uint, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.config.Secret))
}

// VerifyAccess parses a bearer token and returns the user id it was issued
// for. Refresh tokens are rejected here; they only identify a session for
// re-issuing, never grant API access.
func (s *Service) VerifyAccess(tokenString string) (uint, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(s.config.Secret), nil
	})
	if err != nil || !parsed.Valid {
		return 0, ErrInvalidToken
	}
	if claims.TokenType != TypeAccess {
		return 0, ErrWrongTokenType
	}
	id, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return 0, ErrInvalidToken
	}
	return uint(id), nil
}
