package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Issuer значение поля iss в токенах устройств
const Issuer = "docsync"

var (
	// ErrInvalidToken indicates a malformed, badly signed or expired token
	ErrInvalidToken = errors.New("invalid device token")
	// ErrEmptySecret indicates that no signing secret is configured
	ErrEmptySecret = errors.New("signing secret is empty")
)

// Claims представляет JWT claims токена устройства
type Claims struct {
	NodeID string `json:"node_id"`
	jwt.RegisteredClaims
}

// Expiry returns the expiration time, zero for a token without one
func (c *Claims) Expiry() time.Time {
	if c.ExpiresAt == nil {
		return time.Time{}
	}
	return c.ExpiresAt.Time
}

// Service issues and validates device tokens
type Service struct {
	now    func() time.Time
	secret []byte
	ttl    time.Duration
}

// NewService creates a new token service. ttl <= 0 issues tokens without expiry.
func NewService(secret string, ttl time.Duration) (*Service, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	return &Service{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}, nil
}

// Issue создает подписанный токен для узла
func (s *Service) Issue(nodeID string) (string, *Claims, error) {
	now := s.now()

	claims := &Claims{
		NodeID: nodeID,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   nodeID,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    Issuer,
		},
	}
	if s.ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(s.ttl))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, claims, nil
}

// Validate валидирует подпись, срок действия и издателя токена
func (s *Service) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		// Проверяем что используется правильный алгоритм подписи
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	},
		jwt.WithIssuer(Issuer),
		jwt.WithTimeFunc(s.now),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.NodeID == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// ParseUnverified читает claims без проверки подписи.
// Клиент не знает секрета и использует это только для отображения node id и срока действия.
func ParseUnverified(tokenString string) (*Claims, error) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if claims.NodeID == "" {
		return nil, fmt.Errorf("%w: missing node_id", ErrInvalidToken)
	}
	return claims, nil
}
