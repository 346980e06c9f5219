package auth

import (
	"errors"
	"fmt"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalidToken возвращается для неподписанного, просроченного или битого токена
	ErrInvalidToken = errors.New("auth: invalid token")

	// ErrEmptySecret возвращается, если не задан секрет подписи
	ErrEmptySecret = errors.New("auth: empty signing secret")
)

// Claims полезная нагрузка токена, выданного провайдером идентификации
type Claims struct {
	Sub   string `json:"sub"`
	Role  string `json:"role"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// TokenManager подписывает и проверяет HS256 токены
type TokenManager struct {
	secret []byte
	issuer string
	now    func() time.Time
}

// NewTokenManager создает менеджер токенов
func NewTokenManager(secret, issuer string) (*TokenManager, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	return &TokenManager{secret: []byte(secret), issuer: issuer, now: time.Now}, nil
}

// CreateAccessToken выпускает токен. Используется в тестах и в clubctl для служебных токенов
func (m *TokenManager) CreateAccessToken(sub, role, email string, ttl time.Duration) (string, error) {
	now := m.now()
	claims := Claims{
		Sub:   sub,
		Role:  role,
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// ParseValidate проверяет подпись и срок действия токена
func (m *TokenManager) ParseValidate(tokenStr string) (*Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
	}
	if m.issuer != "" {
		opts = append(opts, jwt.WithIssuer(m.issuer))
	}

	t, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	c, ok := t.Claims.(*Claims)
	if !ok || !t.Valid {
		return nil, ErrInvalidToken
	}
	if c.Email == "" {
		return nil, fmt.Errorf("%w: email claim is required", ErrInvalidToken)
	}
	return c, nil
}
