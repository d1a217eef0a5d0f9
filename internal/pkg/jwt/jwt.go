package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
)

// Claims represents JWT claims. UserType names the collection the account was read from.
type Claims struct {
	UserID   string `json:"userId"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	UserType string `json:"userType"`
	jwt.RegisteredClaims
}

// Config represents JWT configuration
type Config struct {
	Secret        string
	AccessExpiry  time.Duration
	Issuer        string
	SigningMethod jwt.SigningMethod
}

// DefaultConfig returns default JWT configuration
func DefaultConfig(secret string) *Config {
	return &Config{
		Secret:        secret,
		AccessExpiry:  24 * time.Hour,
		Issuer:        "charityhub-api",
		SigningMethod: jwt.SigningMethodHS256,
	}
}

// Manager signs and validates session tokens
type Manager struct {
	cfg *Config
	now func() time.Time
}

func NewManager(cfg *Config) *Manager {
	if cfg.SigningMethod == nil {
		cfg.SigningMethod = jwt.SigningMethodHS256
	}
	return &Manager{cfg: cfg, now: time.Now}
}

// GenerateToken generates a new signed token for an account
func (m *Manager) GenerateToken(userID, email, role, userType string) (string, error) {
	if m.cfg.Secret == "" {
		return "", errors.New("JWT secret is required")
	}

	now := m.now()
	claims := &Claims{
		UserID:   userID,
		Email:    email,
		Role:     role,
		UserType: userType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.cfg.AccessExpiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    m.cfg.Issuer,
			Subject:   userID,
		},
	}

	token := jwt.NewWithClaims(m.cfg.SigningMethod, claims)
	return token.SignedString([]byte(m.cfg.Secret))
}

// ValidateToken validates and parses a token. Expiry is reported as ErrExpiredToken,
// every other failure as ErrInvalidToken.
func (m *Manager) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(m.cfg.Secret), nil
	}, jwt.WithTimeFunc(m.now))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
