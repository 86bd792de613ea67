package auth

import (
	"errors"
	"time"

	"github.com/crediario/backend/internal/infrastructure/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Role identifies what kind of caller a token represents
type Role string

const (
	// RoleAdmin is back-office staff with full access
	RoleAdmin Role = "admin"
	// RoleCustomer is a portal user scoped to their own data
	RoleCustomer Role = "customer"
)

// Common errors
var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrExpiredToken  = errors.New("token has expired")
	ErrInvalidClaims = errors.New("invalid token claims")
)

// Claims represents the JWT claims carried by issued tokens. CustomerID is
// set only for customer tokens and scopes every portal query.
type Claims struct {
	jwt.RegisteredClaims
	Role       Role   `json:"role"`
	Username   string `json:"username,omitempty"`
	CustomerID string `json:"customer_id,omitempty"`
}

// Token is an issued token with its expiry
type Token struct {
	Value     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// JWTService issues and validates tokens
type JWTService struct {
	secret     []byte
	expiration time.Duration
	issuer     string
}

// NewJWTService creates a new JWT service
func NewJWTService(cfg config.JWTConfig) *JWTService {
	return &JWTService{
		secret:     []byte(cfg.Secret),
		expiration: cfg.TokenExpiration,
		issuer:     cfg.Issuer,
	}
}

// GenerateAdminToken issues a token for back-office staff
func (s *JWTService) GenerateAdminToken(username string) (*Token, error) {
	return s.generate(&Claims{
		RegisteredClaims: s.registeredClaims(username),
		Role:             RoleAdmin,
		Username:         username,
	})
}

// GenerateCustomerToken issues a token scoped to one customer
func (s *JWTService) GenerateCustomerToken(customerID uuid.UUID) (*Token, error) {
	return s.generate(&Claims{
		RegisteredClaims: s.registeredClaims(customerID.String()),
		Role:             RoleCustomer,
		CustomerID:       customerID.String(),
	})
}

// ValidateToken parses and verifies a token, returning its claims
func (s *JWTService) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidClaims
	}
	if claims.Role != RoleAdmin && claims.Role != RoleCustomer {
		return nil, ErrInvalidClaims
	}
	return claims, nil
}

func (s *JWTService) registeredClaims(subject string) jwt.RegisteredClaims {
	now := time.Now()
	return jwt.RegisteredClaims{
		ID:        uuid.New().String(),
		Issuer:    s.issuer,
		Subject:   subject,
		Audience:  jwt.ClaimStrings{s.issuer},
		ExpiresAt: jwt.NewNumericDate(now.Add(s.expiration)),
		NotBefore: jwt.NewNumericDate(now),
		IssuedAt:  jwt.NewNumericDate(now),
	}
}

func (s *JWTService) generate(claims *Claims) (*Token, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return nil, err
	}
	return &Token{
		Value:     signed,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
