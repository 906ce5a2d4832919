package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/rafabene/plazamap-backend/internal/domain/entities"
)

// Claims são os dados da sessão carregados no JWT.
// O JTI (RegisteredClaims.ID) identifica o token na denylist de logout.
type Claims struct {
	Email                string `json:"email"`
	Role                 string `json:"role"`
	jwt.RegisteredClaims        // Claims padrão (sub, exp, iat, jti)
}

// Maker gera e valida tokens de acesso HS256
type Maker struct {
	secret string
	ttl    time.Duration
}

// NewMaker cria um Maker com o segredo e a expiração configurados
func NewMaker(secret, accessExpiry string) (*Maker, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt secret is required")
	}

	ttl, err := time.ParseDuration(accessExpiry)
	if err != nil {
		return nil, fmt.Errorf("invalid access expiry: %w", err)
	}

	return &Maker{secret: secret, ttl: ttl}, nil
}

// Generate cria um token de acesso para o usuário autenticado
func (m *Maker) Generate(user *entities.User) (string, *Claims, error) {
	now := time.Now()
	claims := &Claims{
		Email: user.Email.String(),
		Role:  string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(m.secret))
	if err != nil {
		return "", nil, err
	}

	return signed, claims, nil
}

// Parse valida assinatura e expiração e retorna as claims do token
func (m *Maker) Parse(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(_ *jwt.Token) (any, error) {
		return []byte(m.secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}
