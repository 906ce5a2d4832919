package services

import (
	"context"
	"time"

	"github.com/rafabene/plazamap-backend/internal/domain/entities"
	"github.com/rafabene/plazamap-backend/internal/domain/errors"
	"github.com/rafabene/plazamap-backend/internal/domain/ports"
	"github.com/rafabene/plazamap-backend/internal/domain/repositories"
	"github.com/rafabene/plazamap-backend/internal/domain/valueobjects"
	"github.com/rafabene/plazamap-backend/internal/infrastructure/auth"
)

// AuthService contém a lógica de registro, login, logout e resolução
// de role
type AuthService struct {
	userRepo repositories.UserRepository
	tokens   *auth.Maker
	revoker  ports.TokenRevoker
	logger   ports.Logger
}

// NewAuthService cria um novo AuthService
func NewAuthService(
	userRepo repositories.UserRepository,
	tokens *auth.Maker,
	revoker ports.TokenRevoker,
	logger ports.Logger,
) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		tokens:   tokens,
		revoker:  revoker,
		logger:   logger,
	}
}

// RegisterInput representa os dados para registrar um usuário
type RegisterInput struct {
	Email    string
	Password string
	Role     entities.Role
}

// Register cria a conta com a role escolhida. A role nunca muda depois.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*entities.User, error) {
	s.logger.Info("registering user", "email", input.Email, "role", input.Role)

	if !entities.IsValidRole(input.Role) {
		return nil, errors.ErrInvalidRole
	}

	email, err := valueobjects.NewEmail(input.Email)
	if err != nil {
		return nil, errors.ErrInvalidEmail
	}

	// Validar se email já existe
	existing, err := s.userRepo.FindByEmail(ctx, email.String())
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.ErrEmailAlreadyExists
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	user := &entities.User{
		Email:        email,
		PasswordHash: hash,
		Role:         input.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("user registered", "user_id", user.ID, "role", user.Role)
	return user, nil
}

// Login verifica as credenciais e emite um token de acesso.
// Credencial errada e conta inexistente respondem o mesmo erro.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *entities.User, error) {
	normalized, err := valueobjects.NewEmail(email)
	if err != nil {
		return "", nil, errors.ErrInvalidCredentials
	}

	user, err := s.userRepo.FindByEmail(ctx, normalized.String())
	if err != nil {
		return "", nil, err
	}
	if user == nil {
		return "", nil, errors.ErrInvalidCredentials
	}

	if err := auth.CheckPassword(user.PasswordHash, password); err != nil {
		return "", nil, errors.ErrInvalidCredentials
	}

	token, _, err := s.tokens.Generate(user)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info("user logged in", "user_id", user.ID, "role", user.Role)
	return token, user, nil
}

// IssueToken emite um token de acesso para o usuário (usado pelo
// registro, que já entra logado)
func (s *AuthService) IssueToken(user *entities.User) (string, *auth.Claims, error) {
	return s.tokens.Generate(user)
}

// Logout revoga o token corrente até a expiração original
func (s *AuthService) Logout(ctx context.Context, claims *auth.Claims) error {
	ttl := time.Until(claims.ExpiresAt.Time)
	if err := s.revoker.Revoke(ctx, claims.ID, ttl); err != nil {
		return err
	}

	s.logger.Info("session revoked", "user_id", claims.Subject)
	return nil
}

// ResolveRole busca a role associada à identidade no banco.
// Retorna absent=true quando não há registro (conta apagada, por
// exemplo); o guard trata ausência igual a role errada.
func (s *AuthService) ResolveRole(ctx context.Context, userID string) (entities.Role, bool, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return "", false, err
	}
	if user == nil {
		return "", true, nil
	}
	return user.Role, false, nil
}

// GetUser busca um usuário por ID
func (s *AuthService) GetUser(ctx context.Context, id string) (*entities.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}
	return user, nil
}
