package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/plazamap-backend/internal/domain/entities"
	domainerrors "github.com/rafabene/plazamap-backend/internal/domain/errors"
	"github.com/rafabene/plazamap-backend/internal/domain/ports"
	"github.com/rafabene/plazamap-backend/internal/domain/repositories"
	"github.com/rafabene/plazamap-backend/internal/infrastructure/auth"
)

const (
	// UserContextKey é a chave do usuário autenticado no contexto do Gin
	UserContextKey = "current_user"
	// ClaimsContextKey é a chave das claims do token no contexto do Gin
	ClaimsContextKey = "auth_claims"
)

// AuthMiddleware é o guard das rotas protegidas: autentica o token e
// resolve a role do banco a cada requisição (nenhum cache entre
// identidades)
type AuthMiddleware struct {
	tokens   *auth.Maker
	revoker  ports.TokenRevoker
	userRepo repositories.UserRepository
	logger   ports.Logger
}

// NewAuthMiddleware cria um novo AuthMiddleware
func NewAuthMiddleware(
	tokens *auth.Maker,
	revoker ports.TokenRevoker,
	userRepo repositories.UserRepository,
	logger ports.Logger,
) *AuthMiddleware {
	return &AuthMiddleware{
		tokens:   tokens,
		revoker:  revoker,
		userRepo: userRepo,
		logger:   logger,
	}
}

// Authenticate valida o Bearer token, verifica a denylist de logout e
// carrega o usuário (com a role atual) no contexto. Qualquer falha
// nega com 401. Identidade ausente e registro de role ausente não são
// distinguíveis para o cliente.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			m.deny(c)
			return
		}
		tokenStr := strings.TrimPrefix(header, "Bearer ")

		claims, err := m.tokens.Parse(tokenStr)
		if err != nil {
			m.deny(c)
			return
		}

		revoked, err := m.revoker.IsRevoked(c.Request.Context(), claims.ID)
		if err != nil {
			m.logger.Error("failed to check session denylist", "error", err)
			m.deny(c)
			return
		}
		if revoked {
			m.deny(c)
			return
		}

		// Resolver a role do banco, não do token: conta apagada ou
		// registro ausente nega na hora
		user, err := m.userRepo.FindByID(c.Request.Context(), claims.Subject)
		if err != nil {
			m.logger.Error("failed to load user for auth", "error", err)
			m.deny(c)
			return
		}
		if user == nil {
			m.deny(c)
			return
		}

		c.Set(UserContextKey, user)
		c.Set(ClaimsContextKey, claims)
		c.Next()
	}
}

// RequireRole libera a rota apenas para a role exigida. Role diferente
// responde igual a não autenticado, como o fluxo de login do produto.
func (m *AuthMiddleware) RequireRole(role entities.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok || user.Role != role {
			m.deny(c)
			return
		}
		c.Next()
	}
}

// deny encerra a requisição com 401 no formato RFC 7807
func (m *AuthMiddleware) deny(c *gin.Context) {
	baseURL := c.GetString("base_url")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"type":     baseURL + domainerrors.ProblemTypeUnauthorized,
		"title":    "Unauthorized",
		"status":   http.StatusUnauthorized,
		"instance": c.Request.URL.Path,
	})
}

// CurrentUser retorna o usuário autenticado do contexto
func CurrentUser(c *gin.Context) (*entities.User, bool) {
	value, exists := c.Get(UserContextKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*entities.User)
	return user, ok
}

// CurrentClaims retorna as claims do token do contexto
func CurrentClaims(c *gin.Context) (*auth.Claims, bool) {
	value, exists := c.Get(ClaimsContextKey)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*auth.Claims)
	return claims, ok
}
