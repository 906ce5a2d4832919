package http

import (
	errs "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/plazamap-backend/internal/domain/entities"
	"github.com/rafabene/plazamap-backend/internal/domain/errors"
	"github.com/rafabene/plazamap-backend/internal/handlers/dto"
	"github.com/rafabene/plazamap-backend/internal/handlers/middleware"
	"github.com/rafabene/plazamap-backend/internal/services"
)

// AuthHandler lida com registro, login, logout e identidade corrente
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler cria um novo AuthHandler
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register cria uma conta nova
// @Summary Registrar usuário
// @Description Cria a conta com email, senha e role (customer ou seller)
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Dados de registro"
// @Success 201 {object} dto.AuthResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response := dto.ValidationErrorResponseI18n(c, dto.ValidationErrorsFrom(err))
		c.JSON(http.StatusBadRequest, response)
		return
	}

	user, err := h.authService.Register(c.Request.Context(), services.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Role:     entities.Role(req.Role),
	})
	if err != nil {
		switch {
		case errs.Is(err, errors.ErrEmailAlreadyExists):
			c.JSON(http.StatusConflict, dto.ConflictErrorResponseI18n(c, "error.email_already_exists"))
		case errs.Is(err, errors.ErrInvalidEmail), errs.Is(err, errors.ErrInvalidRole):
			c.JSON(http.StatusUnprocessableEntity, dto.UnprocessableErrorResponseI18n(c, err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
		}
		return
	}

	// Registro já emite o token: o cliente segue direto para a home da role
	token, _, err := h.authService.IssueToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
		return
	}

	c.JSON(http.StatusCreated, dto.AuthResponse{
		Token: token,
		User:  dto.ToUserResponse(user),
	})
}

// Login autentica o usuário
// @Summary Login
// @Description Verifica as credenciais e emite o token de acesso
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credenciais"
// @Success 200 {object} dto.AuthResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response := dto.ValidationErrorResponseI18n(c, dto.ValidationErrorsFrom(err))
		c.JSON(http.StatusBadRequest, response)
		return
	}

	token, user, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errs.Is(err, errors.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		Token: token,
		User:  dto.ToUserResponse(user),
	})
}

// Logout revoga a sessão corrente
// @Summary Logout
// @Description Revoga o token corrente; requisições seguintes com ele são negadas
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 204
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c))
		return
	}

	if err := h.authService.Logout(c.Request.Context(), claims); err != nil {
		c.JSON(http.StatusInternalServerError, dto.InternalErrorResponseI18n(c))
		return
	}

	c.Status(http.StatusNoContent)
}

// Me retorna a identidade corrente com a role resolvida do banco
// @Summary Identidade corrente
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.UnauthorizedErrorResponseI18n(c))
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}
