package dto

import (
	"time"

	"github.com/rafabene/plazamap-backend/internal/domain/entities"
)

// RegisterRequest representa a requisição de registro.
// A role é escolhida no cadastro e não muda depois.
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6,max=72"`
	Role     string `json:"role" binding:"required,oneof=customer seller"`
}

// LoginRequest representa a requisição de login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserResponse representa a resposta de um usuário
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthResponse representa a resposta de login: o token e o usuário.
// O cliente usa a role para decidir o redirect (customer ou seller).
type AuthResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// ToUserResponse converte uma entidade User para UserResponse
func ToUserResponse(user *entities.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email.String(),
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt,
	}
}
