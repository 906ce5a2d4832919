package entities

import (
	"errors"
	"time"

	"github.com/rafabene/plazamap-backend/internal/domain/valueobjects"
)

var (
	ErrInvalidUserData = errors.New("invalid user data")
)

// User representa um usuário do sistema.
// A role é definida no registro e nunca muda depois disso.
type User struct {
	ID           string
	Email        valueobjects.Email
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    *time.Time // Soft delete
}

// IsSeller verifica se o usuário é vendedor
func (u *User) IsSeller() bool {
	return u.Role == RoleSeller
}

// IsCustomer verifica se o usuário é cliente
func (u *User) IsCustomer() bool {
	return u.Role == RoleCustomer
}

// HasPermission verifica se o usuário tem uma permissão
func (u *User) HasPermission(permission Permission) bool {
	return u.Role.HasPermission(permission)
}

// IsDeleted verifica se o usuário foi deletado (soft delete)
func (u *User) IsDeleted() bool {
	return u.DeletedAt != nil
}

// SoftDelete marca o usuário como deletado
func (u *User) SoftDelete() {
	now := time.Now()
	u.DeletedAt = &now
}

// Validate valida regras de negócio da entidade User
func (u *User) Validate() error {
	if u.Email.String() == "" {
		return errors.New("email is required")
	}

	if u.PasswordHash == "" {
		return errors.New("password hash is required")
	}

	if !IsValidRole(u.Role) {
		return errors.New("invalid role")
	}

	return nil
}
