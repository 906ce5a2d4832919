package repositories

import (
	"context"

	"github.com/rafabene/plazamap-backend/internal/domain/entities"
)

// UserRepository define a interface para persistência de usuários.
// Não há Update: a role é imutável e o cadastro não tem perfil editável.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	FindByID(ctx context.Context, id string) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
}
