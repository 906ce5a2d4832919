package repositories

import (
	"context"

	"github.com/rafabene/plazamap-backend/internal/domain/entities"
)

// PointRepository define a interface para persistência de pontos
type PointRepository interface {
	// ListAll retorna todos os pontos da coleção, sem paginação e sem
	// ordem garantida
	ListAll(ctx context.Context) ([]*entities.Point, error)
	// ListByOwner retorna os pontos de um vendedor (filtro no banco)
	ListByOwner(ctx context.Context, ownerID string) ([]*entities.Point, error)
	// CountByOwner conta pontos vivos de um vendedor. Dentro de uma
	// transação a contagem serializa criações concorrentes do mesmo
	// owner, para a checagem do limite ser atômica.
	CountByOwner(ctx context.Context, ownerID string) (int64, error)
	FindByID(ctx context.Context, id string) (*entities.Point, error)
	Create(ctx context.Context, point *entities.Point) error
	Update(ctx context.Context, point *entities.Point) error
	// Delete remove o ponto; id inexistente não é erro
	Delete(ctx context.Context, id string) error
}
