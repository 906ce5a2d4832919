package services

import (
	"context"
	errs "errors"
	"fmt"
	"io"
	"testing"

	"github.com/rafabene/plazamap-backend/internal/domain/entities"
	"github.com/rafabene/plazamap-backend/internal/domain/errors"
	"github.com/rafabene/plazamap-backend/internal/infrastructure/logging"
)

// fakePointRepo guarda pontos em memória para os testes de serviço
type fakePointRepo struct {
	points  map[string]*entities.Point
	nextID  int
	failing bool
}

func newFakePointRepo() *fakePointRepo {
	return &fakePointRepo{points: make(map[string]*entities.Point)}
}

func (r *fakePointRepo) ListAll(_ context.Context) ([]*entities.Point, error) {
	if r.failing {
		return nil, errs.New("storage unavailable")
	}
	result := make([]*entities.Point, 0, len(r.points))
	for _, p := range r.points {
		result = append(result, p)
	}
	return result, nil
}

func (r *fakePointRepo) ListByOwner(_ context.Context, ownerID string) ([]*entities.Point, error) {
	result := make([]*entities.Point, 0)
	for _, p := range r.points {
		if p.OwnerID == ownerID {
			result = append(result, p)
		}
	}
	return result, nil
}

func (r *fakePointRepo) CountByOwner(_ context.Context, ownerID string) (int64, error) {
	var count int64
	for _, p := range r.points {
		if p.OwnerID == ownerID {
			count++
		}
	}
	return count, nil
}

func (r *fakePointRepo) FindByID(_ context.Context, id string) (*entities.Point, error) {
	return r.points[id], nil
}

func (r *fakePointRepo) Create(_ context.Context, point *entities.Point) error {
	r.nextID++
	point.ID = fmt.Sprintf("point-%d", r.nextID)
	r.points[point.ID] = point
	return nil
}

func (r *fakePointRepo) Update(_ context.Context, point *entities.Point) error {
	r.points[point.ID] = point
	return nil
}

func (r *fakePointRepo) Delete(_ context.Context, id string) error {
	delete(r.points, id)
	return nil
}

// fakeUoW executa a função direto, sem transação real
type fakeUoW struct{}

func (f *fakeUoW) Begin(ctx context.Context) (context.Context, error) { return ctx, nil }
func (f *fakeUoW) Commit(_ context.Context) error                     { return nil }
func (f *fakeUoW) Rollback(_ context.Context) error                   { return nil }
func (f *fakeUoW) WithTransaction(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

// fakeObjectStore registra as chamadas de Put/Remove
type fakeObjectStore struct {
	putCalls    []string
	removeCalls []string
	removeErr   error
	baseURL     string
}

func (f *fakeObjectStore) Put(_ context.Context, path string, _ io.Reader, _ int64, _ string) (string, error) {
	f.putCalls = append(f.putCalls, path)
	return f.baseURL + "/" + path, nil
}

func (f *fakeObjectStore) Remove(_ context.Context, url string) error {
	f.removeCalls = append(f.removeCalls, url)
	return f.removeErr
}

func newTestPointService() (*PointService, *fakePointRepo, *fakeObjectStore) {
	repo := newFakePointRepo()
	store := &fakeObjectStore{baseURL: "http://storage.local/points-bucket"}
	service := NewPointService(repo, &fakeUoW{}, store, logging.NewSlogLogger("error"))
	return service, repo, store
}

func createTestPoint(t *testing.T, service *PointService, ownerID, category string) *entities.Point {
	t.Helper()

	point, err := service.Create(context.Background(), CreatePointInput{
		OwnerID:  ownerID,
		Lat:      6.2442,
		Lng:      -75.5812,
		Category: category,
	})
	if err != nil {
		t.Fatalf("failed to create point: %v", err)
	}
	return point
}

func TestPointService_Create(t *testing.T) {
	t.Run("cria ponto com placeholders quando título e descrição vêm vazios", func(t *testing.T) {
		service, _, _ := newTestPointService()

		point := createTestPoint(t, service, "seller-1", "")

		if point.Title != entities.DefaultPointTitle {
			t.Errorf("esperava título %q, recebeu %q", entities.DefaultPointTitle, point.Title)
		}
		if point.Description != entities.DefaultPointDescription {
			t.Errorf("esperava descrição %q, recebeu %q", entities.DefaultPointDescription, point.Description)
		}
		if point.Category != entities.DefaultCategoryID {
			t.Errorf("esperava categoria %q, recebeu %q", entities.DefaultCategoryID, point.Category)
		}
	})

	t.Run("respeita o limite de pontos por vendedor", func(t *testing.T) {
		service, _, _ := newTestPointService()

		for i := 0; i < entities.MaxPointsPerOwner; i++ {
			createTestPoint(t, service, "seller-1", "")
		}

		_, err := service.Create(context.Background(), CreatePointInput{
			OwnerID: "seller-1",
			Lat:     6.25,
			Lng:     -75.58,
		})

		if !errs.Is(err, errors.ErrPointLimitReached) {
			t.Errorf("esperava ErrPointLimitReached, recebeu %v", err)
		}
	})

	t.Run("limite é por vendedor, não global", func(t *testing.T) {
		service, _, _ := newTestPointService()

		for i := 0; i < entities.MaxPointsPerOwner; i++ {
			createTestPoint(t, service, "seller-1", "")
		}

		if _, err := service.Create(context.Background(), CreatePointInput{
			OwnerID: "seller-2",
			Lat:     6.25,
			Lng:     -75.58,
		}); err != nil {
			t.Errorf("outro vendedor não devia ser bloqueado: %v", err)
		}
	})

	t.Run("rejeita categoria desconhecida", func(t *testing.T) {
		service, _, _ := newTestPointService()

		_, err := service.Create(context.Background(), CreatePointInput{
			OwnerID:  "seller-1",
			Lat:      6.25,
			Lng:      -75.58,
			Category: "naves-espaciais",
		})

		if !errs.Is(err, errors.ErrInvalidCategory) {
			t.Errorf("esperava ErrInvalidCategory, recebeu %v", err)
		}
	})

	t.Run("rejeita coordenadas fora do intervalo", func(t *testing.T) {
		service, _, _ := newTestPointService()

		_, err := service.Create(context.Background(), CreatePointInput{
			OwnerID: "seller-1",
			Lat:     91,
			Lng:     0,
		})

		if err == nil {
			t.Fatal("esperava erro de validação")
		}
		var domainErr *errors.DomainError
		if !errs.As(err, &domainErr) {
			t.Errorf("esperava DomainError, recebeu %T", err)
		}
	})
}

func TestPointService_ListAll(t *testing.T) {
	t.Run("filtra por categoria e preserva o resto", func(t *testing.T) {
		service, _, _ := newTestPointService()

		createTestPoint(t, service, "seller-1", "restaurant")
		createTestPoint(t, service, "seller-1", "store")
		createTestPoint(t, service, "seller-2", "restaurant")
		createTestPoint(t, service, "seller-3", "education")
		createTestPoint(t, service, "seller-4", "")

		filtered, err := service.ListAll(context.Background(), "restaurant")
		if err != nil {
			t.Fatalf("ListAll falhou: %v", err)
		}
		if len(filtered) != 2 {
			t.Errorf("esperava 2 pontos de restaurante, recebeu %d", len(filtered))
		}

		all, err := service.ListAll(context.Background(), "all")
		if err != nil {
			t.Fatalf("ListAll falhou: %v", err)
		}
		if len(all) != 5 {
			t.Errorf("'all' devia listar tudo, recebeu %d", len(all))
		}
	})

	t.Run("categoria sem pontos retorna lista vazia, não erro", func(t *testing.T) {
		service, _, _ := newTestPointService()
		createTestPoint(t, service, "seller-1", "education")

		filtered, err := service.ListAll(context.Background(), "health")
		if err != nil {
			t.Fatalf("ListAll falhou: %v", err)
		}
		if len(filtered) != 0 {
			t.Errorf("esperava lista vazia, recebeu %d pontos", len(filtered))
		}
	})
}

func TestPointService_Update(t *testing.T) {
	t.Run("atualiza campos editáveis e faz trim", func(t *testing.T) {
		service, _, _ := newTestPointService()
		point := createTestPoint(t, service, "seller-1", "")

		updated, err := service.Update(context.Background(), "seller-1", point.ID, UpdatePointInput{
			Title:       "  Arepas Doña Marta  ",
			Description: " Las mejores de la ciudad ",
			Phone:       "+57 300 123 4567",
			Category:    "restaurant",
		})
		if err != nil {
			t.Fatalf("Update falhou: %v", err)
		}

		if updated.Title != "Arepas Doña Marta" {
			t.Errorf("título sem trim: %q", updated.Title)
		}
		if updated.Description != "Las mejores de la ciudad" {
			t.Errorf("descrição sem trim: %q", updated.Description)
		}
		if updated.Category != "restaurant" {
			t.Errorf("categoria não atualizada: %q", updated.Category)
		}
	})

	t.Run("mantém as coordenadas originais", func(t *testing.T) {
		service, _, _ := newTestPointService()
		point := createTestPoint(t, service, "seller-1", "")

		updated, err := service.Update(context.Background(), "seller-1", point.ID, UpdatePointInput{
			Title: "Novo título",
		})
		if err != nil {
			t.Fatalf("Update falhou: %v", err)
		}

		if updated.Lat != 6.2442 || updated.Lng != -75.5812 {
			t.Errorf("coordenadas mudaram: %f, %f", updated.Lat, updated.Lng)
		}
	})

	t.Run("rejeita título vazio na edição", func(t *testing.T) {
		service, _, _ := newTestPointService()
		point := createTestPoint(t, service, "seller-1", "")

		_, err := service.Update(context.Background(), "seller-1", point.ID, UpdatePointInput{
			Title: "   ",
		})

		if !errs.Is(err, errors.ErrEmptyTitle) {
			t.Errorf("esperava ErrEmptyTitle, recebeu %v", err)
		}
	})

	t.Run("nega edição de quem não é dono", func(t *testing.T) {
		service, _, _ := newTestPointService()
		point := createTestPoint(t, service, "seller-1", "")

		_, err := service.Update(context.Background(), "seller-2", point.ID, UpdatePointInput{
			Title: "Hijacked",
		})

		if !errs.Is(err, errors.ErrNotPointOwner) {
			t.Errorf("esperava ErrNotPointOwner, recebeu %v", err)
		}
	})

	t.Run("ponto inexistente retorna not found", func(t *testing.T) {
		service, _, _ := newTestPointService()

		_, err := service.Update(context.Background(), "seller-1", "missing", UpdatePointInput{
			Title: "Qualquer",
		})

		if !errs.Is(err, errors.ErrPointNotFound) {
			t.Errorf("esperava ErrPointNotFound, recebeu %v", err)
		}
	})
}

func TestPointService_Delete(t *testing.T) {
	t.Run("exclui e libera vaga para criar de novo", func(t *testing.T) {
		service, repo, _ := newTestPointService()
		point := createTestPoint(t, service, "seller-1", "")
		createTestPoint(t, service, "seller-1", "")

		if err := service.Delete(context.Background(), "seller-1", point.ID); err != nil {
			t.Fatalf("Delete falhou: %v", err)
		}
		if _, ok := repo.points[point.ID]; ok {
			t.Error("ponto ainda existe depois do delete")
		}

		// A vaga ficou livre
		createTestPoint(t, service, "seller-1", "")
	})

	t.Run("id já excluído é no-op", func(t *testing.T) {
		service, _, _ := newTestPointService()

		if err := service.Delete(context.Background(), "seller-1", "missing"); err != nil {
			t.Errorf("exclusão idempotente devia retornar nil, recebeu %v", err)
		}
	})

	t.Run("nega exclusão de quem não é dono", func(t *testing.T) {
		service, _, _ := newTestPointService()
		point := createTestPoint(t, service, "seller-1", "")

		err := service.Delete(context.Background(), "seller-2", point.ID)

		if !errs.Is(err, errors.ErrNotPointOwner) {
			t.Errorf("esperava ErrNotPointOwner, recebeu %v", err)
		}
	})

	t.Run("remove a imagem associada junto com o ponto", func(t *testing.T) {
		service, repo, store := newTestPointService()
		point := createTestPoint(t, service, "seller-1", "")

		url := "http://storage.local/points-bucket/points/" + point.ID + "/1_foto.jpg"
		point.ImageURL = &url
		repo.points[point.ID] = point

		if err := service.Delete(context.Background(), "seller-1", point.ID); err != nil {
			t.Fatalf("Delete falhou: %v", err)
		}

		if len(store.removeCalls) != 1 || store.removeCalls[0] != url {
			t.Errorf("imagem não foi removida: %v", store.removeCalls)
		}
	})

	t.Run("falha na remoção da imagem não impede a exclusão", func(t *testing.T) {
		service, repo, store := newTestPointService()
		store.removeErr = errs.New("bucket offline")
		point := createTestPoint(t, service, "seller-1", "")

		url := "http://storage.local/points-bucket/points/" + point.ID + "/1_foto.jpg"
		point.ImageURL = &url
		repo.points[point.ID] = point

		if err := service.Delete(context.Background(), "seller-1", point.ID); err != nil {
			t.Errorf("exclusão devia seguir mesmo com storage fora: %v", err)
		}
		if _, ok := repo.points[point.ID]; ok {
			t.Error("ponto não foi excluído")
		}
	})
}
