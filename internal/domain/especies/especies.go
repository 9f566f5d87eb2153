package especies

import (
	"context"

	"vet-clinic-records/internal/domain/validate"
)

// Especie es la entrada del catálogo de especies (Perro, Gato, ...).
type Especie struct {
	ID     int64
	Nombre string
}

type Repository interface {
	Create(ctx context.Context, e Especie) (int64, error)
	// GetByID retorna la especie activa con ese id, o nil.
	GetByID(ctx context.Context, id int64) (*Especie, error)
	GetByNombre(ctx context.Context, nombre string) (*Especie, error)
	// ListActive ordena por nombre.
	ListActive(ctx context.Context) ([]Especie, error)
	Deactivate(ctx context.Context, id int64) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create normaliza el nombre y evita duplicados activos.
func (s *Service) Create(ctx context.Context, nombre string) (Especie, error) {
	norm, err := validate.NormalizeNombre(nombre, "nombreEspecie")
	if err != nil {
		return Especie{}, err
	}

	existente, err := s.repo.GetByNombre(ctx, norm)
	if err != nil {
		return Especie{}, err
	}
	if existente != nil {
		return Especie{}, validate.Errorf("nombreEspecie", "Ya existe una especie activa con ese nombre")
	}

	e := Especie{Nombre: norm}
	id, err := s.repo.Create(ctx, e)
	if err != nil {
		return Especie{}, err
	}
	e.ID = id
	return e, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*Especie, error) {
	if err := validate.RequireID(id, "idEspecie"); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetByNombre(ctx context.Context, nombre string) (*Especie, error) {
	norm, err := validate.NormalizeNombre(nombre, "nombreEspecie")
	if err != nil {
		return nil, err
	}
	return s.repo.GetByNombre(ctx, norm)
}

func (s *Service) ListActive(ctx context.Context) ([]Especie, error) {
	return s.repo.ListActive(ctx)
}

func (s *Service) Deactivate(ctx context.Context, id int64) error {
	if err := validate.RequireID(id, "idEspecie"); err != nil {
		return err
	}
	return s.repo.Deactivate(ctx, id)
}
