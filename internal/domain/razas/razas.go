package razas

import (
	"context"

	"vet-clinic-records/internal/domain/especies"
	"vet-clinic-records/internal/domain/validate"
)

// Raza es una raza dentro de una especie. El nombre es único entre las razas
// activas de su especie (no de forma global).
type Raza struct {
	ID        int64
	IDEspecie int64
	Nombre    string
}

type Repository interface {
	Create(ctx context.Context, rz Raza) (int64, error)
	GetByID(ctx context.Context, id int64) (*Raza, error)
	// GetByNombreEnEspecie busca una raza activa por nombre dentro de una especie.
	GetByNombreEnEspecie(ctx context.Context, idEspecie int64, nombre string) (*Raza, error)
	// ListActive ordena por idEspecie, nombreRaza.
	ListActive(ctx context.Context) ([]Raza, error)
	// ListByEspecie ordena por nombreRaza.
	ListByEspecie(ctx context.Context, idEspecie int64) ([]Raza, error)
	Deactivate(ctx context.Context, id int64) error
}

// EspecieResolver resuelve una especie activa por id. Lo implementa el
// repository de especies; se inyecta para validar la referencia al crear.
type EspecieResolver interface {
	GetByID(ctx context.Context, id int64) (*especies.Especie, error)
}

type Service struct {
	repo     Repository
	especies EspecieResolver
}

func NewService(repo Repository, resolver EspecieResolver) *Service {
	return &Service{repo: repo, especies: resolver}
}

type CreateInput struct {
	IDEspecie int64
	Nombre    string
}

// Create exige una especie activa y evita nombres duplicados dentro de ella.
func (s *Service) Create(ctx context.Context, in CreateInput) (Raza, error) {
	if err := validate.RequireID(in.IDEspecie, "idEspecie"); err != nil {
		return Raza{}, err
	}

	esp, err := s.especies.GetByID(ctx, in.IDEspecie)
	if err != nil {
		return Raza{}, err
	}
	if esp == nil {
		return Raza{}, validate.Errorf("idEspecie", "La especie indicada no existe o está desactivada")
	}

	nombre, err := validate.NormalizeNombre(in.Nombre, "nombreRaza")
	if err != nil {
		return Raza{}, err
	}

	existente, err := s.repo.GetByNombreEnEspecie(ctx, in.IDEspecie, nombre)
	if err != nil {
		return Raza{}, err
	}
	if existente != nil {
		return Raza{}, validate.Errorf("nombreRaza", "Ya existe una raza activa con ese nombre para esa especie")
	}

	rz := Raza{IDEspecie: in.IDEspecie, Nombre: nombre}
	id, err := s.repo.Create(ctx, rz)
	if err != nil {
		return Raza{}, err
	}
	rz.ID = id
	return rz, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*Raza, error) {
	if err := validate.RequireID(id, "idRaza"); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListActive(ctx context.Context) ([]Raza, error) {
	return s.repo.ListActive(ctx)
}

func (s *Service) ListByEspecie(ctx context.Context, idEspecie int64) ([]Raza, error) {
	if err := validate.RequireID(idEspecie, "idEspecie"); err != nil {
		return nil, err
	}
	return s.repo.ListByEspecie(ctx, idEspecie)
}

func (s *Service) Deactivate(ctx context.Context, id int64) error {
	if err := validate.RequireID(id, "idRaza"); err != nil {
		return err
	}
	return s.repo.Deactivate(ctx, id)
}
