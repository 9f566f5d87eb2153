package motivos

import (
	"context"

	"vet-clinic-records/internal/domain/validate"
)

// Motivo es una entrada del catálogo de motivos de consulta.
type Motivo struct {
	ID          int64
	Nombre      string
	Descripcion string
}

type Repository interface {
	Create(ctx context.Context, m Motivo) (int64, error)
	GetByID(ctx context.Context, id int64) (*Motivo, error)
	GetByNombre(ctx context.Context, nombre string) (*Motivo, error)
	// ListActive ordena por nombreMotivo.
	ListActive(ctx context.Context) ([]Motivo, error)
	Deactivate(ctx context.Context, id int64) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateInput struct {
	Nombre      string
	Descripcion string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Motivo, error) {
	nombre, err := validate.NormalizeNombre(in.Nombre, "nombreMotivo")
	if err != nil {
		return Motivo{}, err
	}

	existente, err := s.repo.GetByNombre(ctx, nombre)
	if err != nil {
		return Motivo{}, err
	}
	if existente != nil {
		return Motivo{}, validate.Errorf("nombreMotivo", "Ya existe un motivo activo con ese nombre")
	}

	m := Motivo{
		Nombre:      nombre,
		Descripcion: validate.OptionalText(in.Descripcion),
	}
	id, err := s.repo.Create(ctx, m)
	if err != nil {
		return Motivo{}, err
	}
	m.ID = id
	return m, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*Motivo, error) {
	if err := validate.RequireID(id, "idMotivoConsulta"); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetByNombre(ctx context.Context, nombre string) (*Motivo, error) {
	norm, err := validate.NormalizeNombre(nombre, "nombreMotivo")
	if err != nil {
		return nil, err
	}
	return s.repo.GetByNombre(ctx, norm)
}

func (s *Service) ListActive(ctx context.Context) ([]Motivo, error) {
	return s.repo.ListActive(ctx)
}

func (s *Service) Deactivate(ctx context.Context, id int64) error {
	if err := validate.RequireID(id, "idMotivoConsulta"); err != nil {
		return err
	}
	return s.repo.Deactivate(ctx, id)
}
