package personal

import (
	"context"

	"vet-clinic-records/internal/domain/validate"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateInput struct {
	RUT             string
	Nombres         string
	Apellidos       string
	Cargo           string
	AreaTrabajo     string
	Telefono        string
	Correo          string
	FechaIngreso    string
	FechaNacimiento string
	Observaciones   string
}

// Create valida obligatorios (rut, nombres, apellidos, cargo), normaliza el
// RUT y evita duplicados entre activos.
func (s *Service) Create(ctx context.Context, in CreateInput) (Personal, error) {
	rut, err := validate.NormalizeRUT(in.RUT)
	if err != nil {
		return Personal{}, err
	}
	nombres, err := validate.RequireText(in.Nombres, "nombres")
	if err != nil {
		return Personal{}, err
	}
	apellidos, err := validate.RequireText(in.Apellidos, "apellidos")
	if err != nil {
		return Personal{}, err
	}
	cargo, err := validate.RequireText(in.Cargo, "cargo")
	if err != nil {
		return Personal{}, err
	}

	fechaIngreso, err := validate.Date(in.FechaIngreso, "fechaIngreso", false)
	if err != nil {
		return Personal{}, err
	}
	fechaNacimiento, err := validate.Date(in.FechaNacimiento, "fechaNacimiento", false)
	if err != nil {
		return Personal{}, err
	}

	existente, err := s.repo.GetByRUT(ctx, rut)
	if err != nil {
		return Personal{}, err
	}
	if existente != nil {
		return Personal{}, validate.Errorf("rut", "Ya existe un personal activo con ese RUT")
	}

	p := Personal{
		RUT:             rut,
		Nombres:         nombres,
		Apellidos:       apellidos,
		Cargo:           cargo,
		AreaTrabajo:     validate.OptionalText(in.AreaTrabajo),
		Telefono:        validate.OptionalText(in.Telefono),
		Correo:          validate.OptionalText(in.Correo),
		FechaIngreso:    fechaIngreso,
		FechaNacimiento: fechaNacimiento,
		Observaciones:   validate.OptionalText(in.Observaciones),
	}

	id, err := s.repo.Create(ctx, p)
	if err != nil {
		return Personal{}, err
	}
	p.ID = id
	return p, nil
}

func (s *Service) GetByRUT(ctx context.Context, rut string) (*Personal, error) {
	norm, err := validate.NormalizeRUT(rut)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByRUT(ctx, norm)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*Personal, error) {
	if err := validate.RequireID(id, "idPersonal"); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListActive(ctx context.Context) ([]Personal, error) {
	return s.repo.ListActive(ctx)
}

func (s *Service) Deactivate(ctx context.Context, id int64) error {
	if err := validate.RequireID(id, "idPersonal"); err != nil {
		return err
	}
	return s.repo.Deactivate(ctx, id)
}
