package tenedores

import (
	"context"

	"vet-clinic-records/internal/domain/validate"
)

// Service aplica las reglas de negocio del módulo Tenedor antes de delegar
// en el Repository. No guarda estado entre llamadas.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateInput struct {
	RUT           string
	Nombres       string
	Apellidos     string
	Telefono      string
	Correo        string
	Direccion     string
	Sector        string
	Observaciones string
}

// Create valida obligatorios, normaliza el RUT y evita duplicados activos.
func (s *Service) Create(ctx context.Context, in CreateInput) (Tenedor, error) {
	rut, err := validate.NormalizeRUT(in.RUT)
	if err != nil {
		return Tenedor{}, err
	}

	nombres, err := validate.RequireText(in.Nombres, "nombres")
	if err != nil {
		return Tenedor{}, err
	}
	apellidos, err := validate.RequireText(in.Apellidos, "apellidos")
	if err != nil {
		return Tenedor{}, err
	}
	telefono, err := validate.RequireText(in.Telefono, "telefono")
	if err != nil {
		return Tenedor{}, err
	}
	sector, err := validate.RequireText(in.Sector, "sector")
	if err != nil {
		return Tenedor{}, err
	}

	// Pre-chequeo de unicidad sobre activos. Es best-effort: el índice único
	// parcial del store es la autoridad final ante una carrera.
	existente, err := s.repo.GetByRUT(ctx, rut)
	if err != nil {
		return Tenedor{}, err
	}
	if existente != nil {
		return Tenedor{}, validate.Errorf("rut", "Ya existe un tenedor activo con ese RUT.")
	}

	t := Tenedor{
		RUT:           rut,
		Nombres:       nombres,
		Apellidos:     apellidos,
		Telefono:      telefono,
		Correo:        validate.OptionalText(in.Correo),
		Direccion:     validate.OptionalText(in.Direccion),
		Sector:        sector,
		Observaciones: validate.OptionalText(in.Observaciones),
	}

	id, err := s.repo.Create(ctx, t)
	if err != nil {
		return Tenedor{}, err
	}
	t.ID = id
	return t, nil
}

// GetByRUT retorna el tenedor activo con ese RUT, o nil si no existe.
func (s *Service) GetByRUT(ctx context.Context, rut string) (*Tenedor, error) {
	norm, err := validate.NormalizeRUT(rut)
	if err != nil {
		return nil, err
	}
	return s.repo.GetByRUT(ctx, norm)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*Tenedor, error) {
	if err := validate.RequireID(id, "idTenedor"); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListActive(ctx context.Context) ([]Tenedor, error) {
	return s.repo.ListActive(ctx)
}

type UpdateInput struct {
	Nombres       string
	Apellidos     string
	Telefono      string
	Correo        string
	Direccion     string
	Sector        string
	Observaciones string
}

// Update modifica un tenedor activo. El RUT no se cambia por esta vía.
func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) error {
	if err := validate.RequireID(id, "idTenedor"); err != nil {
		return err
	}

	nombres, err := validate.RequireText(in.Nombres, "nombres")
	if err != nil {
		return err
	}
	apellidos, err := validate.RequireText(in.Apellidos, "apellidos")
	if err != nil {
		return err
	}
	telefono, err := validate.RequireText(in.Telefono, "telefono")
	if err != nil {
		return err
	}
	sector, err := validate.RequireText(in.Sector, "sector")
	if err != nil {
		return err
	}

	return s.repo.Update(ctx, Tenedor{
		ID:            id,
		Nombres:       nombres,
		Apellidos:     apellidos,
		Telefono:      telefono,
		Correo:        validate.OptionalText(in.Correo),
		Direccion:     validate.OptionalText(in.Direccion),
		Sector:        sector,
		Observaciones: validate.OptionalText(in.Observaciones),
	})
}

// Deactivate aplica la eliminación lógica; repetirla no es error.
func (s *Service) Deactivate(ctx context.Context, id int64) error {
	if err := validate.RequireID(id, "idTenedor"); err != nil {
		return err
	}
	return s.repo.Deactivate(ctx, id)
}
