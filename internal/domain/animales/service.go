package animales

import (
	"context"
	"time"

	"vet-clinic-records/internal/domain/validate"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

type CreateInput struct {
	IDTenedor int64
	IDEspecie int64
	IDRaza    *int64

	Nombre string
	Sexo   string

	FechaNacimientoEst string
	EdadEstimadaMeses  *int

	Color              string
	EstadoReproductivo string
	NumeroMicrochip    string

	ViveDentroCasa  *bool
	ConviveConOtros []string
	Observaciones   string
}

// Create aplica las reglas del módulo Animal:
//   - obligatorios: idTenedor, idEspecie, nombre
//   - sexo M/H/Desconocido (default Desconocido)
//   - fechaNacimientoEst y edadEstimadaMeses son excluyentes
//   - microchip único entre animales activos, si viene
//   - conviveConOtros contra lista controlada, guardado ordenado y sin duplicados
func (s *Service) Create(ctx context.Context, in CreateInput) (Animal, error) {
	if err := validate.RequireID(in.IDTenedor, "idTenedor"); err != nil {
		return Animal{}, err
	}
	if err := validate.RequireID(in.IDEspecie, "idEspecie"); err != nil {
		return Animal{}, err
	}
	if in.IDRaza != nil {
		if err := validate.RequireID(*in.IDRaza, "idRaza"); err != nil {
			return Animal{}, err
		}
	}

	nombre, err := validate.RequireText(in.Nombre, "nombre")
	if err != nil {
		return Animal{}, err
	}

	sexo := Sexo(validate.OptionalText(in.Sexo))
	if sexo == "" {
		sexo = SexoDesconocido
	}
	switch sexo {
	case SexoMacho, SexoHembra, SexoDesconocido:
	default:
		return Animal{}, validate.Errorf("sexo", "El campo 'sexo' debe ser 'M', 'H' o 'Desconocido'.")
	}

	fechaNac, err := validate.BirthDate(in.FechaNacimientoEst, "fechaNacimientoEst", s.now())
	if err != nil {
		return Animal{}, err
	}
	if err := validate.OptionalIntRange(in.EdadEstimadaMeses, "edadEstimadaMeses", 0, 300); err != nil {
		return Animal{}, err
	}
	if fechaNac != "" && in.EdadEstimadaMeses != nil {
		return Animal{}, validate.Errorf("fechaNacimientoEst",
			"Ingresa solo 'fechaNacimientoEst' o 'edadEstimadaMeses', no ambas.")
	}

	color, err := validate.OptionalTextMax(in.Color, "color", 60)
	if err != nil {
		return Animal{}, err
	}
	estadoRepr, err := validate.OptionalTextMax(in.EstadoReproductivo, "estadoReproductivo", 60)
	if err != nil {
		return Animal{}, err
	}

	microchip, err := validate.OptionalTextMax(in.NumeroMicrochip, "numeroMicrochip", 60)
	if err != nil {
		return Animal{}, err
	}
	if microchip != "" {
		existente, err := s.repo.GetByMicrochip(ctx, microchip)
		if err != nil {
			return Animal{}, err
		}
		if existente != nil {
			return Animal{}, validate.Errorf("numeroMicrochip",
				"Ya existe un animal activo con ese número de microchip.")
		}
	}

	convive, err := validate.NormalizeConvive(in.ConviveConOtros)
	if err != nil {
		return Animal{}, err
	}
	obs, err := validate.OptionalTextMax(in.Observaciones, "observaciones", 500)
	if err != nil {
		return Animal{}, err
	}

	a := Animal{
		IDTenedor:          in.IDTenedor,
		IDEspecie:          in.IDEspecie,
		IDRaza:             in.IDRaza,
		Nombre:             nombre,
		Sexo:               sexo,
		FechaNacimientoEst: fechaNac,
		EdadEstimadaMeses:  in.EdadEstimadaMeses,
		Color:              color,
		EstadoReproductivo: estadoRepr,
		NumeroMicrochip:    microchip,
		ViveDentroCasa:     in.ViveDentroCasa,
		ConviveConOtros:    convive,
		Observaciones:      obs,
	}

	id, err := s.repo.Create(ctx, a)
	if err != nil {
		return Animal{}, err
	}
	a.ID = id
	return a, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*Animal, error) {
	if err := validate.RequireID(id, "idAnimal"); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetByMicrochip(ctx context.Context, microchip string) (*Animal, error) {
	chip, err := validate.RequireText(microchip, "numeroMicrochip")
	if err != nil {
		return nil, err
	}
	return s.repo.GetByMicrochip(ctx, chip)
}

func (s *Service) ListActive(ctx context.Context) ([]Animal, error) {
	return s.repo.ListActive(ctx)
}

func (s *Service) ListByTenedor(ctx context.Context, idTenedor int64) ([]Animal, error) {
	if err := validate.RequireID(idTenedor, "idTenedor"); err != nil {
		return nil, err
	}
	return s.repo.ListByTenedor(ctx, idTenedor)
}

func (s *Service) Deactivate(ctx context.Context, id int64) error {
	if err := validate.RequireID(id, "idAnimal"); err != nil {
		return err
	}
	return s.repo.Deactivate(ctx, id)
}
