package atenciones

import (
	"context"

	"vet-clinic-records/internal/domain/animales"
	"vet-clinic-records/internal/domain/motivos"
	"vet-clinic-records/internal/domain/personal"
	"vet-clinic-records/internal/domain/validate"
)

// Resolvers de referencias. Los implementan los repositories hermanos y se
// inyectan por constructor; el service solo necesita "resolver activo por id".
type (
	AnimalResolver interface {
		GetByID(ctx context.Context, id int64) (*animales.Animal, error)
	}
	PersonalResolver interface {
		GetByID(ctx context.Context, id int64) (*personal.Personal, error)
	}
	MotivoResolver interface {
		GetByID(ctx context.Context, id int64) (*motivos.Motivo, error)
	}
)

type Service struct {
	repo     Repository
	animales AnimalResolver
	personal PersonalResolver
	motivos  MotivoResolver
}

func NewService(repo Repository, an AnimalResolver, pe PersonalResolver, mo MotivoResolver) *Service {
	return &Service{
		repo:     repo,
		animales: an,
		personal: pe,
		motivos:  mo,
	}
}

type CreateInput struct {
	IDAnimal         int64
	IDPersonal       int64
	IDMotivoConsulta int64

	FechaAtencion string

	Sintomas    string
	PesoKg      *float64
	Diagnostico string
	Tratamiento string

	Observaciones        string
	FechaControlSugerida string
	Lugar                string
}

// Create valida los obligatorios, el lugar y que las tres referencias
// resuelvan a filas activas antes de insertar (error legible antes que el
// error de constraint del store).
func (s *Service) Create(ctx context.Context, in CreateInput) (Atencion, error) {
	if err := validate.RequireID(in.IDAnimal, "idAnimal"); err != nil {
		return Atencion{}, err
	}
	if err := validate.RequireID(in.IDPersonal, "idPersonal"); err != nil {
		return Atencion{}, err
	}
	if err := validate.RequireID(in.IDMotivoConsulta, "idMotivoConsulta"); err != nil {
		return Atencion{}, err
	}

	fecha, err := validate.Date(in.FechaAtencion, "fechaAtencion", true)
	if err != nil {
		return Atencion{}, err
	}
	fechaControl, err := validate.Date(in.FechaControlSugerida, "fechaControlSugerida", false)
	if err != nil {
		return Atencion{}, err
	}

	lugar := Lugar(validate.OptionalText(in.Lugar))
	if lugar == "" {
		lugar = LugarConsulta
	}
	switch lugar {
	case LugarConsulta, LugarOperativo, LugarDomicilio:
	default:
		return Atencion{}, validate.Errorf("lugarAtencion",
			"lugarAtencion inválido (Consulta/Operativo/Domicilio)")
	}

	if in.PesoKg != nil && *in.PesoKg < 0 {
		return Atencion{}, validate.Errorf("pesoKg", "pesoKg no puede ser negativo")
	}

	animal, err := s.animales.GetByID(ctx, in.IDAnimal)
	if err != nil {
		return Atencion{}, err
	}
	if animal == nil {
		return Atencion{}, validate.Errorf("idAnimal", "El animal indicado no existe o está inactivo")
	}

	pers, err := s.personal.GetByID(ctx, in.IDPersonal)
	if err != nil {
		return Atencion{}, err
	}
	if pers == nil {
		return Atencion{}, validate.Errorf("idPersonal", "El personal indicado no existe o está inactivo")
	}

	motivo, err := s.motivos.GetByID(ctx, in.IDMotivoConsulta)
	if err != nil {
		return Atencion{}, err
	}
	if motivo == nil {
		return Atencion{}, validate.Errorf("idMotivoConsulta",
			"El motivo de consulta indicado no existe o está inactivo")
	}

	a := Atencion{
		IDAnimal:             in.IDAnimal,
		IDPersonal:           in.IDPersonal,
		IDMotivoConsulta:     in.IDMotivoConsulta,
		FechaAtencion:        fecha,
		Sintomas:             validate.OptionalText(in.Sintomas),
		PesoKg:               in.PesoKg,
		Diagnostico:          validate.OptionalText(in.Diagnostico),
		Tratamiento:          validate.OptionalText(in.Tratamiento),
		Observaciones:        validate.OptionalText(in.Observaciones),
		FechaControlSugerida: fechaControl,
		Lugar:                lugar,
	}

	id, err := s.repo.Create(ctx, a)
	if err != nil {
		return Atencion{}, err
	}
	a.ID = id
	return a, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*Atencion, error) {
	if err := validate.RequireID(id, "idAtencion"); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListByAnimal(ctx context.Context, idAnimal int64) ([]Atencion, error) {
	if err := validate.RequireID(idAnimal, "idAnimal"); err != nil {
		return nil, err
	}
	return s.repo.ListByAnimal(ctx, idAnimal)
}

func (s *Service) ListByFecha(ctx context.Context, fecha string) ([]Atencion, error) {
	f, err := validate.Date(fecha, "fecha", true)
	if err != nil {
		return nil, err
	}
	return s.repo.ListByFecha(ctx, f)
}

func (s *Service) Deactivate(ctx context.Context, id int64) error {
	if err := validate.RequireID(id, "idAtencion"); err != nil {
		return err
	}
	return s.repo.Deactivate(ctx, id)
}
