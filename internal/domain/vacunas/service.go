package vacunas

import (
	"context"

	"vet-clinic-records/internal/domain/especies"
	"vet-clinic-records/internal/domain/validate"
)

type EspecieResolver interface {
	GetByID(ctx context.Context, id int64) (*especies.Especie, error)
}

// TipoService administra el catálogo de tipos de vacuna.
type TipoService struct {
	repo     TipoRepository
	especies EspecieResolver
}

func NewTipoService(repo TipoRepository, resolver EspecieResolver) *TipoService {
	return &TipoService{repo: repo, especies: resolver}
}

type CreateTipoInput struct {
	Nombre            string
	Descripcion       string
	IDEspecie         *int64
	IntervaloRecMeses *int
}

func (s *TipoService) Create(ctx context.Context, in CreateTipoInput) (TipoVacuna, error) {
	nombre, err := validate.RequireText(in.Nombre, "nombreVacuna")
	if err != nil {
		return TipoVacuna{}, err
	}

	// Duplicado por nombre, case-insensitive entre activos.
	existente, err := s.repo.GetByNombre(ctx, nombre)
	if err != nil {
		return TipoVacuna{}, err
	}
	if existente != nil {
		return TipoVacuna{}, validate.Errorf("nombreVacuna",
			"Ya existe un tipo de vacuna activo con ese nombre")
	}

	if in.IDEspecie != nil {
		if err := validate.RequireID(*in.IDEspecie, "idEspecie"); err != nil {
			return TipoVacuna{}, err
		}
		esp, err := s.especies.GetByID(ctx, *in.IDEspecie)
		if err != nil {
			return TipoVacuna{}, err
		}
		if esp == nil {
			return TipoVacuna{}, validate.Errorf("idEspecie",
				"La especie indicada no existe o está inactiva")
		}
	}

	if in.IntervaloRecMeses != nil && *in.IntervaloRecMeses < 0 {
		return TipoVacuna{}, validate.Errorf("intervaloRecMeses", "intervaloRecMeses no puede ser negativo")
	}

	t := TipoVacuna{
		Nombre:            nombre,
		Descripcion:       validate.OptionalText(in.Descripcion),
		IDEspecie:         in.IDEspecie,
		IntervaloRecMeses: in.IntervaloRecMeses,
	}
	id, err := s.repo.Create(ctx, t)
	if err != nil {
		return TipoVacuna{}, err
	}
	t.ID = id
	return t, nil
}

func (s *TipoService) GetByID(ctx context.Context, id int64) (*TipoVacuna, error) {
	if err := validate.RequireID(id, "idTipoVacuna"); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *TipoService) GetByNombre(ctx context.Context, nombre string) (*TipoVacuna, error) {
	n, err := validate.RequireText(nombre, "nombreVacuna")
	if err != nil {
		return nil, err
	}
	return s.repo.GetByNombre(ctx, n)
}

func (s *TipoService) ListActive(ctx context.Context) ([]TipoVacuna, error) {
	return s.repo.ListActive(ctx)
}

func (s *TipoService) ListByEspecie(ctx context.Context, idEspecie int64) ([]TipoVacuna, error) {
	if err := validate.RequireID(idEspecie, "idEspecie"); err != nil {
		return nil, err
	}
	return s.repo.ListByEspecie(ctx, idEspecie)
}

func (s *TipoService) Deactivate(ctx context.Context, id int64) error {
	if err := validate.RequireID(id, "idTipoVacuna"); err != nil {
		return err
	}
	return s.repo.Deactivate(ctx, id)
}

// AplicadaService registra las vacunas puestas en cada atención.
type AplicadaService struct {
	repo AplicadaRepository
}

func NewAplicadaService(repo AplicadaRepository) *AplicadaService {
	return &AplicadaService{repo: repo}
}

type CreateAplicadaInput struct {
	IDAtencion   int64
	IDTipoVacuna int64

	FechaAplicacion   string
	FechaProximaDosis string
	Dosis             string
	Lote              string
	Observaciones     string
}

func (s *AplicadaService) Create(ctx context.Context, in CreateAplicadaInput) (VacunaAplicada, error) {
	if err := validate.RequireID(in.IDAtencion, "idAtencion"); err != nil {
		return VacunaAplicada{}, err
	}
	if err := validate.RequireID(in.IDTipoVacuna, "idTipoVacuna"); err != nil {
		return VacunaAplicada{}, err
	}

	fecha, err := validate.Date(in.FechaAplicacion, "fechaAplicacion", true)
	if err != nil {
		return VacunaAplicada{}, err
	}
	proxima, err := validate.Date(in.FechaProximaDosis, "fechaProximaDosis", false)
	if err != nil {
		return VacunaAplicada{}, err
	}

	v := VacunaAplicada{
		IDAtencion:        in.IDAtencion,
		IDTipoVacuna:      in.IDTipoVacuna,
		FechaAplicacion:   fecha,
		FechaProximaDosis: proxima,
		Dosis:             validate.OptionalText(in.Dosis),
		Lote:              validate.OptionalText(in.Lote),
		Observaciones:     validate.OptionalText(in.Observaciones),
	}
	id, err := s.repo.Create(ctx, v)
	if err != nil {
		return VacunaAplicada{}, err
	}
	v.ID = id
	return v, nil
}

func (s *AplicadaService) GetByID(ctx context.Context, id int64) (*VacunaAplicada, error) {
	if err := validate.RequireID(id, "idVacunaAplicada"); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *AplicadaService) ListByAtencion(ctx context.Context, idAtencion int64) ([]VacunaAplicada, error) {
	if err := validate.RequireID(idAtencion, "idAtencion"); err != nil {
		return nil, err
	}
	return s.repo.ListByAtencion(ctx, idAtencion)
}

func (s *AplicadaService) ListAllActive(ctx context.Context) ([]VacunaAplicada, error) {
	return s.repo.ListAllActive(ctx)
}

func (s *AplicadaService) Deactivate(ctx context.Context, id int64) error {
	if err := validate.RequireID(id, "idVacunaAplicada"); err != nil {
		return err
	}
	return s.repo.Deactivate(ctx, id)
}
