package desparasitaciones

import (
	"context"
	"strings"
	"unicode"

	"vet-clinic-records/internal/domain/especies"
	"vet-clinic-records/internal/domain/validate"
)

type EspecieResolver interface {
	GetByID(ctx context.Context, id int64) (*especies.Especie, error)
}

// TipoService administra el catálogo de desparasitantes.
type TipoService struct {
	repo     TipoRepository
	especies EspecieResolver
}

func NewTipoService(repo TipoRepository, resolver EspecieResolver) *TipoService {
	return &TipoService{repo: repo, especies: resolver}
}

type CreateTipoInput struct {
	Nombre            string
	Tipo              string
	IDEspecie         *int64
	IntervaloRecMeses *int
}

func (s *TipoService) Create(ctx context.Context, in CreateTipoInput) (TipoDesparasitacion, error) {
	nombre, err := validate.RequireText(in.Nombre, "nombreDesparasitacion")
	if err != nil {
		return TipoDesparasitacion{}, err
	}

	tipo, err := normalizeTipo(in.Tipo)
	if err != nil {
		return TipoDesparasitacion{}, err
	}

	existente, err := s.repo.GetByNombre(ctx, nombre)
	if err != nil {
		return TipoDesparasitacion{}, err
	}
	if existente != nil {
		return TipoDesparasitacion{}, validate.Errorf("nombreDesparasitacion",
			"Ya existe un tipo de desparasitación activo con ese nombre")
	}

	if in.IDEspecie != nil {
		if err := validate.RequireID(*in.IDEspecie, "idEspecie"); err != nil {
			return TipoDesparasitacion{}, err
		}
		esp, err := s.especies.GetByID(ctx, *in.IDEspecie)
		if err != nil {
			return TipoDesparasitacion{}, err
		}
		if esp == nil {
			return TipoDesparasitacion{}, validate.Errorf("idEspecie",
				"La especie indicada no existe o está inactiva")
		}
	}

	if in.IntervaloRecMeses != nil && *in.IntervaloRecMeses < 0 {
		return TipoDesparasitacion{}, validate.Errorf("intervaloRecMeses", "intervaloRecMeses no puede ser negativo")
	}

	t := TipoDesparasitacion{
		Nombre:            nombre,
		Tipo:              tipo,
		IDEspecie:         in.IDEspecie,
		IntervaloRecMeses: in.IntervaloRecMeses,
	}
	id, err := s.repo.Create(ctx, t)
	if err != nil {
		return TipoDesparasitacion{}, err
	}
	t.ID = id
	return t, nil
}

// normalizeTipo acepta "interna", "EXTERNA", etc.; vacío queda en Mixta.
func normalizeTipo(raw string) (Tipo, error) {
	clean := strings.TrimSpace(raw)
	if clean == "" {
		return TipoMixta, nil
	}
	lower := strings.ToLower(clean)
	runes := []rune(lower)
	runes[0] = unicode.ToUpper(runes[0])
	switch t := Tipo(string(runes)); t {
	case TipoInterna, TipoExterna, TipoMixta:
		return t, nil
	}
	return "", validate.Errorf("tipo", "Tipo inválido. Use: Interna, Externa o Mixta")
}

func (s *TipoService) GetByID(ctx context.Context, id int64) (*TipoDesparasitacion, error) {
	if err := validate.RequireID(id, "idTipoDesparasitacion"); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *TipoService) GetByNombre(ctx context.Context, nombre string) (*TipoDesparasitacion, error) {
	n, err := validate.RequireText(nombre, "nombreDesparasitacion")
	if err != nil {
		return nil, err
	}
	return s.repo.GetByNombre(ctx, n)
}

func (s *TipoService) ListActive(ctx context.Context) ([]TipoDesparasitacion, error) {
	return s.repo.ListActive(ctx)
}

func (s *TipoService) Deactivate(ctx context.Context, id int64) error {
	if err := validate.RequireID(id, "idTipoDesparasitacion"); err != nil {
		return err
	}
	return s.repo.Deactivate(ctx, id)
}

// AplicadaService registra las desparasitaciones hechas en cada atención.
type AplicadaService struct {
	repo AplicadaRepository
}

func NewAplicadaService(repo AplicadaRepository) *AplicadaService {
	return &AplicadaService{repo: repo}
}

type CreateAplicadaInput struct {
	IDAtencion            int64
	IDTipoDesparasitacion int64

	FechaAplicacion   string
	FechaProximaDosis string
	Dosis             string
	Lote              string
	Observaciones     string
}

func (s *AplicadaService) Create(ctx context.Context, in CreateAplicadaInput) (DesparasitacionAplicada, error) {
	if err := validate.RequireID(in.IDAtencion, "idAtencion"); err != nil {
		return DesparasitacionAplicada{}, err
	}
	if err := validate.RequireID(in.IDTipoDesparasitacion, "idTipoDesparasitacion"); err != nil {
		return DesparasitacionAplicada{}, err
	}

	fecha, err := validate.Date(in.FechaAplicacion, "fechaAplicacion", true)
	if err != nil {
		return DesparasitacionAplicada{}, err
	}
	proxima, err := validate.Date(in.FechaProximaDosis, "fechaProximaDosis", false)
	if err != nil {
		return DesparasitacionAplicada{}, err
	}

	d := DesparasitacionAplicada{
		IDAtencion:            in.IDAtencion,
		IDTipoDesparasitacion: in.IDTipoDesparasitacion,
		FechaAplicacion:       fecha,
		FechaProximaDosis:     proxima,
		Dosis:                 validate.OptionalText(in.Dosis),
		Lote:                  validate.OptionalText(in.Lote),
		Observaciones:         validate.OptionalText(in.Observaciones),
	}
	id, err := s.repo.Create(ctx, d)
	if err != nil {
		return DesparasitacionAplicada{}, err
	}
	d.ID = id
	return d, nil
}

func (s *AplicadaService) GetByID(ctx context.Context, id int64) (*DesparasitacionAplicada, error) {
	if err := validate.RequireID(id, "idDesparasitacion"); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *AplicadaService) ListByAtencion(ctx context.Context, idAtencion int64) ([]DesparasitacionAplicada, error) {
	if err := validate.RequireID(idAtencion, "idAtencion"); err != nil {
		return nil, err
	}
	return s.repo.ListByAtencion(ctx, idAtencion)
}

func (s *AplicadaService) Deactivate(ctx context.Context, id int64) error {
	if err := validate.RequireID(id, "idDesparasitacion"); err != nil {
		return err
	}
	return s.repo.Deactivate(ctx, id)
}
