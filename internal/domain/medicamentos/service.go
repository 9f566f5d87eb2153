package medicamentos

import (
	"context"
	"sort"
	"strings"

	"vet-clinic-records/internal/domain/atenciones"
	"vet-clinic-records/internal/domain/validate"
)

var categoriasValidas = map[Categoria]struct{}{
	CategoriaAntibiotico:      {},
	CategoriaAntiinflamatorio: {},
	CategoriaAnalgesico:       {},
	CategoriaVitaminas:        {},
	CategoriaFluidoterapia:    {},
	CategoriaGastroprotector:  {},
	CategoriaOtro:             {},
}

func categoriasOrdenadas() []string {
	out := make([]string, 0, len(categoriasValidas))
	for c := range categoriasValidas {
		out = append(out, string(c))
	}
	sort.Strings(out)
	return out
}

// TipoService administra el catálogo de tipos de medicamento.
type TipoService struct {
	repo TipoRepository
}

func NewTipoService(repo TipoRepository) *TipoService {
	return &TipoService{repo: repo}
}

type CreateTipoInput struct {
	Nombre      string
	Categoria   string
	Descripcion string
}

func (s *TipoService) Create(ctx context.Context, in CreateTipoInput) (TipoMedicamento, error) {
	nombre, err := validate.RequireText(in.Nombre, "nombreMedicamento")
	if err != nil {
		return TipoMedicamento{}, err
	}

	categoria := Categoria(strings.ToLower(strings.TrimSpace(in.Categoria)))
	if _, ok := categoriasValidas[categoria]; !ok {
		return TipoMedicamento{}, validate.Errorf("categoria",
			"categoria inválida. Debe ser una de: %s", strings.Join(categoriasOrdenadas(), ", "))
	}

	existente, err := s.repo.GetByNombre(ctx, nombre)
	if err != nil {
		return TipoMedicamento{}, err
	}
	if existente != nil {
		return TipoMedicamento{}, validate.Errorf("nombreMedicamento",
			"Ya existe un tipo de medicamento activo con ese nombre")
	}

	t := TipoMedicamento{
		Nombre:      nombre,
		Categoria:   categoria,
		Descripcion: validate.OptionalText(in.Descripcion),
	}
	id, err := s.repo.Create(ctx, t)
	if err != nil {
		return TipoMedicamento{}, err
	}
	t.ID = id
	return t, nil
}

func (s *TipoService) GetByID(ctx context.Context, id int64) (*TipoMedicamento, error) {
	if err := validate.RequireID(id, "idTipoMedicamento"); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *TipoService) GetByNombre(ctx context.Context, nombre string) (*TipoMedicamento, error) {
	n, err := validate.RequireText(nombre, "nombreMedicamento")
	if err != nil {
		return nil, err
	}
	return s.repo.GetByNombre(ctx, n)
}

func (s *TipoService) ListActive(ctx context.Context) ([]TipoMedicamento, error) {
	return s.repo.ListActive(ctx)
}

func (s *TipoService) ListByCategoria(ctx context.Context, categoria string) ([]TipoMedicamento, error) {
	c := Categoria(strings.ToLower(strings.TrimSpace(categoria)))
	if _, ok := categoriasValidas[c]; !ok {
		return nil, validate.Errorf("categoria",
			"categoria inválida. Debe ser una de: %s", strings.Join(categoriasOrdenadas(), ", "))
	}
	return s.repo.ListByCategoria(ctx, c)
}

func (s *TipoService) Deactivate(ctx context.Context, id int64) error {
	if err := validate.RequireID(id, "idTipoMedicamento"); err != nil {
		return err
	}
	return s.repo.Deactivate(ctx, id)
}

// AtencionResolver resuelve una atención activa por id (repository hermano).
type AtencionResolver interface {
	GetByID(ctx context.Context, id int64) (*atenciones.Atencion, error)
}

// TipoResolver resuelve un tipo de medicamento activo por id.
type TipoResolver interface {
	GetByID(ctx context.Context, id int64) (*TipoMedicamento, error)
}

// AplicadoService registra los medicamentos administrados por atención.
// Valida la existencia de la atención y del tipo antes de insertar.
type AplicadoService struct {
	repo       AplicadoRepository
	atenciones AtencionResolver
	tipos      TipoResolver
}

func NewAplicadoService(repo AplicadoRepository, at AtencionResolver, tipos TipoResolver) *AplicadoService {
	return &AplicadoService{repo: repo, atenciones: at, tipos: tipos}
}

type CreateAplicadoInput struct {
	IDAtencion        int64
	IDTipoMedicamento int64

	FechaAplicacion string
	Dosis           string
	Via             string
	Observaciones   string
}

func (s *AplicadoService) Create(ctx context.Context, in CreateAplicadoInput) (MedicamentoAplicado, error) {
	if err := validate.RequireID(in.IDAtencion, "idAtencion"); err != nil {
		return MedicamentoAplicado{}, err
	}
	if err := validate.RequireID(in.IDTipoMedicamento, "idTipoMedicamento"); err != nil {
		return MedicamentoAplicado{}, err
	}

	at, err := s.atenciones.GetByID(ctx, in.IDAtencion)
	if err != nil {
		return MedicamentoAplicado{}, err
	}
	if at == nil {
		return MedicamentoAplicado{}, validate.Errorf("idAtencion",
			"No existe una atención clínica activa con ese idAtencion")
	}

	tm, err := s.tipos.GetByID(ctx, in.IDTipoMedicamento)
	if err != nil {
		return MedicamentoAplicado{}, err
	}
	if tm == nil {
		return MedicamentoAplicado{}, validate.Errorf("idTipoMedicamento",
			"No existe un tipo de medicamento activo con ese idTipoMedicamento")
	}

	fecha, err := validate.Date(in.FechaAplicacion, "fechaAplicacion", true)
	if err != nil {
		return MedicamentoAplicado{}, err
	}

	via, err := normalizeVia(in.Via)
	if err != nil {
		return MedicamentoAplicado{}, err
	}

	m := MedicamentoAplicado{
		IDAtencion:        in.IDAtencion,
		IDTipoMedicamento: in.IDTipoMedicamento,
		FechaAplicacion:   fecha,
		Dosis:             validate.OptionalText(in.Dosis),
		Via:               via,
		Observaciones:     validate.OptionalText(in.Observaciones),
	}
	id, err := s.repo.Create(ctx, m)
	if err != nil {
		return MedicamentoAplicado{}, err
	}
	m.ID = id
	return m, nil
}

// normalizeVia acepta "im", "Iv", "topica", etc. y las lleva a la forma
// canónica; vacío queda vacío (la vía es opcional).
func normalizeVia(raw string) (Via, error) {
	clean := strings.ToUpper(strings.TrimSpace(raw))
	if clean == "" {
		return "", nil
	}
	switch clean {
	case "IM", "IV", "VO", "SC":
		return Via(clean), nil
	case "TOPICA":
		return ViaTopica, nil
	case "OTRA":
		return ViaOtra, nil
	}
	return "", validate.Errorf("via", "Vía inválida. Debe ser una de: IM, IV, Otra, SC, Topica, VO")
}

func (s *AplicadoService) GetByID(ctx context.Context, id int64) (*MedicamentoAplicado, error) {
	if err := validate.RequireID(id, "idMedicamentoAplicado"); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *AplicadoService) ListByAtencion(ctx context.Context, idAtencion int64) ([]MedicamentoAplicado, error) {
	if err := validate.RequireID(idAtencion, "idAtencion"); err != nil {
		return nil, err
	}
	return s.repo.ListByAtencion(ctx, idAtencion)
}

func (s *AplicadoService) Deactivate(ctx context.Context, id int64) error {
	if err := validate.RequireID(id, "idMedicamentoAplicado"); err != nil {
		return err
	}
	return s.repo.Deactivate(ctx, id)
}
