package desparasitaciones

import (
	"context"
	"errors"
	"strings"
	"testing"

	"vet-clinic-records/internal/domain/especies"
	"vet-clinic-records/internal/domain/validate"
)

type testTipoRepo struct {
	byID   map[int64]TipoDesparasitacion
	active map[int64]bool
	nextID int64
}

func newTestTipoRepo() *testTipoRepo {
	return &testTipoRepo{byID: map[int64]TipoDesparasitacion{}, active: map[int64]bool{}}
}

func (r *testTipoRepo) Create(ctx context.Context, t TipoDesparasitacion) (int64, error) {
	r.nextID++
	t.ID = r.nextID
	r.byID[t.ID] = t
	r.active[t.ID] = true
	return t.ID, nil
}

func (r *testTipoRepo) GetByID(ctx context.Context, id int64) (*TipoDesparasitacion, error) {
	t, ok := r.byID[id]
	if !ok || !r.active[id] {
		return nil, nil
	}
	return &t, nil
}

func (r *testTipoRepo) GetByNombre(ctx context.Context, nombre string) (*TipoDesparasitacion, error) {
	for id, t := range r.byID {
		if strings.EqualFold(t.Nombre, nombre) && r.active[id] {
			return &t, nil
		}
	}
	return nil, nil
}

func (r *testTipoRepo) ListActive(ctx context.Context) ([]TipoDesparasitacion, error) {
	out := make([]TipoDesparasitacion, 0)
	for id, t := range r.byID {
		if r.active[id] {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *testTipoRepo) Deactivate(ctx context.Context, id int64) error {
	if _, ok := r.byID[id]; ok {
		r.active[id] = false
	}
	return nil
}

type fakeEspecies map[int64]bool

func (f fakeEspecies) GetByID(ctx context.Context, id int64) (*especies.Especie, error) {
	if f[id] {
		return &especies.Especie{ID: id}, nil
	}
	return nil, nil
}

func TestTipoService_Create_DefaultsTipoMixta(t *testing.T) {
	svc := NewTipoService(newTestTipoRepo(), fakeEspecies{})

	td, err := svc.Create(context.Background(), CreateTipoInput{Nombre: "Ivermectina"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if td.Tipo != TipoMixta {
		t.Fatalf("expected tipo Mixta, got %q", td.Tipo)
	}
}

func TestTipoService_Create_NormalizesTipo(t *testing.T) {
	svc := NewTipoService(newTestTipoRepo(), fakeEspecies{})

	td, err := svc.Create(context.Background(), CreateTipoInput{Nombre: "Fipronil", Tipo: " EXTERNA "})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if td.Tipo != TipoExterna {
		t.Fatalf("expected tipo Externa, got %q", td.Tipo)
	}

	_, err = svc.Create(context.Background(), CreateTipoInput{Nombre: "Otro", Tipo: "oral"})
	if err == nil {
		t.Fatalf("expected error for unknown tipo")
	}
	var verr *validate.Error
	if !errors.As(err, &verr) || verr.Field != "tipo" {
		t.Fatalf("expected tipo field error, got %v", err)
	}
}

func TestTipoService_Create_RejectsDuplicateName(t *testing.T) {
	svc := NewTipoService(newTestTipoRepo(), fakeEspecies{})

	_, err := svc.Create(context.Background(), CreateTipoInput{Nombre: "Praziquantel"})
	if err != nil {
		t.Fatalf("Create #1 error: %v", err)
	}

	_, err = svc.Create(context.Background(), CreateTipoInput{Nombre: "PRAZIQUANTEL"})
	if err == nil {
		t.Fatalf("expected duplicate name error (case-insensitive)")
	}
	if !errors.Is(err, validate.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestTipoService_Create_ValidatesEspecieReference(t *testing.T) {
	svc := NewTipoService(newTestTipoRepo(), fakeEspecies{3: true})

	otra := int64(8)
	_, err := svc.Create(context.Background(), CreateTipoInput{Nombre: "Milbemicina", IDEspecie: &otra})
	if err == nil {
		t.Fatalf("expected error for missing especie")
	}

	valida := int64(3)
	td, err := svc.Create(context.Background(), CreateTipoInput{Nombre: "Milbemicina", IDEspecie: &valida})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if td.IDEspecie == nil || *td.IDEspecie != 3 {
		t.Fatalf("expected especie 3, got %#v", td.IDEspecie)
	}
}

type testAplicadaRepo struct {
	byID   map[int64]DesparasitacionAplicada
	active map[int64]bool
	nextID int64
}

func newTestAplicadaRepo() *testAplicadaRepo {
	return &testAplicadaRepo{byID: map[int64]DesparasitacionAplicada{}, active: map[int64]bool{}}
}

func (r *testAplicadaRepo) Create(ctx context.Context, d DesparasitacionAplicada) (int64, error) {
	r.nextID++
	d.ID = r.nextID
	r.byID[d.ID] = d
	r.active[d.ID] = true
	return d.ID, nil
}

func (r *testAplicadaRepo) GetByID(ctx context.Context, id int64) (*DesparasitacionAplicada, error) {
	d, ok := r.byID[id]
	if !ok || !r.active[id] {
		return nil, nil
	}
	return &d, nil
}

func (r *testAplicadaRepo) ListByAtencion(ctx context.Context, idAtencion int64) ([]DesparasitacionAplicada, error) {
	out := make([]DesparasitacionAplicada, 0)
	for id, d := range r.byID {
		if d.IDAtencion == idAtencion && r.active[id] {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *testAplicadaRepo) Deactivate(ctx context.Context, id int64) error {
	if _, ok := r.byID[id]; ok {
		r.active[id] = false
	}
	return nil
}

func TestAplicadaService_Create_RequiresFechaAplicacion(t *testing.T) {
	svc := NewAplicadaService(newTestAplicadaRepo())

	_, err := svc.Create(context.Background(), CreateAplicadaInput{
		IDAtencion:            1,
		IDTipoDesparasitacion: 2,
	})
	if err == nil {
		t.Fatalf("expected error for missing fechaAplicacion")
	}

	d, err := svc.Create(context.Background(), CreateAplicadaInput{
		IDAtencion:            1,
		IDTipoDesparasitacion: 2,
		FechaAplicacion:       "2026-05-10",
		Lote:                  " L-204 ",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if d.Lote != "L-204" {
		t.Fatalf("expected trimmed lote, got %q", d.Lote)
	}
}

func TestAplicadaService_Create_RejectsBadFecha(t *testing.T) {
	svc := NewAplicadaService(newTestAplicadaRepo())

	_, err := svc.Create(context.Background(), CreateAplicadaInput{
		IDAtencion:            1,
		IDTipoDesparasitacion: 2,
		FechaAplicacion:       "10-05-2026",
	})
	if err == nil {
		t.Fatalf("expected error for bad date format")
	}
	var verr *validate.Error
	if !errors.As(err, &verr) || verr.Field != "fechaAplicacion" {
		t.Fatalf("expected fechaAplicacion field error, got %v", err)
	}
}
