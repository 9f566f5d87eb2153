package vacunas

import (
	"context"
	"errors"
	"strings"
	"testing"

	"vet-clinic-records/internal/domain/especies"
	"vet-clinic-records/internal/domain/validate"
)

type testTipoRepo struct {
	byID   map[int64]TipoVacuna
	active map[int64]bool
	nextID int64
}

func newTestTipoRepo() *testTipoRepo {
	return &testTipoRepo{byID: map[int64]TipoVacuna{}, active: map[int64]bool{}}
}

func (r *testTipoRepo) Create(ctx context.Context, t TipoVacuna) (int64, error) {
	r.nextID++
	t.ID = r.nextID
	r.byID[t.ID] = t
	r.active[t.ID] = true
	return t.ID, nil
}

func (r *testTipoRepo) GetByID(ctx context.Context, id int64) (*TipoVacuna, error) {
	t, ok := r.byID[id]
	if !ok || !r.active[id] {
		return nil, nil
	}
	return &t, nil
}

func (r *testTipoRepo) GetByNombre(ctx context.Context, nombre string) (*TipoVacuna, error) {
	for id, t := range r.byID {
		if strings.EqualFold(t.Nombre, nombre) && r.active[id] {
			return &t, nil
		}
	}
	return nil, nil
}

func (r *testTipoRepo) ListActive(ctx context.Context) ([]TipoVacuna, error) {
	out := make([]TipoVacuna, 0)
	for id, t := range r.byID {
		if r.active[id] {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *testTipoRepo) ListByEspecie(ctx context.Context, idEspecie int64) ([]TipoVacuna, error) {
	out := make([]TipoVacuna, 0)
	for id, t := range r.byID {
		if !r.active[id] {
			continue
		}
		if t.IDEspecie == nil || *t.IDEspecie == idEspecie {
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

func TestTipoService_Create_RejectsDuplicateNameCaseInsensitive(t *testing.T) {
	svc := NewTipoService(newTestTipoRepo(), fakeEspecies{})

	_, err := svc.Create(context.Background(), CreateTipoInput{Nombre: "Antirrábica"})
	if err != nil {
		t.Fatalf("Create #1 error: %v", err)
	}

	_, err = svc.Create(context.Background(), CreateTipoInput{Nombre: "ANTIRRÁBICA"})
	if err == nil {
		t.Fatalf("expected duplicate name error (case-insensitive)")
	}
	if !errors.Is(err, validate.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestTipoService_Create_ValidatesEspecieReference(t *testing.T) {
	svc := NewTipoService(newTestTipoRepo(), fakeEspecies{5: true})

	otra := int64(9)
	_, err := svc.Create(context.Background(), CreateTipoInput{Nombre: "Séxtuple", IDEspecie: &otra})
	if err == nil {
		t.Fatalf("expected error for missing especie")
	}

	valida := int64(5)
	tv, err := svc.Create(context.Background(), CreateTipoInput{Nombre: "Séxtuple", IDEspecie: &valida})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if tv.IDEspecie == nil || *tv.IDEspecie != 5 {
		t.Fatalf("expected especie 5, got %#v", tv.IDEspecie)
	}
}

func TestTipoService_Create_RejectsNegativeIntervalo(t *testing.T) {
	svc := NewTipoService(newTestTipoRepo(), fakeEspecies{})

	neg := -3
	_, err := svc.Create(context.Background(), CreateTipoInput{Nombre: "Triple", IntervaloRecMeses: &neg})
	if err == nil {
		t.Fatalf("expected error for negative intervalo")
	}
}

type testAplicadaRepo struct {
	byID   map[int64]VacunaAplicada
	active map[int64]bool
	nextID int64
}

func newTestAplicadaRepo() *testAplicadaRepo {
	return &testAplicadaRepo{byID: map[int64]VacunaAplicada{}, active: map[int64]bool{}}
}

func (r *testAplicadaRepo) Create(ctx context.Context, v VacunaAplicada) (int64, error) {
	r.nextID++
	v.ID = r.nextID
	r.byID[v.ID] = v
	r.active[v.ID] = true
	return v.ID, nil
}

func (r *testAplicadaRepo) GetByID(ctx context.Context, id int64) (*VacunaAplicada, error) {
	v, ok := r.byID[id]
	if !ok || !r.active[id] {
		return nil, nil
	}
	return &v, nil
}

func (r *testAplicadaRepo) ListByAtencion(ctx context.Context, idAtencion int64) ([]VacunaAplicada, error) {
	out := make([]VacunaAplicada, 0)
	for id, v := range r.byID {
		if v.IDAtencion == idAtencion && r.active[id] {
			out = append(out, v)
		}
	}
	return out, nil
}

func (r *testAplicadaRepo) ListAllActive(ctx context.Context) ([]VacunaAplicada, error) {
	out := make([]VacunaAplicada, 0)
	for id, v := range r.byID {
		if r.active[id] {
			out = append(out, v)
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
		IDAtencion:   1,
		IDTipoVacuna: 2,
	})
	if err == nil {
		t.Fatalf("expected error for missing fechaAplicacion")
	}

	v, err := svc.Create(context.Background(), CreateAplicadaInput{
		IDAtencion:      1,
		IDTipoVacuna:    2,
		FechaAplicacion: "2026-04-01",
		Dosis:           " 1 ml ",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if v.Dosis != "1 ml" {
		t.Fatalf("expected trimmed dosis, got %q", v.Dosis)
	}
}

func TestAplicadaService_Deactivate_IsIdempotent(t *testing.T) {
	repo := newTestAplicadaRepo()
	svc := NewAplicadaService(repo)

	v, err := svc.Create(context.Background(), CreateAplicadaInput{
		IDAtencion:      1,
		IDTipoVacuna:    2,
		FechaAplicacion: "2026-04-01",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if err := svc.Deactivate(context.Background(), v.ID); err != nil {
		t.Fatalf("Deactivate error: %v", err)
	}
	if err := svc.Deactivate(context.Background(), v.ID); err != nil {
		t.Fatalf("Deactivate #2 error: %v", err)
	}

	got, _ := svc.GetByID(context.Background(), v.ID)
	if got != nil {
		t.Fatalf("expected not-found after deactivate")
	}
}
