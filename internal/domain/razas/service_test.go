package razas

import (
	"context"
	"errors"
	"testing"

	"vet-clinic-records/internal/domain/especies"
	"vet-clinic-records/internal/domain/validate"
)

// -------------------------
// Repo de prueba (in-memory)
// -------------------------

type testRepo struct {
	byID   map[int64]Raza
	active map[int64]bool
	nextID int64
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[int64]Raza{}, active: map[int64]bool{}}
}

func (r *testRepo) Create(ctx context.Context, rz Raza) (int64, error) {
	r.nextID++
	rz.ID = r.nextID
	r.byID[rz.ID] = rz
	r.active[rz.ID] = true
	return rz.ID, nil
}

func (r *testRepo) GetByID(ctx context.Context, id int64) (*Raza, error) {
	rz, ok := r.byID[id]
	if !ok || !r.active[id] {
		return nil, nil
	}
	return &rz, nil
}

func (r *testRepo) GetByNombreEnEspecie(ctx context.Context, idEspecie int64, nombre string) (*Raza, error) {
	for id, rz := range r.byID {
		if rz.IDEspecie == idEspecie && rz.Nombre == nombre && r.active[id] {
			return &rz, nil
		}
	}
	return nil, nil
}

func (r *testRepo) ListActive(ctx context.Context) ([]Raza, error) {
	out := make([]Raza, 0)
	for id, rz := range r.byID {
		if r.active[id] {
			out = append(out, rz)
		}
	}
	return out, nil
}

func (r *testRepo) ListByEspecie(ctx context.Context, idEspecie int64) ([]Raza, error) {
	out := make([]Raza, 0)
	for id, rz := range r.byID {
		if rz.IDEspecie == idEspecie && r.active[id] {
			out = append(out, rz)
		}
	}
	return out, nil
}

func (r *testRepo) Deactivate(ctx context.Context, id int64) error {
	if _, ok := r.byID[id]; ok {
		r.active[id] = false
	}
	return nil
}

// fakeEspecies resuelve solo los ids marcados como activos.
type fakeEspecies struct {
	activas map[int64]bool
}

func (f *fakeEspecies) GetByID(ctx context.Context, id int64) (*especies.Especie, error) {
	if !f.activas[id] {
		return nil, nil
	}
	return &especies.Especie{ID: id, Nombre: "Canina"}, nil
}

// -------------------------
// Tests
// -------------------------

func TestService_Create_NormalizesNombre(t *testing.T) {
	svc := NewService(newTestRepo(), &fakeEspecies{activas: map[int64]bool{1: true}})

	created, err := svc.Create(context.Background(), CreateInput{
		IDEspecie: 1,
		Nombre:    "  pastor   alemán ",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if created.Nombre != "Pastor alemán" {
		t.Fatalf("expected normalized nombre, got %q", created.Nombre)
	}
	if created.ID == 0 {
		t.Fatalf("expected generated id")
	}
}

func TestService_Create_RejectsDuplicateNombreEnMismaEspecie(t *testing.T) {
	svc := NewService(newTestRepo(), &fakeEspecies{activas: map[int64]bool{1: true}})

	_, err := svc.Create(context.Background(), CreateInput{IDEspecie: 1, Nombre: "Mestizo"})
	if err != nil {
		t.Fatalf("Create #1 error: %v", err)
	}

	// Mismo nombre escrito distinto: tras normalizar es duplicado.
	_, err = svc.Create(context.Background(), CreateInput{IDEspecie: 1, Nombre: "  mestizo "})
	if err == nil {
		t.Fatalf("expected duplicate nombre error")
	}
	var ve *validate.Error
	if !errors.As(err, &ve) || ve.Field != "nombreRaza" {
		t.Fatalf("expected error attributed to 'nombreRaza', got %v", err)
	}
}

func TestService_Create_AllowsSameNombreInOtherEspecie(t *testing.T) {
	svc := NewService(newTestRepo(), &fakeEspecies{activas: map[int64]bool{1: true, 2: true}})

	_, err := svc.Create(context.Background(), CreateInput{IDEspecie: 1, Nombre: "Mestizo"})
	if err != nil {
		t.Fatalf("Create #1 error: %v", err)
	}

	// La unicidad es por especie, no global.
	created, err := svc.Create(context.Background(), CreateInput{IDEspecie: 2, Nombre: "Mestizo"})
	if err != nil {
		t.Fatalf("Create en otra especie error: %v", err)
	}
	if created.IDEspecie != 2 {
		t.Fatalf("expected idEspecie 2, got %d", created.IDEspecie)
	}
}

func TestService_Create_RejectsEspecieInexistenteOInactiva(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, &fakeEspecies{activas: map[int64]bool{1: true}})

	for _, id := range []int64{7, 0, -1} {
		_, err := svc.Create(context.Background(), CreateInput{IDEspecie: id, Nombre: "Mestizo"})
		if err == nil {
			t.Fatalf("expected error for idEspecie %d", id)
		}
		if !errors.Is(err, validate.ErrValidation) {
			t.Fatalf("expected validation error for idEspecie %d, got %v", id, err)
		}
	}
	if len(repo.byID) != 0 {
		t.Fatalf("expected no rows created, got %d", len(repo.byID))
	}
}

func TestService_Deactivate_FreesNombreEnEspecie(t *testing.T) {
	svc := NewService(newTestRepo(), &fakeEspecies{activas: map[int64]bool{1: true}})

	created, err := svc.Create(context.Background(), CreateInput{IDEspecie: 1, Nombre: "Mestizo"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if err := svc.Deactivate(context.Background(), created.ID); err != nil {
		t.Fatalf("Deactivate error: %v", err)
	}

	// La unicidad aplica solo entre activos.
	if _, err := svc.Create(context.Background(), CreateInput{IDEspecie: 1, Nombre: "Mestizo"}); err != nil {
		t.Fatalf("Create tras baja error: %v", err)
	}
}
