package motivos

import (
	"context"
	"errors"
	"testing"

	"vet-clinic-records/internal/domain/validate"
)

// -------------------------
// Repo de prueba (in-memory)
// -------------------------

type testRepo struct {
	byID   map[int64]Motivo
	active map[int64]bool
	nextID int64
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[int64]Motivo{}, active: map[int64]bool{}}
}

func (r *testRepo) Create(ctx context.Context, m Motivo) (int64, error) {
	r.nextID++
	m.ID = r.nextID
	r.byID[m.ID] = m
	r.active[m.ID] = true
	return m.ID, nil
}

func (r *testRepo) GetByID(ctx context.Context, id int64) (*Motivo, error) {
	m, ok := r.byID[id]
	if !ok || !r.active[id] {
		return nil, nil
	}
	return &m, nil
}

func (r *testRepo) GetByNombre(ctx context.Context, nombre string) (*Motivo, error) {
	for id, m := range r.byID {
		if m.Nombre == nombre && r.active[id] {
			return &m, nil
		}
	}
	return nil, nil
}

func (r *testRepo) ListActive(ctx context.Context) ([]Motivo, error) {
	out := make([]Motivo, 0)
	for id, m := range r.byID {
		if r.active[id] {
			out = append(out, m)
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

// -------------------------
// Tests
// -------------------------

func TestService_Create_NormalizesNombre(t *testing.T) {
	svc := NewService(newTestRepo())

	created, err := svc.Create(context.Background(), CreateInput{
		Nombre:      "  control   sano ",
		Descripcion: "  chequeo general  ",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if created.Nombre != "Control sano" {
		t.Fatalf("expected normalized nombre, got %q", created.Nombre)
	}
	if created.Descripcion != "chequeo general" {
		t.Fatalf("expected trimmed descripcion, got %q", created.Descripcion)
	}
}

func TestService_Create_RejectsDuplicateNombre_AfterNormalization(t *testing.T) {
	svc := NewService(newTestRepo())

	_, err := svc.Create(context.Background(), CreateInput{Nombre: "Vacunación"})
	if err != nil {
		t.Fatalf("Create #1 error: %v", err)
	}

	// Mismo nombre escrito distinto: tras normalizar es duplicado.
	_, err = svc.Create(context.Background(), CreateInput{Nombre: " vacunación  "})
	if err == nil {
		t.Fatalf("expected duplicate nombre error")
	}
	var ve *validate.Error
	if !errors.As(err, &ve) || ve.Field != "nombreMotivo" {
		t.Fatalf("expected error attributed to 'nombreMotivo', got %v", err)
	}
}

func TestService_Create_RequiresNombre(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), CreateInput{Nombre: "   "})
	if err == nil {
		t.Fatalf("expected error for blank nombre")
	}
	if !errors.Is(err, validate.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(repo.byID) != 0 {
		t.Fatalf("expected no rows created, got %d", len(repo.byID))
	}
}

func TestService_Deactivate_FreesNombre(t *testing.T) {
	svc := NewService(newTestRepo())

	created, err := svc.Create(context.Background(), CreateInput{Nombre: "Control sano"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if err := svc.Deactivate(context.Background(), created.ID); err != nil {
		t.Fatalf("Deactivate error: %v", err)
	}

	got, err := svc.GetByNombre(context.Background(), "Control sano")
	if err != nil {
		t.Fatalf("GetByNombre error: %v", err)
	}
	if got != nil {
		t.Fatalf("expected not-found after deactivate, got %#v", got)
	}

	// La unicidad aplica solo entre activos.
	if _, err := svc.Create(context.Background(), CreateInput{Nombre: "Control sano"}); err != nil {
		t.Fatalf("Create tras baja error: %v", err)
	}
}
