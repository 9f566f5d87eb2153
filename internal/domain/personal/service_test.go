package personal

import (
	"context"
	"errors"
	"testing"

	"vet-clinic-records/internal/domain/validate"
)

type testRepo struct {
	byID   map[int64]Personal
	active map[int64]bool
	nextID int64
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[int64]Personal{}, active: map[int64]bool{}}
}

func (r *testRepo) Create(ctx context.Context, p Personal) (int64, error) {
	r.nextID++
	p.ID = r.nextID
	r.byID[p.ID] = p
	r.active[p.ID] = true
	return p.ID, nil
}

func (r *testRepo) GetByID(ctx context.Context, id int64) (*Personal, error) {
	p, ok := r.byID[id]
	if !ok || !r.active[id] {
		return nil, nil
	}
	return &p, nil
}

func (r *testRepo) GetByRUT(ctx context.Context, rut string) (*Personal, error) {
	for id, p := range r.byID {
		if p.RUT == rut && r.active[id] {
			return &p, nil
		}
	}
	return nil, nil
}

func (r *testRepo) ListActive(ctx context.Context) ([]Personal, error) {
	out := make([]Personal, 0)
	for id, p := range r.byID {
		if r.active[id] {
			out = append(out, p)
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

func TestService_Create_ValidatesRUTShape(t *testing.T) {
	svc := NewService(newTestRepo())

	_, err := svc.Create(context.Background(), CreateInput{
		RUT:       "sin-guion",
		Nombres:   "Carla",
		Apellidos: "Muñoz",
		Cargo:     "Veterinaria",
	})
	if err == nil {
		t.Fatalf("expected error for malformed RUT")
	}
	if !errors.Is(err, validate.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestService_Create_RejectsDuplicateRUT(t *testing.T) {
	svc := NewService(newTestRepo())

	_, err := svc.Create(context.Background(), CreateInput{
		RUT:       "9.876.543-K",
		Nombres:   "Carla",
		Apellidos: "Muñoz",
		Cargo:     "Veterinaria",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	_, err = svc.Create(context.Background(), CreateInput{
		RUT:       "9876543-k",
		Nombres:   "Otra",
		Apellidos: "Persona",
		Cargo:     "Técnico",
	})
	if err == nil {
		t.Fatalf("expected duplicate RUT error after normalization")
	}
}

func TestService_Create_ValidatesOptionalDates(t *testing.T) {
	svc := NewService(newTestRepo())

	_, err := svc.Create(context.Background(), CreateInput{
		RUT:          "9876543-K",
		Nombres:      "Carla",
		Apellidos:    "Muñoz",
		Cargo:        "Veterinaria",
		FechaIngreso: "01/02/2024",
	})
	if err == nil {
		t.Fatalf("expected error for wrong fechaIngreso format")
	}

	p, err := svc.Create(context.Background(), CreateInput{
		RUT:          "9876543-K",
		Nombres:      "Carla",
		Apellidos:    "Muñoz",
		Cargo:        "Veterinaria",
		FechaIngreso: "2024-02-01",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if p.FechaIngreso != "2024-02-01" {
		t.Fatalf("expected normalized date, got %q", p.FechaIngreso)
	}
}
