package tenedores

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
	byID   map[int64]Tenedor
	active map[int64]bool
	nextID int64
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[int64]Tenedor{}, active: map[int64]bool{}}
}

func (r *testRepo) Create(ctx context.Context, t Tenedor) (int64, error) {
	r.nextID++
	t.ID = r.nextID
	r.byID[t.ID] = t
	r.active[t.ID] = true
	return t.ID, nil
}

func (r *testRepo) GetByID(ctx context.Context, id int64) (*Tenedor, error) {
	t, ok := r.byID[id]
	if !ok || !r.active[id] {
		return nil, nil
	}
	return &t, nil
}

func (r *testRepo) GetByRUT(ctx context.Context, rut string) (*Tenedor, error) {
	for id, t := range r.byID {
		if t.RUT == rut && r.active[id] {
			return &t, nil
		}
	}
	return nil, nil
}

func (r *testRepo) ListActive(ctx context.Context) ([]Tenedor, error) {
	out := make([]Tenedor, 0)
	for id, t := range r.byID {
		if r.active[id] {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *testRepo) Update(ctx context.Context, t Tenedor) error {
	prev, ok := r.byID[t.ID]
	if !ok || !r.active[t.ID] {
		return ErrNotFound
	}
	t.RUT = prev.RUT
	r.byID[t.ID] = t
	return nil
}

func (r *testRepo) Deactivate(ctx context.Context, id int64) error {
	// no-op silencioso si no existe, igual que el store real
	if _, ok := r.byID[id]; ok {
		r.active[id] = false
	}
	return nil
}

// -------------------------
// Tests
// -------------------------

func TestService_Create_NormalizesRUT(t *testing.T) {
	svc := NewService(newTestRepo())

	created, err := svc.Create(context.Background(), CreateInput{
		RUT:       "12.345.678-9",
		Nombres:   "Ana",
		Apellidos: "Rojas",
		Telefono:  "+56911111111",
		Sector:    "Centro",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected generated id")
	}
	if created.RUT != "12345678-9" {
		t.Fatalf("expected normalized RUT, got %q", created.RUT)
	}
}

func TestService_Create_RejectsDuplicateRUT_AfterNormalization(t *testing.T) {
	svc := NewService(newTestRepo())

	_, err := svc.Create(context.Background(), CreateInput{
		RUT:       "12.345.678-9",
		Nombres:   "Ana",
		Apellidos: "Rojas",
		Telefono:  "+56911111111",
		Sector:    "Centro",
	})
	if err != nil {
		t.Fatalf("Create #1 error: %v", err)
	}

	// Mismo RUT escrito distinto: tras normalizar es duplicado.
	_, err = svc.Create(context.Background(), CreateInput{
		RUT:       "12345678-9",
		Nombres:   "Pedro",
		Apellidos: "Soto",
		Telefono:  "+56922222222",
		Sector:    "Norte",
	})
	if err == nil {
		t.Fatalf("expected duplicate RUT error")
	}
	if !errors.Is(err, validate.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestService_Create_RequiresMandatoryFields(t *testing.T) {
	svc := NewService(newTestRepo())

	_, err := svc.Create(context.Background(), CreateInput{
		RUT:       "12345678-9",
		Nombres:   "Ana",
		Apellidos: "Rojas",
		Telefono:  "  ",
		Sector:    "Centro",
	})
	if err == nil {
		t.Fatalf("expected error for blank telefono")
	}
	var ve *validate.Error
	if !errors.As(err, &ve) || ve.Field != "telefono" {
		t.Fatalf("expected error attributed to 'telefono', got %v", err)
	}
}

func TestService_Deactivate_HidesFromLookups_AndIsIdempotent(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), CreateInput{
		RUT:       "12345678-9",
		Nombres:   "Ana",
		Apellidos: "Rojas",
		Telefono:  "+56911111111",
		Sector:    "Centro",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if err := svc.Deactivate(context.Background(), created.ID); err != nil {
		t.Fatalf("Deactivate error: %v", err)
	}

	got, err := svc.GetByID(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if got != nil {
		t.Fatalf("expected not-found after deactivate, got %#v", got)
	}

	// Idempotente: repetir no produce error.
	if err := svc.Deactivate(context.Background(), created.ID); err != nil {
		t.Fatalf("Deactivate #2 error: %v", err)
	}
}

func TestService_Update_OnInactive_ReturnsNotFound(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	created, _ := svc.Create(context.Background(), CreateInput{
		RUT:       "12345678-9",
		Nombres:   "Ana",
		Apellidos: "Rojas",
		Telefono:  "+56911111111",
		Sector:    "Centro",
	})
	_ = svc.Deactivate(context.Background(), created.ID)

	err := svc.Update(context.Background(), created.ID, UpdateInput{
		Nombres:   "Ana",
		Apellidos: "Rojas",
		Telefono:  "+56933333333",
		Sector:    "Centro",
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound updating inactive row, got %v", err)
	}
}
