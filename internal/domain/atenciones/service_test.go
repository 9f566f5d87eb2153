package atenciones

import (
	"context"
	"errors"
	"testing"

	"vet-clinic-records/internal/domain/animales"
	"vet-clinic-records/internal/domain/motivos"
	"vet-clinic-records/internal/domain/personal"
	"vet-clinic-records/internal/domain/validate"
)

type testRepo struct {
	byID   map[int64]Atencion
	active map[int64]bool
	nextID int64
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[int64]Atencion{}, active: map[int64]bool{}}
}

func (r *testRepo) Create(ctx context.Context, a Atencion) (int64, error) {
	r.nextID++
	a.ID = r.nextID
	r.byID[a.ID] = a
	r.active[a.ID] = true
	return a.ID, nil
}

func (r *testRepo) GetByID(ctx context.Context, id int64) (*Atencion, error) {
	a, ok := r.byID[id]
	if !ok || !r.active[id] {
		return nil, nil
	}
	return &a, nil
}

func (r *testRepo) ListByAnimal(ctx context.Context, idAnimal int64) ([]Atencion, error) {
	out := make([]Atencion, 0)
	for id, a := range r.byID {
		if a.IDAnimal == idAnimal && r.active[id] {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *testRepo) ListByFecha(ctx context.Context, fecha string) ([]Atencion, error) {
	out := make([]Atencion, 0)
	for id, a := range r.byID {
		if a.FechaAtencion == fecha && r.active[id] {
			out = append(out, a)
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

// Resolvers falsos: un set de ids "activos" por entidad referenciada.
type fakeAnimales map[int64]bool

func (f fakeAnimales) GetByID(ctx context.Context, id int64) (*animales.Animal, error) {
	if f[id] {
		return &animales.Animal{ID: id}, nil
	}
	return nil, nil
}

type fakePersonal map[int64]bool

func (f fakePersonal) GetByID(ctx context.Context, id int64) (*personal.Personal, error) {
	if f[id] {
		return &personal.Personal{ID: id}, nil
	}
	return nil, nil
}

type fakeMotivos map[int64]bool

func (f fakeMotivos) GetByID(ctx context.Context, id int64) (*motivos.Motivo, error) {
	if f[id] {
		return &motivos.Motivo{ID: id}, nil
	}
	return nil, nil
}

func newTestService() (*Service, *testRepo) {
	repo := newTestRepo()
	svc := NewService(repo,
		fakeAnimales{1: true},
		fakePersonal{2: true},
		fakeMotivos{3: true},
	)
	return svc, repo
}

func validInput() CreateInput {
	return CreateInput{
		IDAnimal:         1,
		IDPersonal:       2,
		IDMotivoConsulta: 3,
		FechaAtencion:    "2026-05-10",
	}
}

func TestService_Create_DefaultsLugarConsulta(t *testing.T) {
	svc, _ := newTestService()

	a, err := svc.Create(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if a.Lugar != LugarConsulta {
		t.Fatalf("expected default lugar Consulta, got %q", a.Lugar)
	}
	if a.ID == 0 {
		t.Fatalf("expected generated id")
	}
}

func TestService_Create_RejectsInvalidLugar(t *testing.T) {
	svc, _ := newTestService()

	in := validInput()
	in.Lugar = "Clínica"
	if _, err := svc.Create(context.Background(), in); err == nil {
		t.Fatalf("expected error for invalid lugar")
	}
}

func TestService_Create_RejectsMissingReferences(t *testing.T) {
	svc, repo := newTestService()

	cases := []struct {
		name  string
		mut   func(*CreateInput)
		field string
	}{
		{"animal inexistente", func(in *CreateInput) { in.IDAnimal = 99 }, "idAnimal"},
		{"personal inexistente", func(in *CreateInput) { in.IDPersonal = 99 }, "idPersonal"},
		{"motivo inexistente", func(in *CreateInput) { in.IDMotivoConsulta = 99 }, "idMotivoConsulta"},
	}

	for _, c := range cases {
		in := validInput()
		c.mut(&in)

		_, err := svc.Create(context.Background(), in)
		if err == nil {
			t.Fatalf("%s: expected error", c.name)
		}
		var ve *validate.Error
		if !errors.As(err, &ve) || ve.Field != c.field {
			t.Fatalf("%s: expected error attributed to %q, got %v", c.name, c.field, err)
		}
	}

	// Ningún intento fallido debe haber insertado filas.
	if len(repo.byID) != 0 {
		t.Fatalf("expected no rows inserted, got %d", len(repo.byID))
	}
}

func TestService_Create_RejectsNegativePeso(t *testing.T) {
	svc, _ := newTestService()

	peso := -1.5
	in := validInput()
	in.PesoKg = &peso
	if _, err := svc.Create(context.Background(), in); err == nil {
		t.Fatalf("expected error for negative peso")
	}
}

func TestService_Create_RequiresFecha(t *testing.T) {
	svc, _ := newTestService()

	in := validInput()
	in.FechaAtencion = ""
	_, err := svc.Create(context.Background(), in)
	if err == nil {
		t.Fatalf("expected error for missing fecha")
	}
	if !errors.Is(err, validate.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}
