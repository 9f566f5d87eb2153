package animales

import (
	"context"
	"errors"
	"testing"
	"time"

	"vet-clinic-records/internal/domain/validate"
)

type testRepo struct {
	byID   map[int64]Animal
	active map[int64]bool
	nextID int64
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[int64]Animal{}, active: map[int64]bool{}}
}

func (r *testRepo) Create(ctx context.Context, a Animal) (int64, error) {
	r.nextID++
	a.ID = r.nextID
	r.byID[a.ID] = a
	r.active[a.ID] = true
	return a.ID, nil
}

func (r *testRepo) GetByID(ctx context.Context, id int64) (*Animal, error) {
	a, ok := r.byID[id]
	if !ok || !r.active[id] {
		return nil, nil
	}
	return &a, nil
}

func (r *testRepo) GetByMicrochip(ctx context.Context, microchip string) (*Animal, error) {
	for id, a := range r.byID {
		if a.NumeroMicrochip == microchip && r.active[id] {
			return &a, nil
		}
	}
	return nil, nil
}

func (r *testRepo) ListActive(ctx context.Context) ([]Animal, error) {
	out := make([]Animal, 0)
	for id, a := range r.byID {
		if r.active[id] {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *testRepo) ListByTenedor(ctx context.Context, idTenedor int64) ([]Animal, error) {
	out := make([]Animal, 0)
	for id, a := range r.byID {
		if a.IDTenedor == idTenedor && r.active[id] {
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

func newTestService() (*Service, *testRepo) {
	repo := newTestRepo()
	svc := NewService(repo)
	svc.now = func() time.Time {
		return time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	}
	return svc, repo
}

func baseInput() CreateInput {
	return CreateInput{
		IDTenedor: 1,
		IDEspecie: 2,
		Nombre:    "Milo",
	}
}

func TestService_Create_DefaultsSexoDesconocido(t *testing.T) {
	svc, _ := newTestService()

	a, err := svc.Create(context.Background(), baseInput())
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if a.Sexo != SexoDesconocido {
		t.Fatalf("expected default sexo Desconocido, got %q", a.Sexo)
	}
}

func TestService_Create_RejectsInvalidSexo(t *testing.T) {
	svc, _ := newTestService()

	in := baseInput()
	in.Sexo = "X"
	_, err := svc.Create(context.Background(), in)
	if err == nil {
		t.Fatalf("expected error for sexo X")
	}
	var ve *validate.Error
	if !errors.As(err, &ve) || ve.Field != "sexo" {
		t.Fatalf("expected error attributed to 'sexo', got %v", err)
	}
}

func TestService_Create_BirthDateAndAgeAreExclusive(t *testing.T) {
	svc, _ := newTestService()

	edad := 36
	in := baseInput()
	in.FechaNacimientoEst = "2020-01-01"
	in.EdadEstimadaMeses = &edad

	_, err := svc.Create(context.Background(), in)
	if err == nil {
		t.Fatalf("expected error when both birth date and age are set")
	}
	if !errors.Is(err, validate.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}

	// Con solo una de las dos, pasa.
	in.EdadEstimadaMeses = nil
	if _, err := svc.Create(context.Background(), in); err != nil {
		t.Fatalf("Create with only birth date error: %v", err)
	}

	in2 := baseInput()
	in2.EdadEstimadaMeses = &edad
	if _, err := svc.Create(context.Background(), in2); err != nil {
		t.Fatalf("Create with only age error: %v", err)
	}
}

func TestService_Create_RejectsDuplicateMicrochip(t *testing.T) {
	svc, _ := newTestService()

	in := baseInput()
	in.NumeroMicrochip = "CHIP-001"
	if _, err := svc.Create(context.Background(), in); err != nil {
		t.Fatalf("Create #1 error: %v", err)
	}

	in2 := baseInput()
	in2.Nombre = "Otro"
	in2.NumeroMicrochip = "CHIP-001"
	_, err := svc.Create(context.Background(), in2)
	if err == nil {
		t.Fatalf("expected duplicate microchip error")
	}
	var ve *validate.Error
	if !errors.As(err, &ve) || ve.Field != "numeroMicrochip" {
		t.Fatalf("expected error attributed to 'numeroMicrochip', got %v", err)
	}
}

func TestService_Create_MicrochipFreeAgainAfterDeactivate(t *testing.T) {
	svc, _ := newTestService()

	in := baseInput()
	in.NumeroMicrochip = "CHIP-002"
	a, err := svc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if err := svc.Deactivate(context.Background(), a.ID); err != nil {
		t.Fatalf("Deactivate error: %v", err)
	}

	// La unicidad es solo entre activos.
	in2 := baseInput()
	in2.Nombre = "Reusado"
	in2.NumeroMicrochip = "CHIP-002"
	if _, err := svc.Create(context.Background(), in2); err != nil {
		t.Fatalf("expected microchip to be reusable after deactivate, got %v", err)
	}
}

func TestService_Create_NormalizesConvive(t *testing.T) {
	svc, _ := newTestService()

	in := baseInput()
	in.ConviveConOtros = []string{"Gatos", "Perros", "Gatos"}
	a, err := svc.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if a.ConviveConOtros != "Gatos,Perros" {
		t.Fatalf("expected 'Gatos,Perros', got %q", a.ConviveConOtros)
	}

	in2 := baseInput()
	in2.ConviveConOtros = []string{"Dinosaurios"}
	if _, err := svc.Create(context.Background(), in2); err == nil {
		t.Fatalf("expected error for value outside the controlled list")
	}
}

func TestService_Create_RejectsFutureBirthDate(t *testing.T) {
	svc, _ := newTestService()

	in := baseInput()
	in.FechaNacimientoEst = "2027-01-01" // posterior al reloj fijo del test
	if _, err := svc.Create(context.Background(), in); err == nil {
		t.Fatalf("expected error for future birth date")
	}
}
