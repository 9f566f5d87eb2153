package usuarios

import (
	"context"
	"errors"
	"testing"

	"vet-clinic-records/internal/domain/validate"
)

type testRepo struct {
	byID   map[int64]Usuario
	active map[int64]bool
	nextID int64
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[int64]Usuario{}, active: map[int64]bool{}}
}

func (r *testRepo) Create(ctx context.Context, u Usuario) (int64, error) {
	r.nextID++
	u.ID = r.nextID
	r.byID[u.ID] = u
	r.active[u.ID] = true
	return u.ID, nil
}

func (r *testRepo) GetByUsername(ctx context.Context, nombreUsuario string) (*Usuario, error) {
	for id, u := range r.byID {
		if u.NombreUsuario == nombreUsuario && r.active[id] {
			return &u, nil
		}
	}
	return nil, nil
}

func (r *testRepo) ExistsActiveAdminSistema(ctx context.Context) (bool, error) {
	for id, u := range r.byID {
		if u.Rol == RolAdminSistema && r.active[id] {
			return true, nil
		}
	}
	return false, nil
}

func (r *testRepo) ListActive(ctx context.Context) ([]Usuario, error) {
	out := make([]Usuario, 0)
	for id, u := range r.byID {
		if r.active[id] {
			out = append(out, u)
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

func TestService_Create_NormalizesUsername(t *testing.T) {
	svc := NewService(newTestRepo())

	u, err := svc.Create(context.Background(), CreateInput{
		NombreUsuario: "  DrGomez ",
		Password:      "secreta1",
		Rol:           "veterinario",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if u.NombreUsuario != "drgomez" {
		t.Fatalf("expected lowercased username, got %q", u.NombreUsuario)
	}
	if u.ClaveEncriptada != "" {
		t.Fatalf("hash must not leave the service")
	}
}

func TestService_Create_RejectsUsernameWithSpaces(t *testing.T) {
	svc := NewService(newTestRepo())

	_, err := svc.Create(context.Background(), CreateInput{
		NombreUsuario: "dr gomez",
		Password:      "secreta1",
		Rol:           "veterinario",
	})
	if err == nil {
		t.Fatalf("expected error for username with spaces")
	}
	if !errors.Is(err, validate.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestService_Create_RejectsShortPasswordAndBadRol(t *testing.T) {
	svc := NewService(newTestRepo())

	_, err := svc.Create(context.Background(), CreateInput{
		NombreUsuario: "ana",
		Password:      "corta",
		Rol:           "veterinario",
	})
	if err == nil {
		t.Fatalf("expected error for short password")
	}

	_, err = svc.Create(context.Background(), CreateInput{
		NombreUsuario: "ana",
		Password:      "secreta1",
		Rol:           "gerente",
	})
	if err == nil {
		t.Fatalf("expected error for unknown rol")
	}
}

func TestService_Create_RejectsDuplicateUsername(t *testing.T) {
	svc := NewService(newTestRepo())

	_, err := svc.Create(context.Background(), CreateInput{
		NombreUsuario: "ana",
		Password:      "secreta1",
		Rol:           "administrativo",
	})
	if err != nil {
		t.Fatalf("Create #1 error: %v", err)
	}

	_, err = svc.Create(context.Background(), CreateInput{
		NombreUsuario: "ANA",
		Password:      "secreta2",
		Rol:           "tecnico",
	})
	if err == nil {
		t.Fatalf("expected duplicate username error after lowercasing")
	}
}

func TestService_Login_SameErrorForBadUserAndBadPassword(t *testing.T) {
	svc := NewService(newTestRepo())

	_, err := svc.Create(context.Background(), CreateInput{
		NombreUsuario: "ana",
		Password:      "secreta1",
		Rol:           "veterinario",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	_, errNoUser := svc.Login(context.Background(), "nadie", "secreta1")
	_, errBadPass := svc.Login(context.Background(), "ana", "equivocada")

	if !errors.Is(errNoUser, ErrCredenciales) {
		t.Fatalf("expected ErrCredenciales for unknown user, got %v", errNoUser)
	}
	if !errors.Is(errBadPass, ErrCredenciales) {
		t.Fatalf("expected ErrCredenciales for wrong password, got %v", errBadPass)
	}
	if errNoUser.Error() != errBadPass.Error() {
		t.Fatalf("login errors must be indistinguishable")
	}
}

func TestService_Login_ReturnsUserWithoutHash(t *testing.T) {
	svc := NewService(newTestRepo())

	_, err := svc.Create(context.Background(), CreateInput{
		NombreUsuario: "ana",
		Password:      "secreta1",
		Rol:           "veterinario",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	u, err := svc.Login(context.Background(), " ANA ", "secreta1")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if u.NombreUsuario != "ana" || u.Rol != RolVeterinario {
		t.Fatalf("unexpected user: %+v", u)
	}
	if u.ClaveEncriptada != "" {
		t.Fatalf("hash must not leave the service")
	}
}

func TestService_BootstrapAdmin_OnlyOnce(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	first, err := svc.BootstrapAdmin(context.Background(), "admin", "cambiar123")
	if err != nil {
		t.Fatalf("BootstrapAdmin error: %v", err)
	}
	if first == nil || first.Rol != RolAdminSistema {
		t.Fatalf("expected created admin, got %+v", first)
	}

	second, err := svc.BootstrapAdmin(context.Background(), "otro", "cambiar123")
	if err != nil {
		t.Fatalf("BootstrapAdmin #2 error: %v", err)
	}
	if second != nil {
		t.Fatalf("expected nil when an active admin already exists")
	}

	admins := 0
	for _, u := range repo.byID {
		if u.Rol == RolAdminSistema {
			admins++
		}
	}
	if admins != 1 {
		t.Fatalf("expected exactly one admin, got %d", admins)
	}
}

func TestRol_Helpers(t *testing.T) {
	if !RolVeterinario.EsClinico() || !RolTecnico.EsClinico() {
		t.Fatalf("veterinario y tecnico son clínicos")
	}
	if RolAdministrativo.EsClinico() {
		t.Fatalf("administrativo no es clínico")
	}
	if !RolAdministrativo.EsAdminNormal() || !RolAdminSistema.EsAdminSistema() {
		t.Fatalf("helpers de rol inconsistentes")
	}
}
