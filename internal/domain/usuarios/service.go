package usuarios

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"vet-clinic-records/internal/domain/validate"
)

// ErrCredenciales es el error de login. Es el mismo para usuario inexistente
// y para contraseña equivocada, para no revelar qué cuentas existen.
var ErrCredenciales = errors.New("Usuario o contraseña incorrectos")

var rolesValidos = map[Rol]struct{}{
	RolAdminSistema:   {},
	RolVeterinario:    {},
	RolTecnico:        {},
	RolAdministrativo: {},
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateInput struct {
	IDPersonal    *int64
	NombreUsuario string
	Password      string
	Rol           string
}

func (s *Service) Create(ctx context.Context, in CreateInput) (Usuario, error) {
	username, err := normalizeUsername(in.NombreUsuario)
	if err != nil {
		return Usuario{}, err
	}

	rol := Rol(strings.TrimSpace(in.Rol))
	if _, ok := rolesValidos[rol]; !ok {
		return Usuario{}, validate.Errorf("rol", "Rol inválido")
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return Usuario{}, err
	}

	existente, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return Usuario{}, err
	}
	if existente != nil {
		return Usuario{}, validate.Errorf("nombreUsuario",
			"Ya existe un usuario activo con ese nombre de usuario")
	}

	if in.IDPersonal != nil {
		if err := validate.RequireID(*in.IDPersonal, "idPersonal"); err != nil {
			return Usuario{}, err
		}
	}

	u := Usuario{
		IDPersonal:      in.IDPersonal,
		NombreUsuario:   username,
		ClaveEncriptada: hash,
		Rol:             rol,
	}
	id, err := s.repo.Create(ctx, u)
	if err != nil {
		return Usuario{}, err
	}
	u.ID = id
	u.ClaveEncriptada = ""
	return u, nil
}

// Login verifica las credenciales y retorna el usuario sin el hash.
func (s *Service) Login(ctx context.Context, nombreUsuario, password string) (Usuario, error) {
	username, err := normalizeUsername(nombreUsuario)
	if err != nil {
		return Usuario{}, err
	}

	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		return Usuario{}, err
	}
	if u == nil {
		return Usuario{}, ErrCredenciales
	}
	if bcrypt.CompareHashAndPassword([]byte(u.ClaveEncriptada), []byte(password)) != nil {
		return Usuario{}, ErrCredenciales
	}

	out := *u
	out.ClaveEncriptada = ""
	return out, nil
}

// BootstrapAdmin crea un admin_sistema inicial solo si no existe uno activo.
// Retorna nil, nil cuando ya existía.
func (s *Service) BootstrapAdmin(ctx context.Context, nombreUsuario, password string) (*Usuario, error) {
	existe, err := s.repo.ExistsActiveAdminSistema(ctx)
	if err != nil {
		return nil, err
	}
	if existe {
		return nil, nil
	}

	u, err := s.Create(ctx, CreateInput{
		NombreUsuario: nombreUsuario,
		Password:      password,
		Rol:           string(RolAdminSistema),
	})
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (s *Service) GetByUsername(ctx context.Context, nombreUsuario string) (*Usuario, error) {
	username, err := normalizeUsername(nombreUsuario)
	if err != nil {
		return nil, err
	}
	u, err := s.repo.GetByUsername(ctx, username)
	if err != nil || u == nil {
		return nil, err
	}
	out := *u
	out.ClaveEncriptada = ""
	return &out, nil
}

func (s *Service) ListActive(ctx context.Context) ([]Usuario, error) {
	items, err := s.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		items[i].ClaveEncriptada = ""
	}
	return items, nil
}

func (s *Service) Deactivate(ctx context.Context, id int64) error {
	if err := validate.RequireID(id, "idUsuario"); err != nil {
		return err
	}
	return s.repo.Deactivate(ctx, id)
}

// normalizeUsername baja a minúsculas y rechaza espacios internos.
func normalizeUsername(raw string) (string, error) {
	username := strings.ToLower(strings.TrimSpace(raw))
	if username == "" {
		return "", validate.Errorf("nombreUsuario", "El nombre de usuario es obligatorio")
	}
	if strings.Contains(username, " ") {
		return "", validate.Errorf("nombreUsuario", "El nombre de usuario no debe contener espacios")
	}
	return username, nil
}

func hashPassword(password string) (string, error) {
	if len(password) < 6 {
		return "", validate.Errorf("password", "La contraseña debe tener al menos 6 caracteres")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
